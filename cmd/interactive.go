package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/hiring-desk/internal/api"
	"github.com/spigell/hiring-desk/internal/campaign"
	"github.com/spigell/hiring-desk/internal/filtering"
	"github.com/spigell/hiring-desk/internal/recruiting"
	"github.com/spigell/hiring-desk/internal/store"
)

const (
	PromptPipeline = "Show pipeline"
	PromptScore    = "Score candidates"
	PromptCallAll  = "Call all candidates"
	PromptCancel   = "Cancel campaign"
	PromptCallOne  = "Call a candidate"
	PromptDetails  = "Candidate details"
	PromptLanguage = "Switch language"
	PromptOverview = "Overview"
	PromptBack     = "back"
	PromptExit     = "exit"
)

var errExit = errors.New("exit requested")

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Work the desk from the terminal without a server",
	Run: func(cmd *cobra.Command, _ []string) {
		interactive(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

type desk struct {
	store  *store.Store
	dialer *campaign.Dialer
	out    io.Writer
	log    *zap.Logger
}

func interactive(out io.Writer) {
	log, config := setup()

	st, dialer, err := newDesk(config, log)
	if err != nil {
		log.Fatal("preparing the desk", zap.Error(err))
	}

	d := &desk{store: st, dialer: dialer, out: out, log: log}

	// Answered calls are reported as they land.
	cancel := st.Subscribe(func(prev, next *store.State) {
		for _, c := range next.Candidates {
			old := recruiting.FindCandidate(prev.Candidates, c.ID)
			if old != nil && old.Status != c.Status && c.Status == recruiting.CandidateAnswered {
				log.Info("call answered", zap.String("candidate_id", c.ID), zap.String("name", c.Name))
			}
		}
	})
	defer cancel()

	runErr := d.loop()

	dialer.Close()
	ctx, stop := context.WithTimeout(context.Background(), config.Server.ShutdownTimeout)
	defer stop()
	if err := st.Wait(ctx); err != nil {
		log.Warn("exiting with calls in flight", zap.Int("in_flight", st.Stats().CallsInFlight))
	}

	if runErr != nil && !errors.Is(runErr, errExit) {
		log.Fatal("exiting", zap.Error(runErr))
	}
}

func (d *desk) loop() error {
	for {
		jobs := d.store.Jobs()
		items := make([]string, 0, len(jobs)+3)
		for _, j := range jobs {
			items = append(items, fmt.Sprintf("%s %s / %s / %d candidates", j.ID, j.Title, j.Status, len(j.Candidates)))
		}
		items = append(items, PromptOverview, PromptLanguage, PromptExit)

		jobPrompt := promptui.Select{
			Label: "Choose a job and press ENTER",
			Items: items,
			Size:  10,
		}

		i, selected, err := jobPrompt.Run()
		if err != nil {
			return err
		}

		switch selected {
		case PromptExit:
			return errExit
		case PromptOverview:
			overview := &api.Overview{Stats: d.store.Stats(), Language: d.store.Language()}
			if err := printOverview(d.out, overview); err != nil {
				return err
			}
		case PromptLanguage:
			d.toggleLanguage()
		default:
			if err := d.job(jobs[i].ID); err != nil {
				return err
			}
		}
	}
}

func (d *desk) toggleLanguage() {
	next := store.LanguageArabic
	if d.store.Language() == store.LanguageArabic {
		next = store.LanguageEnglish
	}
	d.store.SetLanguage(next)
	d.log.Info("language switched", zap.String("language", string(next)))
}

func (d *desk) job(jobID string) error {
	actions := promptui.Select{
		Label: "Job " + jobID,
		Items: []string{PromptPipeline, PromptScore, PromptCallAll, PromptCancel, PromptCallOne, PromptDetails, PromptBack},
	}

	for {
		_, action, err := actions.Run()
		if err != nil {
			return err
		}

		if err := d.handleAction(action, jobID); err != nil {
			if errors.Is(err, errBack) {
				return nil
			}
			return err
		}
	}
}

var errBack = errors.New("back requested")

func (d *desk) handleAction(action, jobID string) error {
	switch action {
	case PromptBack:
		return errBack
	case PromptPipeline:
		candidates, err := d.pipeline(jobID)
		if err != nil {
			return err
		}
		return printCandidates(d.out, candidates)
	case PromptScore:
		n, ok := d.store.ScoreCandidates(jobID)
		if !ok {
			return fmt.Errorf("job %s disappeared", jobID)
		}
		d.log.Info("candidates scored", zap.String("job_id", jobID), zap.Int("count", n))
		return nil
	case PromptCallAll:
		err := d.dialer.Start(jobID)
		if errors.Is(err, campaign.ErrRunning) {
			d.log.Warn("campaign already running", zap.String("job_id", jobID))
			return nil
		}
		return err
	case PromptCancel:
		n, err := d.dialer.Cancel(jobID)
		if err != nil {
			return err
		}
		d.log.Info("campaign canceled", zap.String("job_id", jobID), zap.Int("reset", n))
		return nil
	case PromptCallOne, PromptDetails:
		c, err := d.pickCandidate(jobID)
		if err != nil || c == nil {
			return err
		}
		if action == PromptDetails {
			return printCandidate(d.out, c)
		}
		d.store.SimulateCall(jobID, c.ID)
		return nil
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func (d *desk) pipeline(jobID string) ([]*recruiting.Candidate, error) {
	job, ok := d.store.GetJob(jobID)
	if !ok {
		return nil, fmt.Errorf("job %s disappeared", jobID)
	}

	cfg := &filtering.Config{Job: job}
	candidates, err := filtering.Run(context.Background(), cfg, filtering.Deps{Logger: d.log}, filtering.Pipeline(), d.store.Candidates())
	if err != nil {
		return nil, err
	}
	return filtering.Sort(candidates, filtering.SortMatchScore, filtering.Descending), nil
}

func (d *desk) pickCandidate(jobID string) (*recruiting.Candidate, error) {
	candidates, err := d.pipeline(jobID)
	if err != nil {
		return nil, err
	}

	items := make([]string, 0, len(candidates)+1)
	for _, c := range candidates {
		items = append(items, fmt.Sprintf("%s / %s / %s", c.Name, c.Status, score(c)))
	}

	candidatePrompt := promptui.Select{
		Label: "Choose a candidate and press ENTER",
		Items: append(items, PromptBack),
		Size:  10,
	}

	i, _, err := candidatePrompt.Run()
	if err != nil {
		return nil, err
	}
	if i == len(candidates) {
		return nil, nil
	}
	return candidates[i], nil
}
