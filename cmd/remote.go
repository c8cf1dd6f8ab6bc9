package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/hiring-desk/internal/client"
	"github.com/spigell/hiring-desk/internal/filtering"
	"github.com/spigell/hiring-desk/internal/recruiting"
	"github.com/spigell/hiring-desk/internal/secrets"
)

const remoteTimeout = 30 * time.Second

var (
	jobsCmd = &cobra.Command{
		Use:   "jobs",
		Short: "List job postings",
		Args:  cobra.NoArgs,
		RunE: remote(func(ctx context.Context, cmd *cobra.Command, c *client.Client, _ []string) error {
			jobs, err := c.Jobs(ctx)
			if err != nil {
				return err
			}
			return printJobs(cmd.OutOrStdout(), jobs)
		}),
	}

	candidatesCmd = &cobra.Command{
		Use:   "candidates <job-id>",
		Short: "Show the pipeline of a job",
		Args:  cobra.ExactArgs(1),
		RunE: remote(func(ctx context.Context, cmd *cobra.Command, c *client.Client, args []string) error {
			q, err := pipelineQuery(cmd)
			if err != nil {
				return err
			}

			if explain, _ := cmd.Flags().GetBool("explain"); explain {
				out, err := c.ExplainPipeline(ctx, args[0], q)
				if err != nil {
					return err
				}
				if err := printCandidates(cmd.OutOrStdout(), out.Candidates); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout())
				return printFilters(cmd.OutOrStdout(), out.Filters)
			}

			candidates, err := c.JobCandidates(ctx, args[0], q)
			if err != nil {
				return err
			}
			return printCandidates(cmd.OutOrStdout(), candidates)
		}),
	}

	candidateCmd = &cobra.Command{
		Use:   "candidate <candidate-id>",
		Short: "Show a candidate with the match analysis and the call transcript",
		Args:  cobra.ExactArgs(1),
		RunE: remote(func(ctx context.Context, cmd *cobra.Command, c *client.Client, args []string) error {
			candidate, err := c.Candidate(ctx, args[0])
			if err != nil {
				return err
			}
			return printCandidate(cmd.OutOrStdout(), candidate)
		}),
	}

	scoreCmd = &cobra.Command{
		Use:   "score <job-id>",
		Short: "Score the candidates of a job",
		Args:  cobra.ExactArgs(1),
		RunE: remote(func(ctx context.Context, cmd *cobra.Command, c *client.Client, args []string) error {
			n, err := c.Score(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "scored %d candidates\n", n)
			return nil
		}),
	}

	callCmd = &cobra.Command{
		Use:   "call <job-id> [candidate-id]",
		Short: "Start screening calls for a whole pipeline or a single candidate",
		Args:  cobra.RangeArgs(1, 2),
		RunE: remote(func(ctx context.Context, cmd *cobra.Command, c *client.Client, args []string) error {
			out := cmd.OutOrStdout()
			jobID := args[0]

			if cancel, _ := cmd.Flags().GetBool("cancel"); cancel {
				n, err := c.CancelCalls(ctx, jobID)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "campaign canceled, %d candidates reset\n", n)
				return nil
			}

			if len(args) == 2 {
				candidate, err := c.Call(ctx, jobID, args[1])
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "calling %s (%s)\n", candidate.Name, candidate.Status)
				return nil
			}

			n, err := c.CallAll(ctx, jobID)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "campaign started for %d candidates\n", n)
			return nil
		}),
	}

	statusCmd = &cobra.Command{
		Use:   "status <status> <candidate-id>...",
		Short: "Set the status of candidates",
		Args:  cobra.MinimumNArgs(2),
		RunE: remote(func(ctx context.Context, cmd *cobra.Command, c *client.Client, args []string) error {
			status := recruiting.CandidateStatus(args[0])
			if !recruiting.ValidCandidateStatus(status) {
				return fmt.Errorf("unknown candidate status %q", args[0])
			}
			n, err := c.UpdateStatus(ctx, status, args[1:])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated %d candidates\n", n)
			return nil
		}),
	}

	uploadCmd = &cobra.Command{
		Use:   "upload <file>...",
		Short: "Create pending candidates from CV file names",
		Args:  cobra.MinimumNArgs(1),
		RunE: remote(func(ctx context.Context, cmd *cobra.Command, c *client.Client, args []string) error {
			jobID, _ := cmd.Flags().GetString("job")
			candidates, err := c.Upload(ctx, jobID, args)
			if err != nil {
				return err
			}
			return printCandidates(cmd.OutOrStdout(), candidates)
		}),
	}

	overviewCmd = &cobra.Command{
		Use:   "overview",
		Short: "Show the dashboard counters",
		Args:  cobra.NoArgs,
		RunE: remote(func(ctx context.Context, cmd *cobra.Command, c *client.Client, _ []string) error {
			overview, err := c.Overview(ctx)
			if err != nil {
				return err
			}
			return printOverview(cmd.OutOrStdout(), overview)
		}),
	}
)

func init() {
	candidatesCmd.Flags().StringP("query", "q", "", "match name or role")
	candidatesCmd.Flags().String("status", "", "only candidates with this status")
	candidatesCmd.Flags().Int("min-score", -1, "only candidates scored at least this much")
	candidatesCmd.Flags().String("sort", string(filtering.SortMatchScore), "matchScore, name, status or exp")
	candidatesCmd.Flags().String("dir", string(filtering.Descending), "asc or desc")
	candidatesCmd.Flags().Bool("explain", false, "also print the filter steps the server applied")

	callCmd.Flags().Bool("cancel", false, "stop the campaign and reset the pipeline to Pending")
	uploadCmd.Flags().String("job", "", "assign the uploaded candidates to this job")

	rootCmd.AddCommand(jobsCmd, candidatesCmd, candidateCmd, scoreCmd, callCmd, statusCmd, uploadCmd, overviewCmd)
}

type remoteFunc func(ctx context.Context, cmd *cobra.Command, c *client.Client, args []string) error

// remote wraps a client command with the logger, config and a request deadline.
func remote(fn remoteFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		log, config := setup()

		token, err := secrets.Load(secrets.Source{
			Name:     "client token",
			Value:    config.Client.Token,
			File:     config.Client.TokenFile,
			Optional: true,
		})
		if err != nil {
			return err
		}

		c := client.New(log.Named("client"), config.Client.Server, token)
		log.Debug("using server", zap.String("server", c.BaseURL))

		ctx, cancel := context.WithTimeout(cmd.Context(), remoteTimeout)
		defer cancel()

		cmd.SilenceUsage = true
		return fn(ctx, cmd, c, args)
	}
}

func pipelineQuery(cmd *cobra.Command) (client.PipelineQuery, error) {
	flags := cmd.Flags()
	q := client.PipelineQuery{}
	q.Query, _ = flags.GetString("query")
	q.Sort, _ = flags.GetString("sort")
	q.Dir, _ = flags.GetString("dir")

	status, _ := flags.GetString("status")
	if status != "" {
		q.Status = recruiting.CandidateStatus(status)
		if !recruiting.ValidCandidateStatus(q.Status) {
			return q, fmt.Errorf("unknown candidate status %q", status)
		}
	}

	if minScore, _ := flags.GetInt("min-score"); minScore >= 0 {
		q.MinScore = &minScore
	}

	if _, err := filtering.ParseSortKey(q.Sort); err != nil {
		return q, err
	}
	if _, err := filtering.ParseDirection(q.Dir); err != nil {
		return q, err
	}

	return q, nil
}
