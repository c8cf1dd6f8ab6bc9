package store

import (
	"slices"

	"go.uber.org/zap"

	"github.com/spigell/hiring-desk/internal/logger"
	"github.com/spigell/hiring-desk/internal/recruiting"
	"github.com/spigell/hiring-desk/internal/utils"
)

const transcriptPreviewLength = 80

// SimulateCall starts a screening call with the candidate. The candidate is
// marked Scheduled right away; after the call delay it becomes Answered and
// gets the call details. The completion resolves the job again at that time, so
// edits made while the call runs are reflected. A scheduled completion cannot be
// canceled, and repeated calls for the same candidate all complete, the last one
// winning. It reports false, doing nothing, when the candidate is unknown.
func (s *Store) SimulateCall(jobID, candidateID string) bool {
	log := logger.WithCall(s.logger, jobID, candidateID)

	started := s.apply(func(prev *State) *State {
		if recruiting.FindCandidate(prev.Candidates, candidateID) == nil {
			return nil
		}

		next, _ := withStatus(prev, []string{candidateID}, recruiting.CandidateScheduled)
		s.beginCall()
		return next
	})
	if !started {
		log.Debug("call skipped", zap.String("reason", "unknown candidate"))
		return false
	}

	log.Info("call scheduled", zap.Duration("delay", s.callDelay))
	s.scheduler.AfterFunc(s.callDelay, func() {
		s.completeCall(jobID, candidateID, log)
	})
	return true
}

func (s *Store) completeCall(jobID, candidateID string, log *zap.Logger) {
	var details *recruiting.CallDetails

	s.apply(func(prev *State) *State {
		defer s.endCall()

		idx := slices.IndexFunc(prev.Candidates, func(c *recruiting.Candidate) bool { return c.ID == candidateID })
		if idx < 0 {
			return nil
		}

		job := recruiting.FindJob(prev.Jobs, jobID)
		updated := prev.Candidates[idx].Clone()
		updated.Status = recruiting.CandidateAnswered
		updated.CallDetails = s.screener.Screen(job, updated)
		details = updated.CallDetails

		next := *prev
		next.Candidates = slices.Clone(prev.Candidates)
		next.Candidates[idx] = updated
		return &next
	})

	if details == nil {
		log.Warn("call completed for a missing candidate")
		return
	}

	preview := ""
	if len(details.Transcript) > 0 {
		preview = details.Transcript[len(details.Transcript)-1].Text
	}
	log.Info("call answered",
		zap.Int("turns", len(details.Transcript)),
		zap.String("transcript_preview", utils.TruncateForLog(preview, transcriptPreviewLength)),
	)
}

// beginCall and endCall must be called with s.mu held.
func (s *Store) beginCall() {
	if s.pending == 0 {
		s.drained = make(chan struct{})
	}
	s.pending++
}

func (s *Store) endCall() {
	s.pending--
	if s.pending == 0 {
		close(s.drained)
		s.drained = nil
	}
}
