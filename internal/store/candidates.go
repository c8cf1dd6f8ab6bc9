package store

import (
	"slices"

	"go.uber.org/zap"

	"github.com/spigell/hiring-desk/internal/recruiting"
)

// AddCandidate puts the candidate at the front of the list with no validation.
func (s *Store) AddCandidate(candidate *recruiting.Candidate) {
	s.apply(func(prev *State) *State {
		next := *prev
		next.Candidates = slices.Insert(slices.Clone(prev.Candidates), 0, candidate)
		return &next
	})
	s.logger.Debug("candidate added", zap.String("candidate_id", candidate.ID), zap.String("name", candidate.Name))
}

// GetCandidate returns the candidate with the given id.
func (s *Store) GetCandidate(id string) (*recruiting.Candidate, bool) {
	c := recruiting.FindCandidate(s.Snapshot().Candidates, id)
	return c, c != nil
}

// UpdateCandidateStatus sets status on every candidate listed in ids. Unknown
// ids are ignored. It returns how many candidates were updated.
func (s *Store) UpdateCandidateStatus(ids []string, status recruiting.CandidateStatus) int {
	updated := 0
	s.apply(func(prev *State) *State {
		var next *State
		next, updated = withStatus(prev, ids, status)
		return next
	})

	s.logger.Debug("candidate status updated",
		zap.Strings("candidate_ids", ids),
		zap.String("status", string(status)),
		zap.Int("updated", updated),
	)
	return updated
}

func withStatus(prev *State, ids []string, status recruiting.CandidateStatus) (*State, int) {
	next := *prev
	next.Candidates = make([]*recruiting.Candidate, len(prev.Candidates))

	updated := 0
	for i, c := range prev.Candidates {
		if !slices.Contains(ids, c.ID) {
			next.Candidates[i] = c
			continue
		}
		changed := c.Clone()
		changed.Status = status
		next.Candidates[i] = changed
		updated++
	}
	return &next, updated
}
