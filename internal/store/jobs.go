package store

import (
	"slices"

	"go.uber.org/zap"

	"github.com/spigell/hiring-desk/internal/recruiting"
)

// AddJob puts the job at the front of the list. The caller provides a complete
// record including a unique id.
func (s *Store) AddJob(job *recruiting.Job) {
	s.apply(func(prev *State) *State {
		next := *prev
		next.Jobs = slices.Insert(slices.Clone(prev.Jobs), 0, job)
		return &next
	})
	s.logger.Debug("job added", zap.String("job_id", job.ID), zap.String("title", job.Title))
}

// GetJob returns the job with the given id.
func (s *Store) GetJob(id string) (*recruiting.Job, bool) {
	job := recruiting.FindJob(s.Snapshot().Jobs, id)
	return job, job != nil
}

// UpdateJob replaces the editable fields of an existing job. The pipeline and
// creation time are kept from the stored record. It reports whether the job exists.
func (s *Store) UpdateJob(job *recruiting.Job) bool {
	return s.apply(func(prev *State) *State {
		idx := slices.IndexFunc(prev.Jobs, func(j *recruiting.Job) bool { return j.ID == job.ID })
		if idx < 0 {
			return nil
		}

		current := prev.Jobs[idx]
		updated := job.Clone()
		updated.Candidates = slices.Clone(current.Candidates)
		updated.CreatedAt = current.CreatedAt

		next := *prev
		next.Jobs = slices.Clone(prev.Jobs)
		next.Jobs[idx] = updated
		return &next
	})
}

// AssignCandidatesToJob merges ids into the job pipeline without duplicates.
// Unknown jobs are ignored; the result reports whether the job was found.
func (s *Store) AssignCandidatesToJob(jobID string, ids []string) bool {
	found := s.apply(func(prev *State) *State {
		idx := slices.IndexFunc(prev.Jobs, func(j *recruiting.Job) bool { return j.ID == jobID })
		if idx < 0 {
			return nil
		}

		next := *prev
		next.Jobs = slices.Clone(prev.Jobs)
		next.Jobs[idx] = prev.Jobs[idx].WithCandidates(ids)
		return &next
	})

	if found {
		s.logger.Debug("candidates assigned", zap.String("job_id", jobID), zap.Int("count", len(ids)))
	}
	return found
}

// JobCandidates returns the candidates in the job pipeline, in candidate list order.
func (s *Store) JobCandidates(jobID string) ([]*recruiting.Candidate, bool) {
	state := s.Snapshot()
	job := recruiting.FindJob(state.Jobs, jobID)
	if job == nil {
		return nil, false
	}

	out := make([]*recruiting.Candidate, 0, len(job.Candidates))
	for _, c := range state.Candidates {
		if job.HasCandidate(c.ID) {
			out = append(out, c)
		}
	}
	return out, true
}

// ScoreCandidates rates every candidate assigned to the job and stores the
// score and analysis on them. Other candidates keep their previous values.
// It returns how many candidates were scored and whether the job exists.
func (s *Store) ScoreCandidates(jobID string) (int, bool) {
	scored := 0
	found := s.apply(func(prev *State) *State {
		job := recruiting.FindJob(prev.Jobs, jobID)
		if job == nil {
			return nil
		}

		next := *prev
		next.Candidates = make([]*recruiting.Candidate, len(prev.Candidates))
		for i, c := range prev.Candidates {
			if !job.HasCandidate(c.ID) {
				next.Candidates[i] = c
				continue
			}

			assessment := s.matcher.Evaluate(job, c)
			updated := c.Clone()
			score := assessment.Score
			updated.MatchScore = &score
			updated.MatchAnalysis = assessment.Analysis
			next.Candidates[i] = updated
			scored++
		}
		return &next
	})

	if found {
		s.logger.Info("candidates scored", zap.String("job_id", jobID), zap.Int("count", scored))
	}
	return scored, found
}
