// Package recruiting holds the records the hiring desk works with: job postings,
// candidates and the AI agent personas used for screening calls.
package recruiting

import (
	"slices"
	"time"
)

type JobStatus string

const (
	JobActive JobStatus = "Active"
	JobDraft  JobStatus = "Draft"
	JobClosed JobStatus = "Closed"
)

// Job is a recruitment requisition. Candidates holds candidate ids only; the
// candidate records themselves live in the store.
type Job struct {
	ID          string    `json:"id" mapstructure:"id"`
	Title       string    `json:"title" mapstructure:"title"`
	School      string    `json:"school" mapstructure:"school"`
	Department  string    `json:"department" mapstructure:"department"`
	Location    string    `json:"location" mapstructure:"location"`
	Type        string    `json:"type" mapstructure:"type"`
	Status      JobStatus `json:"status" mapstructure:"status"`
	Candidates  []string  `json:"candidates" mapstructure:"candidates"`
	CreatedAt   time.Time `json:"createdAt" mapstructure:"createdAt"`
	Description string    `json:"description" mapstructure:"description"`
}

// Clone returns a copy of the job that shares nothing with the original.
func (j *Job) Clone() *Job {
	if j == nil {
		return nil
	}

	out := *j
	out.Candidates = slices.Clone(j.Candidates)
	return &out
}

// HasCandidate reports whether the candidate id is part of the job pipeline.
func (j *Job) HasCandidate(id string) bool {
	return slices.Contains(j.Candidates, id)
}

// WithCandidates returns a copy of the job with ids merged into its pipeline.
// Existing order is kept and ids already present, or repeated in ids, are skipped.
func (j *Job) WithCandidates(ids []string) *Job {
	out := j.Clone()

	seen := make(map[string]struct{}, len(out.Candidates)+len(ids))
	for _, id := range out.Candidates {
		seen[id] = struct{}{}
	}

	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out.Candidates = append(out.Candidates, id)
	}

	return out
}

// FindJob returns the job with the given id or nil.
func FindJob(jobs []*Job, id string) *Job {
	for _, j := range jobs {
		if j.ID == id {
			return j
		}
	}
	return nil
}
