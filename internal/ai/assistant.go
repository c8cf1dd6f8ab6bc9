package ai

import (
	"github.com/spigell/hiring-desk/internal/recruiting"
)

// MatchAssessment is the outcome of rating a candidate against a job.
type MatchAssessment struct {
	Score    int
	Analysis []string
}

// Matcher rates how well a candidate fits a job. Implementations must not fail:
// malformed input degrades to a low score.
type Matcher interface {
	Evaluate(job *recruiting.Job, candidate *recruiting.Candidate) *MatchAssessment
}

// Screener runs a screening call for a candidate and returns what was learned.
// The job may be nil when it can no longer be resolved.
type Screener interface {
	Screen(job *recruiting.Job, candidate *recruiting.Candidate) *recruiting.CallDetails
}
