package filtering

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/hiring-desk/internal/recruiting"
)

var errJobRequired = errors.New("job is required")

type pipelineFilter struct {
	name     string
	assigned bool
	job      *recruiting.Job
}

// NewAssigned creates a step that keeps the candidates assigned to the job.
func NewAssigned() Filter {
	return &pipelineFilter{name: "assigned", assigned: true}
}

// NewUnassigned creates a step that keeps the candidates not yet assigned to the job.
func NewUnassigned() Filter {
	return &pipelineFilter{name: "unassigned"}
}

func (f *pipelineFilter) Name() string { return f.name }

func (f *pipelineFilter) Disable(string) {}

func (f *pipelineFilter) IsEnabled() bool { return true }

func (f *pipelineFilter) Validate(cfg *Config) error {
	f.job = nil
	if cfg == nil || cfg.Job == nil {
		return errJobRequired
	}
	f.job = cfg.Job
	return nil
}

func (f *pipelineFilter) Apply(_ context.Context, _ Deps, c []*recruiting.Candidate) ([]*recruiting.Candidate, Step, error) {
	out, step := keep(c, func(candidate *recruiting.Candidate) bool {
		return f.job.HasCandidate(candidate.ID) == f.assigned
	})
	return out, step, nil
}

func (f *pipelineFilter) Status() Status {
	details := map[string]string{}
	if f.job != nil {
		details["job_id"] = f.job.ID
	}
	return Status{Name: f.name, Enabled: true, Details: details}
}

type queryFilter struct {
	query string
}

// NewQuery creates a step matching the query against candidate name and role,
// ignoring case.
func NewQuery() Filter {
	return &queryFilter{}
}

func (f *queryFilter) Name() string { return "query" }

func (f *queryFilter) Disable(string) {}

func (f *queryFilter) IsEnabled() bool { return true }

func (f *queryFilter) Validate(cfg *Config) error {
	f.query = ""
	if cfg != nil {
		f.query = strings.ToLower(strings.TrimSpace(cfg.Query))
	}
	return nil
}

func (f *queryFilter) Apply(_ context.Context, _ Deps, c []*recruiting.Candidate) ([]*recruiting.Candidate, Step, error) {
	if f.query == "" {
		out, step := passThrough(c)
		return out, step, nil
	}

	out, step := keep(c, func(candidate *recruiting.Candidate) bool {
		return strings.Contains(strings.ToLower(candidate.Name), f.query) ||
			strings.Contains(strings.ToLower(candidate.Role), f.query)
	})
	return out, step, nil
}

func (f *queryFilter) Status() Status {
	details := map[string]string{}
	if f.query != "" {
		details["query"] = f.query
	}
	return Status{Name: f.Name(), Enabled: true, Details: details}
}

type statusFilter struct {
	disabled bool
	reason   string
	status   recruiting.CandidateStatus
}

// NewStatus creates a step that keeps candidates in the configured status.
func NewStatus() Filter {
	return &statusFilter{}
}

func (f *statusFilter) Name() string { return "status" }

func (f *statusFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *statusFilter) IsEnabled() bool { return !f.disabled }

func (f *statusFilter) Validate(cfg *Config) error {
	f.status = ""
	if cfg == nil || cfg.Status == "" {
		return nil
	}
	if !recruiting.ValidCandidateStatus(cfg.Status) {
		return fmt.Errorf("unknown candidate status %q", cfg.Status)
	}
	f.status = cfg.Status
	return nil
}

func (f *statusFilter) Apply(_ context.Context, deps Deps, c []*recruiting.Candidate) ([]*recruiting.Candidate, Step, error) {
	if f.status == "" {
		out, step := passThrough(c)
		return out, step, nil
	}

	out, step := keep(c, func(candidate *recruiting.Candidate) bool {
		return candidate.Status == f.status
	})
	if deps.Logger != nil && step.Dropped > 0 {
		deps.Logger.Debug("excluding candidates by status",
			zap.String("status", string(f.status)),
			zap.Int("candidates_left", step.Left),
		)
	}
	return out, step, nil
}

func (f *statusFilter) Status() Status {
	details := map[string]string{}
	if f.status != "" {
		details["status"] = string(f.status)
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}

type minScoreFilter struct {
	disabled bool
	reason   string
	minimum  *int
}

// NewMinScore creates a step that keeps scored candidates at or above the
// configured score. Unscored candidates are dropped while the step is active.
func NewMinScore() Filter {
	return &minScoreFilter{}
}

func (f *minScoreFilter) Name() string { return "min_score" }

func (f *minScoreFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *minScoreFilter) IsEnabled() bool { return !f.disabled }

func (f *minScoreFilter) Validate(cfg *Config) error {
	f.minimum = nil
	if cfg == nil || cfg.MinScore == nil {
		return nil
	}
	if *cfg.MinScore < 0 || *cfg.MinScore > 100 {
		return fmt.Errorf("minimum score must be between 0 and 100, got %d", *cfg.MinScore)
	}
	minimum := *cfg.MinScore
	f.minimum = &minimum
	return nil
}

func (f *minScoreFilter) Apply(_ context.Context, _ Deps, c []*recruiting.Candidate) ([]*recruiting.Candidate, Step, error) {
	if f.minimum == nil {
		out, step := passThrough(c)
		return out, step, nil
	}

	out, step := keep(c, func(candidate *recruiting.Candidate) bool {
		return candidate.Scored() && *candidate.MatchScore >= *f.minimum
	})
	return out, step, nil
}

func (f *minScoreFilter) Status() Status {
	details := map[string]string{}
	if f.minimum != nil {
		details["minimum"] = strconv.Itoa(*f.minimum)
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
