// Package filtering narrows and orders candidate lists for the pipeline table
// and the candidate picker.
package filtering

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spigell/hiring-desk/internal/recruiting"
)

// Filter represents a single filtering step applied to candidates.
type Filter interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool

	Validate(cfg *Config) error
	Apply(ctx context.Context, deps Deps, c []*recruiting.Candidate) ([]*recruiting.Candidate, Step, error)
}

// Deps aggregates dependencies shared across all filtering steps.
type Deps struct {
	Logger *zap.Logger
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Config contains the criteria consumed by the filters. Zero values disable
// the matching criterion.
type Config struct {
	Job      *recruiting.Job
	Query    string
	Status   recruiting.CandidateStatus
	MinScore *int
}

// Status represents runtime information about a filter.
type Status struct {
	Name    string            `json:"name"`
	Enabled bool              `json:"enabled"`
	Reason  string            `json:"reason,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// statusProvider is implemented by filters that can supply detailed status information.
type statusProvider interface {
	Status() Status
}

// Pipeline returns the steps behind the job pipeline table.
func Pipeline() []Filter {
	return []Filter{NewAssigned(), NewQuery(), NewStatus(), NewMinScore()}
}

// Picker returns the steps behind the "add existing candidates" picker.
func Picker() []Filter {
	return []Filter{NewUnassigned(), NewQuery()}
}

// DisableByName marks a filter with the provided name as disabled while keeping it in the list.
func DisableByName(steps []Filter, name, reason string) {
	for _, step := range steps {
		if step.Name() == name {
			step.Disable(reason)
		}
	}
}

// Run validates and then applies the enabled steps in order. The input slice is
// never modified.
func Run(ctx context.Context, cfg *Config, deps Deps, steps []Filter, c []*recruiting.Candidate) ([]*recruiting.Candidate, error) {
	for _, step := range steps {
		if !step.IsEnabled() {
			continue
		}
		if err := step.Validate(cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}
	}

	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !step.IsEnabled() {
			deps.Logger.Debug("filter disabled", zap.String("name", step.Name()))
			continue
		}

		next, info, err := step.Apply(ctx, deps, c)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		deps.Logger.Debug("filter step",
			zap.String("name", step.Name()),
			zap.Int("initial", info.Initial),
			zap.Int("dropped", info.Dropped),
			zap.Int("left", info.Left),
		)

		c = next
	}

	return c, nil
}

// Describe returns status entries for the provided filters.
func Describe(steps []Filter) []Status {
	statuses := make([]Status, 0, len(steps))
	for _, step := range steps {
		if reporter, ok := step.(statusProvider); ok {
			statuses = append(statuses, reporter.Status())
			continue
		}

		statuses = append(statuses, Status{
			Name:    step.Name(),
			Enabled: step.IsEnabled(),
		})
	}
	return statuses
}

// keep returns the candidates accepted by keepFn along with the step summary.
func keep(c []*recruiting.Candidate, keepFn func(*recruiting.Candidate) bool) ([]*recruiting.Candidate, Step) {
	out := make([]*recruiting.Candidate, 0, len(c))
	for _, candidate := range c {
		if keepFn(candidate) {
			out = append(out, candidate)
		}
	}
	return out, Step{Initial: len(c), Dropped: len(c) - len(out), Left: len(out)}
}

func passThrough(c []*recruiting.Candidate) ([]*recruiting.Candidate, Step) {
	return c, Step{Initial: len(c), Dropped: 0, Left: len(c)}
}
