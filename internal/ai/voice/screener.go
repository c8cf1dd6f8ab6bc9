// Package voice simulates an AI screening call. The transcript and extracted
// answers follow a fixed script until a call provider is integrated.
package voice

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/spigell/hiring-desk/internal/ai"
	"github.com/spigell/hiring-desk/internal/recruiting"
)

const (
	SpeakerAgent     = "AI Agent"
	SpeakerCandidate = "Candidate"

	// FallbackTitle is used when the job of a call can no longer be found.
	FallbackTitle = "position"
)

const (
	ResponseInterest   = "Interest Level"
	ResponseAvailable  = "Availability"
	ResponseSalary     = "Salary Expectation"
	ResponseCompetency = "Core Competency"
)

type Screener struct {
	logger *zap.Logger
}

var _ ai.Screener = (*Screener)(nil)

func NewScreener(logger *zap.Logger) *Screener {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Screener{logger: logger}
}

// Screen returns the details of a completed call with the candidate.
func (s *Screener) Screen(job *recruiting.Job, candidate *recruiting.Candidate) *recruiting.CallDetails {
	title := FallbackTitle
	if job != nil && job.Title != "" {
		title = job.Title
	}

	details := &recruiting.CallDetails{
		Transcript: []recruiting.TranscriptLine{
			{Speaker: SpeakerAgent, Text: fmt.Sprintf("Hello, am I speaking with %s?", candidate.Name)},
			{Speaker: SpeakerCandidate, Text: "Yes, speaking. How can I help you?"},
			{Speaker: SpeakerAgent, Text: fmt.Sprintf("I am calling regarding your application for the %s. Are you still interested?", title)},
			{Speaker: SpeakerCandidate, Text: "Absolutely! I am very excited about this opportunity."},
			{Speaker: SpeakerAgent, Text: "Great. Can you tell me more about your recent experience?"},
			{Speaker: SpeakerCandidate, Text: fmt.Sprintf("I have been working as a %s for the past several years, focusing on student engagement and curriculum development.", candidate.Role)},
		},
		Responses: map[string]string{
			ResponseInterest:   "Very High",
			ResponseAvailable:  "Immediate",
			ResponseSalary:     candidate.Salary,
			ResponseCompetency: "Curriculum Design",
		},
		GeneratedLeads: []string{
			"Highly enthusiastic about the role",
			"Excellent communication skills identified",
			"Strong alignment with school values",
		},
	}

	s.logger.Debug("screening call transcribed",
		zap.String("candidate_id", candidate.ID),
		zap.String("job_title", title),
		zap.Int("turns", len(details.Transcript)),
	)

	return details
}
