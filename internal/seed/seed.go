// Package seed provides the initial records of a hiring desk: a generated demo
// data set, fixture files and candidates created from uploaded CVs.
package seed

import (
	"fmt"
	"net/url"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/spigell/hiring-desk/internal/recruiting"
	"github.com/spigell/hiring-desk/internal/store"
)

// DefaultCandidates is the size of the generated candidate pool.
const DefaultCandidates = 50

// Roles are the school positions generated candidates apply for.
var Roles = []string{
	"Mathematics Teacher",
	"Science Teacher",
	"English Teacher",
	"Art Teacher",
	"PE Teacher",
	"Lab Technician",
	"School Counselor",
	"Primary Coordinator",
	"Principal",
	"History Teacher",
}

type Options struct {
	// Candidates is the pool size; zero or less means DefaultCandidates.
	Candidates int
	// RandomSeed makes the data set reproducible; zero picks a random seed.
	RandomSeed uint64
}

// pipelineBounds are the candidate index ranges assigned to the three seeded jobs.
var pipelineBounds = [][2]int{{0, 15}, {15, 25}, {25, 50}}

// Generate builds the demo data set: a candidate pool, three school jobs that
// split the pool between them and three agent personas.
func Generate(opts Options) store.Seed {
	count := opts.Candidates
	if count <= 0 {
		count = DefaultCandidates
	}

	f := gofakeit.New(opts.RandomSeed)

	candidates := make([]*recruiting.Candidate, 0, count)
	for range count {
		candidates = append(candidates, fakeCandidate(f))
	}

	jobs := jobTemplates()
	for i, job := range jobs {
		lo, hi := min(pipelineBounds[i][0], count), min(pipelineBounds[i][1], count)
		job.Candidates = recruiting.CandidateIDs(candidates[lo:hi])
	}

	return store.Seed{
		Jobs:       jobs,
		Candidates: candidates,
		Agents:     agentTemplates(),
	}
}

func fakeCandidate(f *gofakeit.Faker) *recruiting.Candidate {
	name := f.Name()
	status := recruiting.CandidateStatuses[f.Number(0, len(recruiting.CandidateStatuses)-1)]

	c := &recruiting.Candidate{
		ID:     f.UUID(),
		Name:   name,
		Role:   f.RandomString(Roles),
		Email:  f.Email(),
		Phone:  f.Phone(),
		Exp:    fmt.Sprintf("%d Yrs", f.Number(1, 20)),
		Salary: fmt.Sprintf("%d,000 QAR", f.Number(8, 25)),
		Status: status,
		Avatar: "https://api.dicebear.com/7.x/initials/svg?seed=" + url.QueryEscape(name),
		CVFile: "resume.pdf",
	}

	if status == recruiting.CandidateAnswered {
		c.CallDetails = pastCall(f.FirstName(), f.RandomString(Roles))
	}
	return c
}

// pastCall is the record of a screening call made before the data set was taken.
func pastCall(firstName, role string) *recruiting.CallDetails {
	return &recruiting.CallDetails{
		Transcript: []recruiting.TranscriptLine{
			{Speaker: "AI Agent", Text: "Hello, am I speaking with " + firstName + "?"},
			{Speaker: "Candidate", Text: "Yes, speaking. How can I help you?"},
			{Speaker: "AI Agent", Text: "I am calling regarding your application for the " + role + " position. Are you still interested?"},
			{Speaker: "Candidate", Text: "Absolutely! I have been following your school for a while."},
			{Speaker: "AI Agent", Text: "Great. Can you tell me about your experience with the British Curriculum?"},
			{Speaker: "Candidate", Text: "I have over 5 years of experience teaching IGCSE and A-Levels in Doha."},
		},
		Responses: map[string]string{
			"Interest Level":        "High",
			"Curriculum Experience": "British (IGCSE, A-Level)",
			"Availability":          "Immediate",
			"Salary Expectation":    "Negotiable",
		},
		GeneratedLeads: []string{
			"Strong background in British Curriculum",
			"Local experience in Qatar",
			"Eager to start immediately",
		},
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func jobTemplates() []*recruiting.Job {
	return []*recruiting.Job{
		{
			ID:          "1",
			Title:       "Mathematics Teacher",
			School:      "Doha Modern School",
			Department:  "Mathematics",
			Location:    "Doha",
			Type:        "Full-time",
			Status:      recruiting.JobActive,
			CreatedAt:   date(2025, time.December, 24),
			Description: mathematicsDescription,
		},
		{
			ID:          "2",
			Title:       "Science Lab Technician",
			School:      "Al Rayyan Int. School",
			Department:  "Science",
			Location:    "Al Rayyan",
			Type:        "Full-time",
			Status:      recruiting.JobDraft,
			CreatedAt:   date(2025, time.December, 26),
			Description: labTechnicianDescription,
		},
		{
			ID:          "3",
			Title:       "Primary Coordinator",
			School:      "Doha Modern School",
			Department:  "Primary",
			Location:    "Doha",
			Type:        "Full-time",
			Status:      recruiting.JobActive,
			CreatedAt:   date(2025, time.December, 10),
			Description: primaryCoordinatorDescription,
		},
	}
}

func agentTemplates() []*recruiting.Agent {
	return []*recruiting.Agent{
		{
			ID:           "1",
			Name:         "Sarah (Screening)",
			Type:         recruiting.AgentScreening,
			Language:     recruiting.AgentEnglish,
			VoiceID:      "en-US-Neural2-F",
			Status:       recruiting.AgentActive,
			LastActive:   "2 mins ago",
			Personality:  "Professional, warm, and efficient.",
			Instructions: "You are a school recruiter screening candidates for teaching positions. Be polite and ask about their curriculum experience and availability.",
		},
		{
			ID:           "2",
			Name:         "Omar (Bilingual)",
			Type:         recruiting.AgentScreening,
			Language:     recruiting.AgentBilingual,
			VoiceID:      "ar-XA-Wavenet-B",
			Status:       recruiting.AgentActive,
			LastActive:   "Now",
			Personality:  "Formal, respectful, and clear.",
			Instructions: "You are a recruitment assistant for a school in Qatar. You speak both English and Arabic fluently. Screen candidates for their cultural fit and language proficiency.",
		},
		{
			ID:           "3",
			Name:         "Nora (Scheduling)",
			Type:         recruiting.AgentScheduling,
			Language:     recruiting.AgentEnglish,
			VoiceID:      "en-GB-Wavenet-A",
			Status:       recruiting.AgentIdle,
			LastActive:   "5 hours ago",
			Personality:  "Friendly, organized, and helpful.",
			Instructions: "You help candidates schedule their first-round interviews. Be helpful in finding a time that works for both the school and the candidate.",
		},
	}
}
