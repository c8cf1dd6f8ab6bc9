// Package heuristic scores candidates against jobs without a model: title and
// keyword overlap, experience and a bounded random term standing in for CV detail
// that is not modelled.
package heuristic

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/spigell/hiring-desk/internal/ai"
	"github.com/spigell/hiring-desk/internal/recruiting"
)

const (
	exactTitlePoints   = 40
	partialTitlePoints = 25
	titleWordPoints    = 10
	keywordPoints      = 8
	keywordCap         = 30
	// minKeywordLength counts characters, not bytes.
	minKeywordLength   = 4
	strongKeywordCount = 2

	baseYears        = 3
	seniorYears      = 7
	exceedsYears     = 5
	experiencePoints = 10

	// noiseSpan is exclusive: the variance term is in [0, noiseSpan).
	noiseSpan = 15

	excellentThreshold = 85
	minScore           = 15
	maxScore           = 98
)

const (
	NotePerfectTitle  = "Perfect role title match"
	NoteRelevantTitle = "Highly relevant professional background"
	NoteExcellentFit  = "Excellent overall profile fit for this institution"
)

// DefaultAnalysis is reported when no other note applies.
var DefaultAnalysis = []string{
	"Core requirements partially met",
	"Relevant background for the position",
}

type Matcher struct {
	noise  Noise
	logger *zap.Logger
}

var _ ai.Matcher = (*Matcher)(nil)

// NewMatcher builds a matcher. A nil noise source falls back to RandomNoise.
func NewMatcher(noise Noise, logger *zap.Logger) *Matcher {
	if noise == nil {
		noise = RandomNoise{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Matcher{
		noise:  noise,
		logger: logger,
	}
}

func (m *Matcher) Evaluate(job *recruiting.Job, candidate *recruiting.Candidate) *ai.MatchAssessment {
	title := strings.ToLower(job.Title)
	description := strings.ToLower(job.Description)
	role := strings.ToLower(candidate.Role)

	score := 0
	analysis := make([]string, 0, 4)

	switch {
	case title == role:
		score += exactTitlePoints
		analysis = append(analysis, NotePerfectTitle)
	case strings.Contains(title, role) || strings.Contains(role, title):
		score += partialTitlePoints
		analysis = append(analysis, NoteRelevantTitle)
	}

	keywordMatches := 0
	for _, word := range strings.Split(role, " ") {
		if utf8.RuneCountInString(word) < minKeywordLength {
			continue
		}
		if strings.Contains(title, word) {
			score += titleWordPoints
		}
		if strings.Contains(description, word) {
			keywordMatches++
		}
	}
	score += min(keywordMatches*keywordPoints, keywordCap)
	if keywordMatches > strongKeywordCount {
		analysis = append(analysis, fmt.Sprintf("Strong keyword alignment with %d key skills identified", keywordMatches))
	}

	years := recruiting.ParseYears(candidate.Exp)
	if years >= baseYears {
		score += experiencePoints
	}
	if years > seniorYears {
		score += experiencePoints
	}
	switch {
	case years >= exceedsYears:
		analysis = append(analysis, fmt.Sprintf("%d years of experience exceeds minimum requirements", years))
	case years > 0:
		analysis = append(analysis, fmt.Sprintf("Meets experience threshold with %d years", years))
	}

	variance := m.noise.IntN(noiseSpan)
	score += variance

	if score > excellentThreshold {
		analysis = append(analysis, NoteExcellentFit)
	}

	raw := score
	score = max(minScore, min(maxScore, score))

	if len(analysis) == 0 {
		analysis = append(analysis, DefaultAnalysis...)
	}

	m.logger.Debug("candidate scored",
		zap.String("job_id", job.ID),
		zap.String("candidate_id", candidate.ID),
		zap.Int("raw_score", raw),
		zap.Int("variance", variance),
		zap.Int("score", score),
		zap.Int("keyword_matches", keywordMatches),
		zap.Int("years", years),
	)

	return &ai.MatchAssessment{
		Score:    score,
		Analysis: analysis,
	}
}
