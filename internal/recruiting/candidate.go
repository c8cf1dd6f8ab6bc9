package recruiting

import (
	"maps"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

type CandidateStatus string

const (
	CandidatePending   CandidateStatus = "Pending"
	CandidateAnswered  CandidateStatus = "Answered"
	CandidateVoicemail CandidateStatus = "Voicemail"
	CandidateNoAnswer  CandidateStatus = "No Answer"
	CandidateScheduled CandidateStatus = "Scheduled"
	CandidateRejected  CandidateStatus = "Rejected"
)

// CandidateStatuses lists every status a candidate can be in.
var CandidateStatuses = []CandidateStatus{
	CandidatePending,
	CandidateAnswered,
	CandidateVoicemail,
	CandidateNoAnswer,
	CandidateScheduled,
	CandidateRejected,
}

// ValidCandidateStatus reports whether s is one of CandidateStatuses.
func ValidCandidateStatus(s CandidateStatus) bool {
	return slices.Contains(CandidateStatuses, s)
}

type Candidate struct {
	ID            string          `json:"id" mapstructure:"id"`
	Name          string          `json:"name" mapstructure:"name"`
	Role          string          `json:"role" mapstructure:"role"`
	Email         string          `json:"email" mapstructure:"email"`
	Phone         string          `json:"phone" mapstructure:"phone"`
	Exp           string          `json:"exp" mapstructure:"exp"`
	Salary        string          `json:"salary" mapstructure:"salary"`
	Status        CandidateStatus `json:"status" mapstructure:"status"`
	Avatar        string          `json:"avatar" mapstructure:"avatar"`
	CVFile        string          `json:"cvFile,omitempty" mapstructure:"cvFile"`
	MatchScore    *int            `json:"matchScore,omitempty" mapstructure:"matchScore"`
	MatchAnalysis []string        `json:"matchAnalysis,omitempty" mapstructure:"matchAnalysis"`
	CallDetails   *CallDetails    `json:"callDetails,omitempty" mapstructure:"callDetails"`
}

type TranscriptLine struct {
	Speaker string `json:"speaker" mapstructure:"speaker"`
	Text    string `json:"text" mapstructure:"text"`
}

// CallDetails is the outcome of a completed screening call.
type CallDetails struct {
	Transcript     []TranscriptLine  `json:"transcript" mapstructure:"transcript"`
	Responses      map[string]string `json:"responses" mapstructure:"responses"`
	GeneratedLeads []string          `json:"generatedLeads" mapstructure:"generatedLeads"`
}

// Clone returns a deep copy of the candidate.
func (c *Candidate) Clone() *Candidate {
	if c == nil {
		return nil
	}

	out := *c
	if c.MatchScore != nil {
		score := *c.MatchScore
		out.MatchScore = &score
	}
	out.MatchAnalysis = slices.Clone(c.MatchAnalysis)
	out.CallDetails = c.CallDetails.Clone()
	return &out
}

// Scored reports whether a scoring pass has assigned a match score.
func (c *Candidate) Scored() bool {
	return c.MatchScore != nil
}

// Years returns the experience magnitude parsed from Exp.
func (c *Candidate) Years() int {
	return ParseYears(c.Exp)
}

func (d *CallDetails) Clone() *CallDetails {
	if d == nil {
		return nil
	}

	return &CallDetails{
		Transcript:     slices.Clone(d.Transcript),
		Responses:      maps.Clone(d.Responses),
		GeneratedLeads: slices.Clone(d.GeneratedLeads),
	}
}

// ParseYears extracts the leading integer of an experience string such as "5 Yrs".
// Leading whitespace and an optional sign are accepted; anything else yields 0.
func ParseYears(exp string) int {
	s := strings.TrimLeftFunc(exp, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}

	years, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return years
}

// FindCandidate returns the candidate with the given id or nil.
func FindCandidate(candidates []*Candidate, id string) *Candidate {
	for _, c := range candidates {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// CandidateIDs returns the ids of candidates in order.
func CandidateIDs(candidates []*Candidate) []string {
	ids := make([]string, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.ID)
	}
	return ids
}
