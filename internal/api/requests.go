package api

import (
	"github.com/spigell/hiring-desk/internal/filtering"
	"github.com/spigell/hiring-desk/internal/recruiting"
	"github.com/spigell/hiring-desk/internal/store"
)

// JobRequest is the body of job create and update requests.
type JobRequest struct {
	Title       string               `json:"title" validate:"required"`
	School      string               `json:"school"`
	Department  string               `json:"department"`
	Location    string               `json:"location"`
	Type        string               `json:"type"`
	Status      recruiting.JobStatus `json:"status" validate:"omitempty,oneof=Active Draft Closed"`
	Description string               `json:"description"`
	// Candidates is only read on create; use the assign endpoint afterwards.
	Candidates []string `json:"candidates" validate:"omitempty,dive,required"`
}

type CandidateRequest struct {
	Name   string                     `json:"name" validate:"required"`
	Role   string                     `json:"role"`
	Email  string                     `json:"email" validate:"omitempty,email"`
	Phone  string                     `json:"phone"`
	Exp    string                     `json:"exp"`
	Salary string                     `json:"salary"`
	Status recruiting.CandidateStatus `json:"status" validate:"omitempty,oneof=Pending Answered Voicemail 'No Answer' Scheduled Rejected"`
	Avatar string                     `json:"avatar"`
	CVFile string                     `json:"cvFile"`
}

type AgentRequest struct {
	Name         string                   `json:"name" validate:"required"`
	Type         recruiting.AgentType     `json:"type" validate:"required,oneof=Screening Scheduling Support"`
	Language     recruiting.AgentLanguage `json:"language" validate:"required,oneof=English Arabic Bilingual"`
	VoiceID      string                   `json:"voiceId"`
	Status       recruiting.AgentStatus   `json:"status" validate:"omitempty,oneof=Active Idle"`
	LastActive   string                   `json:"lastActive"`
	Personality  string                   `json:"personality"`
	Instructions string                   `json:"instructions"`
}

type AssignRequest struct {
	CandidateIDs []string `json:"candidateIds" validate:"required,min=1,dive,required"`
}

type StatusRequest struct {
	CandidateIDs []string                   `json:"candidateIds" validate:"required,min=1,dive,required"`
	Status       recruiting.CandidateStatus `json:"status" validate:"required,oneof=Pending Answered Voicemail 'No Answer' Scheduled Rejected"`
}

// UploadRequest carries the names of uploaded CV files. When JobID is set the
// new candidates are assigned to that job.
type UploadRequest struct {
	FileNames []string `json:"fileNames" validate:"required,min=1,dive,required"`
	JobID     string   `json:"jobId"`
}

type LanguageBody struct {
	Language store.Language `json:"language" validate:"required,oneof=en ar"`
}

type ScoreResult struct {
	JobID  string `json:"jobId"`
	Scored int    `json:"scored"`
}

type CampaignResult struct {
	JobID      string `json:"jobId"`
	Candidates int    `json:"candidates"`
}

type CancelResult struct {
	JobID string `json:"jobId"`
	Reset int    `json:"reset"`
}

type UpdatedResult struct {
	Updated int `json:"updated"`
}

// PipelineExplain is the pipeline response when the applied filter steps are requested.
type PipelineExplain struct {
	Candidates []*recruiting.Candidate `json:"candidates"`
	Filters    []filtering.Status      `json:"filters"`
}

type Overview struct {
	store.Stats
	Language store.Language `json:"language"`
}
