package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/spigell/hiring-desk/internal/campaign"
	"github.com/spigell/hiring-desk/internal/filtering"
	"github.com/spigell/hiring-desk/internal/logger"
	"github.com/spigell/hiring-desk/internal/recruiting"
)

const (
	defaultSchool  = "Doha Modern School"
	defaultJobType = "Full-time"
)

func (h *Handler) ListJobs(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, h.store.Jobs(), http.StatusOK)
}

func (h *Handler) GetJob(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	job, ok := h.store.GetJob(id)
	if !ok {
		notFound(w, "job", id)
		return
	}
	writeJSON(w, job, http.StatusOK)
}

func (h *Handler) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req JobRequest
	if !h.decode(w, r, &req) {
		return
	}

	if missing := h.missingCandidates(req.Candidates); len(missing) > 0 {
		writeError(w, http.StatusBadRequest, "unknown candidates: "+joinIDs(missing))
		return
	}

	job := (&recruiting.Job{
		ID:          uuid.NewString(),
		Title:       req.Title,
		School:      withDefault(req.School, defaultSchool),
		Department:  req.Department,
		Location:    req.Location,
		Type:        withDefault(req.Type, defaultJobType),
		Status:      recruiting.JobStatus(withDefault(string(req.Status), string(recruiting.JobActive))),
		CreatedAt:   time.Now().UTC(),
		Description: req.Description,
	}).WithCandidates(req.Candidates)

	h.store.AddJob(job)
	writeJSON(w, job, http.StatusCreated)
}

func (h *Handler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	current, ok := h.store.GetJob(id)
	if !ok {
		notFound(w, "job", id)
		return
	}

	var req JobRequest
	if !h.decode(w, r, &req) {
		return
	}

	if !h.store.UpdateJob(&recruiting.Job{
		ID:          id,
		Title:       req.Title,
		School:      withDefault(req.School, current.School),
		Department:  req.Department,
		Location:    req.Location,
		Type:        withDefault(req.Type, current.Type),
		Status:      recruiting.JobStatus(withDefault(string(req.Status), string(current.Status))),
		Description: req.Description,
	}) {
		notFound(w, "job", id)
		return
	}

	job, _ := h.store.GetJob(id)
	writeJSON(w, job, http.StatusOK)
}

// JobCandidates serves the pipeline table: q, status and min_score narrow the
// list, sort and dir order it. With explain=true the response also lists the
// filter steps that were applied.
func (h *Handler) JobCandidates(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	job, ok := h.store.GetJob(id)
	if !ok {
		notFound(w, "job", id)
		return
	}

	q := r.URL.Query()
	cfg := &filtering.Config{
		Job:    job,
		Query:  q.Get("q"),
		Status: recruiting.CandidateStatus(q.Get("status")),
	}
	if raw := q.Get("min_score"); raw != "" {
		minScore, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "min_score must be an integer")
			return
		}
		cfg.MinScore = &minScore
	}

	steps := filtering.Pipeline()
	if cfg.Status == "" {
		filtering.DisableByName(steps, "status", "no status requested")
	}
	if cfg.MinScore == nil {
		filtering.DisableByName(steps, "min_score", "no minimum score requested")
	}

	candidates, err := filtering.Run(r.Context(), cfg, filtering.Deps{Logger: h.logger}, steps, h.store.Candidates())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sorted, err := sortCandidates(r, candidates)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if explain, _ := strconv.ParseBool(q.Get("explain")); explain {
		writeJSON(w, PipelineExplain{Candidates: sorted, Filters: filtering.Describe(steps)}, http.StatusOK)
		return
	}
	writeJSON(w, sorted, http.StatusOK)
}

func (h *Handler) UnassignedCandidates(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	job, ok := h.store.GetJob(id)
	if !ok {
		notFound(w, "job", id)
		return
	}

	cfg := &filtering.Config{Job: job, Query: r.URL.Query().Get("q")}
	candidates, err := filtering.Run(r.Context(), cfg, filtering.Deps{Logger: h.logger}, filtering.Picker(), h.store.Candidates())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, candidates, http.StatusOK)
}

func (h *Handler) AssignCandidates(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, ok := h.store.GetJob(id); !ok {
		notFound(w, "job", id)
		return
	}

	var req AssignRequest
	if !h.decode(w, r, &req) {
		return
	}
	if missing := h.missingCandidates(req.CandidateIDs); len(missing) > 0 {
		writeError(w, http.StatusBadRequest, "unknown candidates: "+joinIDs(missing))
		return
	}

	if !h.store.AssignCandidatesToJob(id, req.CandidateIDs) {
		notFound(w, "job", id)
		return
	}
	job, _ := h.store.GetJob(id)
	writeJSON(w, job, http.StatusOK)
}

func (h *Handler) ScoreCandidates(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	scored, ok := h.store.ScoreCandidates(id)
	if !ok {
		notFound(w, "job", id)
		return
	}
	writeJSON(w, ScoreResult{JobID: id, Scored: scored}, http.StatusOK)
}

func (h *Handler) StartCampaign(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	job, ok := h.store.GetJob(id)
	if !ok {
		notFound(w, "job", id)
		return
	}

	if err := h.dialer.Start(id); err != nil {
		switch {
		case errors.Is(err, campaign.ErrUnknownJob):
			notFound(w, "job", id)
		case errors.Is(err, campaign.ErrRunning):
			writeError(w, http.StatusConflict, err.Error())
		case errors.Is(err, campaign.ErrClosed):
			writeError(w, http.StatusServiceUnavailable, err.Error())
		default:
			h.logger.Error("starting campaign failed", zap.String("job_id", id), zap.Error(err))
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, CampaignResult{JobID: id, Candidates: len(job.Candidates)}, http.StatusAccepted)
}

func (h *Handler) CancelCampaign(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	reset, err := h.dialer.Cancel(id)
	if err != nil {
		if errors.Is(err, campaign.ErrUnknownJob) {
			notFound(w, "job", id)
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, CancelResult{JobID: id, Reset: reset}, http.StatusOK)
}

func (h *Handler) CallCandidate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	jobID, candidateID := vars["id"], vars["candidateId"]

	if _, ok := h.store.GetJob(jobID); !ok {
		notFound(w, "job", jobID)
		return
	}
	if !h.store.SimulateCall(jobID, candidateID) {
		notFound(w, "candidate", candidateID)
		return
	}
	h.logger.Info("call requested", logger.CallFields(jobID, candidateID)...)

	candidate, _ := h.store.GetCandidate(candidateID)
	writeJSON(w, candidate, http.StatusAccepted)
}

func (h *Handler) missingCandidates(ids []string) []string {
	var missing []string
	for _, id := range ids {
		if _, ok := h.store.GetCandidate(id); !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

func withDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
