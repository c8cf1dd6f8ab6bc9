package api

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/spigell/hiring-desk/internal/filtering"
	"github.com/spigell/hiring-desk/internal/logger"
	"github.com/spigell/hiring-desk/internal/recruiting"
	"github.com/spigell/hiring-desk/internal/seed"
)

// ListCandidates returns the whole pool. q and status narrow it, sort and dir
// order it.
func (h *Handler) ListCandidates(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	cfg := &filtering.Config{
		Query:  q.Get("q"),
		Status: recruiting.CandidateStatus(q.Get("status")),
	}

	steps := []filtering.Filter{filtering.NewQuery(), filtering.NewStatus()}
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
	writeJSON(w, sorted, http.StatusOK)
}

func (h *Handler) GetCandidate(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	candidate, ok := h.store.GetCandidate(id)
	if !ok {
		notFound(w, "candidate", id)
		return
	}
	writeJSON(w, candidate, http.StatusOK)
}

func (h *Handler) CreateCandidate(w http.ResponseWriter, r *http.Request) {
	var req CandidateRequest
	if !h.decode(w, r, &req) {
		return
	}

	candidate := &recruiting.Candidate{
		ID:     uuid.NewString(),
		Name:   req.Name,
		Role:   req.Role,
		Email:  req.Email,
		Phone:  req.Phone,
		Exp:    req.Exp,
		Salary: req.Salary,
		Status: recruiting.CandidateStatus(withDefault(string(req.Status), string(recruiting.CandidatePending))),
		Avatar: req.Avatar,
		CVFile: req.CVFile,
	}

	h.store.AddCandidate(candidate)
	h.logger.Info("candidate added", logger.CandidateFields(candidate.ID)...)
	writeJSON(w, candidate, http.StatusCreated)
}

// UploadCandidates turns uploaded CV file names into candidates and optionally
// assigns them to a job.
func (h *Handler) UploadCandidates(w http.ResponseWriter, r *http.Request) {
	var req UploadRequest
	if !h.decode(w, r, &req) {
		return
	}

	if req.JobID != "" {
		if _, ok := h.store.GetJob(req.JobID); !ok {
			notFound(w, "job", req.JobID)
			return
		}
	}

	candidates := seed.FromUploads(req.FileNames)
	if len(candidates) == 0 {
		writeError(w, http.StatusBadRequest, "no usable file names")
		return
	}
	for _, c := range candidates {
		h.store.AddCandidate(c)
		h.logger.Info("candidate uploaded", append(logger.CandidateFields(c.ID), zap.String("name", c.Name))...)
	}
	if req.JobID != "" {
		h.store.AssignCandidatesToJob(req.JobID, recruiting.CandidateIDs(candidates))
	}

	writeJSON(w, candidates, http.StatusCreated)
}

func (h *Handler) UpdateCandidateStatus(w http.ResponseWriter, r *http.Request) {
	var req StatusRequest
	if !h.decode(w, r, &req) {
		return
	}

	updated := h.store.UpdateCandidateStatus(req.CandidateIDs, req.Status)
	for _, id := range req.CandidateIDs {
		h.logger.Debug("candidate status set", append(logger.CandidateFields(id), zap.String("status", string(req.Status)))...)
	}
	writeJSON(w, UpdatedResult{Updated: updated}, http.StatusOK)
}

func sortCandidates(r *http.Request, candidates []*recruiting.Candidate) ([]*recruiting.Candidate, error) {
	q := r.URL.Query()
	key, err := filtering.ParseSortKey(q.Get("sort"))
	if err != nil {
		return nil, err
	}
	dir, err := filtering.ParseDirection(q.Get("dir"))
	if err != nil {
		return nil, err
	}
	return filtering.Sort(candidates, key, dir), nil
}

func joinIDs(ids []string) string {
	return strings.Join(ids, ", ")
}
