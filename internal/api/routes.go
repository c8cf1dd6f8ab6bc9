// Package api exposes the hiring desk over HTTP with a JSON interface.
package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/spigell/hiring-desk/internal/campaign"
	"github.com/spigell/hiring-desk/internal/store"
)

type Options struct {
	Version string
	// Token protects the /v1 routes with bearer authentication when set.
	Token  string
	Logger *zap.Logger
}

type Handler struct {
	store    *store.Store
	dialer   *campaign.Dialer
	validate *validator.Validate
	logger   *zap.Logger
}

// NewHandler builds the HTTP handler serving the store. CORS wraps the router so
// preflight requests are answered for every route.
func NewHandler(st *store.Store, dialer *campaign.Dialer, opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	h := &Handler{
		store:    st,
		dialer:   dialer,
		validate: newValidator(),
		logger:   log,
	}

	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Use(LoggingMiddleware(log))
	r.Use(RecoveryMiddleware(log))

	system := &SystemHandler{}
	r.HandleFunc("/health", system.HealthHandler).Methods(http.MethodGet)
	r.HandleFunc("/version", system.VersionHandler(opts.Version)).Methods(http.MethodGet)

	// The /v1 routes live on the root router so that a method mismatch reaches
	// MethodNotAllowedHandler; mux subrouters report it as not found.
	auth := TokenAuthMiddleware(opts.Token)
	v1 := func(path string, fn http.HandlerFunc) *mux.Route {
		return r.Handle("/v1"+path, auth(fn))
	}

	v1("/jobs", h.ListJobs).Methods(http.MethodGet)
	v1("/jobs", h.CreateJob).Methods(http.MethodPost)
	v1("/jobs/{id}", h.GetJob).Methods(http.MethodGet)
	v1("/jobs/{id}", h.UpdateJob).Methods(http.MethodPut)
	v1("/jobs/{id}/candidates", h.JobCandidates).Methods(http.MethodGet)
	v1("/jobs/{id}/candidates", h.AssignCandidates).Methods(http.MethodPost)
	v1("/jobs/{id}/unassigned", h.UnassignedCandidates).Methods(http.MethodGet)
	v1("/jobs/{id}/score", h.ScoreCandidates).Methods(http.MethodPost)
	v1("/jobs/{id}/calls", h.StartCampaign).Methods(http.MethodPost)
	v1("/jobs/{id}/calls", h.CancelCampaign).Methods(http.MethodDelete)
	v1("/jobs/{id}/candidates/{candidateId}/call", h.CallCandidate).Methods(http.MethodPost)

	v1("/candidates", h.ListCandidates).Methods(http.MethodGet)
	v1("/candidates", h.CreateCandidate).Methods(http.MethodPost)
	v1("/candidates/uploads", h.UploadCandidates).Methods(http.MethodPost)
	v1("/candidates/status", h.UpdateCandidateStatus).Methods(http.MethodPut)
	v1("/candidates/{id}", h.GetCandidate).Methods(http.MethodGet)

	v1("/agents", h.ListAgents).Methods(http.MethodGet)
	v1("/agents", h.CreateAgent).Methods(http.MethodPost)
	v1("/agents/{id}", h.UpdateAgent).Methods(http.MethodPut)
	v1("/agents/{id}", h.DeleteAgent).Methods(http.MethodDelete)

	v1("/language", h.GetLanguage).Methods(http.MethodGet)
	v1("/language", h.SetLanguage).Methods(http.MethodPut)
	v1("/overview", h.Overview).Methods(http.MethodGet)

	return CORSMiddleware(r)
}
