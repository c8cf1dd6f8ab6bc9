package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/hiring-desk/internal/ai/heuristic"
	"github.com/spigell/hiring-desk/internal/api"
	"github.com/spigell/hiring-desk/internal/campaign"
	"github.com/spigell/hiring-desk/internal/filtering"
	"github.com/spigell/hiring-desk/internal/recruiting"
	"github.com/spigell/hiring-desk/internal/store"
)

type fixture struct {
	store     *store.Store
	scheduler *store.ManualScheduler
	dialer    *campaign.Dialer
	handler   http.Handler
	logs      *observer.ObservedLogs
}

func newFixture(t *testing.T, token string) *fixture {
	t.Helper()

	scheduler := &store.ManualScheduler{}
	st := store.New(store.Seed{
		Jobs: []*recruiting.Job{
			{
				ID:          "1",
				Title:       "Mathematics Teacher",
				School:      "Doha Modern School",
				Status:      recruiting.JobActive,
				Candidates:  []string{"c1", "c2"},
				CreatedAt:   time.Date(2025, time.December, 24, 0, 0, 0, 0, time.UTC),
				Description: "Mathematics teaching experience required.",
			},
		},
		Candidates: []*recruiting.Candidate{
			{ID: "c1", Name: "Aisha", Role: "Mathematics Teacher", Exp: "5 Yrs", Salary: "12,000 QAR", Status: recruiting.CandidatePending},
			{ID: "c2", Name: "Bilal", Role: "Lab Technician", Exp: "1 Yrs", Salary: "9,000 QAR", Status: recruiting.CandidateVoicemail},
			{ID: "c3", Name: "Carla", Role: "Principal", Exp: "12 Yrs", Salary: "25,000 QAR", Status: recruiting.CandidatePending},
		},
		Agents: []*recruiting.Agent{
			{ID: "a1", Name: "Sarah (Screening)", Type: recruiting.AgentScreening, Language: recruiting.AgentEnglish, Status: recruiting.AgentActive},
		},
	},
		store.WithScheduler(scheduler),
		store.WithMatcher(heuristic.NewMatcher(heuristic.FixedNoise(0), nil)),
	)

	dialer := campaign.New(st, 0, nil)
	t.Cleanup(dialer.Close)

	core, logs := observer.New(zapcore.DebugLevel)

	return &fixture{
		store:     st,
		scheduler: scheduler,
		dialer:    dialer,
		handler:   api.NewHandler(st, dialer, api.Options{Version: "1.2.3", Token: token, Logger: zap.New(core)}),
		logs:      logs,
	}
}

func (f *fixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestSystemRoutes(t *testing.T) {
	f := newFixture(t, "secret")

	w := f.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.Contains(t, w.Body.String(), `"status":"ok"`)

	w = f.do(t, http.MethodGet, "/version", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1.2.3", decode[map[string]string](t, w)["version"])
}

func TestTokenAuth(t *testing.T) {
	f := newFixture(t, "secret")

	w := f.do(t, http.MethodGet, "/v1/jobs", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/v1/jobs", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/v1/jobs", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rec = httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	f := newFixture(t, "")

	w := f.do(t, http.MethodOptions, "/v1/jobs/1/score", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestUnknownRoute(t *testing.T) {
	f := newFixture(t, "")

	w := f.do(t, http.MethodGet, "/v1/nothing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, decode[map[string]string](t, w)["error"], "not found")

	for _, tc := range []struct{ method, path string }{
		{http.MethodPatch, "/v1/jobs"},
		{http.MethodDelete, "/v1/jobs/1"},
		{http.MethodPut, "/v1/overview"},
		{http.MethodGet, "/v1/jobs/1/score"},
	} {
		w = f.do(t, tc.method, tc.path, nil)
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code, "%s %s", tc.method, tc.path)
		assert.Equal(t, "method not allowed", decode[map[string]string](t, w)["error"])
	}
}

func TestMethodNotAllowedWithToken(t *testing.T) {
	f := newFixture(t, "secret")

	w := f.do(t, http.MethodPatch, "/v1/jobs", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestJobs(t *testing.T) {
	f := newFixture(t, "")

	w := f.do(t, http.MethodGet, "/v1/jobs/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Mathematics Teacher", decode[recruiting.Job](t, w).Title)

	w = f.do(t, http.MethodGet, "/v1/jobs/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.do(t, http.MethodPost, "/v1/jobs", api.JobRequest{Title: "History Teacher", Candidates: []string{"c3", "c3"}})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[recruiting.Job](t, w)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, recruiting.JobActive, created.Status)
	assert.Equal(t, "Doha Modern School", created.School)
	assert.Equal(t, "Full-time", created.Type)
	assert.Equal(t, []string{"c3"}, created.Candidates)

	jobs := decode[[]recruiting.Job](t, f.do(t, http.MethodGet, "/v1/jobs", nil))
	require.Len(t, jobs, 2)
	assert.Equal(t, created.ID, jobs[0].ID)
}

func TestCreateJobValidation(t *testing.T) {
	f := newFixture(t, "")

	w := f.do(t, http.MethodPost, "/v1/jobs", api.JobRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[map[string]string](t, w)["error"], "title is required")

	w = f.do(t, http.MethodPost, "/v1/jobs", api.JobRequest{Title: "x", Status: "Paused"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[map[string]string](t, w)["error"], "status must be one of")

	w = f.do(t, http.MethodPost, "/v1/jobs", api.JobRequest{Title: "x", Candidates: []string{"ghost"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[map[string]string](t, w)["error"], "ghost")

	req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateJob(t *testing.T) {
	f := newFixture(t, "")

	w := f.do(t, http.MethodPut, "/v1/jobs/1", api.JobRequest{Title: "Head of Mathematics", Candidates: []string{"c3"}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	job := decode[recruiting.Job](t, w)
	assert.Equal(t, "Head of Mathematics", job.Title)
	assert.Equal(t, recruiting.JobActive, job.Status)
	assert.Equal(t, []string{"c1", "c2"}, job.Candidates)
	assert.Equal(t, "Doha Modern School", job.School)

	w = f.do(t, http.MethodPut, "/v1/jobs/1", api.JobRequest{Title: "Head of Mathematics", School: "Al Khor Academy", Type: "Part-time"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	job = decode[recruiting.Job](t, w)
	assert.Equal(t, "Al Khor Academy", job.School)
	assert.Equal(t, "Part-time", job.Type)

	w = f.do(t, http.MethodPut, "/v1/jobs/1", api.JobRequest{Title: "Head of Mathematics"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	job = decode[recruiting.Job](t, w)
	assert.Equal(t, "Al Khor Academy", job.School)
	assert.Equal(t, "Part-time", job.Type)

	w = f.do(t, http.MethodPut, "/v1/jobs/missing", api.JobRequest{Title: "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAssignAndPicker(t *testing.T) {
	f := newFixture(t, "")

	unassigned := decode[[]recruiting.Candidate](t, f.do(t, http.MethodGet, "/v1/jobs/1/unassigned", nil))
	require.Len(t, unassigned, 1)
	assert.Equal(t, "c3", unassigned[0].ID)

	w := f.do(t, http.MethodPost, "/v1/jobs/1/candidates", api.AssignRequest{CandidateIDs: []string{"c3", "c1"}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, []string{"c1", "c2", "c3"}, decode[recruiting.Job](t, w).Candidates)

	unassigned = decode[[]recruiting.Candidate](t, f.do(t, http.MethodGet, "/v1/jobs/1/unassigned", nil))
	assert.Empty(t, unassigned)

	w = f.do(t, http.MethodPost, "/v1/jobs/1/candidates", api.AssignRequest{CandidateIDs: []string{"ghost"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(t, http.MethodPost, "/v1/jobs/1/candidates", api.AssignRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(t, http.MethodPost, "/v1/jobs/missing/candidates", api.AssignRequest{CandidateIDs: []string{"c1"}})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestScoreAndPipeline(t *testing.T) {
	f := newFixture(t, "")

	w := f.do(t, http.MethodPost, "/v1/jobs/1/score", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, api.ScoreResult{JobID: "1", Scored: 2}, decode[api.ScoreResult](t, w))

	pipeline := decode[[]recruiting.Candidate](t, f.do(t, http.MethodGet, "/v1/jobs/1/candidates?sort=matchScore&dir=desc", nil))
	require.Len(t, pipeline, 2)
	assert.Equal(t, "c1", pipeline[0].ID)
	require.NotNil(t, pipeline[0].MatchScore)
	assert.Equal(t, 78, *pipeline[0].MatchScore)
	assert.Equal(t, 15, *pipeline[1].MatchScore)

	filtered := decode[[]recruiting.Candidate](t, f.do(t, http.MethodGet, "/v1/jobs/1/candidates?min_score=50", nil))
	require.Len(t, filtered, 1)
	assert.Equal(t, "c1", filtered[0].ID)

	filtered = decode[[]recruiting.Candidate](t, f.do(t, http.MethodGet, "/v1/jobs/1/candidates?status=Voicemail&q=bil", nil))
	require.Len(t, filtered, 1)
	assert.Equal(t, "c2", filtered[0].ID)

	for _, query := range []string{"min_score=high", "min_score=500", "status=Lost", "sort=salary", "dir=sideways"} {
		w = f.do(t, http.MethodGet, "/v1/jobs/1/candidates?"+query, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, query)
	}

	w = f.do(t, http.MethodPost, "/v1/jobs/missing/score", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPipelineExplain(t *testing.T) {
	f := newFixture(t, "")

	w := f.do(t, http.MethodGet, "/v1/jobs/1/candidates?explain=true&status=Voicemail", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	got := decode[api.PipelineExplain](t, w)

	require.Len(t, got.Candidates, 1)
	assert.Equal(t, "c2", got.Candidates[0].ID)
	assert.Equal(t, []filtering.Status{
		{Name: "assigned", Enabled: true, Details: map[string]string{"job_id": "1"}},
		{Name: "query", Enabled: true},
		{Name: "status", Enabled: true, Details: map[string]string{"status": "Voicemail"}},
		{Name: "min_score", Enabled: false, Reason: "no minimum score requested"},
	}, got.Filters)

	plain := decode[[]recruiting.Candidate](t, f.do(t, http.MethodGet, "/v1/jobs/1/candidates", nil))
	assert.Len(t, plain, 2)
}

func TestCallCandidate(t *testing.T) {
	f := newFixture(t, "")

	w := f.do(t, http.MethodPost, "/v1/jobs/1/candidates/c1/call", nil)
	require.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, recruiting.CandidateScheduled, decode[recruiting.Candidate](t, w).Status)

	f.scheduler.Advance(store.DefaultCallDelay)
	c1 := decode[recruiting.Candidate](t, f.do(t, http.MethodGet, "/v1/candidates/c1", nil))
	assert.Equal(t, recruiting.CandidateAnswered, c1.Status)
	require.NotNil(t, c1.CallDetails)
	assert.Len(t, c1.CallDetails.Transcript, 6)

	w = f.do(t, http.MethodPost, "/v1/jobs/1/candidates/ghost/call", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = f.do(t, http.MethodPost, "/v1/jobs/missing/candidates/c1/call", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCampaign(t *testing.T) {
	f := newFixture(t, "")

	w := f.do(t, http.MethodPost, "/v1/jobs/1/calls", nil)
	require.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, api.CampaignResult{JobID: "1", Candidates: 2}, decode[api.CampaignResult](t, w))

	require.Eventually(t, func() bool { return !f.dialer.Running("1") }, 5*time.Second, time.Millisecond)
	assert.Equal(t, 2, f.scheduler.Pending())

	w = f.do(t, http.MethodDelete, "/v1/jobs/1/calls", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, api.CancelResult{JobID: "1", Reset: 2}, decode[api.CancelResult](t, w))

	w = f.do(t, http.MethodPost, "/v1/jobs/missing/calls", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = f.do(t, http.MethodDelete, "/v1/jobs/missing/calls", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	f.dialer.Close()
	w = f.do(t, http.MethodPost, "/v1/jobs/1/calls", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestCandidates(t *testing.T) {
	f := newFixture(t, "")

	w := f.do(t, http.MethodPost, "/v1/candidates", api.CandidateRequest{Name: "Noor", Role: "Art Teacher", Email: "noor@example.com"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[recruiting.Candidate](t, w)
	assert.Equal(t, recruiting.CandidatePending, created.Status)

	added := f.logs.FilterMessage("candidate added").All()
	require.Len(t, added, 1)
	assert.Equal(t, created.ID, added[0].ContextMap()["candidate_id"])

	w = f.do(t, http.MethodPost, "/v1/candidates", api.CandidateRequest{Name: "Noor", Email: "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	all := decode[[]recruiting.Candidate](t, f.do(t, http.MethodGet, "/v1/candidates", nil))
	require.Len(t, all, 4)
	assert.Equal(t, created.ID, all[0].ID)

	byName := decode[[]recruiting.Candidate](t, f.do(t, http.MethodGet, "/v1/candidates?sort=name", nil))
	assert.Equal(t, []string{"c1", "c2", "c3", created.ID}, recruiting.CandidateIDs(ptrs(byName)))

	w = f.do(t, http.MethodGet, "/v1/candidates/ghost", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUploadCandidates(t *testing.T) {
	f := newFixture(t, "")

	w := f.do(t, http.MethodPost, "/v1/candidates/uploads", api.UploadRequest{FileNames: []string{"Jane Doe.pdf", "omar.docx"}, JobID: "1"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	uploaded := decode[[]recruiting.Candidate](t, w)
	require.Len(t, uploaded, 2)
	assert.Equal(t, "Jane Doe", uploaded[0].Name)
	assert.Equal(t, "Detected from CV", uploaded[0].Role)
	assert.Equal(t, 2, f.logs.FilterMessage("candidate uploaded").Len())

	job, _ := f.store.GetJob("1")
	assert.Equal(t, []string{"c1", "c2", uploaded[0].ID, uploaded[1].ID}, job.Candidates)

	w = f.do(t, http.MethodPost, "/v1/candidates/uploads", api.UploadRequest{FileNames: []string{"x.pdf"}, JobID: "missing"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Len(t, f.store.Candidates(), 5)
}

func TestUpdateCandidateStatus(t *testing.T) {
	f := newFixture(t, "")

	w := f.do(t, http.MethodPut, "/v1/candidates/status", api.StatusRequest{CandidateIDs: []string{"c1", "c3", "ghost"}, Status: recruiting.CandidateNoAnswer})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 2, decode[api.UpdatedResult](t, w).Updated)

	c3, _ := f.store.GetCandidate("c3")
	assert.Equal(t, recruiting.CandidateNoAnswer, c3.Status)

	w = f.do(t, http.MethodPut, "/v1/candidates/status", api.StatusRequest{CandidateIDs: []string{"c1"}, Status: "Hired"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAgents(t *testing.T) {
	f := newFixture(t, "")

	w := f.do(t, http.MethodPost, "/v1/agents", api.AgentRequest{Name: "Omar (Bilingual)", Type: recruiting.AgentScreening, Language: recruiting.AgentBilingual})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[recruiting.Agent](t, w)
	assert.Equal(t, recruiting.AgentIdle, created.Status)

	w = f.do(t, http.MethodPost, "/v1/agents", api.AgentRequest{Name: "x", Type: "Sales", Language: recruiting.AgentEnglish})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(t, http.MethodPut, "/v1/agents/a1", api.AgentRequest{Name: "Sarah", Type: recruiting.AgentScreening, Language: recruiting.AgentArabic})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[recruiting.Agent](t, w)
	assert.Equal(t, recruiting.AgentActive, updated.Status)
	assert.Equal(t, recruiting.AgentArabic, updated.Language)

	assert.Equal(t, http.StatusNoContent, f.do(t, http.MethodDelete, "/v1/agents/"+created.ID, nil).Code)
	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodDelete, "/v1/agents/"+created.ID, nil).Code)
	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodPut, "/v1/agents/ghost", api.AgentRequest{Name: "x", Type: recruiting.AgentSupport, Language: recruiting.AgentEnglish}).Code)

	agents := decode[[]recruiting.Agent](t, f.do(t, http.MethodGet, "/v1/agents", nil))
	assert.Len(t, agents, 1)
}

func TestLanguageAndOverview(t *testing.T) {
	f := newFixture(t, "")

	assert.Equal(t, store.LanguageEnglish, decode[api.LanguageBody](t, f.do(t, http.MethodGet, "/v1/language", nil)).Language)

	w := f.do(t, http.MethodPut, "/v1/language", api.LanguageBody{Language: store.LanguageArabic})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, store.LanguageArabic, f.store.Language())

	w = f.do(t, http.MethodPut, "/v1/language", api.LanguageBody{Language: "fr"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	f.do(t, http.MethodPost, "/v1/jobs/1/score", nil)
	overview := decode[api.Overview](t, f.do(t, http.MethodGet, "/v1/overview", nil))
	assert.Equal(t, 1, overview.Jobs)
	assert.Equal(t, 1, overview.ActiveJobs)
	assert.Equal(t, 3, overview.Candidates)
	assert.Equal(t, 2, overview.Scored)
	assert.Equal(t, store.LanguageArabic, overview.Language)
}

func ptrs(c []recruiting.Candidate) []*recruiting.Candidate {
	out := make([]*recruiting.Candidate, len(c))
	for i := range c {
		out[i] = &c[i]
	}
	return out
}
