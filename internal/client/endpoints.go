package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/spigell/hiring-desk/internal/api"
	"github.com/spigell/hiring-desk/internal/recruiting"
)

// PipelineQuery narrows and orders the candidates of a job.
type PipelineQuery struct {
	Query    string
	Status   recruiting.CandidateStatus
	MinScore *int
	Sort     string
	Dir      string
}

func (q PipelineQuery) values() url.Values {
	v := url.Values{}
	if q.Query != "" {
		v.Set("q", q.Query)
	}
	if q.Status != "" {
		v.Set("status", string(q.Status))
	}
	if q.MinScore != nil {
		v.Set("min_score", strconv.Itoa(*q.MinScore))
	}
	if q.Sort != "" {
		v.Set("sort", q.Sort)
	}
	if q.Dir != "" {
		v.Set("dir", q.Dir)
	}
	return v
}

func (c *Client) Health(ctx context.Context) error {
	return c.getJSON(ctx, "/health", nil, nil)
}

func (c *Client) Jobs(ctx context.Context) ([]*recruiting.Job, error) {
	var jobs []*recruiting.Job
	if err := c.getJSON(ctx, "/v1/jobs", nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (c *Client) Job(ctx context.Context, id string) (*recruiting.Job, error) {
	var job *recruiting.Job
	if err := c.getJSON(ctx, "/v1/jobs/"+url.PathEscape(id), nil, &job); err != nil {
		return nil, err
	}
	return job, nil
}

func (c *Client) CreateJob(ctx context.Context, req api.JobRequest) (*recruiting.Job, error) {
	var job *recruiting.Job
	if err := c.send(ctx, http.MethodPost, "/v1/jobs", nil, req, http.StatusCreated, &job); err != nil {
		return nil, err
	}
	return job, nil
}

func (c *Client) JobCandidates(ctx context.Context, jobID string, q PipelineQuery) ([]*recruiting.Candidate, error) {
	var candidates []*recruiting.Candidate
	if err := c.getJSON(ctx, "/v1/jobs/"+url.PathEscape(jobID)+"/candidates", q.values(), &candidates); err != nil {
		return nil, err
	}
	return candidates, nil
}

// ExplainPipeline is JobCandidates plus the filter steps the server applied.
func (c *Client) ExplainPipeline(ctx context.Context, jobID string, q PipelineQuery) (*api.PipelineExplain, error) {
	v := q.values()
	v.Set("explain", "true")

	var out *api.PipelineExplain
	if err := c.getJSON(ctx, "/v1/jobs/"+url.PathEscape(jobID)+"/candidates", v, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AssignCandidates(ctx context.Context, jobID string, ids []string) (*recruiting.Job, error) {
	var job *recruiting.Job
	body := api.AssignRequest{CandidateIDs: ids}
	if err := c.send(ctx, http.MethodPost, "/v1/jobs/"+url.PathEscape(jobID)+"/candidates", nil, body, http.StatusOK, &job); err != nil {
		return nil, err
	}
	return job, nil
}

func (c *Client) Score(ctx context.Context, jobID string) (int, error) {
	var result api.ScoreResult
	if err := c.send(ctx, http.MethodPost, "/v1/jobs/"+url.PathEscape(jobID)+"/score", nil, nil, http.StatusOK, &result); err != nil {
		return 0, err
	}
	return result.Scored, nil
}

// CallAll starts a campaign on the server and returns the pipeline size.
func (c *Client) CallAll(ctx context.Context, jobID string) (int, error) {
	var result api.CampaignResult
	if err := c.send(ctx, http.MethodPost, "/v1/jobs/"+url.PathEscape(jobID)+"/calls", nil, nil, http.StatusAccepted, &result); err != nil {
		return 0, err
	}
	return result.Candidates, nil
}

func (c *Client) CancelCalls(ctx context.Context, jobID string) (int, error) {
	var result api.CancelResult
	if err := c.send(ctx, http.MethodDelete, "/v1/jobs/"+url.PathEscape(jobID)+"/calls", nil, nil, http.StatusOK, &result); err != nil {
		return 0, err
	}
	return result.Reset, nil
}

func (c *Client) Call(ctx context.Context, jobID, candidateID string) (*recruiting.Candidate, error) {
	var candidate *recruiting.Candidate
	path := "/v1/jobs/" + url.PathEscape(jobID) + "/candidates/" + url.PathEscape(candidateID) + "/call"
	if err := c.send(ctx, http.MethodPost, path, nil, nil, http.StatusAccepted, &candidate); err != nil {
		return nil, err
	}
	return candidate, nil
}

func (c *Client) Candidate(ctx context.Context, id string) (*recruiting.Candidate, error) {
	var candidate *recruiting.Candidate
	if err := c.getJSON(ctx, "/v1/candidates/"+url.PathEscape(id), nil, &candidate); err != nil {
		return nil, err
	}
	return candidate, nil
}

func (c *Client) UpdateStatus(ctx context.Context, status recruiting.CandidateStatus, ids []string) (int, error) {
	var result api.UpdatedResult
	body := api.StatusRequest{CandidateIDs: ids, Status: status}
	if err := c.send(ctx, http.MethodPut, "/v1/candidates/status", nil, body, http.StatusOK, &result); err != nil {
		return 0, err
	}
	return result.Updated, nil
}

func (c *Client) Upload(ctx context.Context, jobID string, fileNames []string) ([]*recruiting.Candidate, error) {
	var candidates []*recruiting.Candidate
	body := api.UploadRequest{FileNames: fileNames, JobID: jobID}
	if err := c.send(ctx, http.MethodPost, "/v1/candidates/uploads", nil, body, http.StatusCreated, &candidates); err != nil {
		return nil, err
	}
	return candidates, nil
}

func (c *Client) Overview(ctx context.Context) (*api.Overview, error) {
	var overview *api.Overview
	if err := c.getJSON(ctx, "/v1/overview", nil, &overview); err != nil {
		return nil, err
	}
	return overview, nil
}
