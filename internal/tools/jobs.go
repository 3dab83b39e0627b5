package tools

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tuanngd/awxtool/internal/awx"
)

// jobStatuses are the job lifecycle states AWX reports.
var jobStatuses = map[string]bool{
	"new":        true,
	"pending":    true,
	"waiting":    true,
	"running":    true,
	"successful": true,
	"failed":     true,
	"error":      true,
	"canceled":   true,
}

// stdoutFormats are the renderings the job stdout endpoint supports.
var stdoutFormats = map[string]bool{
	"txt":  true,
	"html": true,
	"json": true,
	"ansi": true,
}

type ListJobsInput struct {
	// Status filters jobs by lifecycle state (new, pending, waiting, running,
	// successful, failed, error, canceled).
	Status string `json:"status,omitempty"`
	PageInput
}

type GetJobInput struct {
	JobID int `json:"job_id"`
}

type CancelJobInput struct {
	JobID int `json:"job_id"`
}

type JobStdoutInput struct {
	JobID int `json:"job_id"`
	// Format selects the stdout rendering: txt, html, json or ansi.
	Format string `json:"format,omitempty"`
}

// RegisterJobTools registers the wrappers for the AWX Jobs endpoint group.
func RegisterJobTools(r *Registry, exec awx.Executor) {
	Register(r, Tool{
		Name:        "list_jobs",
		Description: "List jobs, optionally filtered by status. GET /api/v2/jobs/.",
		Method:      http.MethodGet,
		Path:        "/api/v2/jobs/",
	}, func(ctx context.Context, in ListJobsInput) (any, error) {
		q, err := in.query()
		if err != nil {
			return nil, err
		}
		if in.Status != "" {
			if !jobStatuses[in.Status] {
				return nil, awx.Validationf("status must be one of: new, pending, waiting, running, successful, failed, error, canceled")
			}
			q["status"] = in.Status
		}
		return listAll(ctx, exec, "list_jobs", "/api/v2/jobs/", q)
	})

	Register(r, Tool{
		Name:        "get_job",
		Description: "Get details about a specific job. GET /api/v2/jobs/{job_id}/.",
		Method:      http.MethodGet,
		Path:        "/api/v2/jobs/{job_id}/",
	}, func(ctx context.Context, in GetJobInput) (any, error) {
		if err := requireID("job_id", in.JobID); err != nil {
			return nil, err
		}
		return call(ctx, exec, awx.RequestSpec{
			Method: http.MethodGet,
			Path:   itemPath("jobs", in.JobID),
			Tool:   "get_job",
		})
	})

	Register(r, Tool{
		Name:        "cancel_job",
		Description: "Cancel a running job. POST /api/v2/jobs/{job_id}/cancel/.",
		Method:      http.MethodPost,
		Path:        "/api/v2/jobs/{job_id}/cancel/",
	}, func(ctx context.Context, in CancelJobInput) (any, error) {
		if err := requireID("job_id", in.JobID); err != nil {
			return nil, err
		}
		return call(ctx, exec, awx.RequestSpec{
			Method: http.MethodPost,
			Path:   fmt.Sprintf("/api/v2/jobs/%d/cancel/", in.JobID),
			Tool:   "cancel_job",
		})
	})

	Register(r, Tool{
		Name:        "get_job_stdout",
		Description: "Get the standard output of a job. GET /api/v2/jobs/{job_id}/stdout/.",
		Method:      http.MethodGet,
		Path:        "/api/v2/jobs/{job_id}/stdout/",
	}, func(ctx context.Context, in JobStdoutInput) (any, error) {
		if err := requireID("job_id", in.JobID); err != nil {
			return nil, err
		}
		format := in.Format
		if format == "" {
			format = "txt"
		}
		if !stdoutFormats[format] {
			return nil, awx.Validationf("format must be one of: txt, html, json, ansi")
		}
		res, err := exec.Do(ctx, awx.RequestSpec{
			Method: http.MethodGet,
			Path:   fmt.Sprintf("/api/v2/jobs/%d/stdout/", in.JobID),
			Query:  map[string]string{"format": format},
			Tool:   "get_job_stdout",
		})
		if err != nil {
			return nil, err
		}
		if !res.OK {
			return nil, awx.FromStatus(res.StatusCode, res.Raw)
		}
		// Non-JSON renderings come back as plain text; wrap them so every
		// tool returns a JSON-shaped result.
		if format != "json" {
			return map[string]any{"status": "success", "stdout": string(res.Raw)}, nil
		}
		return res.Body, nil
	})
}
