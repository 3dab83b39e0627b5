package tools

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tuanngd/awxtool/internal/awx"
)

type ListJobTemplatesInput struct {
	PageInput
}

type GetJobTemplateInput struct {
	TemplateID int `json:"template_id"`
}

type CreateJobTemplateInput struct {
	Name        string `json:"name"`
	InventoryID int    `json:"inventory_id"`
	ProjectID   int    `json:"project_id"`
	// Playbook is the playbook file name within the project, e.g. "site.yml".
	Playbook     string `json:"playbook"`
	CredentialID int    `json:"credential_id,omitempty"`
	Description  string `json:"description,omitempty"`
	// ExtraVars is a JSON document of default extra variables.
	ExtraVars string `json:"extra_vars,omitempty"`
}

type LaunchJobInput struct {
	TemplateID int `json:"template_id"`
	// ExtraVars is a JSON document overriding the template's variables.
	ExtraVars string `json:"extra_vars,omitempty"`
}

// RegisterJobTemplateTools registers the wrappers for the AWX Job Templates
// endpoint group.
func RegisterJobTemplateTools(r *Registry, exec awx.Executor) {
	Register(r, Tool{
		Name:        "list_job_templates",
		Description: "List all job templates. GET /api/v2/job_templates/.",
		Method:      http.MethodGet,
		Path:        "/api/v2/job_templates/",
	}, func(ctx context.Context, in ListJobTemplatesInput) (any, error) {
		q, err := in.query()
		if err != nil {
			return nil, err
		}
		return listAll(ctx, exec, "list_job_templates", "/api/v2/job_templates/", q)
	})

	Register(r, Tool{
		Name:        "get_job_template",
		Description: "Get details about a specific job template. GET /api/v2/job_templates/{template_id}/.",
		Method:      http.MethodGet,
		Path:        "/api/v2/job_templates/{template_id}/",
	}, func(ctx context.Context, in GetJobTemplateInput) (any, error) {
		if err := requireID("template_id", in.TemplateID); err != nil {
			return nil, err
		}
		return call(ctx, exec, awx.RequestSpec{
			Method: http.MethodGet,
			Path:   itemPath("job_templates", in.TemplateID),
			Tool:   "get_job_template",
		})
	})

	Register(r, Tool{
		Name:        "create_job_template",
		Description: "Create a new job template binding an inventory, project and playbook. POST /api/v2/job_templates/.",
		Method:      http.MethodPost,
		Path:        "/api/v2/job_templates/",
	}, func(ctx context.Context, in CreateJobTemplateInput) (any, error) {
		if err := requireString("name", in.Name); err != nil {
			return nil, err
		}
		if err := requireID("inventory_id", in.InventoryID); err != nil {
			return nil, err
		}
		if err := requireID("project_id", in.ProjectID); err != nil {
			return nil, err
		}
		if err := requireString("playbook", in.Playbook); err != nil {
			return nil, err
		}
		if err := validJSONDoc("extra_vars", in.ExtraVars); err != nil {
			return nil, err
		}
		body := map[string]any{
			"name":        in.Name,
			"inventory":   in.InventoryID,
			"project":     in.ProjectID,
			"playbook":    in.Playbook,
			"description": in.Description,
			"job_type":    "run",
			"verbosity":   0,
		}
		if in.ExtraVars != "" {
			body["extra_vars"] = in.ExtraVars
		}
		if in.CredentialID != 0 {
			if err := requireID("credential_id", in.CredentialID); err != nil {
				return nil, err
			}
			body["credential"] = in.CredentialID
		}
		return call(ctx, exec, awx.RequestSpec{
			Method: http.MethodPost,
			Path:   "/api/v2/job_templates/",
			Body:   body,
			Tool:   "create_job_template",
		})
	})

	Register(r, Tool{
		Name:        "launch_job",
		Description: "Launch a job from a job template. POST /api/v2/job_templates/{template_id}/launch/.",
		Method:      http.MethodPost,
		Path:        "/api/v2/job_templates/{template_id}/launch/",
	}, func(ctx context.Context, in LaunchJobInput) (any, error) {
		if err := requireID("template_id", in.TemplateID); err != nil {
			return nil, err
		}
		if err := validJSONDoc("extra_vars", in.ExtraVars); err != nil {
			return nil, err
		}
		body := map[string]any{}
		if in.ExtraVars != "" {
			body["extra_vars"] = in.ExtraVars
		}
		return call(ctx, exec, awx.RequestSpec{
			Method: http.MethodPost,
			Path:   fmt.Sprintf("/api/v2/job_templates/%d/launch/", in.TemplateID),
			Body:   body,
			Tool:   "launch_job",
		})
	})
}
