package tools

import (
	"context"
	"net/http"

	"github.com/tuanngd/awxtool/internal/awx"
)

// scmTypes are the source control backends AWX projects support. The empty
// string means manual.
var scmTypes = map[string]bool{
	"":       true,
	"git":    true,
	"svn":    true,
	"manual": true,
}

type ListProjectsInput struct {
	PageInput
}

type GetProjectInput struct {
	ProjectID int `json:"project_id"`
}

type CreateProjectInput struct {
	Name           string `json:"name"`
	OrganizationID int    `json:"organization_id"`
	// ScmType is one of git, svn or manual (empty means manual).
	ScmType string `json:"scm_type"`
	// ScmURL is the repository URL, required for non-manual SCM types.
	ScmURL       string `json:"scm_url,omitempty"`
	ScmBranch    string `json:"scm_branch,omitempty"`
	CredentialID int    `json:"credential_id,omitempty"`
	Description  string `json:"description,omitempty"`
}

// RegisterProjectTools registers the wrappers for the AWX Projects endpoint
// group.
func RegisterProjectTools(r *Registry, exec awx.Executor) {
	Register(r, Tool{
		Name:        "list_projects",
		Description: "List all projects. GET /api/v2/projects/.",
		Method:      http.MethodGet,
		Path:        "/api/v2/projects/",
	}, func(ctx context.Context, in ListProjectsInput) (any, error) {
		q, err := in.query()
		if err != nil {
			return nil, err
		}
		return listAll(ctx, exec, "list_projects", "/api/v2/projects/", q)
	})

	Register(r, Tool{
		Name:        "get_project",
		Description: "Get details about a specific project. GET /api/v2/projects/{project_id}/.",
		Method:      http.MethodGet,
		Path:        "/api/v2/projects/{project_id}/",
	}, func(ctx context.Context, in GetProjectInput) (any, error) {
		if err := requireID("project_id", in.ProjectID); err != nil {
			return nil, err
		}
		return call(ctx, exec, awx.RequestSpec{
			Method: http.MethodGet,
			Path:   itemPath("projects", in.ProjectID),
			Tool:   "get_project",
		})
	})

	Register(r, Tool{
		Name:        "create_project",
		Description: "Create a new project backed by an SCM repository. POST /api/v2/projects/.",
		Method:      http.MethodPost,
		Path:        "/api/v2/projects/",
	}, func(ctx context.Context, in CreateProjectInput) (any, error) {
		if err := requireString("name", in.Name); err != nil {
			return nil, err
		}
		if err := requireID("organization_id", in.OrganizationID); err != nil {
			return nil, err
		}
		if !scmTypes[in.ScmType] {
			return nil, awx.Validationf("scm_type must be one of: git, svn, manual")
		}
		if in.ScmType != "manual" && in.ScmType != "" && in.ScmURL == "" {
			return nil, awx.Validationf("scm_url is required for non-manual scm types")
		}
		body := map[string]any{
			"name":         in.Name,
			"organization": in.OrganizationID,
			"scm_type":     in.ScmType,
			"description":  in.Description,
		}
		if in.ScmURL != "" {
			body["scm_url"] = in.ScmURL
		}
		if in.ScmBranch != "" {
			body["scm_branch"] = in.ScmBranch
		}
		if in.CredentialID != 0 {
			if err := requireID("credential_id", in.CredentialID); err != nil {
				return nil, err
			}
			body["credential"] = in.CredentialID
		}
		return call(ctx, exec, awx.RequestSpec{
			Method: http.MethodPost,
			Path:   "/api/v2/projects/",
			Body:   body,
			Tool:   "create_project",
		})
	})
}
