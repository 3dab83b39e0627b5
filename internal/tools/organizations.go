package tools

import (
	"context"
	"net/http"

	"github.com/tuanngd/awxtool/internal/awx"
)

type ListOrganizationsInput struct {
	PageInput
}

type GetOrganizationInput struct {
	OrganizationID int `json:"organization_id"`
}

type CreateOrganizationInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// RegisterOrganizationTools registers the wrappers for the AWX Organizations
// endpoint group.
func RegisterOrganizationTools(r *Registry, exec awx.Executor) {
	Register(r, Tool{
		Name:        "list_organizations",
		Description: "List all organizations. GET /api/v2/organizations/.",
		Method:      http.MethodGet,
		Path:        "/api/v2/organizations/",
	}, func(ctx context.Context, in ListOrganizationsInput) (any, error) {
		q, err := in.query()
		if err != nil {
			return nil, err
		}
		return listAll(ctx, exec, "list_organizations", "/api/v2/organizations/", q)
	})

	Register(r, Tool{
		Name:        "get_organization",
		Description: "Get details about a specific organization. GET /api/v2/organizations/{organization_id}/.",
		Method:      http.MethodGet,
		Path:        "/api/v2/organizations/{organization_id}/",
	}, func(ctx context.Context, in GetOrganizationInput) (any, error) {
		if err := requireID("organization_id", in.OrganizationID); err != nil {
			return nil, err
		}
		return call(ctx, exec, awx.RequestSpec{
			Method: http.MethodGet,
			Path:   itemPath("organizations", in.OrganizationID),
			Tool:   "get_organization",
		})
	})

	Register(r, Tool{
		Name:        "create_organization",
		Description: "Create a new organization. POST /api/v2/organizations/.",
		Method:      http.MethodPost,
		Path:        "/api/v2/organizations/",
	}, func(ctx context.Context, in CreateOrganizationInput) (any, error) {
		if err := requireString("name", in.Name); err != nil {
			return nil, err
		}
		return call(ctx, exec, awx.RequestSpec{
			Method: http.MethodPost,
			Path:   "/api/v2/organizations/",
			Body: map[string]any{
				"name":        in.Name,
				"description": in.Description,
			},
			Tool: "create_organization",
		})
	})
}
