package tools

import (
	"context"
	"net/http"
	"strconv"

	"github.com/tuanngd/awxtool/internal/awx"
)

type ListHostsInput struct {
	// InventoryID optionally scopes the listing to one inventory.
	InventoryID int `json:"inventory_id,omitempty"`
	PageInput
}

type GetHostInput struct {
	HostID int `json:"host_id"`
}

type CreateHostInput struct {
	Name        string `json:"name"`
	InventoryID int    `json:"inventory_id"`
	// Variables is a JSON document of host variables.
	Variables   string `json:"variables,omitempty"`
	Description string `json:"description,omitempty"`
}

type UpdateHostInput struct {
	HostID      int     `json:"host_id"`
	Name        *string `json:"name,omitempty"`
	Variables   *string `json:"variables,omitempty"`
	Description *string `json:"description,omitempty"`
}

type DeleteHostInput struct {
	HostID int `json:"host_id"`
}

// RegisterHostTools registers the wrappers for the AWX Hosts endpoint group.
func RegisterHostTools(r *Registry, exec awx.Executor) {
	Register(r, Tool{
		Name:        "list_hosts",
		Description: "List hosts, optionally scoped to an inventory. GET /api/v2/hosts/ or GET /api/v2/inventories/{inventory_id}/hosts/.",
		Method:      http.MethodGet,
		Path:        "/api/v2/hosts/",
	}, func(ctx context.Context, in ListHostsInput) (any, error) {
		q, err := in.query()
		if err != nil {
			return nil, err
		}
		path := "/api/v2/hosts/"
		if in.InventoryID != 0 {
			if err := requireID("inventory_id", in.InventoryID); err != nil {
				return nil, err
			}
			path = "/api/v2/inventories/" + strconv.Itoa(in.InventoryID) + "/hosts/"
		}
		return listAll(ctx, exec, "list_hosts", path, q)
	})

	Register(r, Tool{
		Name:        "get_host",
		Description: "Get details about a specific host. GET /api/v2/hosts/{host_id}/.",
		Method:      http.MethodGet,
		Path:        "/api/v2/hosts/{host_id}/",
	}, func(ctx context.Context, in GetHostInput) (any, error) {
		if err := requireID("host_id", in.HostID); err != nil {
			return nil, err
		}
		return call(ctx, exec, awx.RequestSpec{
			Method: http.MethodGet,
			Path:   itemPath("hosts", in.HostID),
			Tool:   "get_host",
		})
	})

	Register(r, Tool{
		Name:        "create_host",
		Description: "Create a new host in an inventory. POST /api/v2/hosts/.",
		Method:      http.MethodPost,
		Path:        "/api/v2/hosts/",
	}, func(ctx context.Context, in CreateHostInput) (any, error) {
		if err := requireString("name", in.Name); err != nil {
			return nil, err
		}
		if err := requireID("inventory_id", in.InventoryID); err != nil {
			return nil, err
		}
		if err := validJSONDoc("variables", in.Variables); err != nil {
			return nil, err
		}
		body := map[string]any{
			"name":        in.Name,
			"inventory":   in.InventoryID,
			"description": in.Description,
		}
		if in.Variables != "" {
			body["variables"] = in.Variables
		}
		return call(ctx, exec, awx.RequestSpec{
			Method: http.MethodPost,
			Path:   "/api/v2/hosts/",
			Body:   body,
			Tool:   "create_host",
		})
	})

	Register(r, Tool{
		Name:        "update_host",
		Description: "Update a host's name, variables or description. PATCH /api/v2/hosts/{host_id}/.",
		Method:      http.MethodPatch,
		Path:        "/api/v2/hosts/{host_id}/",
	}, func(ctx context.Context, in UpdateHostInput) (any, error) {
		if err := requireID("host_id", in.HostID); err != nil {
			return nil, err
		}
		body := map[string]any{}
		if in.Name != nil {
			body["name"] = *in.Name
		}
		if in.Variables != nil {
			if err := validJSONDoc("variables", *in.Variables); err != nil {
				return nil, err
			}
			body["variables"] = *in.Variables
		}
		if in.Description != nil {
			body["description"] = *in.Description
		}
		if len(body) == 0 {
			return nil, awx.Validationf("at least one of name, variables or description is required")
		}
		return call(ctx, exec, awx.RequestSpec{
			Method: http.MethodPatch,
			Path:   itemPath("hosts", in.HostID),
			Body:   body,
			Tool:   "update_host",
		})
	})

	Register(r, Tool{
		Name:        "delete_host",
		Description: "Delete a host. DELETE /api/v2/hosts/{host_id}/.",
		Method:      http.MethodDelete,
		Path:        "/api/v2/hosts/{host_id}/",
	}, func(ctx context.Context, in DeleteHostInput) (any, error) {
		if err := requireID("host_id", in.HostID); err != nil {
			return nil, err
		}
		return call(ctx, exec, awx.RequestSpec{
			Method: http.MethodDelete,
			Path:   itemPath("hosts", in.HostID),
			Tool:   "delete_host",
		})
	})
}
