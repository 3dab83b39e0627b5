package tools

import (
	"context"
	"net/http"

	"github.com/tuanngd/awxtool/internal/awx"
)

type ListInventoriesInput struct {
	PageInput
}

type GetInventoryInput struct {
	InventoryID int `json:"inventory_id"`
}

type CreateInventoryInput struct {
	// Name is the name of the new inventory.
	Name string `json:"name"`
	// OrganizationID is the ID of the owning organization.
	OrganizationID int    `json:"organization_id"`
	Description    string `json:"description,omitempty"`
}

type UpdateInventoryInput struct {
	InventoryID int     `json:"inventory_id"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

type DeleteInventoryInput struct {
	InventoryID int `json:"inventory_id"`
}

// RegisterInventoryTools registers the wrappers for the AWX Inventories
// endpoint group.
func RegisterInventoryTools(r *Registry, exec awx.Executor) {
	Register(r, Tool{
		Name:        "list_inventories",
		Description: "List all inventories. GET /api/v2/inventories/.",
		Method:      http.MethodGet,
		Path:        "/api/v2/inventories/",
	}, func(ctx context.Context, in ListInventoriesInput) (any, error) {
		q, err := in.query()
		if err != nil {
			return nil, err
		}
		return listAll(ctx, exec, "list_inventories", "/api/v2/inventories/", q)
	})

	Register(r, Tool{
		Name:        "get_inventory",
		Description: "Get details about a specific inventory. GET /api/v2/inventories/{inventory_id}/.",
		Method:      http.MethodGet,
		Path:        "/api/v2/inventories/{inventory_id}/",
	}, func(ctx context.Context, in GetInventoryInput) (any, error) {
		if err := requireID("inventory_id", in.InventoryID); err != nil {
			return nil, err
		}
		return call(ctx, exec, awx.RequestSpec{
			Method: http.MethodGet,
			Path:   itemPath("inventories", in.InventoryID),
			Tool:   "get_inventory",
		})
	})

	Register(r, Tool{
		Name:        "create_inventory",
		Description: "Create a new inventory in an organization. POST /api/v2/inventories/.",
		Method:      http.MethodPost,
		Path:        "/api/v2/inventories/",
	}, func(ctx context.Context, in CreateInventoryInput) (any, error) {
		if err := requireString("name", in.Name); err != nil {
			return nil, err
		}
		if err := requireID("organization_id", in.OrganizationID); err != nil {
			return nil, err
		}
		return call(ctx, exec, awx.RequestSpec{
			Method: http.MethodPost,
			Path:   "/api/v2/inventories/",
			Body: map[string]any{
				"name":         in.Name,
				"organization": in.OrganizationID,
				"description":  in.Description,
			},
			Tool: "create_inventory",
		})
	})

	Register(r, Tool{
		Name:        "update_inventory",
		Description: "Update an inventory's name or description. PATCH /api/v2/inventories/{inventory_id}/.",
		Method:      http.MethodPatch,
		Path:        "/api/v2/inventories/{inventory_id}/",
	}, func(ctx context.Context, in UpdateInventoryInput) (any, error) {
		if err := requireID("inventory_id", in.InventoryID); err != nil {
			return nil, err
		}
		body := map[string]any{}
		if in.Name != nil {
			body["name"] = *in.Name
		}
		if in.Description != nil {
			body["description"] = *in.Description
		}
		if len(body) == 0 {
			return nil, awx.Validationf("at least one of name or description is required")
		}
		return call(ctx, exec, awx.RequestSpec{
			Method: http.MethodPatch,
			Path:   itemPath("inventories", in.InventoryID),
			Body:   body,
			Tool:   "update_inventory",
		})
	})

	Register(r, Tool{
		Name:        "delete_inventory",
		Description: "Delete an inventory. DELETE /api/v2/inventories/{inventory_id}/.",
		Method:      http.MethodDelete,
		Path:        "/api/v2/inventories/{inventory_id}/",
	}, func(ctx context.Context, in DeleteInventoryInput) (any, error) {
		if err := requireID("inventory_id", in.InventoryID); err != nil {
			return nil, err
		}
		return call(ctx, exec, awx.RequestSpec{
			Method: http.MethodDelete,
			Path:   itemPath("inventories", in.InventoryID),
			Tool:   "delete_inventory",
		})
	})
}
