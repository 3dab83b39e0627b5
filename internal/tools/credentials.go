package tools

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/tuanngd/awxtool/internal/awx"
)

type ListCredentialsInput struct {
	PageInput
}

type GetCredentialInput struct {
	CredentialID int `json:"credential_id"`
}

type CreateCredentialInput struct {
	Name string `json:"name"`
	// CredentialTypeID is the ID of the credential type (e.g. Machine, SCM).
	CredentialTypeID int `json:"credential_type_id"`
	// Inputs is a JSON document with the type-specific fields.
	Inputs string `json:"inputs,omitempty"`
	// At most one of the three owner fields may be set.
	OrganizationID int    `json:"organization_id,omitempty"`
	UserID         int    `json:"user_id,omitempty"`
	TeamID         int    `json:"team_id,omitempty"`
	Description    string `json:"description,omitempty"`
}

type UpdateCredentialInput struct {
	CredentialID     int     `json:"credential_id"`
	Name             *string `json:"name,omitempty"`
	CredentialTypeID *int    `json:"credential_type_id,omitempty"`
	Inputs           *string `json:"inputs,omitempty"`
	OrganizationID   *int    `json:"organization_id,omitempty"`
	Description      *string `json:"description,omitempty"`
}

// decodeInputs parses a credential inputs document into the object AWX
// expects. The API rejects string-encoded inputs on this endpoint.
func decodeInputs(s string) (map[string]any, error) {
	if s == "" {
		return map[string]any{}, nil
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		return nil, awx.Validationf("inputs must be a valid JSON object: %v", err)
	}
	return m, nil
}

// RegisterCredentialTools registers the wrappers for the AWX Credentials
// endpoint group.
func RegisterCredentialTools(r *Registry, exec awx.Executor) {
	Register(r, Tool{
		Name:        "list_credentials",
		Description: "List all credentials. GET /api/v2/credentials/.",
		Method:      http.MethodGet,
		Path:        "/api/v2/credentials/",
	}, func(ctx context.Context, in ListCredentialsInput) (any, error) {
		q, err := in.query()
		if err != nil {
			return nil, err
		}
		return listAll(ctx, exec, "list_credentials", "/api/v2/credentials/", q)
	})

	Register(r, Tool{
		Name:        "get_credential",
		Description: "Get details about a specific credential. GET /api/v2/credentials/{credential_id}/.",
		Method:      http.MethodGet,
		Path:        "/api/v2/credentials/{credential_id}/",
	}, func(ctx context.Context, in GetCredentialInput) (any, error) {
		if err := requireID("credential_id", in.CredentialID); err != nil {
			return nil, err
		}
		return call(ctx, exec, awx.RequestSpec{
			Method: http.MethodGet,
			Path:   itemPath("credentials", in.CredentialID),
			Tool:   "get_credential",
		})
	})

	Register(r, Tool{
		Name:        "create_credential",
		Description: "Create a new credential owned by an organization, user or team. POST /api/v2/credentials/.",
		Method:      http.MethodPost,
		Path:        "/api/v2/credentials/",
	}, func(ctx context.Context, in CreateCredentialInput) (any, error) {
		if err := requireString("name", in.Name); err != nil {
			return nil, err
		}
		if err := requireID("credential_type_id", in.CredentialTypeID); err != nil {
			return nil, err
		}
		inputs, err := decodeInputs(in.Inputs)
		if err != nil {
			return nil, err
		}
		owners := 0
		for _, id := range []int{in.OrganizationID, in.UserID, in.TeamID} {
			if id != 0 {
				owners++
			}
		}
		if owners > 1 {
			return nil, awx.Validationf("only one of organization_id, user_id or team_id can be provided")
		}
		body := map[string]any{
			"name":            in.Name,
			"credential_type": in.CredentialTypeID,
			"inputs":          inputs,
			"description":     in.Description,
		}
		switch {
		case in.OrganizationID != 0:
			body["organization"] = in.OrganizationID
		case in.UserID != 0:
			body["user"] = in.UserID
		case in.TeamID != 0:
			body["team"] = in.TeamID
		}
		return call(ctx, exec, awx.RequestSpec{
			Method: http.MethodPost,
			Path:   "/api/v2/credentials/",
			Body:   body,
			Tool:   "create_credential",
		})
	})

	Register(r, Tool{
		Name:        "update_credential",
		Description: "Update a credential's fields. PATCH /api/v2/credentials/{credential_id}/.",
		Method:      http.MethodPatch,
		Path:        "/api/v2/credentials/{credential_id}/",
	}, func(ctx context.Context, in UpdateCredentialInput) (any, error) {
		if err := requireID("credential_id", in.CredentialID); err != nil {
			return nil, err
		}
		body := map[string]any{}
		if in.Name != nil {
			body["name"] = *in.Name
		}
		if in.CredentialTypeID != nil {
			body["credential_type"] = *in.CredentialTypeID
		}
		if in.Inputs != nil {
			inputs, err := decodeInputs(*in.Inputs)
			if err != nil {
				return nil, err
			}
			body["inputs"] = inputs
		}
		if in.OrganizationID != nil {
			body["organization"] = *in.OrganizationID
		}
		if in.Description != nil {
			body["description"] = *in.Description
		}
		if len(body) == 0 {
			return nil, awx.Validationf("at least one field to update is required")
		}
		return call(ctx, exec, awx.RequestSpec{
			Method: http.MethodPatch,
			Path:   itemPath("credentials", in.CredentialID),
			Body:   body,
			Tool:   "update_credential",
		})
	})
}
