package tools

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tuanngd/awxtool/internal/awx"
)

type ListRolesInput struct {
	PageInput
}

type GetRoleInput struct {
	// RoleID is the ID of the role.
	RoleID int `json:"role_id"`
}

type RoleMembersInput struct {
	RoleID int `json:"role_id"`
	PageInput
}

type UserRolesInput struct {
	UserID int `json:"user_id"`
	PageInput
}

type TeamRolesInput struct {
	TeamID int `json:"team_id"`
	PageInput
}

type UserRoleInput struct {
	UserID int `json:"user_id"`
	RoleID int `json:"role_id"`
}

type TeamRoleInput struct {
	TeamID int `json:"team_id"`
	RoleID int `json:"role_id"`
}

// RegisterRoleTools registers the wrappers for the AWX Roles endpoint group.
func RegisterRoleTools(r *Registry, exec awx.Executor) {
	Register(r, Tool{
		Name:        "list_roles",
		Description: "List all roles visible to the current user. GET /api/v2/roles/.",
		Method:      http.MethodGet,
		Path:        "/api/v2/roles/",
	}, func(ctx context.Context, in ListRolesInput) (any, error) {
		q, err := in.query()
		if err != nil {
			return nil, err
		}
		return listAll(ctx, exec, "list_roles", "/api/v2/roles/", q)
	})

	Register(r, Tool{
		Name:        "get_role",
		Description: "Get details about a specific role. GET /api/v2/roles/{role_id}/.",
		Method:      http.MethodGet,
		Path:        "/api/v2/roles/{role_id}/",
	}, func(ctx context.Context, in GetRoleInput) (any, error) {
		if err := requireID("role_id", in.RoleID); err != nil {
			return nil, err
		}
		return call(ctx, exec, awx.RequestSpec{
			Method: http.MethodGet,
			Path:   itemPath("roles", in.RoleID),
			Tool:   "get_role",
		})
	})

	Register(r, Tool{
		Name:        "list_role_users",
		Description: "List the users holding a role. GET /api/v2/roles/{role_id}/users/.",
		Method:      http.MethodGet,
		Path:        "/api/v2/roles/{role_id}/users/",
	}, func(ctx context.Context, in RoleMembersInput) (any, error) {
		if err := requireID("role_id", in.RoleID); err != nil {
			return nil, err
		}
		q, err := in.query()
		if err != nil {
			return nil, err
		}
		path := fmt.Sprintf("/api/v2/roles/%d/users/", in.RoleID)
		return listAll(ctx, exec, "list_role_users", path, q)
	})

	Register(r, Tool{
		Name:        "list_role_teams",
		Description: "List the teams holding a role. GET /api/v2/roles/{role_id}/teams/.",
		Method:      http.MethodGet,
		Path:        "/api/v2/roles/{role_id}/teams/",
	}, func(ctx context.Context, in RoleMembersInput) (any, error) {
		if err := requireID("role_id", in.RoleID); err != nil {
			return nil, err
		}
		q, err := in.query()
		if err != nil {
			return nil, err
		}
		path := fmt.Sprintf("/api/v2/roles/%d/teams/", in.RoleID)
		return listAll(ctx, exec, "list_role_teams", path, q)
	})

	Register(r, Tool{
		Name:        "list_user_roles",
		Description: "List the roles granted to a user. GET /api/v2/users/{user_id}/roles/.",
		Method:      http.MethodGet,
		Path:        "/api/v2/users/{user_id}/roles/",
	}, func(ctx context.Context, in UserRolesInput) (any, error) {
		if err := requireID("user_id", in.UserID); err != nil {
			return nil, err
		}
		q, err := in.query()
		if err != nil {
			return nil, err
		}
		path := fmt.Sprintf("/api/v2/users/%d/roles/", in.UserID)
		return listAll(ctx, exec, "list_user_roles", path, q)
	})

	Register(r, Tool{
		Name:        "list_team_roles",
		Description: "List the roles granted to a team. GET /api/v2/teams/{team_id}/roles/.",
		Method:      http.MethodGet,
		Path:        "/api/v2/teams/{team_id}/roles/",
	}, func(ctx context.Context, in TeamRolesInput) (any, error) {
		if err := requireID("team_id", in.TeamID); err != nil {
			return nil, err
		}
		q, err := in.query()
		if err != nil {
			return nil, err
		}
		path := fmt.Sprintf("/api/v2/teams/%d/roles/", in.TeamID)
		return listAll(ctx, exec, "list_team_roles", path, q)
	})

	Register(r, Tool{
		Name:        "grant_user_role",
		Description: "Grant a role to a user. POST /api/v2/users/{user_id}/roles/.",
		Method:      http.MethodPost,
		Path:        "/api/v2/users/{user_id}/roles/",
	}, func(ctx context.Context, in UserRoleInput) (any, error) {
		if err := requireID("user_id", in.UserID); err != nil {
			return nil, err
		}
		if err := requireID("role_id", in.RoleID); err != nil {
			return nil, err
		}
		return call(ctx, exec, awx.RequestSpec{
			Method: http.MethodPost,
			Path:   fmt.Sprintf("/api/v2/users/%d/roles/", in.UserID),
			Body:   map[string]any{"id": in.RoleID},
			Tool:   "grant_user_role",
		})
	})

	Register(r, Tool{
		Name:        "revoke_user_role",
		Description: "Revoke a role from a user (disassociate). POST /api/v2/users/{user_id}/roles/.",
		Method:      http.MethodPost,
		Path:        "/api/v2/users/{user_id}/roles/",
	}, func(ctx context.Context, in UserRoleInput) (any, error) {
		if err := requireID("user_id", in.UserID); err != nil {
			return nil, err
		}
		if err := requireID("role_id", in.RoleID); err != nil {
			return nil, err
		}
		return call(ctx, exec, awx.RequestSpec{
			Method: http.MethodPost,
			Path:   fmt.Sprintf("/api/v2/users/%d/roles/", in.UserID),
			Body:   map[string]any{"id": in.RoleID, "disassociate": true},
			Tool:   "revoke_user_role",
		})
	})

	Register(r, Tool{
		Name:        "grant_team_role",
		Description: "Grant a role to a team. POST /api/v2/teams/{team_id}/roles/.",
		Method:      http.MethodPost,
		Path:        "/api/v2/teams/{team_id}/roles/",
	}, func(ctx context.Context, in TeamRoleInput) (any, error) {
		if err := requireID("team_id", in.TeamID); err != nil {
			return nil, err
		}
		if err := requireID("role_id", in.RoleID); err != nil {
			return nil, err
		}
		return call(ctx, exec, awx.RequestSpec{
			Method: http.MethodPost,
			Path:   fmt.Sprintf("/api/v2/teams/%d/roles/", in.TeamID),
			Body:   map[string]any{"id": in.RoleID},
			Tool:   "grant_team_role",
		})
	})

	Register(r, Tool{
		Name:        "revoke_team_role",
		Description: "Revoke a role from a team (disassociate). POST /api/v2/teams/{team_id}/roles/.",
		Method:      http.MethodPost,
		Path:        "/api/v2/teams/{team_id}/roles/",
	}, func(ctx context.Context, in TeamRoleInput) (any, error) {
		if err := requireID("team_id", in.TeamID); err != nil {
			return nil, err
		}
		if err := requireID("role_id", in.RoleID); err != nil {
			return nil, err
		}
		return call(ctx, exec, awx.RequestSpec{
			Method: http.MethodPost,
			Path:   fmt.Sprintf("/api/v2/teams/%d/roles/", in.TeamID),
			Body:   map[string]any{"id": in.RoleID, "disassociate": true},
			Tool:   "revoke_team_role",
		})
	})
}
