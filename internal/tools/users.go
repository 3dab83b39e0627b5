package tools

import (
	"context"
	"net/http"

	"github.com/tuanngd/awxtool/internal/awx"
)

type ListUsersInput struct {
	PageInput
}

type GetUserInput struct {
	UserID int `json:"user_id"`
}

// RegisterUserTools registers the wrappers for the AWX Users endpoint group.
func RegisterUserTools(r *Registry, exec awx.Executor) {
	Register(r, Tool{
		Name:        "list_users",
		Description: "List all users. GET /api/v2/users/.",
		Method:      http.MethodGet,
		Path:        "/api/v2/users/",
	}, func(ctx context.Context, in ListUsersInput) (any, error) {
		q, err := in.query()
		if err != nil {
			return nil, err
		}
		return listAll(ctx, exec, "list_users", "/api/v2/users/", q)
	})

	Register(r, Tool{
		Name:        "get_user",
		Description: "Get details about a specific user. GET /api/v2/users/{user_id}/.",
		Method:      http.MethodGet,
		Path:        "/api/v2/users/{user_id}/",
	}, func(ctx context.Context, in GetUserInput) (any, error) {
		if err := requireID("user_id", in.UserID); err != nil {
			return nil, err
		}
		return call(ctx, exec, awx.RequestSpec{
			Method: http.MethodGet,
			Path:   itemPath("users", in.UserID),
			Tool:   "get_user",
		})
	})
}
