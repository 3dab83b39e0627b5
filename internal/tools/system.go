package tools

import (
	"context"
	"net/http"

	"github.com/tuanngd/awxtool/internal/awx"
)

// RegisterSystemTools registers the instance-level wrappers: version/ping and
// dashboard statistics. Neither takes parameters.
func RegisterSystemTools(r *Registry, exec awx.Executor) {
	Register(r, Tool{
		Name:        "ping",
		Description: "Get the AWX version and instance health. GET /api/v2/ping/.",
		Method:      http.MethodGet,
		Path:        "/api/v2/ping/",
	}, func(ctx context.Context, _ NoInput) (any, error) {
		return call(ctx, exec, awx.RequestSpec{
			Method: http.MethodGet,
			Path:   "/api/v2/ping/",
			Tool:   "ping",
		})
	})

	Register(r, Tool{
		Name:        "get_dashboard_stats",
		Description: "Get dashboard statistics for the instance. GET /api/v2/dashboard/.",
		Method:      http.MethodGet,
		Path:        "/api/v2/dashboard/",
	}, func(ctx context.Context, _ NoInput) (any, error) {
		return call(ctx, exec, awx.RequestSpec{
			Method: http.MethodGet,
			Path:   "/api/v2/dashboard/",
			Tool:   "get_dashboard_stats",
		})
	})
}
