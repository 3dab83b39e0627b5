package tools

import (
	"context"
	_ "embed"
	"encoding/json"
	"net/http"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tuanngd/awxtool/internal/awx"
)

//go:embed catalog.yaml
var catalogYAML []byte

// APIPath is one documented endpoint in the embedded catalog.
type APIPath struct {
	Method  string `yaml:"method" json:"method"`
	Path    string `yaml:"path" json:"path"`
	Summary string `yaml:"summary" json:"summary"`
}

type apiCatalog struct {
	Endpoints []APIPath `yaml:"endpoints"`
}

// LoadCatalog parses the embedded endpoint catalog.
func LoadCatalog() ([]APIPath, error) {
	var c apiCatalog
	if err := yaml.Unmarshal(catalogYAML, &c); err != nil {
		return nil, err
	}
	return c.Endpoints, nil
}

type CallAPIInput struct {
	// Method is the HTTP method (GET, POST, PUT, PATCH, DELETE).
	Method string `json:"method"`
	// Path is the endpoint path and must start with /api/.
	Path  string            `json:"path"`
	Query map[string]string `json:"query,omitempty"`
	// Body is a JSON document sent as the request body.
	Body string `json:"body,omitempty"`
}

// RegisterCatalogTools registers the meta tools: endpoint discovery and the
// generic escape hatch for documented calls no dedicated wrapper covers.
func RegisterCatalogTools(r *Registry, exec awx.Executor) {
	Register(r, Tool{
		Name:        "list_api_paths",
		Description: "List the documented AWX API endpoints with method, path and summary.",
		Method:      http.MethodGet,
		Path:        "/api/v2/",
	}, func(_ context.Context, _ NoInput) (any, error) {
		return LoadCatalog()
	})

	Register(r, Tool{
		Name:        "call_awx_api",
		Description: "Call an arbitrary documented AWX API endpoint with the given method, path, query and JSON body.",
		Method:      "*",
		Path:        "/api/...",
	}, func(ctx context.Context, in CallAPIInput) (any, error) {
		method := strings.ToUpper(strings.TrimSpace(in.Method))
		if method == "" {
			method = http.MethodGet
		}
		if !strings.HasPrefix(in.Path, "/api/") {
			return nil, awx.Validationf("path must start with /api/")
		}
		var body any
		if strings.TrimSpace(in.Body) != "" {
			if err := json.Unmarshal([]byte(in.Body), &body); err != nil {
				return nil, awx.Validationf("body must be valid JSON: %v", err)
			}
		}
		return call(ctx, exec, awx.RequestSpec{
			Method: method,
			Path:   in.Path,
			Query:  in.Query,
			Body:   body,
			Tool:   "call_awx_api",
		})
	})
}
