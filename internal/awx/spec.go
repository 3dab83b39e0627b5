package awx

import (
	"net/http"
	"strings"
)

// RequestSpec describes one HTTP exchange against the AWX API.
// It is constructed per call, used once and discarded.
type RequestSpec struct {
	// Method is one of GET, POST, PUT, PATCH, DELETE.
	Method string
	// Path is a relative API route (e.g. "/api/v2/roles/7/").
	Path string
	// Query holds optional query parameters.
	Query map[string]string
	// Body is an optional JSON-serializable request body.
	Body any
	// Headers holds optional extra headers.
	Headers map[string]string
	// Tool identifies the calling endpoint function for rate limiting and logs.
	Tool string
}

var allowedMethods = map[string]struct{}{
	http.MethodGet:    {},
	http.MethodPost:   {},
	http.MethodPut:    {},
	http.MethodPatch:  {},
	http.MethodDelete: {},
}

// Validate checks the invariants every spec must hold: a supported method and
// a relative API path.
func (s RequestSpec) Validate() error {
	if _, ok := allowedMethods[s.Method]; !ok {
		return Validationf("unsupported method: %q", s.Method)
	}
	p := strings.TrimSpace(s.Path)
	if p == "" {
		return Validationf("path is required")
	}
	if !strings.HasPrefix(p, "/") {
		return Validationf("path must be relative to the base URL: %q", p)
	}
	return nil
}

// Result is the normalized outcome of a completed HTTP exchange. Non-2xx
// statuses are still results, not failures.
type Result struct {
	StatusCode int
	// Body is the parsed JSON payload (map, slice or nil for empty/non-JSON bodies).
	Body any
	// Raw is the unparsed response body.
	Raw []byte
	// OK reports whether StatusCode is in the 2xx range.
	OK bool
}
