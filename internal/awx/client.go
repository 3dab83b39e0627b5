// Package awx implements the request executor for the AWX REST API.
//
// The executor performs one HTTP exchange per call against a configured base
// URL and authentication context and returns a normalized Result. Endpoint
// functions (internal/tools) depend on the Executor interface so tests can
// substitute a mock without network access.
package awx

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/tuanngd/awxtool/internal/common"
	"github.com/tuanngd/awxtool/internal/httpc"
)

// Executor performs one HTTP exchange described by a RequestSpec.
// Implementations must be safe for concurrent use.
type Executor interface {
	Do(ctx context.Context, spec RequestSpec) (*Result, error)
}

// Config carries the process-wide settings shared by all requests.
type Config struct {
	// BaseURL is the AWX instance root (e.g. "https://awx.example.com").
	BaseURL string
	// AuthHeader is the header carrying credentials; defaults to Authorization.
	AuthHeader string
	// AuthValue is the full header value (e.g. "Bearer abc..."), acquired once at startup.
	AuthValue string
	// Timeout bounds each request; defaults to 30s, zero is replaced by the default.
	Timeout time.Duration
	// TLS optionally constrains or relaxes certificate verification.
	TLS *tls.Config
	// RateLimit is the per-tool request budget in requests/minute; zero disables limiting.
	RateLimit int
	// Burst is the limiter burst; defaults to 1 when RateLimit is set.
	Burst int
}

// Client is the resty-backed Executor. The only mutable state is the per-tool
// limiter map, so concurrent calls are independent.
type Client struct {
	baseURL    string
	authHeader string
	authValue  string
	rest       *resty.Client

	rateLimit int
	burst     int
	mu        sync.RWMutex
	limiters  map[string]*rate.Limiter
}

const defaultTimeout = 30 * time.Second

// NewClient builds a Client from the given configuration.
func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("awx: base_url is required")
	}
	header := strings.TrimSpace(cfg.AuthHeader)
	if header == "" {
		header = "Authorization"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	h := httpc.Httpc{TLSConfig: cfg.TLS, Timeout: timeout}
	return &Client{
		baseURL:    base,
		authHeader: header,
		authValue:  strings.TrimSpace(cfg.AuthValue),
		rest:       h.New(),
		rateLimit:  cfg.RateLimit,
		burst:      burst,
		limiters:   make(map[string]*rate.Limiter),
	}, nil
}

// BaseURL returns the configured AWX root.
func (c *Client) BaseURL() string { return c.baseURL }

// Do performs the exchange described by spec. Completed exchanges always
// return a Result, including non-2xx statuses; only transport-level failures
// become errors (KindNetwork).
func (c *Client) Do(ctx context.Context, spec RequestSpec) (*Result, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	if err := c.waitLimiter(ctx, spec.Tool); err != nil {
		return nil, Networkf("rate limiter wait: %v", err)
	}

	logger := common.GetLogger().WithComponent("executor").WithRequest(spec.Method, spec.Path)
	logger.Debug("sending request", "tool", spec.Tool, "queries_count", len(spec.Query))

	req := c.rest.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json")
	if c.authValue != "" {
		req.SetHeader(c.authHeader, c.authValue)
	}
	for k, v := range spec.Headers {
		req.SetHeader(k, v)
	}
	if len(spec.Query) > 0 {
		req.SetQueryParams(spec.Query)
	}
	if spec.Body != nil {
		req.SetHeader("Content-Type", "application/json")
		req.SetBody(spec.Body)
	}

	resp, err := execByMethod(req, spec.Method, c.baseURL+spec.Path)
	if err != nil {
		logger.Error("HTTP request failed", "error", err)
		return nil, Networkf("%s %s: %v", spec.Method, spec.Path, err)
	}

	res := newResult(resp.StatusCode(), resp.Body())
	logger.Debug("received response", "status_code", res.StatusCode, "response_size", len(res.Raw))
	return res, nil
}

func execByMethod(req *resty.Request, method, url string) (*resty.Response, error) {
	switch method {
	case http.MethodGet:
		return req.Get(url)
	case http.MethodPost:
		return req.Post(url)
	case http.MethodPut:
		return req.Put(url)
	case http.MethodPatch:
		return req.Patch(url)
	case http.MethodDelete:
		return req.Delete(url)
	default:
		return nil, fmt.Errorf("unsupported method: %s", method)
	}
}

// newResult parses the response body. Empty bodies (204 and friends) yield a
// nil Body; non-JSON payloads (e.g. job stdout as text) keep Raw only.
func newResult(status int, raw []byte) *Result {
	res := &Result{
		StatusCode: status,
		Raw:        raw,
		OK:         status >= 200 && status < 300,
	}
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return res
	}
	var body any
	if err := json.Unmarshal([]byte(trimmed), &body); err == nil {
		res.Body = body
	}
	return res
}

// waitLimiter blocks until the per-tool limiter admits the call. Tools without
// an ID share the "default" budget.
func (c *Client) waitLimiter(ctx context.Context, tool string) error {
	if c.rateLimit <= 0 {
		return nil
	}
	if tool == "" {
		tool = "default"
	}

	c.mu.RLock()
	limiter, ok := c.limiters[tool]
	c.mu.RUnlock()
	if !ok {
		c.mu.Lock()
		limiter, ok = c.limiters[tool]
		if !ok {
			perSec := float64(c.rateLimit) / 60.0
			limiter = rate.NewLimiter(rate.Limit(perSec), c.burst)
			c.limiters[tool] = limiter
		}
		c.mu.Unlock()
	}
	return limiter.Wait(ctx)
}
