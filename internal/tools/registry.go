// Package tools exposes each documented AWX operation as a named function
// tool: typed parameters in, the endpoint's response body out. Every tool
// validates its inputs before building exactly one request spec and
// delegating to the executor. Descriptions state HTTP method, path and
// purpose so an orchestration agent can select tools without reading source.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/jsonschema-go/jsonschema"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tuanngd/awxtool/internal/awx"
	"github.com/tuanngd/awxtool/internal/common"
)

// NoInput marks tools that take no parameters.
type NoInput struct{}

// emptySchema describes a function with no parameters. Many MCP clients
// require explicit properties: {} and required: [].
var emptySchema jsonschema.Schema

func init() {
	if err := json.Unmarshal([]byte(`{
		"type": "object",
		"properties": {},
		"required": [],
		"additionalProperties": false
	}`), &emptySchema); err != nil {
		panic(fmt.Errorf("failed to create empty input schema: %w", err))
	}
}

// Tool is one registered endpoint function.
type Tool struct {
	Name        string
	Description string
	// Method and Path document the primary operation for listings.
	Method string
	Path   string

	invoke func(ctx context.Context, raw json.RawMessage) (any, error)
	attach func(s *sdkmcp.Server)
}

// Registry holds the named tools. Registration happens once at startup;
// lookups afterwards are read-only.
type Registry struct {
	tools map[string]*Tool
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]*Tool)}
}

// RegisterAll registers every AWX tool group against the given executor.
func RegisterAll(r *Registry, exec awx.Executor) {
	RegisterRoleTools(r, exec)
	RegisterInventoryTools(r, exec)
	RegisterHostTools(r, exec)
	RegisterJobTemplateTools(r, exec)
	RegisterJobTools(r, exec)
	RegisterProjectTools(r, exec)
	RegisterOrganizationTools(r, exec)
	RegisterCredentialTools(r, exec)
	RegisterUserTools(r, exec)
	RegisterSystemTools(r, exec)
	RegisterCatalogTools(r, exec)
}

// Register adds one typed tool. Duplicate names are a programming error.
func Register[In any](r *Registry, t Tool, fn func(ctx context.Context, in In) (any, error)) {
	if _, exists := r.tools[t.Name]; exists {
		panic(fmt.Sprintf("tools: duplicate registration of %q", t.Name))
	}

	t.invoke = func(ctx context.Context, raw json.RawMessage) (any, error) {
		var in In
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &in); err != nil {
				return nil, awx.Validationf("invalid parameters for %s: %v", t.Name, err)
			}
		}
		return fn(ctx, in)
	}

	sdkTool := &sdkmcp.Tool{Name: t.Name, Description: t.Description}
	if _, isNoInput := any(*new(In)).(NoInput); isNoInput {
		sdkTool.InputSchema = &emptySchema
	}
	t.attach = func(s *sdkmcp.Server) {
		sdkmcp.AddTool[In, any](s, sdkTool,
			func(ctx context.Context, _ *sdkmcp.CallToolRequest, in In) (*sdkmcp.CallToolResult, any, error) {
				out, err := fn(ctx, in)
				return nil, out, err
			})
	}

	r.tools[t.Name] = &t
	common.GetLogger().WithComponent("registry").Debug("registered tool", "tool", t.Name)
}

// Lookup returns the tool registered under name.
func (r *Registry) Lookup(name string) (*Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// List returns every tool sorted by name.
func (r *Registry) List() []*Tool {
	out := make([]*Tool, 0, len(r.tools))
	for _, t := range r.tools {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Invoke dispatches a call by tool name with raw JSON parameters.
func (r *Registry) Invoke(ctx context.Context, name string, raw json.RawMessage) (any, error) {
	t, ok := r.tools[name]
	if !ok {
		return nil, awx.Validationf("unknown tool: %q", name)
	}
	logger := common.GetLogger().WithComponent("registry").WithTool(name)
	out, err := t.invoke(ctx, raw)
	if err != nil {
		logger.Warn("tool call failed", "error", common.MaskSensitiveData(err.Error()))
		return nil, err
	}
	logger.Debug("tool call completed")
	return out, nil
}

// AttachMCP registers every tool on the given MCP server.
func (r *Registry) AttachMCP(s *sdkmcp.Server) {
	for _, t := range r.List() {
		t.attach(s)
	}
}
