package awxtool

import (
	"context"
	"encoding/json"

	"github.com/tuanngd/awxtool/internal/auth"
	"github.com/tuanngd/awxtool/internal/awx"
	"github.com/tuanngd/awxtool/internal/history"
	"github.com/tuanngd/awxtool/internal/tools"
)

// Re-export commonly used types for public API

// RequestSpec is a single declarative AWX API request.
type RequestSpec = awx.RequestSpec

// Result is the outcome of one request: status, parsed body and raw bytes.
type Result = awx.Result

// Executor performs RequestSpecs. *Client implements it; tests substitute fakes.
type Executor = awx.Executor

// Error is the structured error every tool returns on failure.
type Error = awx.Error

// ErrorKind classifies an Error (validation, network, auth, client, server).
type ErrorKind = awx.Kind

const (
	ErrorKindValidation = awx.KindValidation
	ErrorKindNetwork    = awx.KindNetwork
	ErrorKindAuth       = awx.KindAuth
	ErrorKindClient     = awx.KindClient
	ErrorKindServer     = awx.KindServer
)

// ClientConfig configures the request executor.
type ClientConfig = awx.Config

// NewClient builds the resty-backed executor for an AWX instance.
func NewClient(cfg ClientConfig) (*awx.Client, error) { return awx.NewClient(cfg) }

// Registry holds the named endpoint tools.
type Registry = tools.Registry

// NewRegistry builds a registry with every AWX tool bound to exec.
func NewRegistry(exec Executor) *Registry {
	r := tools.NewRegistry()
	tools.RegisterAll(r, exec)
	return r
}

// Invoke dispatches one tool call by name with raw JSON parameters.
func Invoke(ctx context.Context, r *Registry, tool string, params json.RawMessage) (any, error) {
	return r.Invoke(ctx, tool, params)
}

// AuthMethod Plugin-style provider interface and registration
type AuthMethod = auth.Method

type AuthFactory = auth.Factory

// RegisterAuthProvider exposes custom auth provider registration for library users.
func RegisterAuthProvider(typ string, f AuthFactory) { auth.Register(typ, f) }

// AcquireAuth resolves a provider spec and returns the Authorization header value.
func AcquireAuth(ctx context.Context, typ, name string, spec map[string]any) (string, error) {
	return auth.Acquire(ctx, typ, name, spec)
}

// HistoryStore is an alias to the internal invocation history store.
type HistoryStore = history.Store

// HistoryDBFileName is the default sqlite filename used for invocation history.
const HistoryDBFileName = history.DbFileName

// OpenHistory opens (and initializes) the sqlite history store at the given path.
func OpenHistory(path string) (*HistoryStore, error) { return history.Open(path) }

// WithHistory decorates exec so every performed request is recorded in st.
func WithHistory(exec Executor, st *HistoryStore) Executor {
	return history.WrapExecutor(exec, st)
}
