// Package mcpserver exposes the tool registry over the Model Context
// Protocol, either on stdio for direct agent embedding or on HTTP using the
// Streamable HTTP transport.
package mcpserver

import (
	"context"
	"crypto/subtle"
	"errors"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tuanngd/awxtool/internal/common"
	"github.com/tuanngd/awxtool/internal/tools"
)

const serverName = "awxtool"

// Version is stamped at build time.
var Version = "dev"

// BuildServer constructs the MCP server with every registry tool attached.
func BuildServer(reg *tools.Registry) *sdkmcp.Server {
	impl := &sdkmcp.Implementation{
		Name:    serverName,
		Version: Version,
	}
	server := sdkmcp.NewServer(impl, nil)
	reg.AttachMCP(server)
	return server
}

// RunStdio serves requests on stdin/stdout until the client disconnects or
// ctx is cancelled.
func RunStdio(ctx context.Context, reg *tools.Registry) error {
	server := BuildServer(reg)
	if err := server.Run(ctx, &sdkmcp.StdioTransport{}); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// RunHTTP serves the MCP server over the Streamable HTTP transport on
// host:port. When authTokens is non-empty, Bearer auth is required for the
// /mcp mounts; /healthz stays open for probes.
func RunHTTP(host string, port int, reg *tools.Registry, authTokens []string) error {
	server := BuildServer(reg)
	streamable := sdkmcp.NewStreamableHTTPHandler(func(*http.Request) *sdkmcp.Server {
		return server
	}, nil)

	mux := http.NewServeMux()
	mux.Handle("/mcp", wrapAuth(streamable, authTokens))
	mux.Handle("/mcp/", wrapAuth(streamable, authTokens))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	addr := net.JoinHostPort(host, strconv.Itoa(port))
	common.GetLogger().WithComponent("mcpserver").Info("starting MCP HTTP server",
		"addr", addr, "auth_enabled", len(authTokens) > 0)
	return http.ListenAndServe(addr, mux)
}

// wrapAuth applies Bearer token auth when tokens is non-empty.
func wrapAuth(next http.Handler, tokens []string) http.Handler {
	norm := make([][]byte, 0, len(tokens))
	for _, t := range tokens {
		if tt := strings.TrimSpace(t); tt != "" {
			norm = append(norm, []byte(tt))
		}
	}
	if len(norm) == 0 {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r.Header.Get("Authorization"))
		if token == "" {
			unauthorized(w)
			return
		}
		for _, allowed := range norm {
			if subtle.ConstantTimeCompare([]byte(token), allowed) == 1 {
				next.ServeHTTP(w, r)
				return
			}
		}
		unauthorized(w)
	})
}

// bearerToken extracts the token from "Bearer <token>" with a
// case-insensitive scheme.
func bearerToken(authz string) string {
	parts := strings.SplitN(authz, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="mcp", error="invalid_token"`)
	http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
}
