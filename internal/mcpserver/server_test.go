package mcpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestWrapAuthDisabledWithoutTokens(t *testing.T) {
	h := wrapAuth(okHandler(), nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/mcp", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 without auth, got %d", rec.Code)
	}
}

func TestWrapAuthRejectsMissingOrWrongToken(t *testing.T) {
	h := wrapAuth(okHandler(), []string{"secret"})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/mcp", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without header, got %d", rec.Code)
	}
	if rec.Header().Get("WWW-Authenticate") == "" {
		t.Fatal("missing WWW-Authenticate header")
	}

	req := httptest.NewRequest(http.MethodGet, "/mcp", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with wrong token, got %d", rec.Code)
	}
}

func TestWrapAuthAcceptsToken(t *testing.T) {
	h := wrapAuth(okHandler(), []string{"secret"})

	for _, header := range []string{"Bearer secret", "bearer secret"} {
		req := httptest.NewRequest(http.MethodGet, "/mcp", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 for %q, got %d", header, rec.Code)
		}
	}
}

func TestBearerToken(t *testing.T) {
	if got := bearerToken("Bearer abc"); got != "abc" {
		t.Fatalf("unexpected token: %q", got)
	}
	if got := bearerToken("Basic abc"); got != "" {
		t.Fatalf("expected empty for Basic scheme, got %q", got)
	}
	if got := bearerToken(""); got != "" {
		t.Fatalf("expected empty for missing header, got %q", got)
	}
}
