package auth

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSession_MintsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v2/tokens/" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		want := "Basic " + base64.StdEncoding.EncodeToString([]byte("admin:pass"))
		if r.Header.Get("Authorization") != want {
			t.Fatalf("expected basic auth header, got %q", r.Header.Get("Authorization"))
		}
		w.WriteHeader(201)
		_, _ = w.Write([]byte(`{"id":12,"token":"s3ss10n","scope":"write"}`))
	}))
	defer srv.Close()

	c := &SessionConfig{BaseURL: srv.URL, Username: "admin", Password: "pass"}
	v, err := c.Acquire(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v != "Bearer s3ss10n" {
		t.Fatalf("expected bearer session token, got %q", v)
	}
}

func TestSession_RejectsNon201(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(401)
		_, _ = w.Write([]byte(`{"detail":"Invalid credentials"}`))
	}))
	defer srv.Close()

	c := &SessionConfig{BaseURL: srv.URL, Username: "admin", Password: "bad"}
	if _, err := c.Acquire(context.Background()); err == nil || !strings.Contains(err.Error(), "401") {
		t.Fatalf("expected 401 error, got %v", err)
	}
}

func TestSession_RequiresConfig(t *testing.T) {
	c := &SessionConfig{Username: "admin"}
	if _, err := c.Acquire(context.Background()); err == nil {
		t.Fatalf("expected error for missing base_url/password")
	}
}

func TestOAuth2_PasswordGrant(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/o/token/" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if r.Form.Get("grant_type") != "password" || r.Form.Get("username") != "admin" {
			t.Fatalf("unexpected form %v", r.Form)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"oauthtok","token_type":"Bearer","expires_in":3600}`))
	}))
	defer srv.Close()

	c := OAuth2Config{BaseURL: srv.URL, ClientID: "cid", Username: "admin", Password: "pass"}
	v, err := c.Acquire(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v != "Bearer oauthtok" {
		t.Fatalf("expected bearer oauth token, got %q", v)
	}
}

func TestOAuth2_RequiresConfig(t *testing.T) {
	if _, err := (OAuth2Config{}).Acquire(context.Background()); err == nil {
		t.Fatalf("expected error for missing config")
	}
	if _, err := (OAuth2Config{BaseURL: "http://x", ClientID: "cid"}).Acquire(context.Background()); err == nil {
		t.Fatalf("expected error for missing username/password")
	}
}
