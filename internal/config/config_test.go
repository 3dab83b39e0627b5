package config

import (
	"context"
	"crypto/tls"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	p := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestLoad_FromYAML(t *testing.T) {
	p := writeConfig(t, `
awx:
  base_url: https://awx.example.com
  timeout: 10s
  insecure: true
  rate_limit: 120
  burst: 5
auth:
  type: token
  config:
    token: abc
logging:
  level: debug
  format: json
history:
  enabled: true
  path: /tmp/runs.db
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.AWX.BaseURL != "https://awx.example.com" {
		t.Fatalf("unexpected base_url %q", cfg.AWX.BaseURL)
	}
	if cfg.Timeout() != 10*time.Second {
		t.Fatalf("expected 10s timeout, got %v", cfg.Timeout())
	}
	if cfg.AWX.RateLimit != 120 || cfg.AWX.Burst != 5 {
		t.Fatalf("unexpected rate limit config %+v", cfg.AWX)
	}
	if !cfg.History.Enabled || cfg.History.Path != "/tmp/runs.db" {
		t.Fatalf("unexpected history config %+v", cfg.History)
	}
	tc := cfg.TLSConfig()
	if tc == nil || !tc.InsecureSkipVerify {
		t.Fatalf("expected insecure TLS config")
	}

	v, err := cfg.AcquireAuth(context.Background())
	if err != nil || v != "Bearer abc" {
		t.Fatalf("expected token auth, got %q err=%v", v, err)
	}
}

func TestLoad_RequiresBaseURL(t *testing.T) {
	p := writeConfig(t, "logging:\n  level: info\n")
	if _, err := Load(p); err == nil {
		t.Fatalf("expected error for missing base_url")
	}
}

func TestLoad_LegacyEnvFallback(t *testing.T) {
	t.Setenv("ANSIBLE_BASE_URL", "https://legacy.example.com")
	t.Setenv("ANSIBLE_USERNAME", "admin")
	t.Setenv("ANSIBLE_PASSWORD", "pass")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.AWX.BaseURL != "https://legacy.example.com" {
		t.Fatalf("expected legacy base_url, got %q", cfg.AWX.BaseURL)
	}
	if cfg.Auth.Type != "basic" {
		t.Fatalf("expected basic auth inferred, got %q", cfg.Auth.Type)
	}
}

func TestLoad_LegacyTokenWinsOverBasic(t *testing.T) {
	t.Setenv("ANSIBLE_BASE_URL", "https://legacy.example.com")
	t.Setenv("ANSIBLE_TOKEN", "tok")
	t.Setenv("ANSIBLE_USERNAME", "admin")
	t.Setenv("ANSIBLE_PASSWORD", "pass")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Auth.Type != "token" {
		t.Fatalf("expected token auth preferred, got %q", cfg.Auth.Type)
	}
}

func TestTimeout_BadValueFallsBack(t *testing.T) {
	cfg := &Config{AWX: AWXConfig{Timeout: "soon"}}
	if cfg.Timeout() != 30*time.Second {
		t.Fatalf("expected 30s fallback, got %v", cfg.Timeout())
	}
}

func TestTLSConfig(t *testing.T) {
	cfg := &Config{}
	if cfg.TLSConfig() != nil {
		t.Fatalf("expected nil TLS config by default")
	}
	cfg.AWX.MinTLSVersion = "1.3"
	tc := cfg.TLSConfig()
	if tc == nil || tc.MinVersion != tls.VersionTLS13 {
		t.Fatalf("expected TLS1.3 minimum, got %+v", tc)
	}
}

func TestAcquireAuth_AnonymousWhenUnset(t *testing.T) {
	cfg := &Config{}
	v, err := cfg.AcquireAuth(context.Background())
	if err != nil || v != "" {
		t.Fatalf("expected anonymous access, got %q err=%v", v, err)
	}
}
