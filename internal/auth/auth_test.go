package auth

import (
	"context"
	"encoding/base64"
	"testing"
)

func TestAcquire_UnsupportedType(t *testing.T) {
	if _, err := Acquire(context.Background(), "kerberos", "", nil); err == nil {
		t.Fatalf("expected error for unsupported provider type")
	}
}

func TestAcquire_TokenProvider(t *testing.T) {
	v, err := Acquire(context.Background(), "token", "", map[string]any{"token": "abc123"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v != "Bearer abc123" {
		t.Fatalf("expected bearer value, got %q", v)
	}
}

func TestAcquire_BasicProvider(t *testing.T) {
	v, err := Acquire(context.Background(), "basic", "", map[string]any{
		"username": "admin", "password": "secret",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := "Basic " + base64.StdEncoding.EncodeToString([]byte("admin:secret"))
	if v != want {
		t.Fatalf("expected %q, got %q", want, v)
	}
}

func TestAcquire_StoresByName(t *testing.T) {
	ClearTokens()
	defer ClearTokens()

	if _, err := Acquire(context.Background(), "token", "Prod", map[string]any{"token": "xyz"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	// Lookup is case-insensitive.
	v, ok := GetToken("prod")
	if !ok || v != "Bearer xyz" {
		t.Fatalf("expected stored token, got %q ok=%v", v, ok)
	}
}

func TestRegister_CustomProvider(t *testing.T) {
	Register("static-test", func(spec map[string]any) (Method, error) {
		return TokenConfig{Token: "fixed"}, nil
	})
	v, err := Acquire(context.Background(), "STATIC-TEST", "", nil)
	if err != nil || v != "Bearer fixed" {
		t.Fatalf("expected custom provider value, got %q err=%v", v, err)
	}
}

func TestBasic_RequiresCredentials(t *testing.T) {
	if _, err := (BasicConfig{Username: "x"}).Acquire(context.Background()); err == nil {
		t.Fatalf("expected error when password missing")
	}
	if _, err := (TokenConfig{}).Acquire(context.Background()); err == nil {
		t.Fatalf("expected error when token missing")
	}
}
