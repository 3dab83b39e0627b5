package common

import (
	"strings"
	"testing"
)

func TestMaskStringHidesBearerToken(t *testing.T) {
	m := NewMasker()
	in := `Authorization: Bearer abc123DEF.456`
	out := m.MaskString(in)
	if strings.Contains(out, "abc123DEF") {
		t.Fatalf("token leaked: %s", out)
	}
	if !strings.Contains(out, "***MASKED***") {
		t.Fatalf("expected masked marker, got %s", out)
	}
}

func TestMaskStringHidesBasicCredentials(t *testing.T) {
	m := NewMasker()
	out := m.MaskString("header Basic YWRtaW46cGFzc3dvcmQ=")
	if strings.Contains(out, "YWRtaW46") {
		t.Fatalf("basic credentials leaked: %s", out)
	}
}

func TestMaskStringHidesPasswordAssignment(t *testing.T) {
	m := NewMasker()
	out := m.MaskString(`{"username":"admin","password":"hunter2"}`)
	if strings.Contains(out, "hunter2") {
		t.Fatalf("password leaked: %s", out)
	}
}

func TestMaskValueByKey(t *testing.T) {
	m := NewMasker()
	if got := m.MaskValue("ansible_token", "sekret"); got != "***MASKED***" {
		t.Fatalf("expected key-based masking, got %v", got)
	}
	if got := m.MaskValue("page", 3); got != 3 {
		t.Fatalf("non-sensitive value should pass through, got %v", got)
	}
}

func TestMaskerDisabled(t *testing.T) {
	m := NewMasker()
	m.SetEnabled(false)
	in := "Bearer abc"
	if out := m.MaskString(in); out != in {
		t.Fatalf("disabled masker must not rewrite, got %s", out)
	}
	if m.IsEnabled() {
		t.Fatalf("expected masker to report disabled")
	}
}

func TestGlobalMaskingToggle(t *testing.T) {
	defer EnableMasking(true)

	EnableMasking(false)
	if IsMaskingEnabled() {
		t.Fatalf("expected global masking disabled")
	}
	EnableMasking(true)
	if got := MaskSensitiveData("token=abc123"); strings.Contains(got, "abc123") {
		t.Fatalf("global masking failed: %s", got)
	}
}
