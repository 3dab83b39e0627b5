package common

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"error":   LogLevelError,
		"WARN":    LogLevelWarn,
		"warning": LogLevelWarn,
		"info":    LogLevelInfo,
		"debug":   LogLevelDebug,
		"":        LogLevelInfo,
		"bogus":   LogLevelInfo,
	}
	for in, want := range cases {
		if got := ParseLogLevel(in); got != want {
			t.Fatalf("ParseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLogLevelToSlogLevel(t *testing.T) {
	if LogLevelDebug.ToSlogLevel() != slog.LevelDebug {
		t.Fatalf("expected debug mapping")
	}
	if LogLevelError.ToSlogLevel() != slog.LevelError {
		t.Fatalf("expected error mapping")
	}
	if LogLevel(42).ToSlogLevel() != slog.LevelInfo {
		t.Fatalf("unknown level should map to info")
	}
}

func TestLoggerWithContextKeepsLevel(t *testing.T) {
	l := NewLogger(LogLevelDebug)
	if c := l.WithComponent("executor"); c.Level() != LogLevelDebug {
		t.Fatalf("expected level to be preserved, got %v", c.Level())
	}
	if tl := l.WithTool("get_role"); tl.Level() != LogLevelDebug {
		t.Fatalf("expected level to be preserved, got %v", tl.Level())
	}
	if rl := l.WithRequest("GET", "/api/v2/roles/"); rl.Level() != LogLevelDebug {
		t.Fatalf("expected level to be preserved, got %v", rl.Level())
	}
}

func TestSetDefaultLogger(t *testing.T) {
	orig := GetLogger()
	defer SetDefaultLogger(orig)

	l := NewJSONLogger(LogLevelWarn)
	SetDefaultLogger(l)
	if GetLogger() != l {
		t.Fatalf("expected default logger to be replaced")
	}
}

func TestLoggerMasksSensitiveAttributes(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, LogLevelInfo, true)

	l.Info("acquiring credential",
		"password", "hunter2",
		"authorization", "Bearer abcdef123456",
		"tool", "ping",
		"count", 3)

	out := buf.String()
	if strings.Contains(out, "hunter2") || strings.Contains(out, "abcdef123456") {
		t.Fatalf("sensitive values leaked into log output: %s", out)
	}
	if !strings.Contains(out, "***MASKED***") {
		t.Fatalf("expected masked markers in output: %s", out)
	}
	if !strings.Contains(out, `"tool":"ping"`) || !strings.Contains(out, `"count":3`) {
		t.Fatalf("non-sensitive attributes should pass through: %s", out)
	}
}

func TestLoggerMaskingCanBeDisabled(t *testing.T) {
	EnableMasking(false)
	defer EnableMasking(true)

	var buf bytes.Buffer
	l := newLogger(&buf, LogLevelInfo, false)
	l.Info("debugging", "password", "hunter2")

	if !strings.Contains(buf.String(), "hunter2") {
		t.Fatalf("masking disabled, value should pass through: %s", buf.String())
	}
}
