package common

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// LogLevel represents logging verbosity levels
type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
)

// ParseLogLevel converts a level name ("error", "warn", "info", "debug") to a LogLevel.
// Unknown values fall back to info.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return LogLevelError
	case "warn", "warning":
		return LogLevelWarn
	case "debug":
		return LogLevelDebug
	default:
		return LogLevelInfo
	}
}

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case LogLevelError:
		return "error"
	case LogLevelWarn:
		return "warn"
	case LogLevelInfo:
		return "info"
	case LogLevelDebug:
		return "debug"
	default:
		return "info"
	}
}

// ToSlogLevel converts LogLevel to slog.Level
func (l LogLevel) ToSlogLevel() slog.Level {
	switch l {
	case LogLevelError:
		return slog.LevelError
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelDebug:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// Logger provides a centralized logging interface for awxtool
type Logger struct {
	*slog.Logger
	level LogLevel
}

// maskAttr hides sensitive attribute values before they reach the handler.
// The global masker decides per key and per string content; disabling masking
// makes this a no-op.
func maskAttr(_ []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case slog.TimeKey, slog.LevelKey, slog.MessageKey:
		return a
	}
	if masked, ok := globalMasker.MaskValue(a.Key, a.Value.Any()).(string); ok {
		return slog.Attr{Key: a.Key, Value: slog.StringValue(masked)}
	}
	return a
}

func newLogger(w io.Writer, level LogLevel, jsonFormat bool) *Logger {
	opts := &slog.HandlerOptions{
		Level:       level.ToSlogLevel(),
		ReplaceAttr: maskAttr,
	}

	var handler slog.Handler
	if jsonFormat {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return &Logger{
		Logger: slog.New(handler),
		level:  level,
	}
}

// NewLogger creates a new structured logger with the specified level.
// Output goes to stderr; stdout is reserved for the stdio MCP transport.
func NewLogger(level LogLevel) *Logger {
	return newLogger(os.Stderr, level, false)
}

// NewJSONLogger creates a structured logger with JSON output
func NewJSONLogger(level LogLevel) *Logger {
	return newLogger(os.Stderr, level, true)
}

// Level returns the current log level
func (l *Logger) Level() LogLevel {
	return l.level
}

// WithComponent returns a logger with component context
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger: l.Logger.With("component", component),
		level:  l.level,
	}
}

// WithTool returns a logger with tool name context
func (l *Logger) WithTool(tool string) *Logger {
	return &Logger{
		Logger: l.Logger.With("tool", tool),
		level:  l.level,
	}
}

// WithRequest returns a logger with HTTP request context
func (l *Logger) WithRequest(method, path string) *Logger {
	return &Logger{
		Logger: l.Logger.With("method", method, "path", path),
		level:  l.level,
	}
}

// Global default logger instance
var defaultLogger = NewLogger(LogLevelInfo)

// SetDefaultLogger sets the global default logger
func SetDefaultLogger(logger *Logger) {
	defaultLogger = logger
}

// GetLogger returns the default logger
func GetLogger() *Logger {
	return defaultLogger
}
