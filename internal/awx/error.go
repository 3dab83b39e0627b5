package awx

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
)

// Kind classifies a tool failure.
type Kind int

const (
	// KindValidation means the caller supplied missing or malformed input.
	// Raised before any network I/O.
	KindValidation Kind = iota
	// KindNetwork means the transport could not complete the exchange
	// (DNS failure, connection refused, timeout). No response was obtained.
	KindNetwork
	// KindAuth means AWX rejected the credentials (401 or 403).
	KindAuth
	// KindClient means AWX returned another 4xx status.
	KindClient
	// KindServer means AWX returned a 5xx status.
	KindServer
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNetwork:
		return "network"
	case KindAuth:
		return "auth"
	case KindClient:
		return "client"
	case KindServer:
		return "server"
	default:
		return "unknown"
	}
}

// Error is the structured failure returned by endpoint functions and the executor.
type Error struct {
	Kind    Kind
	Message string
	// StatusCode is zero when no HTTP response was obtained.
	StatusCode int
}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("awx: %s (status %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("awx: %s: %s", e.Kind, e.Message)
}

// Validationf builds a KindValidation error from a format string.
func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// Networkf builds a KindNetwork error from a format string.
func Networkf(format string, args ...any) *Error {
	return &Error{Kind: KindNetwork, Message: fmt.Sprintf(format, args...)}
}

// FromStatus maps a non-2xx response to a structured error. AWX reports the
// failure reason in a top-level "detail" field; it becomes the message when present.
func FromStatus(status int, body []byte) *Error {
	msg := http.StatusText(status)
	if detail := gjson.GetBytes(body, "detail"); detail.Exists() {
		msg = detail.String()
	}

	// Only 5xx is a server error; anything else unexpected (e.g. an
	// unfollowed 3xx) stays on the caller's side.
	kind := KindClient
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		kind = KindAuth
	case status >= 500:
		kind = KindServer
	}
	return &Error{Kind: kind, Message: msg, StatusCode: status}
}

// KindOf extracts the failure kind from an error chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
