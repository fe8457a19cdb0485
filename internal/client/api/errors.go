package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors forming the failure taxonomy of the gateway. Callers
// match them with errors.Is and choose messages accordingly; no failure
// here is ever fatal to the process.
var (
	ErrNetworkUnavailable = errors.New("network unavailable")
	ErrTimeout            = errors.New("request timed out")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrServer             = errors.New("server error")
	ErrMalformedResponse  = errors.New("malformed response")
)

// Error is the structured failure produced by the gateway. Kind is one of
// the sentinels above and is what Unwrap exposes, so
// errors.Is(err, api.ErrNotFound) works on any gateway error.
type Error struct {
	Kind       error
	StatusCode int
	Message    string
	Fields     map[string]string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%v: %s", e.Kind, e.Message)
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("%v (HTTP %d)", e.Kind, e.StatusCode)
	}
	return e.Kind.Error()
}

func (e *Error) Unwrap() error { return e.Kind }

// UserMessage picks the single human-readable line a view should display:
// status-specific wording first, then the backend-provided message, then a
// generic fallback.
func (e *Error) UserMessage() string {
	switch {
	case errors.Is(e.Kind, ErrUnauthorized):
		return "Your session has expired. Please log in again."
	case errors.Is(e.Kind, ErrForbidden):
		return "You do not have permission to do that."
	case errors.Is(e.Kind, ErrNotFound):
		return "That record no longer exists."
	case errors.Is(e.Kind, ErrServer):
		return "The server had a problem. Please try again later."
	case errors.Is(e.Kind, ErrTimeout):
		return "The request timed out. Please try again."
	case errors.Is(e.Kind, ErrNetworkUnavailable):
		return "Could not reach the server. Check your connection."
	}
	if e.Message != "" {
		return e.Message
	}
	return "Something went wrong. Please try again."
}

// kindForStatus maps an HTTP status code to the matching sentinel.
func kindForStatus(status int) error {
	switch {
	case status == http.StatusUnauthorized:
		return ErrUnauthorized
	case status == http.StatusForbidden:
		return ErrForbidden
	case status == http.StatusNotFound:
		return ErrNotFound
	case status >= 400 && status < 500:
		return ErrValidation
	case status >= 500:
		return ErrServer
	default:
		return ErrMalformedResponse
	}
}
