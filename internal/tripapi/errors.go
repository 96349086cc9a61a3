package tripapi

import (
	"errors"
	"fmt"
	"net/http"
)

// Errors an APIError unwraps to, by status class.
var (
	ErrBadRequest   = errors.New("request rejected by backend")
	ErrUnauthorized = errors.New("not signed in or session expired")
	ErrForbidden    = errors.New("not allowed to access this trip")
	ErrNotFound     = errors.New("not found")
	ErrServer       = errors.New("backend error")
)

// APIError is returned for any non-2xx response.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("%s %s: backend returned %d", e.Method, e.Path, e.StatusCode)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// Unwrap lets callers test the status class with errors.Is.
func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case e.StatusCode == http.StatusForbidden:
		return ErrForbidden
	case e.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case e.StatusCode >= 500:
		return ErrServer
	default:
		return ErrBadRequest
	}
}
