package services

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a failure reported by the backend: a non-2xx response. Message
// carries the backend's error text verbatim when it sent one; Code carries
// the backend's machine-readable error code when present.
type APIError struct {
	StatusCode int
	Message    string
	Code       string
}

// Error returns the backend's message verbatim, falling back to a generic
// message naming the HTTP status when the body carried no error field.
func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP error, status %d", e.StatusCode)
}

// IsUnauthorized reports whether err is a backend auth rejection. Callers
// treat this as a stale or invalid session.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// IsNotFound reports whether err is a backend not-found rejection.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsDuplicate reports whether err is the watchlist uniqueness violation.
// The backend marks it with code DUPLICATE; older deployments only send the
// message text.
func IsDuplicate(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.Code == "DUPLICATE" {
		return true
	}
	return strings.Contains(strings.ToLower(apiErr.Message), "already in watchlist")
}
