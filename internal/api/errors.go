// Package api provides the typed REST client for the Frogworks backend.
package api

import (
	"errors"
	"fmt"
)

// Sentinel errors for the API status code taxonomy. Handlers match these
// with errors.Is; the wrapped *StatusError carries the server's message.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrServer       = errors.New("server error")
)

// StatusError is an API error derived from an HTTP response status.
type StatusError struct {
	StatusCode int
	Message    string // server-provided detail, if any
	kind       error  // one of the sentinel errors above, or nil
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("api: unexpected status %d", e.StatusCode)
}

// Is reports whether this status error matches one of the sentinel errors.
func (e *StatusError) Is(target error) bool {
	return e.kind != nil && target == e.kind
}

// newStatusError maps an HTTP status code and message onto the taxonomy.
func newStatusError(statusCode int, message string) *StatusError {
	err := &StatusError{StatusCode: statusCode, Message: message}
	switch statusCode {
	case 400:
		err.kind = ErrBadRequest
	case 401:
		err.kind = ErrUnauthorized
	case 403:
		err.kind = ErrForbidden
	case 404:
		err.kind = ErrNotFound
	case 500:
		err.kind = ErrServer
	}
	return err
}
