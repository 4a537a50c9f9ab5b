package client

import "errors"

var (
	// ErrConflict: the backend rejected a mutation, e.g. the desk was taken
	// concurrently. Surfaced to the user verbatim, never retried.
	ErrConflict = errors.New("booking conflict")

	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")

	// ErrTimeout: no response inside the request deadline. For writes the
	// caller must not assume the mutation happened; the next reconciliation
	// is the source of truth.
	ErrTimeout = errors.New("request timed out")

	ErrUnavailable = errors.New("backend unavailable")
)

// APIError carries the backend's status and message alongside the sentinel
// kind handlers dispatch on.
type APIError struct {
	StatusCode int
	Message    string
	Kind       error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Kind
}
