package floormap

import "errors"

var (
	ErrValidation = errors.New("validation error")

	// ErrSuperseded: a newer reconciliation was issued while this one was in
	// flight; its result was discarded, not applied.
	ErrSuperseded = errors.New("reconciliation superseded")

	// ErrNotReady: a click arrived before any snapshot was published.
	ErrNotReady = errors.New("floor view not ready")

	ErrUnknownDesk = errors.New("desk not on this floor")
)
