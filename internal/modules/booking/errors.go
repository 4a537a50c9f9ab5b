package booking

import (
	"errors"
	"fmt"
)

var (
	ErrValidation              = errors.New("validation error")
	ErrForbidden               = errors.New("forbidden")
	ErrInvalidStatusTransition = errors.New("invalid status transition")

	// ErrDuplicateRequest: the user already has a mutation in flight.
	// Mutations are serialized per user to prevent double-click
	// double-booking.
	ErrDuplicateRequest = errors.New("mutation already in flight")

	// ErrPartialMove: during a move the cancel succeeded but the create
	// failed, so the user holds no booking at all. Reported with distinct
	// wording, never folded into a generic failure.
	ErrPartialMove = errors.New("previous booking cancelled but new booking failed")
)

// PartialMoveError records which booking was lost when a move broke between
// its cancel and create steps.
type PartialMoveError struct {
	CancelledBookingID int64
	Err                error
}

func (e *PartialMoveError) Error() string {
	return fmt.Sprintf("booking %d cancelled but replacement failed: %v", e.CancelledBookingID, e.Err)
}

func (e *PartialMoveError) Unwrap() error {
	return ErrPartialMove
}
