package booking

import (
	"context"

	"deskbooker/internal/client"
	"deskbooker/internal/domain"
	"deskbooker/internal/modules/floormap"
)

// BookingAPI is the mutation surface of the backend client.
type BookingAPI interface {
	BookingByID(ctx context.Context, bookingID int64) (*domain.Booking, error)
	UserUpcomingBookings(ctx context.Context, userID int64) ([]domain.Booking, error)
	CreateBooking(ctx context.Context, userID int64, req client.CreateBookingRequest) (*domain.Booking, error)
	CancelBooking(ctx context.Context, bookingID int64, reason string) error
	CheckIn(ctx context.Context, bookingID int64) (*domain.Booking, error)
	CheckOut(ctx context.Context, bookingID int64) (*domain.Booking, error)
}

// Reconciler refreshes the floor view after a successful mutation.
type Reconciler interface {
	Reconcile(ctx context.Context, p floormap.Params) (*floormap.Snapshot, error)
	Current(userID int64) (floormap.State, *floormap.Snapshot)
}

// NotificationSender is the single channel all mutation outcomes flow
// through, success and failure alike.
type NotificationSender interface {
	NotifySuccess(ctx context.Context, userID int64, message string) error
	NotifyError(ctx context.Context, userID int64, message string) error
}
