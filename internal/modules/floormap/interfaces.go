package floormap

import (
	"context"

	"deskbooker/internal/domain"
	"deskbooker/internal/layout"
)

// BookingAPI is the slice of the backend client the reconciler reads from.
type BookingAPI interface {
	UserUpcomingBookings(ctx context.Context, userID int64) ([]domain.Booking, error)
	BookingsForDateAndFloor(ctx context.Context, date string, floorID int64) ([]domain.Booking, error)
}

// DeskAPI provides the desk roster and the availability set.
type DeskAPI interface {
	DesksByFloor(ctx context.Context, floorID int64) ([]domain.Desk, error)
	AvailableDesks(ctx context.Context, date string, floorID int64) ([]domain.Desk, error)
}

// FloorAPI lists the floors a map can be rendered for.
type FloorAPI interface {
	ActiveFloors(ctx context.Context) ([]domain.Floor, error)
	FloorStatistics(ctx context.Context, floorID int64, date string) (*domain.FloorStatistics, error)
}

// PositionRegistry resolves a desk to its map coordinate.
type PositionRegistry interface {
	PositionOf(floorNumber int, deskNumber string) layout.Position
}

// NotificationSender reports degraded reconciliations to the owning user.
type NotificationSender interface {
	NotifyFetchDegraded(ctx context.Context, userID int64, source string, err error) error
}
