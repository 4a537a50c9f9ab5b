package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"deskbooker/internal/client"
	"deskbooker/internal/domain"
	"deskbooker/internal/modules/floormap"
)

const dateLayout = "2006-01-02"

// Actor is the authenticated identity performing a mutation, passed in
// explicitly on every call.
type Actor struct {
	UserID int64
	Role   domain.UserRole
}

// Service relays booking mutations to the backend, enforces the client-side
// rules the backend does not, and refreshes the floor view after every
// successful mutation.
type Service struct {
	api        BookingAPI
	reconciler Reconciler
	notifs     NotificationSender
	now        func() time.Time

	mu       sync.Mutex
	inFlight map[int64]bool
}

func NewService(api BookingAPI, reconciler Reconciler, notifs NotificationSender) *Service {
	return &Service{
		api:        api,
		reconciler: reconciler,
		notifs:     notifs,
		now:        time.Now,
		inFlight:   make(map[int64]bool),
	}
}

// begin marks the user's mutation slot busy. Mutations are serialized per
// user so a double-click cannot double-book.
func (s *Service) begin(userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[userID] {
		return ErrDuplicateRequest
	}
	s.inFlight[userID] = true
	return nil
}

func (s *Service) end(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, userID)
}

// UpcomingBookings lists a user's upcoming bookings. Admins and managers
// may inspect anyone's; regular users only their own.
func (s *Service) UpcomingBookings(ctx context.Context, actor Actor, userID int64) ([]domain.Booking, error) {
	if userID <= 0 {
		return nil, ErrValidation
	}
	if !domain.CanViewBookingsOf(actor.Role, actor.UserID, userID) {
		return nil, ErrForbidden
	}
	return s.api.UserUpcomingBookings(ctx, userID)
}

// Create books the desk for the actor on the given date. A backend conflict
// (desk taken concurrently) is surfaced verbatim and still triggers a
// refresh so the map catches up with whoever won.
func (s *Service) Create(ctx context.Context, actor Actor, deskID int64, date string) (*domain.Booking, error) {
	if deskID <= 0 {
		return nil, ErrValidation
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, ErrValidation
	}
	if err := s.begin(actor.UserID); err != nil {
		return nil, err
	}
	defer s.end(actor.UserID)

	b, err := s.api.CreateBooking(ctx, actor.UserID, client.CreateBookingRequest{
		DeskID:      deskID,
		BookingDate: date,
		Type:        domain.BookingFullDay,
	})
	if err != nil {
		if errors.Is(err, client.ErrConflict) {
			// Someone else got the desk between reconciliation and click.
			_ = s.notifs.NotifyError(ctx, actor.UserID, "Desk was taken by someone else, the map has been refreshed")
			s.refresh(ctx, actor.UserID)
		} else {
			_ = s.notifs.NotifyError(ctx, actor.UserID, "Could not create the booking")
		}
		return nil, err
	}

	_ = s.notifs.NotifySuccess(ctx, actor.UserID, "Booking created")
	s.refresh(ctx, actor.UserID)
	return b, nil
}

// Move replaces the actor's existing booking with one on a different desk
// for the same date. The cancel and the create are strictly sequential: the
// backend exposes no transactional swap, so a create failure after a
// successful cancel leaves the user without any booking. That outcome is
// reported as a PartialMoveError, distinct from a clean failure where the
// old booking is intact.
func (s *Service) Move(ctx context.Context, actor Actor, oldBookingID, newDeskID int64, date string) (*domain.Booking, error) {
	if oldBookingID <= 0 || newDeskID <= 0 {
		return nil, ErrValidation
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, ErrValidation
	}
	if err := s.begin(actor.UserID); err != nil {
		return nil, err
	}
	defer s.end(actor.UserID)

	if err := s.api.CancelBooking(ctx, oldBookingID, "Desk change"); err != nil {
		_ = s.notifs.NotifyError(ctx, actor.UserID, "Could not release the current booking, nothing was changed")
		return nil, err
	}

	b, err := s.api.CreateBooking(ctx, actor.UserID, client.CreateBookingRequest{
		DeskID:      newDeskID,
		BookingDate: date,
		Type:        domain.BookingFullDay,
	})
	if err != nil {
		_ = s.notifs.NotifyError(ctx, actor.UserID,
			"Your previous booking was cancelled but the new one could not be created")
		s.refresh(ctx, actor.UserID)
		return nil, &PartialMoveError{CancelledBookingID: oldBookingID, Err: err}
	}

	_ = s.notifs.NotifySuccess(ctx, actor.UserID, "Booking moved to desk "+b.DeskNumber)
	s.refresh(ctx, actor.UserID)
	return b, nil
}

// Cancel releases a booking. Regular users may only cancel their own;
// admins and managers may cancel anyone's.
func (s *Service) Cancel(ctx context.Context, actor Actor, bookingID int64, reason string) error {
	if bookingID <= 0 {
		return ErrValidation
	}
	if err := s.begin(actor.UserID); err != nil {
		return err
	}
	defer s.end(actor.UserID)

	b, err := s.api.BookingByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if !domain.CanViewBookingsOf(actor.Role, actor.UserID, b.UserID) {
		return ErrForbidden
	}
	if !b.IsHeld() {
		return ErrInvalidStatusTransition
	}

	if err := s.api.CancelBooking(ctx, bookingID, reason); err != nil {
		_ = s.notifs.NotifyError(ctx, actor.UserID, "Could not cancel the booking")
		return err
	}

	_ = s.notifs.NotifySuccess(ctx, actor.UserID, "Booking cancelled")
	s.refresh(ctx, actor.UserID)
	return nil
}

// CheckIn is allowed only on an ACTIVE booking whose date is today.
func (s *Service) CheckIn(ctx context.Context, actor Actor, bookingID int64) (*domain.Booking, error) {
	if err := s.begin(actor.UserID); err != nil {
		return nil, err
	}
	defer s.end(actor.UserID)

	b, err := s.api.BookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !domain.CanViewBookingsOf(actor.Role, actor.UserID, b.UserID) {
		return nil, ErrForbidden
	}
	if b.Status != domain.BookingActive || b.BookingDate != s.today() {
		return nil, ErrInvalidStatusTransition
	}

	updated, err := s.api.CheckIn(ctx, bookingID)
	if err != nil {
		_ = s.notifs.NotifyError(ctx, actor.UserID, "Check-in failed")
		return nil, err
	}

	_ = s.notifs.NotifySuccess(ctx, actor.UserID, fmt.Sprintf("Checked in at desk %s", updated.DeskNumber))
	s.refresh(ctx, actor.UserID)
	return updated, nil
}

// CheckOut is allowed only on a CHECKED_IN booking.
func (s *Service) CheckOut(ctx context.Context, actor Actor, bookingID int64) (*domain.Booking, error) {
	if err := s.begin(actor.UserID); err != nil {
		return nil, err
	}
	defer s.end(actor.UserID)

	b, err := s.api.BookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !domain.CanViewBookingsOf(actor.Role, actor.UserID, b.UserID) {
		return nil, ErrForbidden
	}
	if b.Status != domain.BookingCheckedIn {
		return nil, ErrInvalidStatusTransition
	}

	updated, err := s.api.CheckOut(ctx, bookingID)
	if err != nil {
		_ = s.notifs.NotifyError(ctx, actor.UserID, "Check-out failed")
		return nil, err
	}

	_ = s.notifs.NotifySuccess(ctx, actor.UserID, "Checked out")
	s.refresh(ctx, actor.UserID)
	return updated, nil
}

func (s *Service) today() string {
	return s.now().UTC().Format(dateLayout)
}

// refresh re-runs reconciliation for the user's currently displayed floor
// and date, if any. A superseded result just means an even fresher view was
// already published.
func (s *Service) refresh(ctx context.Context, userID int64) {
	_, snap := s.reconciler.Current(userID)
	if snap == nil {
		return
	}
	_, err := s.reconciler.Reconcile(ctx, floormap.Params{
		UserID:      userID,
		FloorID:     snap.FloorID,
		FloorNumber: snap.FloorNumber,
		Date:        snap.Date,
	})
	if err != nil && !errors.Is(err, floormap.ErrSuperseded) {
		_ = s.notifs.NotifyError(ctx, userID, "Floor map refresh failed")
	}
}
