package floormap

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"deskbooker/internal/domain"
	"deskbooker/internal/layout"
)

type MockBookingAPI struct {
	mock.Mock
}

func (m *MockBookingAPI) UserUpcomingBookings(ctx context.Context, userID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingAPI) BookingsForDateAndFloor(ctx context.Context, date string, floorID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, date, floorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type MockDeskAPI struct {
	mock.Mock
}

func (m *MockDeskAPI) DesksByFloor(ctx context.Context, floorID int64) ([]domain.Desk, error) {
	args := m.Called(ctx, floorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Desk), args.Error(1)
}

func (m *MockDeskAPI) AvailableDesks(ctx context.Context, date string, floorID int64) ([]domain.Desk, error) {
	args := m.Called(ctx, date, floorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Desk), args.Error(1)
}

type MockFloorAPI struct {
	mock.Mock
}

func (m *MockFloorAPI) ActiveFloors(ctx context.Context) ([]domain.Floor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Floor), args.Error(1)
}

func (m *MockFloorAPI) FloorStatistics(ctx context.Context, floorID int64, date string) (*domain.FloorStatistics, error) {
	args := m.Called(ctx, floorID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FloorStatistics), args.Error(1)
}

type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) NotifyFetchDegraded(ctx context.Context, userID int64, source string, err error) error {
	args := m.Called(ctx, userID, source, err)
	return args.Error(0)
}

func desk(id int64, number string) domain.Desk {
	return domain.Desk{
		ID:         id,
		DeskNumber: number,
		FloorID:    1,
		Type:       domain.DeskStandard,
		Status:     domain.DeskAvailable,
		Active:     true,
	}
}

func newTestService(bookings *MockBookingAPI, desks *MockDeskAPI, notifs *MockNotificationSender) *Service {
	return NewService(bookings, desks, new(MockFloorAPI), layout.NewRegistry(), notifs)
}

func TestReconcile_MergesSources(t *testing.T) {
	bookings := new(MockBookingAPI)
	desks := new(MockDeskAPI)
	notifs := new(MockNotificationSender)

	roster := []domain.Desk{desk(1, "F1-01"), desk(2, "F1-02"), desk(3, "F1-03")}
	occupied := []domain.Booking{
		{ID: 50, UserID: 99, UserName: "Alice Smith", DeskID: 2, BookingDate: "2025-03-10", Status: domain.BookingActive},
	}
	existing := []domain.Booking{
		{ID: 51, UserID: 7, DeskID: 200, FloorID: 3, BookingDate: "2025-03-10", Status: domain.BookingActive},
	}

	bookings.On("UserUpcomingBookings", mock.Anything, int64(7)).Return(existing, nil)
	bookings.On("BookingsForDateAndFloor", mock.Anything, "2025-03-10", int64(1)).Return(occupied, nil)
	desks.On("DesksByFloor", mock.Anything, int64(1)).Return(roster, nil)
	desks.On("AvailableDesks", mock.Anything, "2025-03-10", int64(1)).Return([]domain.Desk{roster[0]}, nil)

	s := newTestService(bookings, desks, notifs)

	snap, err := s.Reconcile(context.Background(), Params{UserID: 7, FloorID: 1, FloorNumber: 1, Date: "2025-03-10"})
	assert.NoError(t, err)
	assert.Len(t, snap.Desks, 3)

	assert.True(t, snap.Desks[0].Available)
	assert.Nil(t, snap.Desks[0].Booking)

	assert.False(t, snap.Desks[1].Available)
	assert.NotNil(t, snap.Desks[1].Booking)
	assert.Equal(t, int64(99), snap.Desks[1].Booking.UserID)

	assert.False(t, snap.Desks[2].Available)
	assert.Nil(t, snap.Desks[2].Booking)

	assert.NotNil(t, snap.ExistingBooking)
	assert.Equal(t, int64(51), snap.ExistingBooking.ID)
	assert.False(t, snap.HasUserBookingOnFloor)
	assert.Equal(t, 1, snap.AvailableCount)
	assert.Equal(t, 1, snap.OccupiedCount)
	assert.False(t, snap.Degraded)

	state, current := s.Current(7)
	assert.Equal(t, StateReady, state)
	assert.Equal(t, snap, current)

	notifs.AssertNotCalled(t, "NotifyFetchDegraded", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// An occupied desk must never be reported available, even when the
// availability fetch disagrees with the occupancy fetch.
func TestReconcile_AvailabilityAndOccupancyExclusive(t *testing.T) {
	bookings := new(MockBookingAPI)
	desks := new(MockDeskAPI)
	notifs := new(MockNotificationSender)

	roster := []domain.Desk{desk(1, "F1-01"), desk(2, "F1-02")}
	occupied := []domain.Booking{
		{ID: 60, UserID: 99, DeskID: 1, BookingDate: "2025-03-10", Status: domain.BookingCheckedIn},
	}

	bookings.On("UserUpcomingBookings", mock.Anything, int64(7)).Return(nil, nil)
	bookings.On("BookingsForDateAndFloor", mock.Anything, "2025-03-10", int64(1)).Return(occupied, nil)
	desks.On("DesksByFloor", mock.Anything, int64(1)).Return(roster, nil)
	// Both desks in the availability set, desk 1 contradicts occupancy.
	desks.On("AvailableDesks", mock.Anything, "2025-03-10", int64(1)).Return(roster, nil)

	s := newTestService(bookings, desks, notifs)

	snap, err := s.Reconcile(context.Background(), Params{UserID: 7, FloorID: 1, FloorNumber: 1, Date: "2025-03-10"})
	assert.NoError(t, err)

	for _, d := range snap.Desks {
		if d.Available {
			assert.Nil(t, d.Booking, "desk %d available and occupied at once", d.Desk.ID)
		}
	}
	assert.False(t, snap.Desks[0].Available)
	assert.True(t, snap.Desks[1].Available)
}

func TestReconcile_Idempotent(t *testing.T) {
	bookings := new(MockBookingAPI)
	desks := new(MockDeskAPI)
	notifs := new(MockNotificationSender)

	roster := []domain.Desk{desk(1, "F1-01"), desk(2, "F1-02")}
	occupied := []domain.Booking{
		{ID: 70, UserID: 7, DeskID: 2, BookingDate: "2025-03-10", Status: domain.BookingActive},
	}

	bookings.On("UserUpcomingBookings", mock.Anything, int64(7)).Return(occupied, nil)
	bookings.On("BookingsForDateAndFloor", mock.Anything, "2025-03-10", int64(1)).Return(occupied, nil)
	desks.On("DesksByFloor", mock.Anything, int64(1)).Return(roster, nil)
	desks.On("AvailableDesks", mock.Anything, "2025-03-10", int64(1)).Return([]domain.Desk{roster[0]}, nil)

	s := newTestService(bookings, desks, notifs)
	p := Params{UserID: 7, FloorID: 1, FloorNumber: 1, Date: "2025-03-10"}

	first, err := s.Reconcile(context.Background(), p)
	assert.NoError(t, err)
	second, err := s.Reconcile(context.Background(), p)
	assert.NoError(t, err)

	assert.Equal(t, first.Desks, second.Desks)
	assert.Equal(t, first.ExistingBooking, second.ExistingBooking)
	assert.True(t, second.HasUserBookingOnFloor)
	assert.Greater(t, second.Generation, first.Generation)
}

func TestReconcile_DegradedFetchKeepsMapUsable(t *testing.T) {
	bookings := new(MockBookingAPI)
	desks := new(MockDeskAPI)
	notifs := new(MockNotificationSender)

	roster := []domain.Desk{desk(1, "F1-01"), desk(2, "F1-02")}
	fetchErr := errors.New("upstream down")

	bookings.On("UserUpcomingBookings", mock.Anything, int64(7)).Return(nil, nil)
	bookings.On("BookingsForDateAndFloor", mock.Anything, "2025-03-10", int64(1)).Return(nil, fetchErr)
	desks.On("DesksByFloor", mock.Anything, int64(1)).Return(roster, nil)
	desks.On("AvailableDesks", mock.Anything, "2025-03-10", int64(1)).Return([]domain.Desk{roster[0]}, nil)
	notifs.On("NotifyFetchDegraded", mock.Anything, int64(7), "floor bookings", fetchErr).Return(nil)

	s := newTestService(bookings, desks, notifs)

	snap, err := s.Reconcile(context.Background(), Params{UserID: 7, FloorID: 1, FloorNumber: 1, Date: "2025-03-10"})
	assert.NoError(t, err)
	assert.True(t, snap.Degraded)
	assert.Len(t, snap.Desks, 2)
	assert.Equal(t, 0, snap.OccupiedCount)
	for _, d := range snap.Desks {
		assert.Nil(t, d.Booking)
	}

	notifs.AssertExpectations(t)
}

func TestReconcile_LateResultDiscarded(t *testing.T) {
	bookings := new(MockBookingAPI)
	desks := new(MockDeskAPI)
	notifs := new(MockNotificationSender)

	roster := []domain.Desk{desk(1, "F1-01")}

	started := make(chan struct{})
	release := make(chan struct{})

	// The first upcoming-bookings fetch stalls until released; meanwhile a
	// second reconciliation runs to completion.
	bookings.On("UserUpcomingBookings", mock.Anything, int64(7)).Run(func(mock.Arguments) {
		close(started)
		<-release
	}).Return(nil, nil).Once()
	bookings.On("UserUpcomingBookings", mock.Anything, int64(7)).Return(nil, nil)
	bookings.On("BookingsForDateAndFloor", mock.Anything, mock.Anything, int64(1)).Return(nil, nil)
	desks.On("DesksByFloor", mock.Anything, int64(1)).Return(roster, nil)
	desks.On("AvailableDesks", mock.Anything, mock.Anything, int64(1)).Return(roster, nil)

	s := newTestService(bookings, desks, notifs)

	firstDone := make(chan error, 1)
	go func() {
		_, err := s.Reconcile(context.Background(), Params{UserID: 7, FloorID: 1, FloorNumber: 1, Date: "2025-03-10"})
		firstDone <- err
	}()

	<-started
	snap, err := s.Reconcile(context.Background(), Params{UserID: 7, FloorID: 1, FloorNumber: 1, Date: "2025-03-11"})
	assert.NoError(t, err)
	assert.Equal(t, "2025-03-11", snap.Date)

	close(release)
	assert.ErrorIs(t, <-firstDone, ErrSuperseded)

	// The stale result must not have overwritten the newer snapshot.
	state, current := s.Current(7)
	assert.Equal(t, StateReady, state)
	assert.Equal(t, "2025-03-11", current.Date)
}

func TestReconcile_Validation(t *testing.T) {
	s := newTestService(new(MockBookingAPI), new(MockDeskAPI), new(MockNotificationSender))

	_, err := s.Reconcile(context.Background(), Params{UserID: 0, FloorID: 1, Date: "2025-03-10"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.Reconcile(context.Background(), Params{UserID: 7, FloorID: 0, Date: "2025-03-10"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.Reconcile(context.Background(), Params{UserID: 7, FloorID: 1, Date: "10.03.2025"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCurrent_IdleBeforeFirstReconcile(t *testing.T) {
	s := newTestService(new(MockBookingAPI), new(MockDeskAPI), new(MockNotificationSender))

	state, snap := s.Current(7)
	assert.Equal(t, StateIdle, state)
	assert.Nil(t, snap)
}

func TestSnapshotFilter(t *testing.T) {
	snap := &Snapshot{
		Desks: []DeskViewState{
			{Desk: domain.Desk{ID: 1, Notes: "Near window"}, Available: true},
			{Desk: domain.Desk{ID: 2}, BookedByCurrentUser: true, Booking: &domain.Booking{UserID: 7, UserName: "Dana Reeves"}},
			{Desk: domain.Desk{ID: 3}, Booking: &domain.Booking{UserID: 9, UserName: "Alice Smith"}},
		},
	}

	mine := snap.Filter(true, "")
	assert.Len(t, mine, 1)
	assert.Equal(t, int64(2), mine[0].Desk.ID)

	byName := snap.Filter(false, "alice")
	assert.Len(t, byName, 1)
	assert.Equal(t, int64(3), byName[0].Desk.ID)

	byNotes := snap.Filter(false, "WINDOW")
	assert.Len(t, byNotes, 1)
	assert.Equal(t, int64(1), byNotes[0].Desk.ID)

	all := snap.Filter(false, "")
	assert.Len(t, all, 3)
}
