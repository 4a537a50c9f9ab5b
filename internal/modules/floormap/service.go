package floormap

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"deskbooker/internal/domain"
)

const dateLayout = "2006-01-02"

// Params identifies one reconciliation request. Identity is passed in
// explicitly; the service holds no ambient current-user state.
type Params struct {
	UserID      int64
	FloorID     int64
	FloorNumber int
	Date        string
}

// view is the per-user floor view. The generation counter is the stale-
// response guard: every reconciliation captures a generation at issue time
// and its result is applied only while that generation is still the latest.
type view struct {
	gen atomic.Uint64

	mu    sync.RWMutex
	state State
	snap  *Snapshot
}

// Service reconciles desk, availability and booking data into per-user floor
// snapshots. Snapshots are replaced wholesale; consumers never observe a
// partially merged view.
type Service struct {
	bookings BookingAPI
	desks    DeskAPI
	floors   FloorAPI
	layout   PositionRegistry
	notifs   NotificationSender

	mu    sync.Mutex
	views map[int64]*view
}

func NewService(bookings BookingAPI, desks DeskAPI, floors FloorAPI, layout PositionRegistry, notifs NotificationSender) *Service {
	return &Service{
		bookings: bookings,
		desks:    desks,
		floors:   floors,
		layout:   layout,
		notifs:   notifs,
		views:    make(map[int64]*view),
	}
}

// Floors lists the floors available for selection.
func (s *Service) Floors(ctx context.Context) ([]domain.Floor, error) {
	return s.floors.ActiveFloors(ctx)
}

// FloorStatistics relays occupancy figures for a floor and date.
func (s *Service) FloorStatistics(ctx context.Context, floorID int64, date string) (*domain.FloorStatistics, error) {
	if floorID <= 0 {
		return nil, ErrValidation
	}
	return s.floors.FloorStatistics(ctx, floorID, date)
}

func (s *Service) viewFor(userID int64) *view {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.views[userID]
	if !ok {
		v = &view{state: StateIdle}
		s.views[userID] = v
	}
	return v
}

// Current returns the user's view state and latest snapshot, which is nil
// until the first reconciliation completes.
func (s *Service) Current(userID int64) (State, *Snapshot) {
	v := s.viewFor(userID)
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.state, v.snap
}

// Reconcile fetches the four independent data sets for (floor, date), merges
// them into a consistent snapshot and publishes it atomically.
//
// A failed fetch degrades to an empty contribution rather than failing the
// whole reconciliation: the map may then show desks as free although
// occupancy data was missing, which is the documented tradeoff of keeping
// the view usable. Each degraded source is reported through the notification
// channel.
//
// If a newer reconciliation is issued while this one is in flight, the late
// result is discarded and ErrSuperseded returned.
func (s *Service) Reconcile(ctx context.Context, p Params) (*Snapshot, error) {
	if p.UserID <= 0 || p.FloorID <= 0 {
		return nil, ErrValidation
	}
	if _, err := time.Parse(dateLayout, p.Date); err != nil {
		return nil, ErrValidation
	}

	v := s.viewFor(p.UserID)
	gen := v.gen.Add(1)

	v.mu.Lock()
	v.state = StateLoading
	v.mu.Unlock()

	var (
		upcoming  []domain.Booking
		available []domain.Desk
		roster    []domain.Desk
		occupancy []domain.Booking
		errs      [4]error
	)

	// The four fetches are independent; fan out and join. Each goroutine
	// writes only its own slots, and failures are kept per slot rather than
	// propagated so the group never cancels early.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		upcoming, errs[0] = s.bookings.UserUpcomingBookings(gctx, p.UserID)
		return nil
	})
	g.Go(func() error {
		available, errs[1] = s.desks.AvailableDesks(gctx, p.Date, p.FloorID)
		return nil
	})
	g.Go(func() error {
		roster, errs[2] = s.desks.DesksByFloor(gctx, p.FloorID)
		return nil
	})
	g.Go(func() error {
		occupancy, errs[3] = s.bookings.BookingsForDateAndFloor(gctx, p.Date, p.FloorID)
		return nil
	})
	_ = g.Wait()

	degraded := false
	for i, source := range [4]string{"user bookings", "desk availability", "floor desks", "floor bookings"} {
		if errs[i] != nil {
			degraded = true
			_ = s.notifs.NotifyFetchDegraded(ctx, p.UserID, source, errs[i])
		}
	}
	if errs[0] != nil {
		upcoming = nil
	}
	if errs[1] != nil {
		available = nil
	}
	if errs[2] != nil {
		roster = nil
	}
	if errs[3] != nil {
		occupancy = nil
	}

	if v.gen.Load() != gen {
		return nil, ErrSuperseded
	}

	snap := s.merge(p, gen, upcoming, available, roster, occupancy, degraded)

	v.mu.Lock()
	defer v.mu.Unlock()
	// Re-check under the lock: a newer reconciliation may have published
	// between the counter check and here.
	if v.gen.Load() != gen {
		return nil, ErrSuperseded
	}
	v.state = StateReady
	v.snap = snap
	return snap, nil
}

func (s *Service) merge(p Params, gen uint64, upcoming []domain.Booking, available, roster []domain.Desk, occupancy []domain.Booking, degraded bool) *Snapshot {
	availSet := make(map[int64]struct{}, len(available))
	for _, d := range available {
		availSet[d.ID] = struct{}{}
	}

	byDesk := make(map[int64]*domain.Booking, len(occupancy))
	for i := range occupancy {
		b := &occupancy[i]
		if _, taken := byDesk[b.DeskID]; !taken {
			byDesk[b.DeskID] = b
		}
	}

	snap := &Snapshot{
		UserID:          p.UserID,
		FloorID:         p.FloorID,
		FloorNumber:     p.FloorNumber,
		Date:            p.Date,
		Generation:      gen,
		Desks:           make([]DeskViewState, 0, len(roster)),
		ExistingBooking: findExisting(upcoming, p.Date),
		AvailableCount:  len(available),
		OccupiedCount:   len(occupancy),
		Degraded:        degraded,
	}

	for _, desk := range roster {
		pos := s.layout.PositionOf(p.FloorNumber, desk.DeskNumber)
		booking := byDesk[desk.ID]
		_, inAvail := availSet[desk.ID]
		mine := booking != nil && booking.UserID == p.UserID
		if mine {
			snap.HasUserBookingOnFloor = true
		}
		snap.Desks = append(snap.Desks, DeskViewState{
			Desk: desk,
			X:    pos.X,
			Y:    pos.Y,
			// An occupied desk is never reported available, even when the
			// two source fetches disagree.
			Available:           inAvail && booking == nil,
			BookedByCurrentUser: mine,
			Booking:             booking,
		})
	}

	return snap
}

// findExisting picks the user's booking for the date, on any floor. The
// backend guarantees at most one held booking per user per date; the first
// match wins.
func findExisting(upcoming []domain.Booking, date string) *domain.Booking {
	for i := range upcoming {
		if upcoming[i].BookingDate == date && upcoming[i].IsHeld() {
			return &upcoming[i]
		}
	}
	return nil
}
