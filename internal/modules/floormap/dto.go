package floormap

import (
	"strings"

	"deskbooker/internal/domain"
)

// State of the per-user floor view.
type State string

const (
	StateIdle    State = "IDLE"
	StateLoading State = "LOADING"
	StateReady   State = "READY"
)

// DeskViewState is the merged per-desk view. Rebuilt wholesale on every
// reconciliation, never patched in place. Available and Booking are mutually
// exclusive: a desk with an occupying booking is never reported available.
type DeskViewState struct {
	Desk                domain.Desk     `json:"desk"`
	X                   float64         `json:"x"`
	Y                   float64         `json:"y"`
	Available           bool            `json:"available"`
	BookedByCurrentUser bool            `json:"bookedByCurrentUser"`
	Booking             *domain.Booking `json:"booking,omitempty"`
}

// Snapshot is one fully consistent reconciliation result for a
// (user, floor, date) triple.
type Snapshot struct {
	UserID      int64  `json:"userId"`
	FloorID     int64  `json:"floorId"`
	FloorNumber int    `json:"floorNumber"`
	Date        string `json:"date"`
	Generation  uint64 `json:"generation"`

	Desks []DeskViewState `json:"desks"`

	// ExistingBooking is the user's booking for the date on any floor, not
	// necessarily the one displayed. Drives create-vs-move click semantics.
	ExistingBooking *domain.Booking `json:"existingBooking,omitempty"`

	AvailableCount        int  `json:"availableCount"`
	OccupiedCount         int  `json:"occupiedCount"`
	HasUserBookingOnFloor bool `json:"hasUserBookingOnFloor"`

	// Degraded is set when one or more fetches failed and their contribution
	// was treated as empty. The map stays usable; occupancy may be stale.
	Degraded bool `json:"degraded,omitempty"`
}

// Filter returns the desks to render, optionally narrowed to the user's own
// booking and/or a search term matched against desk notes and occupant name.
func (s *Snapshot) Filter(onlyMine bool, search string) []DeskViewState {
	term := strings.ToLower(strings.TrimSpace(search))
	out := make([]DeskViewState, 0, len(s.Desks))
	for _, d := range s.Desks {
		if onlyMine && !d.BookedByCurrentUser {
			continue
		}
		if term != "" && !matchesSearch(d, term) {
			continue
		}
		out = append(out, d)
	}
	return out
}

func matchesSearch(d DeskViewState, term string) bool {
	if strings.Contains(strings.ToLower(d.Desk.Notes), term) {
		return true
	}
	return d.Booking != nil && strings.Contains(strings.ToLower(d.Booking.UserName), term)
}
