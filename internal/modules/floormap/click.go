package floormap

import "deskbooker/internal/domain"

// ClickKind discriminates the action a desk click should trigger. The UI
// layer switches on it exhaustively.
type ClickKind string

const (
	// ClickViewOccupant: the desk is held by someone else; show their info.
	ClickViewOccupant ClickKind = "VIEW_OCCUPANT"
	// ClickNoOp: the desk is already the user's own for this date.
	ClickNoOp ClickKind = "NO_OP"
	// ClickProposeMove: confirm cancelling the existing booking and creating
	// one on the clicked desk.
	ClickProposeMove ClickKind = "PROPOSE_MOVE"
	// ClickProposeCreate: confirm a new booking, no prior cancellation.
	ClickProposeCreate ClickKind = "PROPOSE_CREATE"
)

// ClickAction is the resolved outcome of a desk click.
type ClickAction struct {
	Kind ClickKind   `json:"kind"`
	Desk domain.Desk `json:"desk"`

	// Occupant is set for VIEW_OCCUPANT.
	Occupant *domain.Booking `json:"occupant,omitempty"`
	// Existing is the user's current booking, set for NO_OP and
	// PROPOSE_MOVE.
	Existing *domain.Booking `json:"existing,omitempty"`
}

// InterpretClick resolves what a click on the desk means against a published
// snapshot. Pure: same snapshot and desk always yield the same action.
//
// A desk occupied by the current user resolves to NO_OP rather than
// VIEW_OCCUPANT, so "already yours" always reads the same whether the desk
// was matched through the occupancy fetch or the user's own upcoming
// bookings.
func InterpretClick(snap *Snapshot, deskID int64) (ClickAction, error) {
	if snap == nil {
		return ClickAction{}, ErrNotReady
	}

	var dv *DeskViewState
	for i := range snap.Desks {
		if snap.Desks[i].Desk.ID == deskID {
			dv = &snap.Desks[i]
			break
		}
	}
	if dv == nil {
		return ClickAction{}, ErrUnknownDesk
	}

	if dv.Booking != nil && dv.Booking.UserID != snap.UserID {
		return ClickAction{Kind: ClickViewOccupant, Desk: dv.Desk, Occupant: dv.Booking}, nil
	}

	existing := snap.ExistingBooking
	if existing != nil && existing.DeskID == dv.Desk.ID {
		return ClickAction{Kind: ClickNoOp, Desk: dv.Desk, Existing: existing}, nil
	}
	if dv.BookedByCurrentUser {
		// Occupancy shows the desk as the user's but the upcoming-bookings
		// fetch degraded; still not a bookable target.
		return ClickAction{Kind: ClickNoOp, Desk: dv.Desk, Existing: dv.Booking}, nil
	}
	if existing != nil {
		return ClickAction{Kind: ClickProposeMove, Desk: dv.Desk, Existing: existing}, nil
	}
	return ClickAction{Kind: ClickProposeCreate, Desk: dv.Desk}, nil
}
