package domain

type BookingStatus string

const (
	BookingActive     BookingStatus = "ACTIVE"
	BookingCheckedIn  BookingStatus = "CHECKED_IN"
	BookingCheckedOut BookingStatus = "CHECKED_OUT"
	BookingCompleted  BookingStatus = "COMPLETED"
	BookingCancelled  BookingStatus = "CANCELLED"
	BookingNoShow     BookingStatus = "NO_SHOW"
)

type BookingType string

const (
	BookingFullDay   BookingType = "FULL_DAY"
	BookingMorning   BookingType = "MORNING"
	BookingAfternoon BookingType = "AFTERNOON"
	BookingCustom    BookingType = "CUSTOM"
)

// Booking is a user's claim on a desk for a calendar date. BookingDate is an
// opaque "YYYY-MM-DD" string owned by the backend; dates are compared as
// strings, never converted through time zones.
type Booking struct {
	ID                 int64         `json:"id"`
	UserID             int64         `json:"userId"`
	UserName           string        `json:"userName,omitempty"`
	UserEmail          string        `json:"userEmail,omitempty"`
	DeskID             int64         `json:"deskId"`
	DeskNumber         string        `json:"deskNumber,omitempty"`
	FloorID            int64         `json:"floorId,omitempty"`
	FloorName          string        `json:"floorName,omitempty"`
	BookingDate        string        `json:"bookingDate"`
	Status             BookingStatus `json:"status"`
	Type               BookingType   `json:"type"`
	Notes              string        `json:"notes,omitempty"`
	CheckedInAt        string        `json:"checkedInAt,omitempty"`
	CheckedOutAt       string        `json:"checkedOutAt,omitempty"`
	CancellationReason string        `json:"cancellationReason,omitempty"`
	CreatedAt          string        `json:"createdAt,omitempty"`
}

// IsHeld reports whether the booking still occupies its desk.
func (b *Booking) IsHeld() bool {
	return b.Status == BookingActive || b.Status == BookingCheckedIn
}
