package domain

type DeskType string

const (
	DeskStandard          DeskType = "STANDARD"
	DeskHotDesk           DeskType = "HOT_DESK"
	DeskMeetingRoom       DeskType = "MEETING_ROOM"
	DeskCollaborativeArea DeskType = "COLLABORATIVE_AREA"
)

type DeskStatus string

const (
	DeskAvailable   DeskStatus = "AVAILABLE"
	DeskOccupied    DeskStatus = "OCCUPIED"
	DeskMaintenance DeskStatus = "MAINTENANCE"
	DeskReserved    DeskStatus = "RESERVED"
)

// Desk is immutable reference data owned by the floor backend.
type Desk struct {
	ID             int64      `json:"id"`
	DeskNumber     string     `json:"deskNumber"`
	FloorID        int64      `json:"floorId"`
	FloorName      string     `json:"floorName,omitempty"`
	DepartmentID   int64      `json:"departmentId,omitempty"`
	DepartmentName string     `json:"departmentName,omitempty"`
	Type           DeskType   `json:"type"`
	Status         DeskStatus `json:"status"`
	Equipment      string     `json:"equipment,omitempty"`
	Notes          string     `json:"notes,omitempty"`
	NearWindow     bool       `json:"nearWindow,omitempty"`
	NearElevator   bool       `json:"nearElevator,omitempty"`
	NearBreakArea  bool       `json:"nearBreakArea,omitempty"`
	Active         bool       `json:"active"`
}
