package domain

type UserRole string

const (
	RoleAdmin   UserRole = "ADMIN"
	RoleManager UserRole = "MANAGER"
	RoleUser    UserRole = "USER"
)

type User struct {
	ID         int64    `json:"id"`
	Email      string   `json:"email"`
	FirstName  string   `json:"firstName"`
	LastName   string   `json:"lastName"`
	EmployeeID string   `json:"employeeId,omitempty"`
	Role       UserRole `json:"role"`
	Active     bool     `json:"active"`
}

// CanViewBookingsOf reports whether a user with the given role may read
// another user's bookings. Admins and managers see everyone, regular users
// only themselves.
func CanViewBookingsOf(role UserRole, viewerID, ownerID int64) bool {
	if role == RoleAdmin || role == RoleManager {
		return true
	}
	return viewerID == ownerID
}
