package domain

import "time"

// Session is a persisted BFF login session. It carries the backend token we
// obtained at login so mutations can be relayed on the user's behalf.
type Session struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	UserID       int64     `json:"user_id" gorm:"index"`
	Email        string    `json:"email"`
	Role         UserRole  `json:"role"`
	BackendToken string    `json:"-" gorm:"type:text;uniqueIndex"`
	ExpiresAt    time.Time `json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
	RevokedAt    *time.Time `json:"revoked_at,omitempty"`
}

// Alive reports whether the session is usable at the given instant.
func (s *Session) Alive(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}
