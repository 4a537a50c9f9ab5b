package auth

import (
	"context"
	"time"

	"deskbooker/internal/client"
	"deskbooker/internal/domain"
)

// AuthAPI is the backend's authentication surface.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*client.LoginResponse, error)
}

// SessionStore persists login sessions so identity survives restarts.
type SessionStore interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	Revoke(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
}
