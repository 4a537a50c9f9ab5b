package auth

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"deskbooker/internal/client"
	"deskbooker/internal/domain"
	jwtsvc "deskbooker/internal/pkg/jwt"
)

type Service struct {
	api        AuthAPI
	sessions   SessionStore
	jwt        *jwtsvc.Service
	sessionTTL time.Duration
	now        func() time.Time
}

func NewService(api AuthAPI, sessions SessionStore, jwt *jwtsvc.Service, sessionTTL time.Duration) *Service {
	return &Service{
		api:        api,
		sessions:   sessions,
		jwt:        jwt,
		sessionTTL: sessionTTL,
		now:        time.Now,
	}
}

// Login verifies credentials against the backend, persists a session with
// the backend token it returned, and mints the BFF's own JWT carrying the
// session id.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	res, err := s.api.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	sess := &domain.Session{
		ID:           uuid.NewString(),
		UserID:       res.UserID,
		Email:        res.Email,
		Role:         domain.UserRole(res.Role),
		BackendToken: res.Token,
		ExpiresAt:    s.now().UTC().Add(s.sessionTTL),
		CreatedAt:    s.now().UTC(),
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, err
	}

	token, err := s.jwt.GenerateToken(res.UserID, res.Role, sess.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token: token,
		User: domain.User{
			ID:        res.UserID,
			Email:     res.Email,
			FirstName: res.FirstName,
			LastName:  res.LastName,
			Role:      domain.UserRole(res.Role),
			Active:    true,
		},
	}, nil
}

// Session loads and validates the session referenced by a JWT.
func (s *Service) Session(ctx context.Context, sessionID string) (*domain.Session, error) {
	sess, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, ErrSessionExpired
	}
	if !sess.Alive(s.now().UTC()) {
		return nil, ErrSessionExpired
	}
	return sess, nil
}

func (s *Service) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Revoke(ctx, sessionID)
}

// RunCleanup deletes expired sessions on the interval until the context is
// cancelled.
func (s *Service) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.sessions.DeleteExpired(ctx, s.now().UTC())
			if err != nil {
				log.Println("session cleanup:", err)
				continue
			}
			if n > 0 {
				log.Printf("session cleanup: removed %d expired sessions", n)
			}
		}
	}
}
