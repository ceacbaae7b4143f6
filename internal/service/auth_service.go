package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/giladbarnea/assetvista-core/internal/domain"
	"github.com/giladbarnea/assetvista-core/internal/security"
	"github.com/giladbarnea/assetvista-core/internal/session"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAuthNotConfigured means the reference hash or salt is missing from
	// the environment. Distinct from bad credentials: surfaced as a server
	// error, never as a login failure.
	ErrAuthNotConfigured = errors.New("authentication not configured")
)

type AuthServiceInterface interface {
	Login(ctx context.Context, password string) (token string, expiresAt time.Time, err error)
	Logout(ctx context.Context, token string) error
	Verify(ctx context.Context, token string) (bool, error)
}

// AuthService owns the session lifecycle: one session per login, absolute
// expiry at a fixed offset from creation, explicit destruction on logout.
type AuthService struct {
	sessions     session.Store
	passwordHash string
	passwordSalt string
	ttl          time.Duration
}

func NewAuthService(sessions session.Store, passwordHash, passwordSalt string, ttl time.Duration) *AuthService {
	return &AuthService{
		sessions:     sessions,
		passwordHash: passwordHash,
		passwordSalt: passwordSalt,
		ttl:          ttl,
	}
}

func (s *AuthService) Login(ctx context.Context, password string) (string, time.Time, error) {
	ok, err := security.VerifyPassword(password, s.passwordSalt, s.passwordHash)
	if err != nil {
		if errors.Is(err, security.ErrCredentialNotConfigured) {
			return "", time.Time{}, ErrAuthNotConfigured
		}
		return "", time.Time{}, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return "", time.Time{}, ErrInvalidCredentials
	}

	token, err := security.NewSessionToken()
	if err != nil {
		return "", time.Time{}, err
	}
	now := time.Now().UTC()
	expiresAt := now.Add(s.ttl)
	record := domain.Session{Authenticated: true, CreatedAt: now, ExpiresAt: expiresAt}
	if err := s.sessions.Create(ctx, token, record, s.ttl); err != nil {
		return "", time.Time{}, fmt.Errorf("create session: %w", err)
	}
	return token, expiresAt, nil
}

// Logout destroys the session record. An absent token is not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

// Verify reports whether token identifies a live session. An absent or
// expired record is (false, nil); a store failure is (false, err) so callers
// can log it while still denying access.
func (s *AuthService) Verify(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}
	record, err := s.sessions.Get(ctx, token)
	if errors.Is(err, session.ErrSessionNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return record.Valid(time.Now().UTC()), nil
}
