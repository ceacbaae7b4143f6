// Package session stores per-login session records in an external key-value
// service, keyed by the opaque token carried in the session cookie.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/giladbarnea/assetvista-core/internal/domain"
)

var ErrSessionNotFound = errors.New("session not found")

// Store is the injected session backend. Get returns ErrSessionNotFound for
// absent, expired-and-evicted, or malformed records; any other error means
// the backend itself failed and callers must deny access.
type Store interface {
	Create(ctx context.Context, token string, record domain.Session, ttl time.Duration) error
	Get(ctx context.Context, token string) (domain.Session, error)
	Delete(ctx context.Context, token string) error
}
