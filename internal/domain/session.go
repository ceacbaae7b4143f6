package domain

import "time"

// Session is the record stored per login under the opaque session token.
// A session is valid iff it is present in the store, marked authenticated,
// and the current time is not past ExpiresAt. Expiry is absolute: there is no
// sliding renewal window.
type Session struct {
	Authenticated bool      `json:"authenticated"`
	ExpiresAt     time.Time `json:"expires_at"`
	CreatedAt     time.Time `json:"created_at"`
}

// Valid reports whether the session authenticates requests at instant now.
// A malformed record (zero expiry, unauthenticated) never validates.
func (s Session) Valid(now time.Time) bool {
	if !s.Authenticated || s.ExpiresAt.IsZero() {
		return false
	}
	return !now.After(s.ExpiresAt)
}
