package security

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// NewSessionToken returns a hex-encoded token with 256 bits of entropy.
// Tokens are lookup keys in the session store; collisions are not handled
// because the random space makes them negligible.
func NewSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
