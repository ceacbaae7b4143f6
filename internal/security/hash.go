package security

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"
)

// ErrCredentialNotConfigured is returned when the reference hash or salt is
// missing. Verification fails closed rather than falling back to a default.
var ErrCredentialNotConfigured = errors.New("password hash or salt not configured")

// HashPassword computes the hex-encoded SHA-256 of password+salt. The same
// derivation is used by the hashgen tool to produce APP_PASSWORD_HASH.
func HashPassword(password, salt string) string {
	h := sha256.Sum256([]byte(password + salt))
	return hex.EncodeToString(h[:])
}

// VerifyPassword compares the salted hash of password against referenceHash
// in constant time.
func VerifyPassword(password, salt, referenceHash string) (bool, error) {
	if referenceHash == "" || salt == "" {
		return false, ErrCredentialNotConfigured
	}
	computed := HashPassword(password, salt)
	reference := strings.ToLower(strings.TrimSpace(referenceHash))
	return subtle.ConstantTimeCompare([]byte(computed), []byte(reference)) == 1, nil
}
