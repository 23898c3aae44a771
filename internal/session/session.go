package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"
)

// DefaultTTL is how long a session token stays valid, measured from
// creation. The window is fixed, not sliding.
const DefaultTTL = 24 * time.Hour

// CookieName is the cookie carrying the admin session token.
const CookieName = "adminSession"

// Store tracks logged-in admin sessions. Implementations are injected
// into the HTTP layer rather than held as package state.
type Store interface {
	// Create registers a fresh token and returns it.
	Create(ctx context.Context) (string, error)
	// Validate reports whether the token exists and has not aged past
	// the TTL. Absent and expired tokens are indistinguishable.
	Validate(ctx context.Context, token string) (bool, error)
	// Delete revokes the token immediately. Deleting an unknown token
	// is not an error.
	Delete(ctx context.Context, token string) error
}

// newToken returns 256 bits of hex-encoded randomness.
func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
