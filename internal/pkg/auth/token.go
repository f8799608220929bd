package auth

import "github.com/google/uuid"

// TokenSource mints opaque session tokens. Tokens carry no claims; they are
// only meaningful as keys into the persisted session store.
type TokenSource interface {
	NewToken() string
}

// UUIDSource issues random UUID tokens.
type UUIDSource struct{}

// NewToken returns a fresh random token.
func (UUIDSource) NewToken() string {
	return uuid.NewString()
}
