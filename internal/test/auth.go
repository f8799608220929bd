package test

import (
	"errors"
	"fmt"
	"sync/atomic"

	pkgAuth "github.com/tapnote/tapnote/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// TokenSourceStub mints predictable sequential tokens.
type TokenSourceStub struct {
	NewTokenFn func() string
	counter    atomic.Int64
}

// NewToken returns deterministic tokens for tests.
func (s *TokenSourceStub) NewToken() string {
	if s.NewTokenFn != nil {
		return s.NewTokenFn()
	}
	return fmt.Sprintf("token-%d", s.counter.Add(1))
}

var _ pkgAuth.PasswordHasher = HasherStub{}
var _ pkgAuth.TokenSource = (*TokenSourceStub)(nil)
