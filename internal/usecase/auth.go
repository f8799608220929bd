package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/tapnote/tapnote/internal/domain/errors"
	"github.com/tapnote/tapnote/internal/domain/model"
	"github.com/tapnote/tapnote/internal/domain/repository"
	pkgAuth "github.com/tapnote/tapnote/internal/pkg/auth"
)

// AuthUseCase handles account lifecycle and login sessions.
type AuthUseCase struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	hasher   pkgAuth.PasswordHasher
	tokens   pkgAuth.TokenSource
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, sessions repository.SessionRepository, hasher pkgAuth.PasswordHasher, tokens pkgAuth.TokenSource) *AuthUseCase {
	return &AuthUseCase{users: users, sessions: sessions, hasher: hasher, tokens: tokens}
}

// Register creates a new user account. The plaintext password is hashed here
// and never reaches the store.
func (u *AuthUseCase) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	usr, err := u.users.Create(ctx, username, email, hash)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}

	return usr, nil
}

// Authenticate validates credentials. Missing user and wrong password are
// indistinguishable to the caller.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, domainErrors.ErrInvalidCredentials
	}

	return usr, nil
}

// Login establishes a persisted session for the user and returns its token.
// The session stays valid until explicit logout.
func (u *AuthUseCase) Login(ctx context.Context, userID int64) (string, error) {
	token := u.tokens.NewToken()
	if _, err := u.sessions.Create(ctx, token, userID); err != nil {
		return "", err
	}
	return token, nil
}

// Logout invalidates the session identified by token.
func (u *AuthUseCase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return u.sessions.Delete(ctx, token)
}

// CurrentUser resolves a session token to its user. ErrNoSession is returned
// for empty or unknown tokens.
func (u *AuthUseCase) CurrentUser(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, domainErrors.ErrNoSession
	}

	session, err := u.sessions.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrNoSession
		}
		return nil, err
	}

	usr, err := u.users.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrNoSession
		}
		return nil, err
	}
	return usr, nil
}
