package test

import (
	"context"
	"time"

	domainErrors "github.com/tapnote/tapnote/internal/domain/errors"
	"github.com/tapnote/tapnote/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests, enforcing the same
// uniqueness rules as the real store.
type UserRepositoryStub struct {
	ByEmail    map[string]*model.User
	ByUsername map[string]*model.User
	ByID       map[int64]*model.User
	Next       int64
	Err        error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		ByEmail:    make(map[string]*model.User),
		ByUsername: make(map[string]*model.User),
		ByID:       make(map[int64]*model.User),
		Next:       1,
	}
}

// Create registers user unless username or email is taken.
func (s *UserRepositoryStub) Create(ctx context.Context, username, email, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.ByEmail[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if _, exists := s.ByUsername[username]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	user := &model.User{
		ID:           s.Next,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	s.Next++
	s.ByEmail[email] = user
	s.ByUsername[username] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByEmail[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ReviewRepositoryStub stores reviews in-memory in insertion order.
type ReviewRepositoryStub struct {
	Reviews []model.Review
	Next    int64
	Err     error
	// Usernames resolves user ids for the username column of listings.
	Usernames map[int64]string
}

// NewReviewRepositoryStub constructs an empty review repository stub.
func NewReviewRepositoryStub() *ReviewRepositoryStub {
	return &ReviewRepositoryStub{Next: 1, Usernames: make(map[int64]string)}
}

// Create appends a review and assigns the next identifier.
func (s *ReviewRepositoryStub) Create(ctx context.Context, userID int64, breweryID string, rating int, description string) (*model.Review, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	review := model.Review{
		ID:          s.Next,
		UserID:      userID,
		Username:    s.Usernames[userID],
		BreweryID:   breweryID,
		Rating:      rating,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	s.Next++
	s.Reviews = append(s.Reviews, review)
	return &review, nil
}

// ListByBrewery returns stored reviews for the brewery in insertion order.
func (s *ReviewRepositoryStub) ListByBrewery(ctx context.Context, breweryID string) ([]model.Review, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Review
	for _, r := range s.Reviews {
		if r.BreweryID == breweryID {
			result = append(result, r)
		}
	}
	return result, nil
}

// ListByUser returns stored reviews by the user in insertion order.
func (s *ReviewRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Review, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Review
	for _, r := range s.Reviews {
		if r.UserID == userID {
			result = append(result, r)
		}
	}
	return result, nil
}

// SessionRepositoryStub stores sessions in-memory for tests.
type SessionRepositoryStub struct {
	Sessions map[string]*model.Session
	Err      error
}

// NewSessionRepositoryStub constructs an empty session repository stub.
func NewSessionRepositoryStub() *SessionRepositoryStub {
	return &SessionRepositoryStub{Sessions: make(map[string]*model.Session)}
}

// Create stores a session keyed by token.
func (s *SessionRepositoryStub) Create(ctx context.Context, token string, userID int64) (*model.Session, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.Sessions[token]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	session := &model.Session{Token: token, UserID: userID, CreatedAt: time.Now().UTC()}
	s.Sessions[token] = session
	return session, nil
}

// GetByToken fetches a session or returns not found.
func (s *SessionRepositoryStub) GetByToken(ctx context.Context, token string) (*model.Session, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if session, ok := s.Sessions[token]; ok {
		return session, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Delete removes a session; deleting an unknown token is not an error.
func (s *SessionRepositoryStub) Delete(ctx context.Context, token string) error {
	if s.Err != nil {
		return s.Err
	}
	delete(s.Sessions, token)
	return nil
}
