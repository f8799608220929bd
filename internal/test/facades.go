package test

import (
	"context"

	"github.com/tapnote/tapnote/internal/domain/model"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn    func(context.Context, string, string, string) (*model.User, error)
	LoginFn       func(context.Context, string, string) (string, error)
	LogoutFn      func(context.Context, string) error
	CurrentUserFn func(context.Context, string) (*model.User, error)
}

// Register creates an account for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, username, email, password)
	}
	return &model.User{ID: 1, Username: username, Email: email}, nil
}

// Login returns a session token for successful login scenarios.
func (s AuthFacadeStub) Login(ctx context.Context, email, password string) (string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, email, password)
	}
	return "token", nil
}

// Logout invalidates the session token.
func (s AuthFacadeStub) Logout(ctx context.Context, token string) error {
	if s.LogoutFn != nil {
		return s.LogoutFn(ctx, token)
	}
	return nil
}

// CurrentUser resolves the session token to a user.
func (s AuthFacadeStub) CurrentUser(ctx context.Context, token string) (*model.User, error) {
	if s.CurrentUserFn != nil {
		return s.CurrentUserFn(ctx, token)
	}
	return &model.User{ID: 1, Username: "alice", Email: "alice@example.com"}, nil
}

// DirectoryFacadeStub simulates brewery directory lookups.
type DirectoryFacadeStub struct {
	SearchFn  func(context.Context, string, string) ([]model.Brewery, error)
	GetByIDFn func(context.Context, string) (model.Brewery, error)
}

// SearchBreweries returns configured search results.
func (s DirectoryFacadeStub) SearchBreweries(ctx context.Context, searchType, query string) ([]model.Brewery, error) {
	if s.SearchFn != nil {
		return s.SearchFn(ctx, searchType, query)
	}
	return []model.Brewery{{"id": "abc123", "name": "Hop House"}}, nil
}

// BreweryByID returns the configured brewery detail.
func (s DirectoryFacadeStub) BreweryByID(ctx context.Context, id string) (model.Brewery, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return model.Brewery{"id": id, "name": "Hop House"}, nil
}

// ReviewFacadeStub simulates review operations.
type ReviewFacadeStub struct {
	AddFn            func(context.Context, int64, string, int, string) (*model.Review, error)
	BreweryReviewsFn func(context.Context, string) ([]model.Review, error)
	UserReviewsFn    func(context.Context, int64) ([]model.Review, error)
}

// AddReview records a review for the given user and brewery.
func (s ReviewFacadeStub) AddReview(ctx context.Context, userID int64, breweryID string, rating int, description string) (*model.Review, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, userID, breweryID, rating, description)
	}
	return &model.Review{ID: 1, UserID: userID, BreweryID: breweryID, Rating: rating, Description: description}, nil
}

// BreweryReviews returns configured reviews for a brewery.
func (s ReviewFacadeStub) BreweryReviews(ctx context.Context, breweryID string) ([]model.Review, error) {
	if s.BreweryReviewsFn != nil {
		return s.BreweryReviewsFn(ctx, breweryID)
	}
	return nil, nil
}

// UserReviews returns configured reviews authored by a user.
func (s ReviewFacadeStub) UserReviews(ctx context.Context, userID int64) ([]model.Review, error) {
	if s.UserReviewsFn != nil {
		return s.UserReviewsFn(ctx, userID)
	}
	return nil, nil
}

// BreweryFacadeStub aggregates facade dependencies for HTTP layer tests.
type BreweryFacadeStub struct {
	AuthFacadeStub
	DirectoryFacadeStub
	ReviewFacadeStub
}

// DirectoryClientStub implements the directory client contract for tests.
type DirectoryClientStub struct {
	SearchFn  func(context.Context, string, string) ([]model.Brewery, error)
	GetByIDFn func(context.Context, string) (model.Brewery, error)
}

// Search returns configured results.
func (s DirectoryClientStub) Search(ctx context.Context, searchType, query string) ([]model.Brewery, error) {
	if s.SearchFn != nil {
		return s.SearchFn(ctx, searchType, query)
	}
	return nil, nil
}

// GetByID returns the configured brewery object.
func (s DirectoryClientStub) GetByID(ctx context.Context, id string) (model.Brewery, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return model.Brewery{"id": id}, nil
}
