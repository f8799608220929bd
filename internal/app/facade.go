package app

import (
	"context"

	"github.com/tapnote/tapnote/internal/domain/model"
	"github.com/tapnote/tapnote/internal/usecase"
)

// DirectoryProvider looks up breweries in the external directory.
type DirectoryProvider interface {
	Search(ctx context.Context, searchType, query string) ([]model.Brewery, error)
	GetByID(ctx context.Context, id string) (model.Brewery, error)
}

// BreweryFacade composes the use cases and the directory client into the
// single surface the HTTP layer talks to.
type BreweryFacade struct {
	auth      *usecase.AuthUseCase
	reviews   *usecase.ReviewUseCase
	directory DirectoryProvider
}

// NewBreweryFacade constructs BreweryFacade.
func NewBreweryFacade(auth *usecase.AuthUseCase, reviews *usecase.ReviewUseCase, directory DirectoryProvider) *BreweryFacade {
	return &BreweryFacade{auth: auth, reviews: reviews, directory: directory}
}

// Register creates a new user account.
func (f *BreweryFacade) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	return f.auth.Register(ctx, username, email, password)
}

// Login authenticates credentials and establishes a persisted session,
// returning its token.
func (f *BreweryFacade) Login(ctx context.Context, email, password string) (string, error) {
	user, err := f.auth.Authenticate(ctx, email, password)
	if err != nil {
		return "", err
	}
	return f.auth.Login(ctx, user.ID)
}

// Logout invalidates the session token.
func (f *BreweryFacade) Logout(ctx context.Context, token string) error {
	return f.auth.Logout(ctx, token)
}

// CurrentUser resolves a session token to the logged-in user.
func (f *BreweryFacade) CurrentUser(ctx context.Context, token string) (*model.User, error) {
	return f.auth.CurrentUser(ctx, token)
}

// SearchBreweries proxies a directory search.
func (f *BreweryFacade) SearchBreweries(ctx context.Context, searchType, query string) ([]model.Brewery, error) {
	return f.directory.Search(ctx, searchType, query)
}

// BreweryByID proxies a directory detail lookup.
func (f *BreweryFacade) BreweryByID(ctx context.Context, id string) (model.Brewery, error) {
	return f.directory.GetByID(ctx, id)
}

// AddReview stores a review authored by the user for the brewery.
func (f *BreweryFacade) AddReview(ctx context.Context, userID int64, breweryID string, rating int, description string) (*model.Review, error) {
	return f.reviews.Add(ctx, userID, breweryID, rating, description)
}

// BreweryReviews lists reviews for the brewery in insertion order.
func (f *BreweryFacade) BreweryReviews(ctx context.Context, breweryID string) ([]model.Review, error) {
	return f.reviews.ListByBrewery(ctx, breweryID)
}

// UserReviews lists reviews authored by the user.
func (f *BreweryFacade) UserReviews(ctx context.Context, userID int64) ([]model.Review, error) {
	return f.reviews.ListByUser(ctx, userID)
}
