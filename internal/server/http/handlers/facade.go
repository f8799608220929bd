package handlers

import (
	"context"

	"github.com/tapnote/tapnote/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, username, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (*model.User, error)
}

// DirectoryFacade encapsulates brewery directory lookups exposed via HTTP.
type DirectoryFacade interface {
	SearchBreweries(ctx context.Context, searchType, query string) ([]model.Brewery, error)
	BreweryByID(ctx context.Context, id string) (model.Brewery, error)
}

// ReviewFacade provides review related operations.
type ReviewFacade interface {
	AddReview(ctx context.Context, userID int64, breweryID string, rating int, description string) (*model.Review, error)
	BreweryReviews(ctx context.Context, breweryID string) ([]model.Review, error)
	UserReviews(ctx context.Context, userID int64) ([]model.Review, error)
}

// BreweryFacade aggregates the full set of operations used across handlers.
type BreweryFacade interface {
	AuthFacade
	DirectoryFacade
	ReviewFacade
}
