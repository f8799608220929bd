package repository

import (
	"context"

	"github.com/tapnote/tapnote/internal/domain/model"
)

// ReviewRepository describes persistence operations for brewery reviews.
type ReviewRepository interface {
	Create(ctx context.Context, userID int64, breweryID string, rating int, description string) (*model.Review, error)
	ListByBrewery(ctx context.Context, breweryID string) ([]model.Review, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Review, error)
}
