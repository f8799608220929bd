package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/tapnote/tapnote/internal/domain/errors"
	"github.com/tapnote/tapnote/internal/domain/model"
	"github.com/tapnote/tapnote/internal/domain/repository"
)

// ReviewUseCase handles creation and listing of brewery reviews.
type ReviewUseCase struct {
	reviews repository.ReviewRepository
}

// NewReviewUseCase constructs ReviewUseCase.
func NewReviewUseCase(reviews repository.ReviewRepository) *ReviewUseCase {
	return &ReviewUseCase{reviews: reviews}
}

// Add inserts a review for the brewery on behalf of the user. Forms validate
// first; the bounds are re-checked here so bad values never reach the store.
func (u *ReviewUseCase) Add(ctx context.Context, userID int64, breweryID string, rating int, description string) (*model.Review, error) {
	if rating < model.MinRating || rating > model.MaxRating {
		return nil, domainErrors.ErrInvalidReview
	}
	if strings.TrimSpace(description) == "" {
		return nil, domainErrors.ErrInvalidReview
	}
	if breweryID == "" {
		return nil, domainErrors.ErrInvalidReview
	}
	return u.reviews.Create(ctx, userID, breweryID, rating, description)
}

// ListByBrewery returns all reviews for the brewery in insertion order.
func (u *ReviewUseCase) ListByBrewery(ctx context.Context, breweryID string) ([]model.Review, error) {
	return u.reviews.ListByBrewery(ctx, breweryID)
}

// ListByUser returns all reviews authored by the user in insertion order.
func (u *ReviewUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Review, error) {
	return u.reviews.ListByUser(ctx, userID)
}
