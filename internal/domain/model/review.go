package model

import "time"

// Review rating bounds.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is a user-authored rating for a brewery. BreweryID is the opaque
// identifier minted by the external directory and is never validated locally.
type Review struct {
	ID          int64
	UserID      int64
	Username    string
	BreweryID   string
	Rating      int
	Description string
	CreatedAt   time.Time
}
