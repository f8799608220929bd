package model

import "time"

// User represents a registered account able to post brewery reviews.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
