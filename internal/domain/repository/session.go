package repository

import (
	"context"

	"github.com/tapnote/tapnote/internal/domain/model"
)

// SessionRepository describes persistence operations for login sessions.
type SessionRepository interface {
	Create(ctx context.Context, token string, userID int64) (*model.Session, error)
	GetByToken(ctx context.Context, token string) (*model.Session, error)
	Delete(ctx context.Context, token string) error
}
