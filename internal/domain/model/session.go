package model

import "time"

// Session is a persisted login token. It stays valid until explicit logout.
type Session struct {
	Token     string
	UserID    int64
	CreatedAt time.Time
}
