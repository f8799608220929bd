package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Reviews() ReviewRepository
	Sessions() SessionRepository
}
