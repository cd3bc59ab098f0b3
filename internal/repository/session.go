package repository

import "context"

// SessionRepository tracks which user, if any, is currently authenticated.
// Only the email is persisted; the full record always comes from the
// account directory, so there is a single source of truth.
type SessionRepository interface {
	// Current returns the email of the logged-in user or ErrNotFound.
	Current(ctx context.Context) (string, error)
	SetCurrent(ctx context.Context, email string) error
	Clear(ctx context.Context) error
}
