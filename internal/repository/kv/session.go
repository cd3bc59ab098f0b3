package kv

import (
	"context"
	"errors"
	"fmt"

	"fundbuddy/internal/repository"
	"fundbuddy/internal/storage"
)

const currentUserKey = "currentUser"

// SessionRepository persists the email of the logged-in user under the
// "currentUser" key.
type SessionRepository struct {
	store storage.Store
}

func NewSessionRepository(store storage.Store) repository.SessionRepository {
	return &SessionRepository{store: store}
}

func (r *SessionRepository) Current(ctx context.Context) (string, error) {
	var email string
	err := storage.GetJSON(ctx, r.store, currentUserKey, &email)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return "", repository.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("load session: %w", err)
	}
	if email == "" {
		return "", repository.ErrNotFound
	}
	return email, nil
}

func (r *SessionRepository) SetCurrent(ctx context.Context, email string) error {
	if err := storage.SetJSON(ctx, r.store, currentUserKey, email); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, currentUserKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
