package repository

import (
	"context"

	"fundbuddy/internal/domain"
)

// UserRepository is the account directory: the canonical list of every
// registered user, keyed by email.
type UserRepository interface {
	// List returns all registered users in registration order.
	List(ctx context.Context) ([]domain.User, error)
	// FindByEmail returns the user with the exact email or ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByCredentials returns the user matching both email and password
	// exactly, or ErrNotFound. Callers must not reveal which field missed.
	FindByCredentials(ctx context.Context, email, password string) (*domain.User, error)
	// Create appends a new user, or returns ErrAlreadyExists when the email
	// is taken.
	Create(ctx context.Context, user domain.User) error
	// Update applies mutate to the user with the given email, persists the
	// directory and returns the updated record, or ErrNotFound.
	Update(ctx context.Context, email string, mutate func(*domain.User)) (*domain.User, error)
}
