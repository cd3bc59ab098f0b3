package kv

import (
	"context"
	"errors"
	"fmt"

	"fundbuddy/internal/domain"
	"fundbuddy/internal/repository"
	"fundbuddy/internal/storage"
)

const usersKey = "users"

// UserRepository keeps the account directory as a single JSON array under
// the "users" key, rewritten whole on every mutation.
type UserRepository struct {
	store storage.Store
}

func NewUserRepository(store storage.Store) repository.UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := storage.GetJSON(ctx, r.store, usersKey, &users)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *UserRepository) FindByCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email && users[i].Password == password {
			return &users[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) error {
	users, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].Email == user.Email {
			return repository.ErrAlreadyExists
		}
	}
	users = append(users, user)
	if err := storage.SetJSON(ctx, r.store, usersKey, users); err != nil {
		return fmt.Errorf("save users: %w", err)
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, email string, mutate func(*domain.User)) (*domain.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email != email {
			continue
		}
		mutate(&users[i])
		// email is the identity; a mutator must not change it
		users[i].Email = email
		if err := storage.SetJSON(ctx, r.store, usersKey, users); err != nil {
			return nil, fmt.Errorf("save users: %w", err)
		}
		return &users[i], nil
	}
	return nil, repository.ErrNotFound
}
