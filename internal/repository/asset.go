package repository

import (
	"context"

	"fundbuddy/internal/domain"
)

// AssetRepository is the per-user asset ledger, scoped by the owning
// user's email.
type AssetRepository interface {
	// List returns the user's ledger, empty when nothing was ever saved.
	List(ctx context.Context, email string) ([]domain.Asset, error)
	// Add appends the asset to the ledger and persists it.
	Add(ctx context.Context, email string, asset domain.Asset) error
	// Update replaces the record matching asset.ID, or returns ErrNotFound
	// leaving the ledger untouched.
	Update(ctx context.Context, email string, asset domain.Asset) error
	// Remove deletes the record with the given id, or returns ErrNotFound.
	Remove(ctx context.Context, email, id string) error
}
