package kv

import (
	"context"
	"errors"
	"fmt"

	"fundbuddy/internal/domain"
	"fundbuddy/internal/repository"
	"fundbuddy/internal/storage"
)

// AssetRepository keeps one JSON array per user under "assets_<email>",
// read-modify-written whole on every mutation.
type AssetRepository struct {
	store storage.Store
}

func NewAssetRepository(store storage.Store) repository.AssetRepository {
	return &AssetRepository{store: store}
}

func assetsKey(email string) string {
	return "assets_" + email
}

func (r *AssetRepository) List(ctx context.Context, email string) ([]domain.Asset, error) {
	var assets []domain.Asset
	err := storage.GetJSON(ctx, r.store, assetsKey(email), &assets)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load assets: %w", err)
	}
	return assets, nil
}

func (r *AssetRepository) save(ctx context.Context, email string, assets []domain.Asset) error {
	if err := storage.SetJSON(ctx, r.store, assetsKey(email), assets); err != nil {
		return fmt.Errorf("save assets: %w", err)
	}
	return nil
}

func (r *AssetRepository) Add(ctx context.Context, email string, asset domain.Asset) error {
	assets, err := r.List(ctx, email)
	if err != nil {
		return err
	}
	return r.save(ctx, email, append(assets, asset))
}

func (r *AssetRepository) Update(ctx context.Context, email string, asset domain.Asset) error {
	assets, err := r.List(ctx, email)
	if err != nil {
		return err
	}
	for i := range assets {
		if assets[i].ID == asset.ID {
			assets[i] = asset
			return r.save(ctx, email, assets)
		}
	}
	return repository.ErrNotFound
}

func (r *AssetRepository) Remove(ctx context.Context, email, id string) error {
	assets, err := r.List(ctx, email)
	if err != nil {
		return err
	}
	kept := assets[:0:0]
	found := false
	for _, a := range assets {
		if a.ID == id {
			found = true
			continue
		}
		kept = append(kept, a)
	}
	if !found {
		return repository.ErrNotFound
	}
	// an emptied ledger is still persisted, as an empty list
	return r.save(ctx, email, kept)
}
