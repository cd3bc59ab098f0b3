package service

import (
	"context"

	"github.com/google/uuid"

	"fundbuddy/internal/domain"
	"fundbuddy/internal/repository"
)

// AssetInput carries the form fields for creating or editing an asset.
// Numeric fields arrive as text and go through the validated parse before
// anything is persisted.
type AssetInput struct {
	Name           string
	AssetClass     string
	Description    string
	Risk           string
	ReturnRate     string
	InvestedAmount string
	Liquidity      string
}

// AssetService coordinates ledger operations for one user at a time.
type AssetService interface {
	List(ctx context.Context, email string) ([]domain.Asset, error)
	Add(ctx context.Context, email string, in AssetInput) (*domain.Asset, error)
	Update(ctx context.Context, email, id string, in AssetInput) (*domain.Asset, error)
	Remove(ctx context.Context, email, id string) error
	Search(ctx context.Context, email, query string) ([]domain.Asset, error)
}

type assetService struct {
	assets repository.AssetRepository
}

func NewAssetService(assets repository.AssetRepository) AssetService {
	return &assetService{assets: assets}
}

// buildAsset validates the input and returns the asset with an empty ID.
// It must be the only path from form text to a ledger record.
func buildAsset(in AssetInput) (*domain.Asset, error) {
	name, err := domain.RequireField("name", in.Name)
	if err != nil {
		return nil, err
	}
	rate, err := domain.ParseAmount("returnRate", in.ReturnRate)
	if err != nil {
		return nil, err
	}
	amount, err := domain.ParseAmount("investedAmount", in.InvestedAmount)
	if err != nil {
		return nil, err
	}

	return &domain.Asset{
		Name:           name,
		AssetClass:     domain.AssetClass(in.AssetClass),
		Description:    in.Description,
		Risk:           domain.Risk(in.Risk),
		ReturnRate:     rate,
		InvestedAmount: amount,
		Liquidity:      domain.Liquidity(in.Liquidity),
	}, nil
}

func (s *assetService) List(ctx context.Context, email string) ([]domain.Asset, error) {
	return s.assets.List(ctx, email)
}

func (s *assetService) Add(ctx context.Context, email string, in AssetInput) (*domain.Asset, error) {
	asset, err := buildAsset(in)
	if err != nil {
		return nil, err
	}
	asset.ID = uuid.NewString()

	if err := s.assets.Add(ctx, email, *asset); err != nil {
		return nil, err
	}
	return asset, nil
}

func (s *assetService) Update(ctx context.Context, email, id string, in AssetInput) (*domain.Asset, error) {
	asset, err := buildAsset(in)
	if err != nil {
		return nil, err
	}
	asset.ID = id

	if err := s.assets.Update(ctx, email, *asset); err != nil {
		return nil, err
	}
	return asset, nil
}

func (s *assetService) Remove(ctx context.Context, email, id string) error {
	return s.assets.Remove(ctx, email, id)
}

func (s *assetService) Search(ctx context.Context, email, query string) ([]domain.Asset, error) {
	assets, err := s.assets.List(ctx, email)
	if err != nil {
		return nil, err
	}
	return FilterByName(assets, func(a domain.Asset) string { return a.Name }, query), nil
}
