package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fundbuddy/internal/domain"
	"fundbuddy/internal/repository"
	"fundbuddy/internal/repository/kv"
	"fundbuddy/internal/storage"
)

const owner = "maria@example.com"

func newAssetService() AssetService {
	return NewAssetService(kv.NewAssetRepository(storage.NewMemory("@FundBuddy:")))
}

func validInput() AssetInput {
	return AssetInput{
		Name:           "Tesouro Selic",
		AssetClass:     "Renda Fixa",
		Description:    "título público",
		Risk:           "Baixo",
		ReturnRate:     "10.5",
		InvestedAmount: "1500",
		Liquidity:      "Alta",
	}
}

func TestAssetServiceAdd(t *testing.T) {
	ctx := context.Background()
	svc := newAssetService()

	created, err := svc.Add(ctx, owner, validInput())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Tesouro Selic", created.Name)
	assert.Equal(t, "10.5", created.ReturnRate.String())
	assert.True(t, created.AssetClass.Known())

	assets, err := svc.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, assets, 1)
	assert.Equal(t, created.ID, assets[0].ID)
}

func TestAssetServiceAddGeneratesDistinctIDs(t *testing.T) {
	ctx := context.Background()
	svc := newAssetService()

	a, err := svc.Add(ctx, owner, validInput())
	require.NoError(t, err)
	b, err := svc.Add(ctx, owner, validInput())
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestAssetServiceValidation(t *testing.T) {
	ctx := context.Background()
	svc := newAssetService()

	cases := []struct {
		name   string
		mutate func(*AssetInput)
	}{
		{"missing name", func(in *AssetInput) { in.Name = " " }},
		{"missing return rate", func(in *AssetInput) { in.ReturnRate = "" }},
		{"non-numeric return rate", func(in *AssetInput) { in.ReturnRate = "dez" }},
		{"missing invested amount", func(in *AssetInput) { in.InvestedAmount = "" }},
		{"non-numeric invested amount", func(in *AssetInput) { in.InvestedAmount = "R$100" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)

			var vErr *domain.ValidationError
			_, err := svc.Add(ctx, owner, in)
			assert.ErrorAs(t, err, &vErr)

			// rejected input must not touch the ledger
			assets, err := svc.List(ctx, owner)
			require.NoError(t, err)
			assert.Empty(t, assets)
		})
	}
}

func TestAssetServiceFreeTextLabels(t *testing.T) {
	ctx := context.Background()
	svc := newAssetService()

	in := validInput()
	in.AssetClass = "Cripto"
	in.Risk = "Altíssimo"
	in.Liquidity = "Instantânea"

	created, err := svc.Add(ctx, owner, in)
	require.NoError(t, err)
	assert.False(t, created.AssetClass.Known())
	assert.False(t, created.Risk.Known())
	assert.False(t, created.Liquidity.Known())
}

func TestAssetServiceUpdate(t *testing.T) {
	ctx := context.Background()
	svc := newAssetService()

	created, err := svc.Add(ctx, owner, validInput())
	require.NoError(t, err)

	in := validInput()
	in.Name = "Tesouro IPCA"
	in.ReturnRate = "12"
	updated, err := svc.Update(ctx, owner, created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Tesouro IPCA", updated.Name)

	assets, err := svc.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, assets, 1)
	assert.Equal(t, "Tesouro IPCA", assets[0].Name)
}

func TestAssetServiceUpdateUnknownID(t *testing.T) {
	ctx := context.Background()
	svc := newAssetService()

	_, err := svc.Add(ctx, owner, validInput())
	require.NoError(t, err)

	_, err = svc.Update(ctx, owner, "ghost", validInput())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAssetServiceAddThenRemoveRestoresLedger(t *testing.T) {
	ctx := context.Background()
	svc := newAssetService()

	_, err := svc.Add(ctx, owner, validInput())
	require.NoError(t, err)
	before, err := svc.List(ctx, owner)
	require.NoError(t, err)

	created, err := svc.Add(ctx, owner, validInput())
	require.NoError(t, err)
	require.NoError(t, svc.Remove(ctx, owner, created.ID))

	after, err := svc.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, after, len(before))
	assert.Equal(t, before[0].ID, after[0].ID)
}

func TestAssetServiceSearch(t *testing.T) {
	ctx := context.Background()
	svc := newAssetService()

	for _, name := range []string{"Renda Fixa A", "Tesouro", "Renault Fundo"} {
		in := validInput()
		in.Name = name
		_, err := svc.Add(ctx, owner, in)
		require.NoError(t, err)
	}

	got, err := svc.Search(ctx, owner, "ren")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Renda Fixa A", got[0].Name)
	assert.Equal(t, "Renault Fundo", got[1].Name)

	all, err := svc.Search(ctx, owner, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
