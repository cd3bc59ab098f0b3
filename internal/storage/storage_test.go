package storage

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fundbuddy/internal/domain"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemory("@FundBuddy:")

	require.NoError(t, store.Set(ctx, "greeting", []byte("olá")))

	got, err := store.Get(ctx, "greeting")
	require.NoError(t, err)
	assert.Equal(t, []byte("olá"), got)

	require.NoError(t, store.Set(ctx, "greeting", []byte("oi")))
	got, err = store.Get(ctx, "greeting")
	require.NoError(t, err)
	assert.Equal(t, []byte("oi"), got)
}

func TestMemoryStoreMissingKey(t *testing.T) {
	ctx := context.Background()
	store := NewMemory("@FundBuddy:")

	_, err := store.Get(ctx, "nothing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, "k", []byte("v")))
	require.NoError(t, store.Delete(ctx, "k"))
	_, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// deleting an absent key is not an error
	assert.NoError(t, store.Delete(ctx, "k"))
}

func TestJSONRoundTripUser(t *testing.T) {
	ctx := context.Background()
	store := NewMemory("@FundBuddy:")

	in := domain.User{
		Name:       "Maria Silva",
		Email:      "maria@example.com",
		Password:   "segredo",
		CPF:        "123.456.789-00",
		Goal:       "10000",
		SocialName: "Mari",
	}
	require.NoError(t, SetJSON(ctx, store, "user", in))

	var out domain.User
	require.NoError(t, GetJSON(ctx, store, "user", &out))
	assert.Equal(t, in, out)
}

func TestJSONRoundTripAsset(t *testing.T) {
	ctx := context.Background()
	store := NewMemory("@FundBuddy:")

	in := domain.Asset{
		ID:             "a1",
		Name:           "Tesouro Selic",
		AssetClass:     domain.ClassFixedIncome,
		Description:    "título público",
		Risk:           domain.RiskLow,
		ReturnRate:     decimal.RequireFromString("10.5"),
		InvestedAmount: decimal.RequireFromString("1500.00"),
		Liquidity:      domain.LiquidityHigh,
	}
	require.NoError(t, SetJSON(ctx, store, "asset", in))

	var out domain.Asset
	require.NoError(t, GetJSON(ctx, store, "asset", &out))
	assert.Equal(t, in.ID, out.ID)
	assert.Equal(t, in.Name, out.Name)
	assert.Equal(t, in.AssetClass, out.AssetClass)
	assert.Equal(t, in.Risk, out.Risk)
	assert.Equal(t, in.Liquidity, out.Liquidity)
	assert.True(t, in.ReturnRate.Equal(out.ReturnRate))
	assert.True(t, in.InvestedAmount.Equal(out.InvestedAmount))
}

func TestJSONDecodeFailure(t *testing.T) {
	ctx := context.Background()
	store := NewMemory("@FundBuddy:")

	require.NoError(t, store.Set(ctx, "bad", []byte("{not json")))

	var out domain.User
	err := GetJSON(ctx, store, "bad", &out)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrKeyNotFound)
}
