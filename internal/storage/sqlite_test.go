package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "kv.db")

	store, err := OpenSQLite(path, "@FundBuddy:")
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, "k", []byte(`{"a":1}`)))
	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), got)

	// overwrite
	require.NoError(t, store.Set(ctx, "k", []byte(`{"a":2}`)))
	got, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":2}`), got)

	require.NoError(t, store.Delete(ctx, "k"))
	_, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "kv.db")

	store, err := OpenSQLite(path, "@FundBuddy:")
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "users", []byte(`[]`)))
	require.NoError(t, store.Close())

	reopened, err := OpenSQLite(path, "@FundBuddy:")
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, "users")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)
}

func TestSQLitePrefixNamespacesKeys(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "kv.db")

	a, err := OpenSQLite(path, "@FundBuddy:")
	require.NoError(t, err)
	require.NoError(t, a.Set(ctx, "k", []byte("mine")))
	require.NoError(t, a.Close())

	b, err := OpenSQLite(path, "@Other:")
	require.NoError(t, err)
	defer b.Close()

	_, err = b.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}
