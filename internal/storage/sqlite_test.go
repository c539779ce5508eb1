package storage

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newSQLiteStore(t *testing.T) Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	store, err := NewWithDB(db)
	require.NoError(t, err)
	return store
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()

	_, ok, err := store.Get(ctx, KeyDossiers)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, KeyDossiers, []byte(`[{"id":"d1"}]`)))

	raw, ok, err := store.Get(ctx, KeyDossiers)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `[{"id":"d1"}]`, string(raw))

	// Set overwrites the whole document.
	require.NoError(t, store.Set(ctx, KeyDossiers, []byte(`[]`)))
	raw, _, _ = store.Get(ctx, KeyDossiers)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestSQLiteStoreDelete(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, KeyClients, []byte(`[]`)))
	require.NoError(t, store.Delete(ctx, KeyClients))

	_, ok, err := store.Get(ctx, KeyClients)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteStoreClearRemovesEveryKey(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()

	keys := []string{KeyDossiers, KeyFactures, KeyLocations, KeyClients, KeyTypesVehicule, KeyEntreprise}
	for _, key := range keys {
		require.NoError(t, store.Set(ctx, key, []byte(`{}`)))
	}

	require.NoError(t, store.Clear(ctx))

	for _, key := range keys {
		_, ok, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, ok, "key=%s", key)
	}
}
