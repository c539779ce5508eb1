package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hscdigital/douanapp/internal/storage"
)

type record struct {
	ID  string `json:"id"`
	Nom string `json:"nom"`
}

func newCollection(t *testing.T) (Collection[record], storage.Store) {
	t.Helper()
	store := storage.NewMemoryStore()
	return Collection[record]{Store: store, Key: "test_records", Log: zap.NewNop()}, store
}

func TestLoadMissingKeyIsEmpty(t *testing.T) {
	coll, _ := newCollection(t)
	assert.Empty(t, coll.Load(context.Background()))
}

func TestReplaceThenLoad(t *testing.T) {
	coll, _ := newCollection(t)
	ctx := context.Background()

	require.NoError(t, coll.Replace(ctx, []record{{ID: "1", Nom: "a"}, {ID: "2", Nom: "b"}}))

	got := coll.Load(ctx)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[1].Nom)
}

func TestLoadCorruptDataFailsSoft(t *testing.T) {
	coll, store := newCollection(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "test_records", []byte(`{not json`)))
	assert.Empty(t, coll.Load(ctx), "des données corrompues rendent une collection vide, jamais d'erreur")
}

func TestReplaceNilStoresEmptyArray(t *testing.T) {
	coll, store := newCollection(t)
	ctx := context.Background()

	require.NoError(t, coll.Replace(ctx, nil))
	raw, ok, err := store.Get(ctx, "test_records")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `[]`, string(raw))
}
