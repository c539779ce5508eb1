package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hscdigital/douanapp/internal/entreprise/domain"
	"github.com/hscdigital/douanapp/internal/storage"
)

func TestGetServesDefaultWhenAbsent(t *testing.T) {
	repo := Provide(storage.NewMemoryStore(), zap.NewNop())

	info := repo.Get(context.Background())
	assert.Equal(t, domain.Default(), info)
	assert.NotEmpty(t, info.Nom)
}

func TestGetServesDefaultOnCorruptRecord(t *testing.T) {
	store := storage.NewMemoryStore()
	repo := Provide(store, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, storage.KeyEntreprise, []byte(`{corrompu`)))
	assert.Equal(t, domain.Default(), repo.Get(ctx))
}

func TestSaveThenGet(t *testing.T) {
	repo := Provide(storage.NewMemoryStore(), zap.NewNop())
	ctx := context.Background()

	info := domain.EntrepriseInfo{
		Nom:       "HSC Transit",
		Adresse:   "Bamako, Mali",
		Telephone: "+223 70 00 00 00",
		Email:     "contact@hsc.ml",
	}
	require.NoError(t, repo.Save(ctx, info))
	assert.Equal(t, info, repo.Get(ctx))
}
