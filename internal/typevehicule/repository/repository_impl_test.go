package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hscdigital/douanapp/internal/clock"
	"github.com/hscdigital/douanapp/internal/storage"
	"github.com/hscdigital/douanapp/internal/typevehicule/domain"
)

func newRepo(t *testing.T) (domain.Repository, storage.Store) {
	t.Helper()
	store := storage.NewMemoryStore()
	clk := clock.NewFakeClock(time.Date(2024, 7, 15, 10, 0, 0, 0, time.UTC))
	return Provide(store, zap.NewNop(), clk), store
}

func TestListServesDefaultsWhenEmpty(t *testing.T) {
	repo, _ := newRepo(t)

	list := repo.List(context.Background())
	require.Len(t, list, len(domain.DefaultLabels))
	assert.Equal(t, "Berline", list[0].Label)
	assert.Equal(t, "tv_default_0", list[0].ID)
}

func TestListMigratesLegacyStringArray(t *testing.T) {
	repo, store := newRepo(t)
	ctx := context.Background()

	// Older data stored the directory as a plain label array.
	require.NoError(t, store.Set(ctx, storage.KeyTypesVehicule, []byte(`["Berline","Camion benne"]`)))

	list := repo.List(ctx)
	require.Len(t, list, 2)
	assert.Equal(t, "tv_0_Berline", list[0].ID)
	assert.Equal(t, "Camion benne", list[1].Label)
}

func TestListServesDefaultsOnCorruptData(t *testing.T) {
	repo, store := newRepo(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, storage.KeyTypesVehicule, []byte(`{invalid`)))
	assert.Len(t, repo.List(ctx), len(domain.DefaultLabels))
}

func TestSavePersistsDefaultsAlongside(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	tv := &domain.TypeVehicule{ID: "tv-new", Label: "Camion frigorifique"}
	require.NoError(t, repo.Save(ctx, tv))

	list := repo.List(ctx)
	assert.Len(t, list, len(domain.DefaultLabels)+1)

	got, err := repo.GetByID(ctx, "tv-new")
	require.NoError(t, err)
	assert.Equal(t, "Camion frigorifique", got.Label)
	assert.False(t, got.DateCreation.IsZero())
}

func TestDeleteRemovesType(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	before := repo.List(ctx)
	require.NoError(t, repo.Delete(ctx, before[0].ID))

	after := repo.List(ctx)
	assert.Len(t, after, len(before)-1)
	_, err := repo.GetByID(ctx, before[0].ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
