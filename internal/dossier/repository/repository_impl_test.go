package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hscdigital/douanapp/internal/clock"
	"github.com/hscdigital/douanapp/internal/dossier/domain"
	facturedomain "github.com/hscdigital/douanapp/internal/facture/domain"
	facturerepo "github.com/hscdigital/douanapp/internal/facture/repository"
	"github.com/hscdigital/douanapp/internal/storage"
)

func newRepos(t *testing.T) (domain.Repository, facturedomain.Repository, *clock.FakeClock) {
	t.Helper()
	store := storage.NewMemoryStore()
	log := zap.NewNop()
	clk := clock.NewFakeClock(time.Date(2024, 7, 15, 10, 0, 0, 0, time.UTC))
	factures := facturerepo.Provide(store, log, clk)
	return Provide(store, factures, log, clk), factures, clk
}

func TestSaveEnforcesNumeroCHUniqueness(t *testing.T) {
	repo, _, _ := newRepos(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &domain.Dossier{ID: "d1", NumeroCH: "CH-001", ReferenceVehicule: "REF-1"}))

	err := repo.Save(ctx, &domain.Dossier{ID: "d2", NumeroCH: "CH-001", ReferenceVehicule: "REF-2"})
	assert.ErrorIs(t, err, domain.ErrNumeroCHExiste)

	// Case and surrounding blanks do not make a key distinct.
	err = repo.Save(ctx, &domain.Dossier{ID: "d3", NumeroCH: " ch-001 ", ReferenceVehicule: "REF-3"})
	assert.ErrorIs(t, err, domain.ErrNumeroCHExiste)

	// Re-saving the same record under its own id is an update, not a clash.
	assert.NoError(t, repo.Save(ctx, &domain.Dossier{ID: "d1", NumeroCH: "CH-001", ReferenceVehicule: "REF-1b"}))
	assert.Len(t, repo.List(ctx), 1)
}

func TestSaveRefreshesDateModificationKeepsDateCreation(t *testing.T) {
	repo, _, clk := newRepos(t)
	ctx := context.Background()

	d := &domain.Dossier{ID: "d1", NumeroCH: "CH-001", ReferenceVehicule: "REF-1"}
	require.NoError(t, repo.Save(ctx, d))
	created := d.DateCreation

	clk.Advance(48 * time.Hour)
	d.Notes = "mise à jour"
	require.NoError(t, repo.Save(ctx, d))

	stored, err := repo.GetByID(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, created, stored.DateCreation)
	assert.Equal(t, created.Add(48*time.Hour), stored.DateModification)
	assert.Equal(t, "mise à jour", stored.Notes)
}

func TestDeleteBlockedWhileFacturesReference(t *testing.T) {
	repo, factures, _ := newRepos(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &domain.Dossier{ID: "d1", NumeroCH: "CH-001", ReferenceVehicule: "REF-1"}))
	require.NoError(t, factures.Save(ctx, &facturedomain.Facture{ID: "INV-1", DossierID: "d1", PrixTotalTTC: 100}))

	err := repo.Delete(ctx, "d1")
	assert.ErrorIs(t, err, domain.ErrDossierLieFactures)
	assert.Len(t, repo.List(ctx), 1, "le dossier reste en place")

	require.NoError(t, factures.Delete(ctx, "INV-1"))
	assert.NoError(t, repo.Delete(ctx, "d1"))
	assert.Empty(t, repo.List(ctx))
}

func TestGetByNumeroCH(t *testing.T) {
	repo, _, _ := newRepos(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &domain.Dossier{ID: "d1", NumeroCH: "CH-042", ReferenceVehicule: "REF-1"}))

	d, err := repo.GetByNumeroCH(ctx, "ch-042")
	require.NoError(t, err)
	assert.Equal(t, "d1", d.ID)

	_, err = repo.GetByNumeroCH(ctx, "CH-999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestImportAdditiveSkipsDuplicates(t *testing.T) {
	repo, _, _ := newRepos(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &domain.Dossier{ID: "d1", NumeroCH: "CH-001", ReferenceVehicule: "REF-1"}))

	stored, err := repo.Import(ctx, []domain.Dossier{
		{ID: "i1", NumeroCH: "CH-001"}, // already present
		{ID: "i2", NumeroCH: "CH-002"},
		{ID: "i3", NumeroCH: "CH-002"}, // duplicate within the batch
		{ID: "i4", NumeroCH: ""},       // no business key, dropped
	}, false)
	require.NoError(t, err)
	assert.Equal(t, 1, stored)
	assert.Len(t, repo.List(ctx), 2)
}

func TestImportReplaceDiscardsPriorCollection(t *testing.T) {
	repo, _, _ := newRepos(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &domain.Dossier{ID: "d1", NumeroCH: "CH-001", ReferenceVehicule: "REF-1"}))

	stored, err := repo.Import(ctx, []domain.Dossier{
		{ID: "i1", NumeroCH: "CH-100"},
		{ID: "i2", NumeroCH: "CH-200"},
	}, true)
	require.NoError(t, err)
	assert.Equal(t, 2, stored)

	list := repo.List(ctx)
	require.Len(t, list, 2)
	for _, d := range list {
		assert.NotEqual(t, "CH-001", d.NumeroCH)
		assert.False(t, d.DateCreation.IsZero(), "l'import estampille la création")
	}
}
