package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hscdigital/douanapp/internal/clock"
	dossierdomain "github.com/hscdigital/douanapp/internal/dossier/domain"
	dossierrepo "github.com/hscdigital/douanapp/internal/dossier/repository"
	facturerepo "github.com/hscdigital/douanapp/internal/facture/repository"
	"github.com/hscdigital/douanapp/internal/integrity"
	locationrepo "github.com/hscdigital/douanapp/internal/location/repository"
	"github.com/hscdigital/douanapp/internal/storage"
	"github.com/hscdigital/douanapp/internal/typevehicule/domain"
	tvrepo "github.com/hscdigital/douanapp/internal/typevehicule/repository"
)

func newService(t *testing.T) (domain.Service, dossierdomain.Repository) {
	t.Helper()
	store := storage.NewMemoryStore()
	log := zap.NewNop()
	clk := clock.NewFakeClock(time.Date(2024, 7, 15, 10, 0, 0, 0, time.UTC))

	factures := facturerepo.Provide(store, log, clk)
	dossiers := dossierrepo.Provide(store, factures, log, clk)
	locations := locationrepo.Provide(store, log, clk)
	types := tvrepo.Provide(store, log, clk)
	guard := integrity.Provide(dossiers, factures, locations)

	return Provide(types, guard, log), dossiers
}

func TestResolveLabelMatchesAccentAndCaseInsensitively(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	// "Semi-remorque" is part of the default set; variant spellings must
	// resolve to it instead of creating a duplicate.
	id1, err := svc.ResolveLabel(ctx, "SEMI REMORQUE")
	require.NoError(t, err)
	id2, err := svc.ResolveLabel(ctx, "semi-remorqué")
	require.NoError(t, err)
	assert.Equal(t, id1, id2)
	assert.NotEmpty(t, id1)

	before := len(svc.List(ctx))
	id3, err := svc.ResolveLabel(ctx, "Camion benne")
	require.NoError(t, err)
	assert.NotEmpty(t, id3)
	assert.Len(t, svc.List(ctx), before+1, "un label inconnu crée le type")

	empty, err := svc.ResolveLabel(ctx, "  ")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestLabelOf(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	id, err := svc.ResolveLabel(ctx, "Porteur")
	require.NoError(t, err)
	assert.Equal(t, "Porteur", svc.LabelOf(ctx, id))
	assert.Empty(t, svc.LabelOf(ctx, "inconnu"))
	assert.Empty(t, svc.LabelOf(ctx, ""))
}

func TestCreateReusesExistingLabel(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	existing, err := svc.Create(ctx, domain.CreateTypeVehiculeRequest{Label: "berline"})
	require.NoError(t, err)
	assert.Equal(t, "Berline", existing.Label, "le type par défaut est réutilisé tel quel")

	_, err = svc.Create(ctx, domain.CreateTypeVehiculeRequest{Label: "   "})
	assert.ErrorIs(t, err, domain.ErrLabelRequis)
}

func TestDeleteBlockedWhileReferencedByID(t *testing.T) {
	svc, dossiers := newService(t)
	ctx := context.Background()

	tv, err := svc.Create(ctx, domain.CreateTypeVehiculeRequest{Label: "Camion benne"})
	require.NoError(t, err)

	require.NoError(t, dossiers.Save(ctx, &dossierdomain.Dossier{
		ID: "d1", NumeroCH: "CH-001", ReferenceVehicule: "REF-1", TypeVehiculeID: tv.ID,
	}))

	assert.ErrorIs(t, svc.Delete(ctx, tv.ID), domain.ErrTypeUtilise)

	// Renaming the type does not orphan the reference: linkage is by id.
	renamed, err := svc.Update(ctx, domain.UpdateTypeVehiculeRequest{ID: tv.ID, Label: "Benne basculante"})
	require.NoError(t, err)
	assert.Equal(t, tv.ID, renamed.ID)
	assert.ErrorIs(t, svc.Delete(ctx, tv.ID), domain.ErrTypeUtilise)

	require.NoError(t, dossiers.Delete(ctx, "d1"))
	assert.NoError(t, svc.Delete(ctx, tv.ID))
}
