package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hscdigital/douanapp/internal/client/domain"
	clientrepo "github.com/hscdigital/douanapp/internal/client/repository"
	"github.com/hscdigital/douanapp/internal/clock"
	dossierdomain "github.com/hscdigital/douanapp/internal/dossier/domain"
	dossierrepo "github.com/hscdigital/douanapp/internal/dossier/repository"
	facturerepo "github.com/hscdigital/douanapp/internal/facture/repository"
	"github.com/hscdigital/douanapp/internal/integrity"
	locationrepo "github.com/hscdigital/douanapp/internal/location/repository"
	"github.com/hscdigital/douanapp/internal/storage"
)

func newService(t *testing.T) (domain.Service, dossierdomain.Repository) {
	t.Helper()
	store := storage.NewMemoryStore()
	log := zap.NewNop()
	clk := clock.NewFakeClock(time.Date(2024, 7, 15, 10, 0, 0, 0, time.UTC))

	factures := facturerepo.Provide(store, log, clk)
	dossiers := dossierrepo.Provide(store, factures, log, clk)
	locations := locationrepo.Provide(store, log, clk)
	clients := clientrepo.Provide(store, log, clk)
	guard := integrity.Provide(dossiers, factures, locations)

	return Provide(clients, guard, log), dossiers
}

func TestCreateClientValidation(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateClientRequest{Telephone: "70000000"})
	assert.ErrorIs(t, err, domain.ErrNomRequis)

	_, err = svc.Create(ctx, domain.CreateClientRequest{Nom: "Diallo"})
	assert.ErrorIs(t, err, domain.ErrTelephoneRequis)

	_, err = svc.Create(ctx, domain.CreateClientRequest{Nom: "Diallo", Telephone: "abc"})
	assert.ErrorIs(t, err, domain.ErrTelephoneInvalide)

	c, err := svc.Create(ctx, domain.CreateClientRequest{
		Nom: "  Diallo  ", Prenom: "Amadou", Telephone: "+223 70 00 00 00",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "Diallo", c.Nom)
}

func TestDeleteClientBlockedWhileReferenced(t *testing.T) {
	svc, dossiers := newService(t)
	ctx := context.Background()

	c, err := svc.Create(ctx, domain.CreateClientRequest{Nom: "Diallo", Telephone: "70000000"})
	require.NoError(t, err)

	require.NoError(t, dossiers.Save(ctx, &dossierdomain.Dossier{
		ID: "d1", NumeroCH: "CH-001", ReferenceVehicule: "REF-1", ClientID: c.ID,
	}))

	assert.ErrorIs(t, svc.Delete(ctx, c.ID), domain.ErrClientUtilise)
	_, err = svc.GetByID(ctx, c.ID)
	assert.NoError(t, err, "le client reste en place")

	require.NoError(t, dossiers.Delete(ctx, "d1"))
	assert.NoError(t, svc.Delete(ctx, c.ID))
	_, err = svc.GetByID(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
