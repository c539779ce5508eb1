// Package integrity centralizes the referential checks that protect deletes.
// Records reference each other by id across collections with no database
// foreign keys, so every destructive operation asks the guard first.
package integrity

import (
	"context"

	"go.uber.org/fx"

	dossierdomain "github.com/hscdigital/douanapp/internal/dossier/domain"
	facturedomain "github.com/hscdigital/douanapp/internal/facture/domain"
	locationdomain "github.com/hscdigital/douanapp/internal/location/domain"
)

type Guard interface {
	// ClientInUse reports whether any dossier, facture or location still
	// references the client.
	ClientInUse(ctx context.Context, clientID string) bool
	// TypeVehiculeInUse reports whether any dossier, facture or location
	// still references the vehicle type id.
	TypeVehiculeInUse(ctx context.Context, typeID string) bool
	// DossierHasFactures reports whether any facture references the dossier.
	DossierHasFactures(ctx context.Context, dossierID string) bool
}

type guard struct {
	dossiers  dossierdomain.Repository
	factures  facturedomain.Repository
	locations locationdomain.Repository
}

func Provide(
	dossiers dossierdomain.Repository,
	factures facturedomain.Repository,
	locations locationdomain.Repository,
) Guard {
	return &guard{dossiers: dossiers, factures: factures, locations: locations}
}

func (g *guard) ClientInUse(ctx context.Context, clientID string) bool {
	if clientID == "" {
		return false
	}
	for _, d := range g.dossiers.List(ctx) {
		if d.ClientID == clientID {
			return true
		}
	}
	for _, f := range g.factures.List(ctx) {
		if f.ClientID == clientID {
			return true
		}
	}
	for _, l := range g.locations.List(ctx) {
		if l.ClientID == clientID {
			return true
		}
	}
	return false
}

func (g *guard) TypeVehiculeInUse(ctx context.Context, typeID string) bool {
	if typeID == "" {
		return false
	}
	for _, d := range g.dossiers.List(ctx) {
		if d.TypeVehiculeID == typeID {
			return true
		}
	}
	for _, f := range g.factures.List(ctx) {
		if f.TypeVehiculeID == typeID {
			return true
		}
	}
	for _, l := range g.locations.List(ctx) {
		if l.TypeCamionID == typeID {
			return true
		}
	}
	return false
}

func (g *guard) DossierHasFactures(ctx context.Context, dossierID string) bool {
	return len(g.factures.GetByDossier(ctx, dossierID)) > 0
}

var Module = fx.Module("integrity",
	fx.Provide(Provide),
)
