// Package dashboard aggregates cross-collection statistics for the home view.
package dashboard

import (
	"context"
	"sort"
	"time"

	"go.uber.org/fx"

	clientdomain "github.com/hscdigital/douanapp/internal/client/domain"
	dossierdomain "github.com/hscdigital/douanapp/internal/dossier/domain"
	facturedomain "github.com/hscdigital/douanapp/internal/facture/domain"
	locationdomain "github.com/hscdigital/douanapp/internal/location/domain"
)

const recentLimit = 5

type Stats struct {
	TotalDossiers  int `json:"totalDossiers"`
	TotalFactures  int `json:"totalFactures"`
	TotalLocations int `json:"totalLocations"`
	TotalClients   int `json:"totalClients"`

	// DossiersParStatut counts case files per workflow stage, every stage
	// present even at zero.
	DossiersParStatut map[dossierdomain.StatutDossier]int `json:"dossiersParStatut"`

	TotalVentes   float64 `json:"totalVentes"`
	TotalEncaisse float64 `json:"totalEncaisse"`
	TotalRestant  float64 `json:"totalRestant"`

	LocationsEnCours     int     `json:"locationsEnCours"`
	TotalMontantLocation float64 `json:"totalMontantLocations"`

	DossiersRecents   []dossierdomain.Dossier   `json:"dossiersRecents"`
	FacturesRecentes  []facturedomain.Facture   `json:"facturesRecentes"`
	LocationsRecentes []locationdomain.Location `json:"locationsRecentes"`
}

type Service interface {
	Stats(ctx context.Context) Stats
}

type service struct {
	dossiers  dossierdomain.Service
	factures  facturedomain.Service
	locations locationdomain.Service
	clients   clientdomain.Service
}

func Provide(
	dossiers dossierdomain.Service,
	factures facturedomain.Service,
	locations locationdomain.Service,
	clients clientdomain.Service,
) Service {
	return &service{dossiers: dossiers, factures: factures, locations: locations, clients: clients}
}

func (s *service) Stats(ctx context.Context) Stats {
	dossiers := s.dossiers.List(ctx)
	factures := s.factures.List(ctx)
	locations := s.locations.List(ctx)
	clients := s.clients.List(ctx)

	stats := Stats{
		TotalDossiers:     len(dossiers),
		TotalFactures:     len(factures),
		TotalLocations:    len(locations),
		TotalClients:      len(clients),
		DossiersParStatut: make(map[dossierdomain.StatutDossier]int, len(dossierdomain.WorkflowOrdre)),
	}
	for _, statut := range dossierdomain.WorkflowOrdre {
		stats.DossiersParStatut[statut] = 0
	}
	for _, d := range dossiers {
		stats.DossiersParStatut[d.Statut]++
	}

	for _, f := range factures {
		stats.TotalVentes += f.PrixTotalTTC
		stats.TotalEncaisse += f.MontantPaye
		stats.TotalRestant += f.MontantRestant
	}

	for _, l := range locations {
		stats.TotalMontantLocation += l.MontantTotal
		if l.Statut == locationdomain.LocationEnCours {
			stats.LocationsEnCours++
		}
	}

	stats.DossiersRecents = recent(dossiers, func(d dossierdomain.Dossier) time.Time { return d.DateCreation })
	stats.FacturesRecentes = recent(factures, func(f facturedomain.Facture) time.Time { return f.DateCreation })
	stats.LocationsRecentes = recent(locations, func(l locationdomain.Location) time.Time { return l.DateCreation })
	return stats
}

// recent returns the newest records, most recently created first.
func recent[T any](items []T, created func(T) time.Time) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return created(sorted[i]).After(created(sorted[j]))
	})
	if len(sorted) > recentLimit {
		sorted = sorted[:recentLimit]
	}
	return sorted
}

var Module = fx.Module("dashboard",
	fx.Provide(Provide),
)
