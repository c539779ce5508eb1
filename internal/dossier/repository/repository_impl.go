package repository

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/hscdigital/douanapp/internal/clock"
	"github.com/hscdigital/douanapp/internal/dossier/domain"
	facturedomain "github.com/hscdigital/douanapp/internal/facture/domain"
	"github.com/hscdigital/douanapp/internal/storage"
	"github.com/hscdigital/douanapp/pkg/repository"
)

type repo struct {
	coll     repository.Collection[domain.Dossier]
	factures facturedomain.Repository
	clk      clock.Clock
}

func Provide(store storage.Store, factures facturedomain.Repository, log *zap.Logger, clk clock.Clock) domain.Repository {
	return &repo{
		coll: repository.Collection[domain.Dossier]{
			Store: store,
			Key:   storage.KeyDossiers,
			Log:   log,
		},
		factures: factures,
		clk:      clk,
	}
}

func (r *repo) List(ctx context.Context) []domain.Dossier {
	return r.coll.Load(ctx)
}

func (r *repo) GetByID(ctx context.Context, id string) (*domain.Dossier, error) {
	for _, d := range r.coll.Load(ctx) {
		if d.ID == id {
			return &d, nil
		}
	}
	return nil, domain.ErrNotFound
}

func sameNumeroCH(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func (r *repo) GetByNumeroCH(ctx context.Context, numeroCH string) (*domain.Dossier, error) {
	for _, d := range r.coll.Load(ctx) {
		if sameNumeroCH(d.NumeroCH, numeroCH) {
			return &d, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *repo) Save(ctx context.Context, dossier *domain.Dossier) error {
	now := r.clk.Now()
	dossier.DateModification = now

	dossiers := r.coll.Load(ctx)
	for _, existing := range dossiers {
		if existing.ID != dossier.ID && sameNumeroCH(existing.NumeroCH, dossier.NumeroCH) {
			return domain.ErrNumeroCHExiste
		}
	}

	for i, existing := range dossiers {
		if existing.ID == dossier.ID {
			if dossier.DateCreation.IsZero() {
				dossier.DateCreation = existing.DateCreation
			}
			dossiers[i] = *dossier
			return r.coll.Replace(ctx, dossiers)
		}
	}

	if dossier.DateCreation.IsZero() {
		dossier.DateCreation = now
	}
	dossiers = append(dossiers, *dossier)
	return r.coll.Replace(ctx, dossiers)
}

// Delete refuses to orphan invoices. The check lives here, next to the write,
// so no caller can skip it.
func (r *repo) Delete(ctx context.Context, id string) error {
	if len(r.factures.GetByDossier(ctx, id)) > 0 {
		return domain.ErrDossierLieFactures
	}

	dossiers := r.coll.Load(ctx)
	kept := dossiers[:0]
	found := false
	for _, d := range dossiers {
		if d.ID == id {
			found = true
			continue
		}
		kept = append(kept, d)
	}
	if !found {
		return domain.ErrNotFound
	}
	return r.coll.Replace(ctx, kept)
}

func (r *repo) Import(ctx context.Context, dossiers []domain.Dossier, replace bool) (int, error) {
	now := r.clk.Now()

	var current []domain.Dossier
	if !replace {
		current = r.coll.Load(ctx)
	}

	seen := make(map[string]bool, len(current))
	for _, d := range current {
		seen[normalizeCH(d.NumeroCH)] = true
	}

	stored := 0
	for _, d := range dossiers {
		key := normalizeCH(d.NumeroCH)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		if d.DateCreation.IsZero() {
			d.DateCreation = now
		}
		d.DateModification = now
		current = append(current, d)
		stored++
	}

	if err := r.coll.Replace(ctx, current); err != nil {
		return 0, err
	}
	return stored, nil
}

func normalizeCH(numeroCH string) string {
	return strings.ToLower(strings.TrimSpace(numeroCH))
}
