package repository

import (
	"context"

	"go.uber.org/zap"

	"github.com/hscdigital/douanapp/internal/clock"
	"github.com/hscdigital/douanapp/internal/facture/domain"
	"github.com/hscdigital/douanapp/internal/storage"
	"github.com/hscdigital/douanapp/pkg/repository"
)

type repo struct {
	coll repository.Collection[domain.Facture]
	clk  clock.Clock
}

func Provide(store storage.Store, log *zap.Logger, clk clock.Clock) domain.Repository {
	return &repo{
		coll: repository.Collection[domain.Facture]{
			Store: store,
			Key:   storage.KeyFactures,
			Log:   log,
		},
		clk: clk,
	}
}

func (r *repo) List(ctx context.Context) []domain.Facture {
	return r.coll.Load(ctx)
}

func (r *repo) GetByID(ctx context.Context, id string) (*domain.Facture, error) {
	for _, f := range r.coll.Load(ctx) {
		if f.ID == id {
			return &f, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *repo) GetByDossier(ctx context.Context, dossierID string) []domain.Facture {
	var out []domain.Facture
	for _, f := range r.coll.Load(ctx) {
		if f.DossierID == dossierID {
			out = append(out, f)
		}
	}
	return out
}

func (r *repo) Save(ctx context.Context, facture *domain.Facture) error {
	now := r.clk.Now()
	facture.DateModification = now

	factures := r.coll.Load(ctx)
	for i, existing := range factures {
		if existing.ID == facture.ID {
			if facture.DateCreation.IsZero() {
				facture.DateCreation = existing.DateCreation
			}
			factures[i] = *facture
			return r.coll.Replace(ctx, factures)
		}
	}

	if facture.DateCreation.IsZero() {
		facture.DateCreation = now
	}
	factures = append(factures, *facture)
	return r.coll.Replace(ctx, factures)
}

func (r *repo) Delete(ctx context.Context, id string) error {
	factures := r.coll.Load(ctx)
	kept := factures[:0]
	found := false
	for _, f := range factures {
		if f.ID == id {
			found = true
			continue
		}
		kept = append(kept, f)
	}
	if !found {
		return domain.ErrNotFound
	}
	return r.coll.Replace(ctx, kept)
}
