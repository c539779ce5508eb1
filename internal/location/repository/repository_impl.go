package repository

import (
	"context"

	"go.uber.org/zap"

	"github.com/hscdigital/douanapp/internal/clock"
	"github.com/hscdigital/douanapp/internal/location/domain"
	"github.com/hscdigital/douanapp/internal/storage"
	"github.com/hscdigital/douanapp/pkg/repository"
)

type repo struct {
	coll repository.Collection[domain.Location]
	clk  clock.Clock
}

func Provide(store storage.Store, log *zap.Logger, clk clock.Clock) domain.Repository {
	return &repo{
		coll: repository.Collection[domain.Location]{
			Store: store,
			Key:   storage.KeyLocations,
			Log:   log,
		},
		clk: clk,
	}
}

func (r *repo) List(ctx context.Context) []domain.Location {
	return r.coll.Load(ctx)
}

func (r *repo) GetByID(ctx context.Context, id string) (*domain.Location, error) {
	for _, l := range r.coll.Load(ctx) {
		if l.ID == id {
			return &l, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *repo) Save(ctx context.Context, location *domain.Location) error {
	now := r.clk.Now()
	location.DateModification = now

	locations := r.coll.Load(ctx)
	for i, existing := range locations {
		if existing.ID == location.ID {
			if location.DateCreation.IsZero() {
				location.DateCreation = existing.DateCreation
			}
			locations[i] = *location
			return r.coll.Replace(ctx, locations)
		}
	}

	if location.DateCreation.IsZero() {
		location.DateCreation = now
	}
	locations = append(locations, *location)
	return r.coll.Replace(ctx, locations)
}

func (r *repo) Delete(ctx context.Context, id string) error {
	locations := r.coll.Load(ctx)
	kept := locations[:0]
	found := false
	for _, l := range locations {
		if l.ID == id {
			found = true
			continue
		}
		kept = append(kept, l)
	}
	if !found {
		return domain.ErrNotFound
	}
	return r.coll.Replace(ctx, kept)
}
