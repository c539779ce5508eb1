package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hscdigital/douanapp/internal/clock"
	"github.com/hscdigital/douanapp/internal/storage"
	"github.com/hscdigital/douanapp/internal/typevehicule/domain"
	"github.com/hscdigital/douanapp/pkg/repository"
	"go.uber.org/zap"
)

type repo struct {
	store storage.Store
	coll  repository.Collection[domain.TypeVehicule]
	log   *zap.Logger
	clk   clock.Clock
}

func Provide(store storage.Store, log *zap.Logger, clk clock.Clock) domain.Repository {
	log = log.Named("typevehicule.repository")
	return &repo{
		store: store,
		coll: repository.Collection[domain.TypeVehicule]{
			Store: store,
			Key:   storage.KeyTypesVehicule,
			Log:   log,
		},
		log: log,
		clk: clk,
	}
}

// List reads the stored types, upgrading the legacy plain-string layout to
// typed records on the fly. An empty or corrupt store yields the default set.
func (r *repo) List(ctx context.Context) []domain.TypeVehicule {
	raw, ok, err := r.store.Get(ctx, storage.KeyTypesVehicule)
	if err != nil {
		r.log.Warn("types read failed, serving defaults", zap.Error(err))
		return defaults()
	}
	if ok {
		if migrated := migrate(raw); len(migrated) > 0 {
			return migrated
		}
	}
	return defaults()
}

func migrate(raw []byte) []domain.TypeVehicule {
	var labels []string
	if err := json.Unmarshal(raw, &labels); err == nil {
		types := make([]domain.TypeVehicule, 0, len(labels))
		for i, label := range labels {
			types = append(types, domain.TypeVehicule{
				ID:    fmt.Sprintf("tv_%d_%s", i, label),
				Label: label,
			})
		}
		return types
	}

	var types []domain.TypeVehicule
	if err := json.Unmarshal(raw, &types); err == nil {
		return types
	}
	return nil
}

func defaults() []domain.TypeVehicule {
	types := make([]domain.TypeVehicule, 0, len(domain.DefaultLabels))
	for i, label := range domain.DefaultLabels {
		types = append(types, domain.TypeVehicule{
			ID:    fmt.Sprintf("tv_default_%d", i),
			Label: label,
		})
	}
	return types
}

func (r *repo) GetByID(ctx context.Context, id string) (*domain.TypeVehicule, error) {
	for _, t := range r.List(ctx) {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *repo) Save(ctx context.Context, t *domain.TypeVehicule) error {
	now := r.clk.Now()
	list := r.List(ctx)
	t.DateModification = now

	for i, existing := range list {
		if existing.ID == t.ID {
			t.DateCreation = existing.DateCreation
			list[i] = *t
			return r.coll.Replace(ctx, list)
		}
	}

	if t.DateCreation.IsZero() {
		t.DateCreation = now
	}
	list = append(list, *t)
	return r.coll.Replace(ctx, list)
}

func (r *repo) Delete(ctx context.Context, id string) error {
	list := r.List(ctx)
	kept := list[:0]
	for _, t := range list {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	return r.coll.Replace(ctx, kept)
}
