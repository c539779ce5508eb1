package repository

import (
	"context"

	"github.com/hscdigital/douanapp/internal/client/domain"
	"github.com/hscdigital/douanapp/internal/clock"
	"github.com/hscdigital/douanapp/internal/storage"
	"github.com/hscdigital/douanapp/pkg/repository"
	"go.uber.org/zap"
)

type repo struct {
	coll repository.Collection[domain.Client]
	clk  clock.Clock
}

func Provide(store storage.Store, log *zap.Logger, clk clock.Clock) domain.Repository {
	return &repo{
		coll: repository.Collection[domain.Client]{
			Store: store,
			Key:   storage.KeyClients,
			Log:   log.Named("client.repository"),
		},
		clk: clk,
	}
}

func (r *repo) List(ctx context.Context) []domain.Client {
	return r.coll.Load(ctx)
}

func (r *repo) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	for _, c := range r.coll.Load(ctx) {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Save upserts: an existing id is replaced in place keeping its original
// creation timestamp, anything else is appended. Every save refreshes the
// modification timestamp.
func (r *repo) Save(ctx context.Context, client *domain.Client) error {
	now := r.clk.Now()
	list := r.coll.Load(ctx)
	client.DateModification = now

	for i, existing := range list {
		if existing.ID == client.ID {
			client.DateCreation = existing.DateCreation
			list[i] = *client
			return r.coll.Replace(ctx, list)
		}
	}

	if client.DateCreation.IsZero() {
		client.DateCreation = now
	}
	list = append(list, *client)
	return r.coll.Replace(ctx, list)
}

func (r *repo) Delete(ctx context.Context, id string) error {
	list := r.coll.Load(ctx)
	kept := list[:0]
	for _, c := range list {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	return r.coll.Replace(ctx, kept)
}
