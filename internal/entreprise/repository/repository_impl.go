package repository

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/hscdigital/douanapp/internal/entreprise/domain"
	"github.com/hscdigital/douanapp/internal/storage"
)

type repo struct {
	store storage.Store
	log   *zap.Logger
}

func Provide(store storage.Store, log *zap.Logger) domain.Repository {
	return &repo{store: store, log: log}
}

func (r *repo) Get(ctx context.Context) domain.EntrepriseInfo {
	raw, ok, err := r.store.Get(ctx, storage.KeyEntreprise)
	if err != nil {
		r.log.Warn("entreprise: lecture impossible, valeurs par défaut servies", zap.Error(err))
		return domain.Default()
	}
	if !ok {
		return domain.Default()
	}
	var info domain.EntrepriseInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		r.log.Warn("entreprise: enregistrement corrompu, valeurs par défaut servies", zap.Error(err))
		return domain.Default()
	}
	return info
}

func (r *repo) Save(ctx context.Context, info domain.EntrepriseInfo) error {
	raw, err := json.Marshal(info)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, storage.KeyEntreprise, raw)
}
