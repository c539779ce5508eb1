// Package seed bootstraps the reference data a fresh installation needs:
// the default vehicle-type directory and the company letterhead record.
// Seeding is idempotent; existing data is never overwritten.
package seed

import (
	"context"
	"encoding/json"

	"go.uber.org/fx"
	"go.uber.org/zap"

	entreprisedomain "github.com/hscdigital/douanapp/internal/entreprise/domain"
	"github.com/hscdigital/douanapp/internal/storage"
	tvdomain "github.com/hscdigital/douanapp/internal/typevehicule/domain"
)

// Ensure persists the defaults for every absent key.
func Ensure(ctx context.Context, store storage.Store, types tvdomain.Repository, log *zap.Logger) error {
	if _, ok, err := store.Get(ctx, storage.KeyTypesVehicule); err == nil && !ok {
		// The repository serves the built-in set while the key is absent;
		// writing any one of them persists the whole set.
		list := types.List(ctx)
		if len(list) > 0 {
			t := list[0]
			if err := types.Save(ctx, &t); err != nil {
				return err
			}
			log.Info("types de véhicule par défaut initialisés", zap.Int("nombre", len(list)))
		}
	}

	if _, ok, err := store.Get(ctx, storage.KeyEntreprise); err == nil && !ok {
		raw, err := json.Marshal(entreprisedomain.Default())
		if err != nil {
			return err
		}
		if err := store.Set(ctx, storage.KeyEntreprise, raw); err != nil {
			return err
		}
		log.Info("coordonnées entreprise par défaut initialisées")
	}

	return nil
}

func register(lc fx.Lifecycle, store storage.Store, types tvdomain.Repository, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return Ensure(ctx, store, types, log)
		},
	})
}

var Module = fx.Module("seed",
	fx.Invoke(register),
)
