package storage

import (
	"context"

	"github.com/hscdigital/douanapp/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func provideStore(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) (Store, error) {
	store, db, err := Open(cfg.DataPath)
	if err != nil {
		return nil, err
	}
	log.Info("document store opened", zap.String("path", cfg.DataPath))

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return closeDB(db)
		},
	})
	return store, nil
}

func closeDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

var Module = fx.Module("storage",
	fx.Provide(provideStore),
)
