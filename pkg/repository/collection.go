package repository

import (
	"context"
	"encoding/json"

	"github.com/hscdigital/douanapp/internal/storage"
	"go.uber.org/zap"
)

// Collection reads and writes one entity collection serialized as a single
// JSON array under a storage key. Granularity is deliberately whole-document:
// every Load deserializes the full collection, every Replace rewrites it.
type Collection[T any] struct {
	Store storage.Store
	Key   string
	Log   *zap.Logger
}

// Load returns the stored collection. Missing or corrupt data degrades to an
// empty collection so callers can render an empty state instead of failing.
func (c *Collection[T]) Load(ctx context.Context) []T {
	raw, ok, err := c.Store.Get(ctx, c.Key)
	if err != nil {
		c.Log.Warn("collection read failed", zap.String("key", c.Key), zap.Error(err))
		return nil
	}
	if !ok {
		return nil
	}
	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		c.Log.Warn("collection corrupted, serving empty", zap.String("key", c.Key), zap.Error(err))
		return nil
	}
	return records
}

// Replace serializes records and persists them as the new collection value.
func (c *Collection[T]) Replace(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return c.Store.Set(ctx, c.Key, raw)
}
