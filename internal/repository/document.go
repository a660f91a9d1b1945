package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/TWRT/direction-dashboard/internal/logging"
)

// Document is a single JSON object persisted under one key.
type Document[T any] struct {
	store    *KVStore
	key      string
	defaults func() T
	logger   *logging.Logger
}

func NewDocument[T any](store *KVStore, key string, defaults func() T, logger *logging.Logger) *Document[T] {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Document[T]{store: store, key: key, defaults: defaults, logger: logger.With("document", key)}
}

// Load returns the stored value, or the defaults when missing or malformed.
func (d *Document[T]) Load(ctx context.Context) (T, error) {
	value := d.defaults()
	raw, ok, err := d.store.Get(ctx, d.key)
	if err != nil {
		return value, err
	}
	if !ok {
		return value, nil
	}
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		d.logger.Warn("malformed document, using defaults", "error", err)
		return d.defaults(), nil
	}
	return value, nil
}

func (d *Document[T]) Save(ctx context.Context, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", d.key, err)
	}
	return d.store.Put(ctx, d.key, string(data))
}
