package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/TWRT/direction-dashboard/internal/logging"
	"github.com/TWRT/direction-dashboard/internal/models"
)

var (
	ErrNotFound    = errors.New("record not found")
	ErrInvalidKind = errors.New("invalid kind")
)

// Collection is an ordered list of records persisted as a JSON array under
// a single key. Insertion order is preserved.
type Collection[T models.Keyed] struct {
	store  *KVStore
	key    string
	logger *logging.Logger
}

func NewCollection[T models.Keyed](store *KVStore, key string, logger *logging.Logger) *Collection[T] {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Collection[T]{store: store, key: key, logger: logger.With("collection", key)}
}

func (c *Collection[T]) Key() string {
	return c.key
}

// All returns every record. A missing or malformed value reads as empty.
func (c *Collection[T]) All(ctx context.Context) ([]T, error) {
	raw, ok, err := c.store.Get(ctx, c.key)
	if err != nil {
		return nil, err
	}
	items := []T{}
	if !ok {
		return items, nil
	}
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		c.logger.Warn("malformed collection, reading as empty", "error", err)
		return []T{}, nil
	}
	return items, nil
}

func (c *Collection[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	items, err := c.All(ctx)
	if err != nil {
		return zero, err
	}
	for _, item := range items {
		if item.Key() == id {
			return item, nil
		}
	}
	return zero, fmt.Errorf("%s %s: %w", c.key, id, ErrNotFound)
}

func (c *Collection[T]) Append(ctx context.Context, item T) error {
	return c.mutate(ctx, func(items []T) ([]T, error) {
		return append(items, item), nil
	})
}

func (c *Collection[T]) Prepend(ctx context.Context, item T) error {
	return c.mutate(ctx, func(items []T) ([]T, error) {
		return append([]T{item}, items...), nil
	})
}

// Replace swaps the record whose key matches item's key.
func (c *Collection[T]) Replace(ctx context.Context, item T) error {
	return c.mutate(ctx, func(items []T) ([]T, error) {
		for i := range items {
			if items[i].Key() == item.Key() {
				items[i] = item
				return items, nil
			}
		}
		return nil, fmt.Errorf("%s %s: %w", c.key, item.Key(), ErrNotFound)
	})
}

// Update applies fn to the record with the given id and stores the result.
func (c *Collection[T]) Update(ctx context.Context, id string, fn func(*T)) (T, error) {
	var updated T
	err := c.mutate(ctx, func(items []T) ([]T, error) {
		for i := range items {
			if items[i].Key() == id {
				fn(&items[i])
				updated = items[i]
				return items, nil
			}
		}
		return nil, fmt.Errorf("%s %s: %w", c.key, id, ErrNotFound)
	})
	return updated, err
}

// Delete removes the record with the given id, keeping the order of the rest.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	return c.mutate(ctx, func(items []T) ([]T, error) {
		kept := make([]T, 0, len(items))
		found := false
		for _, item := range items {
			if !found && item.Key() == id {
				found = true
				continue
			}
			kept = append(kept, item)
		}
		if !found {
			return nil, fmt.Errorf("%s %s: %w", c.key, id, ErrNotFound)
		}
		return kept, nil
	})
}

// Save overwrites the whole collection.
func (c *Collection[T]) Save(ctx context.Context, items []T) error {
	m := c.store.lock(c.key)
	m.Lock()
	defer m.Unlock()
	return c.write(ctx, items)
}

// SeedIfAbsent writes items only when the key has never been written.
func (c *Collection[T]) SeedIfAbsent(ctx context.Context, items []T) (bool, error) {
	m := c.store.lock(c.key)
	m.Lock()
	defer m.Unlock()

	_, ok, err := c.store.Get(ctx, c.key)
	if err != nil || ok {
		return false, err
	}
	if err := c.write(ctx, items); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Collection[T]) mutate(ctx context.Context, fn func([]T) ([]T, error)) error {
	m := c.store.lock(c.key)
	m.Lock()
	defer m.Unlock()

	items, err := c.All(ctx)
	if err != nil {
		return err
	}
	next, err := fn(items)
	if err != nil {
		return err
	}
	return c.write(ctx, next)
}

func (c *Collection[T]) write(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	return c.store.Put(ctx, c.key, string(data))
}
