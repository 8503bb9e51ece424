package state

import (
	"context"
	"errors"
	"fmt"
	"sync"

	portsrepo "github.com/SscSPs/invoicely/internal/core/ports/repositories"
)

// collection is an ordered list of records owned in memory and written through to a
// StateStore blob on every mutation. The in-memory list only changes after the store
// accepted the new version.
type collection[T any] struct {
	mu    sync.RWMutex
	store portsrepo.StateStore
	key   portsrepo.StateKey
	items []T
	clone func(T) T
}

// loadCollection reads the blob for key. found is false when the key was never written.
func loadCollection[T any](ctx context.Context, store portsrepo.StateStore, key portsrepo.StateKey, clone func(T) T) (*collection[T], bool, error) {
	var items []T
	found, err := store.Load(ctx, key, &items)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load %s: %w", key, err)
	}
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &collection[T]{store: store, key: key, items: items, clone: clone}, found, nil
}

func (c *collection[T]) copyLocked() []T {
	out := make([]T, len(c.items))
	for i, item := range c.items {
		out[i] = c.clone(item)
	}
	return out
}

// snapshot returns a deep copy of the current items.
func (c *collection[T]) snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.copyLocked()
}

// find returns a copy of the first item matching pred.
func (c *collection[T]) find(pred func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if pred(item) {
			return c.clone(item), true
		}
	}
	var zero T
	return zero, false
}

// mutate hands fn a private copy of the stored items and persists what it returns.
// The items are read back from the store first, so writes made by another process
// sharing the store are kept.
func (c *collection[T]) mutate(ctx context.Context, fn func([]T) ([]T, error)) error {
	return c.update(ctx, func(items []T, _ bool) ([]T, error) { return fn(items) })
}

// update is mutate with the store's found flag. When fn fails the in-memory items are
// still refreshed from what was read.
func (c *collection[T]) update(ctx context.Context, fn func(items []T, found bool) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var (
		current []T
		next    []T
		loaded  bool
		fnErr   error
	)
	err := c.store.Update(ctx, c.key, &current, func(found bool) (any, error) {
		loaded = true
		if !found {
			current = nil
		}
		working := make([]T, len(current))
		for i, item := range current {
			working[i] = c.clone(item)
		}
		next, fnErr = fn(working, found)
		if fnErr != nil {
			return nil, fnErr
		}
		if next == nil {
			next = []T{}
		}
		return next, nil
	})
	if fnErr != nil {
		if loaded {
			c.items = current
		}
		return fnErr
	}
	if err != nil {
		return fmt.Errorf("failed to persist %s: %w", c.key, err)
	}
	c.items = next
	return nil
}

// errAlreadyStored stops seed when the key exists.
var errAlreadyStored = errors.New("already stored")

// seed stores items only when the key was never written.
func (c *collection[T]) seed(ctx context.Context, items []T) error {
	err := c.update(ctx, func(_ []T, found bool) ([]T, error) {
		if found {
			return nil, errAlreadyStored
		}
		return items, nil
	})
	if errors.Is(err, errAlreadyStored) {
		return nil
	}
	return err
}
