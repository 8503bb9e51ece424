// Package memory is a process-local StateStore. Values are kept JSON-encoded so a
// loaded value never aliases a saved one, matching the behaviour of durable stores.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	portsrepo "github.com/SscSPs/invoicely/internal/core/ports/repositories"
)

type Store struct {
	mu    sync.RWMutex
	blobs map[portsrepo.StateKey][]byte
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{blobs: make(map[portsrepo.StateKey][]byte)}
}

var _ portsrepo.StateStore = (*Store)(nil)

func (s *Store) Load(_ context.Context, key portsrepo.StateKey, dest any) (bool, error) {
	s.mu.RLock()
	raw, ok := s.blobs[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return true, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

func (s *Store) Save(_ context.Context, key portsrepo.StateKey, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	s.mu.Lock()
	s.blobs[key] = raw
	s.mu.Unlock()
	return nil
}

func (s *Store) Update(_ context.Context, key portsrepo.StateKey, dest any, fn func(found bool) (any, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, found := s.blobs[key]
	if found {
		if err := json.Unmarshal(raw, dest); err != nil {
			return fmt.Errorf("failed to decode %s: %w", key, err)
		}
	}
	value, err := fn(found)
	if err != nil {
		return err
	}
	next, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	s.blobs[key] = next
	return nil
}

func (s *Store) Delete(_ context.Context, key portsrepo.StateKey) error {
	s.mu.Lock()
	delete(s.blobs, key)
	s.mu.Unlock()
	return nil
}

// Raw returns the encoded blob under key, for inspection in tests and tooling.
func (s *Store) Raw(key portsrepo.StateKey) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	raw, ok := s.blobs[key]
	return raw, ok
}
