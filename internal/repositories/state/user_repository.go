package state

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/SscSPs/invoicely/internal/apperrors"
	"github.com/SscSPs/invoicely/internal/core/domain"
	portsrepo "github.com/SscSPs/invoicely/internal/core/ports/repositories"
)

// profileRepository holds the single local profile under the "user" key.
type profileRepository struct {
	mu      sync.RWMutex
	store   portsrepo.StateStore
	profile *domain.UserProfile
}

func newProfileRepository(ctx context.Context, store portsrepo.StateStore) (portsrepo.ProfileRepositoryFacade, error) {
	var p domain.UserProfile
	found, err := store.Load(ctx, portsrepo.UserKey, &p)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", portsrepo.UserKey, err)
	}
	r := &profileRepository{store: store}
	if found {
		r.profile = &p
	}
	return r, nil
}

var _ portsrepo.ProfileRepositoryFacade = (*profileRepository)(nil)

func (r *profileRepository) FindProfile(_ context.Context) (*domain.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.profile == nil {
		return nil, apperrors.ErrNotFound
	}
	p := *r.profile
	return &p, nil
}

func (r *profileRepository) SaveProfile(ctx context.Context, profile domain.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.store.Save(ctx, portsrepo.UserKey, profile); err != nil {
		return fmt.Errorf("failed to persist %s: %w", portsrepo.UserKey, err)
	}
	r.profile = &profile
	return nil
}

func (r *profileRepository) UpdateProfile(ctx context.Context, fn func(*domain.UserProfile) error) (*domain.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var (
		current domain.UserProfile
		fnErr   error
	)
	err := r.store.Update(ctx, portsrepo.UserKey, &current, func(found bool) (any, error) {
		if !found {
			fnErr = apperrors.ErrNotFound
			return nil, fnErr
		}
		stored := current
		r.profile = &stored
		if fnErr = fn(&current); fnErr != nil {
			return nil, fnErr
		}
		return current, nil
	})
	if errors.Is(fnErr, apperrors.ErrNotFound) {
		r.profile = nil
	}
	if fnErr != nil {
		return nil, fnErr
	}
	if err != nil {
		return nil, fmt.Errorf("failed to persist %s: %w", portsrepo.UserKey, err)
	}
	r.profile = &current
	p := current
	return &p, nil
}

func (r *profileRepository) DeleteProfile(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.store.Delete(ctx, portsrepo.UserKey); err != nil {
		return fmt.Errorf("failed to delete %s: %w", portsrepo.UserKey, err)
	}
	r.profile = nil
	return nil
}
