package state

import (
	"context"
	"errors"

	"github.com/SscSPs/invoicely/internal/apperrors"
	"github.com/SscSPs/invoicely/internal/core/domain"
	portsrepo "github.com/SscSPs/invoicely/internal/core/ports/repositories"
)

type clientRepository struct {
	clients *collection[domain.Client]
}

// newClientRepository loads the clients blob.
func newClientRepository(ctx context.Context, store portsrepo.StateStore) (portsrepo.ClientRepositoryFacade, error) {
	c, _, err := loadCollection[domain.Client](ctx, store, portsrepo.ClientsKey, nil)
	if err != nil {
		return nil, err
	}
	return &clientRepository{clients: c}, nil
}

var _ portsrepo.ClientRepositoryFacade = (*clientRepository)(nil)

func (r *clientRepository) FindClientByID(_ context.Context, clientID string) (*domain.Client, error) {
	client, ok := r.clients.find(func(c domain.Client) bool { return c.ID == clientID })
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &client, nil
}

func (r *clientRepository) ListClients(_ context.Context) ([]domain.Client, error) {
	return r.clients.snapshot(), nil
}

func (r *clientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	return r.clients.mutate(ctx, func(items []domain.Client) ([]domain.Client, error) {
		for _, existing := range items {
			if existing.ID == client.ID {
				return nil, apperrors.ErrDuplicate
			}
		}
		return append(items, client), nil
	})
}

func (r *clientRepository) UpdateClient(ctx context.Context, clientID string, fn func(*domain.Client) error) (*domain.Client, error) {
	var updated domain.Client
	err := r.clients.mutate(ctx, func(items []domain.Client) ([]domain.Client, error) {
		for i := range items {
			if items[i].ID != clientID {
				continue
			}
			if err := fn(&items[i]); err != nil {
				return nil, err
			}
			updated = items[i]
			return items, nil
		}
		return nil, apperrors.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *clientRepository) DeleteClient(ctx context.Context, clientID string) (bool, error) {
	err := r.clients.mutate(ctx, func(items []domain.Client) ([]domain.Client, error) {
		for i := range items {
			if items[i].ID == clientID {
				return append(items[:i], items[i+1:]...), nil
			}
		}
		return nil, apperrors.ErrNotFound
	})
	if errors.Is(err, apperrors.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
