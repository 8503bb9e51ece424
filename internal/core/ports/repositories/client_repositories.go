package repositories

import (
	"context"

	"github.com/SscSPs/invoicely/internal/core/domain"
)

// ClientReader defines read operations for client data
type ClientReader interface {
	// FindClientByID returns apperrors.ErrNotFound when no client has the id.
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// ListClients returns clients in insertion order.
	ListClients(ctx context.Context) ([]domain.Client, error)
}

// ClientWriter defines write operations for client data
type ClientWriter interface {
	// SaveClient appends a new client.
	SaveClient(ctx context.Context, client domain.Client) error

	// UpdateClient applies fn to the stored client and persists the result.
	// It returns apperrors.ErrNotFound, without writing, when the id is unknown.
	UpdateClient(ctx context.Context, clientID string, fn func(*domain.Client) error) (*domain.Client, error)

	// DeleteClient removes the client and reports whether it existed.
	DeleteClient(ctx context.Context, clientID string) (bool, error)
}

// ClientRepositoryFacade combines all client-related repository interfaces
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}
