package services

import (
	"context"

	"github.com/SscSPs/invoicely/internal/core/domain"
	"github.com/SscSPs/invoicely/internal/dto"
)

// ClientReaderSvc defines read operations for clients
type ClientReaderSvc interface {
	// GetClient returns nil, without an error, when the client does not exist.
	GetClient(ctx context.Context, clientID string) (*domain.Client, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
}

// ClientWriterSvc defines write operations for clients
type ClientWriterSvc interface {
	CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error)

	// UpdateClient merges req into the client. It returns nil, nil for an unknown id.
	UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest) (*domain.Client, error)

	// DeleteClient removes the client; invoices keep their snapshot. Unknown ids are ignored.
	DeleteClient(ctx context.Context, clientID string) error
}

// ClientSvcFacade combines all client-related service interfaces
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientWriterSvc
}
