package state

import (
	"context"

	"github.com/SscSPs/invoicely/internal/core/domain"
	portsrepo "github.com/SscSPs/invoicely/internal/core/ports/repositories"
)

type providerOptions struct {
	paymentMethodSeed func() []domain.PaymentMethod
}

// ProviderOption configures NewRepositoryProvider.
type ProviderOption func(*providerOptions)

// WithPaymentMethodSeed stores the methods returned by seed when the registry has never
// been persisted.
func WithPaymentMethodSeed(seed func() []domain.PaymentMethod) ProviderOption {
	return func(o *providerOptions) {
		o.paymentMethodSeed = seed
	}
}

// NewRepositoryProvider loads every collection from store and returns the repositories
// backed by it.
func NewRepositoryProvider(ctx context.Context, store portsrepo.StateStore, opts ...ProviderOption) (*portsrepo.RepositoryProvider, error) {
	var o providerOptions
	for _, opt := range opts {
		opt(&o)
	}

	clientRepo, err := newClientRepository(ctx, store)
	if err != nil {
		return nil, err
	}
	invoiceRepo, err := newInvoiceRepository(ctx, store)
	if err != nil {
		return nil, err
	}
	paymentMethodRepo, err := newPaymentMethodRepository(ctx, store, o.paymentMethodSeed)
	if err != nil {
		return nil, err
	}
	profileRepo, err := newProfileRepository(ctx, store)
	if err != nil {
		return nil, err
	}

	return &portsrepo.RepositoryProvider{
		ClientRepo:        clientRepo,
		InvoiceRepo:       invoiceRepo,
		PaymentMethodRepo: paymentMethodRepo,
		ProfileRepo:       profileRepo,
	}, nil
}
