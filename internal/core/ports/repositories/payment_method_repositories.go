package repositories

import (
	"context"

	"github.com/SscSPs/invoicely/internal/core/domain"
)

// PaymentMethodReader defines read operations for payment method data
type PaymentMethodReader interface {
	// FindPaymentMethodByID returns apperrors.ErrNotFound when no method has the id.
	FindPaymentMethodByID(ctx context.Context, methodID string) (*domain.PaymentMethod, error)

	// ListPaymentMethods returns methods in registry order.
	ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)
}

// PaymentMethodWriter defines write operations for payment method data.
// The single-default invariant spans the whole registry, so writes are expressed as a
// transformation of the full ordered list, persisted once.
type PaymentMethodWriter interface {
	// MutatePaymentMethods passes a private copy of the registry to fn and stores what fn
	// returns. If fn fails nothing is written.
	MutatePaymentMethods(ctx context.Context, fn func([]domain.PaymentMethod) ([]domain.PaymentMethod, error)) error
}

// PaymentMethodRepositoryFacade combines all payment method repository interfaces
type PaymentMethodRepositoryFacade interface {
	PaymentMethodReader
	PaymentMethodWriter
}
