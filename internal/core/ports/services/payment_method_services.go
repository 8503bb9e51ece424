package services

import (
	"context"

	"github.com/SscSPs/invoicely/internal/core/domain"
	"github.com/SscSPs/invoicely/internal/dto"
)

// PaymentMethodReaderSvc defines read operations for payment methods
type PaymentMethodReaderSvc interface {
	// GetPaymentMethod returns nil, without an error, when the method does not exist.
	GetPaymentMethod(ctx context.Context, methodID string) (*domain.PaymentMethod, error)
	ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)

	// GetDefaultPaymentMethod returns nil when the registry is empty.
	GetDefaultPaymentMethod(ctx context.Context) (*domain.PaymentMethod, error)
}

// PaymentMethodWriterSvc defines write operations for payment methods. Every write
// leaves exactly one default in a non-empty registry.
type PaymentMethodWriterSvc interface {
	CreatePaymentMethod(ctx context.Context, req dto.CreatePaymentMethodRequest) (*domain.PaymentMethod, error)

	// UpdatePaymentMethod returns nil, nil for an unknown id.
	UpdatePaymentMethod(ctx context.Context, methodID string, req dto.UpdatePaymentMethodRequest) (*domain.PaymentMethod, error)
	DeletePaymentMethod(ctx context.Context, methodID string) error
}

// PaymentMethodSvcFacade combines all payment method service interfaces
type PaymentMethodSvcFacade interface {
	PaymentMethodReaderSvc
	PaymentMethodWriterSvc
}
