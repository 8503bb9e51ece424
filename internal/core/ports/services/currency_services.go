package services

import (
	"context"

	"github.com/SscSPs/invoicely/internal/core/domain"
)

// CurrencySvc exposes the static currency table.
type CurrencySvc interface {
	// GetCurrencyByCode returns nil, without an error, for unsupported codes.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}
