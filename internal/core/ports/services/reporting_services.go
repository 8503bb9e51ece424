package services

import (
	"context"

	"github.com/SscSPs/invoicely/internal/core/domain"
)

// ReportingSvc derives summaries from the invoice collection.
type ReportingSvc interface {
	GetInvoiceStats(ctx context.Context) (*domain.InvoiceStats, error)
}
