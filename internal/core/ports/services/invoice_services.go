package services

import (
	"context"
	"time"

	"github.com/SscSPs/invoicely/internal/core/domain"
	"github.com/SscSPs/invoicely/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoices
type InvoiceReaderSvc interface {
	// GetInvoice returns nil, without an error, when the invoice does not exist.
	GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices filters, sorts and pages the collection.
	ListInvoices(ctx context.Context, params dto.ListInvoicesParams) (*dto.ListInvoicesResponse, error)

	// RecentInvoices returns up to limit invoices, most recently created first.
	RecentInvoices(ctx context.Context, limit int) ([]domain.Invoice, error)

	// GenerateInvoiceNumber previews the number the next invoice would receive this year.
	GenerateInvoiceNumber(ctx context.Context) (string, error)
}

// InvoiceWriterSvc defines write operations for invoices
type InvoiceWriterSvc interface {
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error)

	// UpdateInvoice merges req into the invoice and recomputes its total.
	// It returns nil, nil for an unknown id and leaves the collection unchanged.
	UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest) (*domain.Invoice, error)

	// DeleteInvoice removes the invoice. Unknown ids are ignored.
	DeleteInvoice(ctx context.Context, invoiceID string) error
}

// InvoiceLifecycleSvc moves invoices through draft, sent, paid and overdue.
type InvoiceLifecycleSvc interface {
	// MarkAsSent sets the status to sent and stamps sentAt with now.
	MarkAsSent(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// MarkAsPaid sets the status to paid. paidAt is paidDate when given, else now.
	MarkAsPaid(ctx context.Context, invoiceID string, paidDate *time.Time) (*domain.Invoice, error)

	// SweepOverdue marks every sent invoice whose due date is before asOf as overdue
	// and returns the invoices it changed.
	SweepOverdue(ctx context.Context, asOf time.Time) ([]domain.Invoice, error)
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
	InvoiceLifecycleSvc
}
