package repositories

import (
	"context"

	"github.com/SscSPs/invoicely/internal/core/domain"
)

// InvoiceNumberer picks the number for a new invoice from the invoices that exist at
// the moment of insertion.
type InvoiceNumberer func(existing []domain.Invoice) string

// InvoiceReader defines read operations for invoice data
type InvoiceReader interface {
	// FindInvoiceByID returns apperrors.ErrNotFound when no invoice has the id.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices returns invoices in insertion order.
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)
}

// InvoiceWriter defines write operations for invoice data
type InvoiceWriter interface {
	// SaveInvoice appends a new invoice. When the invoice has no number, numberer is
	// called inside the same critical section as the insert, so two concurrent saves
	// cannot observe the same count.
	SaveInvoice(ctx context.Context, invoice domain.Invoice, numberer InvoiceNumberer) (*domain.Invoice, error)

	// UpdateInvoice applies fn to the stored invoice and persists the result.
	// It returns apperrors.ErrNotFound, without writing, when the id is unknown.
	// An error from fn aborts the update.
	UpdateInvoice(ctx context.Context, invoiceID string, fn func(*domain.Invoice) error) (*domain.Invoice, error)

	// UpdateInvoicesWhere applies fn to every invoice and persists once. fn reports
	// whether it changed the invoice; the changed invoices are returned. Nothing is
	// written when no invoice changed.
	UpdateInvoicesWhere(ctx context.Context, fn func(*domain.Invoice) (bool, error)) ([]domain.Invoice, error)

	// DeleteInvoice removes the invoice and reports whether it existed.
	DeleteInvoice(ctx context.Context, invoiceID string) (bool, error)
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
