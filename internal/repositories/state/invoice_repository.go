package state

import (
	"context"
	"errors"

	"github.com/SscSPs/invoicely/internal/apperrors"
	"github.com/SscSPs/invoicely/internal/core/domain"
	portsrepo "github.com/SscSPs/invoicely/internal/core/ports/repositories"
)

// errNoChange aborts a bulk update that touched nothing, so the store is not rewritten.
var errNoChange = errors.New("no invoice changed")

type invoiceRepository struct {
	invoices *collection[domain.Invoice]
}

// newInvoiceRepository loads the invoices blob.
func newInvoiceRepository(ctx context.Context, store portsrepo.StateStore) (portsrepo.InvoiceRepositoryFacade, error) {
	c, _, err := loadCollection(ctx, store, portsrepo.InvoicesKey, domain.Invoice.Clone)
	if err != nil {
		return nil, err
	}
	return &invoiceRepository{invoices: c}, nil
}

var _ portsrepo.InvoiceRepositoryFacade = (*invoiceRepository)(nil)

func (r *invoiceRepository) FindInvoiceByID(_ context.Context, invoiceID string) (*domain.Invoice, error) {
	inv, ok := r.invoices.find(func(i domain.Invoice) bool { return i.ID == invoiceID })
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &inv, nil
}

func (r *invoiceRepository) ListInvoices(_ context.Context) ([]domain.Invoice, error) {
	return r.invoices.snapshot(), nil
}

func (r *invoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice, numberer portsrepo.InvoiceNumberer) (*domain.Invoice, error) {
	err := r.invoices.mutate(ctx, func(items []domain.Invoice) ([]domain.Invoice, error) {
		for _, existing := range items {
			if existing.ID == invoice.ID {
				return nil, apperrors.ErrDuplicate
			}
		}
		if invoice.InvoiceNumber == "" && numberer != nil {
			invoice.InvoiceNumber = numberer(items)
		}
		return append(items, invoice.Clone()), nil
	})
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepository) UpdateInvoice(ctx context.Context, invoiceID string, fn func(*domain.Invoice) error) (*domain.Invoice, error) {
	var updated domain.Invoice
	err := r.invoices.mutate(ctx, func(items []domain.Invoice) ([]domain.Invoice, error) {
		for i := range items {
			if items[i].ID != invoiceID {
				continue
			}
			if err := fn(&items[i]); err != nil {
				return nil, err
			}
			updated = items[i].Clone()
			return items, nil
		}
		return nil, apperrors.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *invoiceRepository) UpdateInvoicesWhere(ctx context.Context, fn func(*domain.Invoice) (bool, error)) ([]domain.Invoice, error) {
	var changed []domain.Invoice
	err := r.invoices.mutate(ctx, func(items []domain.Invoice) ([]domain.Invoice, error) {
		for i := range items {
			ok, err := fn(&items[i])
			if err != nil {
				return nil, err
			}
			if ok {
				changed = append(changed, items[i].Clone())
			}
		}
		if len(changed) == 0 {
			return nil, errNoChange
		}
		return items, nil
	})
	if errors.Is(err, errNoChange) {
		return []domain.Invoice{}, nil
	}
	if err != nil {
		return nil, err
	}
	return changed, nil
}

func (r *invoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) (bool, error) {
	err := r.invoices.mutate(ctx, func(items []domain.Invoice) ([]domain.Invoice, error) {
		for i := range items {
			if items[i].ID == invoiceID {
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
