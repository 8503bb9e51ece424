package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/SscSPs/invoicely/internal/apperrors"
	"github.com/SscSPs/invoicely/internal/core/domain"
	"github.com/SscSPs/invoicely/internal/dto"
	"github.com/SscSPs/invoicely/internal/utils/pagination"
)

const (
	statusFilterAll       = "all"
	sortAscending         = "asc"
	DefaultRecentInvoices = 5
)

// ListInvoices filters by status and by a case-insensitive search over the invoice
// number and client name, then orders by issue date. The continuation token is the
// (sort date, id) of the last invoice on the previous page.
func (s *invoiceService) ListInvoices(ctx context.Context, params dto.ListInvoicesParams) (*dto.ListInvoicesResponse, error) {
	status := strings.ToLower(params.Status)
	if status != "" && status != statusFilterAll && !domain.InvoiceStatus(status).IsValid() {
		return nil, fmt.Errorf("%w: unknown status filter %q", apperrors.ErrValidation, params.Status)
	}

	invoices, err := s.invoiceRepo.ListInvoices(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices")
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	search := strings.ToLower(strings.TrimSpace(params.Search))
	filtered := make([]domain.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if status != "" && status != statusFilterAll && string(inv.Status) != status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(inv.InvoiceNumber), search) &&
			!strings.Contains(strings.ToLower(inv.ClientName), search) {
			continue
		}
		filtered = append(filtered, inv)
	}

	asc := strings.ToLower(params.Sort) == sortAscending
	before := func(a, b domain.Invoice) bool {
		da, db := a.SortDate(), b.SortDate()
		if !da.Equal(db) {
			if asc {
				return da.Before(db)
			}
			return da.After(db)
		}
		if asc {
			return a.ID < b.ID
		}
		return a.ID > b.ID
	}
	sort.SliceStable(filtered, func(i, j int) bool { return before(filtered[i], filtered[j]) })

	if params.NextToken != "" {
		sortDate, id, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		cursor := domain.Invoice{ID: id, IssueDate: sortDate}
		start := sort.Search(len(filtered), func(i int) bool { return before(cursor, filtered[i]) })
		filtered = filtered[start:]
	}

	resp := &dto.ListInvoicesResponse{}
	if params.Limit > 0 && len(filtered) > params.Limit {
		filtered = filtered[:params.Limit]
		last := filtered[len(filtered)-1]
		token := pagination.EncodeToken(last.SortDate(), last.ID)
		resp.NextToken = &token
	}
	resp.Invoices = dto.ToListInvoiceResponse(filtered)
	return resp, nil
}

// RecentInvoices returns the most recently created invoices, newest first.
func (s *invoiceService) RecentInvoices(ctx context.Context, limit int) ([]domain.Invoice, error) {
	if limit <= 0 {
		limit = DefaultRecentInvoices
	}
	invoices, err := s.invoiceRepo.ListInvoices(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices")
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	// later insertion wins ties on createdAt
	recent := make([]domain.Invoice, 0, len(invoices))
	for i := len(invoices) - 1; i >= 0; i-- {
		recent = append(recent, invoices[i])
	}
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].CreatedAt.After(recent[j].CreatedAt) })

	if len(recent) > limit {
		recent = recent[:limit]
	}
	return recent, nil
}
