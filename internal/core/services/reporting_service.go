package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/invoicely/internal/core/domain"
	portsrepo "github.com/SscSPs/invoicely/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/invoicely/internal/core/ports/services"
)

type reportingService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceReader
}

// NewReportingService creates the reporting service. Stats are recomputed on every call.
func NewReportingService(repo portsrepo.InvoiceReader, opts ...ServiceOption) portssvc.ReportingSvc {
	return &reportingService{
		BaseService: newBaseService(opts),
		invoiceRepo: repo,
	}
}

func (s *reportingService) GetInvoiceStats(ctx context.Context) (*domain.InvoiceStats, error) {
	invoices, err := s.invoiceRepo.ListInvoices(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices for stats")
		return nil, fmt.Errorf("failed to compute invoice stats: %w", err)
	}
	stats := domain.ComputeInvoiceStats(invoices)
	return &stats, nil
}
