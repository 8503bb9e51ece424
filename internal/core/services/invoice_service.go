package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/invoicely/internal/apperrors"
	"github.com/SscSPs/invoicely/internal/core/domain"
	portsrepo "github.com/SscSPs/invoicely/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/invoicely/internal/core/ports/services"
	"github.com/SscSPs/invoicely/internal/dto"
)

const (
	eventInvoiceCreated = "invoice_created"
	eventInvoiceSent    = "invoice_sent"
	eventInvoicePaid    = "invoice_paid"

	anonymousDistinctID = "anonymous"
)

type invoiceService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	clients     portssvc.ClientSvcFacade
	methods     portssvc.PaymentMethodReaderSvc
	profile     portssvc.ProfileReaderSvc
	policy      domain.TransitionPolicy
}

// InvoiceDependencies are the collaborators the invoice engine reads from. Clients is
// also written to when an invoice is authored together with a new client.
type InvoiceDependencies struct {
	Clients        portssvc.ClientSvcFacade
	PaymentMethods portssvc.PaymentMethodReaderSvc
	Profile        portssvc.ProfileReaderSvc
	// Policy decides which status writes are accepted. Nil means strict transitions.
	Policy domain.TransitionPolicy
}

// NewInvoiceService creates the invoice engine.
func NewInvoiceService(repo portsrepo.InvoiceRepositoryFacade, deps InvoiceDependencies, opts ...ServiceOption) portssvc.InvoiceSvcFacade {
	policy := deps.Policy
	if policy == nil {
		policy = domain.StrictTransitions{}
	}
	return &invoiceService{
		BaseService: newBaseService(opts),
		invoiceRepo: repo,
		clients:     deps.Clients,
		methods:     deps.PaymentMethods,
		profile:     deps.Profile,
		policy:      policy,
	}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

func (s *invoiceService) GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	inv, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to find invoice", slog.String("invoice_id", invoiceID))
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}
	return inv, nil
}

func (s *invoiceService) GenerateInvoiceNumber(ctx context.Context) (string, error) {
	invoices, err := s.invoiceRepo.ListInvoices(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list invoices: %w", err)
	}
	return domain.NextInvoiceNumber(invoices, s.now().Year()), nil
}

func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	now := s.now()
	prefs, err := s.profile.Preferences(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve preferences: %w", err)
	}

	issueDate := domain.DateOf(now)
	if req.IssueDate != "" {
		if issueDate, err = parseDateField("issueDate", req.IssueDate); err != nil {
			return nil, err
		}
	}
	dueDate := issueDate.AddDate(0, 0, prefs.DefaultDueDays)
	if req.DueDate != "" {
		if dueDate, err = parseDateField("dueDate", req.DueDate); err != nil {
			return nil, err
		}
	}

	clientID, snapshot, err := s.resolveClient(ctx, req)
	if err != nil {
		return nil, err
	}
	if snapshot.ClientCurrency == "" {
		snapshot.ClientCurrency = prefs.DefaultCurrency
	}

	paymentMethodID := req.PaymentMethodID
	if paymentMethodID == "" {
		method, err := s.methods.GetDefaultPaymentMethod(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve default payment method: %w", err)
		}
		if method != nil {
			paymentMethodID = method.ID
		}
	}

	templateID := req.TemplateID
	if templateID == "" {
		templateID = domain.DefaultTemplateID()
	}

	terms := fmt.Sprintf("Payment is due within %d days", prefs.DefaultDueDays)
	if req.Terms != nil {
		terms = *req.Terms
	}

	inv := domain.Invoice{
		ID:              s.newID(),
		InvoiceNumber:   req.InvoiceNumber,
		ClientID:        clientID,
		ClientSnapshot:  snapshot,
		IssueDate:       issueDate,
		DueDate:         dueDate,
		TemplateID:      templateID,
		PaymentMethodID: paymentMethodID,
		Items:           toLineItems(req.Items),
		Notes:           req.Notes,
		Terms:           terms,
		Status:          domain.StatusDraft,
		Timestamps:      domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	inv.RecalculateTotal()

	year := now.Year()
	saved, err := s.invoiceRepo.SaveInvoice(ctx, inv, func(existing []domain.Invoice) string {
		return domain.NextInvoiceNumber(existing, year)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to save invoice", slog.String("invoice_id", inv.ID))
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	s.LogInfo(ctx, "Invoice created",
		slog.String("invoice_id", saved.ID),
		slog.String("invoice_number", saved.InvoiceNumber),
		slog.String("total", saved.Total.String()))
	s.track(s.distinctID(ctx), eventInvoiceCreated, map[string]any{
		"invoice_id":     saved.ID,
		"invoice_number": saved.InvoiceNumber,
		"currency":       saved.ClientCurrency,
		"total":          saved.Total.String(),
	})
	return saved, nil
}

// resolveClient returns the client reference and snapshot for a new invoice. Caller
// supplied snapshot fields win over the referenced client's data.
func (s *invoiceService) resolveClient(ctx context.Context, req dto.CreateInvoiceRequest) (string, domain.ClientSnapshot, error) {
	snapshot := domain.ClientSnapshot{
		ClientName:     req.ClientName,
		ClientEmail:    req.ClientEmail,
		ClientAddress:  req.ClientAddress,
		ClientCurrency: req.ClientCurrency,
	}

	var client *domain.Client
	switch {
	case req.NewClient != nil:
		created, err := s.clients.CreateClient(ctx, *req.NewClient)
		if err != nil {
			return "", snapshot, fmt.Errorf("failed to create client for invoice: %w", err)
		}
		client = created
	case req.ClientID != "":
		found, err := s.clients.GetClient(ctx, req.ClientID)
		if err != nil {
			return "", snapshot, fmt.Errorf("failed to look up client for invoice: %w", err)
		}
		if found == nil {
			s.LogDebug(ctx, "Invoice references unknown client, keeping supplied snapshot", slog.String("client_id", req.ClientID))
			return req.ClientID, snapshot, nil
		}
		client = found
	default:
		return "", snapshot, nil
	}

	fromClient := client.Snapshot()
	if snapshot.ClientName == "" {
		snapshot.ClientName = fromClient.ClientName
	}
	if snapshot.ClientEmail == "" {
		snapshot.ClientEmail = fromClient.ClientEmail
	}
	if snapshot.ClientAddress == "" {
		snapshot.ClientAddress = fromClient.ClientAddress
	}
	if snapshot.ClientCurrency == "" {
		snapshot.ClientCurrency = fromClient.ClientCurrency
	}
	return client.ID, snapshot, nil
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest) (*domain.Invoice, error) {
	var issueDate, dueDate *time.Time
	if req.IssueDate != nil {
		d, err := parseDateField("issueDate", *req.IssueDate)
		if err != nil {
			return nil, err
		}
		issueDate = &d
	}
	if req.DueDate != nil {
		d, err := parseDateField("dueDate", *req.DueDate)
		if err != nil {
			return nil, err
		}
		dueDate = &d
	}

	now := s.now()
	updated, err := s.invoiceRepo.UpdateInvoice(ctx, invoiceID, func(inv *domain.Invoice) error {
		if req.Status != nil && *req.Status != inv.Status {
			if err := s.transition(inv, *req.Status, now); err != nil {
				return err
			}
		}
		setIfPresent(&inv.InvoiceNumber, req.InvoiceNumber)
		setIfPresent(&inv.ClientID, req.ClientID)
		setIfPresent(&inv.ClientName, req.ClientName)
		setIfPresent(&inv.ClientEmail, req.ClientEmail)
		setIfPresent(&inv.ClientAddress, req.ClientAddress)
		setIfPresent(&inv.ClientCurrency, req.ClientCurrency)
		setIfPresent(&inv.TemplateID, req.TemplateID)
		setIfPresent(&inv.PaymentMethodID, req.PaymentMethodID)
		setIfPresent(&inv.Notes, req.Notes)
		setIfPresent(&inv.Terms, req.Terms)
		if issueDate != nil {
			inv.IssueDate = *issueDate
		}
		if dueDate != nil {
			inv.DueDate = *dueDate
		}
		if req.Items != nil {
			inv.Items = toLineItems(req.Items)
		}
		inv.RecalculateTotal()
		inv.UpdatedAt = now
		return nil
	})
	if errors.Is(err, apperrors.ErrNotFound) {
		s.LogDebug(ctx, "Invoice not found, update ignored", slog.String("invoice_id", invoiceID))
		return nil, nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to update invoice", slog.String("invoice_id", invoiceID))
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}
	s.LogInfo(ctx, "Invoice updated", slog.String("invoice_id", invoiceID), slog.String("total", updated.Total.String()))
	return updated, nil
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, invoiceID string) error {
	removed, err := s.invoiceRepo.DeleteInvoice(ctx, invoiceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete invoice", slog.String("invoice_id", invoiceID))
		return fmt.Errorf("failed to delete invoice: %w", err)
	}
	if !removed {
		s.LogDebug(ctx, "Invoice not found, delete ignored", slog.String("invoice_id", invoiceID))
		return nil
	}
	s.LogInfo(ctx, "Invoice deleted", slog.String("invoice_id", invoiceID))
	return nil
}

func (s *invoiceService) MarkAsSent(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	now := s.now()
	updated, err := s.invoiceRepo.UpdateInvoice(ctx, invoiceID, func(inv *domain.Invoice) error {
		if err := s.transition(inv, domain.StatusSent, now); err != nil {
			return err
		}
		sentAt := now
		inv.SentAt = &sentAt
		inv.UpdatedAt = now
		return nil
	})
	if errors.Is(err, apperrors.ErrNotFound) {
		s.LogDebug(ctx, "Invoice not found, send ignored", slog.String("invoice_id", invoiceID))
		return nil, nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to mark invoice as sent", slog.String("invoice_id", invoiceID))
		return nil, fmt.Errorf("failed to mark invoice as sent: %w", err)
	}
	s.LogInfo(ctx, "Invoice sent", slog.String("invoice_id", invoiceID))
	s.track(s.distinctID(ctx), eventInvoiceSent, map[string]any{"invoice_id": invoiceID})
	return updated, nil
}

func (s *invoiceService) MarkAsPaid(ctx context.Context, invoiceID string, paidDate *time.Time) (*domain.Invoice, error) {
	now := s.now()
	paidAt := now
	if paidDate != nil {
		paidAt = *paidDate
	}
	updated, err := s.invoiceRepo.UpdateInvoice(ctx, invoiceID, func(inv *domain.Invoice) error {
		if err := s.transition(inv, domain.StatusPaid, now); err != nil {
			return err
		}
		at := paidAt
		inv.PaidAt = &at
		inv.UpdatedAt = now
		return nil
	})
	if errors.Is(err, apperrors.ErrNotFound) {
		s.LogDebug(ctx, "Invoice not found, payment ignored", slog.String("invoice_id", invoiceID))
		return nil, nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to mark invoice as paid", slog.String("invoice_id", invoiceID))
		return nil, fmt.Errorf("failed to mark invoice as paid: %w", err)
	}
	s.LogInfo(ctx, "Invoice paid", slog.String("invoice_id", invoiceID), slog.Time("paid_at", paidAt))
	s.track(s.distinctID(ctx), eventInvoicePaid, map[string]any{
		"invoice_id": invoiceID,
		"total":      updated.Total.String(),
	})
	return updated, nil
}

func (s *invoiceService) SweepOverdue(ctx context.Context, asOf time.Time) ([]domain.Invoice, error) {
	now := s.now()
	changed, err := s.invoiceRepo.UpdateInvoicesWhere(ctx, func(inv *domain.Invoice) (bool, error) {
		if !inv.IsOverdueAt(asOf) || !s.policy.Allow(inv.Status, domain.StatusOverdue) {
			return false, nil
		}
		inv.Status = domain.StatusOverdue
		inv.UpdatedAt = now
		return true, nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to sweep overdue invoices")
		return nil, fmt.Errorf("failed to sweep overdue invoices: %w", err)
	}
	s.LogInfo(ctx, "Overdue sweep finished", slog.Time("as_of", asOf), slog.Int("marked_overdue", len(changed)))
	return changed, nil
}

// transition applies a status change if the policy allows it. The first move into sent
// or paid stamps the matching timestamp when none is recorded yet.
func (s *invoiceService) transition(inv *domain.Invoice, to domain.InvoiceStatus, now time.Time) error {
	if !s.policy.Allow(inv.Status, to) {
		return &apperrors.TransitionError{InvoiceID: inv.ID, From: string(inv.Status), To: string(to)}
	}
	inv.Status = to
	switch to {
	case domain.StatusSent:
		if inv.SentAt == nil {
			t := now
			inv.SentAt = &t
		}
	case domain.StatusPaid:
		if inv.PaidAt == nil {
			t := now
			inv.PaidAt = &t
		}
	}
	return nil
}

func (s *invoiceService) distinctID(ctx context.Context) string {
	if s.Tracker == nil {
		return anonymousDistinctID
	}
	profile, err := s.profile.GetProfile(ctx)
	if err != nil || profile == nil {
		return anonymousDistinctID
	}
	return profile.ID
}

func toLineItems(reqs []dto.LineItemRequest) []domain.LineItem {
	items := make([]domain.LineItem, len(reqs))
	for i, r := range reqs {
		items[i] = domain.NewLineItem(r.Description, r.Quantity, r.Rate)
	}
	return items
}

func parseDateField(field, value string) (time.Time, error) {
	d, err := domain.ParseDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must use the YYYY-MM-DD format", apperrors.ErrValidation, field)
	}
	return d, nil
}
