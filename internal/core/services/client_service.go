package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/invoicely/internal/apperrors"
	"github.com/SscSPs/invoicely/internal/core/domain"
	portsrepo "github.com/SscSPs/invoicely/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/invoicely/internal/core/ports/services"
	"github.com/SscSPs/invoicely/internal/dto"
)

type clientService struct {
	BaseService
	clientRepo portsrepo.ClientRepositoryFacade
	profile    portssvc.ProfileReaderSvc
}

// NewClientService creates the client registry service. Clients created without a
// currency inherit the profile's default currency.
func NewClientService(repo portsrepo.ClientRepositoryFacade, profile portssvc.ProfileReaderSvc, opts ...ServiceOption) portssvc.ClientSvcFacade {
	return &clientService{
		BaseService: newBaseService(opts),
		clientRepo:  repo,
		profile:     profile,
	}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

func (s *clientService) GetClient(ctx context.Context, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to find client", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return client, nil
}

func (s *clientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.clientRepo.ListClients(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients")
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error) {
	currency := req.Currency
	if currency == "" {
		prefs, err := s.profile.Preferences(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve default currency: %w", err)
		}
		currency = prefs.DefaultCurrency
	}

	now := s.now()
	client := domain.Client{
		ID:         s.newID(),
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Company:    req.Company,
		Address:    req.Address,
		Currency:   currency,
		Timestamps: domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		s.LogError(ctx, err, "Failed to save client", slog.String("client_id", client.ID))
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	s.LogInfo(ctx, "Client created", slog.String("client_id", client.ID))
	return &client, nil
}

func (s *clientService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest) (*domain.Client, error) {
	updated, err := s.clientRepo.UpdateClient(ctx, clientID, func(c *domain.Client) error {
		setIfPresent(&c.Name, req.Name)
		setIfPresent(&c.Email, req.Email)
		setIfPresent(&c.Phone, req.Phone)
		setIfPresent(&c.Company, req.Company)
		setIfPresent(&c.Address, req.Address)
		setIfPresent(&c.Currency, req.Currency)
		c.UpdatedAt = s.now()
		return nil
	})
	if errors.Is(err, apperrors.ErrNotFound) {
		s.LogDebug(ctx, "Client not found, update ignored", slog.String("client_id", clientID))
		return nil, nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to update client", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	s.LogInfo(ctx, "Client updated", slog.String("client_id", clientID))
	return updated, nil
}

func (s *clientService) DeleteClient(ctx context.Context, clientID string) error {
	removed, err := s.clientRepo.DeleteClient(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete client", slog.String("client_id", clientID))
		return fmt.Errorf("failed to delete client: %w", err)
	}
	if !removed {
		s.LogDebug(ctx, "Client not found, delete ignored", slog.String("client_id", clientID))
		return nil
	}
	s.LogInfo(ctx, "Client deleted", slog.String("client_id", clientID))
	return nil
}
