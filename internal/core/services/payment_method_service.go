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

type paymentMethodService struct {
	BaseService
	methodRepo portsrepo.PaymentMethodRepositoryFacade
}

// NewPaymentMethodService creates the payment method registry service.
func NewPaymentMethodService(repo portsrepo.PaymentMethodRepositoryFacade, opts ...ServiceOption) portssvc.PaymentMethodSvcFacade {
	return &paymentMethodService{
		BaseService: newBaseService(opts),
		methodRepo:  repo,
	}
}

var _ portssvc.PaymentMethodSvcFacade = (*paymentMethodService)(nil)

func (s *paymentMethodService) GetPaymentMethod(ctx context.Context, methodID string) (*domain.PaymentMethod, error) {
	method, err := s.methodRepo.FindPaymentMethodByID(ctx, methodID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to find payment method", slog.String("method_id", methodID))
		return nil, fmt.Errorf("failed to get payment method: %w", err)
	}
	return method, nil
}

func (s *paymentMethodService) ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	methods, err := s.methodRepo.ListPaymentMethods(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payment methods")
		return nil, fmt.Errorf("failed to list payment methods: %w", err)
	}
	return methods, nil
}

func (s *paymentMethodService) GetDefaultPaymentMethod(ctx context.Context) (*domain.PaymentMethod, error) {
	methods, err := s.ListPaymentMethods(ctx)
	if err != nil {
		return nil, err
	}
	method, ok := domain.DefaultPaymentMethod(methods)
	if !ok {
		return nil, nil
	}
	return &method, nil
}

func (s *paymentMethodService) CreatePaymentMethod(ctx context.Context, req dto.CreatePaymentMethodRequest) (*domain.PaymentMethod, error) {
	now := s.now()
	method := domain.PaymentMethod{
		ID:          s.newID(),
		Name:        req.Name,
		Description: req.Description,
		Details:     req.Details,
		IsDefault:   req.IsDefault,
		Timestamps:  domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	var created domain.PaymentMethod
	err := s.methodRepo.MutatePaymentMethods(ctx, func(methods []domain.PaymentMethod) ([]domain.PaymentMethod, error) {
		if method.IsDefault {
			domain.ClearDefaults(methods, "")
		}
		methods = append(methods, method)
		// the first method of an empty registry becomes the default
		domain.EnsureSingleDefault(methods)
		created = methods[len(methods)-1]
		return methods, nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create payment method", slog.String("method_id", method.ID))
		return nil, fmt.Errorf("failed to create payment method: %w", err)
	}
	s.LogInfo(ctx, "Payment method created", slog.String("method_id", created.ID), slog.Bool("is_default", created.IsDefault))
	return &created, nil
}

func (s *paymentMethodService) UpdatePaymentMethod(ctx context.Context, methodID string, req dto.UpdatePaymentMethodRequest) (*domain.PaymentMethod, error) {
	var updated domain.PaymentMethod
	err := s.methodRepo.MutatePaymentMethods(ctx, func(methods []domain.PaymentMethod) ([]domain.PaymentMethod, error) {
		idx := domain.IndexOfPaymentMethod(methods, methodID)
		if idx < 0 {
			return nil, apperrors.ErrNotFound
		}

		target := &methods[idx]
		setIfPresent(&target.Name, req.Name)
		setIfPresent(&target.Description, req.Description)
		setIfPresent(&target.Details, req.Details)
		if req.IsDefault != nil {
			switch {
			case *req.IsDefault:
				domain.ClearDefaults(methods, methodID)
				target.IsDefault = true
			case target.IsDefault:
				// hand the flag to the first other method, if there is one
				for i := range methods {
					if i != idx {
						target.IsDefault = false
						methods[i].IsDefault = true
						break
					}
				}
			}
		}
		target.UpdatedAt = s.now()
		domain.EnsureSingleDefault(methods)
		updated = methods[idx]
		return methods, nil
	})
	if errors.Is(err, apperrors.ErrNotFound) {
		s.LogDebug(ctx, "Payment method not found, update ignored", slog.String("method_id", methodID))
		return nil, nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to update payment method", slog.String("method_id", methodID))
		return nil, fmt.Errorf("failed to update payment method: %w", err)
	}
	s.LogInfo(ctx, "Payment method updated", slog.String("method_id", methodID))
	return &updated, nil
}

func (s *paymentMethodService) DeletePaymentMethod(ctx context.Context, methodID string) error {
	err := s.methodRepo.MutatePaymentMethods(ctx, func(methods []domain.PaymentMethod) ([]domain.PaymentMethod, error) {
		remaining, removed := domain.RemovePaymentMethod(methods, methodID)
		if !removed {
			return nil, apperrors.ErrNotFound
		}
		domain.EnsureSingleDefault(remaining)
		return remaining, nil
	})
	if errors.Is(err, apperrors.ErrNotFound) {
		s.LogDebug(ctx, "Payment method not found, delete ignored", slog.String("method_id", methodID))
		return nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to delete payment method", slog.String("method_id", methodID))
		return fmt.Errorf("failed to delete payment method: %w", err)
	}
	s.LogInfo(ctx, "Payment method deleted", slog.String("method_id", methodID))
	return nil
}
