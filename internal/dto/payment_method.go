package dto

import (
	"time"

	"github.com/SscSPs/invoicely/internal/core/domain"
)

// CreatePaymentMethodRequest defines the data needed to register a payment method.
type CreatePaymentMethodRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Details     string `json:"details"`
	IsDefault   bool   `json:"isDefault"`
}

// UpdatePaymentMethodRequest defines the data allowed for updating a payment method.
type UpdatePaymentMethodRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1"`
	Description *string `json:"description"`
	Details     *string `json:"details"`
	IsDefault   *bool   `json:"isDefault"`
}

// PaymentMethodResponse defines the data returned for a payment method.
type PaymentMethodResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Details     string    `json:"details"`
	IsDefault   bool      `json:"isDefault"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToPaymentMethodResponse converts a domain.PaymentMethod to PaymentMethodResponse DTO
func ToPaymentMethodResponse(m *domain.PaymentMethod) PaymentMethodResponse {
	return PaymentMethodResponse{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Details:     m.Details,
		IsDefault:   m.IsDefault,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ToListPaymentMethodResponse converts a slice of domain.PaymentMethod to response DTOs
func ToListPaymentMethodResponse(methods []domain.PaymentMethod) []PaymentMethodResponse {
	res := make([]PaymentMethodResponse, len(methods))
	for i := range methods {
		res[i] = ToPaymentMethodResponse(&methods[i])
	}
	return res
}
