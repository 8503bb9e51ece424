package dto

import (
	"time"

	"github.com/SscSPs/invoicely/internal/core/domain"
)

// SaveProfileRequest creates (or replaces) the local profile, as register/login did.
type SaveProfileRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Name            string `json:"name"`
	Company         string `json:"company"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	Website         string `json:"website" binding:"omitempty,url"`
	TaxID           string `json:"taxId"`
	DefaultCurrency string `json:"defaultCurrency" binding:"omitempty,currency"`
	DefaultDueDays  int    `json:"defaultDueDays" binding:"omitempty,min=1,max=365"`
}

// UpdateProfileRequest merges into the stored profile.
type UpdateProfileRequest struct {
	Email           *string `json:"email" binding:"omitempty,email"`
	Name            *string `json:"name"`
	Company         *string `json:"company"`
	Phone           *string `json:"phone"`
	Address         *string `json:"address"`
	Website         *string `json:"website" binding:"omitempty,url"`
	TaxID           *string `json:"taxId"`
	DefaultCurrency *string `json:"defaultCurrency" binding:"omitempty,currency"`
	DefaultDueDays  *int    `json:"defaultDueDays" binding:"omitempty,min=1,max=365"`
}

// ProfileResponse defines the data returned for the profile.
type ProfileResponse struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	Company         string    `json:"company"`
	Phone           string    `json:"phone"`
	Address         string    `json:"address"`
	Website         string    `json:"website"`
	TaxID           string    `json:"taxId"`
	DefaultCurrency string    `json:"defaultCurrency"`
	DefaultDueDays  int       `json:"defaultDueDays"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ToProfileResponse converts a domain.UserProfile to ProfileResponse DTO
func ToProfileResponse(p *domain.UserProfile) ProfileResponse {
	return ProfileResponse{
		ID:              p.ID,
		Email:           p.Email,
		Name:            p.Name,
		Company:         p.Company,
		Phone:           p.Phone,
		Address:         p.Address,
		Website:         p.Website,
		TaxID:           p.TaxID,
		DefaultCurrency: p.DefaultCurrency,
		DefaultDueDays:  p.DefaultDueDays,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
