package services

import (
	"context"

	"github.com/SscSPs/invoicely/internal/core/domain"
	"github.com/SscSPs/invoicely/internal/dto"
)

// ProfileReaderSvc defines read operations for the local profile
type ProfileReaderSvc interface {
	// GetProfile returns nil, without an error, when no profile is stored.
	GetProfile(ctx context.Context) (*domain.UserProfile, error)

	// Preferences returns the defaults new clients and invoices inherit, falling back to
	// the configured defaults when there is no profile.
	Preferences(ctx context.Context) (domain.Preferences, error)
}

// ProfileWriterSvc defines write operations for the local profile
type ProfileWriterSvc interface {
	// SaveProfile creates the profile, replacing any existing one.
	SaveProfile(ctx context.Context, req dto.SaveProfileRequest) (*domain.UserProfile, error)

	// UpdateProfile returns nil, nil when there is no profile to update.
	UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest) (*domain.UserProfile, error)

	// ClearProfile removes the profile. Other collections are untouched.
	ClearProfile(ctx context.Context) error
}

// ProfileSvcFacade combines all profile service interfaces
type ProfileSvcFacade interface {
	ProfileReaderSvc
	ProfileWriterSvc
}
