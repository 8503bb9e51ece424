package repositories

import (
	"context"

	"github.com/SscSPs/invoicely/internal/core/domain"
)

// ProfileReader defines read operations for the local user profile
type ProfileReader interface {
	// FindProfile returns apperrors.ErrNotFound when no profile is stored.
	FindProfile(ctx context.Context) (*domain.UserProfile, error)
}

// ProfileWriter defines write operations for the local user profile
type ProfileWriter interface {
	SaveProfile(ctx context.Context, profile domain.UserProfile) error
	// UpdateProfile applies fn to the stored profile and persists the result atomically.
	// It returns apperrors.ErrNotFound when no profile is stored; fn errors are returned as is.
	UpdateProfile(ctx context.Context, fn func(*domain.UserProfile) error) (*domain.UserProfile, error)
	DeleteProfile(ctx context.Context) error
}

// ProfileRepositoryFacade combines all profile repository interfaces
type ProfileRepositoryFacade interface {
	ProfileReader
	ProfileWriter
}
