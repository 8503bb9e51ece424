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

type profileService struct {
	BaseService
	profileRepo portsrepo.ProfileRepositoryFacade
	defaults    domain.Preferences
}

// NewProfileService creates the profile service. defaults apply to new profiles and
// whenever no profile is stored.
func NewProfileService(repo portsrepo.ProfileRepositoryFacade, defaults domain.Preferences, opts ...ServiceOption) portssvc.ProfileSvcFacade {
	if defaults.DefaultCurrency == "" {
		defaults.DefaultCurrency = domain.DefaultCurrencyCode
	}
	if defaults.DefaultDueDays <= 0 {
		defaults.DefaultDueDays = domain.DefaultDueDays
	}
	return &profileService{
		BaseService: newBaseService(opts),
		profileRepo: repo,
		defaults:    defaults,
	}
}

var _ portssvc.ProfileSvcFacade = (*profileService)(nil)

func (s *profileService) GetProfile(ctx context.Context) (*domain.UserProfile, error) {
	profile, err := s.profileRepo.FindProfile(ctx)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to load profile")
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

func (s *profileService) Preferences(ctx context.Context) (domain.Preferences, error) {
	prefs := s.defaults
	profile, err := s.GetProfile(ctx)
	if err != nil {
		return prefs, err
	}
	if profile != nil {
		if profile.DefaultCurrency != "" {
			prefs.DefaultCurrency = profile.DefaultCurrency
		}
		if profile.DefaultDueDays > 0 {
			prefs.DefaultDueDays = profile.DefaultDueDays
		}
	}
	return prefs, nil
}

func (s *profileService) SaveProfile(ctx context.Context, req dto.SaveProfileRequest) (*domain.UserProfile, error) {
	now := s.now()
	profile := domain.UserProfile{
		ID:              s.newID(),
		Email:           req.Email,
		Name:            req.Name,
		Company:         req.Company,
		Phone:           req.Phone,
		Address:         req.Address,
		Website:         req.Website,
		TaxID:           req.TaxID,
		DefaultCurrency: req.DefaultCurrency,
		DefaultDueDays:  req.DefaultDueDays,
		Timestamps:      domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	if profile.DefaultCurrency == "" {
		profile.DefaultCurrency = s.defaults.DefaultCurrency
	}
	if profile.DefaultDueDays <= 0 {
		profile.DefaultDueDays = s.defaults.DefaultDueDays
	}

	if err := s.profileRepo.SaveProfile(ctx, profile); err != nil {
		s.LogError(ctx, err, "Failed to save profile")
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	s.LogInfo(ctx, "Profile saved", slog.String("profile_id", profile.ID))
	return &profile, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest) (*domain.UserProfile, error) {
	profile, err := s.profileRepo.UpdateProfile(ctx, func(p *domain.UserProfile) error {
		setIfPresent(&p.Email, req.Email)
		setIfPresent(&p.Name, req.Name)
		setIfPresent(&p.Company, req.Company)
		setIfPresent(&p.Phone, req.Phone)
		setIfPresent(&p.Address, req.Address)
		setIfPresent(&p.Website, req.Website)
		setIfPresent(&p.TaxID, req.TaxID)
		setIfPresent(&p.DefaultCurrency, req.DefaultCurrency)
		if req.DefaultDueDays != nil && *req.DefaultDueDays > 0 {
			p.DefaultDueDays = *req.DefaultDueDays
		}
		p.UpdatedAt = s.now()
		return nil
	})
	if errors.Is(err, apperrors.ErrNotFound) {
		s.LogDebug(ctx, "No profile to update")
		return nil, nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to update profile")
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	s.LogInfo(ctx, "Profile updated", slog.String("profile_id", profile.ID))
	return profile, nil
}

func (s *profileService) ClearProfile(ctx context.Context) error {
	if err := s.profileRepo.DeleteProfile(ctx); err != nil {
		s.LogError(ctx, err, "Failed to clear profile")
		return fmt.Errorf("failed to clear profile: %w", err)
	}
	s.LogInfo(ctx, "Profile cleared")
	return nil
}

func setIfPresent(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
