package service

import (
	"context"
	"database/sql"
	"errors"

	"cleansweep-backend/internal/domain"
	"cleansweep-backend/internal/repository"
)

type profileService struct {
	profileRepo  repository.ProfileRepository
	identityRepo repository.IdentityRepository
}

func NewProfileService(profileRepo repository.ProfileRepository, identityRepo repository.IdentityRepository) ProfileService {
	return &profileService{
		profileRepo:  profileRepo,
		identityRepo: identityRepo,
	}
}

// GetOrProvision performs exactly one profile read and, only when the
// profile is missing, one write: the default member profile named after the
// email local-part with zero points.
func (s *profileService) GetOrProvision(ctx context.Context, identityID int32) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, identityID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	identity, err := s.identityRepo.GetByID(ctx, identityID)
	if err != nil {
		return nil, err
	}

	profile = &domain.Profile{
		ID:     identity.ID,
		Name:   emailLocalPart(identity.Email),
		Email:  identity.Email,
		Points: 0,
		Role:   domain.ProfileRoleMember,
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
