package service

import (
	"context"

	"cleansweep-backend/internal/repository"
)

type ledgerService struct {
	profileRepo repository.ProfileRepository
	orgRepo     repository.OrganizationRepository
}

func NewLedgerService(profileRepo repository.ProfileRepository, orgRepo repository.OrganizationRepository) LedgerService {
	return &ledgerService{
		profileRepo: profileRepo,
		orgRepo:     orgRepo,
	}
}

// Apply adds delta to the user's points and then, when organizationID is
// set, to the organization's total. Each update is an independent
// read-then-write with no transaction or isolation: concurrent submissions
// for the same user or organization can lose an increment. Known and
// accepted; point totals are advisory, not financial.
func (s *ledgerService) Apply(ctx context.Context, userID int32, organizationID *string, delta int32) error {
	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	profile.Points += delta
	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return err
	}

	if organizationID == nil {
		return nil
	}

	org, err := s.orgRepo.GetByID(ctx, *organizationID)
	if err != nil {
		return err
	}
	org.TotalPoints += delta
	return s.orgRepo.Update(ctx, org)
}
