package service

import (
	"context"

	"cleansweep-backend/internal/domain"
	"cleansweep-backend/internal/events"
	"cleansweep-backend/internal/repository"
)

type challengeService struct {
	challengeRepo repository.ChallengeRepository
	profileRepo   repository.ProfileRepository
	publisher     events.Publisher
}

func NewChallengeService(
	challengeRepo repository.ChallengeRepository,
	profileRepo repository.ProfileRepository,
	publisher events.Publisher,
) ChallengeService {
	return &challengeService{
		challengeRepo: challengeRepo,
		profileRepo:   profileRepo,
		publisher:     publisher,
	}
}

// Create persists a challenge for the caller's organization. Non-org
// callers are refused outright and nothing is written. Date fields are
// stored as submitted; there is no end-after-start check.
func (s *challengeService) Create(ctx context.Context, userID int32, challenge *domain.Challenge) error {
	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if profile.Role != domain.ProfileRoleOrg || profile.OrganizationID == nil {
		return ErrNotOrganization
	}

	challenge.OrganizationID = *profile.OrganizationID
	if err := s.challengeRepo.Create(ctx, challenge); err != nil {
		return err
	}

	if s.publisher != nil {
		s.publisher.Publish(events.Event{
			Type:    events.TypeChallengeCreated,
			Payload: challenge,
		})
	}
	return nil
}

func (s *challengeService) List(ctx context.Context, organizationID string) ([]domain.Challenge, error) {
	return s.challengeRepo.List(ctx, organizationID)
}
