package service

import (
	"context"

	"cleansweep-backend/internal/domain"
	"cleansweep-backend/internal/repository"
)

type leaderboardService struct {
	profileRepo repository.ProfileRepository
	orgRepo     repository.OrganizationRepository
	limit       int32
}

func NewLeaderboardService(profileRepo repository.ProfileRepository, orgRepo repository.OrganizationRepository, limit int32) LeaderboardService {
	if limit <= 0 {
		limit = 10
	}
	return &leaderboardService{
		profileRepo: profileRepo,
		orgRepo:     orgRepo,
		limit:       limit,
	}
}

func (s *leaderboardService) TopUsers(ctx context.Context) ([]domain.Profile, error) {
	return s.profileRepo.ListTopByPoints(ctx, s.limit)
}

func (s *leaderboardService) TopOrganizations(ctx context.Context) ([]domain.Organization, error) {
	return s.orgRepo.ListTopByTotalPoints(ctx, s.limit)
}
