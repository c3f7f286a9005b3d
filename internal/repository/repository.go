package repository

import (
	"context"

	"cleansweep-backend/internal/domain"
)

type IdentityRepository interface {
	Create(ctx context.Context, identity *domain.Identity) error
	GetByID(ctx context.Context, id int32) (*domain.Identity, error)
	GetByEmail(ctx context.Context, email string) (*domain.Identity, error)
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id int32) (*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
	ListTopByPoints(ctx context.Context, limit int32) ([]domain.Profile, error)
}

type OrganizationRepository interface {
	Create(ctx context.Context, org *domain.Organization) error
	GetByID(ctx context.Context, id string) (*domain.Organization, error)
	Update(ctx context.Context, org *domain.Organization) error
	List(ctx context.Context) ([]domain.Organization, error)
	ListTopByTotalPoints(ctx context.Context, limit int32) ([]domain.Organization, error)

	// Membership
	AddMember(ctx context.Context, orgID string, userID int32) error
	ListMemberIDs(ctx context.Context, orgID string) ([]int32, error)
}

type CleanupRepository interface {
	Create(ctx context.Context, cleanup *domain.Cleanup) error
	GetByID(ctx context.Context, id int32) (*domain.Cleanup, error)
	ListByUser(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Cleanup, int32, error)
	ListReferencedPhotoKeys(ctx context.Context) ([]string, error)
}

type ChallengeRepository interface {
	Create(ctx context.Context, challenge *domain.Challenge) error
	GetByID(ctx context.Context, id int32) (*domain.Challenge, error)
	List(ctx context.Context, organizationID string) ([]domain.Challenge, error)
}
