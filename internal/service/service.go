package service

import (
	"context"
	"io"

	"cleansweep-backend/internal/domain"
)

type AuthService interface {
	Signup(ctx context.Context, email, password, name, organizationName string) (*domain.Profile, string, string, error)
	Login(ctx context.Context, email, password string) (*domain.Profile, string, string, error)
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
	Logout(ctx context.Context, refresh string) error
}

type ProfileService interface {
	// GetOrProvision returns the profile for an authenticated identity,
	// creating the default member profile on first sign-in.
	GetOrProvision(ctx context.Context, identityID int32) (*domain.Profile, error)
}

type LedgerService interface {
	// Apply adds delta to the user's points and, when organizationID is
	// set, to the organization's total.
	Apply(ctx context.Context, userID int32, organizationID *string, delta int32) error
}

// CleanupSubmission carries the caller-supplied fields of one cleanup
// report. Photo is nil when no photo was attached.
type CleanupSubmission struct {
	Description  string
	Location     string
	PointsEarned int32
	PhotoName    string
	Photo        io.Reader
}

type CleanupService interface {
	Submit(ctx context.Context, userID int32, sub CleanupSubmission) (*domain.Cleanup, *domain.Profile, error)
	ListByUser(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Cleanup, int32, error)
}

type ChallengeService interface {
	Create(ctx context.Context, userID int32, challenge *domain.Challenge) error
	List(ctx context.Context, organizationID string) ([]domain.Challenge, error)
}

type LeaderboardService interface {
	TopUsers(ctx context.Context) ([]domain.Profile, error)
	TopOrganizations(ctx context.Context) ([]domain.Organization, error)
}

type EmailService interface {
	SendWelcome(ctx context.Context, email, name string) error
	SendLeaderboardDigest(ctx context.Context, email, orgName, body string) error
}
