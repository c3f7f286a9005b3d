package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"cleansweep-backend/internal/domain"
	"cleansweep-backend/internal/logger"
	"cleansweep-backend/internal/repository"
	"cleansweep-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	identityRepo repository.IdentityRepository
	profileRepo  repository.ProfileRepository
	orgRepo      repository.OrganizationRepository
	profileSvc   ProfileService
	emailSvc     EmailService
	tokens       security.TokenManager
}

func NewAuthService(
	identityRepo repository.IdentityRepository,
	profileRepo repository.ProfileRepository,
	orgRepo repository.OrganizationRepository,
	profileSvc ProfileService,
	emailSvc EmailService,
	tokens security.TokenManager,
) AuthService {
	return &authService{
		identityRepo: identityRepo,
		profileRepo:  profileRepo,
		orgRepo:      orgRepo,
		profileSvc:   profileSvc,
		emailSvc:     emailSvc,
		tokens:       tokens,
	}
}

// Signup creates an identity and its profile. A non-empty organizationName
// makes this an org signup: the profile gets role "org" and an Organization
// document keyed org_<uid> is created with the new user as sole member.
// There is no rollback: if org creation fails after the profile was written,
// the profile keeps referencing the missing organization.
func (s *authService) Signup(ctx context.Context, email, password, name, organizationName string) (*domain.Profile, string, string, error) {
	if len(password) < 8 {
		return nil, "", "", ErrWeakPassword
	}

	if _, err := s.identityRepo.GetByEmail(ctx, email); err == nil {
		return nil, "", "", ErrEmailTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, "", "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", "", err
	}

	identity := &domain.Identity{
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.identityRepo.Create(ctx, identity); err != nil {
		return nil, "", "", err
	}

	if name == "" {
		name = emailLocalPart(email)
	}

	profile := &domain.Profile{
		ID:     identity.ID,
		Name:   name,
		Email:  email,
		Points: 0,
		Role:   domain.ProfileRoleMember,
	}
	if organizationName != "" {
		orgID := fmt.Sprintf("org_%d", identity.ID)
		profile.Role = domain.ProfileRoleOrg
		profile.OrganizationID = &orgID
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, "", "", err
	}

	if profile.OrganizationID != nil {
		org := &domain.Organization{
			ID:           *profile.OrganizationID,
			Name:         organizationName,
			ContactEmail: email,
			TotalPoints:  0,
		}
		if err := s.orgRepo.Create(ctx, org); err != nil {
			return nil, "", "", err
		}
		if err := s.orgRepo.AddMember(ctx, org.ID, identity.ID); err != nil {
			return nil, "", "", err
		}
	}

	// Welcome email is best-effort; a delivery failure must not fail signup.
	if err := s.emailSvc.SendWelcome(ctx, email, name); err != nil {
		logger.Warn("Failed to send welcome email", "email", email, "error", err)
	}

	access, refresh, err := s.generateTokens(profile)
	if err != nil {
		return nil, "", "", err
	}
	return profile, access, refresh, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.Profile, string, string, error) {
	identity, err := s.identityRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(password)); err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	// First sign-in for an identity without a profile provisions the
	// default member profile.
	profile, err := s.profileSvc.GetOrProvision(ctx, identity.ID)
	if err != nil {
		return nil, "", "", err
	}

	access, refresh, err := s.generateTokens(profile)
	if err != nil {
		return nil, "", "", err
	}
	return profile, access, refresh, nil
}

func (s *authService) RefreshToken(ctx context.Context, refresh string) (string, string, error) {
	claims, err := s.tokens.ValidateToken(refresh)
	if err != nil {
		return "", "", ErrInvalidToken
	}
	if claims.Type != security.TokenTypeRefresh {
		return "", "", ErrInvalidToken
	}

	profile, err := s.profileRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", "", ErrInvalidToken
	}

	return s.generateTokens(profile)
}

func (s *authService) Logout(ctx context.Context, refresh string) error {
	// Stateless tokens; a real deployment might blacklist the refresh token
	return nil
}

func (s *authService) generateTokens(p *domain.Profile) (string, string, error) {
	access, err := s.tokens.GenerateAccessToken(p.ID, p.Email, string(p.Role))
	if err != nil {
		return "", "", err
	}
	refresh, err := s.tokens.GenerateRefreshToken(p.ID, p.Email)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func emailLocalPart(email string) string {
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}
