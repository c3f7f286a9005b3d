package service

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"cleansweep-backend/internal/domain"
	"cleansweep-backend/internal/events"
	"cleansweep-backend/internal/logger"
	"cleansweep-backend/internal/repository"
	"cleansweep-backend/internal/storage"
)

type cleanupService struct {
	cleanupRepo repository.CleanupRepository
	profileRepo repository.ProfileRepository
	ledger      LedgerService
	storage     storage.StorageInterface
	publisher   events.Publisher
}

func NewCleanupService(
	cleanupRepo repository.CleanupRepository,
	profileRepo repository.ProfileRepository,
	ledger LedgerService,
	store storage.StorageInterface,
	publisher events.Publisher,
) CleanupService {
	return &cleanupService{
		cleanupRepo: cleanupRepo,
		profileRepo: profileRepo,
		ledger:      ledger,
		storage:     store,
		publisher:   publisher,
	}
}

// Submit runs the submission pipeline: store the photo, persist the record,
// apply the point delta, then re-read the profile. Steps run sequentially
// and a failure aborts the remainder without compensating earlier steps, so
// an uploaded photo or a persisted record can survive a failed points update.
func (s *cleanupService) Submit(ctx context.Context, userID int32, sub CleanupSubmission) (*domain.Cleanup, *domain.Profile, error) {
	if sub.Description == "" || sub.Location == "" || sub.PointsEarned <= 0 {
		return nil, nil, ErrInvalidSubmission
	}

	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	cleanup := &domain.Cleanup{
		UserID:         userID,
		OrganizationID: profile.OrganizationID,
		Description:    sub.Description,
		Location:       sub.Location,
		PointsEarned:   sub.PointsEarned,
	}

	if sub.Photo != nil {
		// Key namespaced by user id with a timestamp to avoid collisions.
		key := fmt.Sprintf("%d/%d_%s", userID, time.Now().UnixNano(), filepath.Base(sub.PhotoName))
		logger.ExternalServiceCall("storage", "SaveFile", "key", key)
		if err := s.storage.SaveFile(key, sub.Photo); err != nil {
			logger.ExternalServiceResult("storage", "SaveFile", err, "key", key)
			return nil, nil, fmt.Errorf("failed to store photo: %w", err)
		}
		logger.ExternalServiceResult("storage", "SaveFile", nil, "key", key)

		url, err := s.storage.GetDownloadURL(ctx, key)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to resolve photo URL: %w", err)
		}
		cleanup.PhotoKey = key
		cleanup.PhotoURL = url
	}

	if err := s.cleanupRepo.Create(ctx, cleanup); err != nil {
		return nil, nil, err
	}

	if err := s.ledger.Apply(ctx, userID, profile.OrganizationID, sub.PointsEarned); err != nil {
		return nil, nil, err
	}

	// Fresh read so the caller sees the post-submission point total.
	updated, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	if s.publisher != nil {
		s.publisher.Publish(events.Event{
			Type:    events.TypeCleanupSubmitted,
			Payload: cleanup,
		})
	}

	return cleanup, updated, nil
}

func (s *cleanupService) ListByUser(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Cleanup, int32, error) {
	return s.cleanupRepo.ListByUser(ctx, userID, page, pageSize)
}
