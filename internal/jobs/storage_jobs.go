package jobs

import (
	"context"
	"time"

	"cleansweep-backend/internal/logger"
)

// orphanAge is how long an uploaded photo may stay unreferenced before the
// sweep removes it. Submissions that failed after the upload step leave
// such orphans behind.
const orphanAge = 24 * time.Hour

// SweepOrphanedPhotos deletes stored photos that no cleanup record
// references and that are older than the orphan age cutoff.
func (jr *JobRunner) SweepOrphanedPhotos() {
	jr.runWithRecovery("SweepOrphanedPhotos", func() {
		ctx := context.Background()

		keys, err := jr.storage.ListKeysOlderThan(ctx, time.Now().Add(-orphanAge))
		if err != nil {
			logger.Error("Failed to list stored photos", "error", err)
			return
		}
		if len(keys) == 0 {
			logger.Info("No photos eligible for sweep")
			return
		}

		referenced, err := jr.store.CleanupRepository.ListReferencedPhotoKeys(ctx)
		if err != nil {
			logger.Error("Failed to list referenced photo keys", "error", err)
			return
		}
		refSet := make(map[string]struct{}, len(referenced))
		for _, key := range referenced {
			refSet[key] = struct{}{}
		}

		count := 0
		for _, key := range keys {
			if _, ok := refSet[key]; ok {
				continue
			}
			if err := jr.storage.DeleteFile(ctx, key); err != nil {
				logger.Error("Failed to delete orphaned photo", "key", key, "error", err)
				continue
			}
			count++
			logger.Debug("Deleted orphaned photo", "key", key)
		}

		logger.Info("Orphaned photo sweep finished", "deleted", count, "scanned", len(keys))
	})
}
