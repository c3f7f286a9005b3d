package jobs

import (
	"database/sql"

	"cleansweep-backend/internal/config"
	"cleansweep-backend/internal/logger"
	"cleansweep-backend/internal/repository/postgres"
	"cleansweep-backend/internal/service"
	"cleansweep-backend/internal/storage"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	db       *sql.DB
	store    *postgres.Store
	services *Services
	storage  storage.StorageInterface
	config   *config.Config
}

// Services holds all service dependencies needed by jobs
type Services struct {
	Email       service.EmailService
	Leaderboard service.LeaderboardService
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(db *sql.DB, store *postgres.Store, services *Services, photoStore storage.StorageInterface, cfg *config.Config) *JobRunner {
	return &JobRunner{
		db:       db,
		store:    store,
		services: services,
		storage:  photoStore,
		config:   cfg,
	}
}

// Config exposes the loaded configuration to the scheduler
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}
