package main

import (
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"cleansweep-backend/internal/config"
	"cleansweep-backend/internal/jobs"
	"cleansweep-backend/internal/logger"
	"cleansweep-backend/internal/repository/postgres"
	"cleansweep-backend/internal/scheduler"
	"cleansweep-backend/internal/service"
	"cleansweep-backend/internal/storage"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.Bool("run-once", false, "Run all jobs once and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting CleanSweep cron runner", "config", *configPath, "run_once", *runOnce)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to open database connection", "error", err)
		log.Fatalf("Failed to open database connection: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}

	store := postgres.NewStore(db)

	photoStore, err := storage.NewLocalStorageService(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
	if err != nil {
		logger.Error("Failed to initialize photo storage", "error", err)
		log.Fatalf("Failed to initialize photo storage: %v", err)
	}

	var emailSvc service.EmailService
	if cfg.Email.Provider == "sendgrid" {
		emailSvc = service.NewSendGridEmailService(cfg.Email.SendGridAPIKey, cfg.Email.From)
	} else {
		emailSvc = service.NewSMTPEmailService(
			cfg.Email.SMTPHost,
			cfg.Email.SMTPPort,
			cfg.Email.SMTPUser,
			cfg.Email.SMTPPassword,
			cfg.Email.From,
		)
	}

	svcs := &jobs.Services{
		Email: emailSvc,
		Leaderboard: service.NewLeaderboardService(
			store.ProfileRepository,
			store.OrganizationRepository,
			cfg.Leaderboard.Limit,
		),
	}

	runner := jobs.NewJobRunner(db, store, svcs, photoStore, cfg)

	if *runOnce {
		logger.Info("Running all jobs once")
		runner.SendLeaderboardDigest()
		runner.SweepOrphanedPhotos()
		logger.Info("All jobs finished, exiting")
		return
	}

	sched := scheduler.NewScheduler(runner)
	sched.Start()

	// Block until asked to stop
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh

	logger.Info("Received shutdown signal", "signal", sig.String())
	sched.Stop()
}
