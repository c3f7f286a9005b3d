package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	_ "github.com/lib/pq"

	api "cleansweep-backend/internal/api/http"
	"cleansweep-backend/internal/config"
	"cleansweep-backend/internal/events"
	"cleansweep-backend/internal/logger"
	"cleansweep-backend/internal/repository/postgres"
	"cleansweep-backend/internal/security"
	"cleansweep-backend/internal/service"
	"cleansweep-backend/internal/storage"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting CleanSweep server",
		"config", *configPath,
		"address", cfg.GetServerAddress())

	// Database
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
	logger.Info("Database connection established",
		"host", cfg.Database.Host,
		"database", cfg.Database.Database)

	store := postgres.NewStore(db)

	// Security
	tokens := security.NewTokenManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	// Photo storage
	photoStore, err := storage.NewLocalStorageService(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
	if err != nil {
		logger.Error("Failed to initialize photo storage", "error", err)
		log.Fatalf("Failed to initialize photo storage: %v", err)
	}

	// Live event broker
	broker := events.NewBroker()
	defer broker.Close()

	// Email
	emailSvc := newEmailService(cfg)

	// Services
	profileSvc := service.NewProfileService(store.ProfileRepository, store.IdentityRepository)
	authSvc := service.NewAuthService(
		store.IdentityRepository,
		store.ProfileRepository,
		store.OrganizationRepository,
		profileSvc,
		emailSvc,
		tokens,
	)
	ledgerSvc := service.NewLedgerService(store.ProfileRepository, store.OrganizationRepository)
	cleanupSvc := service.NewCleanupService(
		store.CleanupRepository,
		store.ProfileRepository,
		ledgerSvc,
		photoStore,
		broker,
	)
	challengeSvc := service.NewChallengeService(store.ChallengeRepository, store.ProfileRepository, broker)
	leaderboardSvc := service.NewLeaderboardService(
		store.ProfileRepository,
		store.OrganizationRepository,
		cfg.Leaderboard.Limit,
	)

	// HTTP layer
	handlers := &api.Handlers{
		Auth:        api.NewAuthHandler(authSvc),
		Profile:     api.NewProfileHandler(profileSvc),
		Cleanup:     api.NewCleanupHandler(cleanupSvc),
		Challenge:   api.NewChallengeHandler(challengeSvc),
		Leaderboard: api.NewLeaderboardHandler(leaderboardSvc),
		Photo:       api.NewPhotoHandler(photoStore),
		Stream:      api.NewStreamHandler(broker),
	}
	router := api.NewRouter(handlers, api.NewAuthMiddleware(tokens))

	addr := cfg.GetServerAddress()
	logger.Info("HTTP server listening", "address", addr)
	fmt.Printf("CleanSweep server listening on %s\n", addr)

	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Error("HTTP server failed", "error", err)
		log.Fatalf("HTTP server failed: %v", err)
	}
}

// newEmailService picks the email backend from configuration.
func newEmailService(cfg *config.Config) service.EmailService {
	switch cfg.Email.Provider {
	case "sendgrid":
		logger.Info("Using SendGrid email provider")
		return service.NewSendGridEmailService(cfg.Email.SendGridAPIKey, cfg.Email.From)
	case "smtp":
		logger.Info("Using SMTP email provider", "host", cfg.Email.SMTPHost)
		return service.NewSMTPEmailService(
			cfg.Email.SMTPHost,
			cfg.Email.SMTPPort,
			cfg.Email.SMTPUser,
			cfg.Email.SMTPPassword,
			cfg.Email.From,
		)
	default:
		// Validate() rejects anything else, this is unreachable in practice
		logger.Error("Unknown email provider", "provider", cfg.Email.Provider)
		os.Exit(1)
		return nil
	}
}
