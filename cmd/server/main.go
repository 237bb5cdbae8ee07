package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	httpapi "ngobooks-backend/internal/api/http"
	"ngobooks-backend/internal/config"
	"ngobooks-backend/internal/jobs"
	"ngobooks-backend/internal/logger"
	"ngobooks-backend/internal/realtime"
	"ngobooks-backend/internal/repository/postgres"
	"ngobooks-backend/internal/scheduler"
	"ngobooks-backend/internal/security"
	"ngobooks-backend/internal/service"
	"ngobooks-backend/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting NGO Books Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Storage
	logger.Info("Using local storage", "upload_dir", cfg.Storage.UploadDir)
	localStorage, err := storage.NewLocalStorage(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	var storageService storage.Storage = localStorage

	// Realtime event hub
	hub := realtime.NewHub()

	// Initialize Services
	emailService := service.NewEmailService(cfg.Email.APIKey, cfg.Email.From, cfg.Email.FromName)
	authService := service.NewAuthService(store.UserRepository, tokenManager)
	membershipService := service.NewMembershipService(
		store.MemberRequestRepository,
		store.MemberRepository,
		emailService,
		hub,
	)
	donationService := service.NewDonationService(store.DonationRepository, hub)
	expenseService := service.NewExpenseService(store.ExpenseRepository, storageService, hub)
	summaryService := service.NewSummaryService(
		store.DonationRepository,
		store.MemberRepository,
		store.ExpenseRepository,
		store.UserRepository,
	)

	// Initialize HTTP layer
	authMiddleware := httpapi.NewAuthMiddleware(tokenManager)
	router := httpapi.NewRouter(httpapi.Handlers{
		Auth:     httpapi.NewAuthHandler(authService),
		Members:  httpapi.NewMemberHandler(membershipService),
		Donation: httpapi.NewDonationHandler(donationService),
		Expense:  httpapi.NewExpenseHandler(expenseService, cfg.Storage.MaxFileSizeMB),
		Stats:    httpapi.NewStatsHandler(summaryService),
		Public:   httpapi.NewPublicHandler(summaryService, donationService, expenseService),
		Upload:   httpapi.NewUploadHandler(storageService),
		Hub:      hub,
	}, authMiddleware)

	// Scheduled jobs run in-process alongside the server
	jobRunner := jobs.NewJobRunner(db, store, storageService, &jobs.Services{
		Email:   emailService,
		Summary: summaryService,
	}, cfg)
	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()
	defer cronScheduler.Stop()

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server failed", "error", err)
		log.Fatalf("HTTP server failed: %v", err)
	}
}
