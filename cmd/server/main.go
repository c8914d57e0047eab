package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/analytics"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/api"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/config"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/database"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/encryption"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/logger"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/repository"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/scheduler"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/service"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/version"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	appLog := logger.New(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})
	logger.SetGlobalLogger(appLog)

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		appLog.Fatal().Err(err).Msg("Failed to open database")
	}
	defer db.Close()

	schemaVersion, err := database.Migrate(context.Background(), db)
	if err != nil {
		appLog.Fatal().Err(err).Msg("Failed to migrate database")
	}
	appLog.Info().
		Str("path", cfg.Database.Path).
		Int64("schema_version", schemaVersion).
		Msg("Connected to database")

	cipher, err := encryption.NewMemoCipher(cfg.Database.MemoKey)
	if err != nil {
		appLog.Fatal().Err(err).Msg("Invalid MEMO_KEY")
	}

	// Create repositories
	holdingRepo := repository.NewHoldingRepository(db, cipher)
	goalRepo := repository.NewGoalRepository(db)

	// Create services
	snapshotService := service.NewSnapshotService(holdingRepo, goalRepo, cfg.Snapshot.DemoFallback, appLog)
	services := api.Services{
		System: service.NewSystemService(db, map[string]bool{
			"demo_fallback":   cfg.Snapshot.DemoFallback,
			"memo_encryption": cipher.Enabled(),
		}),
		Holdings:  service.NewHoldingService(db, holdingRepo, goalRepo, snapshotService, appLog),
		Goals:     service.NewGoalService(goalRepo, snapshotService, appLog),
		Analytics: service.NewAnalyticsService(snapshotService, analytics.NewEngine(cfg.Analytics.Tables), cfg.Analytics.Currency),
	}

	// Background snapshot refresh
	jobs := scheduler.New(appLog, 30*time.Second)
	refresh := scheduler.NewSnapshotRefreshJob(snapshotService)
	if err := jobs.AddJob(cfg.Snapshot.RefreshSpec, refresh); err != nil {
		appLog.Fatal().Err(err).Msg("Failed to schedule snapshot refresh")
	}
	if err := jobs.RunNow(refresh); err != nil {
		appLog.Warn().Err(err).Msg("Initial snapshot load failed")
	}
	jobs.Start()

	// Create router
	router := api.NewRouter(services, cfg, appLog)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		appLog.Info().
			Str("addr", cfg.Server.Addr).
			Str("version", version.Version).
			Str("currency", cfg.Analytics.Currency).
			Msg("Starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLog.Info().Msg("Shutting down server...")
	jobs.Stop()

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLog.Error().Err(err).Msg("Server forced to shutdown")
		return
	}

	appLog.Info().Msg("Server exited")
}
