package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/tradedesk/pnl-dashboard-backend/internal/api"
	"github.com/tradedesk/pnl-dashboard-backend/internal/api/middleware"
	"github.com/tradedesk/pnl-dashboard-backend/internal/config"
	"github.com/tradedesk/pnl-dashboard-backend/internal/database"
	"github.com/tradedesk/pnl-dashboard-backend/internal/repository"
	"github.com/tradedesk/pnl-dashboard-backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Create repositories
	entryRepo := repository.NewEntryRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	entryService := service.NewEntryService(entryRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	metricsService := service.NewMetricsService(entryService, settingsService)
	snapshotService := service.NewSnapshotService(snapshotRepo, metricsService)

	tokenAuth, err := middleware.NewTokenAuth(cfg.Auth.SecretKey)
	if err != nil {
		log.Fatalf("Failed to initialize auth: %v", err)
	}
	if cfg.Auth.AdminPasscode == "" {
		log.Println("ADMIN_PASSCODE not set; write endpoints are disabled")
	}

	// Create router
	router := api.NewRouter(api.Services{
		System:   systemService,
		Entry:    entryService,
		Settings: settingsService,
		Metrics:  metricsService,
		Snapshot: snapshotService,
	}, tokenAuth, cfg)

	// Materialize the daily report shortly after midnight UTC.
	scheduler := cron.New(cron.WithLocation(time.UTC))
	if _, err := scheduler.AddFunc("30 0 * * *", func() {
		if err := snapshotService.CaptureSnapshot(time.Now().UTC()); err != nil {
			log.Printf("Daily snapshot failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule snapshot job: %v", err)
	}
	scheduler.Start()

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
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	scheduler.Stop()

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
