package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/webutsav/admin-console/internal/admin"
	"github.com/webutsav/admin-console/internal/audit"
	"github.com/webutsav/admin-console/internal/config"
	"github.com/webutsav/admin-console/internal/listview"
	"github.com/webutsav/admin-console/internal/logger"
	"github.com/webutsav/admin-console/internal/portal"
	"github.com/webutsav/admin-console/internal/session"
	"github.com/webutsav/admin-console/internal/web"
	"github.com/webutsav/admin-console/internal/web/handlers"
)

func main() {
	// 1. Load config (.env is optional)
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// 2. Initialize logger
	if err := logger.Init(cfg.LogLevel, cfg.LogFile); err != nil {
		panic("failed to init logger: " + err.Error())
	}
	log := logger.Get()
	log.Info().Msg("starting admin console service")

	// 3. Setup context with graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info().Msg("received shutdown signal")
		cancel()
	}()

	// 4. Portal client
	client := portal.NewClient(portal.Config{
		BaseURL:   cfg.PortalBaseURL,
		Timeout:   time.Duration(cfg.PortalTimeoutSec) * time.Second,
		RateRPS:   cfg.PortalRateRPS,
		RateBurst: cfg.PortalRateBurst,
	}, log)

	// 5. Audit trail
	auditStore, err := audit.Open(cfg.AuditDBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open audit store")
	}

	// 6. Sessions
	sessions := session.NewManager(
		cfg.AdminEmail,
		cfg.AdminPassword,
		time.Duration(cfg.SessionTTLMin)*time.Minute,
	)

	// 7. Page controllers, one notifier each
	noticeTTL := time.Duration(cfg.NotifyTTLSec) * time.Second
	jobsController := admin.NewJobsController(client, auditStore, listview.NewNotifier(noticeTTL), log)
	appsController := admin.NewApplicationsController(client, listview.NewNotifier(noticeTTL), log)
	inquiriesController := admin.NewInquiriesController(client, auditStore, listview.NewNotifier(noticeTTL), log)
	dashboardController := admin.NewDashboardController(client, log)

	// 8. WebSocket hub
	hub := web.NewHub()
	go hub.Run()

	// 9. HTTP server and handlers
	server := web.NewServer(&web.Config{
		Port:           cfg.HTTPPort,
		AllowedOrigins: cfg.AllowedOrigins,
	}, sessions, hub)

	server.RegisterAuthHandler(handlers.NewAuthHandler(sessions))
	server.RegisterJobsHandler(handlers.NewJobsHandler(jobsController, hub))
	server.RegisterApplicationsHandler(handlers.NewApplicationsHandler(appsController))
	server.RegisterInquiriesHandler(handlers.NewInquiriesHandler(inquiriesController, client, hub))
	server.RegisterDashboardHandler(handlers.NewDashboardHandler(dashboardController))
	server.RegisterAuditHandler(handlers.NewAuditHandler(auditStore))

	// 10. Warm the caches so the first page render has data
	warmCtx, warmCancel := context.WithTimeout(ctx, 30*time.Second)
	if err := jobsController.Load(warmCtx); err != nil {
		log.Warn().Err(err).Msg("initial jobs load failed")
	}
	if _, err := inquiriesController.RefreshUnreadCount(warmCtx); err != nil {
		log.Warn().Err(err).Msg("initial unread count failed")
	}
	warmCancel()

	// 11. Start server
	log.Info().Int("port", cfg.HTTPPort).Msg("starting web server")
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// 12. Wait for shutdown
	<-ctx.Done()
	log.Info().Msg("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Stop(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}

	log.Info().Msg("shutdown complete")
}
