package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/linskybing/freelance-market/docs"
	"github.com/linskybing/freelance-market/internal/api/middleware"
	"github.com/linskybing/freelance-market/internal/api/routes"
	"github.com/linskybing/freelance-market/internal/application"
	"github.com/linskybing/freelance-market/internal/cache"
	"github.com/linskybing/freelance-market/internal/config"
	"github.com/linskybing/freelance-market/internal/config/db"
	"github.com/linskybing/freelance-market/internal/cron"
	"github.com/linskybing/freelance-market/internal/mailer"
	"github.com/linskybing/freelance-market/internal/realtime"
	"github.com/linskybing/freelance-market/internal/repository"
	"github.com/linskybing/freelance-market/internal/storage"
	"github.com/linskybing/freelance-market/pkg/logger"
)

// @title Freelance Market API
// @version 1.0
// @description Job marketplace for clients and freelancers with admin moderation.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	log := logger.New(logger.Config{
		Level:  logger.ParseLevel(config.LogLevel),
		Format: config.LogFormat,
	})

	// Initialize JWT signing key
	middleware.Init()

	policy, err := config.LoadPolicy(config.PolicyFile)
	if err != nil {
		fatal("failed to load policy", err)
	}

	if err := db.Init(); err != nil {
		fatal("failed to connect database", err)
	}
	if err := db.Migrate(db.DB); err != nil {
		fatal("failed to migrate database", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := realtime.NewHub()
	deps := application.Deps{
		Publisher:          hub,
		Policy:             policy,
		ReservedAdminEmail: config.ReservedAdminEmail,
		TokenLifetime:      config.TokenLifetime,
	}

	if config.RedisAddress != "" {
		listingCache, err := cache.NewListingCache(config.RedisAddress, config.RedisPassword, config.RedisDB, config.ListingCacheTTL)
		if err != nil {
			slog.Warn("listing cache disabled", "error", err)
		} else {
			defer listingCache.Close()
			deps.Cache = listingCache
		}
	}

	if config.MinioEndpoint != "" {
		avatars, err := storage.NewAvatarStore(ctx, config.MinioEndpoint, config.MinioAccessKey, config.MinioSecretKey,
			config.MinioUseSSL, config.MinioBucket, config.MinioPublicURL)
		if err != nil {
			slog.Warn("avatar uploads disabled", "error", err)
		} else {
			deps.Avatars = avatars
		}
	}

	if config.SMTPHost != "" {
		deps.Mailer = mailer.NewSMTPMailer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword, config.SMTPFrom)
	}

	repos := repository.NewRepositories(db.DB)
	services := application.New(repos, deps)

	cron.StartCleanupTask(ctx, services.Audit, config.AuditRetentionDays)
	cron.StartReconcileTask(ctx, services.Reconcile, config.ReconcileInterval)

	if config.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(config.AllowedOrigins))
	router.Use(middleware.RequestID())
	router.Use(middleware.LoggingMiddleware(log))

	routes.RegisterRoutes(router, repos, services, hub)

	srv := &http.Server{
		Addr:              ":" + config.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("starting API server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fatal("failed to start", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}
