package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bhavesh/backend/internal/config"
	"bhavesh/backend/internal/db"
	"bhavesh/backend/internal/handler"
	internalhttp "bhavesh/backend/internal/http"
	"bhavesh/backend/internal/ratelimit"
	"bhavesh/backend/internal/repository"
	"bhavesh/backend/internal/service"
	"bhavesh/backend/internal/storage"
	"bhavesh/backend/pkg/logger"
	"bhavesh/backend/pkg/snowflake"
)

func main() {
	cfg := config.Load()
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	if err := run(cfg); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	if cfg.JWTSecret == "" {
		return errors.New("ENQUIRY_JWT_SECRET must be set")
	}

	if err := snowflake.Init(1); err != nil {
		return err
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer database.Close()

	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		if err := db.SeedAdmin(database, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.NewMinioStore(ctx, cfg)
	if err != nil {
		return err
	}

	limiter := ratelimit.New()
	sweeper := ratelimit.NewSweeper(limiter, ratelimit.DefaultSweepInterval)
	sweeper.Start()
	defer sweeper.Stop()

	enquiryRepo := repository.NewEnquiryRepository(database)
	adminRepo := repository.NewAdminRepository(database)

	uploadService := service.NewUploadService(store)
	enquiryService := service.NewEnquiryService(enquiryRepo, uploadService, limiter, ratelimit.Config{
		MaxRequests: cfg.FormLimit.MaxRequests,
		Window:      cfg.FormLimit.Window,
	})
	authService := service.NewAuthService(adminRepo, cfg.JWTSecret, cfg.TokenTTL)

	e := internalhttp.NewRouter(
		handler.NewEnquiryHandler(enquiryService),
		handler.NewUploadHandler(uploadService),
		handler.NewAuthHandler(authService, cfg.TokenTTL),
		authService,
		limiter,
		cfg,
		cfg.StaticDir,
	)

	go func() {
		logger.Info("server listening", "addr", cfg.Addr)
		if err := e.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
