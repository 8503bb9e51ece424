package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	portssvc "github.com/SscSPs/invoicely/internal/core/ports/services"
	"github.com/SscSPs/invoicely/internal/core/services"
	"github.com/SscSPs/invoicely/internal/handlers"
	"github.com/SscSPs/invoicely/internal/middleware"
	"github.com/SscSPs/invoicely/internal/platform/bootstrap"
	"github.com/SscSPs/invoicely/internal/platform/config"
	"github.com/SscSPs/invoicely/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const shutdownTimeout = 10 * time.Second

// @title Invoicely Backend API
// @version 1.0
// @description Invoices, clients, payment methods and dashboard stats for a single local user.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	level.Set(parseLevel(cfg.LogLevel))

	// amounts go over the wire as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	posthogClient := utils.InitializePosthogClient(cfg.PostHogAPIKey, logger)
	defer posthogClient.Close()

	app, err := bootstrap.New(ctx, cfg, logger, services.WithEventTracker(posthogClient))
	if err != nil {
		logger.Error("Failed to initialize application", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer app.Close()

	if cfg.OverdueSweepSchedule != "" {
		sweeper, err := services.NewOverdueSweeper(app.Services.Invoice, cfg.OverdueSweepSchedule, nil, logger)
		if err != nil {
			logger.Error("Failed to schedule overdue sweep", slog.String("error", err.Error()))
			os.Exit(1)
		}
		sweeper.Start()
		defer func() { <-sweeper.Stop().Done() }()
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Global middleware (logging, recovery, cors, rate limiting, analytics)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.RateLimit(rateLimiter),
		middleware.PosthogMiddleware(posthogClient, profileDistinctID(app.Services.Profile)),
	)

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, app.Services); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("storage", cfg.StorageDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
}

// profileDistinctID attributes analytics events to the local profile.
func profileDistinctID(profiles portssvc.ProfileReaderSvc) middleware.DistinctIDFunc {
	return func(c *gin.Context) string {
		profile, err := profiles.GetProfile(c.Request.Context())
		if err != nil || profile == nil {
			return "anonymous"
		}
		return profile.ID
	}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
