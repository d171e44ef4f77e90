// Package main provides the entry point for the HTTP server.
package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	analyticsRouter "github.com/civicpulse/civicpulse/internal/analytics/router"
	calllogRouter "github.com/civicpulse/civicpulse/internal/calllog/router"
	appConfig "github.com/civicpulse/civicpulse/internal/config"
	"github.com/civicpulse/civicpulse/internal/database"
	"github.com/civicpulse/civicpulse/internal/database/migrate"
	"github.com/civicpulse/civicpulse/internal/health"
	"github.com/civicpulse/civicpulse/internal/middleware"
	"github.com/civicpulse/civicpulse/internal/upstream"
	"github.com/civicpulse/civicpulse/pkg/logger"
)

func main() {
	cfg := appConfig.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zapLogger, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	db, err := database.New()
	if err != nil {
		zapLogger.Fatalw("failed to connect to database", "error", err)
	}
	defer func() {
		if closeErr := database.Close(db); closeErr != nil {
			zapLogger.Errorw("failed to close database", "error", closeErr)
		}
	}()

	if err := migrate.Migrate(db); err != nil {
		zapLogger.Fatalw("failed to apply migrations", "error", err)
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.Recovery(zapLogger))
	r.Use(middleware.Logger(zapLogger))

	cache := upstream.NewCache(cfg.Upstream.CacheTTL)
	fetcher := upstream.NewClient(cfg.Upstream, cache, zapLogger)

	calllogRouter.RegisterRoutes(r, db, zapLogger)
	analyticsRouter.RegisterRoutes(r, fetcher, zapLogger)

	healthHandler := health.New(db, zapLogger)
	r.GET("/health", healthHandler.Check)

	server := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	zapLogger.Infow("starting server", "address", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		zapLogger.Fatalw("server stopped", "error", err)
	}
}
