package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/plumberpro/backend/internal/api/router"
	"github.com/plumberpro/backend/internal/config"
	"github.com/plumberpro/backend/internal/http/handlers"
	"github.com/plumberpro/backend/internal/leads"
	"github.com/plumberpro/backend/internal/observability/metrics"
	"github.com/plumberpro/backend/internal/services"
	"github.com/plumberpro/backend/internal/store"
	"github.com/plumberpro/backend/pkg/logging"
)

func main() {
	// Load .env if present; real environments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting plumberpro backend",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	// Connect to the document store. A missing or unreachable database
	// degrades persistence but must not stop the process.
	var docStore store.Store
	mongoStore, err := store.Connect(context.Background(), cfg.DatabaseURL, cfg.DatabaseName, cfg.StoreTimeout)
	if err != nil {
		logger.Warn("document store unavailable, serving degraded", "error", err)
		docStore = store.Disconnected()
	} else {
		logger.Info("document store connected", "database", mongoStore.DatabaseName())
		docStore = mongoStore
		defer func() {
			if err := mongoStore.Close(context.Background()); err != nil {
				logger.Error("failed to close store", "error", err)
			}
		}()
	}

	reg := prometheus.NewRegistry()
	apiMetrics := metrics.NewAPIMetrics(reg)
	docStore = store.Instrument(docStore, apiMetrics)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(docStore, cfg.DatabaseURL != "", logger)
	leadsHandler := leads.NewHandler(leads.NewRepository(docStore), logger, apiMetrics)
	servicesHandler := services.NewHandler()

	// Setup router
	r := router.New(&router.Config{
		Logger:          logger,
		HealthHandler:   healthHandler,
		LeadsHandler:    leadsHandler,
		ServicesHandler: servicesHandler,
		MetricsHandler:  promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
