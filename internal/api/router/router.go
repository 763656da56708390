package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/plumberpro/backend/internal/http/handlers"
	httpmiddleware "github.com/plumberpro/backend/internal/http/middleware"
	"github.com/plumberpro/backend/internal/leads"
	"github.com/plumberpro/backend/internal/services"
	"github.com/plumberpro/backend/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger          *logging.Logger
	HealthHandler   *handlers.HealthHandler
	LeadsHandler    *leads.Handler
	ServicesHandler *services.Handler
	MetricsHandler  http.Handler
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(httpmiddleware.CORS)
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/", cfg.HealthHandler.Root)
	r.Get("/test", cfg.HealthHandler.Diagnostics)

	r.Route("/api", func(api chi.Router) {
		api.Post("/leads", cfg.LeadsHandler.Create)
		api.Get("/services", cfg.ServicesHandler.List)
	})

	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	return r
}
