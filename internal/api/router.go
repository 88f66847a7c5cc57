package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ledgerline/paycore/internal/api/handler"
	"github.com/ledgerline/paycore/internal/api/middleware"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Databases []handler.DatabasePinger
	Version   string
}

// NewRouter creates and configures a Chi router with all middleware and
// routes. The surface is operational only: health, metrics and version.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)
	r.Use(chimiddleware.Logger)

	healthHandler := handler.NewHealthHandler(deps.Databases, deps.Version)
	r.Get("/health", healthHandler.ServeHTTP)

	versionHandler := handler.NewVersionHandler(deps.Version)
	r.Get("/version", versionHandler.ServeHTTP)

	r.Handle("/metrics", promhttp.Handler())

	return r
}
