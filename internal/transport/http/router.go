// Package httptransport is the thin HTTP layer: request decoding, identity
// middleware, and domain error translation. Business logic stays in the
// domain services.
package httptransport

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"filmgate/internal/platform/metrics"
	"filmgate/internal/platform/middleware"
	dErrors "filmgate/pkg/domain-errors"
	"filmgate/pkg/platform/httputil"
)

// Handler carries the handlers' dependencies. It delegates to domain
// services without embedding business logic.
type Handler struct {
	logger        *slog.Logger
	catalog       CatalogService
	registrations RegistrationService
	ownership     OwnershipService
	docsHTML      []byte
}

// Config wires the router.
type Config struct {
	Logger        *slog.Logger
	Metrics       *metrics.Metrics
	Catalog       CatalogService
	Registrations RegistrationService
	Ownership     OwnershipService
	DocsHTML      []byte
	// RateLimit is requests/second per client; 0 disables limiting.
	RateLimit float64
}

// NewRouter wires all public endpoints and the shared middleware chain.
func NewRouter(cfg Config) http.Handler {
	h := &Handler{
		logger:        cfg.Logger,
		catalog:       cfg.Catalog,
		registrations: cfg.Registrations,
		ownership:     cfg.Ownership,
		docsHTML:      cfg.DocsHTML,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))
	if cfg.Metrics != nil {
		r.Use(middleware.Latency(cfg.Metrics))
	}
	r.Use(middleware.RateLimit(cfg.RateLimit, cfg.Logger))

	r.Get("/", h.handleDocs)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Post("/registrations", h.handleCreateRegistration)

	// Identity is optional on the catalog: it only adds the owned flag.
	r.Group(func(r chi.Router) {
		r.Use(WithIdentity(cfg.Ownership))
		r.Get("/films", h.handleListFilms)
		r.Get("/films/{filmID}", h.handleGetFilm)
	})

	r.Group(func(r chi.Router) {
		r.Use(RequireIdentity(cfg.Ownership, cfg.Logger))
		r.Get("/orders", h.handleListOrders)
		r.Post("/orders", h.handleCreateOrder)
		r.Get("/orders/{orderID}", h.handleGetOrder)
		r.Patch("/orders/{orderID}", h.handleChangeFormat)
	})

	// Unmatched routes and methods share one JSON 404, matching the
	// documented catch-all contract.
	r.NotFound(h.handleUnmatched)
	r.MethodNotAllowed(h.handleUnmatched)

	return r
}

func (h *Handler) handleUnmatched(w http.ResponseWriter, r *http.Request) {
	httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("Cannot %s %s", r.Method, r.URL.Path)))
}
