// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal services
// packages.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"filmgate/internal/catalog"
	"filmgate/internal/catalog/source"
	orderStore "filmgate/internal/order/store"
	"filmgate/internal/ownership"
	"filmgate/internal/platform/config"
	"filmgate/internal/platform/httpserver"
	"filmgate/internal/platform/logger"
	"filmgate/internal/platform/metrics"
	regService "filmgate/internal/registration/service"
	regStore "filmgate/internal/registration/store"
	httptransport "filmgate/internal/transport/http"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := catalog.New(ctx, source.NewCSV(cfg.CatalogPath))
	if err != nil {
		log.Error("catalog load failed", "path", cfg.CatalogPath, "error", err)
		os.Exit(1)
	}
	log.Info("catalog loaded", "films", cat.Len(), "genres", len(cat.Genres()))

	docsHTML, err := httptransport.RenderDocs(cfg.DocsPath)
	if err != nil {
		log.Error("docs rendering failed", "path", cfg.DocsPath, "error", err)
		os.Exit(1)
	}

	m := metrics.New()
	registrations := regStore.NewInMemory()
	orders := orderStore.NewInMemory()

	router := httptransport.NewRouter(httptransport.Config{
		Logger:        log,
		Metrics:       m,
		Catalog:       cat,
		Registrations: regService.New(registrations, regService.NewRandomTokenGenerator(), m),
		Ownership:     ownership.New(registrations, cat, orders, m),
		DocsHTML:      docsHTML,
		RateLimit:     cfg.RateLimit,
	})

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting filmgate", "addr", cfg.Addr)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
