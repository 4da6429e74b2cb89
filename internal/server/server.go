// Package server wires the HTTP surface of the covering service.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mohammed-shakir/hexgrid/internal/config"
)

func liveness() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}

// Routes assembles the router. metricsHandler may be nil when metrics
// are served from a separate listener or disabled.
func Routes(logger *slog.Logger, h *Handlers, metricsHandler http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(Recover())
	r.Use(Logging(logger))
	r.Use(Metrics())

	r.Get("/healthz", liveness())
	if metricsHandler != nil {
		r.Get("/metrics", metricsHandler.ServeHTTP)
	}

	r.Route("/v1", func(r chi.Router) {
		r.Post("/cover", h.Cover)
		r.Post("/cover/batch", h.CoverBatch)
		r.Get("/latlng", h.IndexLatLng)
		r.Route("/cells/{index}", func(r chi.Router) {
			r.Get("/", h.CellInfo)
			r.Get("/parent", h.CellParent)
			r.Get("/children", h.CellChildren)
			r.Get("/neighbors", h.CellNeighbors)
			r.Get("/position", h.CellPosition)
			r.Get("/localij", h.CellLocalIJ)
		})
	})
	return r
}

// sets up http and starts serving
func Run(ctx context.Context, cfg config.Config, logger *slog.Logger, h *Handlers, metricsHandler http.Handler) error {
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           Routes(logger, h, metricsHandler),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http listen", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return nil
	case err := <-errCh:
		return err
	}
}
