package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/mohammed-shakir/hexgrid/internal/cache"
	"github.com/mohammed-shakir/hexgrid/internal/cache/memstore"
	"github.com/mohammed-shakir/hexgrid/internal/cache/redisstore"
	"github.com/mohammed-shakir/hexgrid/internal/config"
	"github.com/mohammed-shakir/hexgrid/internal/covering"
	"github.com/mohammed-shakir/hexgrid/internal/logger"
	"github.com/mohammed-shakir/hexgrid/internal/metrics"
	"github.com/mohammed-shakir/hexgrid/internal/observability"
	"github.com/mohammed-shakir/hexgrid/internal/server"
)

var Version = "dev"

func main() {
	os.Exit(run())
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func run() int {
	cfg := config.FromEnv()

	zl := logger.Build(logger.Config{
		Level:     cfg.LogLevel,
		Console:   strings.ToLower(os.Getenv("LOG_CONSOLE")) == "true",
		SampleN:   envInt("LOG_SAMPLE_N", 0),
		Component: "hexgridd",
	}, os.Stdout)

	appLog := logger.NewSlog(&zl)
	appLog.Info("starting hexgridd",
		"addr", cfg.Addr,
		"version", Version,
		"redis_enabled", cfg.RedisEnabled)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var metricsHandler http.Handler
	if cfg.Metrics.Enabled {
		p := metrics.Init(metrics.BuildInfo{
			Version:   os.Getenv("BUILD_VERSION"),
			Revision:  os.Getenv("BUILD_REVISION"),
			Branch:    os.Getenv("BUILD_BRANCH"),
			BuildDate: os.Getenv("BUILD_DATE"),
		})
		observability.Init(p.Registerer())
		metricsHandler = p.Handler()

		if cfg.Metrics.Addr != "" && cfg.Metrics.Addr != cfg.Addr {
			mux := http.NewServeMux()
			mux.Handle(cfg.Metrics.Path, metricsHandler)
			srv := &http.Server{
				Addr:              cfg.Metrics.Addr,
				Handler:           mux,
				ReadHeaderTimeout: 5 * time.Second,
				ReadTimeout:       10 * time.Second,
				WriteTimeout:      30 * time.Second,
				IdleTimeout:       120 * time.Second,
			}
			go func() {
				log.Printf("metrics: listening on %s%s", cfg.Metrics.Addr, cfg.Metrics.Path)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Printf("metrics server exited: %v", err)
				}
			}()
			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					log.Printf("metrics: shutdown error: %v", err)
				}
			}()
			metricsHandler = nil // served on its own listener
		}
	} else {
		observability.Init(nil)
	}

	var shared cache.Store
	if cfg.RedisEnabled {
		rc, err := redisstore.New(ctx, cfg.RedisAddr)
		if err != nil {
			appLog.Error("redis unavailable", "addr", cfg.RedisAddr, "err", err)
			return 1
		}
		defer func() { _ = rc.Close() }()
		shared = rc
	}

	svc := covering.New(memstore.New(cfg.MemCacheSize, cfg.CacheTTL), shared, &zl, covering.Config{
		TTL:       cfg.CacheTTL,
		OpTimeout: cfg.CacheOpTimeout,
		MaxCells:  cfg.MaxCoverCells,
	})

	if err := server.Run(ctx, cfg, appLog, server.NewHandlers(svc, appLog), metricsHandler); err != nil {
		appLog.Error("server exited with error", "err", err)
		return 1
	}
	appLog.Info("server stopped")
	return 0
}
