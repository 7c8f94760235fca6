package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/greethub/greeter/internal/api"
	"github.com/greethub/greeter/internal/config"
	"github.com/greethub/greeter/internal/metrics"
	"github.com/greethub/greeter/internal/ratelimiter"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	// ---- configuration ----
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	// ---- core dependencies ----
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)
	limiter := ratelimiter.New(cfg.RateLimit, cfg.RateBurst)

	// ---- HTTP servers ----
	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      api.NewRouter(logger, m, limiter),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	opsSrv := &http.Server{
		Addr:         ":" + cfg.OpsPort,
		Handler:      api.NewOpsRouter(reg),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	for _, s := range []*http.Server{srv, opsSrv} {
		go func(s *http.Server) {
			logger.Info("server starting", zap.String("addr", s.Addr))
			if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Fatal("server error", zap.String("addr", s.Addr), zap.Error(err))
			}
		}(s)
	}

	// ---- graceful shutdown ----
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	// Public listener first so the ops endpoints stay scrapeable while it drains.
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}
	if err := opsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("ops server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped cleanly")
}
