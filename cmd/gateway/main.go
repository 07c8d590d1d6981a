package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanielPopoola/egopay-gateway/internal/config"
	"github.com/DanielPopoola/egopay-gateway/internal/gateway"
	"github.com/DanielPopoola/egopay-gateway/internal/infrastructure/soap"
	"github.com/DanielPopoola/egopay-gateway/internal/interfaces/rest/router"
	"github.com/DanielPopoola/egopay-gateway/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting gateway service",
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
		"test_mode", cfg.Egopay.TestMode,
	)

	shutdownTracing, err := soap.SetupTracing(cfg.Tracing)
	if err != nil {
		logger.Error("failed to set up tracing", "error", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	channelMetrics := metrics.NewChannelMetrics(registry)

	dialer := soap.NewInstrumentedDialer(soap.NewDialer(cfg.Soap), channelMetrics, logger)

	gw, err := gateway.New(cfg.Egopay, dialer, logger)
	if err != nil {
		logger.Error("failed to configure gateway", "error", err)
		os.Exit(1)
	}

	handler, err := router.New(router.Options{
		Gateway:  gw,
		Gatherer: registry,
		Timeout:  cfg.Server.WriteTimeout,
		Logger:   logger,
	})
	if err != nil {
		logger.Error("failed to build router", "error", err)
		os.Exit(1)
	}

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("failed to flush traces", "error", err)
	}

	logger.Info("server exited")
}
