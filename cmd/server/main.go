package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel/trace"

	"facereg/internal/coordinator"
	"facereg/internal/notify"
	"facereg/internal/notify/kafka"
	"facereg/internal/platform/config"
	"facereg/internal/platform/httpserver"
	"facereg/internal/platform/logger"
	platformmetrics "facereg/internal/platform/metrics"
	"facereg/internal/platform/tracing"
	"facereg/internal/recognition/embedding"
	"facereg/internal/registry/metrics"
	"facereg/internal/registry/models"
	"facereg/internal/registry/service"
	httptransport "facereg/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal packages.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(2)
	}
	log := logger.New(cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Server, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registryMetrics := metrics.New(reg)

	tracer, err := tracing.NewProvider(ctx, cfg.Tracing)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracer.Shutdown(flushCtx); err != nil {
			log.Error("failed to flush traces", "error", err)
		}
	}()

	delegate, closeDelegate, err := buildDelegate(cfg, log)
	if err != nil {
		return err
	}
	defer closeDelegate()

	coord, err := buildCoordinator(ctx, cfg, log, registryMetrics, tracer.Tracer(), delegate)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := coord.Close(closeCtx); err != nil {
			log.Error("failed to close coordinator", "error", err)
		}
	}()

	handler := httptransport.NewHandler(coord, log)
	router := httptransport.NewRouter(handler, reg, platformmetrics.New(reg))
	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting facereg",
		"addr", cfg.Addr,
		"versions", coord.Versions(),
		"kafka", len(cfg.KafkaBrokers) > 0,
		"tracing", tracer.Enabled(),
	)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// buildCoordinator creates one empty registry per configured version, in
// configuration order.
func buildCoordinator(ctx context.Context, cfg config.Server, log *slog.Logger, m *metrics.Metrics, tracer trace.Tracer, delegate notify.Delegate) (*coordinator.Coordinator, error) {
	members := make([]coordinator.Member, 0, len(cfg.Versions))
	for _, version := range cfg.Versions {
		recognizer, err := embedding.New(version, cfg.EmbeddingDimension)
		if err != nil {
			return nil, fmt.Errorf("recognizer %s: %w", version, err)
		}
		registry, err := service.New(recognizer, cfg.Registry, nil,
			service.WithLogger(log),
			service.WithMetrics(m),
			service.WithTracer(tracer),
		)
		if err != nil {
			return nil, fmt.Errorf("registry %s: %w", version, err)
		}
		members = append(members, registry)
	}

	opts := []coordinator.Option{
		coordinator.WithDelegate(delegate),
		coordinator.WithLogger(log),
		coordinator.WithMetrics(m),
		coordinator.WithTracer(tracer),
	}
	if cfg.SkipCompatibilityCheck {
		opts = append(opts, coordinator.WithoutCompatibilityCheck())
	}
	return coordinator.New(ctx, members, opts...)
}

// buildDelegate logs every added template and, when brokers are configured,
// also publishes it to Kafka.
func buildDelegate(cfg config.Server, log *slog.Logger) (notify.Delegate, func(), error) {
	delegates := notify.Multi{notify.DelegateFunc(func(ctx context.Context, templates []models.TaggedTemplate) error {
		for _, t := range templates {
			log.InfoContext(ctx, "template added", "identifier", t.Identifier, "version", t.Version())
		}
		return nil
	})}
	if len(cfg.KafkaBrokers) == 0 {
		return delegates, func() {}, nil
	}

	publisher, err := kafka.New(cfg.KafkaBrokers, cfg.KafkaTopic, kafka.WithLogger(log))
	if err != nil {
		return nil, nil, fmt.Errorf("kafka publisher: %w", err)
	}
	return append(delegates, publisher), publisher.Close, nil
}
