package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v2"

	"github.com/KasumiMercury/primind-timebomb/internal/config"
	"github.com/KasumiMercury/primind-timebomb/internal/domain"
	"github.com/KasumiMercury/primind-timebomb/internal/handler"
	"github.com/KasumiMercury/primind-timebomb/internal/health"
	"github.com/KasumiMercury/primind-timebomb/internal/infra/evalrecorder"
	"github.com/KasumiMercury/primind-timebomb/internal/infra/repository"
	"github.com/KasumiMercury/primind-timebomb/internal/infra/warnsink"
	"github.com/KasumiMercury/primind-timebomb/internal/manifest"
	"github.com/KasumiMercury/primind-timebomb/internal/observability/metrics"
	"github.com/KasumiMercury/primind-timebomb/internal/observability/tracing"
	"github.com/KasumiMercury/primind-timebomb/internal/service/audit"
	"github.com/KasumiMercury/primind-timebomb/timebomb"
	"github.com/KasumiMercury/primind-timebomb/timebomb/ginguard"
)

func runServe(cctx *cli.Context) error {
	if code := serve(cctx.Context, cctx.String("manifest")); code != 0 {
		return cli.Exit("server exited with errors", code)
	}
	return nil
}

func serve(parent context.Context, manifestPath string) int {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}
	if manifestPath != "" {
		cfg.Timebomb.ManifestPath = manifestPath
	}

	obs, err := initObservability(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	manifestLoadedAt := time.Now()
	m, err := manifest.LoadFromYAML(cfg.Timebomb.ManifestPath)
	if err != nil {
		slog.Error("failed to load deadline manifest",
			slog.String("path", cfg.Timebomb.ManifestPath),
			slog.String("error", err.Error()),
		)
		return 1
	}

	guardMetrics, err := metrics.NewGuardMetrics()
	if err != nil {
		slog.Error("failed to initialize guard metrics", slog.String("error", err.Error()))
		return 1
	}

	// Initialize evaluation recorder (InfluxDB for local, BigQuery for gcloud)
	recorder, err := evalrecorder.NewRecorder(ctx, evalrecorder.LoadConfig())
	if err != nil {
		slog.Error("failed to initialize evaluation recorder", slog.String("error", err.Error()))
		return 1
	}
	defer closeRecorder(recorder)

	redisClient, err := initRedis(ctx, cfg.Redis)
	if err != nil {
		slog.Error("failed to initialize redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}
	if redisClient != nil {
		defer func() {
			if err := redisClient.Close(); err != nil {
				slog.Warn("failed to close redis client", slog.String("error", err.Error()))
			}
		}()
	}

	guard := timebomb.NewGuard(
		timebomb.WithLeadTime(cfg.Timebomb.LeadTime),
		timebomb.WithSink(newWarningSink(redisClient, cfg.Timebomb.WarnDedupInterval)),
		timebomb.WithObserver(guardMetrics),
		timebomb.WithObserver(tracing.EvaluationObserver{}),
	)

	var windows domain.WindowRepository
	if redisClient != nil {
		windows = repository.NewWindowRepository(redisClient)
	}

	auditService := audit.NewService(timebomb.SystemClock{}, recorder, windows, guardMetrics)
	deadlineHandler := handler.NewDeadlineHandler(auditService, m)

	if cfg.Timebomb.AuditInterval > 0 {
		go runAuditLoop(ctx, cfg.Timebomb.AuditInterval, func(ctx context.Context) error {
			_, err := auditService.Evaluate(ctx, m.Resolve())
			return err
		})
	}

	r := gin.New()
	r.Use(tracing.GinMiddleware("/health", "/health/live", "/health/ready"))
	r.Use(gin.Recovery())

	var checkerClient redis.UniversalClient
	if redisClient != nil {
		checkerClient = redisClient
	}
	healthChecker := health.NewChecker(checkerClient, Version, health.ManifestInfo{
		Path:      cfg.Timebomb.ManifestPath,
		Deadlines: len(m.Deadlines),
		LoadedAt:  manifestLoadedAt,
	})
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	v1 := r.Group("/api/v1")
	{
		v1.GET("/deadlines", deadlineHandler.HandleList)
		v1.GET("/deadlines/:name", deadlineHandler.HandleGet)
	}

	legacy := r.Group("/deadlines")
	if cfg.Timebomb.LegacyGuarded() {
		legacy.Use(ginguard.New(guard).SlowAfter(
			cfg.Timebomb.LegacySunset,
			timebomb.Linear(cfg.Timebomb.LegacyDelayMsPerDay),
		))
	}
	{
		legacy.GET("", deadlineHandler.HandleList)
		legacy.GET("/:name", deadlineHandler.HandleGet)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.String("manifest", cfg.Timebomb.ManifestPath),
			slog.Int("deadlines", len(m.Deadlines)),
			slog.Bool("legacy_guarded", cfg.Timebomb.LegacyGuarded()),
			slog.Bool("redis_enabled", redisClient != nil),
		)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}

// initRedis returns a nil client when Redis is not configured.
func initRedis(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	if !cfg.Enabled() {
		slog.Info("REDIS_ADDR not set, warning de-duplication is process-local")
		return nil, nil
	}

	opts := &redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	if cfg.TLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(opts)

	if err := redisotel.InstrumentTracing(client); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("instrument redis tracing: %w", err)
	}
	if err := redisotel.InstrumentMetrics(client); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("instrument redis metrics: %w", err)
	}
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	slog.Info("redis connected", slog.String("addr", cfg.Addr))

	return client, nil
}

func newWarningSink(client *redis.Client, interval time.Duration) timebomb.Sink {
	next := timebomb.LogSink(nil)
	if client != nil {
		return warnsink.NewRedisSink(client, interval, next).Sink()
	}
	return warnsink.NewMemorySink(interval, next).Sink()
}
