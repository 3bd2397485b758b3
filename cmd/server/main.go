package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	goredis "github.com/redis/go-redis/v9"

	"github.com/odenirdev/feedpulse/internal/adapter/httpserver"
	"github.com/odenirdev/feedpulse/internal/adapter/metrics"
	"github.com/odenirdev/feedpulse/internal/adapter/redis"
	"github.com/odenirdev/feedpulse/internal/analysis"
	"github.com/odenirdev/feedpulse/internal/app"
	"github.com/odenirdev/feedpulse/internal/cache"
	"github.com/odenirdev/feedpulse/internal/platform/config"
	"github.com/odenirdev/feedpulse/internal/platform/logging"
	"github.com/odenirdev/feedpulse/internal/platform/retry"
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupRedis(ctx context.Context, redisURL string, m *metrics.RedisMetrics) *goredis.Client {
	client, err := redis.NewClient(redisURL, m)
	if err != nil {
		slog.Error("Failed to create Redis client", "error", err)
		os.Exit(1)
	}

	policy := retry.Policy{
		MaxAttempts:    5,
		InitialBackoff: 500 * time.Millisecond,
		OnRetry: func(attempt int, err error, backoff time.Duration) {
			slog.Warn("Redis not reachable, retrying", "attempt", attempt, "backoff", backoff, "error", err)
		},
	}
	transient := func(error) bool { return true }

	if err := retry.Do(ctx, policy, transient, func() error {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		return redis.Ping(pingCtx, client)
	}); err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}

	return client
}

func runGracefulShutdown(srv *httpserver.Server, timeout time.Duration) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port)

	registry := metrics.NewRegistry()
	analysisMetrics := metrics.NewAnalysisMetrics(registry)

	var (
		store        cache.Store
		healthChecks []httpserver.HealthCheck
	)
	if cfg.RedisURL != "" {
		redisMetrics := metrics.NewRedisMetrics(registry)
		redisClient := setupRedis(context.Background(), cfg.RedisURL, redisMetrics)
		defer func() { _ = redisClient.Close() }()

		store = cache.NewRedisStore(redisClient)
		healthChecks = append(healthChecks, httpserver.HealthCheck{
			Name:  "redis",
			Check: func(ctx context.Context) error { return redis.Ping(ctx, redisClient) },
		})
		slog.Info("Report cache backed by Redis")
	} else {
		store = cache.NewMemoryStore(clock)
		slog.Info("Report cache running in memory")
	}

	analyzer := analysis.NewAnalyzer()
	appSvc := app.NewService(analyzer, store, clock, cfg.CacheTTL, analysisMetrics)

	srv := httpserver.NewServer(cfg, appSvc, clock, registry, healthChecks)

	done := runGracefulShutdown(srv, cfg.ShutdownTimeout)

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
