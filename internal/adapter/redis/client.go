// Package redis builds the go-redis client used by the report cache,
// instrumented with metrics and circuit-breaker hooks.
package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/odenirdev/feedpulse/internal/adapter/metrics"
)

// NewClient creates a Redis client from a URL (e.g. "redis://localhost:6379")
// with the metrics and circuit-breaker hooks installed.
func NewClient(redisURL string, m *metrics.RedisMetrics) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := goredis.NewClient(opts)
	client.AddHook(&MetricsHook{metrics: m})
	client.AddHook(NewCircuitBreakerHook(m))
	return client, nil
}

// Ping verifies the Redis connection.
func Ping(ctx context.Context, client *goredis.Client) error {
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}
