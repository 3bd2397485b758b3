// Package cache stores computed analysis reports for a short TTL so retried
// identical batches skip recomputation. Only derived reports are cached,
// never the raw messages.
package cache

import (
	"context"
	"time"

	"github.com/odenirdev/feedpulse/internal/domain"
)

// Store is a TTL-bounded report cache. Get returns (nil, false, nil) on a
// miss; errors are reserved for backend failures so callers can degrade to
// a miss.
type Store interface {
	Get(ctx context.Context, key string) (*domain.Report, bool, error)
	Set(ctx context.Context, key string, report *domain.Report, ttl time.Duration) error
}
