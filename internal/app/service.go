package app

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/singleflight"

	"github.com/odenirdev/feedpulse/internal/adapter/metrics"
	"github.com/odenirdev/feedpulse/internal/cache"
	"github.com/odenirdev/feedpulse/internal/domain"
)

// Analyzer is the analysis core as seen by the application layer.
type Analyzer interface {
	Analyze(messages []domain.Message, windowMinutes float64, now time.Time) (*domain.Report, error)
}

// Service runs feed analyses, caching reports and collapsing concurrent
// identical requests. Core failures bypass the cache entirely.
type Service struct {
	analyzer Analyzer
	store    cache.Store
	clock    clockwork.Clock
	ttl      time.Duration
	metrics  *metrics.AnalysisMetrics
	group    singleflight.Group
}

func NewService(analyzer Analyzer, store cache.Store, clock clockwork.Clock, ttl time.Duration, m *metrics.AnalysisMetrics) *Service {
	return &Service{
		analyzer: analyzer,
		store:    store,
		clock:    clock,
		ttl:      ttl,
		metrics:  m,
	}
}

// Analyze scores a batch. Identical batches requested concurrently share one
// computation, and a batch recomputed within the cache TTL is served from the
// cache. Cache failures degrade to a miss; they never fail the request.
func (s *Service) Analyze(ctx context.Context, messages []domain.Message, windowMinutes float64) (*domain.Report, error) {
	key := requestKey(messages, windowMinutes)

	value, err, _ := s.group.Do(key, func() (any, error) {
		if report, ok := s.cacheGet(ctx, key); ok {
			s.metrics.CacheHits.Inc()
			s.metrics.AnalysesTotal.WithLabelValues("cache_hit").Inc()
			return report, nil
		}
		s.metrics.CacheMisses.Inc()

		start := s.clock.Now()
		report, err := s.analyzer.Analyze(messages, windowMinutes, s.clock.Now().UTC())
		if err != nil {
			s.metrics.AnalysesTotal.WithLabelValues("failure").Inc()
			return nil, err
		}

		s.metrics.AnalysesTotal.WithLabelValues("success").Inc()
		s.metrics.AnalysisDuration.Observe(s.clock.Since(start).Seconds())
		s.metrics.BatchSize.Observe(float64(len(messages)))
		s.metrics.FilteredSize.Observe(float64(report.FilteredCount))
		s.observeAnomalies(report)
		s.cacheSet(ctx, key, report)

		return report, nil
	})
	if err != nil {
		return nil, err
	}
	return value.(*domain.Report), nil
}

func (s *Service) observeAnomalies(report *domain.Report) {
	s.metrics.AnomaliesFound.WithLabelValues("burst").Add(float64(len(report.Anomalies.BurstUsers)))
	s.metrics.AnomaliesFound.WithLabelValues("alternating").Add(float64(len(report.Anomalies.AlternatingUsers)))
	s.metrics.AnomaliesFound.WithLabelValues("synchronized").Add(float64(len(report.Anomalies.SynchronizedClusters)))
}

func (s *Service) cacheGet(ctx context.Context, key string) (*domain.Report, bool) {
	report, found, err := s.store.Get(ctx, key)
	if err != nil {
		slog.WarnContext(ctx, "Report cache read failed, treating as miss", "error", err)
		return nil, false
	}
	return report, found
}

func (s *Service) cacheSet(ctx context.Context, key string, report *domain.Report) {
	if err := s.store.Set(ctx, key, report, s.ttl); err != nil {
		slog.WarnContext(ctx, "Report cache write failed", "error", err)
	}
}

// requestKey derives a stable cache key from the window and the canonical
// JSON encoding of the batch.
func requestKey(messages []domain.Message, windowMinutes float64) string {
	h := sha256.New()
	fmt.Fprintf(h, "window:%g;", windowMinutes)

	enc := json.NewEncoder(h)
	for _, m := range messages {
		// Writing to a hash never fails.
		_ = enc.Encode(m)
	}

	return "feedpulse:report:" + hex.EncodeToString(h.Sum(nil))
}
