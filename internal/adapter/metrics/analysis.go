package metrics

import "github.com/prometheus/client_golang/prometheus"

// AnalysisMetrics tracks the feed analysis pipeline and its report cache.
type AnalysisMetrics struct {
	AnalysesTotal    *prometheus.CounterVec
	AnalysisDuration prometheus.Histogram
	BatchSize        prometheus.Histogram
	FilteredSize     prometheus.Histogram
	AnomaliesFound   *prometheus.CounterVec
	CacheHits        prometheus.Counter
	CacheMisses      prometheus.Counter
}

// NewAnalysisMetrics creates and registers analysis metrics on the given registry.
func NewAnalysisMetrics(reg prometheus.Registerer) *AnalysisMetrics {
	m := &AnalysisMetrics{
		AnalysesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "analysis",
			Name:      "total",
			Help:      "Total number of analyses by outcome.",
		}, []string{"outcome"}),
		AnalysisDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "analysis",
			Name:      "duration_seconds",
			Help:      "Duration of successful analyses in seconds.",
			Buckets:   prometheus.DefBuckets,
		}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "analysis",
			Name:      "batch_size",
			Help:      "Number of messages received per analysis request.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		FilteredSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "analysis",
			Name:      "filtered_size",
			Help:      "Number of messages surviving the time-window filter.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		AnomaliesFound: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "analysis",
			Name:      "anomalies_total",
			Help:      "Total anomalies detected, by kind.",
		}, []string{"kind"}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Report cache hits.",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Report cache misses.",
		}),
	}

	reg.MustRegister(
		m.AnalysesTotal, m.AnalysisDuration, m.BatchSize, m.FilteredSize,
		m.AnomaliesFound, m.CacheHits, m.CacheMisses,
	)
	return m
}
