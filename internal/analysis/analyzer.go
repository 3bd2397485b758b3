package analysis

import (
	"sync"
	"time"

	"github.com/odenirdev/feedpulse/internal/domain"
)

// sentinelWindowMinutes deliberately triggers a simulated failure so
// downstream consumers can exercise their error paths.
const sentinelWindowMinutes = 123

// Analyzer sequences the analysis stages and assembles the final report.
// It is stateless and safe for concurrent use.
type Analyzer struct{}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze scores a batch of messages against the given time window. Window
// validation happens before any stage runs; both failure modes are terminal
// and produce no partial results.
//
// Stages run along the dependency graph: the meta-flag classifier and the
// sentiment analyzer only need the filtered batch, so they run concurrently;
// trending and anomaly detection need the per-message sentiments, and the
// engagement scorer needs the meta flags, so those three run concurrently
// once the first stage completes.
func (a *Analyzer) Analyze(messages []domain.Message, windowMinutes float64, now time.Time) (*domain.Report, error) {
	if windowMinutes <= 0 {
		return nil, domain.ErrInvalidTimeWindow
	}
	if windowMinutes == sentinelWindowMinutes {
		return nil, domain.ErrSimulatedFailure
	}

	filtered := ApplyWindow(messages, windowMinutes, now)

	var (
		flags        domain.MetaFlags
		distribution domain.SentimentDistribution
		sentiments   []domain.MessageSentiment
	)

	var stage sync.WaitGroup
	stage.Add(2)
	go func() {
		defer stage.Done()
		flags = InferMetaFlags(filtered)
	}()
	go func() {
		defer stage.Done()
		distribution, sentiments = AnalyzeSentiment(filtered)
	}()
	stage.Wait()

	var (
		trending   []domain.TrendingTopic
		anomalies  domain.AnomalyFlags
		engagement float64
	)

	stage.Add(3)
	go func() {
		defer stage.Done()
		trending = ComputeTrending(filtered, sentiments, now)
	}()
	go func() {
		defer stage.Done()
		anomalies = DetectAnomalies(filtered, sentiments)
	}()
	go func() {
		defer stage.Done()
		engagement = ScoreEngagement(filtered, flags)
	}()
	stage.Wait()

	return &domain.Report{
		SentimentDistribution: distribution,
		TrendingTopics:        trending,
		Anomalies:             anomalies,
		EngagementScore:       engagement,
		OperatorPresence:      flags.OperatorPresence,
		DisclosureAwareness:   flags.DisclosureAwareness,
		SignaturePattern:      flags.SignaturePattern,
		FilteredCount:         len(filtered),
	}, nil
}
