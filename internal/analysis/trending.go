package analysis

import (
	"math"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/odenirdev/feedpulse/internal/domain"
)

const (
	trendingLimit       = 5
	longHashtagLength   = 8
	minimumMinutesSince = 0.01
)

func sentimentModifierFor(label domain.SentimentLabel) float64 {
	switch label {
	case domain.SentimentPositive:
		return 1.2
	case domain.SentimentNegative:
		return 0.8
	default:
		return 1.0
	}
}

type hashtagStats struct {
	weight       float64
	frequency    int
	sentimentSum float64
}

// ComputeTrending ranks hashtags across the batch. Each occurrence is weighted
// by recency, the message's sentiment label, and a dampening factor for long
// tags; the top five tags win. Sentiments are aligned positionally with the
// messages; a missing entry defaults to neutral.
func ComputeTrending(messages []domain.Message, sentiments []domain.MessageSentiment, now time.Time) []domain.TrendingTopic {
	byHashtag := make(map[string]*hashtagStats)

	for i, m := range messages {
		if len(m.Hashtags) == 0 {
			continue
		}
		ts, err := time.Parse(time.RFC3339, m.Timestamp)
		if err != nil {
			continue
		}

		minutesSince := now.Sub(ts).Minutes()
		if minutesSince < minimumMinutesSince {
			minutesSince = minimumMinutesSince
		}
		temporalWeight := 1 + 1/minutesSince

		label := domain.SentimentNeutral
		if i < len(sentiments) {
			label = sentiments[i].Label
		}
		modifier := sentimentModifierFor(label)

		for _, raw := range m.Hashtags {
			if !strings.HasPrefix(raw, "#") {
				continue
			}
			hashtag := strings.ToLower(raw)

			lengthFactor := 1.0
			if bodyLength := utf8.RuneCountInString(hashtag) - 1; bodyLength > longHashtagLength {
				lengthFactor = math.Log10(float64(bodyLength)) / math.Log10(longHashtagLength)
			}

			stats := byHashtag[hashtag]
			if stats == nil {
				stats = &hashtagStats{}
				byHashtag[hashtag] = stats
			}
			stats.weight += temporalWeight * modifier * lengthFactor
			stats.frequency++
			stats.sentimentSum += modifier
		}
	}

	topics := make([]domain.TrendingTopic, 0, len(byHashtag))
	for hashtag, stats := range byHashtag {
		topics = append(topics, domain.TrendingTopic{
			Hashtag:           hashtag,
			Weight:            stats.weight,
			Frequency:         stats.frequency,
			SentimentModifier: stats.sentimentSum / float64(stats.frequency),
		})
	}

	sort.Slice(topics, func(i, j int) bool {
		a, b := topics[i], topics[j]
		if a.Weight != b.Weight {
			return a.Weight > b.Weight
		}
		if a.Frequency != b.Frequency {
			return a.Frequency > b.Frequency
		}
		if a.SentimentModifier != b.SentimentModifier {
			return a.SentimentModifier > b.SentimentModifier
		}
		return a.Hashtag < b.Hashtag
	})

	if len(topics) > trendingLimit {
		topics = topics[:trendingLimit]
	}
	return topics
}
