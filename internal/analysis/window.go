package analysis

import (
	"time"

	"github.com/odenirdev/feedpulse/internal/domain"
)

// clockSkewTolerance is how far into the future a timestamp may lie and still
// be accepted, to absorb producer clock drift.
const clockSkewTolerance = 5 * time.Second

// ApplyWindow returns the subsequence of messages whose timestamp parses as
// RFC3339 and falls within [now - windowMinutes, now + clockSkewTolerance].
// Messages with unparseable timestamps are silently dropped. Relative order
// of the survivors is preserved.
func ApplyWindow(messages []domain.Message, windowMinutes float64, now time.Time) []domain.Message {
	lower := now.Add(-time.Duration(windowMinutes * float64(time.Minute)))
	upper := now.Add(clockSkewTolerance)

	filtered := make([]domain.Message, 0, len(messages))
	for _, m := range messages {
		ts, err := time.Parse(time.RFC3339, m.Timestamp)
		if err != nil {
			continue
		}
		if ts.After(upper) || ts.Before(lower) {
			continue
		}
		filtered = append(filtered, m)
	}
	return filtered
}
