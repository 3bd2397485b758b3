package analysis

import (
	"sort"
	"time"

	"github.com/odenirdev/feedpulse/internal/domain"
)

const (
	burstWindow       = 5 * time.Minute
	burstThreshold    = 10 // a window holding more than this flags the author
	alternatingMinRun = 10
	clusterWindow     = 4 * time.Second
	clusterMinSize    = 3
)

type stampedMessage struct {
	ts    time.Time
	raw   string
	label domain.SentimentLabel
}

// DetectAnomalies flags per-author bursts, per-author alternating sentiment
// runs, and cross-author synchronized clusters. Sentiments are aligned
// positionally with the messages; a missing entry defaults to neutral.
// Messages with unparseable timestamps are skipped.
func DetectAnomalies(messages []domain.Message, sentiments []domain.MessageSentiment) domain.AnomalyFlags {
	flags := domain.AnomalyFlags{
		BurstUsers:           []string{},
		AlternatingUsers:     []string{},
		SynchronizedClusters: []string{},
	}

	byAuthor := make(map[string][]stampedMessage)
	authorOrder := make([]string, 0)
	pooled := make([]stampedMessage, 0, len(messages))

	for i, m := range messages {
		ts, err := time.Parse(time.RFC3339, m.Timestamp)
		if err != nil {
			continue
		}
		label := domain.SentimentNeutral
		if i < len(sentiments) {
			label = sentiments[i].Label
		}
		entry := stampedMessage{ts: ts, raw: m.Timestamp, label: label}

		if _, seen := byAuthor[m.AuthorID]; !seen {
			authorOrder = append(authorOrder, m.AuthorID)
		}
		byAuthor[m.AuthorID] = append(byAuthor[m.AuthorID], entry)
		pooled = append(pooled, entry)
	}

	for _, author := range authorOrder {
		entries := byAuthor[author]
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].ts.Before(entries[j].ts) })

		if hasBurst(entries) {
			flags.BurstUsers = append(flags.BurstUsers, author)
		}
		if hasAlternatingRun(entries) {
			flags.AlternatingUsers = append(flags.AlternatingUsers, author)
		}
	}

	flags.SynchronizedClusters = detectSynchronizedClusters(pooled)
	return flags
}

// hasBurst slides a window over the author's chronologically sorted messages
// and reports whether any 5-minute span ever holds more than burstThreshold
// of them. Monotonic two-pointer scan, linear per author.
func hasBurst(entries []stampedMessage) bool {
	start := 0
	for end := range entries {
		for entries[end].ts.Sub(entries[start].ts) > burstWindow {
			start++
		}
		if end-start+1 > burstThreshold {
			return true
		}
	}
	return false
}

// hasAlternatingRun looks at the author's non-neutral labels in time order and
// reports whether the longest strictly alternating run reaches the minimum.
// A repeated consecutive label resets the run to 1.
func hasAlternatingRun(entries []stampedMessage) bool {
	sequence := make([]domain.SentimentLabel, 0, len(entries))
	for _, e := range entries {
		if e.label != domain.SentimentNeutral {
			sequence = append(sequence, e.label)
		}
	}
	if len(sequence) < alternatingMinRun {
		return false
	}

	run, maxRun := 1, 1
	for i := 1; i < len(sequence); i++ {
		if sequence[i] != sequence[i-1] {
			run++
		} else {
			run = 1
		}
		if run > maxRun {
			maxRun = run
		}
	}
	return maxRun >= alternatingMinRun
}

// detectSynchronizedClusters pools all messages regardless of author, sorts
// them chronologically and slides a 4-second window; whenever the window holds
// at least clusterMinSize messages, the window's earliest raw timestamp string
// is recorded as the cluster representative. Representatives are de-duplicated
// and kept in first-seen order.
func detectSynchronizedClusters(pooled []stampedMessage) []string {
	sort.SliceStable(pooled, func(i, j int) bool { return pooled[i].ts.Before(pooled[j].ts) })

	representatives := []string{}
	seen := make(map[string]struct{})

	start := 0
	for end := range pooled {
		for pooled[end].ts.Sub(pooled[start].ts) > clusterWindow {
			start++
		}
		if end-start+1 >= clusterMinSize {
			representative := pooled[start].raw
			if _, dup := seen[representative]; !dup {
				seen[representative] = struct{}{}
				representatives = append(representatives, representative)
			}
		}
	}
	return representatives
}
