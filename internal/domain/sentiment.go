package domain

// SentimentLabel classifies a single message.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNegative SentimentLabel = "negative"
	SentimentNeutral  SentimentLabel = "neutral"
)

// MessageSentiment is the per-message sentiment result, positionally aligned
// with the filtered message sequence. IsMeta marks messages whose content
// matches the reserved internal test phrase; those are labeled but excluded
// from the aggregate distribution.
type MessageSentiment struct {
	Label  SentimentLabel `json:"label"`
	Score  float64        `json:"score"`
	IsMeta bool           `json:"is_meta"`
}

// SentimentDistribution holds the share of each label over non-meta messages.
// The three percentages sum to 100 (or the distribution is exactly {0, 0, 100}
// when no eligible message exists).
type SentimentDistribution struct {
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
}

// MetaFlags are the three batch-wide boolean signals derived from the filtered
// batch. They feed the engagement scorer and are returned verbatim in the report.
type MetaFlags struct {
	OperatorPresence    bool `json:"operator_presence"`
	DisclosureAwareness bool `json:"disclosure_awareness"`
	SignaturePattern    bool `json:"signature_pattern"`
}
