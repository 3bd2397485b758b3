package domain

// Report is the aggregate result of analyzing one feed batch.
type Report struct {
	SentimentDistribution SentimentDistribution `json:"sentiment_distribution"`
	TrendingTopics        []TrendingTopic       `json:"trending_topics"`
	Anomalies             AnomalyFlags          `json:"anomalies"`
	EngagementScore       float64               `json:"engagement_score"`
	OperatorPresence      bool                  `json:"operator_presence"`
	DisclosureAwareness   bool                  `json:"disclosure_awareness"`
	SignaturePattern      bool                  `json:"signature_pattern"`

	// FilteredCount is the number of messages that survived the time-window
	// filter. Internal bookkeeping, not part of the response body.
	FilteredCount int `json:"-"`
}
