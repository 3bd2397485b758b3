package domain

// TrendingTopic is one ranked hashtag. Hashtag is lowercased and keeps its
// leading '#'. SentimentModifier is the average of the per-occurrence
// sentiment multipliers that contributed to the weight.
type TrendingTopic struct {
	Hashtag           string  `json:"hashtag"`
	Weight            float64 `json:"weight"`
	Frequency         int     `json:"frequency"`
	SentimentModifier float64 `json:"sentiment_modifier"`
}
