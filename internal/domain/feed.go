package domain

// Message is a single social-feed message as received from the boundary layer.
// Messages are immutable once received; the analysis core only reads them.
type Message struct {
	AuthorID  string   `json:"author_id"`
	Content   string   `json:"content"`
	Timestamp string   `json:"timestamp"`
	Reactions int      `json:"reactions,omitempty"`
	Shares    int      `json:"shares,omitempty"`
	Views     int      `json:"views,omitempty"`
	Hashtags  []string `json:"hashtags,omitempty"`
}
