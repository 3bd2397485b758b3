package httpserver

import (
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/odenirdev/feedpulse/internal/domain"
)

const maxContentLength = 280

var (
	authorIDPattern  = regexp.MustCompile(`(?i)^user_[a-z0-9_]{3,}$`)
	timestampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(?:\.\d+)?Z$`)
	hashtagPattern   = regexp.MustCompile(`^#[\p{L}\p{N}_]+$`)
)

// validateMessages checks the wire shape of every message before the batch
// reaches the analysis core. Returns the first rejection message, or "".
func validateMessages(messages []domain.Message) string {
	for _, m := range messages {
		if !authorIDPattern.MatchString(m.AuthorID) {
			return "Invalid author_id"
		}
		if utf8.RuneCountInString(m.Content) > maxContentLength {
			return "Content exceeds 280 characters"
		}
		if !validTimestamp(m.Timestamp) {
			return "Invalid timestamp"
		}
		for _, tag := range m.Hashtags {
			if !hashtagPattern.MatchString(tag) {
				return "Invalid hashtags"
			}
		}
	}
	return ""
}

func validTimestamp(value string) bool {
	if !timestampPattern.MatchString(value) {
		return false
	}
	_, err := time.Parse(time.RFC3339, value)
	return err == nil
}
