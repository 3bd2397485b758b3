package analysis

import (
	"strings"
	"unicode/utf8"

	"github.com/odenirdev/feedpulse/internal/domain"
)

const (
	// operatorSubstring marks internal operator accounts when found in an author id.
	operatorSubstring = "mbras"
	// disclosurePhrase is the reserved internal test phrase, matched against
	// diacritic-stripped, case-folded content.
	disclosurePhrase = "teste tecnico mbras"
	// signatureLength is the exact content length (in codepoints) of the
	// signature pattern.
	signatureLength = 42
)

// InferMetaFlags derives the three batch-wide signals from the filtered batch.
// Each flag is true if any single message satisfies its predicate.
func InferMetaFlags(messages []domain.Message) domain.MetaFlags {
	var flags domain.MetaFlags
	for _, m := range messages {
		if strings.Contains(strings.ToLower(m.AuthorID), operatorSubstring) {
			flags.OperatorPresence = true
		}
		if strings.Contains(foldText(m.Content), disclosurePhrase) {
			flags.DisclosureAwareness = true
		}
		if utf8.RuneCountInString(m.Content) == signatureLength &&
			strings.Contains(strings.ToLower(m.Content), operatorSubstring) {
			flags.SignaturePattern = true
		}
	}
	return flags
}
