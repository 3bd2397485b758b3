package analysis

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldText decomposes value (NFKD), strips combining marks and lowercases the
// result, e.g. "Ótimo" -> "otimo". A fresh transformer chain is built per call
// because transformers carry internal state and are not safe to share.
func foldText(value string) string {
	stripper := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.M)))
	folded, _, err := transform.String(stripper, value)
	if err != nil {
		folded = value
	}
	return strings.ToLower(folded)
}

// decompose applies NFKD decomposition without stripping marks or case-folding.
func decompose(value string) string {
	return norm.NFKD.String(value)
}

func isASCII(value string) bool {
	for i := 0; i < len(value); i++ {
		if value[i] > unicode.MaxASCII {
			return false
		}
	}
	return true
}
