package analysis

import (
	"math"
	"regexp"
	"strings"

	"github.com/odenirdev/feedpulse/internal/domain"
)

// tokenPattern matches hashtag tokens and plain word tokens (letters, digits,
// underscore). Hashtag tokens are recognized so they can be excluded from
// lexicon scoring.
var tokenPattern = regexp.MustCompile(`#[\p{L}\p{N}_]+|[\p{L}\p{N}_]+`)

const (
	intensifierFactor = 1.5
	negationWindow    = 3
	positiveThreshold = 0.1
	negativeThreshold = -0.1
)

// Lexicons are closed sets over case- and diacritic-normalized tokens.
var (
	positiveWords = wordSet("bom", "boa", "otimo", "excelente", "adorei", "adoro",
		"amei", "gostei", "feliz", "incrivel", "maravilhoso", "top", "positivo")
	negativeWords = wordSet("ruim", "pessimo", "odiei", "odeio", "horrivel",
		"triste", "terrivel", "negativo", "lento", "pior")
	intensifiers = wordSet("muito", "super", "extremamente", "mega", "hiper", "bem")
	negations    = wordSet("nao", "nunca", "jamais", "sem")
)

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// AnalyzeSentiment scores every message and aggregates the label distribution
// over non-meta messages. The returned slice is positionally aligned with the
// input. An empty or all-meta batch yields the {0, 0, 100} distribution.
func AnalyzeSentiment(messages []domain.Message) (domain.SentimentDistribution, []domain.MessageSentiment) {
	sentiments := make([]domain.MessageSentiment, 0, len(messages))

	var positive, negative, neutral, eligible int
	for _, m := range messages {
		s := analyzeMessage(m)
		sentiments = append(sentiments, s)

		if s.IsMeta {
			continue
		}
		eligible++
		switch s.Label {
		case domain.SentimentPositive:
			positive++
		case domain.SentimentNegative:
			negative++
		case domain.SentimentNeutral:
			neutral++
		}
	}

	if eligible == 0 {
		return domain.SentimentDistribution{Neutral: 100}, sentiments
	}

	total := float64(eligible)
	return domain.SentimentDistribution{
		Positive: float64(positive) / total * 100,
		Negative: float64(negative) / total * 100,
		Neutral:  float64(neutral) / total * 100,
	}, sentiments
}

func analyzeMessage(m domain.Message) domain.MessageSentiment {
	tokens := tokenPattern.FindAllString(m.Content, -1)
	lexiconTokens := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if strings.HasPrefix(token, "#") {
			continue
		}
		lexiconTokens = append(lexiconTokens, foldText(token))
	}

	isMeta := strings.Contains(foldText(m.Content), disclosurePhrase)
	isOperator := strings.Contains(strings.ToLower(m.AuthorID), operatorSubstring)

	var scoreSum float64
	pendingIntensifiers := 0
	// Starts far enough back that no real index falls inside the negation window.
	lastNegationIndex := -(negationWindow + 1)

	for index, token := range lexiconTokens {
		if _, ok := intensifiers[token]; ok {
			pendingIntensifiers++
			continue
		}
		if _, ok := negations[token]; ok {
			lastNegationIndex = index
			continue
		}

		var tokenScore float64
		if _, ok := positiveWords[token]; ok {
			tokenScore = 1
		}
		if _, ok := negativeWords[token]; ok {
			tokenScore = -1
		}
		if tokenScore == 0 {
			continue
		}

		if pendingIntensifiers > 0 {
			tokenScore *= math.Pow(intensifierFactor, float64(pendingIntensifiers))
			pendingIntensifiers = 0
		}

		if distance := index - lastNegationIndex; distance >= 1 && distance <= negationWindow {
			tokenScore = -tokenScore
		}

		if tokenScore > 0 && isOperator {
			tokenScore *= 2
		}

		scoreSum += tokenScore
	}

	var score float64
	if len(lexiconTokens) > 0 {
		score = scoreSum / float64(len(lexiconTokens))
	}

	label := domain.SentimentNeutral
	switch {
	case score > positiveThreshold:
		label = domain.SentimentPositive
	case score < negativeThreshold:
		label = domain.SentimentNegative
	}

	return domain.MessageSentiment{Label: label, Score: score, IsMeta: isMeta}
}
