package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odenirdev/feedpulse/internal/domain"
)

func analyzeSingle(content, authorID string) domain.MessageSentiment {
	_, sentiments := AnalyzeSentiment([]domain.Message{{AuthorID: authorID, Content: content}})
	return sentiments[0]
}

func TestAnalyzeSentiment_Labels(t *testing.T) {
	tests := []struct {
		name    string
		content string
		label   domain.SentimentLabel
	}{
		{"positive word", "bom", domain.SentimentPositive},
		{"negative word", "ruim", domain.SentimentNegative},
		{"no lexicon tokens", "qualquer coisa aleatoria", domain.SentimentNeutral},
		{"negated positive", "nao gostei", domain.SentimentNegative},
		{"diacritics stripped", "ótimo", domain.SentimentPositive},
		{"uppercase", "EXCELENTE", domain.SentimentPositive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.label, analyzeSingle(tt.content, "user_test").Label)
		})
	}
}

func TestAnalyzeSentiment_ZeroLexiconTokensScoresZero(t *testing.T) {
	s := analyzeSingle("xyzabc qwerty", "user_test")
	assert.Equal(t, domain.SentimentNeutral, s.Label)
	assert.Zero(t, s.Score)
}

func TestAnalyzeSentiment_IntensifierBoostsMagnitude(t *testing.T) {
	plain := analyzeSingle("bom", "user_test")
	boosted := analyzeSingle("muito bom", "user_test")

	assert.Greater(t, boosted.Score, plain.Score)
}

func TestAnalyzeSentiment_StackedIntensifiersCompound(t *testing.T) {
	// "muito super bom" scores 1.5^2 over three lexicon tokens: 2.25/3.
	s := analyzeSingle("muito super bom", "user_test")
	assert.InDelta(t, 0.75, s.Score, 1e-9)
}

func TestAnalyzeSentiment_IntensifierResetsAfterUse(t *testing.T) {
	// The intensifier applies only to the first scored token.
	s := analyzeSingle("muito bom bom", "user_test")
	assert.InDelta(t, (1.5+1.0)/3.0, s.Score, 1e-9)
}

func TestAnalyzeSentiment_NegationWindow(t *testing.T) {
	// Distance 3 still flips the score.
	inWindow := analyzeSingle("nao top top bom", "user_test")
	assert.Negative(t, inWindow.Score)

	// Distance 4 is outside the window: the fourth token after the negation
	// keeps its sign.
	outOfWindow := analyzeSingle("nao x y z bom", "user_test")
	assert.Positive(t, outOfWindow.Score)
}

func TestAnalyzeSentiment_OperatorAuthorDoublesPositiveScores(t *testing.T) {
	regular := analyzeSingle("bom", "user_regular")
	operator := analyzeSingle("bom", "user_mbras_team")

	assert.InDelta(t, regular.Score*2, operator.Score, 1e-9)

	// Negative scores are not doubled.
	regularNeg := analyzeSingle("ruim", "user_regular")
	operatorNeg := analyzeSingle("ruim", "user_mbras_team")
	assert.InDelta(t, regularNeg.Score, operatorNeg.Score, 1e-9)
}

func TestAnalyzeSentiment_HashtagTokensExcludedFromLexicon(t *testing.T) {
	// "#bom" must not count as a lexicon token; the plain "bom" does.
	s := analyzeSingle("#bom bom", "user_test")
	assert.InDelta(t, 1.0, s.Score, 1e-9)
}

func TestAnalyzeSentiment_MetaDetection(t *testing.T) {
	tests := []struct {
		name    string
		content string
		isMeta  bool
	}{
		{"exact phrase", "teste tecnico mbras", true},
		{"accented phrase", "teste técnico mbras", true},
		{"uppercase phrase", "TESTE TECNICO MBRAS", true},
		{"embedded phrase", "isso é um teste tecnico mbras mesmo", true},
		{"unrelated", "bom dia", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isMeta, analyzeSingle(tt.content, "user_test").IsMeta)
		})
	}
}

func TestAnalyzeSentiment_DistributionSumsToHundred(t *testing.T) {
	messages := []domain.Message{
		{AuthorID: "user_a", Content: "bom"},
		{AuthorID: "user_b", Content: "ruim"},
		{AuthorID: "user_c", Content: "tanto faz"},
	}

	dist, sentiments := AnalyzeSentiment(messages)
	require.Len(t, sentiments, 3)

	assert.InDelta(t, 100, dist.Positive+dist.Negative+dist.Neutral, 1e-9)
	assert.InDelta(t, 100.0/3.0, dist.Positive, 1e-9)
}

func TestAnalyzeSentiment_MetaMessagesExcludedFromDistribution(t *testing.T) {
	messages := []domain.Message{
		{AuthorID: "user_a", Content: "bom"},
		{AuthorID: "user_b", Content: "teste tecnico mbras"},
	}

	dist, sentiments := AnalyzeSentiment(messages)
	require.True(t, sentiments[1].IsMeta)

	assert.InDelta(t, 100, dist.Positive, 1e-9)
	assert.Zero(t, dist.Negative)
	assert.Zero(t, dist.Neutral)
}

func TestAnalyzeSentiment_EmptyOrAllMetaBatch(t *testing.T) {
	expectFallback := func(dist domain.SentimentDistribution) {
		assert.Zero(t, dist.Positive)
		assert.Zero(t, dist.Negative)
		assert.InDelta(t, 100, dist.Neutral, 1e-9)
	}

	dist, sentiments := AnalyzeSentiment(nil)
	assert.Empty(t, sentiments)
	expectFallback(dist)

	dist, _ = AnalyzeSentiment([]domain.Message{
		{AuthorID: "user_a", Content: "teste tecnico mbras"},
	})
	expectFallback(dist)
}
