package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/odenirdev/feedpulse/internal/domain"
)

func TestInferMetaFlags_OperatorPresence(t *testing.T) {
	flags := InferMetaFlags([]domain.Message{
		{AuthorID: "user_regular", Content: "ola"},
		{AuthorID: "user_MBRAS_ops", Content: "ola"},
	})
	assert.True(t, flags.OperatorPresence)

	flags = InferMetaFlags([]domain.Message{{AuthorID: "user_regular", Content: "ola"}})
	assert.False(t, flags.OperatorPresence)
}

func TestInferMetaFlags_DisclosureAwareness(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"plain phrase", "estou no teste tecnico mbras agora", true},
		{"accented phrase", "Teste Técnico MBRAS", true},
		{"unrelated content", "bom dia a todos", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := InferMetaFlags([]domain.Message{{AuthorID: "user_any", Content: tt.content}})
			assert.Equal(t, tt.want, flags.DisclosureAwareness)
		})
	}
}

func TestInferMetaFlags_SignaturePattern(t *testing.T) {
	// Exactly 42 codepoints, contains "mbras".
	signature := "mbras " + strings.Repeat("x", 36)
	flags := InferMetaFlags([]domain.Message{{AuthorID: "user_any", Content: signature}})
	assert.True(t, flags.SignaturePattern)

	// 42 codepoints without the substring does not trigger.
	flags = InferMetaFlags([]domain.Message{{AuthorID: "user_any", Content: strings.Repeat("y", 42)}})
	assert.False(t, flags.SignaturePattern)

	// The substring alone at another length does not trigger.
	flags = InferMetaFlags([]domain.Message{{AuthorID: "user_any", Content: "mbras"}})
	assert.False(t, flags.SignaturePattern)
}

func TestInferMetaFlags_SignaturePatternCountsCodepoints(t *testing.T) {
	// 41 ASCII characters plus one two-byte rune: 42 codepoints, 43 bytes.
	content := "mbras" + strings.Repeat("x", 36) + "é"
	flags := InferMetaFlags([]domain.Message{{AuthorID: "user_any", Content: content}})
	assert.True(t, flags.SignaturePattern)
}

func TestInferMetaFlags_EmptyBatch(t *testing.T) {
	flags := InferMetaFlags(nil)
	assert.False(t, flags.OperatorPresence)
	assert.False(t, flags.DisclosureAwareness)
	assert.False(t, flags.SignaturePattern)
}
