package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odenirdev/feedpulse/internal/domain"
)

func mustInstant(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return ts
}

func TestApplyWindow_Boundaries(t *testing.T) {
	now := mustInstant(t, "2025-09-10T10:00:00Z")

	messages := []domain.Message{
		{AuthorID: "user_early", Content: "a", Timestamp: "2025-09-10T09:20:00Z"},
		{AuthorID: "user_inside", Content: "b", Timestamp: "2025-09-10T09:45:00Z"},
		{AuthorID: "user_skewed", Content: "c", Timestamp: "2025-09-10T10:00:04Z"},
		{AuthorID: "user_future", Content: "d", Timestamp: "2025-09-10T10:00:06Z"},
	}

	filtered := ApplyWindow(messages, 30, now)

	require.Len(t, filtered, 2)
	assert.Equal(t, "user_inside", filtered[0].AuthorID)
	assert.Equal(t, "user_skewed", filtered[1].AuthorID)
}

func TestApplyWindow_DropsUnparseableTimestamps(t *testing.T) {
	now := mustInstant(t, "2025-09-10T10:00:00Z")

	messages := []domain.Message{
		{AuthorID: "user_ok", Timestamp: "2025-09-10T09:59:00Z"},
		{AuthorID: "user_bad", Timestamp: "not-a-timestamp"},
		{AuthorID: "user_empty", Timestamp: ""},
	}

	filtered := ApplyWindow(messages, 30, now)

	require.Len(t, filtered, 1)
	assert.Equal(t, "user_ok", filtered[0].AuthorID)
}

func TestApplyWindow_PreservesOrder(t *testing.T) {
	now := mustInstant(t, "2025-09-10T10:00:00Z")

	messages := []domain.Message{
		{AuthorID: "user_c", Timestamp: "2025-09-10T09:58:00Z"},
		{AuthorID: "user_a", Timestamp: "2025-09-10T09:40:00Z"},
		{AuthorID: "user_b", Timestamp: "2025-09-10T09:50:00Z"},
	}

	filtered := ApplyWindow(messages, 30, now)

	require.Len(t, filtered, 3)
	assert.Equal(t, "user_c", filtered[0].AuthorID)
	assert.Equal(t, "user_a", filtered[1].AuthorID)
	assert.Equal(t, "user_b", filtered[2].AuthorID)
}

func TestApplyWindow_LowerBoundIsInclusive(t *testing.T) {
	now := mustInstant(t, "2025-09-10T10:00:00Z")

	messages := []domain.Message{
		{AuthorID: "user_edge", Timestamp: "2025-09-10T09:30:00Z"},
	}

	filtered := ApplyWindow(messages, 30, now)
	assert.Len(t, filtered, 1)
}
