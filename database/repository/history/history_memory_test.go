package historyRepo

import (
	"context"
	"fmt"
	"testing"

	"neobook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetentionKeepsMostRecentTurns(t *testing.T) {
	repo := NewInMemoryHistoryRepo(25)
	ctx := context.Background()

	for i := 1; i <= 30; i++ {
		err := repo.Append(ctx, "s1", models.RoleUser, fmt.Sprintf("Message %d", i), nil)
		require.NoError(t, err)
	}

	turns, err := repo.Recent(ctx, "s1", 0)
	require.NoError(t, err)
	require.Len(t, turns, 25)

	// Oldest five are gone; the retained window is chronological.
	assert.Equal(t, "Message 6", turns[0].Content)
	assert.Equal(t, "Message 30", turns[24].Content)
	for i := 1; i < len(turns); i++ {
		assert.False(t, turns[i].Timestamp.Before(turns[i-1].Timestamp))
	}
}

func TestRecentHonorsSmallerLimit(t *testing.T) {
	repo := NewInMemoryHistoryRepo(25)
	ctx := context.Background()

	for i := 1; i <= 10; i++ {
		require.NoError(t, repo.Append(ctx, "s1", models.RoleUser, fmt.Sprintf("Message %d", i), nil))
	}

	turns, err := repo.Recent(ctx, "s1", 3)
	require.NoError(t, err)
	require.Len(t, turns, 3)
	assert.Equal(t, "Message 8", turns[0].Content)
	assert.Equal(t, "Message 10", turns[2].Content)
}

func TestSessionsAreIsolated(t *testing.T) {
	repo := NewInMemoryHistoryRepo(25)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, "a", models.RoleUser, "hello from a", nil))
	require.NoError(t, repo.Append(ctx, "b", models.RoleUser, "hello from b", nil))
	require.NoError(t, repo.Append(ctx, "a", models.RoleAssistant, "hi a", nil))

	turnsA, err := repo.Recent(ctx, "a", 0)
	require.NoError(t, err)
	turnsB, err := repo.Recent(ctx, "b", 0)
	require.NoError(t, err)

	assert.Len(t, turnsA, 2)
	assert.Len(t, turnsB, 1)
	assert.Equal(t, "hello from b", turnsB[0].Content)
}

func TestClearRemovesOnlyTargetSession(t *testing.T) {
	repo := NewInMemoryHistoryRepo(25)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, "a", models.RoleUser, "one", nil))
	require.NoError(t, repo.Append(ctx, "a", models.RoleUser, "two", nil))
	require.NoError(t, repo.Append(ctx, "b", models.RoleUser, "other", nil))

	removed, err := repo.Clear(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	turnsA, _ := repo.Recent(ctx, "a", 0)
	assert.Empty(t, turnsA)
	turnsB, _ := repo.Recent(ctx, "b", 0)
	assert.Len(t, turnsB, 1)
}

func TestMetadataRoundTrips(t *testing.T) {
	repo := NewInMemoryHistoryRepo(25)
	ctx := context.Background()

	meta := map[string]string{models.MetaBookingConfirmed: "true"}
	require.NoError(t, repo.Append(ctx, "s", models.RoleAssistant, "Booking Confirmed!", meta))

	turns, err := repo.Recent(ctx, "s", 0)
	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, "true", turns[0].Metadata[models.MetaBookingConfirmed])
}
