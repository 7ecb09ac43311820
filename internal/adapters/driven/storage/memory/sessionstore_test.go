package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapguess/mapguess-cli/internal/core/domain"
)

func record(id string, correct int, finished time.Time) domain.SessionRecord {
	return domain.SessionRecord{
		ID:         id,
		Difficulty: domain.DifficultyNormal,
		Region:     domain.RegionWorld,
		Correct:    correct,
		Wrong:      1,
		Skipped:    1,
		StartedAt:  finished.Add(-time.Minute),
		FinishedAt: finished,
	}
}

func TestSessionStore_SaveAndGet(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	rec := record("s1", 5, time.Now().UTC())
	require.NoError(t, store.Save(ctx, rec))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 5, got.Correct)
	assert.Equal(t, domain.RegionWorld, got.Region)

	_, err = store.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSessionStore_List_MostRecentFirst(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, store.Save(ctx, record("old", 1, base)))
	require.NoError(t, store.Save(ctx, record("new", 2, base.Add(time.Hour))))
	require.NoError(t, store.Save(ctx, record("mid", 3, base.Add(time.Minute))))

	records, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "new", records[0].ID)
	assert.Equal(t, "mid", records[1].ID)
	assert.Equal(t, "old", records[2].ID)

	limited, err := store.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestSessionStore_Summary(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, store.Save(ctx, record("s1", 5, base)))
	require.NoError(t, store.Save(ctx, record("s2", 9, base.Add(time.Hour))))

	summary, err := store.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.GamesPlayed)
	assert.Equal(t, 18, summary.TotalRounds) // (5+1+1) + (9+1+1)
	assert.Equal(t, 14, summary.TotalCorrect)
	assert.Equal(t, 9, summary.BestCorrect)
	assert.Equal(t, base.Add(time.Hour), summary.LastPlayed)
}

func TestSessionStore_Summary_Empty(t *testing.T) {
	store := NewSessionStore()

	summary, err := store.Summary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, summary.GamesPlayed)
	assert.Zero(t, summary.Accuracy())
}
