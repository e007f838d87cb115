package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file was not created")
	assert.NoError(t, store.Close())
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.SaveScore("ann", 40))
	require.NoError(t, store.Close())

	store, err = Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	score, ok, err := store.Score("ann")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 40, score)
}

func TestSaveScoreOverwrites(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.SaveScore("ann", 120))
	require.NoError(t, store.SaveScore("ann", 30))

	score, ok, err := store.Score("ann")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 30, score, "a lower score still replaces the entry")

	board, err := store.Leaderboard(10)
	require.NoError(t, err)
	assert.Len(t, board, 1)
}

func TestScoreUnknownPlayer(t *testing.T) {
	store := openTestStore(t)

	score, ok, err := store.Score("nobody")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, score)
}

func TestLeaderboardOrdering(t *testing.T) {
	store := openTestStore(t)
	for name, score := range map[string]int{
		"dave":  10,
		"carol": 50,
		"bob":   50,
		"ann":   20,
	} {
		require.NoError(t, store.SaveScore(name, score))
	}

	tests := []struct {
		name  string
		limit int
		want  []PlayerScore
	}{
		{"all", 10, []PlayerScore{{"bob", 50}, {"carol", 50}, {"ann", 20}, {"dave", 10}}},
		{"limited", 2, []PlayerScore{{"bob", 50}, {"carol", 50}}},
		{"default limit", 0, []PlayerScore{{"bob", 50}, {"carol", 50}, {"ann", 20}, {"dave", 10}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := store.Leaderboard(tc.limit)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLeaderboardEmpty(t *testing.T) {
	store := openTestStore(t)

	got, err := store.Leaderboard(5)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSaveRun(t *testing.T) {
	store := openTestStore(t)

	first, err := store.SaveRun("ann", 30, 3)
	require.NoError(t, err)
	_, err = uuid.Parse(first)
	assert.NoError(t, err, "run id should be a UUID")

	second, err := store.SaveRun("bob", 10, 1)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	runs, err := store.RecentRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, second, runs[0].ID)
	assert.Equal(t, "bob", runs[0].Player)
	assert.Equal(t, 10, runs[0].Score)
	assert.Equal(t, 1, runs[0].Lines)
	assert.Equal(t, first, runs[1].ID)
	assert.False(t, runs[1].CreatedAt.IsZero())

	limited, err := store.RecentRuns(1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestRunsDoNotTouchLeaderboard(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveRun("ann", 30, 3)
	require.NoError(t, err)

	board, err := store.Leaderboard(10)
	require.NoError(t, err)
	assert.Empty(t, board)
}
