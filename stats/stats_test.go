package stats

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(score int, secs int) GameRecord {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return GameRecord{
		ID:        fmt.Sprintf("game-%d", score),
		StartTime: start,
		EndTime:   start.Add(time.Duration(secs) * time.Second),
		Score:     score,
	}
}

func TestAggregates(t *testing.T) {
	s := New("")
	assert.Equal(t, 0, s.GamesPlayed())
	assert.Equal(t, 0.0, s.AverageScore())
	assert.Equal(t, time.Duration(0), s.AverageDuration())

	s.AddGame(record(10, 10))
	s.AddGame(record(40, 30))
	s.AddGame(record(100, 50))

	assert.Equal(t, 3, s.GamesPlayed())
	assert.Equal(t, 50.0, s.AverageScore())
	assert.Equal(t, 100, s.MaxScore())
	assert.Equal(t, 30*time.Second, s.AverageDuration())
	assert.Equal(t, []int{40, 100}, s.RecentScores(2))
	assert.Equal(t, []int{10, 40, 100}, s.RecentScores(10))
}

func TestHistoryIsCapped(t *testing.T) {
	s := New("")
	for i := 0; i < MaxRecords+15; i++ {
		s.AddGame(record(i, 1))
	}

	games := s.Games()
	require.Len(t, games, MaxRecords)
	assert.Equal(t, 15, games[0].Score, "oldest records dropped first")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	s.AddGame(record(20, 5))
	s.AddGame(record(70, 9))
	require.NoError(t, s.Save())

	loaded := New(dir)
	require.NoError(t, loaded.Load())
	assert.Equal(t, s.Games(), loaded.Games())
}

func TestLoadMissingFile(t *testing.T) {
	s := New(t.TempDir())
	require.NoError(t, s.Load())
	assert.Empty(t, s.Games())
}

func TestInMemorySaveIsNoop(t *testing.T) {
	s := New("")
	s.AddGame(record(5, 1))
	assert.NoError(t, s.Save())
	assert.NoError(t, s.Load())
	assert.Equal(t, 1, s.GamesPlayed())
}
