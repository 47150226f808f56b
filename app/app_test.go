package app

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"snake-arcade/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(store.DataDirEnv, dir)
	t.Setenv(SeedEnv, "")

	cfg, err := ParseConfig("snake", nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.Equal(t, 20, cfg.CellSize)
	assert.False(t, cfg.Autopilot)
	assert.Equal(t, 0, cfg.TrainEpisodes)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestParseConfigFlags(t *testing.T) {
	t.Setenv(SeedEnv, "7")
	cfg, err := ParseConfig("snake", []string{
		"-data", "/tmp/x",
		"-seed", "42",
		"-cell", "16",
		"-autopilot",
		"-train", "500",
		"-log-level", "debug",
	}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/x", cfg.DataDir)
	assert.Equal(t, uint64(42), cfg.Seed, "flag wins over env")
	assert.Equal(t, 16, cfg.CellSize)
	assert.True(t, cfg.Autopilot)
	assert.Equal(t, 500, cfg.TrainEpisodes)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestParseConfigSeedFromEnv(t *testing.T) {
	t.Setenv(SeedEnv, "99")
	cfg, err := ParseConfig("snake", []string{"-data", t.TempDir()}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, uint64(99), cfg.Seed)
}

func TestParseConfigErrors(t *testing.T) {
	t.Setenv(SeedEnv, "")
	tests := []struct {
		name string
		args []string
	}{
		{"bad seed", []string{"-seed", "abc"}},
		{"bad level", []string{"-log-level", "loud"}},
		{"tiny cell", []string{"-cell", "1"}},
		{"negative train", []string{"-train", "-3"}},
		{"unknown flag", []string{"-nope"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig("snake", append([]string{"-data", t.TempDir()}, tt.args...), io.Discard)
			assert.Error(t, err)
		})
	}
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, slog.LevelWarn)
	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewLoadsHighScore(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, store.NewFileStore(dir).SaveHighScore(80))

	a, err := New(Config{DataDir: dir, Seed: 1, CellSize: 20}, NewLogger(io.Discard, slog.LevelInfo))
	require.NoError(t, err)
	assert.Equal(t, 80, a.Session.HighScore())
	assert.NotNil(t, a.Pilot)
}

func TestNewToleratesCorruptFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stats.json"), []byte("{"), 0o644))
	require.NoError(t, os.WriteFile(QTablePath(dir), []byte("{"), 0o644))

	var logs bytes.Buffer
	a, err := New(Config{DataDir: dir, Seed: 1}, NewLogger(&logs, slog.LevelInfo))
	require.NoError(t, err)
	assert.Equal(t, 0, a.Stats.GamesPlayed())
	assert.Contains(t, logs.String(), "game history unavailable")
	assert.Contains(t, logs.String(), "q-table unavailable")
}

func TestTrainWritesQTable(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, store.NewFileStore(dir).SaveHighScore(5000))

	a, err := New(Config{DataDir: dir, Seed: 3, TrainEpisodes: 4}, NewLogger(io.Discard, slog.LevelInfo))
	require.NoError(t, err)

	sum, err := a.Train(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, sum.Episodes)

	_, err = os.Stat(QTablePath(dir))
	assert.NoError(t, err)
	hs, _ := store.NewFileStore(dir).LoadHighScore()
	assert.Equal(t, 5000, hs, "training never touches the player's high score")
	assert.Equal(t, 0, a.Stats.GamesPlayed())
}
