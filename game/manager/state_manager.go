package manager

import (
	"log/slog"
	"time"

	"snake-arcade/stats"
	"snake-arcade/store"
)

// StateManager tracks the high score across rounds and records finished
// games. When the store fails it keeps going with the in-memory value.
type StateManager struct {
	store      store.HighScoreStore
	stats      *stats.GameStats
	highScore  int
	persistent bool
	logger     *slog.Logger
}

// NewStateManager loads the saved high score. A nil store or a failed load
// leaves the manager in memory-only mode starting from 0. history may be nil.
func NewStateManager(hs store.HighScoreStore, history *stats.GameStats, logger *slog.Logger) *StateManager {
	if logger == nil {
		logger = slog.Default()
	}
	sm := &StateManager{
		store:  hs,
		stats:  history,
		logger: logger,
	}
	if hs == nil {
		return sm
	}

	score, err := hs.LoadHighScore()
	if err != nil {
		logger.Warn("high score unavailable, continuing in memory", "err", err)
		return sm
	}
	sm.highScore = score
	sm.persistent = true
	return sm
}

func (sm *StateManager) HighScore() int {
	return sm.highScore
}

// Persistent reports whether high scores are still being written out.
func (sm *StateManager) Persistent() bool {
	return sm.persistent
}

// RecordGameOver stores the finished round and reports whether its score
// beat the previous high score.
func (sm *StateManager) RecordGameOver(id string, score int, start, end time.Time) bool {
	if sm.stats != nil {
		sm.stats.AddGame(stats.GameRecord{
			ID:        id,
			StartTime: start,
			EndTime:   end,
			Score:     score,
		})
		if err := sm.stats.Save(); err != nil {
			sm.logger.Warn("failed to save game history", "err", err)
		}
	}

	if score <= sm.highScore {
		return false
	}
	sm.highScore = score
	sm.logger.Info("new high score", "score", score, "round", id)

	if !sm.persistent {
		return true
	}
	if err := sm.store.SaveHighScore(score); err != nil {
		sm.logger.Warn("failed to save high score, continuing in memory", "err", err)
		sm.persistent = false
	}
	return true
}
