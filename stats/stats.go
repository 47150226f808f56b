// Package stats keeps the history of finished games.
package stats

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pkg/errors"
)

const (
	StatsFile  = "stats.json"
	MaxRecords = 200 // oldest records are dropped past this
)

// GameRecord is one finished game.
type GameRecord struct {
	ID        string    `json:"id"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Score     int       `json:"score"`
}

// Duration is the wall-clock length of the game.
func (r GameRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// GameStats holds the recorded games and aggregates over them.
type GameStats struct {
	games []GameRecord
	path  string
	mutex sync.RWMutex
}

// New returns empty stats saved to dir/stats.json. An empty dir keeps
// the history in memory only.
func New(dir string) *GameStats {
	s := &GameStats{games: make([]GameRecord, 0)}
	if dir != "" {
		s.path = filepath.Join(dir, StatsFile)
	}
	return s
}

// AddGame appends a finished game, dropping the oldest past MaxRecords.
func (s *GameStats) AddGame(rec GameRecord) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.games = append(s.games, rec)
	if over := len(s.games) - MaxRecords; over > 0 {
		s.games = append(s.games[:0], s.games[over:]...)
	}
}

// Games returns a copy of the history, oldest first.
func (s *GameStats) Games() []GameRecord {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]GameRecord, len(s.games))
	copy(out, s.games)
	return out
}

func (s *GameStats) GamesPlayed() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.games)
}

func (s *GameStats) AverageScore() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.games) == 0 {
		return 0
	}
	total := 0
	for _, g := range s.games {
		total += g.Score
	}
	return float64(total) / float64(len(s.games))
}

func (s *GameStats) MaxScore() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	best := 0
	for _, g := range s.games {
		if g.Score > best {
			best = g.Score
		}
	}
	return best
}

func (s *GameStats) AverageDuration() time.Duration {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.games) == 0 {
		return 0
	}
	var total time.Duration
	for _, g := range s.games {
		total += g.Duration()
	}
	return total / time.Duration(len(s.games))
}

// RecentScores returns up to n of the latest scores, oldest first.
func (s *GameStats) RecentScores(n int) []int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	start := len(s.games) - n
	if start < 0 {
		start = 0
	}
	scores := make([]int, 0, len(s.games)-start)
	for _, g := range s.games[start:] {
		scores = append(scores, g.Score)
	}
	return scores
}

// Save writes the history as JSON. It is a no-op for in-memory stats.
func (s *GameStats) Save() error {
	if s.path == "" {
		return nil
	}

	s.mutex.RLock()
	data, err := json.MarshalIndent(s.games, "", "  ")
	s.mutex.RUnlock()
	if err != nil {
		return errors.Wrap(err, "marshal stats")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrap(err, "create data directory")
	}
	return errors.Wrap(os.WriteFile(s.path, data, 0o644), "write stats file")
}

// Load replaces the history with the saved file. A missing file leaves
// the history empty.
func (s *GameStats) Load() error {
	if s.path == "" {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(err, "read stats file")
	}

	var games []GameRecord
	if err := json.Unmarshal(data, &games); err != nil {
		return errors.Wrapf(err, "decode %s", s.path)
	}
	if len(games) > MaxRecords {
		games = games[len(games)-MaxRecords:]
	}

	s.mutex.Lock()
	s.games = games
	s.mutex.Unlock()
	return nil
}
