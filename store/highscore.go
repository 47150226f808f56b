// Package store persists the single high-score value.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const (
	appDirName    = "snake-arcade"
	highScoreFile = "highscore.json"

	// DataDirEnv overrides the directory used for all persisted files.
	DataDirEnv = "SNAKE_DATA_DIR"
)

var ErrNegativeScore = errors.New("score must be non-negative")

// HighScoreStore is a get/set cell for the best score.
type HighScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

type highScoreRecord struct {
	HighScore int `json:"highScore"`
}

// FileStore keeps the high score as JSON inside a directory.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Path is the location of the high-score file.
func (s *FileStore) Path() string {
	return filepath.Join(s.dir, highScoreFile)
}

// LoadHighScore returns 0 when nothing has been saved yet.
func (s *FileStore) LoadHighScore() (int, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, errors.Wrap(err, "read high score")
	}

	var rec highScoreRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return 0, errors.Wrapf(err, "decode %s", s.Path())
	}
	if rec.HighScore < 0 {
		return 0, errors.Wrapf(ErrNegativeScore, "decode %s", s.Path())
	}
	return rec.HighScore, nil
}

// SaveHighScore writes through a temp file and rename so a crash never
// leaves a truncated file behind.
func (s *FileStore) SaveHighScore(score int) error {
	if score < 0 {
		return ErrNegativeScore
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errors.Wrap(err, "create data directory")
	}

	data, err := json.MarshalIndent(highScoreRecord{HighScore: score}, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode high score")
	}

	tmp := s.Path() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrap(err, "write high score")
	}
	return errors.Wrap(os.Rename(tmp, s.Path()), "replace high score")
}

// MemoryStore keeps the high score in process memory only.
type MemoryStore struct {
	score int
}

func NewMemoryStore(initial int) *MemoryStore {
	return &MemoryStore{score: initial}
}

func (s *MemoryStore) LoadHighScore() (int, error) {
	return s.score, nil
}

func (s *MemoryStore) SaveHighScore(score int) error {
	if score < 0 {
		return ErrNegativeScore
	}
	s.score = score
	return nil
}

// DefaultDir resolves the data directory: $SNAKE_DATA_DIR if set,
// otherwise <user config dir>/snake-arcade.
func DefaultDir() (string, error) {
	if env := os.Getenv(DataDirEnv); env != "" {
		return env, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "locate user config dir")
	}
	return filepath.Join(base, appDirName), nil
}
