package app

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"snake-arcade/autopilot"
	"snake-arcade/game"
	"snake-arcade/qlearning"
	"snake-arcade/stats"
	"snake-arcade/store"

	"golang.org/x/exp/rand"
)

const qTableFile = "qtable.json"

// App is a session with its persistence and autopilot attached.
type App struct {
	Config  Config
	Logger  *slog.Logger
	Session *game.Session
	Stats   *stats.GameStats
	Pilot   *autopilot.Pilot
}

// New builds the playable session. Unreadable history or q-table files are
// logged and skipped.
func New(cfg Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	history := stats.New(cfg.DataDir)
	if err := history.Load(); err != nil {
		logger.Warn("game history unavailable", "err", err)
	}

	session, err := game.NewSession(game.Options{
		Rand:   rand.New(rand.NewSource(seed)),
		Store:  store.NewFileStore(cfg.DataDir),
		Stats:  history,
		Logger: logger,
	})
	if err != nil {
		return nil, err
	}

	agent := qlearning.NewAgent(qlearning.DefaultConfig(), rand.New(rand.NewSource(seed+1)))
	if err := agent.Load(QTablePath(cfg.DataDir)); err != nil {
		logger.Warn("q-table unavailable, autopilot starts untrained", "err", err)
	}

	logger.Debug("session ready", "data", cfg.DataDir, "seed", seed, "high", session.HighScore())
	return &App{
		Config:  cfg,
		Logger:  logger,
		Session: session,
		Stats:   history,
		Pilot:   autopilot.NewPilot(agent),
	}, nil
}

// QTablePath is where the autopilot agent is stored.
func QTablePath(dir string) string {
	return filepath.Join(dir, qTableFile)
}

// Train runs the configured number of headless episodes on a separate
// in-memory session so training never touches the player's high score.
func (a *App) Train(ctx context.Context) (autopilot.Summary, error) {
	seed := a.Config.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	session, err := game.NewSession(game.Options{
		Rand:   rand.New(rand.NewSource(seed + 2)),
		Store:  store.NewMemoryStore(0),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		return autopilot.Summary{}, err
	}

	a.Logger.Info("training started", "episodes", a.Config.TrainEpisodes)
	sum, err := autopilot.Train(ctx, session, a.Pilot, a.Config.TrainEpisodes, autopilot.TrainOptions{
		SavePath:  QTablePath(a.Config.DataDir),
		SaveEvery: 100,
		LogEvery:  100,
		Logger:    a.Logger,
	})
	a.Logger.Info("training finished",
		"episodes", sum.Episodes,
		"best", sum.Best,
		"average", sum.Average,
	)
	return sum, err
}
