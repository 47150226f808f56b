// Package app wires configuration, logging and persistence into a
// playable session shared by the desktop front ends.
package app

import (
	"flag"
	"io"
	"log/slog"
	"os"
	"strconv"

	"snake-arcade/store"

	"github.com/pkg/errors"
)

// SeedEnv supplies a default RNG seed.
const SeedEnv = "SNAKE_SEED"

// Config holds the command-line settings.
type Config struct {
	DataDir       string
	Seed          uint64 // 0 means time based
	CellSize      int
	Autopilot     bool
	TrainEpisodes int
	LogLevel      slog.Level
}

// ParseConfig reads flags from args (without the program name), falling
// back to the environment for the data directory and seed.
func ParseConfig(name string, args []string, output io.Writer) (Config, error) {
	var (
		cfg      Config
		seed     string
		logLevel string
	)

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	}
	fs.StringVar(&cfg.DataDir, "data", "", "directory for high score, stats and q-table (env "+store.DataDirEnv+")")
	fs.StringVar(&seed, "seed", os.Getenv(SeedEnv), "random seed, 0 for time based (env "+SeedEnv+")")
	fs.IntVar(&cfg.CellSize, "cell", 20, "pixel size of one grid cell")
	fs.BoolVar(&cfg.Autopilot, "autopilot", false, "let the trained agent steer")
	fs.IntVar(&cfg.TrainEpisodes, "train", 0, "run N headless training episodes and exit")
	fs.StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if seed != "" {
		v, err := strconv.ParseUint(seed, 10, 64)
		if err != nil {
			return Config{}, errors.Wrapf(err, "invalid seed %q", seed)
		}
		cfg.Seed = v
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
		return Config{}, errors.Wrapf(err, "invalid log level %q", logLevel)
	}
	if cfg.CellSize < 4 {
		return Config{}, errors.Errorf("cell size %d too small", cfg.CellSize)
	}
	if cfg.TrainEpisodes < 0 {
		return Config{}, errors.Errorf("negative episode count %d", cfg.TrainEpisodes)
	}

	if cfg.DataDir == "" {
		dir, err := store.DefaultDir()
		if err != nil {
			return Config{}, err
		}
		cfg.DataDir = dir
	}
	return cfg, nil
}

// NewLogger returns a text logger on w at the given level.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
