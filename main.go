package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"snake-arcade/app"
	"snake-arcade/game"
	"snake-arcade/ui"
	"snake-arcade/ui/screen"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
)

func main() {
	cfg, err := app.ParseConfig(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := app.NewLogger(os.Stderr, cfg.LogLevel)

	a, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("startup failed", "err", err)
		os.Exit(1)
	}

	if cfg.TrainEpisodes > 0 {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if _, err := a.Train(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("training failed", "err", err)
			os.Exit(1)
		}
		return
	}

	run(a)
}

func run(a *app.App) {
	layout := screen.NewLayout(a.Session.Grid(), a.Config.CellSize)
	w, h := layout.WindowSize()

	rl.InitWindow(int32(w), int32(h), "Snake")
	defer rl.CloseWindow()
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer(layout, a.Stats, a.Session.Snapshot())
	ctrl := &screen.Controller{
		Driver:    game.NewDriver(a.Session, renderer),
		Pilot:     a.Pilot,
		Autopilot: a.Config.Autopilot,
	}

	for !rl.WindowShouldClose() {
		now := time.Duration(rl.GetTime() * float64(time.Second))
		if !ctrl.Frame(ui.ReadInput(), now) {
			break
		}
		renderer.Draw(ctrl.Autopilot)
	}
	a.Logger.Debug("window closed", "high", a.Session.HighScore())
}
