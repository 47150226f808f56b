package main

import (
	"flag"
	"fmt"
	"os"

	"snake-arcade/app"
	"snake-arcade/ui/ebitenui"
	"snake-arcade/ui/screen"

	"github.com/hajimehoshi/ebiten/v2"
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

	layout := screen.NewLayout(a.Session.Grid(), cfg.CellSize)
	g := ebitenui.NewGame(a.Session, a.Pilot, cfg.Autopilot, layout, a.Stats)

	w, h := layout.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Snake")
	if err := ebiten.RunGame(g); err != nil {
		logger.Error("game exited", "err", err)
		os.Exit(1)
	}
}
