// Package ebitenui is the ebiten front end.
package ebitenui

import (
	"image/color"
	"time"

	"snake-arcade/autopilot"
	"snake-arcade/game"
	"snake-arcade/game/types"
	"snake-arcade/stats"
	"snake-arcade/ui/screen"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const lineHeight = 18

var (
	boardColor = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	headColor  = color.RGBA{R: 120, G: 230, B: 120, A: 255}
	bodyColor  = color.RGBA{R: 40, G: 170, B: 60, A: 255}
	foodColor  = color.RGBA{R: 230, G: 41, B: 55, A: 255}
	chartColor = color.RGBA{R: 0, G: 180, B: 0, A: 180}
	shadeColor = color.RGBA{A: 180}
	eyeColor   = color.RGBA{R: 253, G: 249, B: 0, A: 255}
)

// Game adapts a controller to ebiten. Update is the frame signal.
type Game struct {
	ctrl    *screen.Controller
	layout  screen.Layout
	history *stats.GameStats
	snap    game.Snapshot
	start   time.Time
}

// NewGame builds the ebiten game around session. pilot may be nil.
func NewGame(session *game.Session, pilot *autopilot.Pilot, autopilotOn bool, layout screen.Layout, history *stats.GameStats) *Game {
	g := &Game{
		layout:  layout,
		history: history,
		snap:    session.Snapshot(),
		start:   time.Now(),
	}
	g.ctrl = &screen.Controller{
		Driver:    game.NewDriver(session, g),
		Pilot:     pilot,
		Autopilot: autopilotOn,
	}
	return g
}

// Present implements game.Presenter.
func (g *Game) Present(snap game.Snapshot) {
	g.snap = snap
}

func (g *Game) Update() error {
	if !g.ctrl.Frame(readInput(), time.Since(g.start)) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(dst *ebiten.Image) {
	fillRect(dst, g.layout.Board(), boardColor)
	fillRect(dst, g.layout.CellRect(g.snap.Food), foodColor)
	for i := len(g.snap.Body) - 1; i >= 0; i-- {
		c := bodyColor
		if i == 0 {
			c = headColor
		}
		fillRect(dst, g.layout.CellRect(g.snap.Body[i]), c)
	}
	if len(g.snap.Body) > 0 {
		g.drawEye(dst)
	}

	panel := g.layout.Panel()
	y := panel.Y + lineHeight
	for _, line := range screen.PanelLines(g.snap, g.history, g.ctrl.Autopilot) {
		text.Draw(dst, line, basicfont.Face7x13, panel.X, y, color.White)
		y += lineHeight
	}
	if g.history != nil {
		chart := g.layout.Chart()
		vector.StrokeRect(dst, float32(chart.X), float32(chart.Y), float32(chart.W), float32(chart.H), 1, color.Gray{Y: 130}, false)
		for _, bar := range screen.Bars(g.history.RecentScores(screen.ChartBars), chart) {
			fillRect(dst, bar, chartColor)
		}
	}

	if lines := screen.OverlayLines(g.snap); lines != nil {
		board := g.layout.Board()
		fillRect(dst, board, shadeColor)
		y := board.Y + board.H/2 - len(lines)*lineHeight/2
		for _, line := range lines {
			w := len(line) * 7 // Face7x13 glyphs are 7px wide
			text.Draw(dst, line, basicfont.Face7x13, board.X+(board.W-w)/2, y, color.White)
			y += lineHeight
		}
	}
}

// drawEye marks the heading with a dot near the leading edge of the head.
func (g *Game) drawEye(dst *ebiten.Image) {
	r := g.layout.CellRect(g.snap.Head())
	tip := screen.HeadTriangle(r, g.snap.Direction)[0]
	cx := float32(r.X+r.W/2) + float32(tip.X-(r.X+r.W/2))*0.5
	cy := float32(r.Y+r.H/2) + float32(tip.Y-(r.Y+r.H/2))*0.5
	vector.DrawFilledCircle(dst, cx, cy, float32(r.W)/6, eyeColor, true)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.layout.WindowSize()
}

var directionKeys = []struct {
	keys []ebiten.Key
	dir  types.Direction
}{
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, types.DirUp},
	{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, types.DirDown},
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, types.DirLeft},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, types.DirRight},
}

func readInput() screen.Input {
	var in screen.Input
	for _, dk := range directionKeys {
		for _, k := range dk.keys {
			if inpututil.IsKeyJustPressed(k) {
				in.Direction = dk.dir
			}
		}
	}
	in.Restart = inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	in.Quit = inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	in.ToggleAutopilot = inpututil.IsKeyJustPressed(ebiten.KeyP)
	return in
}

func fillRect(dst *ebiten.Image, r screen.Rect, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}
