// Package ui is the raylib front end.
package ui

import (
	"image/color"

	"snake-arcade/game"
	"snake-arcade/stats"
	"snake-arcade/ui/screen"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	lineHeight = 26
)

var (
	headColor  = rl.NewColor(120, 230, 120, 255)
	bodyColor  = rl.Color{R: 40, G: 170, B: 60, A: 255}
	chartColor = rl.Color{R: 0, G: 180, B: 0, A: 180}
)

// Renderer draws the latest snapshot every frame. It implements
// game.Presenter.
type Renderer struct {
	layout  screen.Layout
	history *stats.GameStats
	snap    game.Snapshot
}

func NewRenderer(layout screen.Layout, history *stats.GameStats, initial game.Snapshot) *Renderer {
	return &Renderer{
		layout:  layout,
		history: history,
		snap:    initial,
	}
}

// Present stores the snapshot for the next Draw.
func (r *Renderer) Present(snap game.Snapshot) {
	r.snap = snap
}

// Draw renders one frame.
func (r *Renderer) Draw(autopilot bool) {
	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(rl.Black)

	board := r.layout.Board()
	rl.DrawRectangle(int32(board.X-1), int32(board.Y-1), int32(board.W+2), int32(board.H+2), rl.DarkGray)

	fillRect(r.layout.CellRect(r.snap.Food), rl.Red)
	for i := len(r.snap.Body) - 1; i >= 0; i-- {
		c := bodyColor
		if i == 0 {
			c = headColor
		}
		fillRect(r.layout.CellRect(r.snap.Body[i]), c)
	}
	if len(r.snap.Body) > 0 {
		tri := screen.HeadTriangle(r.layout.CellRect(r.snap.Head()), r.snap.Direction)
		rl.DrawTriangle(vec(tri[0]), vec(tri[1]), vec(tri[2]), rl.Yellow)
	}

	r.drawPanel(autopilot)
	r.drawOverlay()
}

func (r *Renderer) drawPanel(autopilot bool) {
	panel := r.layout.Panel()
	y := int32(panel.Y)
	for _, line := range screen.PanelLines(r.snap, r.history, autopilot) {
		rl.DrawText(line, int32(panel.X), y, fontSize, rl.White)
		y += lineHeight
	}

	if r.history == nil {
		return
	}
	chart := r.layout.Chart()
	rl.DrawRectangleLines(int32(chart.X), int32(chart.Y), int32(chart.W), int32(chart.H), rl.Gray)
	for _, bar := range screen.Bars(r.history.RecentScores(screen.ChartBars), chart) {
		fillRect(bar, chartColor)
	}
}

func (r *Renderer) drawOverlay() {
	lines := screen.OverlayLines(r.snap)
	if lines == nil {
		return
	}
	board := r.layout.Board()
	fillRect(board, rl.Fade(rl.Black, 0.7))

	y := int32(board.Y + board.H/2 - len(lines)*lineHeight/2)
	for i, line := range lines {
		c := rl.White
		if i == 0 {
			c = rl.Red
		}
		w := rl.MeasureText(line, fontSize)
		rl.DrawText(line, int32(board.X+board.W/2)-w/2, y, fontSize, c)
		y += lineHeight
	}
}

func fillRect(r screen.Rect, c color.RGBA) {
	rl.DrawRectangle(int32(r.X), int32(r.Y), int32(r.W), int32(r.H), c)
}

func vec(p screen.Point) rl.Vector2 {
	return rl.Vector2{X: float32(p.X), Y: float32(p.Y)}
}
