// Package screen holds the parts of the front ends that do not depend on
// a graphics library: pixel layout, HUD text and per-frame input handling.
package screen

import (
	"snake-arcade/game/types"
)

const (
	Padding    = 10
	PanelWidth = 240
	ChartBars  = 20
)

// Rect is a pixel rectangle.
type Rect struct {
	X, Y, W, H int
}

// Point is a pixel position.
type Point struct {
	X, Y int
}

// Layout places the board on the left and the stats panel on the right.
type Layout struct {
	Grid types.Grid
	Cell int
}

func NewLayout(grid types.Grid, cell int) Layout {
	return Layout{Grid: grid, Cell: cell}
}

// WindowSize is the pixel size needed for board and panel.
func (l Layout) WindowSize() (int, int) {
	b := l.Board()
	return b.X + b.W + Padding + PanelWidth + Padding, b.Y + b.H + Padding
}

func (l Layout) Board() Rect {
	return Rect{X: Padding, Y: Padding, W: l.Grid.Width * l.Cell, H: l.Grid.Height * l.Cell}
}

// CellRect is the pixel rectangle of a grid cell.
func (l Layout) CellRect(c types.Cell) Rect {
	b := l.Board()
	return Rect{X: b.X + c.X*l.Cell, Y: b.Y + c.Y*l.Cell, W: l.Cell, H: l.Cell}
}

func (l Layout) Panel() Rect {
	b := l.Board()
	return Rect{X: b.X + b.W + Padding, Y: b.Y, W: PanelWidth, H: b.H}
}

// Chart is the score bar area at the bottom of the panel.
func (l Layout) Chart() Rect {
	p := l.Panel()
	h := p.H / 3
	return Rect{X: p.X, Y: p.Y + p.H - h, W: p.W, H: h}
}

// HeadTriangle points from the centre of the head cell towards d.
func HeadTriangle(r Rect, d types.Direction) [3]Point {
	half := r.W / 2
	switch d {
	case types.DirLeft:
		return [3]Point{{r.X, r.Y + half}, {r.X + half, r.Y + r.H}, {r.X + half, r.Y}}
	case types.DirDown:
		return [3]Point{{r.X + half, r.Y + r.H}, {r.X + r.W, r.Y + half}, {r.X, r.Y + half}}
	case types.DirUp:
		return [3]Point{{r.X + half, r.Y}, {r.X, r.Y + half}, {r.X + r.W, r.Y + half}}
	default:
		return [3]Point{{r.X + r.W, r.Y + half}, {r.X + half, r.Y}, {r.X + half, r.Y + r.H}}
	}
}

// Bars scales scores into bars along the bottom of area, oldest on the
// left. Zero scores get no bar.
func Bars(scores []int, area Rect) []Rect {
	if len(scores) == 0 {
		return nil
	}
	maxScore := 0
	for _, s := range scores {
		if s > maxScore {
			maxScore = s
		}
	}
	if maxScore == 0 {
		return nil
	}

	slot := area.W / ChartBars
	width := slot - 2
	if width < 1 {
		width = 1
	}
	bars := make([]Rect, 0, len(scores))
	for i, s := range scores {
		h := s * area.H / maxScore
		if h == 0 {
			continue
		}
		bars = append(bars, Rect{
			X: area.X + i*slot,
			Y: area.Y + area.H - h,
			W: width,
			H: h,
		})
	}
	return bars
}
