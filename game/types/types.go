package types

import "time"

// Cell is a single grid position.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by d.
func (c Cell) Add(d Cell) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// DefaultGrid returns the fixed square play-field.
func DefaultGrid() Grid {
	return Grid{Width: GridDim, Height: GridDim}
}

// Contains reports whether c lies inside the grid.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Index maps an in-grid cell to its row-major index.
func (g Grid) Index(c Cell) int {
	return c.Y*g.Width + c.X
}

// Area is the number of cells in the grid.
func (g Grid) Area() int {
	return g.Width * g.Height
}

// Game constants
const (
	GridDim         = 20
	FoodReward      = 10
	SpeedThreshold  = 600 // score above which the game starts to accelerate
	SpeedStepPoints = 50  // score points per SpeedStep of acceleration
)

// Tick intervals.
const (
	BaseSpeed = 150 * time.Millisecond
	MinSpeed  = 40 * time.Millisecond
	SpeedStep = time.Millisecond
)

// Starting layout.
const StartDirection = DirRight

var StartFood = Cell{X: 15, Y: 15}

// StartBody returns a fresh copy of the initial snake body, head first.
func StartBody() []Cell {
	return []Cell{
		{X: 10, Y: 10},
		{X: 9, Y: 10},
		{X: 8, Y: 10},
	}
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}
