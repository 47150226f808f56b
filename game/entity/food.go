package entity

import "snake-arcade/game/types"

// Intner is the random source used for respawning. *rand.Rand from
// golang.org/x/exp/rand satisfies it.
type Intner interface {
	Intn(n int) int
}

// Occupancy answers whether a cell is taken.
type Occupancy interface {
	Occupies(c types.Cell) bool
}

// Food is the single edible cell on the board.
type Food struct {
	Position types.Cell
}

func NewFood(pos types.Cell) *Food {
	return &Food{Position: pos}
}

// Respawn draws random cells until one is free. After 4*Area rejected draws
// it scans the grid row by row instead. It returns false, leaving Position
// unchanged, when every cell is occupied.
func (f *Food) Respawn(rng Intner, grid types.Grid, occupied Occupancy) bool {
	for attempt := 0; attempt < 4*grid.Area(); attempt++ {
		c := types.Cell{
			X: rng.Intn(grid.Width),
			Y: rng.Intn(grid.Height),
		}
		if !occupied.Occupies(c) {
			f.Position = c
			return true
		}
	}

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			c := types.Cell{X: x, Y: y}
			if !occupied.Occupies(c) {
				f.Position = c
				return true
			}
		}
	}
	return false
}
