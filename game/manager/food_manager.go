package manager

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

// FoodManager owns the single food item and its random source.
type FoodManager struct {
	grid types.Grid
	food *entity.Food
	rng  entity.Intner
}

func NewFoodManager(grid types.Grid, rng entity.Intner) *FoodManager {
	return &FoodManager{
		grid: grid,
		food: entity.NewFood(types.StartFood),
		rng:  rng,
	}
}

// Position is where the food currently sits.
func (fm *FoodManager) Position() types.Cell {
	return fm.food.Position
}

// Respawn moves the food to a random cell the snake does not cover.
// It returns false when the board is full.
func (fm *FoodManager) Respawn(occupied entity.Occupancy) bool {
	return fm.food.Respawn(fm.rng, fm.grid, occupied)
}

// Reset places the food at a fresh random free cell.
func (fm *FoodManager) Reset(occupied entity.Occupancy) bool {
	return fm.Respawn(occupied)
}
