package manager

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

// CollisionManager classifies what a head would hit on a given cell.
type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// Probe reports the collision a head moving onto pos would cause.
// Every occupied cell counts, including the current tail.
func (cm *CollisionManager) Probe(pos types.Cell, occupied entity.Occupancy) types.CollisionType {
	if cm.isWallCollision(pos) {
		return types.WallCollision
	}
	if occupied != nil && occupied.Occupies(pos) {
		return types.SelfCollision
	}
	return types.NoCollision
}

// ProbeDirection probes the cell next to head in direction d.
func (cm *CollisionManager) ProbeDirection(head types.Cell, d types.Direction, occupied entity.Occupancy) types.CollisionType {
	return cm.Probe(head.Add(d.Delta()), occupied)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos, food types.Cell) bool {
	return pos == food
}

func (cm *CollisionManager) isWallCollision(pos types.Cell) bool {
	return !cm.grid.Contains(pos)
}
