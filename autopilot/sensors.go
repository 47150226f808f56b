// Package autopilot steers a session with a Q-learning agent and trains it
// headless.
package autopilot

import (
	"fmt"

	"snake-arcade/game"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
)

// Relative actions.
const (
	ActionLeft = iota
	ActionStraight
	ActionRight

	NumActions = 3
)

// ActionDirection turns a relative action into an absolute direction.
func ActionDirection(current types.Direction, action int) types.Direction {
	switch action {
	case ActionLeft:
		return current.TurnLeft()
	case ActionRight:
		return current.TurnRight()
	default:
		return current
	}
}

// StateKey encodes what the snake senses: danger straight ahead, to the
// left and to the right, then where the food lies relative to the heading
// (ahead/behind, left/right as -1, 0 or 1).
func StateKey(snap game.Snapshot) string {
	cm := manager.NewCollisionManager(snap.Grid)
	head := snap.Head()
	dir := snap.Direction

	danger := func(d types.Direction) int {
		if cm.ProbeDirection(head, d, snap) != types.NoCollision {
			return 1
		}
		return 0
	}

	dx, dy := snap.Food.X-head.X, snap.Food.Y-head.Y
	fwd, left := dir.Delta(), dir.TurnLeft().Delta()
	ahead := sign(dx*fwd.X + dy*fwd.Y)
	side := sign(dx*left.X + dy*left.Y)

	return fmt.Sprintf("d:%d%d%d f:%d,%d",
		danger(dir), danger(dir.TurnLeft()), danger(dir.TurnRight()),
		ahead, side)
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func foodDistance(snap game.Snapshot) int {
	head := snap.Head()
	return abs(snap.Food.X-head.X) + abs(snap.Food.Y-head.Y)
}
