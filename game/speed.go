package game

import (
	"time"

	"snake-arcade/game/types"
)

// SpeedFor returns the tick interval for a score. It stays at BaseSpeed up
// to SpeedThreshold, then drops by SpeedStep for every SpeedStepPoints
// above it, never going below MinSpeed.
func SpeedFor(score int) time.Duration {
	if score <= types.SpeedThreshold {
		return types.BaseSpeed
	}
	steps := (score - types.SpeedThreshold) / types.SpeedStepPoints
	speed := types.BaseSpeed - time.Duration(steps)*types.SpeedStep
	if speed < types.MinSpeed {
		return types.MinSpeed
	}
	return speed
}
