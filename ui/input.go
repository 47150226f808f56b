package ui

import (
	"snake-arcade/game/types"
	"snake-arcade/ui/screen"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var directionKeys = []struct {
	keys []int32
	dir  types.Direction
}{
	{[]int32{rl.KeyUp, rl.KeyW}, types.DirUp},
	{[]int32{rl.KeyDown, rl.KeyS}, types.DirDown},
	{[]int32{rl.KeyLeft, rl.KeyA}, types.DirLeft},
	{[]int32{rl.KeyRight, rl.KeyD}, types.DirRight},
}

// ReadInput collects the keys pressed since the previous frame. When
// several direction keys arrive in one frame the last one listed wins,
// matching the last-write-wins input buffer.
func ReadInput() screen.Input {
	var in screen.Input
	for _, dk := range directionKeys {
		for _, k := range dk.keys {
			if rl.IsKeyPressed(k) {
				in.Direction = dk.dir
			}
		}
	}
	in.Restart = rl.IsKeyPressed(rl.KeyR) || rl.IsKeyPressed(rl.KeyEnter)
	in.Quit = rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape)
	in.ToggleAutopilot = rl.IsKeyPressed(rl.KeyP)
	return in
}
