package screen

import (
	"fmt"

	"snake-arcade/game"
	"snake-arcade/stats"
)

// PanelLines is the text shown beside the board.
func PanelLines(snap game.Snapshot, history *stats.GameStats, autopilot bool) []string {
	mode := "manual"
	if autopilot {
		mode = "autopilot"
	}
	lines := []string{
		fmt.Sprintf("Score: %d", snap.Score),
		fmt.Sprintf("High score: %d", snap.HighScore),
		fmt.Sprintf("Length: %d", len(snap.Body)),
		fmt.Sprintf("Tick: %dms", snap.Speed.Milliseconds()),
		"Mode: " + mode,
	}
	if history != nil {
		lines = append(lines,
			"",
			fmt.Sprintf("Games: %d", history.GamesPlayed()),
			fmt.Sprintf("Avg score: %.1f", history.AverageScore()),
			fmt.Sprintf("Best: %d", history.MaxScore()),
			fmt.Sprintf("Avg time: %.1fs", history.AverageDuration().Seconds()),
		)
	}
	return lines
}

// OverlayLines is the game-over message, or nil while the round runs.
func OverlayLines(snap game.Snapshot) []string {
	if !snap.Over {
		return nil
	}
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Score: %d", snap.Score),
		fmt.Sprintf("High score: %d", snap.HighScore),
	}
	if snap.Score > 0 && snap.Score >= snap.HighScore {
		lines = append(lines, "New record!")
	}
	return append(lines, "Press R or Enter to play again")
}
