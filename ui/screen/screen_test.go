package screen

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"snake-arcade/autopilot"
	"snake-arcade/game"
	"snake-arcade/game/types"
	"snake-arcade/qlearning"
	"snake-arcade/stats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newDriver(t *testing.T) *game.Driver {
	t.Helper()
	s, err := game.NewSession(game.Options{
		Rand:   rand.New(rand.NewSource(1)),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	return game.NewDriver(s, nil)
}

func TestLayout(t *testing.T) {
	l := NewLayout(types.DefaultGrid(), 20)

	w, h := l.WindowSize()
	assert.Equal(t, 10+400+10+PanelWidth+10, w)
	assert.Equal(t, 420, h)
	assert.Equal(t, Rect{X: 10 + 3*20, Y: 10 + 4*20, W: 20, H: 20}, l.CellRect(types.Cell{X: 3, Y: 4}))
	assert.Equal(t, 420, l.Panel().X)
}

func TestHeadTrianglePointsForward(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 20, H: 20}
	assert.Equal(t, Point{20, 10}, HeadTriangle(r, types.DirRight)[0])
	assert.Equal(t, Point{0, 10}, HeadTriangle(r, types.DirLeft)[0])
	assert.Equal(t, Point{10, 0}, HeadTriangle(r, types.DirUp)[0])
	assert.Equal(t, Point{10, 20}, HeadTriangle(r, types.DirDown)[0])
}

func TestBars(t *testing.T) {
	area := Rect{X: 0, Y: 100, W: 200, H: 50}
	bars := Bars([]int{0, 50, 100}, area)

	require.Len(t, bars, 2, "zero score has no bar")
	assert.Equal(t, Rect{X: 10, Y: 125, W: 8, H: 25}, bars[0])
	assert.Equal(t, Rect{X: 20, Y: 100, W: 8, H: 50}, bars[1])
	assert.Nil(t, Bars(nil, area))
	assert.Nil(t, Bars([]int{0, 0}, area))
}

func TestPanelLines(t *testing.T) {
	history := stats.New("")
	history.AddGame(stats.GameRecord{Score: 30})
	snap := game.Snapshot{Body: make([]types.Cell, 3), Score: 20, HighScore: 30, Speed: 150 * time.Millisecond}

	lines := PanelLines(snap, history, true)
	assert.Contains(t, lines, "Score: 20")
	assert.Contains(t, lines, "High score: 30")
	assert.Contains(t, lines, "Tick: 150ms")
	assert.Contains(t, lines, "Mode: autopilot")
	assert.Contains(t, lines, "Games: 1")

	assert.Len(t, PanelLines(snap, nil, false), 5)
}

func TestOverlayLines(t *testing.T) {
	assert.Nil(t, OverlayLines(game.Snapshot{}))

	lines := OverlayLines(game.Snapshot{Over: true, Score: 40, HighScore: 40})
	assert.Equal(t, "GAME OVER", lines[0])
	assert.Contains(t, lines, "Score: 40")
	assert.Contains(t, lines, "New record!")

	lines = OverlayLines(game.Snapshot{Over: true, Score: 10, HighScore: 40})
	assert.NotContains(t, lines, "New record!")
}

func TestControllerQuit(t *testing.T) {
	c := &Controller{Driver: newDriver(t)}
	assert.False(t, c.Frame(Input{Quit: true}, 0))
}

func TestControllerDirectionAndTick(t *testing.T) {
	c := &Controller{Driver: newDriver(t)}
	require.True(t, c.Frame(Input{Direction: types.DirDown}, 150*time.Millisecond))
	assert.Equal(t, types.Cell{X: 10, Y: 11}, c.Driver.Session().Snapshot().Head())
}

func TestControllerRestartOnlyWhenOver(t *testing.T) {
	c := &Controller{Driver: newDriver(t)}
	now := time.Duration(0)
	for !c.Driver.Session().Over() {
		now += 150 * time.Millisecond
		c.Frame(Input{}, now)
	}

	c.Frame(Input{Restart: true}, now)
	assert.False(t, c.Driver.Session().Over())
	assert.Equal(t, game.DriverRunning, c.Driver.State())
}

func TestControllerAutopilot(t *testing.T) {
	agent := qlearning.NewAgent(qlearning.DefaultConfig(), nil)
	agent.QTable[autopilot.StateKey(newDriver(t).Session().Snapshot())] = []float64{0, 0, 9}
	c := &Controller{Driver: newDriver(t), Pilot: autopilot.NewPilot(agent)}

	c.Frame(Input{ToggleAutopilot: true}, 0)
	require.True(t, c.Autopilot)

	c.Frame(Input{Direction: types.DirUp}, 150*time.Millisecond)
	assert.Equal(t, types.Cell{X: 10, Y: 11}, c.Driver.Session().Snapshot().Head(), "pilot turned right, key ignored")

	c.Frame(Input{ToggleAutopilot: true}, 160*time.Millisecond)
	assert.False(t, c.Autopilot)
}

func TestToggleWithoutPilot(t *testing.T) {
	c := &Controller{Driver: newDriver(t)}
	c.Frame(Input{ToggleAutopilot: true}, 0)
	assert.False(t, c.Autopilot)
}
