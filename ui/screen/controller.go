package screen

import (
	"time"

	"snake-arcade/autopilot"
	"snake-arcade/game"
	"snake-arcade/game/types"
)

// Input is what the keyboard produced during one frame.
type Input struct {
	Direction       types.Direction
	Restart         bool
	Quit            bool
	ToggleAutopilot bool
}

// Controller feeds one frame of input into the driver.
type Controller struct {
	Driver    *game.Driver
	Pilot     *autopilot.Pilot
	Autopilot bool
}

// Frame applies in and lets the driver handle the refresh at now. It
// returns false once the player asked to quit.
func (c *Controller) Frame(in Input, now time.Duration) bool {
	if in.Quit {
		return false
	}
	if in.ToggleAutopilot && c.Pilot != nil {
		c.Autopilot = !c.Autopilot
	}

	session := c.Driver.Session()
	if in.Direction != types.DirNone && !c.Autopilot {
		session.OnDirection(in.Direction)
	}
	if in.Restart {
		c.Driver.Restart()
	}
	if c.Autopilot && c.Pilot != nil {
		c.Pilot.Steer(session)
	}
	c.Driver.Frame(now)
	return true
}
