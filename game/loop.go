package game

import (
	"context"
	"time"

	"snake-arcade/game/types"
)

// Presenter receives a snapshot after every processed tick and restart.
type Presenter interface {
	Present(Snapshot)
}

// DriverState tells whether the driver still processes frames.
type DriverState int

const (
	DriverRunning DriverState = iota
	DriverHalted
)

// Event is something the driver reacts to in Run.
type Event interface {
	isEvent()
}

// FrameEvent is one host refresh carrying a monotonic timestamp.
type FrameEvent struct {
	Time time.Duration
}

type DirectionEvent struct {
	Direction types.Direction
}

type RestartEvent struct{}

func (FrameEvent) isEvent()     {}
func (DirectionEvent) isEvent() {}
func (RestartEvent) isEvent()   {}

// Driver gates session ticks on frame timestamps so the simulation runs at
// the session speed whatever the refresh rate.
type Driver struct {
	session   *Session
	presenter Presenter
	state     DriverState
	lastTick  time.Duration
}

// NewDriver wraps a session. presenter may be nil.
func NewDriver(session *Session, presenter Presenter) *Driver {
	return &Driver{
		session:   session,
		presenter: presenter,
	}
}

func (d *Driver) State() DriverState {
	return d.state
}

func (d *Driver) Session() *Session {
	return d.session
}

// Frame handles one refresh signal and reports whether the session ticked.
func (d *Driver) Frame(now time.Duration) bool {
	if d.state == DriverHalted {
		return false
	}
	if d.session.Over() {
		d.state = DriverHalted
		return false
	}
	if now-d.lastTick < d.session.Speed() {
		return false
	}

	d.lastTick = now
	d.session.Tick()
	d.present()
	return true
}

// Restart resets a finished round and resumes frame processing. It does
// nothing while the round is still running.
func (d *Driver) Restart() bool {
	if !d.session.Over() {
		return false
	}
	d.session.Reset()
	d.state = DriverRunning
	d.present()
	return true
}

// Run dispatches events one at a time until ctx is done or events closes.
func (d *Driver) Run(ctx context.Context, events <-chan Event) error {
	d.present()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch e := ev.(type) {
			case FrameEvent:
				d.Frame(e.Time)
			case DirectionEvent:
				d.session.OnDirection(e.Direction)
			case RestartEvent:
				d.Restart()
			}
		}
	}
}

func (d *Driver) present() {
	if d.presenter != nil {
		d.presenter.Present(d.session.Snapshot())
	}
}
