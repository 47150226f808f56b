package autopilot

import (
	"snake-arcade/game"
	"snake-arcade/game/types"
	"snake-arcade/qlearning"
)

// Rewards.
const (
	RewardDeath   = -10.0
	RewardFood    = 10.0
	RewardCloser  = 0.1
	RewardFarther = -0.2
)

// StepResult is the outcome of one learning step.
type StepResult struct {
	Tick   game.TickResult
	Action int
	Reward float64
}

// Pilot drives a session through its direction input.
type Pilot struct {
	agent *qlearning.Agent
}

func NewPilot(agent *qlearning.Agent) *Pilot {
	return &Pilot{agent: agent}
}

func (p *Pilot) Agent() *qlearning.Agent {
	return p.agent
}

// Steer feeds the greedy choice for the current state into the session.
// It can be called every frame; only the last choice before a tick counts.
func (p *Pilot) Steer(s *game.Session) types.Direction {
	snap := s.Snapshot()
	if snap.Over {
		return types.DirNone
	}
	d := ActionDirection(snap.Direction, p.agent.Best(StateKey(snap), NumActions))
	s.OnDirection(d)
	return d
}

// Step chooses an exploring action, ticks the session once and learns
// from the result.
func (p *Pilot) Step(s *game.Session) StepResult {
	before := s.Snapshot()
	if before.Over {
		return StepResult{}
	}

	state := StateKey(before)
	action := p.agent.Action(state, NumActions)
	s.OnDirection(ActionDirection(before.Direction, action))

	res := StepResult{Tick: s.Tick(), Action: action}
	after := s.Snapshot()
	res.Reward = Reward(before, after, res.Tick)

	next := ""
	if !res.Tick.GameOver {
		next = StateKey(after)
	}
	p.agent.Update(state, action, res.Reward, next, NumActions)
	return res
}

// Reward scores a transition for learning.
func Reward(before, after game.Snapshot, tick game.TickResult) float64 {
	switch {
	case tick.GameOver:
		return RewardDeath
	case tick.Advance.AteFood:
		return RewardFood
	case foodDistance(after) < foodDistance(before):
		return RewardCloser
	default:
		return RewardFarther
	}
}
