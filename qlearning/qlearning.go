// Package qlearning implements a tabular Q-learning agent.
package qlearning

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// QTable stores the Q values for each state/action pair.
type QTable map[string][]float64

// Rand is the source for exploration. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Config holds the learning parameters.
type Config struct {
	LearningRate   float64
	Discount       float64
	InitialEpsilon float64
	MinEpsilon     float64
	EpsilonDecay   float64 // applied once per training episode
}

// DefaultConfig starts with heavy exploration that decays slowly.
func DefaultConfig() Config {
	return Config{
		LearningRate:   0.5,
		Discount:       0.8,
		InitialEpsilon: 0.9,
		MinEpsilon:     0.01,
		EpsilonDecay:   0.995,
	}
}

// Agent is an epsilon-greedy Q-learning agent.
type Agent struct {
	QTable          QTable
	LearningRate    float64
	Discount        float64
	Epsilon         float64
	InitialEpsilon  float64
	MinEpsilon      float64
	EpsilonDecay    float64
	TrainingEpisode int

	rng Rand
}

// NewAgent returns an agent with an empty table. A nil rng gets a
// time-seeded source.
func NewAgent(cfg Config, rng Rand) *Agent {
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return &Agent{
		QTable:         make(QTable),
		LearningRate:   cfg.LearningRate,
		Discount:       cfg.Discount,
		Epsilon:        cfg.InitialEpsilon,
		InitialEpsilon: cfg.InitialEpsilon,
		MinEpsilon:     cfg.MinEpsilon,
		EpsilonDecay:   cfg.EpsilonDecay,
		rng:            rng,
	}
}

// Action picks an action with the epsilon-greedy policy.
func (a *Agent) Action(state string, numActions int) int {
	if a.rng.Float64() < a.Epsilon {
		return a.rng.Intn(numActions)
	}
	return a.Best(state, numActions)
}

// Best returns the action with the highest Q value. Ties go to the lowest
// index.
func (a *Agent) Best(state string, numActions int) int {
	values := a.values(state, numActions)

	best := 0
	maxQ := math.Inf(-1)
	for action, q := range values {
		if q > maxQ {
			maxQ = q
			best = action
		}
	}
	return best
}

// IncrementEpisode advances the episode counter and decays epsilon.
func (a *Agent) IncrementEpisode() {
	a.TrainingEpisode++
	a.Epsilon = a.InitialEpsilon * math.Pow(a.EpsilonDecay, float64(a.TrainingEpisode))
	if a.Epsilon < a.MinEpsilon {
		a.Epsilon = a.MinEpsilon
	}
}

// Update applies Q(s,a) += lr * (r + discount * max Q(s',·) - Q(s,a)).
// A terminal transition passes an empty nextState.
func (a *Agent) Update(state string, action int, reward float64, nextState string, numActions int) {
	values := a.values(state, numActions)

	maxNextQ := 0.0
	if nextState != "" {
		maxNextQ = a.maxQ(nextState)
	}
	values[action] += a.LearningRate * (reward + a.Discount*maxNextQ - values[action])
}

// Values returns a copy of the Q values known for state, or nil.
func (a *Agent) Values(state string) []float64 {
	v, ok := a.QTable[state]
	if !ok {
		return nil
	}
	out := make([]float64, len(v))
	copy(out, v)
	return out
}

func (a *Agent) values(state string, numActions int) []float64 {
	v, ok := a.QTable[state]
	if !ok || len(v) != numActions {
		v = make([]float64, numActions)
		a.QTable[state] = v
	}
	return v
}

func (a *Agent) maxQ(state string) float64 {
	v, ok := a.QTable[state]
	if !ok || len(v) == 0 {
		return 0
	}
	maxQ := math.Inf(-1)
	for _, q := range v {
		if q > maxQ {
			maxQ = q
		}
	}
	return maxQ
}

// AgentState is the persisted form of an agent.
type AgentState struct {
	QTable          QTable  `json:"qtable"`
	Epsilon         float64 `json:"epsilon"`
	TrainingEpisode int     `json:"training_episode"`
}

// Save writes the table, epsilon and episode count as JSON.
func (a *Agent) Save(filename string) error {
	data, err := json.MarshalIndent(AgentState{
		QTable:          a.QTable,
		Epsilon:         a.Epsilon,
		TrainingEpisode: a.TrainingEpisode,
	}, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal q-table")
	}

	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return errors.Wrap(err, "create q-table directory")
	}
	return errors.Wrap(os.WriteFile(filename, data, 0o644), "write q-table")
}

// Load restores a saved agent. A missing file leaves the agent unchanged.
func (a *Agent) Load(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(err, "read q-table")
	}

	var state AgentState
	if err := json.Unmarshal(data, &state); err != nil {
		return errors.Wrapf(err, "decode %s", filename)
	}
	if state.QTable != nil {
		a.QTable = state.QTable
		a.Epsilon = state.Epsilon
		a.TrainingEpisode = state.TrainingEpisode
	}
	return nil
}
