package qlearning

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) Intn(int) int     { return r.n }

func TestUpdateRule(t *testing.T) {
	a := NewAgent(Config{LearningRate: 0.5, Discount: 0.9}, fixedRand{f: 1})

	a.Update("s", 1, 10, "", 3)
	assert.InDelta(t, 5.0, a.Values("s")[1], 1e-9)

	a.QTable["next"] = []float64{2, 4, 1}
	a.Update("s", 1, 0, "next", 3)
	// 5 + 0.5*(0 + 0.9*4 - 5)
	assert.InDelta(t, 4.3, a.Values("s")[1], 1e-9)
}

func TestBestPicksHighestAndBreaksTiesLow(t *testing.T) {
	a := NewAgent(DefaultConfig(), fixedRand{f: 1})
	assert.Equal(t, 0, a.Best("unseen", 3))

	a.QTable["s"] = []float64{-1, 3, 3}
	assert.Equal(t, 1, a.Best("s", 3))
}

func TestActionExploresBelowEpsilon(t *testing.T) {
	a := NewAgent(DefaultConfig(), fixedRand{f: 0, n: 2})
	a.QTable["s"] = []float64{9, 0, 0}
	assert.Equal(t, 2, a.Action("s", 3), "random branch")

	a.rng = fixedRand{f: 0.99, n: 2}
	assert.Equal(t, 0, a.Action("s", 3), "greedy branch")
}

func TestEpsilonDecaysToFloor(t *testing.T) {
	cfg := Config{InitialEpsilon: 0.8, MinEpsilon: 0.1, EpsilonDecay: 0.5}
	a := NewAgent(cfg, nil)

	a.IncrementEpisode()
	assert.InDelta(t, 0.4, a.Epsilon, 1e-9)
	for i := 0; i < 10; i++ {
		a.IncrementEpisode()
	}
	assert.Equal(t, 0.1, a.Epsilon)
	assert.Equal(t, 11, a.TrainingEpisode)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agents", "qtable.json")
	a := NewAgent(DefaultConfig(), rand.New(rand.NewSource(1)))
	a.QTable["s"] = []float64{1, 2, 3}
	a.IncrementEpisode()
	require.NoError(t, a.Save(path))

	b := NewAgent(DefaultConfig(), nil)
	require.NoError(t, b.Load(path))
	assert.Equal(t, a.QTable, b.QTable)
	assert.Equal(t, a.Epsilon, b.Epsilon)
	assert.Equal(t, 1, b.TrainingEpisode)
}

func TestLoadMissingAndCorrupt(t *testing.T) {
	dir := t.TempDir()
	a := NewAgent(DefaultConfig(), nil)
	require.NoError(t, a.Load(filepath.Join(dir, "missing.json")))
	assert.Empty(t, a.QTable)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	assert.Error(t, a.Load(bad))
}
