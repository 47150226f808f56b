package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSpeedFor(t *testing.T) {
	tests := []struct {
		score int
		want  time.Duration
	}{
		{0, 150 * time.Millisecond},
		{10, 150 * time.Millisecond},
		{600, 150 * time.Millisecond},
		{640, 150 * time.Millisecond},
		{650, 149 * time.Millisecond},
		{700, 148 * time.Millisecond},
		{5600, 50 * time.Millisecond},
		{6100, 40 * time.Millisecond},
		{1_000_000, 40 * time.Millisecond},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SpeedFor(tt.score), "score %d", tt.score)
	}
}

func TestSpeedForIsMonotonic(t *testing.T) {
	prev := SpeedFor(0)
	for score := 0; score <= 20000; score += 10 {
		got := SpeedFor(score)
		assert.LessOrEqual(t, got, prev)
		assert.GreaterOrEqual(t, got, 40*time.Millisecond)
		prev = got
	}
}
