// Package game runs a single snake round: the session state machine and
// the frame-driven loop that ticks it.
package game

import (
	"log/slog"
	"time"

	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
	"snake-arcade/stats"
	"snake-arcade/store"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// State is the session lifecycle.
type State int

const (
	Running State = iota
	Over
)

func (s State) String() string {
	if s == Over {
		return "over"
	}
	return "running"
}

// Options configures a Session. The zero value gives the standard 20x20
// board with a time-seeded random source and an in-memory high score.
type Options struct {
	Grid   types.Grid
	Rand   entity.Intner
	Store  store.HighScoreStore
	Stats  *stats.GameStats
	Logger *slog.Logger
	Clock  func() time.Time
}

// TickResult describes what a single Tick did.
type TickResult struct {
	Ticked       bool // false when the session was already over
	Advance      entity.AdvanceResult
	GameOver     bool
	NewHighScore bool
}

// Snapshot is a read-only copy of everything a presenter needs.
type Snapshot struct {
	Body      []types.Cell
	Food      types.Cell
	Direction types.Direction
	Score     int
	HighScore int
	Speed     time.Duration
	Over      bool
	Grid      types.Grid
	RoundID   string
}

// Head is the first body cell.
func (s Snapshot) Head() types.Cell {
	return s.Body[0]
}

// Occupies reports whether a body segment covers c.
func (s Snapshot) Occupies(c types.Cell) bool {
	for _, b := range s.Body {
		if b == c {
			return true
		}
	}
	return false
}

// Session owns the snake, the food and the score for one round at a time.
// It is not safe for concurrent use.
type Session struct {
	grid   types.Grid
	snake  *entity.Snake
	food   *manager.FoodManager
	scores *manager.StateManager
	clock  func() time.Time
	logger *slog.Logger

	state     State
	score     int
	speed     time.Duration
	roundID   string
	startedAt time.Time
}

// NewSession builds a session in the Running state with the fixed start
// layout. The grid must be large enough to hold it.
func NewSession(opts Options) (*Session, error) {
	if opts.Grid == (types.Grid{}) {
		opts.Grid = types.DefaultGrid()
	}
	for _, c := range types.StartBody() {
		if !opts.Grid.Contains(c) {
			return nil, errors.Errorf("grid %dx%d cannot hold the start layout", opts.Grid.Width, opts.Grid.Height)
		}
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	if opts.Store == nil {
		opts.Store = store.NewMemoryStore(0)
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	s := &Session{
		grid:   opts.Grid,
		snake:  entity.NewSnake(opts.Grid),
		food:   manager.NewFoodManager(opts.Grid, opts.Rand),
		scores: manager.NewStateManager(opts.Store, opts.Stats, opts.Logger),
		clock:  opts.Clock,
		logger: opts.Logger,
	}
	if !opts.Grid.Contains(s.food.Position()) {
		s.food.Respawn(s.snake)
	}
	s.beginRound()
	return s, nil
}

func (s *Session) beginRound() {
	s.state = Running
	s.score = 0
	s.speed = types.BaseSpeed
	s.roundID = uuid.NewString()
	s.startedAt = s.clock()
	s.logger.Debug("round started", "round", s.roundID)
}

// Tick advances the snake one cell. It is a no-op once the round is over.
func (s *Session) Tick() TickResult {
	if s.state == Over {
		return TickResult{}
	}

	res := TickResult{Ticked: true}
	res.Advance = s.snake.Advance(s.food.Position())

	if res.Advance.Collided() {
		s.state = Over
		res.GameOver = true
		res.NewHighScore = s.scores.RecordGameOver(s.roundID, s.score, s.startedAt, s.clock())
		s.logger.Info("game over",
			"round", s.roundID,
			"score", s.score,
			"collision", res.Advance.Collision,
			"length", s.snake.Len(),
		)
		return res
	}

	if res.Advance.AteFood {
		s.score += types.FoodReward
		s.speed = SpeedFor(s.score)
		if !s.food.Respawn(s.snake) {
			s.logger.Debug("board full, food stays in place", "round", s.roundID)
		}
	}
	return res
}

// OnDirection buffers a direction for the next tick. It reports whether the
// input was accepted.
func (s *Session) OnDirection(d types.Direction) bool {
	if s.state == Over {
		return false
	}
	return s.snake.SetPendingDirection(d)
}

// Reset starts a new round with the start layout and freshly placed food.
func (s *Session) Reset() {
	s.snake.Reset()
	s.food.Reset(s.snake)
	s.beginRound()
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Over() bool {
	return s.state == Over
}

func (s *Session) Score() int {
	return s.score
}

func (s *Session) HighScore() int {
	return s.scores.HighScore()
}

// Speed is the current tick interval.
func (s *Session) Speed() time.Duration {
	return s.speed
}

func (s *Session) Grid() types.Grid {
	return s.grid
}

func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Body:      s.snake.Cells(),
		Food:      s.food.Position(),
		Direction: s.snake.Direction,
		Score:     s.score,
		HighScore: s.scores.HighScore(),
		Speed:     s.speed,
		Over:      s.state == Over,
		Grid:      s.grid,
		RoundID:   s.roundID,
	}
}
