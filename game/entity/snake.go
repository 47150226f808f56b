package entity

import (
	"snake-arcade/game/types"

	"github.com/kamstrup/intmap"
)

// AdvanceResult describes the outcome of a single Snake.Advance.
type AdvanceResult struct {
	NewHead   types.Cell
	AteFood   bool
	Collision types.CollisionType
}

// Collided reports whether the advance ended in a wall or self collision.
func (r AdvanceResult) Collided() bool {
	return r.Collision != types.NoCollision
}

// Snake holds the occupied cells (head first) and the movement direction.
// PendingDirection is the buffered input that becomes Direction at the
// start of the next Advance.
type Snake struct {
	Body             []types.Cell
	Direction        types.Direction
	PendingDirection types.Direction

	grid     types.Grid
	occupied *intmap.Set[int]
}

func NewSnake(grid types.Grid) *Snake {
	s := &Snake{
		grid:     grid,
		occupied: intmap.NewSet[int](grid.Area()),
	}
	s.Reset()
	return s
}

// Reset restores the fixed starting body and direction.
func (s *Snake) Reset() {
	s.Body = types.StartBody()
	s.Direction = types.StartDirection
	s.PendingDirection = types.StartDirection
	s.reindex()
}

func (s *Snake) reindex() {
	s.occupied.Clear()
	for _, c := range s.Body {
		s.occupied.Add(s.grid.Index(c))
	}
}

func (s *Snake) Head() types.Cell {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Cells returns a copy of the body, head first.
func (s *Snake) Cells() []types.Cell {
	body := make([]types.Cell, len(s.Body))
	copy(body, s.Body)
	return body
}

// Occupies reports whether any body segment is on c.
func (s *Snake) Occupies(c types.Cell) bool {
	if !s.grid.Contains(c) {
		return false
	}
	return s.occupied.Has(s.grid.Index(c))
}

// SetPendingDirection buffers d for the next Advance. Later calls overwrite
// earlier ones. A reversal of the committed Direction is rejected while the
// body is longer than one cell. Only the committed direction is compared,
// never the pending one.
func (s *Snake) SetPendingDirection(d types.Direction) bool {
	if !d.Valid() {
		return false
	}
	if len(s.Body) > 1 && d == s.Direction.Opposite() {
		return false
	}
	s.PendingDirection = d
	return true
}

// Advance moves the snake one cell. On a collision the body is left
// untouched. When the new head lands on food the tail is kept and the
// snake grows by one.
func (s *Snake) Advance(food types.Cell) AdvanceResult {
	s.Direction = s.PendingDirection
	newHead := s.Head().Add(s.Direction.Delta())
	res := AdvanceResult{NewHead: newHead}

	if !s.grid.Contains(newHead) {
		res.Collision = types.WallCollision
		return res
	}
	if s.Occupies(newHead) {
		res.Collision = types.SelfCollision
		return res
	}

	s.Body = append(s.Body, types.Cell{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
	s.occupied.Add(s.grid.Index(newHead))

	if newHead == food {
		res.AteFood = true
		return res
	}

	tail := s.Body[len(s.Body)-1]
	s.Body = s.Body[:len(s.Body)-1]
	s.occupied.Del(s.grid.Index(tail))
	return res
}
