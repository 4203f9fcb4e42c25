package entity

import (
	"gosnake/game/types"
)

// Snake is the player body as an ordered cell sequence. The head is
// Body[0], the tail is the last element. The core owner serializes all
// calls, so the entity carries no locking of its own.
type Snake struct {
	Body      []types.Point
	Direction types.Direction
	Score     int
}

// NewSnake builds a snake of the given length with its head at startPos
// and the rest of the body trailing opposite to the movement direction.
func NewSnake(startPos types.Point, length int, dir types.Direction) *Snake {
	if length < 1 {
		length = 1
	}
	back := dir.Opposite().ToPoint()
	body := make([]types.Point, length)
	cell := startPos
	for i := range body {
		body[i] = cell
		cell = cell.Add(back)
	}
	return &Snake{
		Body:      body,
		Direction: dir,
		Score:     0,
	}
}

// Head returns the leading cell.
func (s *Snake) Head() types.Point {
	return s.Body[0]
}

// Tail returns the last cell, the one vacated on a plain move.
func (s *Snake) Tail() types.Point {
	return s.Body[len(s.Body)-1]
}

// Len returns the current body length.
func (s *Snake) Len() int {
	return len(s.Body)
}

// Occupies reports whether any body cell equals p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if p == part {
			return true
		}
	}
	return false
}

// Advance moves the snake one cell: the new head is prepended and the
// tail removed, keeping the length unchanged.
func (s *Snake) Advance(newHead types.Point) {
	copy(s.Body[1:], s.Body[:len(s.Body)-1])
	s.Body[0] = newHead
}

// Grow prepends the new head without removing the tail. Used on the
// tick the snake eats; length increases by one.
func (s *Snake) Grow(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body[:len(s.Body)-1])
	s.Body[0] = newHead
}
