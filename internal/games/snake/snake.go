// Package snake implements the snake simulation: the body, the apple and the
// per-tick state update. It has no UI dependencies; the platform feeds it
// input frames and draws its Frame.
package snake

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrSnakeInit is returned when a snake cannot be built from its configuration.
var ErrSnakeInit = errors.New("snake: cannot create snake")

// Segment is one body cell together with the direction it is travelling.
// The head's direction drives movement; the others only matter for growth.
type Segment struct {
	Pos core.Cell
	Dir core.Direction
}

// Snake is the body, stored tail first and head last.
type Snake struct {
	grid core.Grid
	body []Segment
}

// New builds a snake of the given size with its head at start moving along
// dir. The remaining cells are laid out behind the head.
func New(grid core.Grid, start core.Cell, dir core.Direction, size int) (*Snake, error) {
	switch {
	case grid.Unit <= 0 || grid.W <= 0 || grid.H <= 0:
		return nil, fmt.Errorf("%w: invalid grid %dx%d unit %d", ErrSnakeInit, grid.W, grid.H, grid.Unit)
	case size < 1:
		return nil, fmt.Errorf("%w: size %d", ErrSnakeInit, size)
	case !dir.Valid():
		return nil, fmt.Errorf("%w: direction %v is not axis-aligned", ErrSnakeInit, dir)
	case !grid.Contains(start) || !grid.Aligned(start):
		return nil, fmt.Errorf("%w: start %v is not an aligned board cell", ErrSnakeInit, start)
	}

	// The body lies on one row or column and must not wrap onto the head.
	extent := grid.W
	if dir.Vertical() {
		extent = grid.H
	}
	if size > extent {
		return nil, fmt.Errorf("%w: size %d does not fit %d units", ErrSnakeInit, size, extent)
	}

	s := &Snake{
		grid: grid,
		body: make([]Segment, 1, size),
	}
	s.body[0] = Segment{Pos: start, Dir: dir}
	for s.Len() < size {
		s.Grow()
	}
	return s, nil
}

// Len returns the number of cells in the body.
func (s *Snake) Len() int {
	return len(s.body)
}

// Head returns the leading segment.
func (s *Snake) Head() Segment {
	return s.body[len(s.body)-1]
}

// Tail returns the trailing segment.
func (s *Snake) Tail() Segment {
	return s.body[0]
}

// Direction returns the head's direction.
func (s *Snake) Direction() core.Direction {
	return s.Head().Dir
}

// Cells returns a copy of the body positions from tail to head.
func (s *Snake) Cells() []core.Cell {
	cells := make([]core.Cell, len(s.body))
	for i, seg := range s.body {
		cells[i] = seg.Pos
	}
	return cells
}

// Segments returns a copy of the body from tail to head.
func (s *Snake) Segments() []Segment {
	return append([]Segment(nil), s.body...)
}

// Grow adds one cell behind the tail, continuing the tail's direction.
func (s *Snake) Grow() {
	tail := s.body[0]
	seg := Segment{
		Pos: s.grid.Move(tail.Pos, tail.Dir.Opposite()),
		Dir: tail.Dir,
	}
	s.body = append(s.body, Segment{})
	copy(s.body[1:], s.body)
	s.body[0] = seg
}

// Step moves the snake one unit. Every segment takes the position and
// direction its head-ward neighbour had before the step, then the head
// advances along its own direction.
func (s *Snake) Step() {
	// Walking tail to head reads each neighbour before it is overwritten.
	last := len(s.body) - 1
	for i := 0; i < last; i++ {
		s.body[i] = s.body[i+1]
	}
	head := &s.body[last]
	head.Pos = s.grid.Move(head.Pos, head.Dir)
}

// SetDirection turns the head. Only a turn onto the other axis is accepted;
// continuing or reversing along the current axis is ignored.
func (s *Snake) SetDirection(d core.Direction) bool {
	head := &s.body[len(s.body)-1]
	if !d.Valid() || !head.Dir.Perpendicular(d) {
		return false
	}
	head.Dir = d
	return true
}

// Intersects returns true if any cell of the body, head included, is at c.
func (s *Snake) Intersects(c core.Cell) bool {
	for _, seg := range s.body {
		if seg.Pos == c {
			return true
		}
	}
	return false
}

// Collides returns true if the head shares a cell with the rest of the body.
func (s *Snake) Collides() bool {
	last := len(s.body) - 1
	head := s.body[last].Pos
	for _, seg := range s.body[:last] {
		if seg.Pos == head {
			return true
		}
	}
	return false
}
