package snake

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrStateInit is returned when the game state cannot be set up.
var ErrStateInit = errors.New("snake: cannot create game state")

// Apple is the single piece of food on the board.
type Apple struct {
	Pos    core.Cell
	Exists bool
}

// State owns the snake and the apple and is advanced once per tick.
type State struct {
	grid  core.Grid
	snake *Snake
	apple Apple
	rng   *rand.Rand
	tick  uint64
	over  bool
}

// TickResult reports what happened during one call to Tick.
type TickResult struct {
	Turned   bool // The head accepted a direction change
	Ate      bool // The snake reached the apple and grew
	Placed   bool // A new apple was placed
	Terminal bool // The head ran into the body
	Quit     bool // A quit was requested; the state was not advanced
}

// NewState creates a game state around snake. The apple starts absent and is
// placed by the first Advance. rng is the only random source used for
// placement for the lifetime of the state.
func NewState(s *Snake, grid core.Grid, rng *rand.Rand) (*State, error) {
	switch {
	case s == nil:
		return nil, fmt.Errorf("%w: no snake", ErrStateInit)
	case rng == nil:
		return nil, fmt.Errorf("%w: no random source", ErrStateInit)
	case s.grid != grid:
		return nil, fmt.Errorf("%w: snake grid does not match board", ErrStateInit)
	case s.Len() >= grid.Cells():
		return nil, fmt.Errorf("%w: no room for an apple on %dx%d board", ErrStateInit, grid.W, grid.H)
	}

	return &State{
		grid:  grid,
		snake: s,
		rng:   rng,
	}, nil
}

// Snake returns the snake owned by the state.
func (st *State) Snake() *Snake {
	return st.snake
}

// Apple returns the current apple.
func (st *State) Apple() Apple {
	return st.apple
}

// Grid returns the board geometry.
func (st *State) Grid() core.Grid {
	return st.grid
}

// Ticks returns how many times the state has been advanced.
func (st *State) Ticks() uint64 {
	return st.tick
}

// SetApple places the apple at c, replacing any current one.
func (st *State) SetApple(c core.Cell) {
	st.apple = Apple{Pos: c, Exists: true}
}

// ClearApple removes the apple; the next Advance places a new one.
func (st *State) ClearApple() {
	st.apple.Exists = false
}

// Advance moves the snake one unit, then either feeds it the apple it landed
// on or, if no apple is on the board, places a new one.
func (st *State) Advance() (ate, placed bool) {
	st.tick++
	st.snake.Step()

	if st.apple.Exists {
		if st.snake.Head().Pos == st.apple.Pos {
			st.snake.Grow()
			st.apple.Exists = false
			return true, false
		}
		return false, false
	}

	return false, st.placeApple()
}

// placeApple samples aligned cells until one is free of the snake.
// A snake covering the whole board leaves the apple absent.
func (st *State) placeApple() bool {
	if st.snake.Len() >= st.grid.Cells() {
		return false
	}
	for {
		c := st.grid.Random(st.rng)
		if !st.snake.Intersects(c) {
			st.apple = Apple{Pos: c, Exists: true}
			return true
		}
	}
}

// IsTerminal returns true when the head occupies another body cell.
func (st *State) IsTerminal() bool {
	return st.snake.Collides()
}

// Over returns true once a tick has ended the round.
func (st *State) Over() bool {
	return st.over
}

// Tick runs one simulation step: the first direction of the frame is handed
// to the head, the state advances and the round is checked for collision.
// A quit request ends the round without advancing.
func (st *State) Tick(in core.InputFrame) TickResult {
	var res TickResult
	if st.over {
		res.Terminal = true
		return res
	}
	if in.Quit() {
		st.over = true
		res.Quit = true
		return res
	}

	if d, ok := in.Direction(); ok {
		res.Turned = st.snake.SetDirection(d)
	}

	res.Ate, res.Placed = st.Advance()

	if st.IsTerminal() {
		st.over = true
		res.Terminal = true
	}
	return res
}
