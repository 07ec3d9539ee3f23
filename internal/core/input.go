package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // W, K, Up arrow
	ActionDown         // S, J, Down arrow
	ActionLeft         // A, H, Left arrow
	ActionRight        // D, L, Right arrow
	ActionQuit         // Q, Esc, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction returns the movement vector for a directional action.
func (a Action) Direction() (Direction, bool) {
	switch a {
	case ActionUp:
		return DirUp, true
	case ActionDown:
		return DirDown, true
	case ActionLeft:
		return DirLeft, true
	case ActionRight:
		return DirRight, true
	}
	return Direction{}, false
}

// InputFrame collects the key-down events delivered between two ticks.
// Only the first directional action of a frame is kept; later ones are
// discarded. Quit is sticky for the frame.
type InputFrame struct {
	dir     Action
	quit    bool
	dropped int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records an action for this frame.
// Returns false if the action was discarded.
func (f *InputFrame) Set(a Action) bool {
	if a == ActionQuit {
		f.quit = true
		return true
	}
	if _, ok := a.Direction(); !ok {
		return false
	}
	if f.dir != ActionNone {
		f.dropped++
		return false
	}
	f.dir = a
	return true
}

// Has returns true if the given action was recorded this frame.
func (f InputFrame) Has(a Action) bool {
	if a == ActionQuit {
		return f.quit
	}
	return a != ActionNone && f.dir == a
}

// Direction returns the first directional action of the frame, if any.
func (f InputFrame) Direction() (Direction, bool) {
	return f.dir.Direction()
}

// Quit returns true if a quit was requested this frame.
func (f InputFrame) Quit() bool {
	return f.quit
}

// Dropped returns how many directional actions were discarded this frame.
func (f InputFrame) Dropped() int {
	return f.dropped
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	*f = InputFrame{}
}
