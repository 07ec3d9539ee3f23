package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Palette holds the three colors of the board.
type Palette struct {
	Background core.Color
	Snake      core.Color
	Apple      core.Color
}

// DefaultPalette returns black background, green snake, red apple.
func DefaultPalette() Palette {
	return Palette{
		Background: core.ColorBlack,
		Snake:      core.ColorGreen,
		Apple:      core.ColorRed,
	}
}

// Frame is the read-only view handed to the renderer each tick.
// Apple is drawn first, then the snake cells in tail to head order.
type Frame struct {
	Unit     int
	WidthPx  int
	HeightPx int
	Colors   Palette
	Apple    *core.Cell  // nil when no apple is on the board
	Snake    []core.Cell // Tail to head
}

// Frame captures the current state for drawing.
func (st *State) Frame(p Palette) Frame {
	f := Frame{
		Unit:     st.grid.Unit,
		WidthPx:  st.grid.WidthPx(),
		HeightPx: st.grid.HeightPx(),
		Colors:   p,
		Snake:    st.snake.Cells(),
	}
	if st.apple.Exists {
		apple := st.apple.Pos
		f.Apple = &apple
	}
	return f
}

// Paint draws the frame onto a screen with one entry per unit.
func (f Frame) Paint(dst *core.Screen) {
	dst.Fill(f.Colors.Background)
	if f.Unit <= 0 {
		return
	}
	if f.Apple != nil {
		dst.Set(f.Apple.X/f.Unit, f.Apple.Y/f.Unit, f.Colors.Apple)
	}
	for _, c := range f.Snake {
		dst.Set(c.X/f.Unit, c.Y/f.Unit, f.Colors.Snake)
	}
}
