package core

// Screen is a 2D color buffer with one entry per board unit.
// It decouples game rendering from the terminal: the game paints units and
// the platform turns them into styled text.
type Screen struct {
	width      int
	height     int
	background Color
	cells      [][]Color
}

// NewScreen creates a new screen buffer cleared to the background color.
func NewScreen(width, height int, background Color) *Screen {
	s := &Screen{
		width:      width,
		height:     height,
		background: background,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Color, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Color, s.width)
	}
}

// Width returns the screen width in units.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in units.
func (s *Screen) Height() int {
	return s.height
}

// Background returns the clear color.
func (s *Screen) Background() Color {
	return s.background
}

// Clear fills the entire screen with the background color.
func (s *Screen) Clear() {
	s.Fill(s.background)
}

// Fill fills the entire screen with the given color.
func (s *Screen) Fill(c Color) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = c
		}
	}
}

// Set paints the unit at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// Get returns the color at the given position.
// Returns the background for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return s.background
	}
	return s.cells[y][x]
}
