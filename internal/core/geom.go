// Package core provides grid geometry, colors and input types shared by the
// simulation and the platform layer. It contains no UI dependencies (especially
// no Bubble Tea) to keep game logic pure and testable.
package core

import (
	"fmt"
	"math/rand"
)

// Cell is a position on the board in pixel units.
// Positions used by the game are always aligned to the grid unit.
type Cell struct {
	X, Y int
}

// C is a convenience constructor for Cell.
func C(x, y int) Cell {
	return Cell{X: x, Y: y}
}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Cell offset by (dx, dy) pixels.
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Direction is an axis-aligned movement vector.
// Each component is -1, 0 or 1 and at most one of them is nonzero.
type Direction struct {
	DX, DY int
}

// Unit directions. Y grows downward (screen coordinates).
var (
	DirUp    = Direction{DX: 0, DY: -1}
	DirDown  = Direction{DX: 0, DY: 1}
	DirLeft  = Direction{DX: -1, DY: 0}
	DirRight = Direction{DX: 1, DY: 0}
)

// Valid reports whether d moves along exactly one axis by one step.
func (d Direction) Valid() bool {
	switch {
	case d.DX == 0 && (d.DY == 1 || d.DY == -1):
		return true
	case d.DY == 0 && (d.DX == 1 || d.DX == -1):
		return true
	}
	return false
}

// Horizontal reports whether d moves along the x axis.
func (d Direction) Horizontal() bool {
	return d.DX != 0
}

// Vertical reports whether d moves along the y axis.
func (d Direction) Vertical() bool {
	return d.DY != 0
}

// Perpendicular reports whether d and other move along different axes.
func (d Direction) Perpendicular(other Direction) bool {
	return (d.Horizontal() && other.Vertical()) || (d.Vertical() && other.Horizontal())
}

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case Direction{}:
		return "none"
	default:
		return fmt.Sprintf("(%d,%d)", d.DX, d.DY)
	}
}

// Grid describes the board: a W x H arrangement of square units,
// each Unit pixels wide.
type Grid struct {
	Unit int // Pixel size of one unit
	W    int // Width in units
	H    int // Height in units
}

// NewGrid creates a grid of w x h units of the given pixel size.
func NewGrid(unit, w, h int) Grid {
	return Grid{Unit: unit, W: w, H: h}
}

// WidthPx returns the board width in pixels.
func (g Grid) WidthPx() int {
	return g.W * g.Unit
}

// HeightPx returns the board height in pixels.
func (g Grid) HeightPx() int {
	return g.H * g.Unit
}

// Cells returns the number of units on the board.
func (g Grid) Cells() int {
	return g.W * g.H
}

// Contains returns true if c lies on the board.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.WidthPx() && c.Y >= 0 && c.Y < g.HeightPx()
}

// Aligned returns true if c sits on a unit boundary.
func (g Grid) Aligned(c Cell) bool {
	return g.Unit > 0 && c.X%g.Unit == 0 && c.Y%g.Unit == 0
}

// Wrap folds c back onto the board with modular arithmetic, so leaving one
// edge re-enters at the opposite one.
func (g Grid) Wrap(c Cell) Cell {
	return Cell{X: wrap(c.X, g.WidthPx()), Y: wrap(c.Y, g.HeightPx())}
}

// Move returns the cell one unit away from c along d, wrapped onto the board.
func (g Grid) Move(c Cell, d Direction) Cell {
	return g.Wrap(c.Add(d.DX*g.Unit, d.DY*g.Unit))
}

// Random returns a uniformly distributed aligned cell on the board.
func (g Grid) Random(rng *rand.Rand) Cell {
	return Cell{
		X: rng.Intn(g.W) * g.Unit,
		Y: rng.Intn(g.H) * g.Unit,
	}
}

func wrap(v, n int) int {
	if n <= 0 {
		return v
	}
	return ((v % n) + n) % n
}
