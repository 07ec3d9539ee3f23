package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// cellWidth is the number of terminal columns per board unit.
// Terminal cells are roughly twice as tall as wide.
const cellWidth = 2

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// BoardSize returns the terminal columns and rows needed for a board of
// w x h units, including the status and help lines.
func BoardSize(w, h int) (cols, rows int) {
	return w * cellWidth, h + 2
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent units with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	styles := make(map[core.Color]lipgloss.Style)
	styleFor := func(c core.Color) lipgloss.Style {
		style, ok := styles[c]
		if !ok {
			style = lipgloss.NewStyle().Background(lipgloss.Color(c.Hex()))
			styles[c] = style
		}
		return style
	}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*cellWidth*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive units with the same color for efficiency
		x := 0
		for x < s.Width() {
			start := s.Get(x, y)
			run := 0
			for x < s.Width() && s.Get(x, y) == start {
				run++
				x++
			}
			sb.WriteString(styleFor(start).Render(strings.Repeat(" ", run*cellWidth)))
		}
	}
	return sb.String()
}
