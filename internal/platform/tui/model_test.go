package tui

import (
	"math/rand"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func newTestModel(t *testing.T) (Model, *snake.State) {
	t.Helper()
	grid := core.NewGrid(10, 30, 30)
	s, err := snake.New(grid, core.C(150, 150), core.DirLeft, 3)
	if err != nil {
		t.Fatalf("snake.New() error: %v", err)
	}
	st, err := snake.NewState(s, grid, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("snake.NewState() error: %v", err)
	}
	return NewModel(st, snake.DefaultPalette(), core.RuntimeConfig{TickRate: 10}, nil), st
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelTickAppliesFirstDirection(t *testing.T) {
	m, st := newTestModel(t)
	st.SetApple(core.C(0, 0))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, cmd := update(t, m, TickMsg{})

	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	if st.Ticks() != 1 {
		t.Errorf("Ticks() = %d, expected 1", st.Ticks())
	}
	if st.Snake().Direction() != core.DirUp {
		t.Errorf("direction = %v, expected up", st.Snake().Direction())
	}
	if st.Snake().Head().Pos != core.C(150, 140) {
		t.Errorf("head at %v, expected (150,140)", st.Snake().Head().Pos)
	}

	// Input is cleared between ticks.
	m, _ = update(t, m, TickMsg{})
	if st.Snake().Head().Pos != core.C(150, 130) {
		t.Errorf("head at %v, expected (150,130)", st.Snake().Head().Pos)
	}
	if m.Outcome().Reason != EndNone {
		t.Errorf("reason = %v, expected none", m.Outcome().Reason)
	}
}

func TestModelQuitKey(t *testing.T) {
	m, st := newTestModel(t)

	m, cmd := update(t, m, runeKey('q'))
	if !isQuit(cmd) {
		t.Fatal("q should quit the program")
	}
	if m.Outcome().Reason != EndQuit {
		t.Errorf("reason = %v, expected quit", m.Outcome().Reason)
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}

	// A tick already in flight does nothing.
	update(t, m, TickMsg{})
	if st.Ticks() != 0 {
		t.Errorf("Ticks() = %d, expected 0 after quit", st.Ticks())
	}
}

func TestModelQuitsOnCollision(t *testing.T) {
	grid := core.NewGrid(10, 30, 30)
	s, err := snake.New(grid, core.C(150, 150), core.DirLeft, 5)
	if err != nil {
		t.Fatal(err)
	}
	st, err := snake.NewState(s, grid, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	st.SetApple(core.C(0, 0))
	m := NewModel(st, snake.DefaultPalette(), core.RuntimeConfig{TickRate: 10}, nil)

	var cmd tea.Cmd
	for _, k := range []tea.KeyType{tea.KeyUp, tea.KeyRight, tea.KeyDown} {
		m, _ = update(t, m, tea.KeyMsg{Type: k})
		m, cmd = update(t, m, TickMsg{})
	}

	if !isQuit(cmd) {
		t.Fatal("collision should quit the program")
	}
	out := m.Outcome()
	if out.Reason != EndCollision {
		t.Errorf("reason = %v, expected collision", out.Reason)
	}
	if !out.Snapshot.Over || out.Snapshot.Tick != 3 {
		t.Errorf("snapshot = %v, expected over at tick 3", out.Snapshot)
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, TickMsg{})

	view := m.View()
	lines := strings.Split(view, "\n")
	if len(lines) < 31 {
		t.Fatalf("view has %d lines, expected board plus status", len(lines))
	}
	for i := 0; i < 30; i++ {
		if w := lipgloss.Width(lines[i]); w < 60 {
			t.Errorf("board line %d is %d columns, expected at least 60", i, w)
		}
	}
	if !strings.Contains(view, "length 3") {
		t.Error("status line should show the snake length")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(4, 3, core.ColorBlack)
	s.Set(1, 1, core.ColorGreen)
	s.Set(2, 1, core.ColorRed)

	lines := strings.Split(RenderScreen(s), "\n")
	if len(lines) != 3 {
		t.Fatalf("rendered %d lines, expected 3", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 8 {
			t.Errorf("line %d is %d columns, expected 8", i, w)
		}
	}
}

func TestBoardSize(t *testing.T) {
	cols, rows := BoardSize(30, 30)
	if cols != 60 || rows != 32 {
		t.Errorf("BoardSize(30, 30) = %d, %d, expected 60, 32", cols, rows)
	}
}
