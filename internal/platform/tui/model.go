package tui

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// ErrDisplay is returned when the terminal cannot host the game.
var ErrDisplay = errors.New("tui: display unavailable")

// EndReason tells why the program stopped.
type EndReason int

const (
	EndNone      EndReason = iota // Program stopped for another reason
	EndQuit                       // User requested quit
	EndCollision                  // Snake ran into itself
)

func (r EndReason) String() string {
	switch r {
	case EndQuit:
		return "quit"
	case EndCollision:
		return "collision"
	default:
		return "none"
	}
}

// Outcome is the final state of a finished round.
type Outcome struct {
	Reason   EndReason
	Snapshot snake.Snapshot
}

// Model is the Bubble Tea model driving one round of snake.
type Model struct {
	state      *snake.State
	palette    snake.Palette
	screen     *core.Screen
	keys       *KeyMapper
	help       help.Model
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	reason     EndReason
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given state.
// A nil logger discards log output.
func NewModel(st *snake.State, palette snake.Palette, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	grid := st.Grid()
	return Model{
		state:      st,
		palette:    palette,
		screen:     core.NewScreen(grid.W, grid.H, palette.Background),
		keys:       NewKeyMapper(),
		help:       help.New(),
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues keyboard input for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.logger.Debug("quit requested", "key", msg.String())
		m.reason = EndQuit
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick runs one simulation tick with the input gathered since the last one.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	in := m.inputFrame
	res := m.state.Tick(in)
	m.inputFrame.Clear()

	if d, ok := in.Direction(); ok {
		m.logger.Debug("direction request", "dir", d, "accepted", res.Turned, "dropped", in.Dropped())
	}
	if res.Ate {
		m.logger.Debug("apple eaten", "length", m.state.Snake().Len())
	}
	if res.Placed {
		m.logger.Debug("apple placed", "at", m.state.Apple().Pos)
	}

	if res.Terminal {
		m.logger.Debug("self collision", "head", m.state.Snake().Head().Pos, "tick", m.state.Ticks())
		m.reason = EndCollision
		m.quitting = true
		return m, tea.Quit
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// Outcome returns how the round ended.
func (m Model) Outcome() Outcome {
	return Outcome{
		Reason:   m.reason,
		Snapshot: m.state.Snapshot(),
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.state.Frame(m.palette).Paint(m.screen)

	status := statusStyle.Render(fmt.Sprintf(" length %d  tick %d",
		m.state.Snake().Len(), m.state.Ticks()))

	return lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen),
		status,
		helpStyle.Render(m.help.View(m.keys.Keys())),
	)
}

// CheckTerminal verifies that f is a terminal large enough for the board.
func CheckTerminal(f *os.File, grid core.Grid) error {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("%w: %s is not a terminal", ErrDisplay, f.Name())
	}

	width, height, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("%w: cannot read terminal size: %w", ErrDisplay, err)
	}

	cols, rows := BoardSize(grid.W, grid.H)
	if width < cols || height < rows {
		return fmt.Errorf("%w: terminal is %dx%d, board needs %dx%d", ErrDisplay, width, height, cols, rows)
	}
	return nil
}

// Run plays one round and blocks until it ends.
func Run(st *snake.State, palette snake.Palette, cfg core.RuntimeConfig, logger *log.Logger) (Outcome, error) {
	model := NewModel(st, palette, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return model.Outcome(), fmt.Errorf("%w: %w", ErrDisplay, err)
	}

	if m, ok := final.(Model); ok {
		return m.Outcome(), nil
	}
	return model.Outcome(), nil
}
