package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// boardStyle paints each grid cell as two solid terminal columns.
var boardStyle = core.FrameStyle{CellWidth: 2, Fill: '█'}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model driving one snake game.
type Model struct {
	game       *snake.Game
	screen     *core.Screen
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	boardW     int // Board size in screen cells
	boardH     int
	width      int // Terminal size
	height     int
	quitting   bool
}

// NewModel creates a model for game sized to a width x height terminal.
// A nil logger discards all output.
func NewModel(game *snake.Game, logger *log.Logger, width, height int) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := Model{
		game:       game,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		logger:     logger,
		inputFrame: core.NewInputFrame(),
	}
	m.boardW, m.boardH = core.FrameSize(game.Frame(), boardStyle)
	m.screen = core.NewScreen(0, 0)
	m.resize(width, height)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.game.TickRate())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the mapped action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if action := m.keys.Action(msg); action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleTick runs one game step with the input collected since the last tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	if result.State.Terminated() {
		m.logger.Info("quitting", "tick", result.State.Tick, "length", result.State.Length, "resets", result.State.Resets)
		m.quitting = true
		return m, tea.Quit
	}
	if result.Reset {
		m.logger.Debug("game reset", "tick", result.State.Tick, "resets", result.State.Resets)
	}

	return m, tickCmd(m.game.TickRate())
}

// resize keeps the last terminal line for the help view when it fits.
func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width
	if m.showHelp() {
		height--
	}
	m.screen.Resize(max(0, width), max(0, height))
}

// fits reports whether the board fits in the terminal.
func (m Model) fits() bool {
	return m.boardW <= m.width && m.boardH <= m.height
}

// showHelp reports whether there is a spare line under the board.
func (m Model) showHelp() bool {
	return m.fits() && m.boardH < m.height
}

// draw renders the game, or a notice if the terminal is too small, into the screen.
func (m Model) draw() {
	m.screen.Clear()
	if !m.fits() {
		m.drawTooSmall()
		return
	}

	style := boardStyle
	style.OffsetX = (m.screen.Width() - m.boardW) / 2
	style.OffsetY = (m.screen.Height() - m.boardH) / 2
	m.screen.DrawFrame(m.game.Frame(), style)
}

// drawTooSmall draws a centred notice with the required terminal size.
func (m Model) drawTooSmall() {
	lines := []string{
		"Window too small",
		fmt.Sprintf("need %dx%d, have %dx%d", m.boardW, m.boardH, m.width, m.height),
	}
	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, len(l))
	}
	boxW += 4
	boxH := len(lines) + 2

	x := (m.screen.Width() - boxW) / 2
	y := (m.screen.Height() - boxH) / 2
	if boxW <= m.screen.Width() && boxH <= m.screen.Height() {
		m.screen.DrawBox(core.NewRect(x, y, boxW, boxH))
	}
	for i, l := range lines {
		m.screen.DrawTextCentered(y+1+i, l)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	out := RenderScreen(m.screen)
	if m.showHelp() {
		out += "\n" + lipgloss.PlaceHorizontal(m.width, lipgloss.Center, helpStyle.Render(m.help.View(m.keys)))
	}
	return out
}

// Run starts the Bubble Tea program for game on the alternate screen.
func Run(game *snake.Game, logger *log.Logger, width, height int) error {
	model := NewModel(game, logger, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
