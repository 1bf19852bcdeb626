package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// helpLines is the number of rows kept below the game screen for key help.
const helpLines = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configures a game model.
type Options struct {
	Logger  *log.Logger // nil discards log output
	Palette Palette     // nil uses ColorPalette
}

// Model is the Bubble Tea model for running a Tetris session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	logger     *log.Logger
	palette    Palette
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	palette := opts.Palette
	if palette == nil {
		palette = ColorPalette
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(0, cfg.ScreenH-helpLines)),
		logger:     logger,
		palette:    palette,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("session started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, max(0, m.config.ScreenH-m.helpHeight()))
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.logger.Info("session ended", "game", m.game.ID(), "score", m.gameState.Score)
		return m, tea.Quit
	}
	m.logger.Debug("key", "key", msg.String())
	return m, nil
}

// handleResize resizes the screen buffer. The game keeps its state; the
// renderer recenters the layout.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(0, msg.Height-m.helpHeight()))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step with the queued input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logEvents(result.Events)

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// logEvents records notable game events.
func (m Model) logEvents(events []core.Event) {
	for _, e := range events {
		switch e.Type {
		case core.EventPieceLocked:
			m.logger.Debug("piece locked", "pieces", e.Value)
		case core.EventLinesCleared:
			m.logger.Info("lines cleared", "lines", e.Value, "score", m.gameState.Score)
		case core.EventSpeedChanged:
			m.logger.Info("speed changed", "speed", e.Value)
		case core.EventGameOver:
			m.logger.Info("game over", "game", m.game.ID(), "score", e.Value)
		case core.EventRestarted:
			m.logger.Info("game restarted", "game", m.game.ID())
		}
	}
}

// helpHeight is the number of rows the help view needs.
func (m Model) helpHeight() int {
	if !m.help.ShowAll {
		return helpLines
	}
	rows := 0
	for _, column := range m.keyMapper.Keys().FullHelp() {
		rows = max(rows, len(column))
	}
	return rows
}

// State returns the last state reported by the game.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(m.palette.Render(m.screen))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keyMapper.Keys())))
	return b.String()
}

// Run starts the Bubble Tea program for a game and returns the final state.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (core.GameState, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return core.GameState{}, err
	}
	if m, ok := final.(Model); ok {
		return m.State(), nil
	}
	return core.GameState{}, nil
}
