package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// runStats is implemented by games that can describe a finished run in
// more detail than core.GameState.
type runStats interface {
	Moves() int
	Elapsed() time.Duration
}

// Options configure a game model.
type Options struct {
	Store  *storage.Store // Run ledger; nil disables recording
	Logger *log.Logger    // nil discards
	Player string         // Recorded with each run
	// CanLeave lets Back in the game's own menu hand control to the
	// caller, e.g. the SSH variant picker.
	CanLeave bool
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	board      *ScoreboardModel
	quitting   bool
	backToMenu bool
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
	if opts.Player == "" {
		opts.Player = "local"
	}

	h := help.New()
	h.Width = cfg.ScreenW

	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, boardHeight(cfg.ScreenH)),
		opts:       opts,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		keys:       DefaultKeyMap(),
		help:       h,
	}
}

// boardHeight leaves the last terminal row for the help bar.
func boardHeight(h int) int {
	return max(h-1, 0)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.board != nil {
			return m.updateBoard(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Scores):
		// The simulation keeps running, so the board only opens outside play.
		if !m.gameState.InMenu && !m.gameState.GameOver {
			return m, nil
		}
		board := NewScoreboardModel(m.opts.Store, m.game.ID(), m.config.ScreenW, m.config.ScreenH)
		m.board = &board
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionBack && m.gameState.InMenu && m.opts.CanLeave {
		m.backToMenu = true
		return m, nil
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// updateBoard routes messages to the open scoreboard.
func (m Model) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	board, cmd := m.board.Update(msg)
	switch {
	case board.IsQuitting():
		m.quitting = true
		m.board = nil
	case board.Closed():
		m.board = nil
	default:
		m.board = &board
	}
	return m, cmd
}

// handleResize processes window resize events. The grid is fixed, so the
// game keeps running and is re-centered on the next render.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, boardHeight(msg.Height))
	m.help.Width = msg.Width

	if m.board != nil {
		board, _ := m.board.Update(msg)
		m.board = &board
	}
	return m, nil
}

// handleTick runs one simulation frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.Ended {
		m.recordRun(result.State)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordRun writes a finished run to the ledger. Failures are logged and
// the game continues.
func (m Model) recordRun(st core.GameState) {
	run := storage.Run{
		Variant: m.game.ID(),
		Player:  m.opts.Player,
		Score:   st.Score,
		Length:  st.Length,
		Reason:  st.Reason,
	}
	if rs, ok := m.game.(runStats); ok {
		run.Moves = rs.Moves()
		run.Duration = rs.Elapsed()
	}

	m.logger.Info("run finished",
		"variant", run.Variant,
		"player", run.Player,
		"score", run.Score,
		"length", run.Length,
		"reason", run.Reason,
		"duration", run.Duration,
	)

	if m.opts.Store == nil {
		return
	}
	if _, err := m.opts.Store.RecordRun(run); err != nil {
		m.logger.Warn("could not record run", "error", err)
	}
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	if m.board != nil {
		return m.board.View()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to leave the game.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a Bubble Tea program for one game in the current terminal.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
