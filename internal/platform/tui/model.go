package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/magnet-maze/internal/core"
	"github.com/vovakirdan/magnet-maze/internal/game"
	"github.com/vovakirdan/magnet-maze/internal/game/level"
	"github.com/vovakirdan/magnet-maze/internal/storage"
)

// Model is the Bubble Tea model for a play session.
type Model struct {
	session    *game.Session
	screen     *core.Screen
	store      *storage.Store
	profile    string
	config     core.RuntimeConfig
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	pointers   *PointerTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	showHelp   bool
	quitting   bool
	recorded   bool // Whether the current outcome has been persisted
}

// NewModel creates a model around a loaded session. store may be nil, in
// which case nothing is persisted.
func NewModel(session *game.Session, store *storage.Store, profile string, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if profile == "" {
		profile = storage.DefaultProfile
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	return Model{
		session:    session,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		profile:    profile,
		config:     cfg,
		logger:     logger,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		pointers:   NewPointerTracker(),
		inputFrame: core.NewInputFrame(),
		gameState:  session.State(),
	}
}

// Start loads the first level of a session for a profile. When cfg.Level
// is zero the stored level is used; a non-nil grid is played instead of a
// generated layout. The instructions overlay is skipped for profiles that
// dismissed it before.
func Start(session *game.Session, store *storage.Store, profile string, cfg core.RuntimeConfig, grid *level.Grid) error {
	if store != nil {
		if cfg.Level == 0 {
			lvl, err := store.Level(profile)
			if err != nil {
				return err
			}
			cfg.Level = lvl
		}
		seen, err := store.HasSeenInstructions(profile)
		if err != nil {
			return err
		}
		if seen {
			session.SetInstructionsVisible(false)
		}
	}

	if grid != nil {
		return session.Load(cfg, grid)
	}
	return session.Reset(cfg)
}

// Init starts the tick loop. The session is already loaded.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		for _, ev := range m.pointers.Translate(msg) {
			m.inputFrame.AddPointer(ev)
		}
		return m, nil

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
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case msg.String() == "?":
		m.showHelp = !m.showHelp
		return m, nil
	}

	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events. The level keeps running;
// only the projection changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.session.Resize(msg.Width, msg.Height)

	// Held pointers were measured against the old projection
	for _, ev := range m.pointers.CancelAll() {
		m.inputFrame.AddPointer(ev)
	}
	return m, nil
}

// handleTick processes session frames.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	prev := m.gameState
	result := m.session.Step(m.inputFrame)
	m.gameState = result.State
	m.persist(prev)

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// persist writes progress after a frame: the instructions flag when the
// overlay closes, and the run record once per outcome.
func (m *Model) persist(prev core.GameState) {
	if !m.gameState.Ended() {
		m.recorded = false
	}
	if m.store == nil {
		return
	}

	if prev.ShowInstructions && !m.gameState.ShowInstructions {
		if err := m.store.SetInstructionsSeen(m.profile, true); err != nil {
			m.logger.Warn("could not save instructions flag", "err", err)
		}
	}

	if !m.gameState.Ended() || m.recorded {
		return
	}
	m.recorded = true

	out := m.session.Outcome()
	run := storage.Run{
		Profile:     m.profile,
		Level:       m.gameState.Level,
		Seed:        m.session.Seed(),
		Outcome:     out.Kind.String(),
		Reason:      out.Reason,
		TimeLeft:    m.gameState.TimeLeft,
		MagnetsUsed: m.gameState.MagnetsPlaced,
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "err", err)
	}
	if out.Kind == game.OutcomeWin {
		next, err := m.store.AdvanceLevel(m.profile, m.gameState.Level)
		if err != nil {
			m.logger.Warn("could not save level", "err", err)
			return
		}
		m.logger.Debug("progress saved", "profile", m.profile, "level", next)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.session.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".magnets", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("level%d_%s.txt", m.session.Level(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showHelp {
		m.help.ShowAll = true
		m.help.Width = m.config.ScreenW
		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			Render("Magnet Maze\n\n" + m.help.View(m.keys))
		return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, box)
	}

	m.session.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the state seen on the last frame.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for a loaded session.
func Run(session *game.Session, store *storage.Store, profile string, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(session, store, profile, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
