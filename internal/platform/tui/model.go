package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/voxelpad/internal/core"
	"github.com/vovakirdan/voxelpad/internal/game"
	"github.com/vovakirdan/voxelpad/internal/storage"
)

// helpBarHeight is the screen rows reserved below the sandbox view.
const helpBarHeight = 1

// Model is the Bubble Tea model running the sandbox.
type Model struct {
	sandbox    *game.Sandbox
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	started    time.Time
	quitting   bool
	saved      bool // Whether the session has been recorded
}

// NewModel creates a new Bubble Tea model for the given sandbox.
func NewModel(sandbox *game.Sandbox, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		sandbox:    sandbox,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpBarHeight),
		store:      store,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		started:    time.Now(),
	}
}

// Init initializes the model and starts the sandbox.
func (m Model) Init() tea.Cmd {
	m.sandbox.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.BlurMsg:
		// Losing terminal focus ends any drag in progress
		m.inputFrame.AddPointer(core.PointerLeave, 0, 0)
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
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if isQuit := m.keys.MapKeyToFrame(msg, &m.inputFrame); isQuit {
		// Let the sandbox observe the quit action on the next tick; the
		// session is recorded there with final counters.
		return m, nil
	}
	return m, nil
}

// handleResize processes window resize events.
// The world survives a resize; only the view buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, core.Max(1, msg.Height-helpBarHeight))
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.sandbox.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.Quit {
		m.recordSession()
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// recordSession saves the session stats once, best-effort.
func (m *Model) recordSession() {
	if m.saved || m.store == nil {
		return
	}
	m.saved = true
	//nolint:errcheck // Best-effort save, quitting regardless
	m.store.SaveSession(
		m.sandbox.PresetID(),
		time.Since(m.started),
		m.gameState.Placed,
		m.gameState.Removed,
	)
}

// saveScreenshot saves the current view to a file.
func (m *Model) saveScreenshot() {
	m.sandbox.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".voxelpad", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.sandbox.PresetID(), timestamp))

	//nolint:errcheck // Best-effort save, sandbox continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.sandbox.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for a sandbox session.
func Run(sandbox *game.Sandbox, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(sandbox, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Drag and click input
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	return err
}
