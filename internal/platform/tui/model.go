package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-relativity/internal/config"
	"github.com/vovakirdan/tui-relativity/internal/core"
	"github.com/vovakirdan/tui-relativity/internal/game"
	"github.com/vovakirdan/tui-relativity/internal/levels"
	"github.com/vovakirdan/tui-relativity/internal/storage"
)

// Env is everything a play session needs besides the terminal.
type Env struct {
	Catalog    *levels.Catalog
	Physics    config.PhysicsConfig
	Difficulty config.DifficultyPreset
	Store      *storage.Store
}

// Tuned returns the physics config with the difficulty preset applied.
// Physics holds the untouched base config so the preset can change between
// runs.
func (e Env) Tuned() config.PhysicsConfig {
	p := e.Physics
	p.ApplyPreset(e.Difficulty)
	return p
}

// Model is the Bubble Tea model for playing levels.
type Model struct {
	game       *game.Game
	env        Env
	screen     *core.Screen
	renderer   *Renderer
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  game.State
	player     string
	standalone bool // quit the program instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// NewModel creates a play model starting at level.
func NewModel(env Env, level levels.Level, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game.New(level, env.Tuned()),
		env:        env,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer:   NewRenderer(nil),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// WithPlayer tags stored runs with a player name.
func (m Model) WithPlayer(name string) Model {
	m.player = name
	return m
}

// WithRenderer sets the renderer used by View.
func (m Model) WithRenderer(r *Renderer) Model {
	m.renderer = r
	return m
}

// Standalone makes Back quit the program.
func (m Model) Standalone() Model {
	m.standalone = true
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
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

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) {
		return m.leave()
	}
	return m, nil
}

func (m Model) leave() (tea.Model, tea.Cmd) {
	m.backToMenu = true
	if m.standalone {
		return m, tea.Quit
	}
	return m, nil
}

// handleResize keeps the run going at the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	// Level switching: "next" at any time, or continue after an arrival.
	wantsNext := m.inputFrame.Has(core.ActionNext) ||
		(m.gameState.Phase == game.PhaseFinished && m.inputFrame.Has(core.ActionConfirm))
	if wantsNext {
		m.inputFrame.Clear()
		if m.env.Catalog == nil {
			return m.leave()
		}
		next, ok := m.env.Catalog.Next(m.game.Level().ID)
		if !ok {
			return m.leave()
		}
		m.game.LoadLevel(next)
		m.gameState = m.game.State()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.Has(game.EventFinished) {
		m.saveRun(result.State)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveRun stores a completed run.
func (m *Model) saveRun(s game.State) {
	if m.env.Store == nil {
		return
	}
	difficulty := m.env.Difficulty
	if difficulty == "" {
		difficulty = config.DifficultyNormal
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.env.Store.SaveRun(storage.Run{
		LevelID:        s.LevelID,
		Player:         m.player,
		Difficulty:     string(difficulty),
		ProperDays:     s.ProperDays(),
		ObserverDays:   s.ObserverDays(),
		LaunchFraction: s.LaunchFraction,
		Rate:           s.Rate,
	})
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".relativity", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("level%s_%s.txt", m.game.Level().ID, timestamp)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.renderer.Render(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last stepped game state.
func (m Model) State() game.State {
	return m.gameState
}

// Run plays from level until the player quits or backs out, and reports
// whether they asked to go back.
func Run(env Env, level levels.Level, cfg core.RuntimeConfig) (back bool, err error) {
	model := NewModel(env, level, cfg).Standalone()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse drives aiming
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	return ok && m.BackToMenu(), nil
}
