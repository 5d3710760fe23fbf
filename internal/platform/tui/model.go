package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/daedalus-crawl/daedalus/internal/core"
	"github.com/daedalus-crawl/daedalus/internal/crawl"
	"github.com/daedalus-crawl/daedalus/internal/storage"
)

// Model is the Bubble Tea model for running a crawl session.
type Model struct {
	game       *crawl.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	startedAt  time.Time
	quitting   bool
	runSaved   bool // Whether the current win has been persisted
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *crawl.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		startedAt:  time.Now(),
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
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Re-layout on the same map; the dungeon itself is unaffected
	m.game.Reset(core.RuntimeConfig{
		ScreenW:  msg.Width,
		ScreenH:  msg.Height,
		TickRate: m.config.TickRate,
		Seed:     m.game.Seed(),
	})
	m.gameState = m.game.State()
	m.runSaved = false
	m.startedAt = time.Now()

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasWon := m.gameState.Won

	m.gameState = m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	// Persist the run once per win
	if m.gameState.Won && !wasWon && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}
	if !m.gameState.Won {
		m.runSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun persists the current dungeon and the completed run.
// Best-effort: a storage failure never interrupts play.
func (m *Model) saveRun() {
	if m.store == nil || m.game.Dungeon() == nil {
		return
	}

	dungeonID, err := m.store.SaveDungeon(m.game.Dungeon(), m.game.Method())
	if err != nil {
		return
	}

	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRun(storage.RunRecord{
		DungeonID: dungeonID,
		Steps:     m.gameState.Steps,
		PathLen:   m.game.PathLen(),
		Completed: true,
		Duration:  int(time.Since(m.startedAt).Seconds()),
	})
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game *crawl.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
