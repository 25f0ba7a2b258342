package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/diag"
	"github.com/vovakirdan/tui-dodge/internal/registry"
	"github.com/vovakirdan/tui-dodge/internal/replay"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

// Options configures a game session in the terminal.
type Options struct {
	Store       *storage.Store // Journal for finished runs; nil disables saving
	Diagnostics bool           // Show the FPS overlay from the start
	Replay      *core.RunLog   // Play back this run instead of reading keys
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool

	stats     *diag.FrameStats
	showStats bool
	lastTick  time.Time

	script     *replay.Script // nil unless replaying
	replayTick int
	replayDone bool

	lastRun *storage.Run // most recent journaled run
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if opts.Replay != nil {
		cfg = replay.RuntimeConfig(*opts.Replay, cfg.ScreenW, cfg.ScreenH)
	} else if cfg.Seed == 0 {
		// Use time-based seed if not specified
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		store:      opts.Store,
		logger:     log.Default().WithPrefix("tui"),
		config:     cfg,
		keys:       NewKeyMapper(DefaultKeyMap()),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		stats:      &diag.FrameStats{},
		showStats:  opts.Diagnostics,
	}
	if opts.Replay != nil {
		m.script = replay.NewScript(*opts.Replay)
	}

	// Reset here rather than in Init: Init has a value receiver.
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
}

// gameHeight leaves the last terminal row for the help line.
func gameHeight(h int) int {
	return core.Max(h-1, 1)
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
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys().Diagnostics) {
		m.showStats = !m.showStats
		if m.showStats {
			// Start the overlay from fresh samples.
			m.stats.Reset()
			m.lastTick = time.Time{}
		}
		return m, nil
	}

	// A replay only listens for quit.
	frame := &m.inputFrame
	if m.script != nil {
		frame = &core.InputFrame{}
	}
	if m.keys.MapKeyToFrame(msg, frame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The game scales its world
// to the screen, so no reset is needed.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.lastTick.IsZero() {
		m.stats.Add(1 / now.Sub(m.lastTick).Seconds())
	}
	m.lastTick = now

	if m.script != nil {
		m.stepReplay()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if result.Ended != nil {
		m.saveRun(*result.Ended)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// stepReplay feeds the next recorded frame to the game. Once the recorded
// run has ended the game is left frozen on its final frame.
func (m *Model) stepReplay() {
	if m.replayDone {
		return
	}
	result := m.game.Step(m.script.Frame(m.replayTick))
	m.replayTick++
	m.gameState = result.State
	if result.Ended != nil || m.replayTick >= m.script.Len() {
		m.replayDone = true
	}
}

// saveRun appends a finished run to the journal. Failures are logged and
// never interrupt the game.
func (m *Model) saveRun(run core.RunLog) {
	if m.store == nil {
		return
	}
	saved, err := m.store.SaveRun(m.game.ID(), run)
	if err != nil {
		m.logger.Warn("cannot journal run", "game", m.game.ID(), "error", err)
		return
	}
	m.lastRun = &saved
	m.logger.Debug("run journaled", "id", saved.ID, "score", saved.Score, "reason", saved.Reason)
}

// LastRun returns the most recently journaled run, or nil.
func (m Model) LastRun() *storage.Run {
	return m.lastRun
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.showStats {
		m.drawStats()
	}
	if m.script != nil {
		m.drawReplayBanner()
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.ShortHelpView(m.keys.Keys().ShortHelp()))
}

// drawStats draws the FPS overlay in the top-right corner.
func (m Model) drawStats() {
	lines := m.stats.Lines()
	width := 0
	for _, l := range lines {
		width = core.Max(width, len(l))
	}
	x := m.screen.Width() - width - 1
	for i, l := range lines {
		m.screen.DrawText(x, i, l, core.ColorCyan)
	}
}

func (m Model) drawReplayBanner() {
	text := fmt.Sprintf("REPLAY %d/%d", m.replayTick, m.script.Len())
	if m.replayDone {
		text = "REPLAY OVER  q to quit"
	}
	m.screen.DrawText(1, m.screen.Height()-1, text, core.ColorGray)
}

// Run starts the Bubble Tea program for the game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
