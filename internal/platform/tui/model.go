package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// statusHeight is the number of rows below the playfield.
const statusHeight = 1

// Options configures a game model.
type Options struct {
	Runtime core.RuntimeConfig
	Nudge   float64     // Paddle motion per arrow key, in world units
	Logger  *log.Logger // Nil discards log output
}

// Model is the Bubble Tea model for a Breakout session.
type Model struct {
	session *breakout.Session
	queue   *core.EventQueue
	screen  *core.Screen
	config  core.RuntimeConfig
	keys    KeyMap
	mapper  *KeyMapper
	help    help.Model
	logger  *log.Logger

	// Last pointer cell, used to turn absolute mouse positions into deltas
	mouseX, mouseY int
	mouseSeen      bool

	lastErr  error
	quitting bool
}

// NewModel creates a Bubble Tea model driving the given session.
func NewModel(session *breakout.Session, opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := DefaultKeyMap()
	return Model{
		session: session,
		queue:   &core.EventQueue{},
		screen:  core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-statusHeight, 1)),
		config:  cfg,
		keys:    keys,
		mapper:  NewKeyMapper(keys, opts.Nudge),
		help:    help.New(),
		logger:  logger,
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

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the event for a key; it is applied on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "?" {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	if ev, ok := m.mapper.MapKey(msg); ok {
		m.queue.Push(ev)
	}
	return m, nil
}

// handleMouse converts pointer movement between cells into relative motion
// in world units.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionMotion {
		return m, nil
	}

	if m.mouseSeen {
		dx, dy := msg.X-m.mouseX, msg.Y-m.mouseY
		if dx != 0 || dy != 0 {
			wx, wy := m.cellsToWorld(dx, dy)
			m.queue.Push(core.MouseMotion(wx, wy))
		}
	}

	m.mouseX, m.mouseY, m.mouseSeen = msg.X, msg.Y, true
	return m, nil
}

// cellsToWorld scales a cell delta by the current viewport.
func (m Model) cellsToWorld(dx, dy int) (float64, float64) {
	arena := m.session.Arena()
	sx := arena.Width / float64(max(m.screen.Width(), 1))
	sy := arena.Height / float64(max(m.screen.Height(), 1))
	return float64(dx) * sx, float64(dy) * sy
}

// handleResize rescales the playfield. World state is untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-statusHeight, 1))
	m.help.Width = msg.Width
	m.mouseSeen = false
	return m, nil
}

// handleTick drains queued events, then advances the simulation once.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	for _, ev := range m.queue.Drain() {
		if ev.Kind == core.EventKeyDown && ev.Key == core.KeyRestart {
			m.restart()
			continue
		}
		if !m.session.HandleEvent(ev) {
			m.logger.Info("player left", "tick", m.session.Tick(), "remaining", m.session.Remaining())
			m.quitting = true
			return m, tea.Quit
		}
	}

	if m.session.Outcome().Ended() {
		return m, tickCmd(m.config.TickRate)
	}

	res := m.session.Step()
	for _, b := range res.Destroyed {
		m.logger.Debug("brick destroyed",
			"row", b.Row,
			"col", b.Col,
			"kind", b.Kind,
			"remaining", m.session.Remaining(),
		)
	}

	switch res.Outcome {
	case breakout.OutcomeBallLost:
		m.logger.Info("ball lost", "tick", m.session.Tick(), "remaining", m.session.Remaining())
	case breakout.OutcomeConfigError:
		m.lastErr = res.Err
		m.logger.Error("invalid layout", "error", res.Err)
	}

	return m, tickCmd(m.config.TickRate)
}

// restart begins a fresh session once the current one has ended.
func (m *Model) restart() {
	if !m.session.Outcome().Ended() {
		return
	}
	if err := m.session.Reset(); err != nil {
		m.lastErr = err
		m.logger.Error("restart failed", "error", err)
		return
	}
	m.lastErr = nil
	m.logger.Info("session restarted")
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.session.Snapshot()
	breakout.Render(snap, m.screen)

	switch snap.Outcome {
	case breakout.OutcomeBallLost:
		breakout.DrawBanner(m.screen, "BALL LOST", "r: restart  q: quit")
	case breakout.OutcomeConfigError:
		msg := "invalid layout"
		if m.lastErr != nil {
			msg = m.lastErr.Error()
		}
		breakout.DrawBanner(m.screen, "LAYOUT ERROR", msg)
	}

	return lipgloss.JoinVertical(lipgloss.Left, RenderScreen(m.screen), m.statusLine(snap))
}

// statusLine shows brick count and key help under the playfield.
func (m Model) statusLine(snap breakout.Snapshot) string {
	stats := statusStyle.Render(fmt.Sprintf("bricks %d  tick %d", len(snap.Bricks), snap.Tick))
	return stats + "  " + m.help.View(m.keys)
}

// IsQuitting reports whether the player left the session.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for the given session.
func Run(session *breakout.Session, opts Options) error {
	p := tea.NewProgram(
		NewModel(session, opts),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
