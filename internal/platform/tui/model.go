package tui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/runner"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// demoRestartDelay is the pause between games when a pilot is playing.
const demoRestartDelay = 2 * time.Second

// restartMsg asks a piloted model to start the next game.
type restartMsg struct{}

// Options configures a game Model.
type Options struct {
	Config config.Config
	Preset config.DifficultyPreset
	Seed   int64 // Zero picks a time-based seed

	// Scores backs both the high score and the scoreboard. May be nil.
	Scores *storage.Store
	Logger *log.Logger

	// Pilot replaces keyboard movement, e.g. with a Lua autopilot. A
	// piloted model starts immediately and restarts after each game.
	Pilot runner.IntentSource

	// Initial terminal size, used until the first WindowSizeMsg.
	Width, Height int
}

// Model is the Bubble Tea model for one breakout session.
type Model struct {
	session  *breakout.Session
	screen   *core.Screen
	proj     Projection
	keys     KeyMap
	help     help.Model
	held     heldInput
	pilot    runner.IntentSource
	interval time.Duration
	logger   *log.Logger

	scores     *storage.Store
	scoreboard *ScoreboardModel

	gen      uint64 // Live tick stream; stale TickMsgs are dropped
	width    int
	height   int
	quitting bool
}

// NewModel creates the session and the model around it.
func NewModel(opts Options) (Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sessionOpts := []breakout.Option{
		breakout.WithSeed(seed),
		breakout.WithLogger(logger),
	}
	if opts.Scores != nil {
		sessionOpts = append(sessionOpts, breakout.WithStore(opts.Scores.Board(config.ScoreKey(opts.Preset))))
	}

	session, err := breakout.NewSession(context.Background(), opts.Config, sessionOpts...)
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}

	w, h := opts.Width, opts.Height
	if w <= 0 || h <= 0 {
		rc := core.DefaultRuntimeConfig()
		w, h = rc.ScreenW, rc.ScreenH
	}

	m := Model{
		session:  session,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		interval: session.TickInterval(),
		logger:   logger,
		scores:   opts.Scores,
		pilot:    opts.Pilot,
	}
	m.held = newHeldInput(m.interval)
	m.screen = core.NewScreen(w, max(1, h-helpRows))
	m.resize(w, h)
	return m, nil
}

// Session returns the underlying session.
func (m Model) Session() *breakout.Session {
	return m.session
}

// Init waits for the start key; the tick stream is armed on start.
// A piloted model starts right away on the initial stream.
func (m Model) Init() tea.Cmd {
	if m.pilot != nil && m.session.Start() {
		return tickCmd(m.interval, m.gen)
	}
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(msg)

	case restartMsg:
		if m.session.Start() {
			m.gen++
			return m, tickCmd(m.interval, m.gen)
		}
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Left):
		m.held.pressLeft()

	case key.Matches(msg, m.keys.Right):
		m.held.pressRight()

	case key.Matches(msg, m.keys.Start):
		if m.session.Start() {
			m.held.reset()
			m.gen++
			return m, tickCmd(m.interval, m.gen)
		}

	case key.Matches(msg, m.keys.Scores):
		if m.session.Phase() != breakout.PhaseRunning && m.scores != nil {
			sb := NewScoreboardModel(m.scores, m.width, m.height)
			sb.embedded = true
			m.scoreboard = &sb
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// handleTick steps the session once and re-arms the stream while it runs.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || m.session.Phase() != breakout.PhaseRunning {
		return m, nil
	}

	var in core.Intent
	if m.pilot != nil {
		in = m.pilot.Intent(m.session.Snapshot())
	} else {
		in = m.held.next()
	}

	res := m.session.Step(in)
	if res.Ended {
		m.held.reset()
		m.logger.Debug("tick stream stopped", "tick", res.Tick, "outcome", res.Outcome)
		if m.pilot != nil {
			return m, tea.Tick(demoRestartDelay, func(time.Time) tea.Msg { return restartMsg{} })
		}
		return m, nil
	}
	return m, tickCmd(m.interval, m.gen)
}

func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.resize(wsm.Width, wsm.Height)
	}

	updated, cmd := m.scoreboard.Update(msg)
	sb, ok := updated.(ScoreboardModel)
	if !ok {
		return m, cmd
	}

	switch {
	case sb.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case sb.IsGoingBack():
		m.scoreboard = nil
		return m, nil
	}
	m.scoreboard = &sb
	return m, cmd
}

// resize adapts the screen buffer and projection to a new terminal size.
// Arena coordinates are independent of the terminal, so play continues.
func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	m.screen.Resize(w, max(1, h-helpRows))
	cfg := m.session.Config()
	m.proj = NewProjection(cfg.Arena.Width, cfg.Arena.Height, w, h-helpRows)
	m.help.Width = w
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	renderScene(m.screen, m.session.Snapshot(), m.proj)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program on the local terminal.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
