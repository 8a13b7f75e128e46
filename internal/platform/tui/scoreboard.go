package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

const (
	maxScores   = 100 // Rows loaded per board
	loadTimeout = 2 * time.Second
	boardChrome = 9 // Title, tabs, stats, table border and help rows
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boxStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	noticeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(1, 2)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextBoard key.Binding
	PrevBoard key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevBoard, k.NextBoard, k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll"),
		),
		NextBoard: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→", "harder"),
		),
		PrevBoard: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←", "easier"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "s"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the leaderboard of one difficulty preset at a time.
type ScoreboardModel struct {
	boards []config.DifficultyPreset
	cursor int
	store  *storage.Store

	scores  []storage.ScoreEntry
	stats   *storage.Stats
	loadErr error

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap

	width, height int
	quitting      bool
	goingBack     bool
	embedded      bool // Back returns to the game instead of quitting
}

// NewScoreboardModel opens the scoreboard on the normal board.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		boards: config.Presets(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	for i, p := range m.boards {
		if p == config.DifficultyNormal {
			m.cursor = i
		}
	}

	m.table = newScoreTable(width, height)
	m.load()
	return m
}

// newScoreTable sizes the table to the terminal; the date column takes
// whatever width is left.
func newScoreTable(width, height int) table.Model {
	dateW := min(20, max(12, width-30))
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 5},
			{Title: "Bricks", Width: 8},
			{Title: "Played", Width: dateW},
		}),
		table.WithFocused(true),
		table.WithHeight(max(3, height-boardChrome)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(s)
	return t
}

// load fetches the scores and stats of the selected board.
func (m *ScoreboardModel) load() {
	m.scores, m.stats, m.loadErr = nil, nil, nil
	if m.store != nil {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		k := config.ScoreKey(m.board())
		m.scores, m.loadErr = m.store.TopScores(ctx, k, maxScores)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.Stats(ctx, k)
		}
	}
	m.fillRows()
}

func (m *ScoreboardModel) fillRows() {
	rows := make([]table.Row, len(m.scores))
	for i, e := range m.scores {
		rows[i] = table.Row{strconv.Itoa(i + 1), strconv.Itoa(e.Score), e.CreatedAt.Format("Jan 02 15:04")}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m ScoreboardModel) board() config.DifficultyPreset {
	return m.boards[m.cursor]
}

// shift moves to the neighbouring board, stopping at either end.
func (m *ScoreboardModel) shift(delta int) {
	next := min(max(m.cursor+delta, 0), len(m.boards)-1)
	if next != m.cursor {
		m.cursor = next
		m.load()
	}
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.embedded {
				return m, nil
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextBoard):
			m.shift(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevBoard):
			m.shift(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table = newScoreTable(m.width, m.height)
		m.fillRows()
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	tabs := make([]string, len(m.boards))
	for i, p := range m.boards {
		if i == m.cursor {
			tabs[i] = activeTabStyle.Render(p.Title())
		} else {
			tabs[i] = tabStyle.Render(p.Title())
		}
	}

	var body string
	switch {
	case m.store == nil:
		body = noticeStyle.Render("Scores are not being saved.\nRun with --db to keep a leaderboard.")
	case m.loadErr != nil:
		body = errorStyle.Render("Could not load scores:\n" + m.loadErr.Error())
	case len(m.scores) == 0:
		body = noticeStyle.Render("No games on this board yet.")
	default:
		body = m.table.View()
	}

	lines := []string{
		"",
		centerText(titleStyle.Render("HIGH SCORES"), m.width),
		centerText(strings.Join(tabs, " "), m.width),
		centerText(m.summary(), m.width),
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boxStyle.Render(body)),
		helpStyle.Render(m.help.View(m.keys)),
	}
	return strings.Join(lines, "\n")
}

// summary is the one-line statistics of the selected board.
func (m ScoreboardModel) summary() string {
	st := m.stats
	if st == nil || st.Records == 0 {
		return ""
	}
	return helpStyle.Render(fmt.Sprintf("%d games  best %d  avg %.1f  last %s",
		st.Records, st.HighScore, st.AvgScore, st.LastPlayed.Format("Jan 02 15:04")))
}

// IsGoingBack returns true if user wants to leave the scoreboard.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard as a standalone program.
func RunScoreboard(store *storage.Store, width, height int) error {
	_, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	return err
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
