package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// MenuKeyMap defines the key bindings for the difficulty menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// presetBlurbs describes each preset on the menu.
var presetBlurbs = map[config.DifficultyPreset]string{
	config.DifficultyEasy:   "wide paddle, small ball",
	config.DifficultyNormal: "classic geometry",
	config.DifficultyHard:   "narrow paddle, big ball",
}

// DifficultyModel lets the player pick a difficulty preset before playing.
type DifficultyModel struct {
	presets  []config.DifficultyPreset
	best     map[config.DifficultyPreset]int
	cursor   int
	keys     MenuKeyMap
	help     help.Model
	width    int
	height   int
	chosen   bool
	quitting bool
}

// NewDifficultyModel creates the menu with the cursor on the normal preset.
// When store is non-nil, each entry shows its best score.
func NewDifficultyModel(store *storage.Store, width, height int) DifficultyModel {
	m := DifficultyModel{
		presets: config.Presets(),
		best:    make(map[config.DifficultyPreset]int),
		keys:    DefaultMenuKeyMap(),
		help:    help.New(),
		width:   width,
		height:  height,
	}
	for i, p := range m.presets {
		if p == config.DifficultyNormal {
			m.cursor = i
		}
	}

	if store != nil {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		for _, p := range m.presets {
			if high, err := store.HighScore(ctx, config.ScoreKey(p)); err == nil {
				m.best[p] = high
			}
		}
	}

	return m
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.presets)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			m.chosen = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

// View renders the menu.
func (m DifficultyModel) View() string {
	if m.quitting || m.chosen {
		return ""
	}


	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("B R E A K O U T"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, p := range m.presets {
		line := fmt.Sprintf("  %-7s %-24s", p.Title(), presetBlurbs[p])
		if best, ok := m.best[p]; ok && best > 0 {
			line += fmt.Sprintf(" best %d", best)
		}
		if i == m.cursor {
			line = titleStyle.Render("> " + strings.TrimPrefix(line, "  "))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))

	return b.String()
}

// Selected returns the highlighted preset and whether it was chosen.
func (m DifficultyModel) Selected() (config.DifficultyPreset, bool) {
	if !m.chosen || len(m.presets) == 0 {
		return "", false
	}
	return m.presets[m.cursor], true
}

// RunDifficultyMenu shows the menu and returns the chosen preset. ok is false
// when the player quit instead.
func RunDifficultyMenu(store *storage.Store, width, height int) (preset config.DifficultyPreset, ok bool, err error) {
	p := tea.NewProgram(NewDifficultyModel(store, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m, isMenu := final.(DifficultyModel)
	if !isMenu {
		return "", false, nil
	}
	preset, ok = m.Selected()
	return preset, ok, nil
}
