package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Terminals report presses and auto-repeat but never releases. A first
// press holds its direction for repeatDelay, long enough for auto-repeat to
// begin; each repeat then keeps it held for at least holdWindow. The opposite
// key cancels the hold.
const (
	repeatDelay = 250 * time.Millisecond
	holdWindow  = 60 * time.Millisecond
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Start  key.Binding
	Scores key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Start, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Start},
		{k.Scores, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Start: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "start"),
		),
		Scores: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "scores"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// heldInput turns discrete key presses into a per-tick movement intent.
type heldInput struct {
	first  int // Ticks a fresh press stays active
	window int // Ticks a repeat extends an active press to
	left   int
	right  int
}

func newHeldInput(tick time.Duration) heldInput {
	h := heldInput{first: 1, window: 1}
	if tick > 0 {
		h.first = max(1, int(repeatDelay/tick))
		h.window = max(1, int(holdWindow/tick))
	}
	return h
}

// press returns the new remaining ticks for a direction with remaining
// ticks left.
func (h *heldInput) press(remaining int) int {
	if remaining > 0 {
		return max(remaining, h.window)
	}
	return h.first
}

func (h *heldInput) pressLeft() {
	h.left = h.press(h.left)
	h.right = 0
}

func (h *heldInput) pressRight() {
	h.right = h.press(h.right)
	h.left = 0
}

func (h *heldInput) reset() {
	h.left, h.right = 0, 0
}

// next returns the intent for the coming tick and ages the held keys.
func (h *heldInput) next() core.Intent {
	in := core.Intent{Left: h.left > 0, Right: h.right > 0}
	if h.left > 0 {
		h.left--
	}
	if h.right > 0 {
		h.right--
	}
	return in
}
