package tui

import (
	"context"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestProjection(t *testing.T) {
	p := NewProjection(800, 600, 82, 24)

	if p.Cols != 80 || p.Rows != 21 {
		t.Fatalf("board = %dx%d, expected 80x21", p.Cols, p.Rows)
	}
	if p.OriginX != 1 || p.OriginY != 2 {
		t.Errorf("origin = (%d, %d), expected (1, 2)", p.OriginX, p.OriginY)
	}

	tests := []struct {
		name string
		ax   float64
		want int
	}{
		{"left edge", 0, 1},
		{"middle", 400, 41},
		{"right edge clamps", 800, 80},
		{"outside clamps", -50, 1},
	}
	for _, tc := range tests {
		if got := p.X(tc.ax); got != tc.want {
			t.Errorf("%s: X(%v) = %d, expected %d", tc.name, tc.ax, got, tc.want)
		}
	}

	if got := p.Y(600); got != p.OriginY+p.Rows-1 {
		t.Errorf("Y(600) = %d, expected last row %d", got, p.OriginY+p.Rows-1)
	}

	r := p.Rect(core.RectF{X: 30, Y: 60, W: 140, H: 30})
	if r.X != 4 || r.W != 14 {
		t.Errorf("brick cells = %+v, expected x=4 w=14", r)
	}
	if r.H < 1 {
		t.Errorf("brick height = %d, expected at least 1", r.H)
	}

	tiny := p.Rect(core.RectF{X: 100, Y: 100, W: 1, H: 1})
	if tiny.W != 1 || tiny.H != 1 {
		t.Errorf("tiny rect = %+v, expected one cell", tiny)
	}
}

func newSnapshot(t *testing.T) breakout.Snapshot {
	t.Helper()
	s, err := breakout.NewSession(context.Background(), config.Default(), breakout.WithSeed(1))
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	return s.Snapshot()
}

func TestRenderSceneIdle(t *testing.T) {
	snap := newSnapshot(t)
	screen := core.NewScreen(80, 23)
	proj := NewProjection(snap.ArenaW, snap.ArenaH, 80, 23)

	renderScene(screen, snap, proj)
	out := screen.String()

	for _, want := range []string{"Score: 0/15", "Best: 0", "BREAKOUT", "Press SPACE to start"} {
		if !strings.Contains(out, want) {
			t.Errorf("frame does not contain %q", want)
		}
	}

	if got := screen.Get(proj.X(snap.Ball.X), proj.Y(snap.Ball.Y)); got != ballGlyph {
		t.Errorf("ball cell = %q, expected %q", got, ballGlyph)
	}

	padRow := screen.Row(proj.OriginY + proj.Rows - 1)
	if !strings.ContainsRune(padRow, padGlyph) {
		t.Errorf("paddle row %q has no paddle", padRow)
	}

	if !strings.ContainsRune(out, brickFill) {
		t.Error("no bricks drawn")
	}
}

func TestRenderSceneOverlays(t *testing.T) {
	tests := []struct {
		kind breakout.MessageKind
		want string
	}{
		{breakout.MessageGameOver, "GAME OVER"},
		{breakout.MessageVictory, "YOU WIN!"},
	}

	for _, tc := range tests {
		snap := newSnapshot(t)
		snap.Message = breakout.Message{Kind: tc.kind, Score: 4, Total: 15, HighScore: 9}

		screen := core.NewScreen(80, 23)
		renderScene(screen, snap, NewProjection(snap.ArenaW, snap.ArenaH, 80, 23))
		out := screen.String()

		if !strings.Contains(out, tc.want) {
			t.Errorf("overlay %v: missing %q", tc.kind, tc.want)
		}
		if !strings.Contains(out, "Score: 4  Best: 9") {
			t.Errorf("overlay %v: missing score line", tc.kind)
		}
	}
}

func TestRenderSceneDeadBricksHidden(t *testing.T) {
	snap := newSnapshot(t)
	for i := range snap.Bricks {
		snap.Bricks[i].Alive = false
	}
	snap.Message = breakout.Message{}

	screen := core.NewScreen(80, 23)
	renderScene(screen, snap, NewProjection(snap.ArenaW, snap.ArenaH, 80, 23))

	if strings.ContainsRune(screen.String(), brickFill) {
		t.Error("dead bricks must not be drawn")
	}
}

func TestRenderSceneTooSmall(t *testing.T) {
	snap := newSnapshot(t)
	screen := core.NewScreen(20, 8)
	renderScene(screen, snap, NewProjection(snap.ArenaW, snap.ArenaH, 20, 8))

	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected the too-small notice")
	}
}
