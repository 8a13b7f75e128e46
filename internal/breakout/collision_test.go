package breakout

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestCheckWall(t *testing.T) {
	tests := []struct {
		name   string
		ball   Ball
		fired  bool
		wantDX float64
	}{
		{"open space", Ball{X: 400, Y: 300, DX: 8, Radius: 20}, false, 8},
		{"about to cross left", Ball{X: 26, Y: 300, DX: -8, Radius: 20}, true, 8},
		{"about to cross right", Ball{X: 775, Y: 300, DX: 8, Radius: 20}, true, -8},
		{"exactly on left limit", Ball{X: 28, Y: 300, DX: -8, Radius: 20}, false, -8},
		{"moving away from wall", Ball{X: 25, Y: 300, DX: 8, Radius: 20}, false, 8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := tc.ball
			if got := CheckWall(&b, 800); got != tc.fired {
				t.Errorf("CheckWall() = %v, expected %v", got, tc.fired)
			}
			if b.DX != tc.wantDX {
				t.Errorf("DX = %v, expected %v", b.DX, tc.wantDX)
			}
			if b.X != tc.ball.X || b.Y != tc.ball.Y {
				t.Error("collision checks must not move the ball")
			}
		})
	}
}

func TestCheckCeiling(t *testing.T) {
	b := Ball{X: 400, Y: 25, DY: -8, Radius: 20}
	if !CheckCeiling(&b) {
		t.Fatal("CheckCeiling() should fire when next y is above the radius")
	}
	if b.DY != 8 {
		t.Errorf("DY = %v, expected 8", b.DY)
	}

	b = Ball{X: 400, Y: 28, DY: -8, Radius: 20}
	if CheckCeiling(&b) {
		t.Error("CheckCeiling() should not fire when next y equals the radius")
	}
}

func TestCheckPaddle(t *testing.T) {
	p := Paddle{X: 350, Width: 100, Height: 15}

	tests := []struct {
		name   string
		ball   Ball
		fired  bool
		missed bool
	}{
		{"caught at center", Ball{X: 400, Y: 575, DY: 8, Radius: 20}, true, false},
		{"not yet at bottom", Ball{X: 400, Y: 500, DY: 8, Radius: 20}, false, false},
		{"far outside span", Ball{X: 50, Y: 575, DY: 8, Radius: 20}, false, true},
		{"exactly on left edge", Ball{X: 350, Y: 575, DY: 8, Radius: 20}, false, true},
		{"radius overlaps but center outside", Ball{X: 340, Y: 575, DY: 8, Radius: 20}, false, true},
		{"just inside right edge", Ball{X: 449.5, Y: 575, DY: 8, Radius: 20}, true, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := tc.ball
			if got := CheckPaddle(&b, p, 600); got != tc.fired {
				t.Errorf("CheckPaddle() = %v, expected %v", got, tc.fired)
			}
			if got := MissedPaddle(b, p, 600); got != tc.missed {
				t.Errorf("MissedPaddle() = %v, expected %v", got, tc.missed)
			}
		})
	}
}

func TestCheckBricksClearsAndBounces(t *testing.T) {
	g := NewGrid(config.Default().Bricks)
	// Brick (1, 2) spans x 330..470, y 100..130
	b := Ball{X: 400, Y: 115, DY: -8, Radius: 20}

	if n := CheckBricks(&b, g); n != 1 {
		t.Fatalf("CheckBricks() = %d, expected 1", n)
	}
	if b.DY != 8 {
		t.Errorf("DY = %v, expected 8 after hitting a brick", b.DY)
	}
	brick, _ := g.At(1, 2)
	if brick.Alive {
		t.Error("brick (1, 2) should be cleared")
	}

	// A dead brick is never counted twice
	if n := CheckBricks(&b, g); n != 0 {
		t.Errorf("second CheckBricks() = %d, expected 0", n)
	}
}

func TestCheckBricksBoundaryIsOutside(t *testing.T) {
	g := NewGrid(config.Default().Bricks)
	// Exactly on the top edge of row 1
	b := Ball{X: 400, Y: 100, DY: -8, Radius: 20}
	if n := CheckBricks(&b, g); n != 0 {
		t.Errorf("CheckBricks() on an edge = %d, expected 0", n)
	}
}

func TestCheckBricksAppliesToEveryOverlappingBrick(t *testing.T) {
	g := &Grid{
		rows: 1,
		cols: 2,
		bricks: []Brick{
			{Row: 0, Col: 0, Rect: core.RectF{X: 0, Y: 0, W: 100, H: 100}, Alive: true},
			{Row: 0, Col: 1, Rect: core.RectF{X: 50, Y: 0, W: 100, H: 100}, Alive: true},
		},
	}
	b := Ball{X: 75, Y: 50, DY: -8, Radius: 5}

	if n := CheckBricks(&b, g); n != 2 {
		t.Fatalf("CheckBricks() = %d, expected 2 for overlapping bricks", n)
	}
	// Two flips cancel out
	if b.DY != -8 {
		t.Errorf("DY = %v, expected -8 after two flips", b.DY)
	}
	if g.Alive() != 0 {
		t.Errorf("Alive() = %d, expected 0", g.Alive())
	}
}

func TestGridLayout(t *testing.T) {
	g := NewGrid(config.Default().Bricks)

	if g.Total() != 15 || g.Rows() != 3 || g.Cols() != 5 {
		t.Fatalf("grid = %dx%d (%d), expected 3x5 (15)", g.Rows(), g.Cols(), g.Total())
	}

	b, ok := g.At(1, 2)
	if !ok {
		t.Fatal("At(1, 2) not found")
	}
	want := core.RectF{X: 330, Y: 100, W: 140, H: 30}
	if b.Rect != want {
		t.Errorf("brick (1, 2) rect = %+v, expected %+v", b.Rect, want)
	}
	if b.Row != 1 || b.Col != 2 {
		t.Errorf("brick identity = (%d, %d), expected (1, 2)", b.Row, b.Col)
	}

	if _, ok := g.At(3, 0); ok {
		t.Error("At(3, 0) should be out of range")
	}
}

func TestGridRestore(t *testing.T) {
	g := NewGrid(config.Default().Bricks)
	g.bricks[0].Alive = false
	g.bricks[7].Alive = false

	if g.Destroyed() != 2 {
		t.Fatalf("Destroyed() = %d, expected 2", g.Destroyed())
	}
	g.Restore()
	if g.Alive() != g.Total() {
		t.Errorf("Alive() = %d after Restore, expected %d", g.Alive(), g.Total())
	}
}

func TestPaddleMoveByClamps(t *testing.T) {
	p := Paddle{X: 690, Width: 100}
	p.MoveBy(17, 800)
	if p.X != 700 {
		t.Errorf("X = %v, expected clamp at 700", p.X)
	}

	p = Paddle{X: 5, Width: 100}
	p.MoveBy(-17, 800)
	if p.X != 0 {
		t.Errorf("X = %v, expected clamp at 0", p.X)
	}
}
