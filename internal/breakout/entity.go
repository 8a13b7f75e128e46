// Package breakout implements the simulation and collision engine of a
// single-screen brick breaker: the entity model, the collision resolver,
// the win/loss state machine and the fixed-order tick.
//
// Arena coordinates have their origin at the top-left corner with y growing
// downward. Nothing in this package performs I/O except through the
// ScoreStore interface.
package breakout

import (
	"math"
	"math/rand/v2"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Ball is the ball's position (center), velocity per tick and radius.
type Ball struct {
	X, Y   float64
	DX, DY float64
	Radius float64
}

// NextX returns the projected x after one more tick.
func (b Ball) NextX() float64 {
	return b.X + b.DX
}

// NextY returns the projected y after one more tick.
func (b Ball) NextY() float64 {
	return b.Y + b.DY
}

// Speed returns the magnitude of the velocity.
func (b Ball) Speed() float64 {
	return math.Hypot(b.DX, b.DY)
}

// Move integrates the position by one tick of velocity.
func (b *Ball) Move() {
	b.X += b.DX
	b.Y += b.DY
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.DX = -b.DX
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.DY = -b.DY
}

// Paddle is the player's paddle. Only X changes during play; the paddle is
// pinned to the bottom of the arena.
type Paddle struct {
	X      float64 // Left edge
	Width  float64
	Height float64
}

// Spans reports whether x lies strictly between the paddle's edges.
func (p Paddle) Spans(x float64) bool {
	return x > p.X && x < p.X+p.Width
}

// Rect returns the paddle rectangle for an arena of the given height.
func (p Paddle) Rect(arenaH float64) core.RectF {
	return core.RectF{X: p.X, Y: arenaH - p.Height, W: p.Width, H: p.Height}
}

// MoveBy shifts the paddle by dx, clamped to [0, arenaW-width].
func (p *Paddle) MoveBy(dx, arenaW float64) {
	p.X = core.ClampF(p.X+dx, 0, arenaW-p.Width)
}

// Brick is one cell of the grid. Its identity is (Row, Col).
type Brick struct {
	Row, Col int
	Rect     core.RectF
	Alive    bool
}

// Grid is a fixed rows x columns matrix of bricks stored row-major.
// Bricks only go from alive to dead; Restore brings all of them back.
type Grid struct {
	rows, cols int
	bricks     []Brick
}

// NewGrid lays out a grid from the brick configuration. All bricks start alive.
func NewGrid(cfg config.BrickConfig) *Grid {
	g := &Grid{
		rows:   cfg.Rows,
		cols:   cfg.Columns,
		bricks: make([]Brick, 0, cfg.Total()),
	}
	for row := range cfg.Rows {
		for col := range cfg.Columns {
			g.bricks = append(g.bricks, Brick{
				Row: row,
				Col: col,
				Rect: core.RectF{
					X: cfg.OffsetLeft + float64(col)*(cfg.Width+cfg.Padding),
					Y: cfg.OffsetTop + float64(row)*(cfg.Height+cfg.Padding),
					W: cfg.Width,
					H: cfg.Height,
				},
				Alive: true,
			})
		}
	}
	return g
}

// Rows returns the number of brick rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of brick columns.
func (g *Grid) Cols() int { return g.cols }

// Total returns rows x columns.
func (g *Grid) Total() int { return len(g.bricks) }

// At returns the brick at (row, col).
func (g *Grid) At(row, col int) (Brick, bool) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return Brick{}, false
	}
	return g.bricks[row*g.cols+col], true
}

// Bricks returns a copy of all bricks in row-major order.
func (g *Grid) Bricks() []Brick {
	out := make([]Brick, len(g.bricks))
	copy(out, g.bricks)
	return out
}

// Alive returns the number of bricks still standing.
func (g *Grid) Alive() int {
	n := 0
	for _, b := range g.bricks {
		if b.Alive {
			n++
		}
	}
	return n
}

// Destroyed returns the number of cleared bricks.
func (g *Grid) Destroyed() int {
	return g.Total() - g.Alive()
}

// Restore marks every brick alive again.
func (g *Grid) Restore() {
	for i := range g.bricks {
		g.bricks[i].Alive = true
	}
}

// VelocityAt returns the velocity for a launch at angleDeg degrees from the
// positive x axis. Positive angles point up the screen, so dy is negated.
func VelocityAt(speed, angleDeg float64) (dx, dy float64) {
	a := angleDeg * math.Pi / 180
	return speed * math.Cos(a), -speed * math.Sin(a)
}

// LaunchVelocity samples an angle uniformly from [minDeg, maxDeg] and returns
// the matching velocity. With 0 < minDeg <= maxDeg < 180 the ball always
// travels upward and never purely horizontally.
func LaunchVelocity(rng *rand.Rand, speed, minDeg, maxDeg float64) (dx, dy float64) {
	angle := minDeg + rng.Float64()*(maxDeg-minDeg)
	return VelocityAt(speed, angle)
}

// LaunchAngle returns the angle in degrees of a velocity, using the same
// upward-positive convention as VelocityAt.
func LaunchAngle(dx, dy float64) float64 {
	return math.Atan2(-dy, dx) * 180 / math.Pi
}
