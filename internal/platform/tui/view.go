package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Minimum terminal size for a playable board.
const (
	MinCols = 40
	MinRows = 16
)

const (
	hudRows   = 1 // Score line above the board
	helpRows  = 1 // Help line below the screen buffer
	ballGlyph = '●'
	padGlyph  = '▀'
	brickFill = '█'
)

// Projection maps arena coordinates onto the cells inside the board frame.
type Projection struct {
	OriginX, OriginY int // Top-left playable cell
	Cols, Rows       int // Playable cells
	scaleX, scaleY   float64
}

// NewProjection fits an arena into a screen of the given size, leaving
// room for the HUD line and a one-cell frame.
func NewProjection(arenaW, arenaH float64, screenW, screenH int) Projection {
	p := Projection{
		OriginX: 1,
		OriginY: hudRows + 1,
		Cols:    max(1, screenW-2),
		Rows:    max(1, screenH-hudRows-2),
	}
	p.scaleX = arenaW / float64(p.Cols)
	p.scaleY = arenaH / float64(p.Rows)
	return p
}

// Frame returns the rectangle of the board frame, border included.
func (p Projection) Frame() core.Rect {
	return core.NewRect(p.OriginX-1, p.OriginY-1, p.Cols+2, p.Rows+2)
}

// X maps an arena x to a screen column inside the board.
func (p Projection) X(ax float64) int {
	return p.OriginX + core.Clamp(int(ax/p.scaleX), 0, p.Cols-1)
}

// Y maps an arena y to a screen row inside the board.
func (p Projection) Y(ay float64) int {
	return p.OriginY + core.Clamp(int(ay/p.scaleY), 0, p.Rows-1)
}

// Rect maps an arena rectangle to cells. Every rectangle covers at least
// one cell.
func (p Projection) Rect(r core.RectF) core.Rect {
	x0 := int(math.Round(r.X / p.scaleX))
	x1 := int(math.Round(r.Right() / p.scaleX))
	y0 := int(math.Round(r.Y / p.scaleY))
	y1 := int(math.Round(r.Bottom() / p.scaleY))

	x0 = core.Clamp(x0, 0, p.Cols-1)
	y0 = core.Clamp(y0, 0, p.Rows-1)
	w := core.Clamp(x1-x0, 1, p.Cols-x0)
	h := core.Clamp(y1-y0, 1, p.Rows-y0)

	return core.NewRect(p.OriginX+x0, p.OriginY+y0, w, h)
}

// tooSmall reports whether the terminal cannot hold a board.
func tooSmall(w, h int) bool {
	return w < MinCols || h < MinRows
}

// renderScene draws one frame of the snapshot onto dst.
func renderScene(dst *core.Screen, snap breakout.Snapshot, proj Projection) {
	dst.Clear()

	if tooSmall(dst.Width(), dst.Height()+helpRows) {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinCols, MinRows))
		return
	}

	renderHUD(dst, snap)
	dst.DrawBox(proj.Frame())

	for _, b := range snap.Bricks {
		if !b.Alive {
			continue
		}
		r := proj.Rect(b.Rect)
		// Leave a gap so neighbouring bricks stay distinguishable
		if r.W > 2 {
			r.W--
		}
		dst.DrawRect(r, brickFill, core.BrickColor(b.Row))
	}

	pad := proj.Rect(snap.Paddle)
	pad.Y = proj.OriginY + proj.Rows - 1
	pad.H = 1
	dst.DrawRect(pad, padGlyph, core.ColorCyan)

	dst.SetColor(proj.X(snap.Ball.X), proj.Y(snap.Ball.Y), ballGlyph, core.ColorWhite)

	renderOverlay(dst, snap.Message)
}

// renderHUD draws the score line.
func renderHUD(dst *core.Screen, snap breakout.Snapshot) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d/%d", snap.Score, snap.Total))
	best := fmt.Sprintf("Best: %d", snap.HighScore)
	dst.DrawText(dst.Width()-len(best)-1, 0, best)
}

// renderOverlay draws the lifecycle message, if any.
func renderOverlay(dst *core.Screen, msg breakout.Message) {
	switch msg.Kind {
	case breakout.MessageStartPrompt:
		drawCenteredBox(dst, "BREAKOUT", "Press SPACE to start")
	case breakout.MessageGameOver:
		drawCenteredBox(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  Best: %d  |  SPACE to retry", msg.Score, msg.HighScore))
	case breakout.MessageVictory:
		drawCenteredBox(dst, "YOU WIN!",
			fmt.Sprintf("Score: %d  Best: %d  |  SPACE to play again", msg.Score, msg.HighScore))
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := core.Min(core.Max(len(title), len([]rune(subtitle)))+4, dst.Width())
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
