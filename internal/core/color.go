package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the breakout front-end.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)

// brickRowColors cycles by brick row, top to bottom.
var brickRowColors = []Color{ColorRed, ColorOrange, ColorYellow, ColorGreen, ColorCyan, ColorBlue, ColorMagenta}

// BrickColor returns the color of bricks on the given row.
func BrickColor(row int) Color {
	if row < 0 {
		row = -row
	}
	return brickRowColors[row%len(brickRowColors)]
}
