package breakout

// Collision checks run once per tick in the order wall, ceiling, paddle.
// Each looks at the projected next position, flips one velocity component
// when its condition holds, and reports whether it fired. None of them
// move the ball. CheckBricks runs after integration and tests the current
// center.

// CheckWall flips DX when the next x would leave [radius, arenaW-radius].
func CheckWall(b *Ball, arenaW float64) bool {
	nx := b.NextX()
	if nx > arenaW-b.Radius || nx < b.Radius {
		b.BounceX()
		return true
	}
	return false
}

// CheckCeiling flips DY when the next y would be above the radius line.
func CheckCeiling(b *Ball) bool {
	if b.NextY() < b.Radius {
		b.BounceY()
		return true
	}
	return false
}

// AtBottomPlane reports whether the next y crosses arenaH-radius.
func AtBottomPlane(b Ball, arenaH float64) bool {
	return b.NextY() > arenaH-b.Radius
}

// CheckPaddle flips DY when the ball reaches the bottom plane with its
// current center x strictly inside the paddle span. The ball's radius is
// not considered, so a ball can clip the paddle's corner and still miss.
func CheckPaddle(b *Ball, p Paddle, arenaH float64) bool {
	if AtBottomPlane(*b, arenaH) && p.Spans(b.X) {
		b.BounceY()
		return true
	}
	return false
}

// MissedPaddle is the defeat condition: the ball is at the bottom plane
// outside the paddle span. It must be evaluated after CheckPaddle so a
// caught ball, whose DY now points up, no longer qualifies.
func MissedPaddle(b Ball, p Paddle, arenaH float64) bool {
	return AtBottomPlane(b, arenaH) && !p.Spans(b.X)
}

// CheckBricks clears every alive brick whose rectangle strictly contains the
// ball center, flipping DY once per cleared brick. It returns the number of
// bricks cleared. All bricks are tested; there is no early exit.
func CheckBricks(b *Ball, g *Grid) int {
	cleared := 0
	for i := range g.bricks {
		brick := &g.bricks[i]
		if !brick.Alive {
			continue
		}
		if brick.Rect.ContainsStrict(b.X, b.Y) {
			b.BounceY()
			brick.Alive = false
			cleared++
		}
	}
	return cleared
}
