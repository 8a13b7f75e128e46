package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Validate checks that the configuration describes well-defined geometry.
// All problems are reported at once, each wrapping ErrInvalid.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		bad("arena must have positive size, got %gx%g", c.Arena.Width, c.Arena.Height)
	}

	if c.Ball.Radius <= 0 {
		bad("ball.radius must be positive, got %g", c.Ball.Radius)
	}
	if c.Ball.Speed <= 0 {
		bad("ball.speed must be positive, got %g", c.Ball.Speed)
	}
	if c.Ball.MinAngle <= 0 || c.Ball.MaxAngle >= 180 || c.Ball.MinAngle > c.Ball.MaxAngle {
		bad("ball launch angles must satisfy 0 < min <= max < 180, got [%g, %g]", c.Ball.MinAngle, c.Ball.MaxAngle)
	}
	if c.Ball.StartOffset < 0 || c.Ball.StartOffset >= c.Arena.Height {
		bad("ball.start_offset must be within the arena, got %g", c.Ball.StartOffset)
	}
	// The ball must start above the bottom plane and fit between the walls.
	if c.Ball.Radius > 0 && c.Ball.StartOffset < c.Ball.Radius {
		bad("ball.start_offset %g is below the ball radius %g", c.Ball.StartOffset, c.Ball.Radius)
	}
	if c.Ball.Radius > 0 && c.Arena.Width > 0 && c.Arena.Width <= 2*c.Ball.Radius {
		bad("arena width %g leaves no room for a ball of radius %g", c.Arena.Width, c.Ball.Radius)
	}

	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		bad("paddle must have positive size, got %gx%g", c.Paddle.Width, c.Paddle.Height)
	}
	if c.Paddle.Width > c.Arena.Width {
		bad("paddle.width %g exceeds arena width %g", c.Paddle.Width, c.Arena.Width)
	}
	if c.Paddle.Step <= 0 {
		bad("paddle.step must be positive, got %g", c.Paddle.Step)
	}

	b := c.Bricks
	if b.Rows <= 0 || b.Columns <= 0 {
		bad("bricks grid must have at least one row and column, got %dx%d", b.Rows, b.Columns)
	}
	if b.Width <= 0 || b.Height <= 0 {
		bad("bricks must have positive size, got %gx%g", b.Width, b.Height)
	}
	if b.Padding < 0 || b.OffsetTop < 0 || b.OffsetLeft < 0 {
		bad("bricks padding and offsets must not be negative")
	}
	if b.Rows > 0 && b.Columns > 0 && c.Arena.Width > 0 && c.Arena.Height > 0 {
		if b.GridWidth() > c.Arena.Width || b.GridHeight() > c.Arena.Height {
			bad("brick grid %gx%g does not fit the %gx%g arena",
				b.GridWidth(), b.GridHeight(), c.Arena.Width, c.Arena.Height)
		}
	}

	if c.Clock.TickMillis <= 0 {
		bad("clock.tick_ms must be positive, got %d", c.Clock.TickMillis)
	}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		bad("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}

	return errors.Join(errs...)
}
