package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
// It mirrors defaults/breakout.yaml and is used when the embedded file
// cannot be parsed.
func Default() Config {
	return Config{
		Arena: ArenaConfig{
			Width:  800,
			Height: 600,
		},
		Ball: BallConfig{
			Radius:      20,
			Speed:       8,
			MinAngle:    30,
			MaxAngle:    120,
			StartOffset: 30,
		},
		Paddle: PaddleConfig{
			Width:  100,
			Height: 15,
			Step:   17,
		},
		Bricks: BrickConfig{
			Rows:       3,
			Columns:    5,
			Width:      140,
			Height:     30,
			Padding:    10,
			OffsetTop:  60,
			OffsetLeft: 30,
		},
		Clock: ClockConfig{
			TickMillis: 10,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
