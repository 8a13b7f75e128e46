// Package config provides YAML/TOML configuration loading, embedded
// defaults, difficulty presets and startup validation for the game.
package config

// Config contains every tunable of a breakout session.
// Arena and grid geometry are read once at startup and treated as immutable.
type Config struct {
	Arena   ArenaConfig   `yaml:"arena" toml:"arena"`
	Ball    BallConfig    `yaml:"ball" toml:"ball"`
	Paddle  PaddleConfig  `yaml:"paddle" toml:"paddle"`
	Bricks  BrickConfig   `yaml:"bricks" toml:"bricks"`
	Clock   ClockConfig   `yaml:"clock" toml:"clock"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
}

// ArenaConfig defines the bounded play area in arena units.
type ArenaConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// BallConfig defines the ball and its launch.
type BallConfig struct {
	Radius      float64 `yaml:"radius" toml:"radius"`
	Speed       float64 `yaml:"speed" toml:"speed"`               // Units per tick, constant for the session
	MinAngle    float64 `yaml:"min_angle" toml:"min_angle"`       // Degrees from +x axis
	MaxAngle    float64 `yaml:"max_angle" toml:"max_angle"`       // Degrees from +x axis
	StartOffset float64 `yaml:"start_offset" toml:"start_offset"` // Distance above the arena bottom at reset
}

// PaddleConfig defines the player's paddle.
type PaddleConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Step   float64 `yaml:"step" toml:"step"` // Units moved per tick while a direction is held
}

// BrickConfig defines the brick grid layout.
type BrickConfig struct {
	Rows       int     `yaml:"rows" toml:"rows"`
	Columns    int     `yaml:"columns" toml:"columns"`
	Width      float64 `yaml:"width" toml:"width"`
	Height     float64 `yaml:"height" toml:"height"`
	Padding    float64 `yaml:"padding" toml:"padding"`
	OffsetTop  float64 `yaml:"offset_top" toml:"offset_top"`
	OffsetLeft float64 `yaml:"offset_left" toml:"offset_left"`
}

// ClockConfig defines the simulation cadence.
type ClockConfig struct {
	TickMillis int `yaml:"tick_ms" toml:"tick_ms"`
}

// LoggingConfig defines the default log level.
type LoggingConfig struct {
	Level string `yaml:"level" toml:"level"` // debug, info, warn, error
}

// Total returns the number of bricks in the grid.
func (b BrickConfig) Total() int {
	return b.Rows * b.Columns
}

// GridWidth returns the horizontal extent of the grid including the left offset.
func (b BrickConfig) GridWidth() float64 {
	if b.Columns <= 0 {
		return b.OffsetLeft
	}
	return b.OffsetLeft + float64(b.Columns)*b.Width + float64(b.Columns-1)*b.Padding
}

// GridHeight returns the vertical extent of the grid including the top offset.
func (b BrickConfig) GridHeight() float64 {
	if b.Rows <= 0 {
		return b.OffsetTop
	}
	return b.OffsetTop + float64(b.Rows)*b.Height + float64(b.Rows-1)*b.Padding
}
