package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML(), "yaml")
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults drifted from Default():\n got %+v\nwant %+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadCustomYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("arena:\n  width: 1000\nbricks:\n  rows: 4\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Arena.Width != 1000 {
		t.Errorf("Arena.Width = %g, expected 1000", cfg.Arena.Width)
	}
	if cfg.Bricks.Rows != 4 {
		t.Errorf("Bricks.Rows = %d, expected 4", cfg.Bricks.Rows)
	}
	// Untouched keys keep their defaults
	if cfg.Ball.Speed != 8 || cfg.Arena.Height != 600 {
		t.Errorf("defaults not preserved: speed=%g height=%g", cfg.Ball.Speed, cfg.Arena.Height)
	}
}

func TestLoadCustomTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	data := []byte("[paddle]\nwidth = 150.0\nstep = 20.0\n\n[clock]\ntick_ms = 16\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Paddle.Width != 150 || cfg.Paddle.Step != 20 {
		t.Errorf("paddle = %+v, expected width 150 step 20", cfg.Paddle)
	}
	if cfg.Clock.TickMillis != 16 {
		t.Errorf("TickMillis = %d, expected 16", cfg.Clock.TickMillis)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "bad.yaml")
	os.WriteFile(yamlPath, []byte("arena:\n  depth: 3\n"), 0o600)
	if _, _, err := Load(yamlPath); err == nil {
		t.Error("expected error for unknown yaml key")
	}

	tomlPath := filepath.Join(dir, "bad.toml")
	os.WriteFile(tomlPath, []byte("[arena]\ndepth = 3\n"), 0o600)
	if _, _, err := Load(tomlPath); err == nil {
		t.Error("expected error for unknown toml key")
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
}

func TestLoadInvalidGeometryFailsFast(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zero.yaml")
	os.WriteFile(path, []byte("arena:\n  width: 0\n"), 0o600)

	_, _, err := Load(path)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("Load() error = %v, expected ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string // substring of the error, empty = valid
	}{
		{"default", func(*Config) {}, ""},
		{"zero arena width", func(c *Config) { c.Arena.Width = 0 }, "arena"},
		{"negative arena height", func(c *Config) { c.Arena.Height = -1 }, "arena"},
		{"zero rows", func(c *Config) { c.Bricks.Rows = 0 }, "row"},
		{"zero columns", func(c *Config) { c.Bricks.Columns = 0 }, "column"},
		{"zero radius", func(c *Config) { c.Ball.Radius = 0 }, "radius"},
		{"zero speed", func(c *Config) { c.Ball.Speed = 0 }, "speed"},
		{"inverted angles", func(c *Config) { c.Ball.MinAngle, c.Ball.MaxAngle = 120, 30 }, "angles"},
		{"paddle too wide", func(c *Config) { c.Paddle.Width = 900 }, "exceeds"},
		{"zero step", func(c *Config) { c.Paddle.Step = 0 }, "step"},
		{"grid overflow", func(c *Config) { c.Bricks.Columns = 6 }, "does not fit"},
		{"zero tick", func(c *Config) { c.Clock.TickMillis = 0 }, "tick_ms"},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"start offset below radius", func(c *Config) { c.Ball.StartOffset = 5 }, "start_offset"},
		{"start offset equal to radius", func(c *Config) { c.Ball.StartOffset = c.Ball.Radius }, ""},
		{"arena narrower than the ball", func(c *Config) {
			c.Arena.Width = 30
			c.Paddle.Width = 20
			c.Bricks = BrickConfig{Rows: 1, Columns: 1, Width: 10, Height: 10}
		}, "no room"},
		{"hard preset ball still fits", func(c *Config) { ApplyPreset(c, DifficultyHard) }, ""},
		{"single brick spanning the top", func(c *Config) {
			c.Bricks = BrickConfig{Rows: 1, Columns: 1, Width: 800, Height: 100}
		}, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()

			if tc.want == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, expected error containing %q", tc.want)
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("error %v does not wrap ErrInvalid", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestMarshalRoundTripsThroughParse(t *testing.T) {
	for _, format := range []string{"yaml", "toml"} {
		data, err := Marshal(Default(), format)
		if err != nil {
			t.Fatalf("Marshal(%s) failed: %v", format, err)
		}
		cfg, err := Parse(data, format)
		if err != nil {
			t.Fatalf("Parse(%s) failed: %v\n%s", format, err, data)
		}
		if cfg != Default() {
			t.Errorf("%s: decoded config differs from default", format)
		}
	}
}

func TestPresets(t *testing.T) {
	easy := Default()
	ApplyPreset(&easy, DifficultyEasy)
	hard := Default()
	ApplyPreset(&hard, DifficultyHard)
	normal := Default()
	ApplyPreset(&normal, DifficultyNormal)

	if !(easy.Paddle.Width > normal.Paddle.Width && normal.Paddle.Width > hard.Paddle.Width) {
		t.Errorf("paddle widths should shrink with difficulty: easy=%g normal=%g hard=%g",
			easy.Paddle.Width, normal.Paddle.Width, hard.Paddle.Width)
	}
	if easy.Ball.Speed != normal.Ball.Speed || hard.Ball.Speed != normal.Ball.Speed {
		t.Error("presets must not change ball speed")
	}
	for _, c := range []Config{easy, normal, hard} {
		if err := c.Validate(); err != nil {
			t.Errorf("preset config invalid: %v", err)
		}
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, err)
	}
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestScoreKey(t *testing.T) {
	if ScoreKey(DifficultyNormal) != "breakout" || ScoreKey("") != "breakout" {
		t.Error("normal difficulty should use the plain key")
	}
	if ScoreKey(DifficultyHard) != "breakout_hard" {
		t.Errorf("ScoreKey(hard) = %q", ScoreKey(DifficultyHard))
	}
}
