package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value to a preset. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Speed is never touched: the ball's speed is a session constant.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Paddle.Width *= 1.6
		cfg.Ball.Radius *= 0.75
	case DifficultyHard:
		cfg.Paddle.Width *= 0.7
		cfg.Ball.Radius *= 1.25
	}
	if cfg.Paddle.Width > cfg.Arena.Width {
		cfg.Paddle.Width = cfg.Arena.Width
	}
}

// ScoreKey returns the leaderboard key for a preset, so that scores on
// different difficulties do not compete.
func ScoreKey(preset DifficultyPreset) string {
	if preset == "" || preset == DifficultyNormal {
		return "breakout"
	}
	return "breakout_" + string(preset)
}

// Presets returns every preset in display order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// Title returns the display name of the preset.
func (p DifficultyPreset) Title() string {
	switch p {
	case DifficultyEasy:
		return "Easy"
	case DifficultyHard:
		return "Hard"
	default:
		return "Normal"
	}
}
