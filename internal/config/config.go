// Package config provides YAML-based game configuration loading and
// validation for the breakout platform.
package config

import (
	"errors"
	"fmt"
)

// BreakoutConfig contains all configuration for a breakout session.
type BreakoutConfig struct {
	Arena  BreakoutArena  `yaml:"arena"`
	Ball   BreakoutBall   `yaml:"ball"`
	Paddle BreakoutPaddle `yaml:"paddle"`
	Bricks BreakoutBricks `yaml:"bricks"`
	Layout []string       `yaml:"layout"` // One string of cell labels per row
}

// BreakoutArena defines the playfield size in world units.
type BreakoutArena struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BreakoutBall defines the ball.
type BreakoutBall struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"` // World units per tick
	Angle  float64 `yaml:"angle"` // Initial direction in radians
}

// BreakoutPaddle defines the paddle.
type BreakoutPaddle struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Y      float64 `yaml:"y"`
	Nudge  float64 `yaml:"nudge"` // Keyboard step in world units
}

// BreakoutBricks defines brick sizes and placement.
type BreakoutBricks struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	TopMargin float64 `yaml:"top_margin"`
}

// Validate checks numeric invariants. Layout rows are validated by the game.
func (c BreakoutConfig) Validate() error {
	var errs []error

	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be > 0, got %v", name, v))
		}
	}

	positive("arena.width", c.Arena.Width)
	positive("arena.height", c.Arena.Height)
	positive("ball.radius", c.Ball.Radius)
	positive("ball.speed", c.Ball.Speed)
	positive("paddle.width", c.Paddle.Width)
	positive("paddle.height", c.Paddle.Height)
	positive("bricks.width", c.Bricks.Width)
	positive("bricks.height", c.Bricks.Height)

	if c.Paddle.Width > c.Arena.Width {
		errs = append(errs, fmt.Errorf("paddle.width %v exceeds arena.width %v", c.Paddle.Width, c.Arena.Width))
	}
	if c.Paddle.Y < 0 || c.Paddle.Y+c.Paddle.Height > c.Arena.Height {
		errs = append(errs, fmt.Errorf("paddle.y %v puts the paddle outside the arena", c.Paddle.Y))
	}
	if c.Paddle.Nudge < 0 {
		errs = append(errs, fmt.Errorf("paddle.nudge must be >= 0, got %v", c.Paddle.Nudge))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a CLI value into a preset. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
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

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Paddle.Width = 100
		cfg.Ball.Speed = 2.0
	case DifficultyHard:
		cfg.Paddle.Width = 60
		cfg.Ball.Speed = 3.5
	}
}
