// Package config provides YAML-based game configuration loading with
// embedded defaults and validation.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/pentix/internal/core"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// PentixConfig contains all configuration for the Pentix game.
type PentixConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Scoring ScoringConfig `yaml:"scoring"`
	Timing  TimingConfig  `yaml:"timing"`
	Rules   RulesConfig   `yaml:"rules"`
	Shapes  [][][]int     `yaml:"shapes"` // Empty means the built-in catalog
}

// BoardConfig defines the well dimensions.
type BoardConfig struct {
	Rows    int `yaml:"rows"`
	Columns int `yaml:"columns"`
}

// SpawnConfig defines where and in which color new pieces appear.
type SpawnConfig struct {
	Row    int    `yaml:"row"`
	Column int    `yaml:"column"`
	Color  string `yaml:"color"`
}

// ScoringConfig defines score awards.
type ScoringConfig struct {
	PointsPerRow int `yaml:"points_per_row"`
}

// TimingConfig defines the constant gravity period.
type TimingConfig struct {
	FallIntervalMS int `yaml:"fall_interval_ms"`
}

// RulesConfig holds behavior switches.
type RulesConfig struct {
	// SpawnOnLand spawns the next piece in the same tick a piece lands.
	// When false the next piece appears on the following gravity tick.
	SpawnOnLand bool `yaml:"spawn_on_land"`
}

// SpawnColor resolves the configured spawn color name.
func (c PentixConfig) SpawnColor() (core.Color, error) {
	color, ok := core.ParseColor(c.Spawn.Color)
	if !ok {
		return core.ColorDefault, fmt.Errorf("%w: unknown spawn color %q", ErrInvalidConfig, c.Spawn.Color)
	}
	return color, nil
}

// Validate checks that the configuration describes a playable game.
func (c PentixConfig) Validate() error {
	if c.Board.Rows <= 0 || c.Board.Columns <= 0 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Board.Rows, c.Board.Columns)
	}
	if c.Spawn.Row < 0 || c.Spawn.Row >= c.Board.Rows || c.Spawn.Column < 0 || c.Spawn.Column >= c.Board.Columns {
		return fmt.Errorf("%w: spawn (%d, %d) outside %dx%d board", ErrInvalidConfig, c.Spawn.Row, c.Spawn.Column, c.Board.Rows, c.Board.Columns)
	}
	color, err := c.SpawnColor()
	if err != nil {
		return err
	}
	if color == core.ColorDefault {
		return fmt.Errorf("%w: spawn color must differ from the empty cell color", ErrInvalidConfig)
	}
	if c.Scoring.PointsPerRow < 0 {
		return fmt.Errorf("%w: points_per_row must not be negative", ErrInvalidConfig)
	}
	if c.Timing.FallIntervalMS <= 0 {
		return fmt.Errorf("%w: fall_interval_ms must be positive", ErrInvalidConfig)
	}
	for i, shape := range c.Shapes {
		if err := ValidateShape(shape); err != nil {
			return fmt.Errorf("%w: shape %d: %v", ErrInvalidConfig, i, err)
		}
	}
	return nil
}

// ValidateShape checks a 0/1 matrix is rectangular and has an occupied cell.
func ValidateShape(shape [][]int) error {
	if len(shape) == 0 || len(shape[0]) == 0 {
		return errors.New("empty matrix")
	}
	width := len(shape[0])
	occupied := 0
	for y, row := range shape {
		if len(row) != width {
			return fmt.Errorf("row %d has %d cells, want %d", y, len(row), width)
		}
		for x, v := range row {
			switch v {
			case 0:
			case 1:
				occupied++
			default:
				return fmt.Errorf("cell (%d, %d) is %d, want 0 or 1", y, x, v)
			}
		}
	}
	if occupied == 0 {
		return errors.New("no occupied cells")
	}
	return nil
}
