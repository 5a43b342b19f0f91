// Package config provides YAML-based configuration loading for the snake
// simulation. Values are fixed at start and converted to sim.Config.
package config

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/sim"
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Timing  TimingConfig  `yaml:"timing"`
	Scoring ScoringConfig `yaml:"scoring"`
	Food    FoodConfig    `yaml:"food"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Walls   string        `yaml:"walls"` // "fatal" or "wrap"
}

// GridConfig defines the playfield size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig holds Go duration strings such as "200ms" or "1.5s".
type TimingConfig struct {
	MoveInterval string `yaml:"move_interval"`
	FoodInterval string `yaml:"food_interval"`
}

// ScoringConfig defines score rewards.
type ScoringConfig struct {
	Reward uint `yaml:"reward"` // Points per food eaten
}

// FoodConfig limits outstanding food.
type FoodConfig struct {
	MaxItems int `yaml:"max_items"`
}

// SpawnConfig is the initial snake layout. The tail is placed one cell
// behind the head, opposite to the facing direction.
type SpawnConfig struct {
	HeadX  int    `yaml:"head_x"`
	HeadY  int    `yaml:"head_y"`
	Facing string `yaml:"facing"`
}

// ToSim converts the YAML form into simulation constants and validates them.
func (c SnakeConfig) ToSim() (sim.Config, error) {
	var errs []error

	move, err := parseInterval("timing.move_interval", c.Timing.MoveInterval)
	errs = append(errs, err)
	food, err := parseInterval("timing.food_interval", c.Timing.FoodInterval)
	errs = append(errs, err)
	facing, err := sim.ParseDirection(c.Spawn.Facing)
	if err != nil {
		errs = append(errs, fmt.Errorf("spawn.facing: %w", err))
	}

	if err := errors.Join(errs...); err != nil {
		return sim.Config{}, fmt.Errorf("config: %w", err)
	}

	out := sim.Config{
		Width:        c.Grid.Width,
		Height:       c.Grid.Height,
		MoveInterval: move,
		FoodInterval: food,
		Reward:       c.Scoring.Reward,
		MaxFood:      c.Food.MaxItems,
		Walls:        sim.WallPolicy(c.Walls),
		SpawnHead:    sim.C(c.Spawn.HeadX, c.Spawn.HeadY),
		SpawnFacing:  facing,
	}
	if err := out.Validate(); err != nil {
		return sim.Config{}, fmt.Errorf("config: %w", err)
	}
	return out, nil
}

// Validate reports whether the config converts to a usable simulation.
func (c SnakeConfig) Validate() error {
	_, err := c.ToSim()
	return err
}

// Marshal renders the config as YAML.
func (c SnakeConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// FromSim is the inverse of ToSim.
func FromSim(s sim.Config) SnakeConfig {
	return SnakeConfig{
		Grid:    GridConfig{Width: s.Width, Height: s.Height},
		Timing:  TimingConfig{MoveInterval: s.MoveInterval.String(), FoodInterval: s.FoodInterval.String()},
		Scoring: ScoringConfig{Reward: s.Reward},
		Food:    FoodConfig{MaxItems: s.MaxFood},
		Spawn:   SpawnConfig{HeadX: s.SpawnHead.X, HeadY: s.SpawnHead.Y, Facing: s.SpawnFacing.String()},
		Walls:   string(s.Walls),
	}
}

func parseInterval(field, v string) (time.Duration, error) {
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	return d, nil
}
