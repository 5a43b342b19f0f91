package sim

import (
	"errors"
	"fmt"
	"time"
)

// Config holds the simulation constants. They are fixed once a Lifecycle
// is created.
type Config struct {
	Width        int
	Height       int
	MoveInterval time.Duration // Time between movement ticks
	FoodInterval time.Duration // Time between food spawn attempts
	Reward       uint          // Score added per food eaten
	MaxFood      int           // Food items allowed on the grid at once
	Walls        WallPolicy
	SpawnHead    Coord // Head cell after reset; the neck sits behind it
	SpawnFacing  Direction
}

// DefaultConfig returns the stock 15x15 setup.
func DefaultConfig() Config {
	return Config{
		Width:        15,
		Height:       15,
		MoveInterval: 200 * time.Millisecond,
		FoodInterval: 1500 * time.Millisecond,
		Reward:       1,
		MaxFood:      1,
		Walls:        WallsFatal,
		SpawnHead:    Coord{X: 3, Y: 3},
		SpawnFacing:  Up,
	}
}

// Validate reports the first problem that would make the config unusable.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("sim: grid size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.MoveInterval <= 0 {
		return errors.New("sim: move interval must be positive")
	}
	if c.FoodInterval <= 0 {
		return errors.New("sim: food interval must be positive")
	}
	if c.MaxFood < 1 {
		return fmt.Errorf("sim: max food must be at least 1, got %d", c.MaxFood)
	}
	if !c.Walls.Valid() {
		return fmt.Errorf("sim: unknown wall policy %q", c.Walls)
	}
	if c.SpawnFacing < Left || c.SpawnFacing > Down {
		return fmt.Errorf("sim: invalid spawn facing %d", int(c.SpawnFacing))
	}

	g := Grid{Width: c.Width, Height: c.Height}
	spawn := NewSnake(c.SpawnHead, c.SpawnFacing)
	for _, seg := range spawn.Segments {
		if !g.InBounds(seg) {
			return fmt.Errorf("sim: spawn segment %s is outside the %dx%d grid", seg, c.Width, c.Height)
		}
	}
	return nil
}
