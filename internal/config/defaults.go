package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-snake/internal/sim"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the hardcoded default configuration.
func DefaultSnakeConfig() SnakeConfig {
	return FromSim(sim.DefaultConfig())
}

// DefaultYAML returns the embedded default YAML file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
