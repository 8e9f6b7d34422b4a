package config

import (
	_ "embed"
)

//go:embed defaults/carnival.yaml
var defaultCarnivalYAML []byte

// DefaultCarnivalConfig returns the built-in Carnival configuration,
// matching the embedded defaults file.
func DefaultCarnivalConfig() CarnivalConfig {
	return CarnivalConfig{
		Arena: ArenaConfig{
			Width:  20,
			Height: 20,
		},
		Player: PlayerConfig{
			StartX: 1,
			StartY: 1,
		},
		Spawner: SpawnerConfig{
			IntervalSeconds: 1.0,
			MaxAttempts:     defaultMaxAttempts,
		},
	}
}
