// Package config provides YAML-based game configuration loading and
// difficulty presets for the carnival platform.
package config

// CarnivalConfig contains all tunable parameters for the Carnival game.
type CarnivalConfig struct {
	Arena   ArenaConfig   `yaml:"arena"`
	Player  PlayerConfig  `yaml:"player"`
	Spawner SpawnerConfig `yaml:"spawner"`
}

// ArenaConfig defines the grid dimensions. Both must be at least 3 so
// the perimeter ring leaves an interior.
type ArenaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the player's starting cell.
type PlayerConfig struct {
	StartX int `yaml:"start_x"`
	StartY int `yaml:"start_y"`
}

// SpawnerConfig defines the periodic wall spawner behavior.
type SpawnerConfig struct {
	// IntervalSeconds is the time between spawn attempts.
	// Zero or negative disables the spawner.
	IntervalSeconds float64 `yaml:"interval_seconds"`

	// MaxAttempts caps the rejection-sampling loop per spawn.
	// When no free cell is found within the cap the spawn is skipped.
	MaxAttempts int `yaml:"max_attempts"`
}

const (
	minArenaSide       = 3
	defaultMaxAttempts = 1024
)

// Normalize clamps the configuration into the ranges the game requires:
// arena sides >= 3, start position inside the interior, a positive
// attempt cap. Call it after loading; the game relies on it.
func (c *CarnivalConfig) Normalize() {
	if c.Arena.Width < minArenaSide {
		c.Arena.Width = minArenaSide
	}
	if c.Arena.Height < minArenaSide {
		c.Arena.Height = minArenaSide
	}

	// Interior is [1, side-2] on each axis; the ring is walls.
	c.Player.StartX = clamp(c.Player.StartX, 1, c.Arena.Width-2)
	c.Player.StartY = clamp(c.Player.StartY, 1, c.Arena.Height-2)

	if c.Spawner.MaxAttempts <= 0 {
		c.Spawner.MaxAttempts = defaultMaxAttempts
	}
}

func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// DifficultyPreset names a spawn-pressure preset.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyOff    DifficultyPreset = "off"
)

// ParsePreset validates a preset name. Empty means "normal".
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyOff:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}

// ApplyCarnivalPreset scales the spawner for the preset: easy doubles
// the interval, hard halves it, off disables periodic spawning.
func ApplyCarnivalPreset(cfg *CarnivalConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Spawner.IntervalSeconds *= 2
	case DifficultyHard:
		cfg.Spawner.IntervalSeconds /= 2
	case DifficultyOff:
		cfg.Spawner.IntervalSeconds = 0
	}
}
