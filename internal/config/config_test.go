package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultsMatchEmbedded(t *testing.T) {
	cfg, err := LoadCarnival("")
	if err != nil {
		t.Fatalf("LoadCarnival() failed: %v", err)
	}

	want := DefaultCarnivalConfig()
	if cfg != want {
		t.Errorf("Embedded defaults = %+v, expected %+v", cfg, want)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "carnival.yaml")
	data := []byte("arena:\n  width: 12\n  height: 8\nplayer:\n  start_x: 3\n  start_y: 3\nspawner:\n  interval_seconds: 0.5\n  max_attempts: 64\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCarnival(path)
	if err != nil {
		t.Fatalf("LoadCarnival(%s) failed: %v", path, err)
	}

	if cfg.Arena.Width != 12 || cfg.Arena.Height != 8 {
		t.Errorf("Arena = %+v, expected 12x8", cfg.Arena)
	}
	if cfg.Spawner.IntervalSeconds != 0.5 {
		t.Errorf("IntervalSeconds = %v, expected 0.5", cfg.Spawner.IntervalSeconds)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := LoadCarnival("/nonexistent/carnival.yaml"); err == nil {
		t.Error("LoadCarnival with a missing explicit path should fail")
	}
}

func TestNormalizeClampsArena(t *testing.T) {
	cfg := CarnivalConfig{
		Arena:  ArenaConfig{Width: 1, Height: 2},
		Player: PlayerConfig{StartX: 50, StartY: -4},
	}
	cfg.Normalize()

	if cfg.Arena.Width < 3 || cfg.Arena.Height < 3 {
		t.Errorf("Arena = %+v, sides must be >= 3", cfg.Arena)
	}
	if cfg.Player.StartX < 1 || cfg.Player.StartX > cfg.Arena.Width-2 {
		t.Errorf("StartX = %d, must be inside the interior", cfg.Player.StartX)
	}
	if cfg.Player.StartY < 1 || cfg.Player.StartY > cfg.Arena.Height-2 {
		t.Errorf("StartY = %d, must be inside the interior", cfg.Player.StartY)
	}
	if cfg.Spawner.MaxAttempts <= 0 {
		t.Errorf("MaxAttempts = %d, must be positive after Normalize", cfg.Spawner.MaxAttempts)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in    string
		want  DifficultyPreset
		valid bool
	}{
		{"", DifficultyNormal, true},
		{"easy", DifficultyEasy, true},
		{"normal", DifficultyNormal, true},
		{"hard", DifficultyHard, true},
		{"off", DifficultyOff, true},
		{"nightmare", "", false},
	}

	for _, tt := range tests {
		got, ok := ParsePreset(tt.in)
		if ok != tt.valid || got != tt.want {
			t.Errorf("ParsePreset(%q) = (%q, %v), expected (%q, %v)", tt.in, got, ok, tt.want, tt.valid)
		}
	}
}

func TestApplyCarnivalPreset(t *testing.T) {
	base := DefaultCarnivalConfig()

	easy := base
	ApplyCarnivalPreset(&easy, DifficultyEasy)
	if easy.Spawner.IntervalSeconds != base.Spawner.IntervalSeconds*2 {
		t.Errorf("easy interval = %v, expected doubled", easy.Spawner.IntervalSeconds)
	}

	hard := base
	ApplyCarnivalPreset(&hard, DifficultyHard)
	if hard.Spawner.IntervalSeconds != base.Spawner.IntervalSeconds/2 {
		t.Errorf("hard interval = %v, expected halved", hard.Spawner.IntervalSeconds)
	}

	off := base
	ApplyCarnivalPreset(&off, DifficultyOff)
	if off.Spawner.IntervalSeconds != 0 {
		t.Errorf("off interval = %v, expected 0", off.Spawner.IntervalSeconds)
	}

	normal := base
	ApplyCarnivalPreset(&normal, DifficultyNormal)
	if normal != base {
		t.Error("normal preset should leave the config unchanged")
	}
}
