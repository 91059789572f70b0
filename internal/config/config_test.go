package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultParses(t *testing.T) {
	cfg, err := LoadCrush("")
	if err != nil {
		t.Fatalf("LoadCrush: %v", err)
	}
	if cfg.Board.Width != 9 || cfg.Board.Height != 9 {
		t.Errorf("board = %dx%d, want 9x9", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.Timing.Move != 300*time.Millisecond {
		t.Errorf("move = %v, want 300ms", cfg.Timing.Move)
	}
	if cfg.Timing.ColorBombDelay != 700*time.Millisecond {
		t.Errorf("color bomb delay = %v, want 700ms", cfg.Timing.ColorBombDelay)
	}
	if len(cfg.Levels) == 0 {
		t.Fatal("no levels")
	}
	for i, lvl := range cfg.Levels {
		if lvl.Colors < 3 || lvl.Colors > 6 {
			t.Errorf("level %d colors = %d", i, lvl.Colors)
		}
		if lvl.Target <= 0 || lvl.Moves <= 0 {
			t.Errorf("level %d = %+v", i, lvl)
		}
	}
}

func TestLoadCrushCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crush.yaml")
	data := []byte(`
timing:
  move: 150ms
scoring:
  per_tile: 1
levels:
  - target: 10
    moves: 3
    colors: 3
    layout:
      - "A B C"
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCrush(path)
	if err != nil {
		t.Fatalf("LoadCrush: %v", err)
	}
	if cfg.Timing.Move != 150*time.Millisecond {
		t.Errorf("move = %v, want 150ms", cfg.Timing.Move)
	}
	if cfg.Board.Width != 9 {
		t.Errorf("omitted board width = %d, want default 9", cfg.Board.Width)
	}
	if cfg.Timing.Die != 200*time.Millisecond {
		t.Errorf("omitted die = %v, want default 200ms", cfg.Timing.Die)
	}
	if cfg.Scoring.PerTile != 1 {
		t.Errorf("per tile = %d, want 1", cfg.Scoring.PerTile)
	}
	if len(cfg.Levels) != 1 || len(cfg.Levels[0].Layout) != 1 {
		t.Errorf("levels = %+v", cfg.Levels)
	}
}

func TestLoadCrushErrors(t *testing.T) {
	if _, err := LoadCrush(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file accepted")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("timing: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCrush(path); err == nil {
		t.Error("malformed file accepted")
	}
}

func TestLoadLayout(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	if err := os.WriteFile(good, []byte("colors: 4\nlayout:\n  - \"A B\"\n  - \"C *\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	rows, colors, err := LoadLayout(good)
	if err != nil {
		t.Fatalf("LoadLayout: %v", err)
	}
	if len(rows) != 2 || rows[1] != "C *" || colors != 4 {
		t.Errorf("rows = %q, colors = %d", rows, colors)
	}

	empty := filepath.Join(dir, "empty.yaml")
	if err := os.WriteFile(empty, []byte("colors: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadLayout(empty); err == nil {
		t.Error("layout without rows accepted")
	}
}

func TestApplyCrushPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		colors  int
		moves   int
	}{
		{DifficultyEasy, true, 4, 25},
		{DifficultyNormal, true, 5, 20},
		{DifficultyHard, true, 6, 17},
		{DifficultyFixed, false, 5, 20},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultCrushConfig()
			ApplyCrushPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("enabled = %v, want %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Endless.Colors != tc.colors {
				t.Errorf("endless colors = %d, want %d", cfg.Endless.Colors, tc.colors)
			}
			if cfg.Levels[0].Moves != tc.moves {
				t.Errorf("level 1 moves = %d, want %d", cfg.Levels[0].Moves, tc.moves)
			}
		})
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultCrushConfig().Difficulty
	d := NewDifficultyManager(cfg)

	if got := d.Level(0); got != 0 {
		t.Errorf("Level(0) = %v, want 0", got)
	}
	if got := d.Level(100); got != 1 {
		t.Errorf("Level(100) = %v, want 1", got)
	}
	if got := d.Target(1000, 10); got != 2000 {
		t.Errorf("Target at max = %d, want 2000", got)
	}
	if got := d.Moves(20, 10); got != 14 {
		t.Errorf("Moves at max = %d, want 14", got)
	}
	if got := d.Moves(6, 10); got != 5 {
		t.Errorf("Moves floor = %d, want 5", got)
	}
	if got := d.Colors(6, 10); got != 6 {
		t.Errorf("Colors cap = %d, want 6", got)
	}

	d.SetEnabled(false)
	d.SetInitialLevel(0.5)
	if got := d.Level(10); got != 0.5 {
		t.Errorf("disabled Level = %v, want 0.5", got)
	}
	d.SetInitialLevel(3)
	if got := d.Level(0); got != 1 {
		t.Errorf("clamped Level = %v, want 1", got)
	}
}
