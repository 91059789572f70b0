// Package config provides YAML-based game configuration loading and
// difficulty management for the crush game.
package config

import "time"

// CrushConfig contains all configuration for the crush game.
type CrushConfig struct {
	Board      CrushBoard       `yaml:"board"`
	Timing     CrushTiming      `yaml:"timing"`
	Scoring    CrushScoring     `yaml:"scoring"`
	Levels     []CrushLevel     `yaml:"levels"`
	Endless    CrushEndless     `yaml:"endless"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CrushBoard defines the grid dimensions.
type CrushBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// CrushTiming defines the animation durations fed to the rules engine.
type CrushTiming struct {
	Move           time.Duration `yaml:"move"`
	Die            time.Duration `yaml:"die"`
	Shake          time.Duration `yaml:"shake"`
	Detonation     time.Duration `yaml:"detonation"`
	ColorBombDelay time.Duration `yaml:"color_bomb_delay"`
	Settle         time.Duration `yaml:"settle"`
	Speed          float64       `yaml:"speed"` // Playback speed multiplier, 1.0 = real time
}

// CrushScoring defines how cleared tiles turn into points.
type CrushScoring struct {
	PerTile      int `yaml:"per_tile"`      // Points for each cleared tile
	ChainBonus   int `yaml:"chain_bonus"`   // Extra points per tile for each cascade step
	SpecialBonus int `yaml:"special_bonus"` // Points for each detonation
}

// CrushLevel is one campaign stage.
type CrushLevel struct {
	Target int      `yaml:"target"`           // Score needed to clear the level
	Moves  int      `yaml:"moves"`            // Move budget
	Colors int      `yaml:"colors"`           // Active tile colors
	Layout []string `yaml:"layout,omitempty"` // Optional fixed board, top row first
}

// CrushEndless configures endless mode.
type CrushEndless struct {
	Colors int `yaml:"colors"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level", "score", or "none"
	MaxAt int    `yaml:"max_at"` // Level index or score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	TargetMultiplier float64 `yaml:"target_multiplier"` // Multiplier added to the target score at max difficulty
	MoveReduction    int     `yaml:"move_reduction"`    // Moves removed at max difficulty
	ExtraColors      int     `yaml:"extra_colors"`      // Colors added at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
