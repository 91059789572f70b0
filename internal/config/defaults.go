package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/crush.yaml
var defaultCrushYAML []byte

// DefaultCrushConfig returns the default crush configuration.
func DefaultCrushConfig() CrushConfig {
	return CrushConfig{
		Board: CrushBoard{
			Width:  9,
			Height: 9,
		},
		Timing: CrushTiming{
			Move:           300 * time.Millisecond,
			Die:            200 * time.Millisecond,
			Shake:          400 * time.Millisecond,
			Detonation:     300 * time.Millisecond,
			ColorBombDelay: 700 * time.Millisecond,
			Settle:         300 * time.Millisecond,
			Speed:          1.0,
		},
		Scoring: CrushScoring{
			PerTile:      10,
			ChainBonus:   5,
			SpecialBonus: 50,
		},
		Levels: []CrushLevel{
			{Target: 600, Moves: 20, Colors: 4},
			{Target: 1200, Moves: 20, Colors: 5},
			{Target: 2500, Moves: 20, Colors: 6},
		},
		Endless: CrushEndless{
			Colors: 5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				TargetMultiplier: 1.0,
				MoveReduction:    6,
				ExtraColors:      1,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "crush", "crush_endless":
		return defaultCrushYAML
	default:
		return nil
	}
}
