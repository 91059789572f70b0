// Package crush implements the match-3 game on top of the rules engine, with
// campaign and endless modes.
package crush

import (
	"github.com/vovakirdan/tui-crush/internal/config"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// Level is a resolved campaign stage, difficulty scaling applied.
type Level struct {
	Index  int
	Target int
	Moves  int
	Colors int
	Layout []string
}

// resolveLevel scales the configured level at index by the difficulty
// manager. Out-of-range indexes return false.
func resolveLevel(cfg config.CrushConfig, d *config.DifficultyManager, index int) (Level, bool) {
	if index < 0 || index >= len(cfg.Levels) {
		return Level{}, false
	}
	lvl := cfg.Levels[index]
	return Level{
		Index:  index,
		Target: d.Target(lvl.Target, index),
		Moves:  d.Moves(lvl.Moves, index),
		Colors: d.Colors(lvl.Colors, index),
		Layout: lvl.Layout,
	}, true
}

// endlessColors returns the color count for endless mode.
func endlessColors(cfg config.CrushConfig, d *config.DifficultyManager) int {
	return d.Colors(cfg.Endless.Colors, 0)
}

// loadConfig reads the active config with the selected preset applied.
func loadConfig() config.CrushConfig {
	cfg, err := config.LoadCrush(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultCrushConfig()
	}
	if difficultyPreset != "" {
		config.ApplyCrushPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// Levels returns the campaign as the next game would play it.
func Levels() []Level {
	cfg := loadConfig()
	d := config.NewDifficultyManager(cfg.Difficulty)
	levels := make([]Level, 0, len(cfg.Levels))
	for i := range cfg.Levels {
		if lvl, ok := resolveLevel(cfg, d, i); ok {
			levels = append(levels, lvl)
		}
	}
	return levels
}
