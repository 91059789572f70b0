package config

import "math"

// DifficultyManager calculates level parameters based on progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0). Progress is the
// campaign level index or the score, depending on the progression type.
func (d *DifficultyManager) Level(progress int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	switch d.cfg.Progression.Type {
	case "level", "score":
	default:
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	p := clampF(float64(progress)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + p*(1.0-d.initialLevel)
}

// Target returns the score target scaled by difficulty.
func (d *DifficultyManager) Target(base, progress int) int {
	level := d.Level(progress)
	return int(math.Round(float64(base) * (1.0 + level*d.cfg.Scaling.TargetMultiplier)))
}

// Moves returns the move budget reduced by difficulty.
func (d *DifficultyManager) Moves(base, progress int) int {
	level := d.Level(progress)
	result := base - int(math.Round(level*float64(d.cfg.Scaling.MoveReduction)))
	if floor := min(base, 5); result < floor { // Minimum playable budget
		result = floor
	}
	return result
}

// Colors returns the active color count raised by difficulty, kept in [3, 6].
func (d *DifficultyManager) Colors(base, progress int) int {
	level := d.Level(progress)
	result := base + int(math.Round(level*float64(d.cfg.Scaling.ExtraColors)))
	if result < 3 {
		result = 3
	}
	if result > 6 {
		result = 6
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
