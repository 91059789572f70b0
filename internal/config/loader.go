package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCrush loads crush configuration. Files override the hardcoded defaults
// field by field.
// Search order: customPath -> ~/.arcade/configs/crush.yaml -> ./configs/crush.yaml -> embedded default
func LoadCrush(customPath string) (CrushConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return CrushConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseCrush(data)
		if err != nil {
			return CrushConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("crush.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseCrush(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/crush.yaml"); err == nil {
		if cfg, err := parseCrush(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseCrush(defaultCrushYAML)
	if err != nil {
		return DefaultCrushConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseCrush(data []byte) (CrushConfig, error) {
	cfg := DefaultCrushConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CrushConfig{}, err
	}
	return cfg, nil
}

// layoutFile is the on-disk shape of a --layout file.
type layoutFile struct {
	Colors int      `yaml:"colors"`
	Layout []string `yaml:"layout"`
}

// LoadLayout reads a fixed board from a YAML file with a "layout" list of rows,
// top row first. The returned color count is zero when the file omits it.
func LoadLayout(path string) ([]string, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read layout %s: %w", path, err)
	}
	var lf layoutFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, 0, fmt.Errorf("failed to parse layout %s: %w", path, err)
	}
	if len(lf.Layout) == 0 {
		return nil, 0, fmt.Errorf("layout %s has no rows", path)
	}
	return lf.Layout, lf.Colors, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyCrushPreset modifies the config based on a difficulty preset.
func ApplyCrushPreset(cfg *CrushConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Endless.Colors = 4
		for i := range cfg.Levels {
			cfg.Levels[i].Moves += 5
		}
	case DifficultyHard:
		cfg.Endless.Colors = 6
		for i := range cfg.Levels {
			cfg.Levels[i].Moves -= 3
		}
	}
}
