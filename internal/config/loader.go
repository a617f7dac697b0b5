package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const gridMatchFile = "gridmatch.yaml"

// LoadGridMatch loads GridMatch configuration.
// Search order: customPath -> ~/.gridmatch/configs/gridmatch.yaml ->
// ./configs/gridmatch.yaml -> embedded default.
//
// Files are decoded on top of the defaults, so a partial file only
// overrides the keys it sets.
func LoadGridMatch(customPath string) (GridMatchConfig, error) {
	cfg := DefaultGridMatchConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath(gridMatchFile), filepath.Join("configs", gridMatchFile)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if loaded, ok := tryLoad(path); ok {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	var embedded GridMatchConfig
	if err := yaml.Unmarshal(defaultGridMatchYAML, &embedded); err != nil || embedded.Validate() != nil {
		return DefaultGridMatchConfig(), nil
	}
	return embedded, nil
}

// tryLoad reads an optional config file. Missing or broken files are skipped.
func tryLoad(path string) (GridMatchConfig, bool) {
	cfg := DefaultGridMatchConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if cfg.Validate() != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gridmatch", "configs", filename)
}

// ApplyGridMatchPreset modifies the config based on a difficulty preset.
func ApplyGridMatchPreset(cfg *GridMatchConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Smaller boards draw from fewer colors, which makes matches easier.
	switch preset {
	case DifficultyEasy:
		cfg.Timer.StartSeconds = 90
		cfg.Timer.MaxSeconds = 120
		cfg.Board.Columns, cfg.Board.Rows = cfg.Board.Clamp(7, 7)
	case DifficultyHard:
		cfg.Timer.StartSeconds = 45
		cfg.Timer.MaxSeconds = 60
		cfg.Board.Columns, cfg.Board.Rows = cfg.Board.Clamp(10, 10)
	}
}
