package config

import (
	_ "embed"
)

//go:embed defaults/gridmatch.yaml
var defaultGridMatchYAML []byte

// DefaultGridMatchConfig returns the default GridMatch configuration.
// It mirrors defaults/gridmatch.yaml and is used if the embedded file
// cannot be parsed.
func DefaultGridMatchConfig() GridMatchConfig {
	return GridMatchConfig{
		Board: BoardConfig{
			Columns: 8,
			Rows:    8,
			MinSize: 5,
			MaxSize: 16,
		},
		Palette: PaletteConfig{
			TierOne:       []string{"red", "green", "blue", "yellow"},
			TierTwo:       []string{"magenta", "cyan"},
			TierThree:     []string{"orange", "bright_white"},
			TierTwoArea:   65,
			TierThreeArea: 101,
		},
		Specials: SpecialsConfig{
			BombMin:         6,
			DiscoMin:        10,
			BombScoreBonus:  1.5,
			DiscoScoreBonus: 2.0,
			BombTimeBonus:   3,
			DiscoTimeBonus:  5,
		},
		Timer: TimerConfig{
			Enabled:           true,
			StartSeconds:      60,
			MaxSeconds:        90,
			MatchBonusSeconds: 0.25,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "gridmatch", "gridmatch_zen":
		return defaultGridMatchYAML
	default:
		return nil
	}
}
