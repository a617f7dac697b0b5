// Package config provides YAML-based game configuration loading and
// difficulty management for GridMatch.
package config

import (
	"errors"
	"fmt"
)

// GridMatchConfig contains all configuration for the GridMatch game.
type GridMatchConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Palette    PaletteConfig    `yaml:"palette"`
	Specials   SpecialsConfig   `yaml:"specials"`
	Timer      TimerConfig      `yaml:"timer"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the board dimensions.
type BoardConfig struct {
	Columns int  `yaml:"columns"`
	Rows    int  `yaml:"rows"`
	MinSize int  `yaml:"min_size"` // Smallest allowed columns/rows
	MaxSize int  `yaml:"max_size"` // Largest allowed columns/rows
	Random  bool `yaml:"random"`   // Pick a random size on every reset
}

// Clamp restricts a requested size to [MinSize, MaxSize] on both axes.
func (b BoardConfig) Clamp(columns, rows int) (int, int) {
	return clampI(columns, b.MinSize, b.MaxSize), clampI(rows, b.MinSize, b.MaxSize)
}

// PaletteConfig defines the color tiers. Larger boards unlock more colors.
type PaletteConfig struct {
	TierOne       []string `yaml:"tier_one"`
	TierTwo       []string `yaml:"tier_two"`
	TierThree     []string `yaml:"tier_three"`
	TierTwoArea   int      `yaml:"tier_two_area"`   // Smallest area that adds tier two
	TierThreeArea int      `yaml:"tier_three_area"` // Smallest area that adds tier three
}

// ColorsForArea returns the color names in play for a board of the given area.
func (p PaletteConfig) ColorsForArea(area int) []string {
	colors := append([]string(nil), p.TierOne...)
	if area >= p.TierTwoArea {
		colors = append(colors, p.TierTwo...)
	}
	if area >= p.TierThreeArea {
		colors = append(colors, p.TierThree...)
	}
	return colors
}

// SpecialsConfig defines special piece thresholds and rewards.
type SpecialsConfig struct {
	BombMin         int     `yaml:"bomb_min"`
	DiscoMin        int     `yaml:"disco_min"`
	BombScoreBonus  float64 `yaml:"bomb_score_bonus"`  // Cleared count multiplier when a bomb fires
	DiscoScoreBonus float64 `yaml:"disco_score_bonus"` // Cleared count multiplier when a disco fires
	BombTimeBonus   float64 `yaml:"bomb_time_bonus"`   // Seconds
	DiscoTimeBonus  float64 `yaml:"disco_time_bonus"`  // Seconds
}

// TimerConfig defines the countdown for timed play.
type TimerConfig struct {
	Enabled           bool    `yaml:"enabled"`
	StartSeconds      float64 `yaml:"start_seconds"`
	MaxSeconds        float64 `yaml:"max_seconds"`
	MatchBonusSeconds float64 `yaml:"match_bonus_seconds"` // Per cleared cell
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Extra timer drain at max difficulty
}

// Validate checks the config for values the game cannot run with.
func (c GridMatchConfig) Validate() error {
	var errs []error
	if c.Board.MinSize < 1 || c.Board.MaxSize < c.Board.MinSize {
		errs = append(errs, fmt.Errorf("board: size range [%d,%d] is invalid", c.Board.MinSize, c.Board.MaxSize))
	}
	if len(c.Palette.TierOne) < 2 {
		errs = append(errs, errors.New("palette: tier_one needs at least two colors"))
	}
	if c.Specials.BombMin < 2 || c.Specials.DiscoMin <= c.Specials.BombMin {
		errs = append(errs, fmt.Errorf("specials: need 2 <= bomb_min < disco_min, got %d and %d",
			c.Specials.BombMin, c.Specials.DiscoMin))
	}
	if c.Timer.Enabled && c.Timer.StartSeconds <= 0 {
		errs = append(errs, errors.New("timer: start_seconds must be positive"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
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

// ParsePreset converts a CLI value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

func clampI(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
