package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridmatch/internal/config"
	"github.com/vovakirdan/gridmatch/internal/core"
	"github.com/vovakirdan/gridmatch/internal/games/gridmatch"
	"github.com/vovakirdan/gridmatch/internal/platform/tui"
	"github.com/vovakirdan/gridmatch/internal/registry"
)

const defaultGameID = "gridmatch"

var (
	flagConfig     string
	flagDifficulty string
	flagSize       string
	flagRandom     bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play GridMatch",
	Long: `Start playing the specified mode (gridmatch or gridmatch_zen).

Controls:
  Arrows/WASD/HJKL  - Move cursor
  Enter/Space       - Select the cell under the cursor
  Mouse click       - Select a cell
  ?                 - Show a hint
  P                 - Pause
  R                 - Restart (after game over)
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Longer clock, smaller board
  normal - Config defaults
  hard   - Shorter clock, larger board
  fixed  - No timer speed-up

Examples:
  gridmatch play
  gridmatch play gridmatch_zen
  gridmatch play --difficulty hard
  gridmatch play --size 10x12
  gridmatch play --random --seed 42
  gridmatch play --config ./my-gridmatch.yaml`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeGameIDs,
	RunE:              runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers flags that configure the game before creation.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagSize, "size", "", "Board size as COLUMNSxROWS (clamped to config limits)")
	cmd.Flags().BoolVar(&flagRandom, "random", false, "Pick a random board size every game")
}

// applyGameFlags pushes --config, --difficulty, --size and --random into
// the gridmatch package.
func applyGameFlags() error {
	gridmatch.SetConfigPath(flagConfig)

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	gridmatch.SetDifficultyPreset(preset)

	if flagSize != "" {
		columns, rows, err := parseSize(flagSize)
		if err != nil {
			return err
		}
		gridmatch.SetBoardSize(columns, rows)
	}
	gridmatch.SetRandomSize(flagRandom)
	return nil
}

func completeGameIDs(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return registry.IDs(), cobra.ShellCompDirectiveNoFileComp
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := defaultGameID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q; run 'gridmatch list' to see available modes", gameID)
	}
	if err := applyGameFlags(); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openBackendOrWarn()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
