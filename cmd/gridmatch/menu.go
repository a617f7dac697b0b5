package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridmatch/internal/games/gridmatch"
	"github.com/vovakirdan/gridmatch/internal/platform/tui"
	"github.com/vovakirdan/gridmatch/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start GridMatch with a mode picker menu",
	Long: `Start in interactive menu mode.

Pick a mode, then a difficulty and board size. After a game ends you
return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Esc/B        - Back
  Q            - Quit

Examples:
  gridmatch menu
  gridmatch menu --fps 60
  gridmatch menu --db ./scores.db`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runMenu(_ *cobra.Command, _ []string) error {
	gridmatch.SetConfigPath(flagConfig)

	store := openBackendOrWarn()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				logger.Error("scoreboard failed", "error", err)
			}
			if goBack {
				continue
			}
			return nil
		}

		setup, err := tui.RunSetup(cfg)
		if err != nil {
			logger.Error("setup failed", "error", err)
			continue
		}
		if setup == nil {
			continue
		}
		gridmatch.SetDifficultyPreset(setup.Difficulty)
		gridmatch.SetBoardSize(setup.Columns, setup.Rows)
		gridmatch.SetRandomSize(setup.Random)

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("cannot create game", "game", menuResult.GameID, "error", err)
			continue
		}

		cfg.Seed = time.Now().UnixNano()
		if err := tui.Run(game, store, cfg, logger); err != nil {
			logger.Error("game failed", "game", game.ID(), "error", err)
		}
	}
}
