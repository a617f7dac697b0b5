package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridmatch/internal/registry"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a mode",
	Long: `Display the top scores for the specified mode (default: gridmatch).

Examples:
  gridmatch scores
  gridmatch scores gridmatch_zen --limit 20
  gridmatch scores --scores-backend redis`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeGameIDs,
	RunE:              runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := defaultGameID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q; run 'gridmatch list' to see available modes", gameID)
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store, err := openBackend()
	if err != nil {
		return fmt.Errorf("opening scores backend: %w", err)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'gridmatch play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-7s  %-8s  %s\n", "Rank", "Score", "Moves", "Board", "End", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-7s  %-8s  %s\n", "----", "-----", "-----", "-----", "---", "----")
	for i, e := range scores {
		end := e.EndReason
		if end == "" {
			end = "-"
		}
		fmt.Printf("  %-4d  %-8d  %-5d  %-7s  %-8s  %s\n",
			i+1, e.Score, e.Moves, e.BoardSize(), end, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(gameID)
	if err != nil {
		logger.Warn("could not load stats", "error", err)
		return nil
	}
	fmt.Println()
	fmt.Printf("Best: %d   Games: %d   Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	return nil
}
