// gridmatch is a tap-to-match tile game for the terminal.
//
// Usage:
//
//	gridmatch list              - List game modes
//	gridmatch play [mode]       - Play a mode (default: gridmatch)
//	gridmatch menu              - Pick a mode interactively
//	gridmatch serve             - Start SSH server for remote play
//	gridmatch scores <mode>     - Show high scores for a mode
//	gridmatch simulate          - Autoplay games and report score statistics
//
// Global flags:
//
//	--fps <rate>               - Set tick rate (default: 30)
//	--seed <value>             - Set RNG seed for reproducible boards
//	--db <path>                - Set database path (default: ~/.gridmatch/scores.db)
//	--scores-backend <kind>    - sqlite or redis
//	--redis-url <url>          - Redis URL for the redis backend
//	--log-file <path>          - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridmatch/internal/games/gridmatch"
)

var (
	// Global flags
	flagFPS           int
	flagSeed          int64
	flagDBPath        string
	flagScoresBackend string
	flagRedisURL      string
	flagLogFile       string
	flagDebug         bool
)

// logger reports CLI warnings. Game and engine logging go to --log-file
// only, since the TUI owns the terminal while a game runs.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "gridmatch",
})

var logFile io.Closer

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridmatch",
	Short: "GridMatch - clear colored tiles in your terminal",
	Long: `GridMatch is a tap-to-match tile game. Select a cell to clear every
same-colored cell connected to it through straight runs. Big groups leave
behind bombs and disco pieces.

Available commands:
  list      - Show game modes
  play      - Play a mode directly
  menu      - Interactive mode picker
  serve     - Start SSH server for remote play
  scores    - View high scores
  simulate  - Autoplay games to balance a config

Examples:
  gridmatch play
  gridmatch play gridmatch_zen --size 10x10
  gridmatch menu
  gridmatch serve --ssh :2222
  gridmatch scores gridmatch --scores-backend redis`,
	PersistentPreRunE: setupLogging,
	SilenceUsage:      true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gridmatch/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagScoresBackend, "scores-backend", backendSQLite, "Score storage: sqlite or redis")
	rootCmd.PersistentFlags().StringVar(&flagRedisURL, "redis-url", "redis://localhost:6379/0", "Redis URL for --scores-backend redis")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write game and engine logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log every resolved move (needs --log-file)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}

// setupLogging routes game logging to --log-file when given.
func setupLogging(_ *cobra.Command, _ []string) error {
	if flagLogFile == "" {
		return nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	logFile = f

	fileLogger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "gridmatch",
	})
	if flagDebug {
		fileLogger.SetLevel(log.DebugLevel)
	}
	gridmatch.SetLogger(fileLogger)
	logger = fileLogger
	return nil
}
