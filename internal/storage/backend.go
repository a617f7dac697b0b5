// Package storage persists finished GridMatch games. The default backend
// is SQLite via the pure-Go modernc.org/sqlite driver; redisstore provides
// a shared leaderboard backend.
package storage

import (
	"errors"
	"fmt"
	"time"
)

// ErrClosed is returned by backends used after Close.
var ErrClosed = errors.New("storage: backend closed")

// Backend stores and ranks game results.
type Backend interface {
	// SaveResult records a finished game and returns its ID.
	SaveResult(r GameResult) (int64, error)
	// SaveScore records a bare score with no board details.
	SaveScore(gameID string, score int) (int64, error)
	// TopScores returns the best results for a game, highest first.
	TopScores(gameID string, limit int) ([]ScoreEntry, error)
	// HighScore returns the best score for a game, 0 if none.
	HighScore(gameID string) (int, error)
	// Stats returns aggregates for a game.
	Stats(gameID string) (*GameStats, error)
	Close() error
}

// GameResult is what the platform knows about a finished game.
type GameResult struct {
	GameID    string
	Score     int
	Moves     int
	Columns   int
	Rows      int
	EndReason string // "time", "deadlock", "fault" or empty
}

// ScoreEntry represents a single stored result.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	Moves     int
	Columns   int
	Rows      int
	EndReason string
	CreatedAt time.Time
}

// BoardSize formats the board dimensions, or "-" when unknown.
func (e ScoreEntry) BoardSize() string {
	if e.Columns == 0 || e.Rows == 0 {
		return "-"
	}
	return fmt.Sprintf("%dx%d", e.Columns, e.Rows)
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}
