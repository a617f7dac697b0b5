package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/gridmatch/internal/storage"
	"github.com/vovakirdan/gridmatch/internal/storage/redisstore"
)

const (
	backendSQLite = "sqlite"
	backendRedis  = "redis"
)

// openBackend opens the score store selected by the global flags.
func openBackend() (storage.Backend, error) {
	switch flagScoresBackend {
	case backendSQLite, "":
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return nil, err
		}
		return store, nil
	case backendRedis:
		cfg := redisstore.DefaultConfig()
		cfg.URL = flagRedisURL
		store, err := redisstore.New(cfg)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown scores backend %q (want %s or %s)", flagScoresBackend, backendSQLite, backendRedis)
	}
}

// openBackendOrWarn opens the score store; on failure it logs and returns
// nil so the game still runs without saving.
func openBackendOrWarn() storage.Backend {
	store, err := openBackend()
	if err != nil {
		logger.Warn("could not open scores backend, scores will not be saved",
			"backend", flagScoresBackend, "error", err)
		return nil
	}
	return store
}

// parseSize parses a board size like "8x10" (columns x rows).
func parseSize(s string) (columns, rows int, err error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid size %q: want COLUMNSxROWS", s)
	}
	columns, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	rows, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	if columns < 1 || rows < 1 {
		return 0, 0, fmt.Errorf("invalid size %q: dimensions must be positive", s)
	}
	return columns, rows, nil
}
