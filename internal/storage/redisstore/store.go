// Package redisstore is a Redis leaderboard backend. Each game keeps a
// sorted set of entry IDs ranked by score, with entry details in hashes.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vovakirdan/gridmatch/internal/storage"
)

// Store is a Redis-backed implementation of storage.Backend.
type Store struct {
	client *redis.Client
	cfg    Config
	now    func() time.Time
}

var _ storage.Backend = (*Store)(nil)

// New connects to Redis and verifies the connection.
func New(cfg Config) (*Store, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("storage: invalid redis url: %w", err)
	}
	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)
	s := NewWithClient(client, cfg)

	ctx, cancel := s.context()
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("storage: cannot connect to redis: %w", err)
	}
	return s, nil
}

// NewWithClient creates a store around an existing client (for testing).
func NewWithClient(client *redis.Client, cfg Config) *Store {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	if cfg.Prefix == "" {
		cfg.Prefix = DefaultConfig().Prefix
	}
	return &Store{client: client, cfg: cfg, now: time.Now}
}

func (s *Store) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.cfg.Timeout)
}

// Close closes the Redis connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// SaveResult stores a finished game and ranks it.
func (s *Store) SaveResult(r storage.GameResult) (int64, error) {
	ctx, cancel := s.context()
	defer cancel()

	id, err := s.client.Incr(ctx, s.seqKey()).Result()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot allocate score id: %w", err)
	}
	created := s.now().UTC()

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, s.entryKey(id), map[string]any{
		"game_id":    r.GameID,
		"score":      r.Score,
		"moves":      r.Moves,
		"columns":    r.Columns,
		"rows":       r.Rows,
		"end_reason": r.EndReason,
		"created_at": created.Unix(),
	})
	pipe.ZAdd(ctx, s.leaderboardKey(r.GameID), redis.Z{Score: float64(r.Score), Member: id})
	pipe.HIncrBy(ctx, s.statsKey(r.GameID), "count", 1)
	pipe.HIncrBy(ctx, s.statsKey(r.GameID), "total", int64(r.Score))
	pipe.HSet(ctx, s.statsKey(r.GameID), "last_played", created.Unix())
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}
	return id, nil
}

// SaveScore records a bare score.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	return s.SaveResult(storage.GameResult{GameID: gameID, Score: score})
}

// TopScores returns the best entries for a game, highest first.
func (s *Store) TopScores(gameID string, limit int) ([]storage.ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	ctx, cancel := s.context()
	defer cancel()

	ids, err := s.client.ZRevRange(ctx, s.leaderboardKey(gameID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	pipe := s.client.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(ids))
	parsed := make([]int64, len(ids))
	for i, raw := range ids {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("storage: bad leaderboard member %q: %w", raw, err)
		}
		parsed[i] = id
		cmds[i] = pipe.HGetAll(ctx, s.entryKey(id))
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("storage: cannot load entries: %w", err)
	}

	entries := make([]storage.ScoreEntry, 0, len(ids))
	for i, cmd := range cmds {
		fields := cmd.Val()
		if len(fields) == 0 {
			continue
		}
		entries = append(entries, decodeEntry(parsed[i], fields))
	}
	return entries, nil
}

// HighScore returns the best score for a game, 0 if none.
func (s *Store) HighScore(gameID string) (int, error) {
	ctx, cancel := s.context()
	defer cancel()

	top, err := s.client.ZRevRangeWithScores(ctx, s.leaderboardKey(gameID), 0, 0).Result()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if len(top) == 0 {
		return 0, nil
	}
	return int(top[0].Score), nil
}

// Stats returns aggregates kept alongside the leaderboard.
func (s *Store) Stats(gameID string) (*storage.GameStats, error) {
	ctx, cancel := s.context()
	defer cancel()

	fields, err := s.client.HGetAll(ctx, s.statsKey(gameID)).Result()
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats := &storage.GameStats{GameID: gameID}
	stats.GamesCount = atoi(fields["count"])
	stats.TotalScore = int64(atoi(fields["total"]))
	if stats.GamesCount > 0 {
		stats.AvgScore = float64(stats.TotalScore) / float64(stats.GamesCount)
	}
	if ts := atoi(fields["last_played"]); ts > 0 {
		stats.LastPlayed = time.Unix(int64(ts), 0).UTC()
	}

	high, err := s.HighScore(gameID)
	if err != nil {
		return nil, err
	}
	stats.HighScore = high
	return stats, nil
}

func decodeEntry(id int64, f map[string]string) storage.ScoreEntry {
	e := storage.ScoreEntry{
		ID:        id,
		GameID:    f["game_id"],
		Score:     atoi(f["score"]),
		Moves:     atoi(f["moves"]),
		Columns:   atoi(f["columns"]),
		Rows:      atoi(f["rows"]),
		EndReason: f["end_reason"],
	}
	if ts := atoi(f["created_at"]); ts > 0 {
		e.CreatedAt = time.Unix(int64(ts), 0).UTC()
	}
	return e
}

// atoi parses a stored integer; missing or malformed fields read as 0.
func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
