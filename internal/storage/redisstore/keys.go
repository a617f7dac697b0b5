package redisstore

import "fmt"

// seqKey is the counter used to assign entry IDs.
func (s *Store) seqKey() string {
	return fmt.Sprintf("%s:seq", s.cfg.Prefix)
}

// leaderboardKey is the ZSET of entry IDs ranked by score for one game.
func (s *Store) leaderboardKey(gameID string) string {
	return fmt.Sprintf("%s:scores:%s", s.cfg.Prefix, gameID)
}

// entryKey is the HASH holding one stored result.
func (s *Store) entryKey(id int64) string {
	return fmt.Sprintf("%s:entry:%d", s.cfg.Prefix, id)
}

// statsKey is the HASH of running aggregates for one game.
func (s *Store) statsKey(gameID string) string {
	return fmt.Sprintf("%s:stats:%s", s.cfg.Prefix, gameID)
}
