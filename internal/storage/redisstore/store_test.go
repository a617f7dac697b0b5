package redisstore

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/vovakirdan/gridmatch/internal/storage"
)

type StoreSuite struct {
	suite.Suite
	mini  *miniredis.Miniredis
	store *Store
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())
	client := redis.NewClient(&redis.Options{Addr: s.mini.Addr()})
	s.store = NewWithClient(client, DefaultConfig())
	s.store.now = func() time.Time { return time.Unix(1_700_000_000, 0) }
}

func (s *StoreSuite) TearDownTest() {
	if s.store != nil {
		_ = s.store.Close()
	}
}

func (s *StoreSuite) TestSaveAndRank() {
	for _, score := range []int{100, 50, 200} {
		_, err := s.store.SaveScore("gridmatch", score)
		s.Require().NoError(err)
	}
	_, err := s.store.SaveScore("gridmatch_zen", 999)
	s.Require().NoError(err)

	top, err := s.store.TopScores("gridmatch", 10)
	s.Require().NoError(err)
	s.Require().Len(top, 3)
	s.Equal(200, top[0].Score)
	s.Equal(100, top[1].Score)
	s.Equal(50, top[2].Score)
}

func (s *StoreSuite) TestTopScoresLimit() {
	for i := 1; i <= 5; i++ {
		_, err := s.store.SaveScore("gridmatch", i*10)
		s.Require().NoError(err)
	}

	top, err := s.store.TopScores("gridmatch", 2)
	s.Require().NoError(err)
	s.Require().Len(top, 2)
	s.Equal(50, top[0].Score)
	s.Equal(40, top[1].Score)
}

func (s *StoreSuite) TestSaveResultRoundTrip() {
	id, err := s.store.SaveResult(storage.GameResult{
		GameID:    "gridmatch",
		Score:     77,
		Moves:     9,
		Columns:   6,
		Rows:      7,
		EndReason: "time",
	})
	s.Require().NoError(err)
	s.Equal(int64(1), id)

	top, err := s.store.TopScores("gridmatch", 1)
	s.Require().NoError(err)
	s.Require().Len(top, 1)
	e := top[0]
	s.Equal(id, e.ID)
	s.Equal(9, e.Moves)
	s.Equal("6x7", e.BoardSize())
	s.Equal("time", e.EndReason)
	s.Equal(int64(1_700_000_000), e.CreatedAt.Unix())
}

func (s *StoreSuite) TestHighScoreEmpty() {
	high, err := s.store.HighScore("gridmatch")
	s.Require().NoError(err)
	s.Zero(high)

	top, err := s.store.TopScores("gridmatch", 5)
	s.Require().NoError(err)
	s.Empty(top)
}

func (s *StoreSuite) TestStats() {
	_, _ = s.store.SaveScore("gridmatch", 10)
	_, _ = s.store.SaveScore("gridmatch", 30)

	stats, err := s.store.Stats("gridmatch")
	s.Require().NoError(err)
	s.Equal(2, stats.GamesCount)
	s.Equal(30, stats.HighScore)
	s.Equal(int64(40), stats.TotalScore)
	s.InDelta(20.0, stats.AvgScore, 1e-9)
	s.False(stats.LastPlayed.IsZero())
}

func (s *StoreSuite) TestKeysArePrefixed() {
	_, err := s.store.SaveScore("gridmatch", 5)
	s.Require().NoError(err)

	s.True(s.mini.Exists("gridmatch:scores:gridmatch"))
	s.True(s.mini.Exists("gridmatch:entry:1"))
}

func TestNewRejectsBadURL(t *testing.T) {
	cfg := DefaultConfig()
	cfg.URL = "not a url"
	if _, err := New(cfg); err == nil {
		t.Error("expected error for invalid URL")
	}
}

func TestNewConnects(t *testing.T) {
	mini := miniredis.RunT(t)
	cfg := DefaultConfig()
	cfg.URL = "redis://" + mini.Addr() + "/0"

	store, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveScore("gridmatch", 1); err != nil {
		t.Errorf("SaveScore: %v", err)
	}
}
