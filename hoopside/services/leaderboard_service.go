package services

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/hoopside/hoopside-backend/hoopside/database/repositories"
	"github.com/hoopside/hoopside-backend/hoopside/logger"
	"github.com/hoopside/hoopside-backend/hoopside/progression"
	"golang.org/x/sync/singleflight"
)

const leaderboardCacheSize = 32

// LeaderboardEntry is one row of the XP leaderboard.
type LeaderboardEntry struct {
	Position         int              `json:"position"`
	PlayerID         string           `json:"player_id"`
	XP               int64            `json:"xp"`
	Streak           int              `json:"streak"`
	TotalCompletions int64            `json:"total_completions"`
	Rank             progression.Rank `json:"rank"`
}

type cachedBoard struct {
	entries   []LeaderboardEntry
	expiresAt time.Time
}

// LeaderboardService serves read-only XP rankings. Snapshots are
// cached briefly and rebuilt behind a singleflight so a burst of
// requests triggers one query.
type LeaderboardService struct {
	ledgers     repositories.LedgerRepository
	cache       *lru.Cache
	cacheExpiry time.Duration
	group       singleflight.Group
}

func NewLeaderboardService(ledgers repositories.LedgerRepository, cacheExpiry time.Duration) *LeaderboardService {
	cache, _ := lru.New(leaderboardCacheSize)
	return &LeaderboardService{
		ledgers:     ledgers,
		cache:       cache,
		cacheExpiry: cacheExpiry,
	}
}

func (s *LeaderboardService) Top(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	key := fmt.Sprintf("top:%d", limit)

	if v, ok := s.cache.Get(key); ok {
		board := v.(cachedBoard)
		if time.Now().Before(board.expiresAt) {
			return board.entries, nil
		}
	}

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		start := time.Now()
		ledgers, err := s.ledgers.GetTop(ctx, limit)
		logger.LogQuery("leaderboard top", time.Since(start), err)
		if err != nil {
			return nil, err
		}

		entries := make([]LeaderboardEntry, 0, len(ledgers))
		for i, l := range ledgers {
			entries = append(entries, LeaderboardEntry{
				Position:         i + 1,
				PlayerID:         l.PlayerID,
				XP:               l.XP,
				Streak:           l.Streak,
				TotalCompletions: l.TotalCompletions,
				Rank:             progression.RankFor(l.XP),
			})
		}

		s.cache.Add(key, cachedBoard{
			entries:   entries,
			expiresAt: time.Now().Add(s.cacheExpiry),
		})
		return entries, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]LeaderboardEntry), nil
}
