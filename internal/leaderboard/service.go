package leaderboard

import (
	"context"
	"time"

	"github.com/osse101/ApexPredict_Go/internal/domain"
	"github.com/osse101/ApexPredict_Go/internal/logger"
	"github.com/osse101/ApexPredict_Go/internal/repository"
)

// Service defines the interface for leaderboard operations
type Service interface {
	GetRaceLeaderboard(ctx context.Context, raceID string, limit int) ([]domain.RaceLeaderboardEntry, error)
	GetSeasonLeaderboard(ctx context.Context, season, category string, limit int) ([]domain.SeasonLeaderboardEntry, error)
	// AddRacePoints folds a freshly scored race into a user's season total.
	AddRacePoints(ctx context.Context, season, category, userID string, points int) error
	// Recount rebuilds every season total from the stored per-race
	// points. Safe to run any number of times; results re-inserts rely
	// on it to keep totals consistent.
	Recount(ctx context.Context, season, category string) (int, error)
}

type service struct {
	repo  repository.Leaderboard
	cache *seasonCache
	limit int
}

// NewService creates a new leaderboard service
func NewService(repo repository.Leaderboard, cacheSize int, cacheTTL time.Duration, defaultLimit int) Service {
	return &service{
		repo:  repo,
		cache: newSeasonCache(cacheSize, cacheTTL),
		limit: defaultLimit,
	}
}

// GetRaceLeaderboard returns the per-race standings ordered by points
func (s *service) GetRaceLeaderboard(ctx context.Context, raceID string, limit int) ([]domain.RaceLeaderboardEntry, error) {
	if limit <= 0 {
		limit = s.limit
	}
	return s.repo.GetRaceLeaderboard(ctx, raceID, limit)
}

// GetSeasonLeaderboard returns the season standings. Default-limit
// pages are served from an LRU cache; custom limits always hit the
// database.
func (s *service) GetSeasonLeaderboard(ctx context.Context, season, category string, limit int) ([]domain.SeasonLeaderboardEntry, error) {
	log := logger.FromContext(ctx)

	cacheable := limit <= 0 || limit == s.limit
	if limit <= 0 {
		limit = s.limit
	}

	if cacheable {
		if entries, ok := s.cache.Get(season, category); ok {
			log.Debug("Season leaderboard cache hit", "season", season, "category", category)
			return entries, nil
		}
	}

	entries, err := s.repo.GetSeasonLeaderboard(ctx, season, category, limit)
	if err != nil {
		return nil, err
	}

	if cacheable {
		s.cache.Set(season, category, entries)
	}

	return entries, nil
}

// AddRacePoints adds a scored race to a user's season total
func (s *service) AddRacePoints(ctx context.Context, season, category, userID string, points int) error {
	if err := s.repo.AddRacePoints(ctx, season, category, userID, points); err != nil {
		return err
	}
	s.cache.Invalidate(season, category)
	return nil
}

// Recount rebuilds all season totals from stored per-race points
func (s *service) Recount(ctx context.Context, season, category string) (int, error) {
	log := logger.FromContext(ctx)

	sums, err := s.repo.SumUserSeasonPoints(ctx, season, category)
	if err != nil {
		return 0, err
	}

	updated := 0
	for userID, sum := range sums {
		if err := s.repo.SetSeasonTotal(ctx, season, category, userID, sum.TotalPoints, sum.RacesScored); err != nil {
			return updated, err
		}
		updated++
	}

	s.cache.Invalidate(season, category)
	log.Info("Season totals recounted", "season", season, "category", category, "users", updated)

	return updated, nil
}
