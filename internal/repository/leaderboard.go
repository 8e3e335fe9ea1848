package repository

import (
	"context"

	"github.com/osse101/ApexPredict_Go/internal/domain"
)

// Leaderboard defines the interface for leaderboard persistence
type Leaderboard interface {
	// AddRacePoints folds one scored race into a user's season total.
	AddRacePoints(ctx context.Context, season, category, userID string, points int) error
	// SetSeasonTotal overwrites a user's season total, used by recounts.
	SetSeasonTotal(ctx context.Context, season, category, userID string, totalPoints, racesScored int) error
	GetRaceLeaderboard(ctx context.Context, raceID string, limit int) ([]domain.RaceLeaderboardEntry, error)
	GetSeasonLeaderboard(ctx context.Context, season, category string, limit int) ([]domain.SeasonLeaderboardEntry, error)
	// SumUserSeasonPoints totals the stored per-race points of every user
	// with at least one scored prediction in the season.
	SumUserSeasonPoints(ctx context.Context, season, category string) (map[string]domain.SeasonPointsSum, error)
}
