package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ApexPredict_Go/internal/domain"
	"github.com/osse101/ApexPredict_Go/internal/repository"
)

// LeaderboardRepository implements the leaderboard repository for PostgreSQL
type LeaderboardRepository struct {
	db *pgxpool.Pool
}

// NewLeaderboardRepository creates a new LeaderboardRepository
func NewLeaderboardRepository(db *pgxpool.Pool) repository.Leaderboard {
	return &LeaderboardRepository{db: db}
}

// AddRacePoints folds one scored race into a user's season total
func (r *LeaderboardRepository) AddRacePoints(ctx context.Context, season, category, userID string, points int) error {
	query := `
		INSERT INTO leaderboard_entries (season, category, user_id, total_points, races_scored)
		VALUES ($1, $2, $3, $4, 1)
		ON CONFLICT (season, category, user_id)
		DO UPDATE SET
			total_points = leaderboard_entries.total_points + EXCLUDED.total_points,
			races_scored = leaderboard_entries.races_scored + 1,
			updated_at = NOW()
	`

	_, err := r.db.Exec(ctx, query, season, category, userID, points)
	if err != nil {
		return fmt.Errorf("failed to add race points: %w", err)
	}

	return nil
}

// SetSeasonTotal overwrites a user's season total, used by recounts
func (r *LeaderboardRepository) SetSeasonTotal(ctx context.Context, season, category, userID string, totalPoints, racesScored int) error {
	query := `
		INSERT INTO leaderboard_entries (season, category, user_id, total_points, races_scored)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (season, category, user_id)
		DO UPDATE SET
			total_points = EXCLUDED.total_points,
			races_scored = EXCLUDED.races_scored,
			updated_at = NOW()
	`

	_, err := r.db.Exec(ctx, query, season, category, userID, totalPoints, racesScored)
	if err != nil {
		return fmt.Errorf("failed to set season total: %w", err)
	}

	return nil
}

// GetRaceLeaderboard ranks scored predictions for a single race
func (r *LeaderboardRepository) GetRaceLeaderboard(ctx context.Context, raceID string, limit int) ([]domain.RaceLeaderboardEntry, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}

	query := `
		SELECT p.user_id, u.username, p.points
		FROM predictions p
		JOIN users u ON u.user_id = p.user_id
		WHERE p.race_id = $1 AND p.points IS NOT NULL
		ORDER BY p.points DESC, u.username ASC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, raceID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query race leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []domain.RaceLeaderboardEntry
	rank := 1
	for rows.Next() {
		var entry domain.RaceLeaderboardEntry
		if err := rows.Scan(&entry.UserID, &entry.Username, &entry.Points); err != nil {
			return nil, fmt.Errorf("failed to scan race leaderboard entry: %w", err)
		}
		entry.Rank = rank
		rank++
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// GetSeasonLeaderboard ranks season totals for a season and category
func (r *LeaderboardRepository) GetSeasonLeaderboard(ctx context.Context, season, category string, limit int) ([]domain.SeasonLeaderboardEntry, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}

	query := `
		SELECT l.user_id, u.username, l.total_points, l.races_scored, l.updated_at
		FROM leaderboard_entries l
		JOIN users u ON u.user_id = l.user_id
		WHERE l.season = $1 AND l.category = $2
		ORDER BY l.total_points DESC, u.username ASC
		LIMIT $3
	`

	rows, err := r.db.Query(ctx, query, season, category, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query season leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []domain.SeasonLeaderboardEntry
	rank := 1
	for rows.Next() {
		var entry domain.SeasonLeaderboardEntry
		err := rows.Scan(&entry.UserID, &entry.Username, &entry.TotalPoints, &entry.RacesScored, &entry.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan season leaderboard entry: %w", err)
		}
		entry.Rank = rank
		rank++
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// SumUserSeasonPoints totals stored per-race points per user across a season
func (r *LeaderboardRepository) SumUserSeasonPoints(ctx context.Context, season, category string) (map[string]domain.SeasonPointsSum, error) {
	query := `
		SELECT p.user_id, COALESCE(SUM(p.points), 0), COUNT(p.points)
		FROM predictions p
		JOIN races r ON r.race_id = p.race_id
		WHERE r.season = $1 AND r.category = $2 AND p.points IS NOT NULL
		GROUP BY p.user_id
	`

	rows, err := r.db.Query(ctx, query, season, category)
	if err != nil {
		return nil, fmt.Errorf("failed to sum season points: %w", err)
	}
	defer rows.Close()

	sums := make(map[string]domain.SeasonPointsSum)
	for rows.Next() {
		var userID string
		var sum domain.SeasonPointsSum
		if err := rows.Scan(&userID, &sum.TotalPoints, &sum.RacesScored); err != nil {
			return nil, fmt.Errorf("failed to scan season points sum: %w", err)
		}
		sums[userID] = sum
	}

	return sums, rows.Err()
}
