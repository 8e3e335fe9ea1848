package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ApexPredict_Go/internal/domain"
	"github.com/osse101/ApexPredict_Go/internal/repository"
)

// ResultsRepository implements the race results repository for PostgreSQL
type ResultsRepository struct {
	db *pgxpool.Pool
}

// NewResultsRepository creates a new ResultsRepository
func NewResultsRepository(db *pgxpool.Pool) repository.Results {
	return &ResultsRepository{db: db}
}

// UpsertResult stores or replaces the authoritative result for a race.
// Re-inserting supports corrected results followed by a rescore.
func (r *ResultsRepository) UpsertResult(ctx context.Context, raceID, season, category string, payload []byte) error {
	query := `
		INSERT INTO race_results (race_id, season, category, payload)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (race_id)
		DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()
	`

	_, err := r.db.Exec(ctx, query, raceID, season, category, payload)
	if err != nil {
		return fmt.Errorf("failed to upsert result: %w", err)
	}

	return nil
}

// GetResult retrieves the stored result for a race
func (r *ResultsRepository) GetResult(ctx context.Context, raceID string) (*repository.StoredResult, error) {
	query := `
		SELECT race_id, season, category, payload
		FROM race_results
		WHERE race_id = $1
	`

	var stored repository.StoredResult
	err := r.db.QueryRow(ctx, query, raceID).Scan(
		&stored.RaceID, &stored.Season, &stored.Category, &stored.Payload,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrResultsNotAvailable
		}
		return nil, fmt.Errorf("failed to get result: %w", err)
	}

	return &stored, nil
}
