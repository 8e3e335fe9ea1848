package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ApexPredict_Go/internal/domain"
	"github.com/osse101/ApexPredict_Go/internal/repository"
)

// PredictionRepository implements the prediction repository for PostgreSQL
type PredictionRepository struct {
	db *pgxpool.Pool
}

// NewPredictionRepository creates a new PredictionRepository
func NewPredictionRepository(db *pgxpool.Pool) repository.Prediction {
	return &PredictionRepository{db: db}
}

// UpsertPrediction stores or replaces a user's prediction for a race.
// Resubmitting before the window closes overwrites the previous payload
// and clears any previously written points.
func (r *PredictionRepository) UpsertPrediction(ctx context.Context, userID, raceID string, payload []byte) (*domain.Prediction, error) {
	query := `
		INSERT INTO predictions (prediction_id, user_id, race_id, payload)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, race_id)
		DO UPDATE SET payload = EXCLUDED.payload, points = NULL, updated_at = NOW()
		RETURNING prediction_id, created_at, updated_at
	`

	pred := &domain.Prediction{
		UserID: userID,
		RaceID: raceID,
	}

	id := uuid.NewString()
	err := r.db.QueryRow(ctx, query, id, userID, raceID, payload).
		Scan(&pred.ID, &pred.CreatedAt, &pred.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert prediction: %w", err)
	}

	return pred, nil
}

// GetPrediction retrieves a user's stored prediction for a race
func (r *PredictionRepository) GetPrediction(ctx context.Context, userID, raceID string) (*repository.StoredPrediction, error) {
	query := `
		SELECT prediction_id, user_id, race_id, payload, points
		FROM predictions
		WHERE user_id = $1 AND race_id = $2
	`

	var stored repository.StoredPrediction
	err := r.db.QueryRow(ctx, query, userID, raceID).Scan(
		&stored.ID, &stored.UserID, &stored.RaceID, &stored.Payload, &stored.Points,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPredictionNotFound
		}
		return nil, fmt.Errorf("failed to get prediction: %w", err)
	}

	return &stored, nil
}

// ListPredictionsByRace retrieves every stored prediction for a race
func (r *PredictionRepository) ListPredictionsByRace(ctx context.Context, raceID string) ([]repository.StoredPrediction, error) {
	query := `
		SELECT prediction_id, user_id, race_id, payload, points
		FROM predictions
		WHERE race_id = $1
	`

	rows, err := r.db.Query(ctx, query, raceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list predictions: %w", err)
	}
	defer rows.Close()

	var predictions []repository.StoredPrediction
	for rows.Next() {
		var stored repository.StoredPrediction
		err := rows.Scan(&stored.ID, &stored.UserID, &stored.RaceID, &stored.Payload, &stored.Points)
		if err != nil {
			return nil, fmt.Errorf("failed to scan prediction: %w", err)
		}
		predictions = append(predictions, stored)
	}

	return predictions, rows.Err()
}

// UpdatePredictionPoints writes the computed grand total back to a prediction
func (r *PredictionRepository) UpdatePredictionPoints(ctx context.Context, id string, points int) error {
	query := `
		UPDATE predictions
		SET points = $2, updated_at = NOW()
		WHERE prediction_id = $1
	`

	tag, err := r.db.Exec(ctx, query, id, points)
	if err != nil {
		return fmt.Errorf("failed to update prediction points: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPredictionNotFound
	}

	return nil
}
