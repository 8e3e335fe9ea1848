package repository

import (
	"context"

	"github.com/osse101/ApexPredict_Go/internal/domain"
)

// StoredPrediction is a prediction row with its payload still encoded.
// The service layer owns decoding so that a malformed payload can
// degrade to "no prediction available" instead of failing the query.
type StoredPrediction struct {
	ID      string
	UserID  string
	RaceID  string
	Payload []byte
	Points  *int
}

// Prediction defines the interface for prediction persistence
type Prediction interface {
	UpsertPrediction(ctx context.Context, userID, raceID string, payload []byte) (*domain.Prediction, error)
	GetPrediction(ctx context.Context, userID, raceID string) (*StoredPrediction, error)
	ListPredictionsByRace(ctx context.Context, raceID string) ([]StoredPrediction, error)
	UpdatePredictionPoints(ctx context.Context, id string, points int) error
}
