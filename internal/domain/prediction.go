package domain

import (
	"encoding/json"
	"time"
)

// GridSlot represents a single slot of a predicted finishing order:
// "the driver with this number finishes in this position".
// DriverNumber is nil when the user left the slot empty; an empty slot
// can never score.
type GridSlot struct {
	Position     int  `json:"position"`
	DriverNumber *int `json:"driverNumber,omitempty"`
}

// AdditionalPicks holds the three independent singleton predictions.
// Each is optional and scored by exact match only.
type AdditionalPicks struct {
	Pole            *int `json:"pole,omitempty"`
	FastestLap      *int `json:"fastestLap,omitempty"`
	PositionsGained *int `json:"positionsGained,omitempty"`
}

// PredictionSet is the complete user submission for one race weekend.
// The JSON field names are the persisted wire format shared with the
// mobile client; they must not change.
type PredictionSet struct {
	GridOrder             []GridSlot      `json:"gridOrder"`
	SprintPositions       []GridSlot      `json:"sprintPositions,omitempty"`
	AdditionalPredictions AdditionalPicks `json:"additionalPredictions,omitempty"`
}

// ParsePredictionSet decodes a stored prediction payload.
// Callers treat a decode failure as "no prediction available" rather than
// surfacing the raw unmarshal error (see ErrPredictionNotFound).
func ParsePredictionSet(payload []byte) (PredictionSet, error) {
	var set PredictionSet
	if err := json.Unmarshal(payload, &set); err != nil {
		return PredictionSet{}, err
	}
	return set, nil
}

// Prediction is a stored user submission for a race, including the point
// total written back once the race has been scored.
type Prediction struct {
	ID        string        `json:"id"`
	UserID    string        `json:"user_id"`
	RaceID    string        `json:"race_id"`
	Set       PredictionSet `json:"prediction"`
	Points    *int          `json:"points,omitempty"` // nil until the race is scored
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
