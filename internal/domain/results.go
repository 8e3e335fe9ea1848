package domain

import (
	"encoding/json"
	"time"
)

// ResultSlot is one entry of an authoritative finishing order.
// Unlike a predicted GridSlot, the driver number is always present.
type ResultSlot struct {
	Position     int `json:"position"`
	DriverNumber int `json:"driverNumber"`
}

// ResultExtras holds the actual outcomes the three singleton picks are
// scored against: the pole sitter, the fastest-lap driver and the driver
// who gained the most positions.
type ResultExtras struct {
	Pole            *int `json:"pole,omitempty"`
	FastestLap      *int `json:"fastestLap,omitempty"`
	PositionsGained *int `json:"positionsGained,omitempty"`
}

// RaceResults is the authoritative outcome of a race weekend, parsed from
// the persisted payload. Treated as read-only input by the scoring engine.
type RaceResults struct {
	GridOrder             []ResultSlot `json:"gridOrder"`
	SprintPositions       []ResultSlot `json:"sprintPositions,omitempty"`
	AdditionalPredictions ResultExtras `json:"additionalPredictions,omitempty"`
}

// ParseRaceResults decodes a stored results payload.
func ParseRaceResults(payload []byte) (RaceResults, error) {
	var results RaceResults
	if err := json.Unmarshal(payload, &results); err != nil {
		return RaceResults{}, err
	}
	return results, nil
}

// RaceResult is a stored authoritative result for a race.
type RaceResult struct {
	RaceID    string      `json:"race_id"`
	Season    string      `json:"season"`
	Category  string      `json:"category"`
	Results   RaceResults `json:"results"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
