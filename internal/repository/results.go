package repository

import "context"

// StoredResult is a race result row with its payload still encoded.
type StoredResult struct {
	RaceID   string
	Season   string
	Category string
	Payload  []byte
}

// Results defines the interface for race result persistence
type Results interface {
	UpsertResult(ctx context.Context, raceID, season, category string, payload []byte) error
	GetResult(ctx context.Context, raceID string) (*StoredResult, error)
}
