package repository

import (
	"context"

	"github.com/osse101/ApexPredict_Go/internal/domain"
)

// Race defines the interface for race and driver metadata persistence
type Race interface {
	CreateRace(ctx context.Context, race *domain.Race) error
	GetRace(ctx context.Context, id string) (*domain.Race, error)
	ListRaces(ctx context.Context, season, category string) ([]domain.Race, error)
	UpdateRaceStatus(ctx context.Context, id string, status domain.RaceStatus) error
	ListDrivers(ctx context.Context, season, category string) ([]domain.Driver, error)
}
