package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ApexPredict_Go/internal/database/postgres"
	"github.com/osse101/ApexPredict_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	User        repository.User
	Race        repository.Race
	Prediction  repository.Prediction
	Results     repository.Results
	Leaderboard repository.Leaderboard
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:        postgres.NewUserRepository(dbPool),
		Race:        postgres.NewRaceRepository(dbPool),
		Prediction:  postgres.NewPredictionRepository(dbPool),
		Results:     postgres.NewResultsRepository(dbPool),
		Leaderboard: postgres.NewLeaderboardRepository(dbPool),
	}
}
