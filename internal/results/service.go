package results

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/osse101/ApexPredict_Go/internal/domain"
	"github.com/osse101/ApexPredict_Go/internal/leaderboard"
	"github.com/osse101/ApexPredict_Go/internal/logger"
	"github.com/osse101/ApexPredict_Go/internal/metrics"
	"github.com/osse101/ApexPredict_Go/internal/repository"
	"github.com/osse101/ApexPredict_Go/internal/scoring"
)

// Service defines the interface for race result operations
type Service interface {
	// InsertResults stores the final classification for a race, scores
	// every stored prediction against it and rebuilds the season
	// standings. Re-inserting corrected results rescores everyone.
	InsertResults(ctx context.Context, raceID string, results domain.RaceResults) (*InsertSummary, error)
	GetResults(ctx context.Context, raceID string) (*domain.RaceResults, error)
}

// InsertSummary reports what an insert touched. UsersUpdated counts the
// season rows written, whether incrementally or by recount.
type InsertSummary struct {
	RaceID            string `json:"raceId"`
	PredictionsScored int    `json:"predictionsScored"`
	UsersUpdated      int    `json:"usersUpdated"`
}

type service struct {
	repo         repository.Results
	raceRepo     repository.Race
	predictions  repository.Prediction
	leaderboards leaderboard.Service
}

// NewService creates a new results service
func NewService(repo repository.Results, raceRepo repository.Race, predictions repository.Prediction, leaderboards leaderboard.Service) Service {
	return &service{
		repo:         repo,
		raceRepo:     raceRepo,
		predictions:  predictions,
		leaderboards: leaderboards,
	}
}

func (s *service) InsertResults(ctx context.Context, raceID string, results domain.RaceResults) (*InsertSummary, error) {
	log := logger.FromContext(ctx)

	race, err := s.raceRepo.GetRace(ctx, raceID)
	if err != nil {
		return nil, err
	}

	if len(results.GridOrder) == 0 {
		return nil, domain.ErrEmptyResults
	}

	payload, err := json.Marshal(results)
	if err != nil {
		return nil, fmt.Errorf("failed to encode results: %w", err)
	}

	if err := s.repo.UpsertResult(ctx, raceID, race.Season, race.Category, payload); err != nil {
		return nil, err
	}
	metrics.ResultsInserted.Inc()

	firstInsert := race.Status != domain.RaceStatusCompleted
	if firstInsert {
		if err := s.raceRepo.UpdateRaceStatus(ctx, raceID, domain.RaceStatusCompleted); err != nil {
			return nil, err
		}
	}

	scored, totals, err := s.scorePredictions(ctx, race, results)
	if err != nil {
		return nil, err
	}

	// First insert folds each user's points into the season total
	// incrementally. A re-insert means previously added points are
	// stale, so the season is rebuilt from stored per-race points.
	var updated int
	if firstInsert {
		for userID, points := range totals {
			if err := s.leaderboards.AddRacePoints(ctx, race.Season, race.Category, userID, points); err != nil {
				return nil, err
			}
			updated++
		}
	} else {
		updated, err = s.leaderboards.Recount(ctx, race.Season, race.Category)
		if err != nil {
			return nil, err
		}
	}

	log.Info("Race results inserted",
		"race_id", raceID,
		"season", race.Season,
		"grid_size", len(results.GridOrder),
		"first_insert", firstInsert,
		"predictions_scored", scored,
		"users_updated", updated)

	return &InsertSummary{
		RaceID:            raceID,
		PredictionsScored: scored,
		UsersUpdated:      updated,
	}, nil
}

// scorePredictions scores every stored prediction for the race, writes
// the totals back and returns the per-user point totals. A malformed
// prediction payload is skipped with a warning; one bad row must not
// block the rest of the field.
func (s *service) scorePredictions(ctx context.Context, race *domain.Race, results domain.RaceResults) (int, map[string]int, error) {
	log := logger.FromContext(ctx)

	stored, err := s.predictions.ListPredictionsByRace(ctx, race.ID)
	if err != nil {
		return 0, nil, err
	}

	scored := 0
	totals := make(map[string]int, len(stored))
	for _, row := range stored {
		set, err := domain.ParsePredictionSet(row.Payload)
		if err != nil {
			log.Warn("Skipping malformed prediction during scoring",
				"prediction_id", row.ID,
				"user_id", row.UserID,
				"race_id", race.ID,
				"error", err)
			continue
		}

		score := scoring.Score(set, results, race.HasSprint)
		if err := s.predictions.UpdatePredictionPoints(ctx, row.ID, score.Total); err != nil {
			return scored, nil, fmt.Errorf("failed to store points for prediction %s: %w", row.ID, err)
		}
		metrics.PredictionsScored.Inc()
		totals[row.UserID] = score.Total
		scored++
	}

	return scored, totals, nil
}

func (s *service) GetResults(ctx context.Context, raceID string) (*domain.RaceResults, error) {
	log := logger.FromContext(ctx)

	stored, err := s.repo.GetResult(ctx, raceID)
	if err != nil {
		return nil, err
	}

	results, err := domain.ParseRaceResults(stored.Payload)
	if err != nil {
		log.Error("Stored race result payload is malformed", "race_id", raceID, "error", err)
		return nil, fmt.Errorf("%w: %s", domain.ErrResultsNotAvailable, raceID)
	}

	return &results, nil
}
