package prediction

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/osse101/ApexPredict_Go/internal/domain"
	"github.com/osse101/ApexPredict_Go/internal/logger"
	"github.com/osse101/ApexPredict_Go/internal/metrics"
	"github.com/osse101/ApexPredict_Go/internal/repository"
	"github.com/osse101/ApexPredict_Go/internal/scoring"
)

// Service defines the interface for prediction operations
type Service interface {
	SubmitPrediction(ctx context.Context, userID, raceID string, set domain.PredictionSet) (*domain.Prediction, error)
	GetPrediction(ctx context.Context, userID, raceID string) (*domain.Prediction, error)
	// GetScore recomputes the full scoring breakdown for a user's
	// prediction against the stored race result. The breakdown is
	// ephemeral; only the persisted grand total survives between calls.
	GetScore(ctx context.Context, userID, raceID string) (*domain.PredictionScore, error)
}

type service struct {
	repo     repository.Prediction
	raceRepo repository.Race
	results  repository.Results
	now      func() time.Time
}

// NewService creates a new prediction service
func NewService(repo repository.Prediction, raceRepo repository.Race, results repository.Results) Service {
	return &service{
		repo:     repo,
		raceRepo: raceRepo,
		results:  results,
		now:      time.Now,
	}
}

// SubmitPrediction stores a user's prediction for an upcoming race.
// Submissions close when qualifying starts.
func (s *service) SubmitPrediction(ctx context.Context, userID, raceID string, set domain.PredictionSet) (*domain.Prediction, error) {
	log := logger.FromContext(ctx)

	race, err := s.raceRepo.GetRace(ctx, raceID)
	if err != nil {
		return nil, err
	}

	if !s.now().Before(race.QualyDate) {
		return nil, domain.ErrPredictionWindowClosed
	}

	if err := validateGridOrder(set.GridOrder); err != nil {
		return nil, err
	}
	if race.HasSprint {
		if err := validateGridOrder(set.SprintPositions); err != nil {
			return nil, err
		}
	}

	payload, err := json.Marshal(set)
	if err != nil {
		return nil, fmt.Errorf("failed to encode prediction: %w", err)
	}

	pred, err := s.repo.UpsertPrediction(ctx, userID, raceID, payload)
	if err != nil {
		return nil, err
	}
	pred.Set = set
	metrics.PredictionsSubmitted.Inc()

	log.Info("Prediction submitted",
		"user_id", userID,
		"race_id", raceID,
		"grid_slots", len(set.GridOrder),
		"sprint_slots", len(set.SprintPositions))

	return pred, nil
}

// GetPrediction retrieves and decodes a user's stored prediction.
// A malformed payload degrades to ErrPredictionNotFound: the caller
// sees "no prediction available", never a decode failure.
func (s *service) GetPrediction(ctx context.Context, userID, raceID string) (*domain.Prediction, error) {
	log := logger.FromContext(ctx)

	stored, err := s.repo.GetPrediction(ctx, userID, raceID)
	if err != nil {
		return nil, err
	}

	set, err := domain.ParsePredictionSet(stored.Payload)
	if err != nil {
		log.Warn("Discarding malformed prediction payload",
			"prediction_id", stored.ID,
			"user_id", userID,
			"race_id", raceID,
			"error", err)
		return nil, domain.ErrPredictionNotFound
	}

	return &domain.Prediction{
		ID:     stored.ID,
		UserID: stored.UserID,
		RaceID: stored.RaceID,
		Set:    set,
		Points: stored.Points,
	}, nil
}

// GetScore scores a user's prediction against the stored race result
func (s *service) GetScore(ctx context.Context, userID, raceID string) (*domain.PredictionScore, error) {
	log := logger.FromContext(ctx)

	race, err := s.raceRepo.GetRace(ctx, raceID)
	if err != nil {
		return nil, err
	}

	pred, err := s.GetPrediction(ctx, userID, raceID)
	if err != nil {
		return nil, err
	}

	storedResult, err := s.results.GetResult(ctx, raceID)
	if err != nil {
		return nil, err
	}

	results, err := domain.ParseRaceResults(storedResult.Payload)
	if err != nil {
		log.Error("Stored race result payload is malformed", "race_id", raceID, "error", err)
		return nil, fmt.Errorf("%w: %s", domain.ErrResultsNotAvailable, raceID)
	}

	score := scoring.Score(pred.Set, results, race.HasSprint)
	metrics.PredictionsScored.Inc()

	log.Debug("Prediction scored",
		"user_id", userID,
		"race_id", raceID,
		"driver_total", score.DriverTotal,
		"bonus_total", score.Bonus.Total,
		"total", score.Total)

	return &score, nil
}

// validateGridOrder rejects duplicate or non-positive positions. Empty
// slots are allowed; duplicate driver picks are tolerated and scored
// per slot.
func validateGridOrder(gridOrder []domain.GridSlot) error {
	seen := make(map[int]bool, len(gridOrder))
	for _, slot := range gridOrder {
		if slot.Position < 1 {
			return fmt.Errorf("%w: position %d", domain.ErrInvalidGridOrder, slot.Position)
		}
		if seen[slot.Position] {
			return fmt.Errorf("%w: duplicate position %d", domain.ErrInvalidGridOrder, slot.Position)
		}
		seen[slot.Position] = true
	}
	return nil
}
