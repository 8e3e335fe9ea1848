package prediction

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/osse101/ApexPredict_Go/internal/domain"
	"github.com/osse101/ApexPredict_Go/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRepository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) UpsertPrediction(ctx context.Context, userID, raceID string, payload []byte) (*domain.Prediction, error) {
	args := m.Called(ctx, userID, raceID, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Prediction), args.Error(1)
}

func (m *MockRepository) GetPrediction(ctx context.Context, userID, raceID string) (*repository.StoredPrediction, error) {
	args := m.Called(ctx, userID, raceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.StoredPrediction), args.Error(1)
}

func (m *MockRepository) ListPredictionsByRace(ctx context.Context, raceID string) ([]repository.StoredPrediction, error) {
	args := m.Called(ctx, raceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.StoredPrediction), args.Error(1)
}

func (m *MockRepository) UpdatePredictionPoints(ctx context.Context, id string, points int) error {
	args := m.Called(ctx, id, points)
	return args.Error(0)
}

// MockRaceRepository
type MockRaceRepository struct {
	mock.Mock
}

func (m *MockRaceRepository) CreateRace(ctx context.Context, race *domain.Race) error {
	args := m.Called(ctx, race)
	return args.Error(0)
}

func (m *MockRaceRepository) GetRace(ctx context.Context, id string) (*domain.Race, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Race), args.Error(1)
}

func (m *MockRaceRepository) ListRaces(ctx context.Context, season, category string) ([]domain.Race, error) {
	args := m.Called(ctx, season, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Race), args.Error(1)
}

func (m *MockRaceRepository) UpdateRaceStatus(ctx context.Context, id string, status domain.RaceStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockRaceRepository) ListDrivers(ctx context.Context, season, category string) ([]domain.Driver, error) {
	args := m.Called(ctx, season, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Driver), args.Error(1)
}

// MockResultsRepository
type MockResultsRepository struct {
	mock.Mock
}

func (m *MockResultsRepository) UpsertResult(ctx context.Context, raceID, season, category string, payload []byte) error {
	args := m.Called(ctx, raceID, season, category, payload)
	return args.Error(0)
}

func (m *MockResultsRepository) GetResult(ctx context.Context, raceID string) (*repository.StoredResult, error) {
	args := m.Called(ctx, raceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.StoredResult), args.Error(1)
}

func num(n int) *int { return &n }

func testRace(qualy time.Time, hasSprint bool) *domain.Race {
	return &domain.Race{
		ID:        "miami",
		Season:    "2026",
		Category:  domain.CategoryF1,
		Name:      "Miami Grand Prix",
		HasSprint: hasSprint,
		Status:    domain.RaceStatusScheduled,
		QualyDate: qualy,
		RaceDate:  qualy.Add(24 * time.Hour),
	}
}

func testSet() domain.PredictionSet {
	return domain.PredictionSet{
		GridOrder: []domain.GridSlot{
			{Position: 1, DriverNumber: num(1)},
			{Position: 2, DriverNumber: num(4)},
			{Position: 3, DriverNumber: num(16)},
		},
		AdditionalPredictions: domain.AdditionalPicks{Pole: num(1)},
	}
}

func newTestService(repo *MockRepository, races *MockRaceRepository, results *MockResultsRepository, now time.Time) Service {
	return &service{
		repo:     repo,
		raceRepo: races,
		results:  results,
		now:      func() time.Time { return now },
	}
}

func TestSubmitPrediction(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("stores prediction before qualifying", func(t *testing.T) {
		repo := new(MockRepository)
		races := new(MockRaceRepository)
		svc := newTestService(repo, races, nil, now)

		races.On("GetRace", ctx, "miami").Return(testRace(now.Add(time.Hour), false), nil)
		repo.On("UpsertPrediction", ctx, "user-1", "miami", mock.Anything).
			Return(&domain.Prediction{ID: "pred-1", UserID: "user-1", RaceID: "miami"}, nil)

		pred, err := svc.SubmitPrediction(ctx, "user-1", "miami", testSet())
		assert.NoError(t, err)
		assert.Equal(t, "pred-1", pred.ID)
		assert.Len(t, pred.Set.GridOrder, 3)
		repo.AssertExpectations(t)
	})

	t.Run("rejects submission after qualifying starts", func(t *testing.T) {
		repo := new(MockRepository)
		races := new(MockRaceRepository)
		svc := newTestService(repo, races, nil, now)

		races.On("GetRace", ctx, "miami").Return(testRace(now.Add(-time.Minute), false), nil)

		_, err := svc.SubmitPrediction(ctx, "user-1", "miami", testSet())
		assert.ErrorIs(t, err, domain.ErrPredictionWindowClosed)
		repo.AssertNotCalled(t, "UpsertPrediction")
	})

	t.Run("rejects submission exactly at qualifying start", func(t *testing.T) {
		repo := new(MockRepository)
		races := new(MockRaceRepository)
		svc := newTestService(repo, races, nil, now)

		races.On("GetRace", ctx, "miami").Return(testRace(now, false), nil)

		_, err := svc.SubmitPrediction(ctx, "user-1", "miami", testSet())
		assert.ErrorIs(t, err, domain.ErrPredictionWindowClosed)
	})

	t.Run("rejects duplicate grid positions", func(t *testing.T) {
		repo := new(MockRepository)
		races := new(MockRaceRepository)
		svc := newTestService(repo, races, nil, now)

		races.On("GetRace", ctx, "miami").Return(testRace(now.Add(time.Hour), false), nil)

		set := testSet()
		set.GridOrder = append(set.GridOrder, domain.GridSlot{Position: 1, DriverNumber: num(81)})

		_, err := svc.SubmitPrediction(ctx, "user-1", "miami", set)
		assert.ErrorIs(t, err, domain.ErrInvalidGridOrder)
	})

	t.Run("rejects non-positive grid position", func(t *testing.T) {
		repo := new(MockRepository)
		races := new(MockRaceRepository)
		svc := newTestService(repo, races, nil, now)

		races.On("GetRace", ctx, "miami").Return(testRace(now.Add(time.Hour), false), nil)

		set := testSet()
		set.GridOrder[0].Position = 0

		_, err := svc.SubmitPrediction(ctx, "user-1", "miami", set)
		assert.ErrorIs(t, err, domain.ErrInvalidGridOrder)
	})

	t.Run("validates sprint positions on sprint weekends", func(t *testing.T) {
		repo := new(MockRepository)
		races := new(MockRaceRepository)
		svc := newTestService(repo, races, nil, now)

		races.On("GetRace", ctx, "miami").Return(testRace(now.Add(time.Hour), true), nil)

		set := testSet()
		set.SprintPositions = []domain.GridSlot{
			{Position: 2, DriverNumber: num(1)},
			{Position: 2, DriverNumber: num(4)},
		}

		_, err := svc.SubmitPrediction(ctx, "user-1", "miami", set)
		assert.ErrorIs(t, err, domain.ErrInvalidGridOrder)
	})

	t.Run("duplicate driver picks are allowed", func(t *testing.T) {
		repo := new(MockRepository)
		races := new(MockRaceRepository)
		svc := newTestService(repo, races, nil, now)

		races.On("GetRace", ctx, "miami").Return(testRace(now.Add(time.Hour), false), nil)
		repo.On("UpsertPrediction", ctx, "user-1", "miami", mock.Anything).
			Return(&domain.Prediction{ID: "pred-1"}, nil)

		set := testSet()
		set.GridOrder[1].DriverNumber = num(1)

		_, err := svc.SubmitPrediction(ctx, "user-1", "miami", set)
		assert.NoError(t, err)
	})

	t.Run("propagates race not found", func(t *testing.T) {
		repo := new(MockRepository)
		races := new(MockRaceRepository)
		svc := newTestService(repo, races, nil, now)

		races.On("GetRace", ctx, "nowhere").Return(nil, domain.ErrRaceNotFound)

		_, err := svc.SubmitPrediction(ctx, "user-1", "nowhere", testSet())
		assert.ErrorIs(t, err, domain.ErrRaceNotFound)
	})
}

func TestGetPrediction(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes stored payload", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, nil, nil, time.Now())

		payload, _ := json.Marshal(testSet())
		repo.On("GetPrediction", ctx, "user-1", "miami").Return(&repository.StoredPrediction{
			ID:      "pred-1",
			UserID:  "user-1",
			RaceID:  "miami",
			Payload: payload,
			Points:  num(70),
		}, nil)

		pred, err := svc.GetPrediction(ctx, "user-1", "miami")
		assert.NoError(t, err)
		assert.Len(t, pred.Set.GridOrder, 3)
		assert.Equal(t, 1, *pred.Set.AdditionalPredictions.Pole)
		assert.Equal(t, 70, *pred.Points)
	})

	t.Run("malformed payload degrades to not found", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, nil, nil, time.Now())

		repo.On("GetPrediction", ctx, "user-1", "miami").Return(&repository.StoredPrediction{
			ID:      "pred-1",
			Payload: []byte("{not json"),
		}, nil)

		_, err := svc.GetPrediction(ctx, "user-1", "miami")
		assert.ErrorIs(t, err, domain.ErrPredictionNotFound)
	})

	t.Run("propagates repository error", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, nil, nil, time.Now())

		repo.On("GetPrediction", ctx, "user-1", "miami").Return(nil, domain.ErrPredictionNotFound)

		_, err := svc.GetPrediction(ctx, "user-1", "miami")
		assert.ErrorIs(t, err, domain.ErrPredictionNotFound)
	})
}

func TestGetScore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 5, 3, 18, 0, 0, 0, time.UTC)

	resultsPayload := func(t *testing.T) []byte {
		t.Helper()
		payload, err := json.Marshal(domain.RaceResults{
			GridOrder: []domain.ResultSlot{
				{Position: 1, DriverNumber: 1},
				{Position: 2, DriverNumber: 4},
				{Position: 3, DriverNumber: 16},
			},
			AdditionalPredictions: domain.ResultExtras{Pole: num(1)},
		})
		assert.NoError(t, err)
		return payload
	}

	t.Run("scores prediction against stored results", func(t *testing.T) {
		repo := new(MockRepository)
		races := new(MockRaceRepository)
		results := new(MockResultsRepository)
		svc := newTestService(repo, races, results, now)

		payload, _ := json.Marshal(testSet())
		races.On("GetRace", ctx, "miami").Return(testRace(now.Add(-48*time.Hour), false), nil)
		repo.On("GetPrediction", ctx, "user-1", "miami").Return(&repository.StoredPrediction{
			ID: "pred-1", UserID: "user-1", RaceID: "miami", Payload: payload,
		}, nil)
		results.On("GetResult", ctx, "miami").Return(&repository.StoredResult{
			RaceID: "miami", Payload: resultsPayload(t),
		}, nil)

		score, err := svc.GetScore(ctx, "user-1", "miami")
		assert.NoError(t, err)
		// Three exact slots plus the pole pick, then winner, podium and
		// all-correct bonus tiers.
		assert.Equal(t, 40, score.DriverTotal)
		assert.Equal(t, 140, score.Bonus.Total)
		assert.Equal(t, 180, score.Total)
	})

	t.Run("missing results surface as not available", func(t *testing.T) {
		repo := new(MockRepository)
		races := new(MockRaceRepository)
		results := new(MockResultsRepository)
		svc := newTestService(repo, races, results, now)

		payload, _ := json.Marshal(testSet())
		races.On("GetRace", ctx, "miami").Return(testRace(now.Add(-48*time.Hour), false), nil)
		repo.On("GetPrediction", ctx, "user-1", "miami").Return(&repository.StoredPrediction{
			ID: "pred-1", Payload: payload,
		}, nil)
		results.On("GetResult", ctx, "miami").Return(nil, domain.ErrResultsNotAvailable)

		_, err := svc.GetScore(ctx, "user-1", "miami")
		assert.ErrorIs(t, err, domain.ErrResultsNotAvailable)
	})

	t.Run("malformed result payload surfaces as not available", func(t *testing.T) {
		repo := new(MockRepository)
		races := new(MockRaceRepository)
		results := new(MockResultsRepository)
		svc := newTestService(repo, races, results, now)

		payload, _ := json.Marshal(testSet())
		races.On("GetRace", ctx, "miami").Return(testRace(now.Add(-48*time.Hour), false), nil)
		repo.On("GetPrediction", ctx, "user-1", "miami").Return(&repository.StoredPrediction{
			ID: "pred-1", Payload: payload,
		}, nil)
		results.On("GetResult", ctx, "miami").Return(&repository.StoredResult{
			RaceID: "miami", Payload: []byte("broken"),
		}, nil)

		_, err := svc.GetScore(ctx, "user-1", "miami")
		assert.ErrorIs(t, err, domain.ErrResultsNotAvailable)
	})

	t.Run("missing prediction propagates not found", func(t *testing.T) {
		repo := new(MockRepository)
		races := new(MockRaceRepository)
		results := new(MockResultsRepository)
		svc := newTestService(repo, races, results, now)

		races.On("GetRace", ctx, "miami").Return(testRace(now.Add(-48*time.Hour), false), nil)
		repo.On("GetPrediction", ctx, "user-1", "miami").Return(nil, domain.ErrPredictionNotFound)

		_, err := svc.GetScore(ctx, "user-1", "miami")
		assert.ErrorIs(t, err, domain.ErrPredictionNotFound)
	})
}
