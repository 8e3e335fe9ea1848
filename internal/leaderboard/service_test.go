package leaderboard

import (
	"context"
	"testing"
	"time"

	"github.com/osse101/ApexPredict_Go/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRepository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) AddRacePoints(ctx context.Context, season, category, userID string, points int) error {
	args := m.Called(ctx, season, category, userID, points)
	return args.Error(0)
}

func (m *MockRepository) SetSeasonTotal(ctx context.Context, season, category, userID string, totalPoints, racesScored int) error {
	args := m.Called(ctx, season, category, userID, totalPoints, racesScored)
	return args.Error(0)
}

func (m *MockRepository) GetRaceLeaderboard(ctx context.Context, raceID string, limit int) ([]domain.RaceLeaderboardEntry, error) {
	args := m.Called(ctx, raceID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RaceLeaderboardEntry), args.Error(1)
}

func (m *MockRepository) GetSeasonLeaderboard(ctx context.Context, season, category string, limit int) ([]domain.SeasonLeaderboardEntry, error) {
	args := m.Called(ctx, season, category, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SeasonLeaderboardEntry), args.Error(1)
}

func (m *MockRepository) SumUserSeasonPoints(ctx context.Context, season, category string) (map[string]domain.SeasonPointsSum, error) {
	args := m.Called(ctx, season, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.SeasonPointsSum), args.Error(1)
}

func newTestService(repo *MockRepository) Service {
	return NewService(repo, 16, time.Minute, 50)
}

func TestGetSeasonLeaderboard(t *testing.T) {
	ctx := context.Background()
	entries := []domain.SeasonLeaderboardEntry{
		{Rank: 1, UserID: "user-1", Username: "alice", TotalPoints: 310, RacesScored: 3},
		{Rank: 2, UserID: "user-2", Username: "bob", TotalPoints: 180, RacesScored: 3},
	}

	t.Run("default limit is cached", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo)

		repo.On("GetSeasonLeaderboard", ctx, "2026", domain.CategoryF1, 50).Return(entries, nil).Once()

		first, err := svc.GetSeasonLeaderboard(ctx, "2026", domain.CategoryF1, 0)
		assert.NoError(t, err)
		second, err := svc.GetSeasonLeaderboard(ctx, "2026", domain.CategoryF1, 50)
		assert.NoError(t, err)
		assert.Equal(t, first, second)
		repo.AssertNumberOfCalls(t, "GetSeasonLeaderboard", 1)
	})

	t.Run("custom limit bypasses the cache", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo)

		repo.On("GetSeasonLeaderboard", ctx, "2026", domain.CategoryF1, 10).Return(entries[:1], nil).Twice()

		_, err := svc.GetSeasonLeaderboard(ctx, "2026", domain.CategoryF1, 10)
		assert.NoError(t, err)
		_, err = svc.GetSeasonLeaderboard(ctx, "2026", domain.CategoryF1, 10)
		assert.NoError(t, err)
		repo.AssertNumberOfCalls(t, "GetSeasonLeaderboard", 2)
	})

	t.Run("adding points invalidates the cached page", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo)

		repo.On("GetSeasonLeaderboard", ctx, "2026", domain.CategoryF1, 50).Return(entries, nil).Twice()
		repo.On("AddRacePoints", ctx, "2026", domain.CategoryF1, "user-1", 120).Return(nil)

		_, err := svc.GetSeasonLeaderboard(ctx, "2026", domain.CategoryF1, 0)
		assert.NoError(t, err)

		assert.NoError(t, svc.AddRacePoints(ctx, "2026", domain.CategoryF1, "user-1", 120))

		_, err = svc.GetSeasonLeaderboard(ctx, "2026", domain.CategoryF1, 0)
		assert.NoError(t, err)
		repo.AssertNumberOfCalls(t, "GetSeasonLeaderboard", 2)
	})
}

func TestGetRaceLeaderboard(t *testing.T) {
	ctx := context.Background()

	t.Run("applies default limit", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo)

		repo.On("GetRaceLeaderboard", ctx, "miami", 50).Return([]domain.RaceLeaderboardEntry{
			{Rank: 1, UserID: "user-1", Username: "alice", Points: 180},
		}, nil)

		got, err := svc.GetRaceLeaderboard(ctx, "miami", 0)
		assert.NoError(t, err)
		assert.Len(t, got, 1)
		repo.AssertExpectations(t)
	})
}

func TestRecount(t *testing.T) {
	ctx := context.Background()

	t.Run("rebuilds every season total", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo)

		repo.On("SumUserSeasonPoints", ctx, "2026", domain.CategoryF1).Return(map[string]domain.SeasonPointsSum{
			"user-1": {TotalPoints: 310, RacesScored: 3},
			"user-2": {TotalPoints: 180, RacesScored: 2},
		}, nil)
		repo.On("SetSeasonTotal", ctx, "2026", domain.CategoryF1, "user-1", 310, 3).Return(nil)
		repo.On("SetSeasonTotal", ctx, "2026", domain.CategoryF1, "user-2", 180, 2).Return(nil)

		updated, err := svc.Recount(ctx, "2026", domain.CategoryF1)
		assert.NoError(t, err)
		assert.Equal(t, 2, updated)
		repo.AssertExpectations(t)
	})

	t.Run("empty season recounts zero users", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo)

		repo.On("SumUserSeasonPoints", ctx, "2026", domain.CategoryF1).Return(map[string]domain.SeasonPointsSum{}, nil)

		updated, err := svc.Recount(ctx, "2026", domain.CategoryF1)
		assert.NoError(t, err)
		assert.Zero(t, updated)
		repo.AssertNotCalled(t, "SetSeasonTotal")
	})
}
