package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/osse101/ApexPredict_Go/internal/domain"
	"github.com/osse101/ApexPredict_Go/internal/results"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockResultsService mocks the results.Service interface
type MockResultsService struct {
	mock.Mock
}

func (m *MockResultsService) InsertResults(ctx context.Context, raceID string, res domain.RaceResults) (*results.InsertSummary, error) {
	args := m.Called(ctx, raceID, res)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*results.InsertSummary), args.Error(1)
}

func (m *MockResultsService) GetResults(ctx context.Context, raceID string) (*domain.RaceResults, error) {
	args := m.Called(ctx, raceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RaceResults), args.Error(1)
}

func resultsRouter(svc *MockResultsService) http.Handler {
	r := chi.NewRouter()
	r.Post("/races/{id}/results", HandleInsertResults(svc))
	r.Get("/races/{id}/results", HandleGetResults(svc))
	return r
}

func TestHandleInsertResults(t *testing.T) {
	InitValidator()

	classification := domain.RaceResults{
		GridOrder: []domain.ResultSlot{
			{Position: 1, DriverNumber: 1},
			{Position: 2, DriverNumber: 4},
		},
	}

	t.Run("inserts and reports summary", func(t *testing.T) {
		svc := new(MockResultsService)
		svc.On("InsertResults", mock.Anything, "miami", classification).
			Return(&results.InsertSummary{RaceID: "miami", PredictionsScored: 12, UsersUpdated: 12}, nil)

		body, _ := json.Marshal(InsertResultsRequest{Results: classification})
		req := httptest.NewRequest(http.MethodPost, "/races/miami/results", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		resultsRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), MsgResultsInserted)
		svc.AssertExpectations(t)
	})

	t.Run("empty grid rejected", func(t *testing.T) {
		svc := new(MockResultsService)
		svc.On("InsertResults", mock.Anything, "miami", domain.RaceResults{}).
			Return(nil, domain.ErrEmptyResults)

		body, _ := json.Marshal(InsertResultsRequest{Results: domain.RaceResults{}})
		req := httptest.NewRequest(http.MethodPost, "/races/miami/results", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		resultsRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgEmptyResultsError)
	})

	t.Run("unknown race", func(t *testing.T) {
		svc := new(MockResultsService)
		svc.On("InsertResults", mock.Anything, "nowhere", classification).
			Return(nil, domain.ErrRaceNotFound)

		body, _ := json.Marshal(InsertResultsRequest{Results: classification})
		req := httptest.NewRequest(http.MethodPost, "/races/nowhere/results", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		resultsRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandleGetResults(t *testing.T) {
	t.Run("returns stored results", func(t *testing.T) {
		svc := new(MockResultsService)
		svc.On("GetResults", mock.Anything, "miami").Return(&domain.RaceResults{
			GridOrder: []domain.ResultSlot{{Position: 1, DriverNumber: 1}},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/races/miami/results", nil)
		rec := httptest.NewRecorder()
		resultsRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "gridOrder")
	})

	t.Run("not yet available", func(t *testing.T) {
		svc := new(MockResultsService)
		svc.On("GetResults", mock.Anything, "miami").Return(nil, domain.ErrResultsNotAvailable)

		req := httptest.NewRequest(http.MethodGet, "/races/miami/results", nil)
		rec := httptest.NewRecorder()
		resultsRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
