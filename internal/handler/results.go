package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/osse101/ApexPredict_Go/internal/domain"
	"github.com/osse101/ApexPredict_Go/internal/logger"
	"github.com/osse101/ApexPredict_Go/internal/results"
)

// InsertResultsRequest carries the authoritative race weekend outcome.
type InsertResultsRequest struct {
	Results domain.RaceResults `json:"results" validate:"required"`
}

// InsertResultsResponse confirms a scored results insert.
type InsertResultsResponse struct {
	Message string                 `json:"message"`
	Summary *results.InsertSummary `json:"summary"`
}

// HandleInsertResults handles authoritative result inserts
// @Summary Insert race results
// @Description Store race results, score all predictions and rebuild standings
// @Tags results
// @Accept json
// @Produce json
// @Param id path string true "Race ID"
// @Param request body InsertResultsRequest true "Final classification"
// @Success 201 {object} InsertResultsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /races/{id}/results [post]
func HandleInsertResults(svc results.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		raceID := chi.URLParam(r, "id")

		var req InsertResultsRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Insert results"); err != nil {
			return
		}

		summary, err := svc.InsertResults(r.Context(), raceID, req.Results)
		if err != nil {
			respondServiceError(w, r, ErrMsgInsertResultsFailed, err)
			return
		}

		log.Info("Results inserted via API",
			"race_id", raceID,
			"predictions_scored", summary.PredictionsScored)
		respondJSON(w, http.StatusCreated, InsertResultsResponse{
			Message: MsgResultsInserted,
			Summary: summary,
		})
	}
}

// HandleGetResults handles race result lookups
// @Summary Get race results
// @Description Retrieve the stored results for a race
// @Tags results
// @Produce json
// @Param id path string true "Race ID"
// @Success 200 {object} domain.RaceResults
// @Failure 404 {object} ErrorResponse
// @Router /races/{id}/results [get]
func HandleGetResults(svc results.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raceID := chi.URLParam(r, "id")

		found, err := svc.GetResults(r.Context(), raceID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetResultsFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, found)
	}
}
