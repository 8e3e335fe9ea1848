package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/osse101/ApexPredict_Go/internal/domain"
	"github.com/osse101/ApexPredict_Go/internal/logger"
	"github.com/osse101/ApexPredict_Go/internal/prediction"
)

// SubmitPredictionRequest represents a full prediction submission for a
// race weekend. The prediction payload uses the persisted wire format.
type SubmitPredictionRequest struct {
	UserID     string               `json:"user_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Prediction domain.PredictionSet `json:"prediction" validate:"required"`
}

// SubmitPredictionResponse confirms a stored prediction.
type SubmitPredictionResponse struct {
	Message    string             `json:"message"`
	Prediction *domain.Prediction `json:"prediction"`
}

// HandleSubmitPrediction handles prediction submissions
// @Summary Submit prediction
// @Description Submit or replace a prediction for a race. Closes at qualifying.
// @Tags predictions
// @Accept json
// @Produce json
// @Param id path string true "Race ID"
// @Param request body SubmitPredictionRequest true "Prediction"
// @Success 201 {object} SubmitPredictionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /races/{id}/predictions [post]
func HandleSubmitPrediction(svc prediction.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		raceID := chi.URLParam(r, "id")

		var req SubmitPredictionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Submit prediction"); err != nil {
			return
		}

		pred, err := svc.SubmitPrediction(r.Context(), req.UserID, raceID, req.Prediction)
		if err != nil {
			respondServiceError(w, r, ErrMsgSubmitPredictionFailed, err)
			return
		}

		log.Info("Prediction submitted via API", "user_id", req.UserID, "race_id", raceID)
		respondJSON(w, http.StatusCreated, SubmitPredictionResponse{
			Message:    MsgPredictionSubmitted,
			Prediction: pred,
		})
	}
}

// HandleGetPrediction handles prediction lookups
// @Summary Get prediction
// @Description Retrieve a user's prediction for a race
// @Tags predictions
// @Produce json
// @Param id path string true "Race ID"
// @Param user_id query string true "User ID"
// @Success 200 {object} domain.Prediction
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /races/{id}/predictions [get]
func HandleGetPrediction(svc prediction.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raceID := chi.URLParam(r, "id")

		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		pred, err := svc.GetPrediction(r.Context(), userID, raceID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetPredictionFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, pred)
	}
}

// HandleGetScore handles on-demand prediction scoring
// @Summary Get prediction score
// @Description Score a user's prediction against the stored race results
// @Tags predictions
// @Produce json
// @Param id path string true "Race ID"
// @Param user_id query string true "User ID"
// @Success 200 {object} domain.PredictionScore
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /races/{id}/predictions/score [get]
func HandleGetScore(svc prediction.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raceID := chi.URLParam(r, "id")

		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		score, err := svc.GetScore(r.Context(), userID, raceID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetScoreFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, score)
	}
}
