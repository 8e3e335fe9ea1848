package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/osse101/ApexPredict_Go/internal/domain"
	"github.com/osse101/ApexPredict_Go/internal/leaderboard"
	"github.com/osse101/ApexPredict_Go/internal/logger"
)

// HandleRaceLeaderboard handles per-race standings lookups
// @Summary Race leaderboard
// @Description Retrieve per-race standings ordered by points
// @Tags leaderboard
// @Produce json
// @Param id path string true "Race ID"
// @Param limit query int false "Maximum entries (default 50)"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /leaderboard/race/{id} [get]
func HandleRaceLeaderboard(svc leaderboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raceID := chi.URLParam(r, "id")

		limit, ok := GetLimitParam(r, w)
		if !ok {
			return
		}

		entries, err := svc.GetRaceLeaderboard(r.Context(), raceID, limit)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetLeaderboardFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: entries})
	}
}

// HandleSeasonLeaderboard handles season standings lookups
// @Summary Season leaderboard
// @Description Retrieve season standings ordered by total points
// @Tags leaderboard
// @Produce json
// @Param season query string true "Season, e.g. 2026"
// @Param category query string false "Racing category (default f1)"
// @Param limit query int false "Maximum entries (default 50)"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /leaderboard/season [get]
func HandleSeasonLeaderboard(svc leaderboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		season, ok := GetQueryParam(r, w, "season")
		if !ok {
			return
		}
		category := GetOptionalQueryParam(r, "category", domain.CategoryF1)

		limit, ok := GetLimitParam(r, w)
		if !ok {
			return
		}

		entries, err := svc.GetSeasonLeaderboard(r.Context(), season, category, limit)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetLeaderboardFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: entries})
	}
}

// HandleRecountSeason handles admin-triggered season recounts
// @Summary Recount season totals
// @Description Rebuild all season totals from stored per-race points
// @Tags leaderboard
// @Produce json
// @Param season query string true "Season, e.g. 2026"
// @Param category query string false "Racing category (default f1)"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /leaderboard/season/recount [post]
func HandleRecountSeason(svc leaderboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		season, ok := GetQueryParam(r, w, "season")
		if !ok {
			return
		}
		category := GetOptionalQueryParam(r, "category", domain.CategoryF1)

		updated, err := svc.Recount(r.Context(), season, category)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetLeaderboardFailed, err)
			return
		}

		log.Info("Season recount triggered via API", "season", season, "category", category, "users", updated)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Season totals recounted"})
	}
}
