package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/osse101/ApexPredict_Go/internal/domain"
	"github.com/osse101/ApexPredict_Go/internal/logger"
	"github.com/osse101/ApexPredict_Go/internal/race"
)

// CreateRaceRequest represents the request to add a race to the calendar.
type CreateRaceRequest struct {
	ID        string    `json:"id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Season    string    `json:"season" validate:"required,max=10"`
	Category  string    `json:"category" validate:"category"`
	Name      string    `json:"name" validate:"max=200"`
	Country   string    `json:"country" validate:"max=100"`
	Circuit   string    `json:"circuit" validate:"max=200"`
	HasSprint bool      `json:"has_sprint"`
	QualyDate time.Time `json:"qualy_date" validate:"required"`
	RaceDate  time.Time `json:"race_date" validate:"required"`
}

// HandleCreateRace handles race calendar additions
// @Summary Create race
// @Description Add a race to the season calendar
// @Tags races
// @Accept json
// @Produce json
// @Param request body CreateRaceRequest true "Race details"
// @Success 201 {object} domain.Race
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /races [post]
func HandleCreateRace(svc race.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CreateRaceRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create race"); err != nil {
			return
		}

		newRace := &domain.Race{
			ID:        req.ID,
			Season:    req.Season,
			Category:  req.Category,
			Name:      req.Name,
			Country:   req.Country,
			Circuit:   req.Circuit,
			HasSprint: req.HasSprint,
			QualyDate: req.QualyDate,
			RaceDate:  req.RaceDate,
		}

		if err := svc.CreateRace(r.Context(), newRace); err != nil {
			respondServiceError(w, r, ErrMsgCreateRaceFailed, err)
			return
		}

		log.Info("Race created via API", "race_id", newRace.ID, "season", newRace.Season)
		respondJSON(w, http.StatusCreated, newRace)
	}
}

// HandleGetRace handles single race lookups
// @Summary Get race
// @Description Retrieve a race by ID
// @Tags races
// @Produce json
// @Param id path string true "Race ID"
// @Success 200 {object} domain.Race
// @Failure 404 {object} ErrorResponse
// @Router /races/{id} [get]
func HandleGetRace(svc race.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raceID := chi.URLParam(r, "id")

		found, err := svc.GetRace(r.Context(), raceID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetRaceFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, found)
	}
}

// HandleListRaces handles season calendar listings
// @Summary List races
// @Description List the race calendar for a season
// @Tags races
// @Produce json
// @Param season query string true "Season, e.g. 2026"
// @Param category query string false "Racing category (default f1)"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /races [get]
func HandleListRaces(svc race.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		season, ok := GetQueryParam(r, w, "season")
		if !ok {
			return
		}
		category := GetOptionalQueryParam(r, "category", "")

		races, err := svc.ListRaces(r.Context(), season, category)
		if err != nil {
			respondServiceError(w, r, ErrMsgListRacesFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: races})
	}
}

// HandleListDrivers handles season driver lineup listings
// @Summary List drivers
// @Description List the driver lineup for a season
// @Tags races
// @Produce json
// @Param season query string true "Season, e.g. 2026"
// @Param category query string false "Racing category (default f1)"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /drivers [get]
func HandleListDrivers(svc race.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		season, ok := GetQueryParam(r, w, "season")
		if !ok {
			return
		}
		category := GetOptionalQueryParam(r, "category", "")

		drivers, err := svc.ListDrivers(r.Context(), season, category)
		if err != nil {
			respondServiceError(w, r, ErrMsgListDriversFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: drivers})
	}
}
