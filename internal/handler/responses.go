package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/ApexPredict_Go/internal/domain"
	"github.com/osse101/ApexPredict_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Encode to a pooled buffer first so a failed marshal never writes
	// a partial body.
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped
// HTTP error response.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	status, message := mapServiceErrorToUserMessage(err)
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err)
	}
	respondError(w, status, message)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."

	ErrMsgUserNotFoundError        = "User not found"
	ErrMsgUsernameTakenError       = "That username is already taken"
	ErrMsgRaceNotFoundError        = "Race not found"
	ErrMsgRaceAlreadyExistsError   = "A race with that ID already exists"
	ErrMsgPredictionNotFoundError  = "No prediction found for that race"
	ErrMsgWindowClosedError        = "Predictions are closed for this race"
	ErrMsgInvalidGridOrderError    = "Invalid grid order. Positions must be unique and positive"
	ErrMsgResultsNotAvailableError = "Results are not available for this race yet"
	ErrMsgEmptyResultsError        = "Race results must include at least one classified driver"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusConflict, ErrMsgUsernameTakenError
	case errors.Is(err, domain.ErrRaceNotFound):
		return http.StatusNotFound, ErrMsgRaceNotFoundError
	case errors.Is(err, domain.ErrRaceAlreadyExists):
		return http.StatusConflict, ErrMsgRaceAlreadyExistsError
	case errors.Is(err, domain.ErrPredictionNotFound):
		return http.StatusNotFound, ErrMsgPredictionNotFoundError
	case errors.Is(err, domain.ErrPredictionWindowClosed):
		return http.StatusConflict, ErrMsgWindowClosedError
	case errors.Is(err, domain.ErrInvalidGridOrder):
		return http.StatusBadRequest, ErrMsgInvalidGridOrderError
	case errors.Is(err, domain.ErrResultsNotAvailable):
		return http.StatusNotFound, ErrMsgResultsNotAvailableError
	case errors.Is(err, domain.ErrEmptyResults):
		return http.StatusBadRequest, ErrMsgEmptyResultsError
	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	// For wrapped errors with domain errors as the base, try unwrapping
	unwrapped := errors.Unwrap(err)
	if unwrapped != nil && unwrapped != err {
		return mapServiceErrorToUserMessage(unwrapped)
	}

	errMsg := err.Error()
	if errMsg != "" && len(errMsg) < 200 {
		return http.StatusInternalServerError, errMsg
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
