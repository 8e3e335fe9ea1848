package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/ApexPredict_Go/internal/logger"
	"github.com/osse101/ApexPredict_Go/internal/user"
)

// RegisterUserRequest represents the request to register a player.
type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,min=2,max=50,excludesall=\x00\n\r\t"`
}

// HandleRegisterUser handles player registration
// @Summary Register user
// @Description Register a new player by username
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterUserRequest true "User details"
// @Success 201 {object} domain.User
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /users/register [post]
func HandleRegisterUser(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req RegisterUserRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Register user"); err != nil {
			return
		}

		created, err := svc.RegisterUser(r.Context(), req.Username)
		if err != nil {
			respondServiceError(w, r, ErrMsgRegisterUserFailed, err)
			return
		}

		log.Info("User registered via API", "user_id", created.ID, "username", created.Username)
		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleGetUser handles user lookups by username
// @Summary Get user
// @Description Look up a player by username
// @Tags users
// @Produce json
// @Param username query string true "Username"
// @Success 200 {object} domain.User
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users [get]
func HandleGetUser(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := GetQueryParam(r, w, "username")
		if !ok {
			return
		}

		found, err := svc.GetUserByUsername(r.Context(), username)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetUserFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, found)
	}
}

// HandleGetUserByID handles user lookups by internal ID
// @Summary Get user by ID
// @Description Look up a player by their user ID
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} domain.User
// @Failure 404 {object} ErrorResponse
// @Router /users/{id} [get]
func HandleGetUserByID(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		found, err := svc.GetUserByID(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetUserFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, found)
	}
}
