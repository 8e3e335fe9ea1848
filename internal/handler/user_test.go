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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockUserService mocks the user.Service interface
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) RegisterUser(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func TestHandleRegisterUser(t *testing.T) {
	InitValidator()

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockUserService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: RegisterUserRequest{Username: "alice"},
			setupMock: func(m *MockUserService) {
				m.On("RegisterUser", mock.Anything, "alice").
					Return(&domain.User{ID: "user-1", Username: "alice"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   "alice",
		},
		{
			name:           "Missing username",
			requestBody:    RegisterUserRequest{},
			setupMock:      func(m *MockUserService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestSummary,
		},
		{
			name:        "Username taken",
			requestBody: RegisterUserRequest{Username: "alice"},
			setupMock: func(m *MockUserService) {
				m.On("RegisterUser", mock.Anything, "alice").Return(nil, domain.ErrUsernameTaken)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgUsernameTakenError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockUserService)
			tt.setupMock(svc)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/users/register", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			HandleRegisterUser(svc).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleGetUser(t *testing.T) {
	t.Run("returns user", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("GetUserByUsername", mock.Anything, "alice").
			Return(&domain.User{ID: "user-1", Username: "alice"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/users?username=alice", nil)
		rec := httptest.NewRecorder()
		HandleGetUser(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "user-1")
	})

	t.Run("not found", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("GetUserByUsername", mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound)

		req := httptest.NewRequest(http.MethodGet, "/users?username=ghost", nil)
		rec := httptest.NewRecorder()
		HandleGetUser(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing username", func(t *testing.T) {
		svc := new(MockUserService)

		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		rec := httptest.NewRecorder()
		HandleGetUser(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "GetUserByUsername")
	})
}

func TestHandleGetUserByID(t *testing.T) {
	userRouter := func(svc *MockUserService) *chi.Mux {
		r := chi.NewRouter()
		r.Get("/users/{id}", HandleGetUserByID(svc))
		return r
	}

	t.Run("returns user", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("GetUserByID", mock.Anything, "user-1").
			Return(&domain.User{ID: "user-1", Username: "alice"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/users/user-1", nil)
		rec := httptest.NewRecorder()
		userRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "alice")
	})

	t.Run("not found", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("GetUserByID", mock.Anything, "user-404").Return(nil, domain.ErrUserNotFound)

		req := httptest.NewRequest(http.MethodGet, "/users/user-404", nil)
		rec := httptest.NewRecorder()
		userRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
