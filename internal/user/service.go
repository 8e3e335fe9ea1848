package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/osse101/ApexPredict_Go/internal/domain"
	"github.com/osse101/ApexPredict_Go/internal/logger"
	"github.com/osse101/ApexPredict_Go/internal/metrics"
	"github.com/osse101/ApexPredict_Go/internal/repository"
)

// Service defines the interface for user operations
type Service interface {
	RegisterUser(ctx context.Context, username string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
}

type service struct {
	repo repository.User
}

// NewService creates a new user service
func NewService(repo repository.User) Service {
	return &service{repo: repo}
}

// RegisterUser creates a new user with a normalized username
func (s *service) RegisterUser(ctx context.Context, username string) (*domain.User, error) {
	log := logger.FromContext(ctx)

	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errors.New(ErrMsgUsernameRequired)
	}

	user := &domain.User{Username: username}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			return nil, err
		}
		log.Error("Failed to register user", "username", username, "error", err)
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	metrics.UsersRegistered.Inc()
	log.Info("User registered", "user_id", user.ID, "username", username)
	return user, nil
}

// GetUserByUsername retrieves a user by username
func (s *service) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.repo.GetUserByUsername(ctx, username)
}

// GetUserByID retrieves a user by internal ID
func (s *service) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetUserByID(ctx, id)
}
