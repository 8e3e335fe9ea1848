package race

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/ApexPredict_Go/internal/domain"
	"github.com/osse101/ApexPredict_Go/internal/logger"
	"github.com/osse101/ApexPredict_Go/internal/repository"
)

// Service defines the interface for race calendar operations
type Service interface {
	CreateRace(ctx context.Context, race *domain.Race) error
	GetRace(ctx context.Context, id string) (*domain.Race, error)
	ListRaces(ctx context.Context, season, category string) ([]domain.Race, error)
	ListDrivers(ctx context.Context, season, category string) ([]domain.Driver, error)
}

type service struct {
	repo repository.Race
}

// NewService creates a new race service
func NewService(repo repository.Race) Service {
	return &service{repo: repo}
}

// CreateRace adds a race to the season calendar
func (s *service) CreateRace(ctx context.Context, race *domain.Race) error {
	log := logger.FromContext(ctx)

	if race.ID == "" || race.Season == "" {
		return errors.New(ErrMsgRaceIDAndSeasonRequired)
	}
	if race.Category == "" {
		race.Category = domain.CategoryF1
	}
	if !domain.ValidCategories[race.Category] {
		return fmt.Errorf("%s: %q", ErrMsgUnknownCategory, race.Category)
	}
	if !race.RaceDate.After(race.QualyDate) {
		return errors.New(ErrMsgRaceDateBeforeQualy)
	}

	if race.Status == "" {
		race.Status = domain.RaceStatusScheduled
	}

	if err := s.repo.CreateRace(ctx, race); err != nil {
		return err
	}

	log.Info("Race created",
		"race_id", race.ID,
		"season", race.Season,
		"category", race.Category,
		"has_sprint", race.HasSprint)

	return nil
}

// GetRace retrieves a race by ID
func (s *service) GetRace(ctx context.Context, id string) (*domain.Race, error) {
	return s.repo.GetRace(ctx, id)
}

// ListRaces retrieves the calendar for a season and category
func (s *service) ListRaces(ctx context.Context, season, category string) ([]domain.Race, error) {
	if category == "" {
		category = domain.CategoryF1
	}
	return s.repo.ListRaces(ctx, season, category)
}

// ListDrivers retrieves the driver lineup for a season and category
func (s *service) ListDrivers(ctx context.Context, season, category string) ([]domain.Driver, error) {
	if category == "" {
		category = domain.CategoryF1
	}
	return s.repo.ListDrivers(ctx, season, category)
}
