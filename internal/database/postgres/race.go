package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ApexPredict_Go/internal/domain"
	"github.com/osse101/ApexPredict_Go/internal/repository"
)

// RaceRepository implements the race repository for PostgreSQL
type RaceRepository struct {
	db *pgxpool.Pool
}

// NewRaceRepository creates a new RaceRepository
func NewRaceRepository(db *pgxpool.Pool) repository.Race {
	return &RaceRepository{db: db}
}

// CreateRace inserts a new race into the season calendar
func (r *RaceRepository) CreateRace(ctx context.Context, race *domain.Race) error {
	query := `
		INSERT INTO races (race_id, season, category, race_name, country, circuit, has_sprint, status, qualy_date, race_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		race.ID, race.Season, race.Category, race.Name, race.Country,
		race.Circuit, race.HasSprint, race.Status, race.QualyDate, race.RaceDate,
	).Scan(&race.CreatedAt, &race.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == PgErrCodeUniqueViolation {
			return domain.ErrRaceAlreadyExists
		}
		return fmt.Errorf("failed to create race: %w", err)
	}

	return nil
}

// GetRace retrieves a race by ID
func (r *RaceRepository) GetRace(ctx context.Context, id string) (*domain.Race, error) {
	query := `
		SELECT race_id, season, category, race_name, country, circuit, has_sprint, status, qualy_date, race_date, created_at, updated_at
		FROM races
		WHERE race_id = $1
	`

	var race domain.Race
	err := r.db.QueryRow(ctx, query, id).Scan(
		&race.ID, &race.Season, &race.Category, &race.Name, &race.Country,
		&race.Circuit, &race.HasSprint, &race.Status, &race.QualyDate,
		&race.RaceDate, &race.CreatedAt, &race.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRaceNotFound
		}
		return nil, fmt.Errorf("failed to get race: %w", err)
	}

	return &race, nil
}

// ListRaces retrieves the calendar for a season and category, in race-date order
func (r *RaceRepository) ListRaces(ctx context.Context, season, category string) ([]domain.Race, error) {
	query := `
		SELECT race_id, season, category, race_name, country, circuit, has_sprint, status, qualy_date, race_date, created_at, updated_at
		FROM races
		WHERE season = $1 AND category = $2
		ORDER BY race_date ASC
	`

	rows, err := r.db.Query(ctx, query, season, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list races: %w", err)
	}
	defer rows.Close()

	var races []domain.Race
	for rows.Next() {
		var race domain.Race
		err := rows.Scan(
			&race.ID, &race.Season, &race.Category, &race.Name, &race.Country,
			&race.Circuit, &race.HasSprint, &race.Status, &race.QualyDate,
			&race.RaceDate, &race.CreatedAt, &race.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan race: %w", err)
		}
		races = append(races, race)
	}

	return races, rows.Err()
}

// UpdateRaceStatus moves a race through its lifecycle
func (r *RaceRepository) UpdateRaceStatus(ctx context.Context, id string, status domain.RaceStatus) error {
	query := `
		UPDATE races
		SET status = $2, updated_at = NOW()
		WHERE race_id = $1
	`

	tag, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update race status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRaceNotFound
	}

	return nil
}

// ListDrivers retrieves the driver lineup for a season and category,
// ordered by racing number
func (r *RaceRepository) ListDrivers(ctx context.Context, season, category string) ([]domain.Driver, error) {
	query := `
		SELECT driver_id, season, category, driver_number, driver_name, team, team_color
		FROM drivers
		WHERE season = $1 AND category = $2
		ORDER BY driver_number ASC
	`

	rows, err := r.db.Query(ctx, query, season, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}
	defer rows.Close()

	var drivers []domain.Driver
	for rows.Next() {
		var driver domain.Driver
		var teamColor *string
		err := rows.Scan(
			&driver.ID, &driver.Season, &driver.Category,
			&driver.Number, &driver.Name, &driver.Team, &teamColor,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan driver: %w", err)
		}
		if teamColor != nil {
			driver.TeamColor = *teamColor
		}
		drivers = append(drivers, driver)
	}

	return drivers, rows.Err()
}
