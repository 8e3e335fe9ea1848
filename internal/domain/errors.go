package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound  = "user not found"
	ErrMsgUsernameTaken = "username already taken"

	// Race errors
	ErrMsgRaceNotFound      = "race not found"
	ErrMsgRaceAlreadyExists = "race already exists"

	// Prediction errors
	ErrMsgPredictionNotFound     = "prediction not found"
	ErrMsgPredictionWindowClosed = "prediction window closed"
	ErrMsgInvalidGridOrder       = "invalid grid order"

	// Results errors
	ErrMsgResultsNotAvailable = "results not available"
	ErrMsgEmptyResults        = "results grid order is empty"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// User errors
	ErrUserNotFound  = errors.New(ErrMsgUserNotFound)
	ErrUsernameTaken = errors.New(ErrMsgUsernameTaken)

	// Race errors
	ErrRaceNotFound      = errors.New(ErrMsgRaceNotFound)
	ErrRaceAlreadyExists = errors.New(ErrMsgRaceAlreadyExists)

	// Prediction errors
	ErrPredictionNotFound     = errors.New(ErrMsgPredictionNotFound)
	ErrPredictionWindowClosed = errors.New(ErrMsgPredictionWindowClosed)
	ErrInvalidGridOrder       = errors.New(ErrMsgInvalidGridOrder)

	// Results errors
	ErrResultsNotAvailable = errors.New(ErrMsgResultsNotAvailable)
	ErrEmptyResults        = errors.New(ErrMsgEmptyResults)

	// Database/System errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)
