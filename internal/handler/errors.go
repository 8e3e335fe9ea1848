package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidLimit      = "Invalid limit parameter"

	ErrMsgRegisterUserFailed     = "Failed to register user"
	ErrMsgGetUserFailed          = "Failed to get user"
	ErrMsgCreateRaceFailed       = "Failed to create race"
	ErrMsgGetRaceFailed          = "Failed to get race"
	ErrMsgListRacesFailed        = "Failed to list races"
	ErrMsgListDriversFailed      = "Failed to list drivers"
	ErrMsgSubmitPredictionFailed = "Failed to submit prediction"
	ErrMsgGetPredictionFailed    = "Failed to get prediction"
	ErrMsgGetScoreFailed         = "Failed to score prediction"
	ErrMsgInsertResultsFailed    = "Failed to insert race results"
	ErrMsgGetResultsFailed       = "Failed to get race results"
	ErrMsgGetLeaderboardFailed   = "Failed to retrieve leaderboard"
)

// Success messages for API responses
const (
	MsgPredictionSubmitted = "Prediction submitted"
	MsgResultsInserted     = "Results inserted and predictions scored"
)
