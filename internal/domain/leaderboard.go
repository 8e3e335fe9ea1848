package domain

import "time"

// RaceLeaderboardEntry ranks one scored prediction within a single race.
type RaceLeaderboardEntry struct {
	Rank     int    `json:"rank"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Points   int    `json:"points"`
}

// SeasonPointsSum aggregates a user's stored per-race points, used when
// rebuilding season totals.
type SeasonPointsSum struct {
	TotalPoints int `json:"total_points"`
	RacesScored int `json:"races_scored"`
}

// SeasonLeaderboardEntry is a user's running season total.
type SeasonLeaderboardEntry struct {
	Rank        int       `json:"rank"`
	UserID      string    `json:"user_id"`
	Username    string    `json:"username"`
	TotalPoints int       `json:"total_points"`
	RacesScored int       `json:"races_scored"`
	UpdatedAt   time.Time `json:"updated_at"`
}
