package domain

import "time"

// RaceStatus represents the lifecycle state of a race
type RaceStatus string

const (
	RaceStatusScheduled RaceStatus = "scheduled"
	RaceStatusCompleted RaceStatus = "completed"
)

// Race is one round of a season's calendar. QualyDate doubles as the
// prediction submission deadline; HasSprint gates sprint scoring.
type Race struct {
	ID        string     `json:"id"`
	Season    string     `json:"season"`
	Category  string     `json:"category"`
	Name      string     `json:"name"`
	Country   string     `json:"country"`
	Circuit   string     `json:"circuit"`
	HasSprint bool       `json:"has_sprint"`
	Status    RaceStatus `json:"status"`
	QualyDate time.Time  `json:"qualy_date"`
	RaceDate  time.Time  `json:"race_date"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Driver is a participant of a season, identified in predictions and
// results by the permanent racing number.
type Driver struct {
	ID        string `json:"id"`
	Season    string `json:"season"`
	Category  string `json:"category"`
	Number    int    `json:"number"`
	Name      string `json:"name"`
	Team      string `json:"team"`
	TeamColor string `json:"team_color,omitempty"`
}
