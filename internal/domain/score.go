package domain

// PointsBreakdown itemizes where a driver's points came from. A category
// is present only when the driver earned points from it, so a zero-award
// category never shows up as an explicit zero.
type PointsBreakdown struct {
	GridPosition    int `json:"gridPosition,omitempty"`
	SprintPosition  int `json:"sprintPosition,omitempty"`
	Pole            int `json:"pole,omitempty"`
	FastestLap      int `json:"fastestLap,omitempty"`
	PositionsGained int `json:"positionsGained,omitempty"`
}

// DriverPointsBreakdown is the per-driver scoring outcome.
type DriverPointsBreakdown struct {
	Points    int             `json:"points"`
	Breakdown PointsBreakdown `json:"breakdown"`
}

// DriverPointsMap maps driver number to that driver's point breakdown.
type DriverPointsMap map[int]*DriverPointsBreakdown

// TotalPoints sums the points of every driver entry.
func (m DriverPointsMap) TotalPoints() int {
	total := 0
	for _, d := range m {
		total += d.Points
	}
	return total
}

// BonusTier is the outcome of a single accuracy tier.
type BonusTier struct {
	Earned bool `json:"earned"`
	Points int  `json:"points"`
}

// BonusPoints holds the four independently evaluated accuracy tiers over
// the main-race grid, plus the sum of the earned ones.
type BonusPoints struct {
	Winner     BonusTier `json:"winner"`
	Podium     BonusTier `json:"podium"`
	Top6       BonusTier `json:"top6"`
	AllCorrect BonusTier `json:"allCorrect"`
	Total      int       `json:"total"`
}

// PredictionScore is the complete scoring outcome for one prediction
// against one race result. Recomputed on demand, never persisted as a
// structure; only the grand total is written back to the prediction row.
type PredictionScore struct {
	DriverPoints DriverPointsMap `json:"driver_points"`
	Bonus        BonusPoints     `json:"bonus_points"`
	DriverTotal  int             `json:"driver_total"`
	Total        int             `json:"total"`
}
