package scoring

import "github.com/osse101/ApexPredict_Go/internal/domain"

// Score runs both calculators over one prediction/result pair and
// returns the combined outcome. The grand total is the sum of every
// driver's points plus the earned bonus tiers.
func Score(pred domain.PredictionSet, results domain.RaceResults, hasSprint bool) domain.PredictionScore {
	driverPoints := CalculateDriverPoints(pred, results, hasSprint)
	bonus := CalculateBonusPoints(pred, results)

	driverTotal := driverPoints.TotalPoints()

	return domain.PredictionScore{
		DriverPoints: driverPoints,
		Bonus:        bonus,
		DriverTotal:  driverTotal,
		Total:        driverTotal + bonus.Total,
	}
}
