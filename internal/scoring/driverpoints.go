package scoring

import "github.com/osse101/ApexPredict_Go/internal/domain"

// distancePoints converts the absolute distance between predicted and
// actual position into the slot award. The decay is fixed: 10, 5, 2,
// then nothing.
func distancePoints(distance int) int {
	switch distance {
	case 0:
		return PointsExact
	case 1:
		return PointsOneOff
	case 2:
		return PointsTwoOff
	default:
		return PointsTooFar
	}
}

// CalculateDriverPoints scores every populated grid slot of the
// prediction (main race, plus the sprint grid when hasSprint is set)
// and the three singleton picks, returning a per-driver breakdown.
//
// Each slot is scored independently: a driver predicted in two slots
// accumulates both awards onto the same entry. Drivers absent from the
// results score zero for that slot. An empty grid order yields an empty
// map.
func CalculateDriverPoints(pred domain.PredictionSet, results domain.RaceResults, hasSprint bool) domain.DriverPointsMap {
	points := domain.DriverPointsMap{}

	for _, slot := range pred.GridOrder {
		if slot.DriverNumber == nil {
			continue
		}
		driver := *slot.DriverNumber

		actual, found := ActualPosition(driver, results.GridOrder)
		if !found {
			continue
		}

		awarded := distancePoints(abs(slot.Position - actual))
		if awarded == 0 {
			continue
		}

		e := entry(points, driver)
		e.Points += awarded
		e.Breakdown.GridPosition += awarded
	}

	if hasSprint {
		for _, slot := range pred.SprintPositions {
			if slot.DriverNumber == nil {
				continue
			}
			driver := *slot.DriverNumber

			actual, found := ActualPosition(driver, results.SprintPositions)
			if !found {
				continue
			}

			awarded := distancePoints(abs(slot.Position - actual))
			if awarded == 0 {
				continue
			}

			e := entry(points, driver)
			e.Points += awarded
			e.Breakdown.SprintPosition += awarded
		}
	}

	scoreAdditionalPicks(points, pred.AdditionalPredictions, results.AdditionalPredictions)

	return points
}

// scoreAdditionalPicks awards the flat exact-match points for pole,
// fastest lap and most positions gained. A missing pick or a missing
// authoritative value contributes nothing.
func scoreAdditionalPicks(points domain.DriverPointsMap, picks domain.AdditionalPicks, actual domain.ResultExtras) {
	if match(picks.Pole, actual.Pole) {
		e := entry(points, *picks.Pole)
		e.Points += PointsAdditionalPick
		e.Breakdown.Pole += PointsAdditionalPick
	}
	if match(picks.FastestLap, actual.FastestLap) {
		e := entry(points, *picks.FastestLap)
		e.Points += PointsAdditionalPick
		e.Breakdown.FastestLap += PointsAdditionalPick
	}
	if match(picks.PositionsGained, actual.PositionsGained) {
		e := entry(points, *picks.PositionsGained)
		e.Points += PointsAdditionalPick
		e.Breakdown.PositionsGained += PointsAdditionalPick
	}
}

// entry returns the breakdown for a driver, creating it on first award.
func entry(m domain.DriverPointsMap, driver int) *domain.DriverPointsBreakdown {
	e, ok := m[driver]
	if !ok {
		e = &domain.DriverPointsBreakdown{}
		m[driver] = e
	}
	return e
}

func match(pick, actual *int) bool {
	return pick != nil && actual != nil && *pick == *actual
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
