package scoring

import "github.com/osse101/ApexPredict_Go/internal/domain"

// CalculateBonusPoints evaluates the four accuracy tiers over the
// main-race grid. The sprint grid never participates.
//
// Tiers use strict slot-for-slot equality, not the distance decay of
// the per-driver score, and each tier is evaluated on its own: no tier
// is derived from another, even though a fully correct grid necessarily
// earns all four.
func CalculateBonusPoints(pred domain.PredictionSet, results domain.RaceResults) domain.BonusPoints {
	bonus := domain.BonusPoints{
		Winner:     domain.BonusTier{Earned: slotCorrect(1, pred.GridOrder, results.GridOrder), Points: BonusWinnerPoints},
		Podium:     domain.BonusTier{Earned: prefixCorrect(podiumSlots, pred.GridOrder, results.GridOrder), Points: BonusPodiumPoints},
		Top6:       domain.BonusTier{Earned: prefixCorrect(top6Slots, pred.GridOrder, results.GridOrder), Points: BonusTop6Points},
		AllCorrect: domain.BonusTier{Earned: gridCorrect(pred.GridOrder, results.GridOrder), Points: BonusAllCorrectPoints},
	}

	for _, tier := range []domain.BonusTier{bonus.Winner, bonus.Podium, bonus.Top6, bonus.AllCorrect} {
		if tier.Earned {
			bonus.Total += tier.Points
		}
	}

	return bonus
}

// slotCorrect reports whether the predicted driver for a position is
// exactly the driver that finished there. An empty pick or a position
// missing from either side is never correct.
func slotCorrect(position int, gridOrder []domain.GridSlot, actualOrder []domain.ResultSlot) bool {
	predicted := predictedDriverAt(position, gridOrder)
	if predicted == nil {
		return false
	}
	actual, ok := actualDriverAt(position, actualOrder)
	if !ok {
		return false
	}
	return *predicted == actual
}

// prefixCorrect reports whether positions 1..n are all exactly correct.
// A grid shorter than n cannot earn the tier.
func prefixCorrect(n int, gridOrder []domain.GridSlot, actualOrder []domain.ResultSlot) bool {
	if len(gridOrder) < n {
		return false
	}
	for position := 1; position <= n; position++ {
		if !slotCorrect(position, gridOrder, actualOrder) {
			return false
		}
	}
	return true
}

// gridCorrect reports whether every predicted slot matches the actual
// result at that position. An empty grid earns nothing.
func gridCorrect(gridOrder []domain.GridSlot, actualOrder []domain.ResultSlot) bool {
	if len(gridOrder) == 0 {
		return false
	}
	for _, slot := range gridOrder {
		if !slotCorrect(slot.Position, gridOrder, actualOrder) {
			return false
		}
	}
	return true
}
