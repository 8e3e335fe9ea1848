package scoring

// Per-slot points awarded by distance between predicted and actual
// finishing position. Anything further than two places scores nothing.
const (
	PointsExact  = 10
	PointsOneOff = 5
	PointsTwoOff = 2
	PointsTooFar = 0
)

// PointsAdditionalPick is the flat award for an exact singleton pick
// (pole, fastest lap, most positions gained). No partial credit exists
// for these.
const PointsAdditionalPick = 10

// Bonus tier awards. Tiers are independent; a perfect grid earns all four.
const (
	BonusWinnerPoints     = 10
	BonusPodiumPoints     = 30
	BonusTop6Points       = 60
	BonusAllCorrectPoints = 100
)

// Grid positions covered by the partial bonus tiers
const (
	podiumSlots = 3
	top6Slots   = 6
)
