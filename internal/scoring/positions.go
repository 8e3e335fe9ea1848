// Package scoring implements the prediction scoring engine: pure,
// stateless functions that compare a user's PredictionSet against the
// authoritative RaceResults and produce per-driver point breakdowns and
// bonus tiers. The engine does no I/O and never returns errors for
// missing data; absent picks and unmatched drivers score zero.
package scoring

import "github.com/osse101/ApexPredict_Go/internal/domain"

// ActualPosition returns the 1-based finishing position of the given
// driver within an authoritative finishing order. The second return is
// false when the driver does not appear in the order (DNF, DNS, or an
// unknown driver number).
func ActualPosition(driverNumber int, order []domain.ResultSlot) (int, bool) {
	for _, slot := range order {
		if slot.DriverNumber == driverNumber {
			return slot.Position, true
		}
	}
	return 0, false
}

// predictedDriverAt returns the driver predicted for a position, or nil
// when no slot exists for that position or the slot was left empty.
func predictedDriverAt(position int, gridOrder []domain.GridSlot) *int {
	for _, slot := range gridOrder {
		if slot.Position == position {
			return slot.DriverNumber
		}
	}
	return nil
}

// actualDriverAt returns the driver that finished in a position, or
// false when the results carry no slot for that position.
func actualDriverAt(position int, order []domain.ResultSlot) (int, bool) {
	for _, slot := range order {
		if slot.Position == position {
			return slot.DriverNumber, true
		}
	}
	return 0, false
}
