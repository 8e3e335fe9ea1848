package scoring

import "github.com/osse101/ApexPredict_Go/internal/domain"

// num returns a pointer to a driver number, for populating optional picks.
func num(n int) *int {
	return &n
}

// grid builds a predicted grid order where drivers[i] is picked for
// position i+1. A zero means the slot is left empty.
func grid(drivers ...int) []domain.GridSlot {
	slots := make([]domain.GridSlot, len(drivers))
	for i, d := range drivers {
		slots[i] = domain.GridSlot{Position: i + 1}
		if d != 0 {
			slots[i].DriverNumber = num(d)
		}
	}
	return slots
}

// order builds an authoritative finishing order where drivers[i]
// finished in position i+1.
func order(drivers ...int) []domain.ResultSlot {
	slots := make([]domain.ResultSlot, len(drivers))
	for i, d := range drivers {
		slots[i] = domain.ResultSlot{Position: i + 1, DriverNumber: d}
	}
	return slots
}
