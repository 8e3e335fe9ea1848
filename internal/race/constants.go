package race

// Error messages
const (
	ErrMsgRaceIDAndSeasonRequired = "race id and season are required"
	ErrMsgUnknownCategory         = "unknown category"
	ErrMsgRaceDateBeforeQualy     = "race date must be after qualifying"
)
