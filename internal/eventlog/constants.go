package eventlog

// Activity entry types
const (
	EventTypePenaltyApplied = "roulette.penalty_applied"
	EventTypeDuelDrawn      = "roulette.duel_drawn"
)
