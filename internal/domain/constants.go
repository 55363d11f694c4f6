package domain

import "time"

// Eligibility thresholds for the weekly draw
const (
	MinEligibleLevel = 2
	MinFairPlayScore = 40
)

// DuelDeadline is how long participants have to resolve a duel.
// Fixed and immutable once a duel is created.
const DuelDeadline = 4 * 24 * time.Hour

// Penalty amounts applied to both participants of a lapsed duel.
// Scores and points floor at zero.
const (
	PenaltyFairPlay = 10
	PenaltyPoints   = 20
)
