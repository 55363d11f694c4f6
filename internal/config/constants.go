package config

import "github.com/kenams/sport-challenge-roulette/internal/domain"

// Defaults for environment-driven settings
const (
	DefaultPort                 = 8080
	DefaultSweepIntervalMinutes = 5
	DefaultStoreTimeoutSeconds  = 10
	DefaultAuditRetentionDays   = 90
)

// Eligibility defaults mirror the domain constants so a bare environment
// produces the documented thresholds.
const (
	DefaultMinLevel    = domain.MinEligibleLevel
	DefaultMinFairPlay = domain.MinFairPlayScore
)
