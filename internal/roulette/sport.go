package roulette

import (
	"github.com/kenams/sport-challenge-roulette/internal/domain"
	"github.com/kenams/sport-challenge-roulette/internal/week"
)

// AssignSport deterministically derives the forced sport for the pair
// at the given 0-based index. The week seed rotates the assignment week
// over week while keeping it fully reproducible for a fixed week and
// pair ordering.
func AssignSport(index int, weekID week.ID, sports []domain.Sport) domain.Sport {
	if len(sports) == 0 {
		return ""
	}
	return sports[(index+weekID.Seed())%len(sports)]
}
