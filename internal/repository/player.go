package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/kenams/sport-challenge-roulette/internal/domain"
)

// Player defines the interface for player data access.
// The roulette job reads player snapshots and, on the penalty path,
// writes decremented fair-play scores and points.
type Player interface {
	// GetEligiblePlayers returns players with level >= minLevel and
	// fair_play_score >= minFairPlay.
	GetEligiblePlayers(ctx context.Context, minLevel, minFairPlay int) ([]domain.Player, error)

	// GetPlayer returns a single player snapshot.
	GetPlayer(ctx context.Context, id uuid.UUID) (*domain.Player, error)

	// UpdatePlayerPenalty overwrites a player's fair-play score and points.
	UpdatePlayerPenalty(ctx context.Context, id uuid.UUID, newScore, newPoints int) error
}
