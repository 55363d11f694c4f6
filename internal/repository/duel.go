package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kenams/sport-challenge-roulette/internal/domain"
)

// Duel defines the interface for duel data access
type Duel interface {
	// CountDuelsForWeek returns the number of duels seeded for a week.
	// A non-zero count blocks reseeding (idempotency guard).
	CountDuelsForWeek(ctx context.Context, weekID string) (int, error)

	// InsertDuels persists a week's duels in a single batch write.
	// Either every record lands or none do.
	InsertDuels(ctx context.Context, duels []domain.Duel) error

	// ListDuelsForWeek returns all duels seeded for a week.
	ListDuelsForWeek(ctx context.Context, weekID string) ([]domain.Duel, error)

	// FindOverdueUnpenalized returns duels with deadline <= now, status in
	// {pending, challenge_created} and penalty_applied = false.
	FindOverdueUnpenalized(ctx context.Context, now time.Time) ([]domain.Duel, error)

	// MarkPenalized conditionally flips penalty_applied false->true and
	// sets status=penalized. Returns domain.ErrAlreadyPenalized when the
	// row was already flipped.
	MarkPenalized(ctx context.Context, duelID uuid.UUID) error

	// BeginPenaltyTx starts a transaction covering one duel's penalty:
	// the conditional claim plus both player decrements commit or roll
	// back as a unit, so a partial failure can never double-penalize.
	BeginPenaltyTx(ctx context.Context) (PenaltyTx, error)
}

// PenaltyTx groups the writes of one duel's penalty into a single
// transaction. Callers must Commit or Rollback.
type PenaltyTx interface {
	Tx

	// MarkPenalized is the conditional claim inside the transaction.
	MarkPenalized(ctx context.Context, duelID uuid.UUID) error

	// GetPlayer reads a player snapshot with the transaction's view.
	GetPlayer(ctx context.Context, id uuid.UUID) (*domain.Player, error)

	// UpdatePlayerPenalty writes a player's decremented score and points.
	UpdatePlayerPenalty(ctx context.Context, id uuid.UUID, newScore, newPoints int) error
}
