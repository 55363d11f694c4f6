package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kenams/sport-challenge-roulette/internal/domain"
	"github.com/kenams/sport-challenge-roulette/internal/repository"
)

// DuelRepository implements the duel repository for PostgreSQL
type DuelRepository struct {
	db *pgxpool.Pool
}

// NewDuelRepository creates a new DuelRepository
func NewDuelRepository(db *pgxpool.Pool) *DuelRepository {
	return &DuelRepository{db: db}
}

// CountDuelsForWeek returns the number of duels seeded for a week
func (r *DuelRepository) CountDuelsForWeek(ctx context.Context, weekID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM duels WHERE week_id = $1`, weekID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count duels for week %s: %w", weekID, err)
	}
	return count, nil
}

// InsertDuels persists a week's duels in a single transaction.
// The unique indexes on (week_id, player_a) and (week_id, player_b)
// back the seeding idempotency guard at the database level.
func (r *DuelRepository) InsertDuels(ctx context.Context, duels []domain.Duel) error {
	if len(duels) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO duels (duel_id, week_id, player_a, player_b, sport, status, deadline, penalty_applied, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	batch := &pgx.Batch{}
	for _, d := range duels {
		batch.Queue(query, d.ID, d.WeekID, d.PlayerA, d.PlayerB, d.Sport, d.Status, d.Deadline, d.PenaltyApplied, d.CreatedAt)
	}

	results := tx.SendBatch(ctx, batch)
	for range duels {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return fmt.Errorf("failed to insert duel: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to close batch: %w", err)
	}

	return tx.Commit(ctx)
}

// ListDuelsForWeek returns all duels seeded for a week
func (r *DuelRepository) ListDuelsForWeek(ctx context.Context, weekID string) ([]domain.Duel, error) {
	query := selectDuelColumns + ` WHERE week_id = $1 ORDER BY created_at, duel_id`

	rows, err := r.db.Query(ctx, query, weekID)
	if err != nil {
		return nil, fmt.Errorf("failed to list duels for week %s: %w", weekID, err)
	}
	defer rows.Close()

	return scanDuels(rows)
}

// FindOverdueUnpenalized returns duels past their deadline that never
// completed and have not been penalized yet
func (r *DuelRepository) FindOverdueUnpenalized(ctx context.Context, now time.Time) ([]domain.Duel, error) {
	query := selectDuelColumns + `
		WHERE deadline <= $1
		  AND status IN ($2, $3)
		  AND penalty_applied = FALSE
		ORDER BY deadline
	`

	rows, err := r.db.Query(ctx, query, now, domain.DuelStatusPending, domain.DuelStatusChallengeCreated)
	if err != nil {
		return nil, fmt.Errorf("failed to query overdue duels: %w", err)
	}
	defer rows.Close()

	return scanDuels(rows)
}

// MarkPenalized conditionally flips penalty_applied and terminates the duel
func (r *DuelRepository) MarkPenalized(ctx context.Context, duelID uuid.UUID) error {
	return markPenalized(ctx, r.db, duelID)
}

// BeginPenaltyTx starts a transaction covering one duel's penalty
func (r *DuelRepository) BeginPenaltyTx(ctx context.Context) (repository.PenaltyTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &penaltyTx{tx: tx}, nil
}

// penaltyTx implements repository.PenaltyTx over a pgx transaction
type penaltyTx struct {
	tx pgx.Tx
}

func (t *penaltyTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *penaltyTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *penaltyTx) MarkPenalized(ctx context.Context, duelID uuid.UUID) error {
	return markPenalized(ctx, t.tx, duelID)
}

func (t *penaltyTx) GetPlayer(ctx context.Context, id uuid.UUID) (*domain.Player, error) {
	return getPlayer(ctx, t.tx, id)
}

func (t *penaltyTx) UpdatePlayerPenalty(ctx context.Context, id uuid.UUID, newScore, newPoints int) error {
	return updatePlayerPenalty(ctx, t.tx, id, newScore, newPoints)
}

// markPenalized is the conditional claim: the WHERE clause on
// penalty_applied makes concurrent sweeps race-safe, only one of them
// sees a row flip.
func markPenalized(ctx context.Context, e execer, duelID uuid.UUID) error {
	query := `
		UPDATE duels
		SET status = $2, penalty_applied = TRUE
		WHERE duel_id = $1 AND penalty_applied = FALSE
	`

	tag, err := e.Exec(ctx, query, duelID, domain.DuelStatusPenalized)
	if err != nil {
		return fmt.Errorf("failed to mark duel penalized: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlreadyPenalized
	}

	return nil
}

const selectDuelColumns = `
	SELECT duel_id, week_id, player_a, player_b, sport, status, deadline, penalty_applied, created_at
	FROM duels`

func scanDuels(rows pgx.Rows) ([]domain.Duel, error) {
	var duels []domain.Duel
	for rows.Next() {
		var d domain.Duel
		if err := rows.Scan(&d.ID, &d.WeekID, &d.PlayerA, &d.PlayerB, &d.Sport, &d.Status, &d.Deadline, &d.PenaltyApplied, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan duel: %w", err)
		}
		duels = append(duels, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read duels: %w", err)
	}
	return duels, nil
}
