package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kenams/sport-challenge-roulette/internal/domain"
)

// PlayerRepository implements the player repository for PostgreSQL
type PlayerRepository struct {
	db *pgxpool.Pool
}

// NewPlayerRepository creates a new PlayerRepository
func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// GetEligiblePlayers returns players meeting the level and fair-play thresholds
func (r *PlayerRepository) GetEligiblePlayers(ctx context.Context, minLevel, minFairPlay int) ([]domain.Player, error) {
	query := `
		SELECT player_id, username, level, fair_play_score, points
		FROM players
		WHERE level >= $1 AND fair_play_score >= $2
	`

	rows, err := r.db.Query(ctx, query, minLevel, minFairPlay)
	if err != nil {
		return nil, fmt.Errorf("failed to query eligible players: %w", err)
	}
	defer rows.Close()

	var players []domain.Player
	for rows.Next() {
		var p domain.Player
		if err := rows.Scan(&p.ID, &p.Username, &p.Level, &p.FairPlayScore, &p.Points); err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read eligible players: %w", err)
	}

	return players, nil
}

// GetPlayer returns a single player snapshot
func (r *PlayerRepository) GetPlayer(ctx context.Context, id uuid.UUID) (*domain.Player, error) {
	return getPlayer(ctx, r.db, id)
}

// UpdatePlayerPenalty overwrites a player's fair-play score and points
func (r *PlayerRepository) UpdatePlayerPenalty(ctx context.Context, id uuid.UUID, newScore, newPoints int) error {
	return updatePlayerPenalty(ctx, r.db, id, newScore, newPoints)
}

// rowQuerier and execer cover both *pgxpool.Pool and pgx.Tx so the
// player reads and writes can run inside or outside a penalty transaction.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func getPlayer(ctx context.Context, q rowQuerier, id uuid.UUID) (*domain.Player, error) {
	query := `
		SELECT player_id, username, level, fair_play_score, points
		FROM players
		WHERE player_id = $1
	`

	var p domain.Player
	err := q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Username, &p.Level, &p.FairPlayScore, &p.Points)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return &p, nil
}

func updatePlayerPenalty(ctx context.Context, e execer, id uuid.UUID, newScore, newPoints int) error {
	query := `
		UPDATE players
		SET fair_play_score = $2, points = $3, updated_at = NOW()
		WHERE player_id = $1
	`

	tag, err := e.Exec(ctx, query, id, newScore, newPoints)
	if err != nil {
		return fmt.Errorf("failed to update player penalty: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlayerNotFound
	}

	return nil
}
