package eventlog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kenams/sport-challenge-roulette/internal/domain"
	"github.com/kenams/sport-challenge-roulette/internal/logger"
)

// Service handles activity logging business logic. All record methods
// are best-effort from the caller's perspective: the roulette job logs
// failures and moves on, it never fails a phase over a missing audit row.
type Service interface {
	// RecordPenalty writes an audit entry for one player's penalty
	RecordPenalty(ctx context.Context, userID, duelID uuid.UUID, deltaScore, deltaPoints int) error

	// RecordDraw writes an audit entry for one player's weekly draw
	RecordDraw(ctx context.Context, userID, duelID uuid.UUID, sport domain.Sport, deadline time.Time) error

	// CleanupOldEvents removes entries older than retention period
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo Repository
}

// NewService creates a new activity logging service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// RecordPenalty writes an audit entry describing the sanction and
// referencing the lapsed duel
func (s *service) RecordPenalty(ctx context.Context, userID, duelID uuid.UUID, deltaScore, deltaPoints int) error {
	log := logger.FromContext(ctx)

	uid := userID.String()
	payload := map[string]interface{}{
		"duel_id":      duelID.String(),
		"delta_score":  -deltaScore,
		"delta_points": -deltaPoints,
	}

	if err := s.repo.LogEvent(ctx, EventTypePenaltyApplied, &uid, payload); err != nil {
		log.Error("Failed to record penalty activity", "error", err, "user_id", uid, "duel_id", duelID)
		return err
	}

	return nil
}

// RecordDraw writes an audit entry for a player drawn into a forced duel
func (s *service) RecordDraw(ctx context.Context, userID, duelID uuid.UUID, sport domain.Sport, deadline time.Time) error {
	log := logger.FromContext(ctx)

	uid := userID.String()
	payload := map[string]interface{}{
		"duel_id":  duelID.String(),
		"sport":    string(sport),
		"deadline": deadline.UTC().Format(time.RFC3339),
	}

	if err := s.repo.LogEvent(ctx, EventTypeDuelDrawn, &uid, payload); err != nil {
		log.Error("Failed to record draw activity", "error", err, "user_id", uid, "duel_id", duelID)
		return err
	}

	return nil
}

// CleanupOldEvents removes entries older than the retention period
func (s *service) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	return s.repo.CleanupOldEvents(ctx, retentionDays)
}
