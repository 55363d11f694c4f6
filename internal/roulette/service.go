package roulette

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/kenams/sport-challenge-roulette/internal/domain"
	"github.com/kenams/sport-challenge-roulette/internal/event"
	"github.com/kenams/sport-challenge-roulette/internal/eventlog"
	"github.com/kenams/sport-challenge-roulette/internal/logger"
	"github.com/kenams/sport-challenge-roulette/internal/metrics"
	"github.com/kenams/sport-challenge-roulette/internal/notify"
	"github.com/kenams/sport-challenge-roulette/internal/repository"
	"github.com/kenams/sport-challenge-roulette/internal/week"
)

// Service defines the roulette job business logic. One Run is one full
// cycle: sweep overdue duels first, then seed the current week's draw.
type Service interface {
	Run(ctx context.Context) error

	// SweepOverdue penalizes lapsed duels; returns how many were penalized.
	SweepOverdue(ctx context.Context) (int, error)

	// SeedWeek creates this week's duels; returns how many were created.
	SeedWeek(ctx context.Context) (int, error)
}

// Config carries the tunable parts of the job
type Config struct {
	MinLevel     int
	MinFairPlay  int
	Sports       []domain.Sport
	StoreTimeout time.Duration
}

type service struct {
	players    repository.Player
	duels      repository.Duel
	dispatcher notify.Dispatcher
	activity   eventlog.Service
	eventBus   event.Bus

	minLevel     int
	minFairPlay  int
	sports       []domain.Sport
	storeTimeout time.Duration

	now     func() time.Time // injectable clock
	shuffle ShuffleFunc      // injectable random source
}

// NewService creates a new roulette service
func NewService(players repository.Player, duels repository.Duel, dispatcher notify.Dispatcher, activity eventlog.Service, eventBus event.Bus, cfg Config) Service {
	if cfg.MinLevel == 0 {
		cfg.MinLevel = domain.MinEligibleLevel
	}
	if cfg.MinFairPlay == 0 {
		cfg.MinFairPlay = domain.MinFairPlayScore
	}
	if len(cfg.Sports) == 0 {
		cfg.Sports = domain.Sports
	}
	if cfg.StoreTimeout == 0 {
		cfg.StoreTimeout = DefaultStoreTimeout
	}

	return &service{
		players:      players,
		duels:        duels,
		dispatcher:   dispatcher,
		activity:     activity,
		eventBus:     eventBus,
		minLevel:     cfg.MinLevel,
		minFairPlay:  cfg.MinFairPlay,
		sports:       cfg.Sports,
		storeTimeout: cfg.StoreTimeout,
		now:          time.Now,
		shuffle:      rand.Shuffle,
	}
}

// DefaultStoreTimeout bounds a single store call
const DefaultStoreTimeout = 10 * time.Second

// Run executes one full cycle. The sweep always runs (or is attempted)
// before seeding, so a duel expiring in the instant of a new draw is
// penalized under the old week rather than silently dropped. A sweep
// failure does not block seeding; both errors are reported together.
func (s *service) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRunStarting)

	swept, sweepErr := s.SweepOverdue(ctx)
	if sweepErr != nil {
		log.Error(LogMsgSweepAborted, "error", sweepErr)
	}

	seeded, seedErr := s.SeedWeek(ctx)

	log.Info(LogMsgRunCompleted, "penalized", swept, "seeded", seeded)
	return errors.Join(sweepErr, seedErr)
}

// SeedWeek runs the weekly draw: idempotency guard, eligibility filter,
// pairing, sport assignment, batch insert, then best-effort fan-out.
func (s *service) SeedWeek(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	now := s.now().UTC()
	weekID := week.Resolve(now)

	count, err := s.countDuelsForWeek(ctx, weekID.String())
	if err != nil {
		// Fail closed: without a trustworthy existence check a re-run
		// could double-seed the week.
		return 0, fmt.Errorf("failed to check existing duels for week %s: %w", weekID, err)
	}
	if count > 0 {
		log.Info(LogMsgWeekAlreadySeeded, "week_id", weekID, "existing", count)
		return 0, nil
	}

	eligible, err := s.eligiblePlayers(ctx)
	if err != nil {
		// Fail closed: a failed fetch must never seed a degraded or
		// partial draw. Nothing to do this cycle, retried naturally.
		log.Warn(LogMsgEligibleFetchFail, "error", err)
		return 0, nil
	}
	if len(eligible) < 2 {
		log.Info(LogMsgPoolTooSmall, "count", len(eligible))
		return 0, nil
	}

	pairs := PairPlayers(eligible, s.shuffle)
	if len(pairs) == 0 {
		return 0, nil
	}

	deadline := now.Add(domain.DuelDeadline)
	duels := make([]domain.Duel, 0, len(pairs))
	for i, pair := range pairs {
		duels = append(duels, domain.Duel{
			ID:             uuid.New(),
			WeekID:         weekID.String(),
			PlayerA:        pair.A.ID,
			PlayerB:        pair.B.ID,
			Sport:          AssignSport(i, weekID, s.sports),
			Status:         domain.DuelStatusPending,
			Deadline:       deadline,
			PenaltyApplied: false,
			CreatedAt:      now,
		})
	}

	if err := s.insertDuels(ctx, duels); err != nil {
		// The batch is transactional; a failed write leaves zero duels
		// for the week and the next run retries naturally.
		return 0, fmt.Errorf("failed to seed duels for week %s: %w", weekID, err)
	}

	log.Info(LogMsgDuelsSeeded, "week_id", weekID, "duels", len(duels), "players", len(pairs)*2)

	for i, d := range duels {
		s.announceDraw(ctx, pairs[i].A, d)
		s.announceDraw(ctx, pairs[i].B, d)
	}

	s.publish(ctx, event.NewDuelsSeededEvent(weekID.String(), len(duels), len(pairs)*2, deadline))

	return len(duels), nil
}

// SweepOverdue penalizes duels past their deadline that never resolved.
// Failure on one duel never blocks the rest; an enumeration failure
// aborts the whole sweep rather than acting on a partial view.
func (s *service) SweepOverdue(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	overdue, err := s.findOverdue(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to enumerate overdue duels: %w", err)
	}

	applied := 0
	for _, d := range overdue {
		if err := s.penalizeDuel(ctx, d); err != nil {
			if errors.Is(err, domain.ErrAlreadyPenalized) {
				// Lost the claim to a concurrent sweep; nothing to retry.
				continue
			}
			log.Error(LogMsgPenaltyRetry, "duel_id", d.ID, "error", err)
			metrics.SweepFailures.Inc()
			continue
		}
		applied++
	}

	return applied, nil
}

// penalizeDuel applies the sanction to both participants and terminates
// the duel inside a single transaction: either everything lands or the
// duel stays retryable, so a partial failure can never double-penalize.
func (s *service) penalizeDuel(ctx context.Context, d domain.Duel) error {
	log := logger.FromContext(ctx)

	txCtx, cancel := s.storeCtx(ctx)
	defer cancel()

	tx, err := s.duels.BeginPenaltyTx(txCtx)
	if err != nil {
		return fmt.Errorf("failed to begin penalty transaction: %w", err)
	}
	defer tx.Rollback(txCtx)

	if err := tx.MarkPenalized(txCtx, d.ID); err != nil {
		return err
	}

	for _, playerID := range []uuid.UUID{d.PlayerA, d.PlayerB} {
		p, err := tx.GetPlayer(txCtx, playerID)
		if err != nil {
			return fmt.Errorf("failed to read player %s: %w", playerID, err)
		}

		newScore := max(p.FairPlayScore-domain.PenaltyFairPlay, 0)
		newPoints := max(p.Points-domain.PenaltyPoints, 0)
		if err := tx.UpdatePlayerPenalty(txCtx, playerID, newScore, newPoints); err != nil {
			return fmt.Errorf("failed to penalize player %s: %w", playerID, err)
		}
	}

	if err := tx.Commit(txCtx); err != nil {
		return fmt.Errorf("failed to commit penalty: %w", err)
	}

	log.Info(LogMsgDuelPenalized, "duel_id", d.ID, "week_id", d.WeekID)

	// Audit and notifications are best-effort after the commit.
	for _, playerID := range []uuid.UUID{d.PlayerA, d.PlayerB} {
		if s.activity != nil {
			_ = s.activity.RecordPenalty(ctx, playerID, d.ID, domain.PenaltyFairPlay, domain.PenaltyPoints)
		}
		s.notifyPlayer(ctx, playerID, NotifyTitlePenalty,
			fmt.Sprintf(NotifyBodyPenalty, d.Sport, domain.PenaltyFairPlay, domain.PenaltyPoints),
			notify.KindPenalty)
	}

	s.publish(ctx, event.NewDuelPenalizedEvent(d))

	return nil
}

// announceDraw notifies one drawn participant and records the audit entry
func (s *service) announceDraw(ctx context.Context, p domain.Player, d domain.Duel) {
	if s.activity != nil {
		_ = s.activity.RecordDraw(ctx, p.ID, d.ID, d.Sport, d.Deadline)
	}
	s.notifyPlayer(ctx, p.ID, NotifyTitleDrawn,
		fmt.Sprintf(NotifyBodyDrawn, d.Sport, d.Deadline.Format(time.RFC1123)),
		notify.KindDuelDrawn)
}

func (s *service) notifyPlayer(ctx context.Context, playerID uuid.UUID, title, body string, kind notify.Kind) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Notify(ctx, playerID, title, body, kind); err != nil {
		logger.FromContext(ctx).Warn(LogMsgNotifyFailed, "user_id", playerID, "error", err)
	}
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}

// storeCtx bounds a store call so no phase can block indefinitely
func (s *service) storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.storeTimeout)
}

func (s *service) countDuelsForWeek(ctx context.Context, weekID string) (int, error) {
	ctx, cancel := s.storeCtx(ctx)
	defer cancel()
	return s.duels.CountDuelsForWeek(ctx, weekID)
}

func (s *service) eligiblePlayers(ctx context.Context) ([]domain.Player, error) {
	ctx, cancel := s.storeCtx(ctx)
	defer cancel()
	return s.players.GetEligiblePlayers(ctx, s.minLevel, s.minFairPlay)
}

func (s *service) insertDuels(ctx context.Context, duels []domain.Duel) error {
	ctx, cancel := s.storeCtx(ctx)
	defer cancel()
	return s.duels.InsertDuels(ctx, duels)
}

func (s *service) findOverdue(ctx context.Context) ([]domain.Duel, error) {
	ctx, cancel := s.storeCtx(ctx)
	defer cancel()
	return s.duels.FindOverdueUnpenalized(ctx, s.now().UTC())
}
