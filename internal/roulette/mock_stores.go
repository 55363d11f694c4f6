package roulette

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/kenams/sport-challenge-roulette/internal/domain"
	"github.com/kenams/sport-challenge-roulette/internal/notify"
	"github.com/kenams/sport-challenge-roulette/internal/repository"
)

// MockPlayerRepository is a mock implementation of repository.Player
type MockPlayerRepository struct {
	mock.Mock
}

func (m *MockPlayerRepository) GetEligiblePlayers(ctx context.Context, minLevel, minFairPlay int) ([]domain.Player, error) {
	args := m.Called(ctx, minLevel, minFairPlay)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Player), args.Error(1)
}

func (m *MockPlayerRepository) GetPlayer(ctx context.Context, id uuid.UUID) (*domain.Player, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockPlayerRepository) UpdatePlayerPenalty(ctx context.Context, id uuid.UUID, newScore, newPoints int) error {
	args := m.Called(ctx, id, newScore, newPoints)
	return args.Error(0)
}

// MockDuelRepository is a mock implementation of repository.Duel
type MockDuelRepository struct {
	mock.Mock
}

func (m *MockDuelRepository) CountDuelsForWeek(ctx context.Context, weekID string) (int, error) {
	args := m.Called(ctx, weekID)
	return args.Int(0), args.Error(1)
}

func (m *MockDuelRepository) InsertDuels(ctx context.Context, duels []domain.Duel) error {
	args := m.Called(ctx, duels)
	return args.Error(0)
}

func (m *MockDuelRepository) ListDuelsForWeek(ctx context.Context, weekID string) ([]domain.Duel, error) {
	args := m.Called(ctx, weekID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Duel), args.Error(1)
}

func (m *MockDuelRepository) FindOverdueUnpenalized(ctx context.Context, now time.Time) ([]domain.Duel, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Duel), args.Error(1)
}

func (m *MockDuelRepository) MarkPenalized(ctx context.Context, duelID uuid.UUID) error {
	args := m.Called(ctx, duelID)
	return args.Error(0)
}

func (m *MockDuelRepository) BeginPenaltyTx(ctx context.Context) (repository.PenaltyTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.PenaltyTx), args.Error(1)
}

// MockPenaltyTx is a mock implementation of repository.PenaltyTx
type MockPenaltyTx struct {
	mock.Mock
}

func (m *MockPenaltyTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPenaltyTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPenaltyTx) MarkPenalized(ctx context.Context, duelID uuid.UUID) error {
	args := m.Called(ctx, duelID)
	return args.Error(0)
}

func (m *MockPenaltyTx) GetPlayer(ctx context.Context, id uuid.UUID) (*domain.Player, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockPenaltyTx) UpdatePlayerPenalty(ctx context.Context, id uuid.UUID, newScore, newPoints int) error {
	args := m.Called(ctx, id, newScore, newPoints)
	return args.Error(0)
}

// MockDispatcher is a mock implementation of notify.Dispatcher
type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) Notify(ctx context.Context, userID uuid.UUID, title, body string, kind notify.Kind) error {
	args := m.Called(ctx, userID, title, body, kind)
	return args.Error(0)
}

// MockActivityService is a mock implementation of eventlog.Service
type MockActivityService struct {
	mock.Mock
}

func (m *MockActivityService) RecordPenalty(ctx context.Context, userID, duelID uuid.UUID, deltaScore, deltaPoints int) error {
	args := m.Called(ctx, userID, duelID, deltaScore, deltaPoints)
	return args.Error(0)
}

func (m *MockActivityService) RecordDraw(ctx context.Context, userID, duelID uuid.UUID, sport domain.Sport, deadline time.Time) error {
	args := m.Called(ctx, userID, duelID, sport, deadline)
	return args.Error(0)
}

func (m *MockActivityService) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	args := m.Called(ctx, retentionDays)
	return args.Get(0).(int64), args.Error(1)
}
