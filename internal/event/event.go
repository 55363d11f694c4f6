package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/kenams/sport-challenge-roulette/internal/domain"
)

// Type represents the type of an event
type Type string

// Common event types
const (
	TypeDuelsSeeded   Type = "roulette.duels_seeded"
	TypeDuelPenalized Type = "roulette.duel_penalized"
)

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// DuelsSeededPayloadV1 is the typed payload for weekly draw events
type DuelsSeededPayloadV1 struct {
	WeekID      string    `json:"week_id"`
	DuelCount   int       `json:"duel_count"`
	PlayerCount int       `json:"player_count"`
	Deadline    time.Time `json:"deadline"`
}

// DuelPenalizedPayloadV1 is the typed payload for penalty events
type DuelPenalizedPayloadV1 struct {
	DuelID      string `json:"duel_id"`
	WeekID      string `json:"week_id"`
	PlayerA     string `json:"player_a"`
	PlayerB     string `json:"player_b"`
	ScoreDelta  int    `json:"score_delta"`
	PointsDelta int    `json:"points_delta"`
	Timestamp   int64  `json:"timestamp"`
}

// NewDuelsSeededEvent creates a new weekly draw event with type-safe payload
func NewDuelsSeededEvent(weekID string, duelCount, playerCount int, deadline time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TypeDuelsSeeded,
		Payload: DuelsSeededPayloadV1{
			WeekID:      weekID,
			DuelCount:   duelCount,
			PlayerCount: playerCount,
			Deadline:    deadline,
		},
	}
}

// NewDuelPenalizedEvent creates a new penalty event with type-safe payload
func NewDuelPenalizedEvent(duel domain.Duel) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TypeDuelPenalized,
		Payload: DuelPenalizedPayloadV1{
			DuelID:      duel.ID.String(),
			WeekID:      duel.WeekID,
			PlayerA:     duel.PlayerA.String(),
			PlayerB:     duel.PlayerB.String(),
			ScoreDelta:  domain.PenaltyFairPlay,
			PointsDelta: domain.PenaltyPoints,
			Timestamp:   time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers synchronously
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
