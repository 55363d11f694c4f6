package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kenams/sport-challenge-roulette/internal/domain"
)

func TestMemoryBus_PublishToSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	ctx := context.Background()

	var received []Event
	bus.Subscribe(TypeDuelsSeeded, func(_ context.Context, evt Event) error {
		received = append(received, evt)
		return nil
	})

	deadline := time.Now().Add(4 * 24 * time.Hour)
	err := bus.Publish(ctx, NewDuelsSeededEvent("2024-06-03", 2, 5, deadline))
	assert.NoError(t, err)
	assert.Len(t, received, 1)

	payload, ok := received[0].Payload.(DuelsSeededPayloadV1)
	assert.True(t, ok)
	assert.Equal(t, "2024-06-03", payload.WeekID)
	assert.Equal(t, 2, payload.DuelCount)
}

func TestMemoryBus_NoSubscribersIsNoop(t *testing.T) {
	bus := NewMemoryBus()
	err := bus.Publish(context.Background(), Event{Type: TypeDuelPenalized})
	assert.NoError(t, err)
}

func TestMemoryBus_CollectsHandlerErrors(t *testing.T) {
	bus := NewMemoryBus()
	bus.Subscribe(TypeDuelPenalized, func(context.Context, Event) error {
		return errors.New("boom")
	})
	bus.Subscribe(TypeDuelPenalized, func(context.Context, Event) error {
		return nil
	})

	duel := domain.Duel{WeekID: "2024-06-03"}
	err := bus.Publish(context.Background(), NewDuelPenalizedEvent(duel))
	assert.Error(t, err)
}
