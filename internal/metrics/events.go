package metrics

import (
	"context"

	"github.com/kenams/sport-challenge-roulette/internal/event"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all event types the job publishes
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.TypeDuelsSeeded,
		event.TypeDuelPenalized,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(_ context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.TypeDuelsSeeded:
		if payload, ok := evt.Payload.(event.DuelsSeededPayloadV1); ok {
			DuelsSeeded.Add(float64(payload.DuelCount))
		}
	case event.TypeDuelPenalized:
		PenaltiesApplied.Inc()
	}

	return nil
}
