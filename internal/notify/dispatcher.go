// Package notify delivers best-effort player notifications. Delivery
// failures are logged by callers and never fail a job phase.
package notify

import (
	"context"

	"github.com/google/uuid"
)

// Kind classifies a notification for the downstream delivery pipeline
type Kind string

const (
	KindDuelDrawn Kind = "duel_drawn"
	KindPenalty   Kind = "penalty"
)

// Dispatcher defines the interface for notification delivery
type Dispatcher interface {
	Notify(ctx context.Context, userID uuid.UUID, title, body string, kind Kind) error
}

// Noop is a Dispatcher that silently drops notifications. Used when no
// webhook is configured, so the job keeps working in minimal setups.
type Noop struct{}

// Notify implements Dispatcher
func (Noop) Notify(context.Context, uuid.UUID, string, string, Kind) error {
	return nil
}
