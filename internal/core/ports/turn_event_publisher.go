package ports

import (
	"context"
	"time"
)

// TurnEvent describes the outcome of one handled conversation turn.
// It exists for monitoring: downstream consumers can distinguish resolved
// lookups from not-found outcomes and fallback replies without any change
// to the user-facing messages.
type TurnEvent struct {
	SessionID string    `json:"session_id"`
	Intent    string    `json:"intent"`
	Source    string    `json:"source"`
	Succeeded bool      `json:"succeeded"`
	Fallback  bool      `json:"fallback"`
	Timestamp time.Time `json:"timestamp"`
}

// TurnEventPublisher emits turn outcome events to an external stream.
// Publishing is best effort: the orchestrator logs publish failures and
// continues, so a broker outage never affects replies.
type TurnEventPublisher interface {
	PublishTurn(ctx context.Context, event TurnEvent) error
}
