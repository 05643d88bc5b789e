package commands

import (
	"context"

	"support/internal/core/domain/model/conversation"
)

// ClearHistoryCommandHandler resets a conversation's turn history.
// Clearing an unknown session is a no-op: there is nothing to reset.
type ClearHistoryCommandHandler struct {
	sessions *conversation.Registry
}

// NewClearHistoryCommandHandler creates a handler over the session registry.
func NewClearHistoryCommandHandler(sessions *conversation.Registry) ClearHistoryCommandHandler {
	return ClearHistoryCommandHandler{sessions: sessions}
}

// Handle clears the session's history. Turns already returned to earlier
// callers as snapshots are unaffected.
func (h ClearHistoryCommandHandler) Handle(_ context.Context, cmd ClearHistoryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if session, ok := h.sessions.Get(cmd.SessionID()); ok {
		session.Clear()
	}
	return nil
}
