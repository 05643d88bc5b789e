package queries

import (
	"context"

	"support/internal/core/domain/model/conversation"
)

// GetHistoryQueryHandler returns conversation history snapshots.
// An unknown session yields an empty history, not an error: a conversation
// that never spoke has nothing to show.
type GetHistoryQueryHandler struct {
	sessions *conversation.Registry
}

// NewGetHistoryQueryHandler creates a handler over the session registry.
func NewGetHistoryQueryHandler(sessions *conversation.Registry) GetHistoryQueryHandler {
	return GetHistoryQueryHandler{sessions: sessions}
}

// Handle returns the chronological turn snapshot for the session.
func (h GetHistoryQueryHandler) Handle(_ context.Context, query GetHistoryQuery) ([]conversation.Turn, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	session, ok := h.sessions.Get(query.SessionID())
	if !ok {
		return []conversation.Turn{}, nil
	}
	return session.History(), nil
}
