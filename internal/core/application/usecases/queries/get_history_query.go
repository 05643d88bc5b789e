package queries

import (
	"errors"

	"support/internal/pkg/guard"

	"github.com/google/uuid"
)

var (
	ErrGetHistoryQueryIsNotConstructed = errors.New(
		"GetHistoryQuery must be created via NewGetHistoryQuery constructor",
	)
	ErrSessionIDIsRequired = errors.New("session ID is required")
)

// GetHistoryQuery requests a read-only snapshot of one conversation's
// turn history.
type GetHistoryQuery struct { //nolint:recvcheck //using for validation
	sessionID uuid.UUID

	guard guard.ConstructorGuard
}

// NewGetHistoryQuery creates a history query for the given session.
func NewGetHistoryQuery(sessionID uuid.UUID) (GetHistoryQuery, error) {
	if sessionID == uuid.Nil {
		return GetHistoryQuery{}, ErrSessionIDIsRequired
	}

	return GetHistoryQuery{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetHistoryQueryIsNotConstructed)
}

// SessionID returns the conversation session identifier.
func (q GetHistoryQuery) SessionID() uuid.UUID {
	return q.sessionID
}
