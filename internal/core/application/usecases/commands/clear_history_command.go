package commands

import (
	"errors"

	"support/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrClearHistoryCommandIsNotConstructed = errors.New(
	"ClearHistoryCommand must be created via NewClearHistoryCommand constructor",
)

// ClearHistoryCommand requests that one conversation's history be reset.
type ClearHistoryCommand struct { //nolint:recvcheck //using for validation
	sessionID uuid.UUID

	guard guard.ConstructorGuard
}

// NewClearHistoryCommand creates a clear command for the given session.
func NewClearHistoryCommand(sessionID uuid.UUID) (ClearHistoryCommand, error) {
	if sessionID == uuid.Nil {
		return ClearHistoryCommand{}, ErrSessionIDIsRequired
	}

	return ClearHistoryCommand{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ClearHistoryCommand) Validate() error {
	return c.guard.Validate(ErrClearHistoryCommandIsNotConstructed)
}

// SessionID returns the conversation session identifier.
func (c ClearHistoryCommand) SessionID() uuid.UUID {
	return c.sessionID
}
