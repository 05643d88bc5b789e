package commands

import (
	"errors"
	"strings"

	"support/internal/pkg/guard"

	"github.com/google/uuid"
)

var (
	ErrHandleTurnCommandIsNotConstructed = errors.New(
		"HandleTurnCommand must be created via NewHandleTurnCommand constructor",
	)
	ErrSessionIDIsRequired = errors.New("session ID is required")
	ErrMessageIsRequired   = errors.New("message text is required")
)

// HandleTurnCommand represents one customer message addressed to a
// conversation session.
//
// Example:
//
//	cmd, err := NewHandleTurnCommand(sessionID, "Where is my order #1?")
//	if err != nil {
//	    return err
//	}
//
//	response, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(response.Message, response.Source)
type HandleTurnCommand struct { //nolint:recvcheck //using for validation
	sessionID uuid.UUID
	text      string

	guard guard.ConstructorGuard
}

// NewHandleTurnCommand creates a command for the given session and message.
// Returns an error when the session ID is nil or the text is empty or
// whitespace only.
func NewHandleTurnCommand(sessionID uuid.UUID, text string) (HandleTurnCommand, error) {
	if sessionID == uuid.Nil {
		return HandleTurnCommand{}, ErrSessionIDIsRequired
	}
	if strings.TrimSpace(text) == "" {
		return HandleTurnCommand{}, ErrMessageIsRequired
	}

	return HandleTurnCommand{
		sessionID: sessionID,
		text:      text,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrHandleTurnCommandIsNotConstructed if validation fails.
func (c HandleTurnCommand) Validate() error {
	return c.guard.Validate(ErrHandleTurnCommandIsNotConstructed)
}

// SessionID returns the conversation session identifier.
func (c HandleTurnCommand) SessionID() uuid.UUID {
	return c.sessionID
}

// Text returns the raw customer message.
func (c HandleTurnCommand) Text() string {
	return c.text
}
