package commands_test

import (
	"testing"

	"support/internal/core/application/usecases/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandleTurnCommand(t *testing.T) {
	sessionID := uuid.New()

	cmd, err := commands.NewHandleTurnCommand(sessionID, "Where is my order #1?")
	require.NoError(t, err)
	assert.Equal(t, sessionID, cmd.SessionID())
	assert.Equal(t, "Where is my order #1?", cmd.Text())
	assert.NoError(t, cmd.Validate())
}

func TestNewHandleTurnCommand_NilSessionID(t *testing.T) {
	_, err := commands.NewHandleTurnCommand(uuid.Nil, "hello")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrSessionIDIsRequired)
}

func TestNewHandleTurnCommand_EmptyText(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "whitespace only", text: "   \t\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := commands.NewHandleTurnCommand(uuid.New(), test.text)
			require.Error(t, err)
			assert.ErrorIs(t, err, commands.ErrMessageIsRequired)
		})
	}
}

func TestHandleTurnCommand_NotConstructed(t *testing.T) {
	var cmd commands.HandleTurnCommand

	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrHandleTurnCommandIsNotConstructed)
}

func TestNewClearHistoryCommand(t *testing.T) {
	sessionID := uuid.New()

	cmd, err := commands.NewClearHistoryCommand(sessionID)
	require.NoError(t, err)
	assert.Equal(t, sessionID, cmd.SessionID())
	assert.NoError(t, cmd.Validate())
}

func TestNewClearHistoryCommand_NilSessionID(t *testing.T) {
	_, err := commands.NewClearHistoryCommand(uuid.Nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrSessionIDIsRequired)
}

func TestClearHistoryCommand_NotConstructed(t *testing.T) {
	var cmd commands.ClearHistoryCommand

	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrClearHistoryCommandIsNotConstructed)
}
