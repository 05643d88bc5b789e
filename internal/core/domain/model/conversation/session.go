package conversation

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session holds the ordered turn history of one conversation. Each session
// owns its own history; there is no process-global conversation state.
//
// A session serializes its own mutations, so concurrent conversations only
// contend on their own locks.
type Session struct {
	id uuid.UUID

	mu           sync.Mutex
	turns        []Turn
	lastActivity time.Time
}

// NewSession creates an empty session with the given identifier.
func NewSession(id uuid.UUID) *Session {
	return &Session{
		id:           id,
		lastActivity: time.Now(),
	}
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// AppendUserTurn records a customer message.
func (s *Session) AppendUserTurn(text string, at time.Time) {
	s.append(Turn{
		Role:      RoleUser,
		Text:      text,
		Timestamp: at,
		Source:    SourceUnknown,
	})
}

// AppendAssistantTurn records a service reply attributed to its source.
func (s *Session) AppendAssistantTurn(text string, source Source, at time.Time) {
	s.append(Turn{
		Role:      RoleAssistant,
		Text:      text,
		Timestamp: at,
		Source:    source,
	})
}

func (s *Session) append(turn Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = append(s.turns, turn)
	s.lastActivity = turn.Timestamp
}

// History returns a snapshot copy of the turns in chronological order.
// Later mutations of the session do not affect snapshots already returned.
func (s *Session) History() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make([]Turn, len(s.turns))
	copy(snapshot, s.turns)
	return snapshot
}

// Len returns the number of recorded turns.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.turns)
}

// Clear resets the history to empty. Snapshots already handed out are
// unaffected; subsequent turns start a fresh sequence.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = nil
	s.lastActivity = time.Now()
}

// LastActivity returns the timestamp of the most recent append or clear.
func (s *Session) LastActivity() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActivity
}
