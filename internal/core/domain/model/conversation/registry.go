package conversation

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Registry owns the live sessions of the process, keyed by session ID.
// It is safe for concurrent use: lookups take a read lock, creation and
// eviction take a write lock.
type Registry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewRegistry creates an empty session registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[uuid.UUID]*Session),
	}
}

// GetOrCreate returns the session for the given ID, creating it on first use.
func (r *Registry) GetOrCreate(id uuid.UUID) *Session {
	r.mu.RLock()
	session, ok := r.sessions[id]
	r.mu.RUnlock()
	if ok {
		return session
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if session, ok = r.sessions[id]; ok {
		return session
	}
	session = NewSession(id)
	r.sessions[id] = session
	return session
}

// Get returns the session for the given ID, if it exists.
func (r *Registry) Get(id uuid.UUID) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[id]
	return session, ok
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// PruneIdle evicts sessions whose last activity is older than maxIdle
// relative to now, and returns how many were removed.
func (r *Registry) PruneIdle(now time.Time, maxIdle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	pruned := 0
	for id, session := range r.sessions {
		if now.Sub(session.LastActivity()) > maxIdle {
			delete(r.sessions, id)
			pruned++
		}
	}
	return pruned
}
