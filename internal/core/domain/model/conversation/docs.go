// Package conversation models conversation state for the support service:
// turns (one customer message or one service reply), sessions (the ordered
// turn history of a single conversation), and the registry that keys live
// sessions by ID.
//
// History is session-scoped. Multiple concurrent conversations
// never share turn state, and clearing one session has no effect on others
// or on history snapshots already returned to callers.
package conversation
