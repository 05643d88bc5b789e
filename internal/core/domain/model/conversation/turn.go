package conversation

import "time"

// Role identifies who produced a turn.
type Role string

const (
	// RoleUser marks a turn written by the customer.
	RoleUser Role = "user"

	// RoleAssistant marks a reply produced by the service.
	RoleAssistant Role = "assistant"
)

// Source identifies which collaborator produced an assistant reply.
type Source string

const (
	// SourceLogistics marks replies resolved from order data.
	SourceLogistics Source = "logistics"

	// SourceGenerative marks replies produced by the generative responder.
	SourceGenerative Source = "generative"

	// SourceUnknown marks turns with no attributed source, such as user turns.
	SourceUnknown Source = "unknown"
)

// Turn is one recorded message in a conversation: either the customer's
// question or the service's reply.
type Turn struct {
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	Source    Source    `json:"source"`
}
