package ports

import "context"

// GenerativeResponder defines how the pipeline asks an external generative
// text service for a reply to a general (non-order) question.
//
// The collaborator is a black box: implementations send a fixed,
// brevity-oriented system instruction together with the raw user text and
// return short natural-language output. Errors from this port never reach
// the end user; the orchestrator masks them with a static fallback reply.
type GenerativeResponder interface {
	// Reply produces a short answer to the user's text. Implementations
	// must honor ctx cancellation and deadlines.
	Reply(ctx context.Context, userText string) (string, error)
}
