package http

import "support/internal/core/domain/model/order"

// ChatRequest is the payload of POST /chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the reply envelope of POST /chat. Data carries the
// resolved order projection(s) when the logistics arm found them.
type ChatResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Source  string    `json:"source"`
	Data    *ChatData `json:"data,omitempty"`
}

// ChatData carries structured order results alongside the formatted message.
type ChatData struct {
	Order  *order.ResolvedOrderView  `json:"order,omitempty"`
	Orders []order.ResolvedOrderView `json:"orders,omitempty"`
}

// HistoryEntry is one conversation turn as exposed by GET /history.
type HistoryEntry struct {
	Type      string `json:"type"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Source    string `json:"source,omitempty"`
}

// HistoryResponse is the payload of GET /history.
type HistoryResponse struct {
	Success bool           `json:"success"`
	History []HistoryEntry `json:"history"`
}

// GreetingResponse is the payload of GET /greeting.
type GreetingResponse struct {
	Success       bool     `json:"success"`
	Greeting      string   `json:"greeting"`
	SampleQueries []string `json:"sample_queries"`
}

// ClearResponse is the payload of POST /clear.
type ClearResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HealthResponse is the payload of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// ErrorResponse is the envelope for rejected or failed requests.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
