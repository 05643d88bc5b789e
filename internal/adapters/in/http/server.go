// Package http exposes the conversational support API over Echo.
//
// Sessions are addressed with the X-Session-ID header. A request without
// one starts a fresh conversation; the assigned ID is always echoed back so
// the client can carry it forward.
package http

import (
	"errors"
	"net/http"

	"support/internal/core/application/usecases/commands"
	"support/internal/core/application/usecases/queries"
	"support/internal/core/domain/model/conversation"
	"support/internal/pkg/metrics"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderSessionID carries the conversation session identifier.
const HeaderSessionID = "X-Session-ID"

const (
	serviceName    = "Smart Customer Support Agent"
	serviceVersion = "1.0.0"

	timestampLayout = "2006-01-02 15:04:05"
)

const greetingMessage = `Hello! I'm your Smart Customer Support Assistant.

I can help you with:
- Order tracking (e.g., "Where is my order #123?")
- Delivery status updates
- Product inquiries
- General support questions

How can I assist you today?`

var sampleQueries = []string{
	"Where is my order #1?",
	"What's the status of my order #2?",
	"When will my earbuds arrive?",
	"Track my delivery",
	"Who are you?",
	"What's your return policy?",
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	handleTurnHandler   commands.HandleTurnCommandHandler
	clearHistoryHandler commands.ClearHistoryCommandHandler

	// Query handlers
	getHistoryHandler queries.GetHistoryQueryHandler

	metrics *metrics.Metrics
}

// NewServer creates a new HTTP server with the required command and query
// handlers. metrics may be nil; the /metrics route is then not registered.
func NewServer(
	handleTurnHandler commands.HandleTurnCommandHandler,
	clearHistoryHandler commands.ClearHistoryCommandHandler,
	getHistoryHandler queries.GetHistoryQueryHandler,
	m *metrics.Metrics,
) *Server {
	return &Server{
		handleTurnHandler:   handleTurnHandler,
		clearHistoryHandler: clearHistoryHandler,
		getHistoryHandler:   getHistoryHandler,
		metrics:             m,
	}
}

// RegisterRoutes attaches all API routes to the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/chat", s.Chat)
	e.GET("/history", s.GetHistory)
	e.POST("/clear", s.ClearHistory)
	e.GET("/greeting", s.GetGreeting)
	e.GET("/health", s.HealthCheck)
	if s.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(s.metrics.Handler()))
	}
}

// Chat handles POST /chat - processes one customer message.
func (s *Server) Chat(ctx echo.Context) error {
	sessionID := s.sessionID(ctx)

	var request ChatRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewHandleTurnCommand(sessionID, request.Message)
	if err != nil {
		if errors.Is(err, commands.ErrMessageIsRequired) {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Message: "Please enter a message.",
			})
		}
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid chat request: " + err.Error(),
		})
	}

	response, err := s.handleTurnHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Sorry, I encountered an error while processing your request. Please try again.",
		})
	}

	var data *ChatData
	if response.Order != nil || len(response.Orders) > 0 {
		data = &ChatData{
			Order:  response.Order,
			Orders: response.Orders,
		}
	}

	return ctx.JSON(http.StatusOK, ChatResponse{
		Success: true,
		Message: response.Message,
		Source:  string(response.Source),
		Data:    data,
	})
}

// GetHistory handles GET /history - returns the session's conversation
// history. An unknown session yields an empty history.
func (s *Server) GetHistory(ctx echo.Context) error {
	sessionID := s.sessionID(ctx)

	query, err := queries.NewGetHistoryQuery(sessionID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid session: " + err.Error(),
		})
	}

	turns, err := s.getHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Failed to retrieve history",
		})
	}

	history := make([]HistoryEntry, len(turns))
	for i, turn := range turns {
		entry := HistoryEntry{
			Type:      string(turn.Role),
			Message:   turn.Text,
			Timestamp: turn.Timestamp.Format(timestampLayout),
		}
		if turn.Role == conversation.RoleAssistant {
			entry.Source = string(turn.Source)
		}
		history[i] = entry
	}

	return ctx.JSON(http.StatusOK, HistoryResponse{
		Success: true,
		History: history,
	})
}

// ClearHistory handles POST /clear - resets the session's conversation.
func (s *Server) ClearHistory(ctx echo.Context) error {
	sessionID := s.sessionID(ctx)

	cmd, err := commands.NewClearHistoryCommand(sessionID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid session: " + err.Error(),
		})
	}

	if err = s.clearHistoryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Error clearing history.",
		})
	}

	return ctx.JSON(http.StatusOK, ClearResponse{
		Success: true,
		Message: "Conversation history cleared.",
	})
}

// GetGreeting handles GET /greeting - returns the welcome message and
// sample queries for a fresh conversation.
func (s *Server) GetGreeting(ctx echo.Context) error {
	s.sessionID(ctx)

	return ctx.JSON(http.StatusOK, GreetingResponse{
		Success:       true,
		Greeting:      greetingMessage,
		SampleQueries: sampleQueries,
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: serviceName,
		Version: serviceVersion,
	})
}

// sessionID resolves the conversation session for the request and echoes it
// in the response header, assigning a fresh one when the header is absent
// or malformed.
func (s *Server) sessionID(ctx echo.Context) uuid.UUID {
	id, err := uuid.Parse(ctx.Request().Header.Get(HeaderSessionID))
	if err != nil {
		id = uuid.New()
	}
	ctx.Response().Header().Set(HeaderSessionID, id.String())
	return id
}
