package commands

import (
	"context"
	"log/slog"
	"time"

	"support/internal/core/application/usecases/queries"
	"support/internal/core/domain/model/conversation"
	"support/internal/core/domain/model/order"
	"support/internal/core/domain/services"
	"support/internal/core/ports"
	"support/internal/pkg/metrics"
)

// Static replies used when a collaborator cannot produce an answer.
// Collaborator failures are logged but never surfaced to the customer:
// the user-facing contract is "always produce a reply".
const (
	generativeFallbackMessage = "I'm here to help! For order tracking, please provide your " +
		"order number. For other questions, I'll do my best to assist you."
	logisticsFallbackMessage = "Sorry, I couldn't check your order right now. " +
		"Please try again in a moment."
)

// defaultReplyTimeout bounds the generative collaborator call when the
// caller did not configure one.
const defaultReplyTimeout = 10 * time.Second

// HandleTurnResponse is the reply envelope for one handled turn.
type HandleTurnResponse struct {
	Message   string
	Source    conversation.Source
	Succeeded bool
	Order     *order.ResolvedOrderView
	Orders    []order.ResolvedOrderView
}

// HandleTurnCommandHandler is the top-level entry point of the pipeline.
// It records the customer turn, classifies intent, dispatches to the
// logistics resolver or the generative responder, records the reply, and
// emits a turn outcome event.
//
// The generative responder and the event publisher are optional: a nil
// responder always takes the static fallback path, and a nil publisher
// disables event emission.
type HandleTurnCommandHandler struct {
	sessions     *conversation.Registry
	classifier   services.IntentClassifier
	resolver     LogisticsResolver
	responder    ports.GenerativeResponder
	publisher    ports.TurnEventPublisher
	metrics      *metrics.Metrics
	logger       *slog.Logger
	replyTimeout time.Duration
}

// NewHandleTurnCommandHandler creates the orchestrating handler.
// replyTimeout bounds each generative call; zero selects the default.
func NewHandleTurnCommandHandler(
	sessions *conversation.Registry,
	classifier services.IntentClassifier,
	resolver LogisticsResolver,
	responder ports.GenerativeResponder,
	publisher ports.TurnEventPublisher,
	m *metrics.Metrics,
	logger *slog.Logger,
	replyTimeout time.Duration,
) HandleTurnCommandHandler {
	if replyTimeout <= 0 {
		replyTimeout = defaultReplyTimeout
	}
	return HandleTurnCommandHandler{
		sessions:     sessions,
		classifier:   classifier,
		resolver:     resolver,
		responder:    responder,
		publisher:    publisher,
		metrics:      m,
		logger:       logger.With("component", "conversation_orchestrator"),
		replyTimeout: replyTimeout,
	}
}

// Handle processes one customer turn and returns the reply envelope.
// After the call the session history has grown by exactly two turns: the
// customer's message and the reply.
func (h HandleTurnCommandHandler) Handle(ctx context.Context, cmd HandleTurnCommand) (HandleTurnResponse, error) {
	if err := cmd.Validate(); err != nil {
		return HandleTurnResponse{}, err
	}

	session := h.sessions.GetOrCreate(cmd.SessionID())
	session.AppendUserTurn(cmd.Text(), time.Now())

	intent := h.classifier.Classify(cmd.Text())

	var (
		response HandleTurnResponse
		fallback bool
	)
	if intent == services.IntentOrderRelated {
		response, fallback = h.resolveLogistics(ctx, cmd.Text())
	} else {
		response, fallback = h.resolveGenerative(ctx, cmd.Text())
	}

	session.AppendAssistantTurn(response.Message, response.Source, time.Now())

	if h.metrics != nil {
		h.metrics.TurnsTotal.WithLabelValues(string(response.Source)).Inc()
		h.metrics.ActiveSessions.Set(float64(h.sessions.Len()))
	}
	h.publishTurn(ctx, cmd, intent, response, fallback)

	return response, nil
}

func (h HandleTurnCommandHandler) resolveLogistics(ctx context.Context, text string) (HandleTurnResponse, bool) {
	query, err := queries.NewResolveLogisticsQuery(text)
	if err != nil {
		// Command validation already rejected empty text; treat a
		// construction failure like any other resolver fault.
		h.logger.ErrorContext(ctx, "logistics query construction failed", "error", err)
		return HandleTurnResponse{
			Message:   logisticsFallbackMessage,
			Source:    conversation.SourceLogistics,
			Succeeded: true,
		}, true
	}

	resolution, err := h.resolver.Handle(ctx, query)
	if err != nil {
		h.logger.ErrorContext(ctx, "logistics resolution failed", "error", err)
		return HandleTurnResponse{
			Message:   logisticsFallbackMessage,
			Source:    conversation.SourceLogistics,
			Succeeded: true,
		}, true
	}

	return HandleTurnResponse{
		Message:   resolution.Message,
		Source:    conversation.SourceLogistics,
		Succeeded: resolution.Succeeded,
		Order:     resolution.Order,
		Orders:    resolution.Orders,
	}, false
}

func (h HandleTurnCommandHandler) resolveGenerative(ctx context.Context, text string) (HandleTurnResponse, bool) {
	if h.responder == nil {
		return h.generativeFallback(ctx, nil)
	}

	replyCtx, cancel := context.WithTimeout(ctx, h.replyTimeout)
	defer cancel()

	reply, err := h.responder.Reply(replyCtx, text)
	if err != nil {
		return h.generativeFallback(ctx, err)
	}

	return HandleTurnResponse{
		Message:   reply,
		Source:    conversation.SourceGenerative,
		Succeeded: true,
	}, false
}

func (h HandleTurnCommandHandler) generativeFallback(ctx context.Context, cause error) (HandleTurnResponse, bool) {
	if cause != nil {
		h.logger.WarnContext(ctx, "generative responder failed, using fallback", "error", cause)
	}
	if h.metrics != nil {
		h.metrics.GenerativeFallbacks.Inc()
	}
	return HandleTurnResponse{
		Message:   generativeFallbackMessage,
		Source:    conversation.SourceGenerative,
		Succeeded: true,
	}, true
}

func (h HandleTurnCommandHandler) publishTurn(
	ctx context.Context,
	cmd HandleTurnCommand,
	intent services.Intent,
	response HandleTurnResponse,
	fallback bool,
) {
	if h.publisher == nil {
		return
	}

	event := ports.TurnEvent{
		SessionID: cmd.SessionID().String(),
		Intent:    string(intent),
		Source:    string(response.Source),
		Succeeded: response.Succeeded,
		Fallback:  fallback,
		Timestamp: time.Now(),
	}
	if err := h.publisher.PublishTurn(ctx, event); err != nil {
		h.logger.WarnContext(ctx, "turn event publish failed", "error", err)
	}
}
