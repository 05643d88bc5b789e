package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"support/internal/core/application/usecases/commands"
	"support/internal/core/application/usecases/queries"
	"support/internal/core/domain/model/conversation"
	"support/internal/core/domain/model/kernel"
	"support/internal/core/domain/model/order"
	"support/internal/core/domain/services"
	"support/internal/core/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockLogisticsResolver mocks the resolver collaborator.
type MockLogisticsResolver struct {
	mock.Mock
}

func (m *MockLogisticsResolver) Handle(
	ctx context.Context,
	query queries.ResolveLogisticsQuery,
) (queries.Resolution, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.Resolution), args.Error(1)
}

// MockGenerativeResponder mocks the generative collaborator.
type MockGenerativeResponder struct {
	mock.Mock
}

func (m *MockGenerativeResponder) Reply(ctx context.Context, userText string) (string, error) {
	args := m.Called(ctx, userText)
	return args.String(0), args.Error(1)
}

// MockTurnEventPublisher mocks the turn event publisher.
type MockTurnEventPublisher struct {
	mock.Mock
}

func (m *MockTurnEventPublisher) PublishTurn(ctx context.Context, event ports.TurnEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type handlerFixture struct {
	sessions  *conversation.Registry
	resolver  *MockLogisticsResolver
	responder *MockGenerativeResponder
	publisher *MockTurnEventPublisher
	handler   commands.HandleTurnCommandHandler
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	fixture := &handlerFixture{
		sessions:  conversation.NewRegistry(),
		resolver:  &MockLogisticsResolver{},
		responder: &MockGenerativeResponder{},
		publisher: &MockTurnEventPublisher{},
	}
	classifier := services.NewIntentClassifier(
		services.NewProductMatcher(services.DefaultVocabulary()),
	)
	fixture.handler = commands.NewHandleTurnCommandHandler(
		fixture.sessions,
		classifier,
		fixture.resolver,
		fixture.responder,
		fixture.publisher,
		nil,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		time.Second,
	)
	return fixture
}

func mustTurnCommand(t *testing.T, sessionID uuid.UUID, text string) commands.HandleTurnCommand {
	t.Helper()
	cmd, err := commands.NewHandleTurnCommand(sessionID, text)
	require.NoError(t, err)
	return cmd
}

func TestHandleTurnCommandHandler_OrderRelatedGoesToResolver(t *testing.T) {
	// Given
	fixture := newHandlerFixture(t)
	orderID, err := kernel.NewOrderID(1)
	require.NoError(t, err)
	view, err := order.NewResolvedOrderView(orderID, "Wireless Earbuds", order.StatusInTransit)
	require.NoError(t, err)
	view.ExpectedDate = "2024-01-10"
	resolution := queries.Resolution{
		Succeeded: true,
		Message:   "Your Wireless Earbuds (Order #1) is currently in transit.",
		Order:     &view,
	}
	fixture.resolver.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ResolveLogisticsQuery) bool {
		return q.Text() == "Where is my order #1?"
	})).Return(resolution, nil).Once()
	fixture.publisher.On("PublishTurn", mock.Anything, mock.Anything).Return(nil).Once()

	// When
	sessionID := uuid.New()
	response, err := fixture.handler.Handle(
		t.Context(), mustTurnCommand(t, sessionID, "Where is my order #1?"),
	)

	// Then
	require.NoError(t, err)
	assert.Equal(t, resolution.Message, response.Message)
	assert.Equal(t, conversation.SourceLogistics, response.Source)
	assert.True(t, response.Succeeded)
	require.NotNil(t, response.Order)
	assert.Equal(t, "Wireless Earbuds", response.Order.ProductName)
	fixture.resolver.AssertExpectations(t)
	fixture.responder.AssertNotCalled(t, "Reply", mock.Anything, mock.Anything)
	fixture.publisher.AssertExpectations(t)
}

func TestHandleTurnCommandHandler_GeneralGoesToResponder(t *testing.T) {
	// Given
	fixture := newHandlerFixture(t)
	fixture.responder.
		On("Reply", mock.Anything, "What's your return policy?").
		Return("Returns are accepted within 30 days.", nil).
		Once()
	fixture.publisher.On("PublishTurn", mock.Anything, mock.Anything).Return(nil).Once()

	// When
	response, err := fixture.handler.Handle(
		t.Context(), mustTurnCommand(t, uuid.New(), "What's your return policy?"),
	)

	// Then
	require.NoError(t, err)
	assert.Equal(t, "Returns are accepted within 30 days.", response.Message)
	assert.Equal(t, conversation.SourceGenerative, response.Source)
	assert.True(t, response.Succeeded)
	fixture.resolver.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	fixture.responder.AssertExpectations(t)
}

func TestHandleTurnCommandHandler_ResolverFailureIsMasked(t *testing.T) {
	// Given
	fixture := newHandlerFixture(t)
	fixture.resolver.
		On("Handle", mock.Anything, mock.Anything).
		Return(queries.Resolution{}, errors.New("connection refused")).
		Once()
	fixture.publisher.On("PublishTurn", mock.Anything, mock.MatchedBy(func(event ports.TurnEvent) bool {
		return event.Fallback && event.Succeeded
	})).Return(nil).Once()

	// When
	response, err := fixture.handler.Handle(
		t.Context(), mustTurnCommand(t, uuid.New(), "where is my package"),
	)

	// Then: the customer sees a calm static reply, never the error.
	require.NoError(t, err)
	assert.Equal(
		t,
		"Sorry, I couldn't check your order right now. Please try again in a moment.",
		response.Message,
	)
	assert.Equal(t, conversation.SourceLogistics, response.Source)
	assert.True(t, response.Succeeded)
	fixture.publisher.AssertExpectations(t)
}

func TestHandleTurnCommandHandler_ResponderFailureFallsBack(t *testing.T) {
	// Given
	fixture := newHandlerFixture(t)
	fixture.responder.
		On("Reply", mock.Anything, "Tell me a joke").
		Return("", errors.New("upstream timeout")).
		Once()
	fixture.publisher.On("PublishTurn", mock.Anything, mock.Anything).Return(nil).Once()

	// When
	response, err := fixture.handler.Handle(
		t.Context(), mustTurnCommand(t, uuid.New(), "Tell me a joke"),
	)

	// Then
	require.NoError(t, err)
	assert.Equal(
		t,
		"I'm here to help! For order tracking, please provide your order number. "+
			"For other questions, I'll do my best to assist you.",
		response.Message,
	)
	assert.Equal(t, conversation.SourceGenerative, response.Source)
	assert.True(t, response.Succeeded)
}

func TestHandleTurnCommandHandler_NilResponderUsesFallback(t *testing.T) {
	// Given: no generative responder configured at all.
	sessions := conversation.NewRegistry()
	classifier := services.NewIntentClassifier(
		services.NewProductMatcher(services.DefaultVocabulary()),
	)
	resolver := &MockLogisticsResolver{}
	handler := commands.NewHandleTurnCommandHandler(
		sessions, classifier, resolver, nil, nil, nil,
		slog.New(slog.NewTextHandler(io.Discard, nil)), 0,
	)

	// When
	response, err := handler.Handle(
		t.Context(), mustTurnCommand(t, uuid.New(), "Who are you?"),
	)

	// Then
	require.NoError(t, err)
	assert.Equal(t, conversation.SourceGenerative, response.Source)
	assert.Contains(t, response.Message, "I'm here to help!")
	assert.True(t, response.Succeeded)
	resolver.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestHandleTurnCommandHandler_HistoryGrowsByTwoPerTurn(t *testing.T) {
	// Given
	fixture := newHandlerFixture(t)
	fixture.resolver.
		On("Handle", mock.Anything, mock.Anything).
		Return(queries.Resolution{Succeeded: true, Message: "reply"}, nil)
	fixture.responder.
		On("Reply", mock.Anything, mock.Anything).
		Return("generative reply", nil)
	fixture.publisher.On("PublishTurn", mock.Anything, mock.Anything).Return(nil)

	sessionID := uuid.New()
	messages := []string{"where is order #1", "hello there", "track my package"}

	// When
	for _, message := range messages {
		_, err := fixture.handler.Handle(t.Context(), mustTurnCommand(t, sessionID, message))
		require.NoError(t, err)
	}

	// Then: user and assistant turns strictly alternate in order.
	session, ok := fixture.sessions.Get(sessionID)
	require.True(t, ok)
	history := session.History()
	require.Len(t, history, 2*len(messages))
	for i, turn := range history {
		if i%2 == 0 {
			assert.Equal(t, conversation.RoleUser, turn.Role)
			assert.Equal(t, messages[i/2], turn.Text)
		} else {
			assert.Equal(t, conversation.RoleAssistant, turn.Role)
		}
	}
}

func TestHandleTurnCommandHandler_SessionsAreIsolated(t *testing.T) {
	// Given
	fixture := newHandlerFixture(t)
	fixture.responder.On("Reply", mock.Anything, mock.Anything).Return("hi", nil)
	fixture.publisher.On("PublishTurn", mock.Anything, mock.Anything).Return(nil)

	first := uuid.New()
	second := uuid.New()

	// When
	_, err := fixture.handler.Handle(t.Context(), mustTurnCommand(t, first, "hello"))
	require.NoError(t, err)
	_, err = fixture.handler.Handle(t.Context(), mustTurnCommand(t, second, "good morning"))
	require.NoError(t, err)

	// Then
	firstSession, ok := fixture.sessions.Get(first)
	require.True(t, ok)
	secondSession, ok := fixture.sessions.Get(second)
	require.True(t, ok)
	assert.Equal(t, 2, firstSession.Len())
	assert.Equal(t, 2, secondSession.Len())
	assert.Equal(t, "hello", firstSession.History()[0].Text)
	assert.Equal(t, "good morning", secondSession.History()[0].Text)
}

func TestHandleTurnCommandHandler_PublisherFailureIsIgnored(t *testing.T) {
	// Given
	fixture := newHandlerFixture(t)
	fixture.responder.On("Reply", mock.Anything, mock.Anything).Return("hi", nil).Once()
	fixture.publisher.
		On("PublishTurn", mock.Anything, mock.Anything).
		Return(errors.New("broker unavailable")).
		Once()

	// When
	response, err := fixture.handler.Handle(
		t.Context(), mustTurnCommand(t, uuid.New(), "hello"),
	)

	// Then
	require.NoError(t, err)
	assert.Equal(t, "hi", response.Message)
}

func TestHandleTurnCommandHandler_NotConstructedCommand(t *testing.T) {
	fixture := newHandlerFixture(t)

	_, err := fixture.handler.Handle(t.Context(), commands.HandleTurnCommand{})
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrHandleTurnCommandIsNotConstructed)
}

func TestClearHistoryCommandHandler_ResetsSession(t *testing.T) {
	// Given
	fixture := newHandlerFixture(t)
	fixture.responder.On("Reply", mock.Anything, mock.Anything).Return("hi", nil)
	fixture.publisher.On("PublishTurn", mock.Anything, mock.Anything).Return(nil)

	sessionID := uuid.New()
	_, err := fixture.handler.Handle(t.Context(), mustTurnCommand(t, sessionID, "hello"))
	require.NoError(t, err)

	clearHandler := commands.NewClearHistoryCommandHandler(fixture.sessions)
	clearCmd, err := commands.NewClearHistoryCommand(sessionID)
	require.NoError(t, err)

	// When
	require.NoError(t, clearHandler.Handle(t.Context(), clearCmd))

	// Then: history is empty and the next turn starts a fresh sequence.
	session, ok := fixture.sessions.Get(sessionID)
	require.True(t, ok)
	assert.Equal(t, 0, session.Len())

	_, err = fixture.handler.Handle(t.Context(), mustTurnCommand(t, sessionID, "are you there?"))
	require.NoError(t, err)
	assert.Equal(t, 2, session.Len())
}

func TestClearHistoryCommandHandler_UnknownSessionIsNoOp(t *testing.T) {
	handler := commands.NewClearHistoryCommandHandler(conversation.NewRegistry())
	cmd, err := commands.NewClearHistoryCommand(uuid.New())
	require.NoError(t, err)

	assert.NoError(t, handler.Handle(t.Context(), cmd))
}
