package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "support/internal/adapters/in/http"
	"support/internal/core/application/usecases/commands"
	"support/internal/core/application/usecases/queries"
	"support/internal/core/domain/model/conversation"
	"support/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockGenerativeResponder mocks the generative collaborator behind the API.
type MockGenerativeResponder struct {
	mock.Mock
}

func (m *MockGenerativeResponder) Reply(ctx context.Context, userText string) (string, error) {
	args := m.Called(ctx, userText)
	return args.String(0), args.Error(1)
}

// MockLogisticsResolver mocks the logistics arm behind the API.
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

type serverFixture struct {
	echo      *echo.Echo
	sessions  *conversation.Registry
	resolver  *MockLogisticsResolver
	responder *MockGenerativeResponder
}

func newServerFixture(t *testing.T) *serverFixture {
	t.Helper()

	fixture := &serverFixture{
		echo:      echo.New(),
		sessions:  conversation.NewRegistry(),
		resolver:  &MockLogisticsResolver{},
		responder: &MockGenerativeResponder{},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	classifier := services.NewIntentClassifier(
		services.NewProductMatcher(services.DefaultVocabulary()),
	)
	handleTurn := commands.NewHandleTurnCommandHandler(
		fixture.sessions, classifier, fixture.resolver, fixture.responder,
		nil, nil, logger, time.Second,
	)
	server := httpadapter.NewServer(
		handleTurn,
		commands.NewClearHistoryCommandHandler(fixture.sessions),
		queries.NewGetHistoryQueryHandler(fixture.sessions),
		nil,
	)
	server.RegisterRoutes(fixture.echo)
	return fixture
}

func (f *serverFixture) request(method, path, body, sessionID string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if sessionID != "" {
		req.Header.Set(httpadapter.HeaderSessionID, sessionID)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)
	return rec
}

func TestChat_OrderRelatedMessage(t *testing.T) {
	// Given
	fixture := newServerFixture(t)
	fixture.resolver.
		On("Handle", mock.Anything, mock.Anything).
		Return(queries.Resolution{Succeeded: true, Message: "Your order is on its way."}, nil).
		Once()

	// When
	rec := fixture.request(stdhttp.MethodPost, "/chat", `{"message": "Where is my order #1?"}`, "")

	// Then
	require.Equal(t, stdhttp.StatusOK, rec.Code)

	var response httpadapter.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, "Your order is on its way.", response.Message)
	assert.Equal(t, "logistics", response.Source)

	// A session was assigned and echoed back.
	assigned := rec.Header().Get(httpadapter.HeaderSessionID)
	_, err := uuid.Parse(assigned)
	assert.NoError(t, err)

	fixture.resolver.AssertExpectations(t)
}

func TestChat_EmptyMessageRejected(t *testing.T) {
	fixture := newServerFixture(t)

	for _, body := range []string{`{"message": ""}`, `{"message": "   "}`, `{}`} {
		rec := fixture.request(stdhttp.MethodPost, "/chat", body, "")
		require.Equal(t, stdhttp.StatusBadRequest, rec.Code)

		var response httpadapter.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.False(t, response.Success)
		assert.Equal(t, "Please enter a message.", response.Message)
	}

	fixture.resolver.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestChat_SessionHeaderIsRespected(t *testing.T) {
	// Given
	fixture := newServerFixture(t)
	fixture.responder.On("Reply", mock.Anything, mock.Anything).Return("hi", nil)

	sessionID := uuid.New().String()

	// When: two turns in the same session.
	first := fixture.request(stdhttp.MethodPost, "/chat", `{"message": "hello"}`, sessionID)
	second := fixture.request(stdhttp.MethodPost, "/chat", `{"message": "good morning"}`, sessionID)

	// Then: both land in one session, history is 2 turns per chat.
	assert.Equal(t, sessionID, first.Header().Get(httpadapter.HeaderSessionID))
	assert.Equal(t, sessionID, second.Header().Get(httpadapter.HeaderSessionID))

	session, ok := fixture.sessions.Get(uuid.MustParse(sessionID))
	require.True(t, ok)
	assert.Equal(t, 4, session.Len())
}

func TestGetHistory_ReturnsChronologicalEntries(t *testing.T) {
	// Given
	fixture := newServerFixture(t)
	fixture.responder.On("Reply", mock.Anything, "hello").Return("Hi! How can I help?", nil).Once()

	sessionID := uuid.New().String()
	fixture.request(stdhttp.MethodPost, "/chat", `{"message": "hello"}`, sessionID)

	// When
	rec := fixture.request(stdhttp.MethodGet, "/history", "", sessionID)

	// Then
	require.Equal(t, stdhttp.StatusOK, rec.Code)

	var response httpadapter.HistoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Success)
	require.Len(t, response.History, 2)
	assert.Equal(t, "user", response.History[0].Type)
	assert.Equal(t, "hello", response.History[0].Message)
	assert.Empty(t, response.History[0].Source)
	assert.Equal(t, "assistant", response.History[1].Type)
	assert.Equal(t, "Hi! How can I help?", response.History[1].Message)
	assert.Equal(t, "generative", response.History[1].Source)
}

func TestGetHistory_UnknownSessionIsEmpty(t *testing.T) {
	fixture := newServerFixture(t)

	rec := fixture.request(stdhttp.MethodGet, "/history", "", uuid.New().String())
	require.Equal(t, stdhttp.StatusOK, rec.Code)

	var response httpadapter.HistoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Empty(t, response.History)
}

func TestClearHistory_ResetsSession(t *testing.T) {
	// Given
	fixture := newServerFixture(t)
	fixture.responder.On("Reply", mock.Anything, mock.Anything).Return("hi", nil)

	sessionID := uuid.New().String()
	fixture.request(stdhttp.MethodPost, "/chat", `{"message": "hello"}`, sessionID)

	// When
	rec := fixture.request(stdhttp.MethodPost, "/clear", "", sessionID)

	// Then
	require.Equal(t, stdhttp.StatusOK, rec.Code)

	var response httpadapter.ClearResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, "Conversation history cleared.", response.Message)

	session, ok := fixture.sessions.Get(uuid.MustParse(sessionID))
	require.True(t, ok)
	assert.Equal(t, 0, session.Len())
}

func TestGetGreeting(t *testing.T) {
	fixture := newServerFixture(t)

	rec := fixture.request(stdhttp.MethodGet, "/greeting", "", "")
	require.Equal(t, stdhttp.StatusOK, rec.Code)

	var response httpadapter.GreetingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Contains(t, response.Greeting, "Smart Customer Support Assistant")
	assert.Contains(t, response.SampleQueries, "Where is my order #1?")

	// Greeting assigns a session so the client can open with it.
	_, err := uuid.Parse(rec.Header().Get(httpadapter.HeaderSessionID))
	assert.NoError(t, err)
}

func TestHealthCheck(t *testing.T) {
	fixture := newServerFixture(t)

	rec := fixture.request(stdhttp.MethodGet, "/health", "", "")
	require.Equal(t, stdhttp.StatusOK, rec.Code)

	var response httpadapter.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "healthy", response.Status)
	assert.Equal(t, "Smart Customer Support Agent", response.Service)
}
