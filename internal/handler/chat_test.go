package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadpilot-ai/chatbot-platform/internal/events"
	"github.com/leadpilot-ai/chatbot-platform/internal/intent"
	"github.com/leadpilot-ai/chatbot-platform/internal/model"
	"github.com/leadpilot-ai/chatbot-platform/internal/respond"
	"github.com/leadpilot-ai/chatbot-platform/internal/scoring"
	"github.com/leadpilot-ai/chatbot-platform/internal/service"
	"github.com/leadpilot-ai/chatbot-platform/internal/session"
	"github.com/leadpilot-ai/chatbot-platform/internal/tenant"
	"github.com/leadpilot-ai/chatbot-platform/pkg/logger"
)

func newTestRouter() http.Handler {
	log := logger.NewNop()
	registry := tenant.NewRegistry()
	sessions := session.NewStore()
	gen := respond.NewGenerator(nil, 0, nil, log)
	svc := service.NewChatService(registry, sessions, intent.NewDetector(), scoring.NewScorer(), gen, events.NoopPublisher{}, log)

	r := chi.NewRouter()
	r.NotFound(NotFound)

	chatHandler := NewChatHandler(svc, log)
	healthHandler := NewHealthHandler(registry, sessions, events.NoopPublisher{})
	configHandler := NewClientConfigHandler(registry)

	r.Get("/", healthHandler.Root)
	r.Get("/health", healthHandler.Health)
	r.Post("/chat", chatHandler.Chat)
	r.Get("/clients/{client_id}/config", configHandler.Get)
	return r
}

func postChat(t *testing.T, router http.Handler, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestChatMissingMessage(t *testing.T) {
	router := newTestRouter()

	rec := postChat(t, router, map[string]interface{}{"client_id": "real-estate-demo"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Missing message", body["error"])
}

func TestChatInvalidBody(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatEnvelope(t *testing.T) {
	router := newTestRouter()

	rec := postChat(t, router, map[string]interface{}{
		"message":    "I'm looking for a 3 bedroom house, my budget is around $400k and I need to move soon",
		"client_id":  "real-estate-demo",
		"session_id": "sess-1",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp model.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "sess-1", resp.SessionID)
	assert.Equal(t, 45, resp.LeadScore)
	assert.Equal(t, "PROPERTY_SEARCH", resp.Intent)
	assert.NotEmpty(t, resp.Response)
	assert.Equal(t, 45, resp.AIData.LeadScore)
}

func TestChatCamelCaseAliases(t *testing.T) {
	router := newTestRouter()

	rec := postChat(t, router, map[string]interface{}{
		"message":        "hello",
		"clientId":       "ecommerce-demo",
		"conversationId": "conv-9",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp model.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "conv-9", resp.SessionID)
}

func TestChatGeneratesSessionID(t *testing.T) {
	router := newTestRouter()

	rec := postChat(t, router, map[string]interface{}{"message": "hello"})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp model.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.SessionID)
}

func TestChatUnknownClientStillAnswers(t *testing.T) {
	router := newTestRouter()

	rec := postChat(t, router, map[string]interface{}{
		"message":   "unusual question xyz",
		"client_id": "no-such-tenant",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp model.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Response, "Thank you for reaching out!")
}

func TestHealth(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, ServiceName, body["service"])
	assert.NotEmpty(t, body["available_clients"])
	assert.Equal(t, "disabled", body["lead_events"])
}

func TestRoot(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestClientConfigRedacted(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/clients/real-estate-demo/config", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "real-estate-demo", body["client_id"])
	assert.Equal(t, "Dream Homes Realty", body["business_name"])
	assert.NotContains(t, body, "rules")
	assert.NotContains(t, body, "contact")
}

func TestClientConfigUnknownResolvesToDefault(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/clients/ghost/config", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ghost", body["client_id"])
	assert.Equal(t, "general", body["industry"])
}

func TestNotFoundRoute(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Not found", body["error"])
}
