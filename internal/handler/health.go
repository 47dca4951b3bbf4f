package handler

import (
	"net/http"
	"time"

	"github.com/leadpilot-ai/chatbot-platform/internal/events"
	"github.com/leadpilot-ai/chatbot-platform/internal/session"
	"github.com/leadpilot-ai/chatbot-platform/internal/tenant"
)

// ServiceName identifies this service in health responses.
const ServiceName = "tier2-chatbot"

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	registry *tenant.Registry
	sessions *session.Store
	events   events.Publisher
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(registry *tenant.Registry, sessions *session.Store, publisher events.Publisher) *HealthHandler {
	return &HealthHandler{registry: registry, sessions: sessions, events: publisher}
}

// Health handles GET /health.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":            "healthy",
		"service":           ServiceName,
		"timestamp":         time.Now().UTC().Format(time.RFC3339),
		"available_clients": h.registry.IDs(),
		"active_sessions":   h.sessions.Len(),
		"lead_events":       h.leadEventsStatus(),
		"features": []string{
			"Lead Scoring",
			"Intent Detection",
			"Enhanced Processing",
			"Session Management",
		},
	})
}

// leadEventsStatus reports the lead event pipeline: "disabled" when the
// noop publisher is wired, otherwise the live connection state.
func (h *HealthHandler) leadEventsStatus() string {
	c, ok := h.events.(interface{ IsConnected() bool })
	if !ok {
		return "disabled"
	}
	if c.IsConnected() {
		return "connected"
	}
	return "disconnected"
}

// Root handles GET /.
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":             "Tier 2 chatbot service is running!",
		"available_endpoints": []string{"/chat", "/health", "/clients/{client_id}/config", "/metrics"},
		"available_clients":   h.registry.IDs(),
		"features": []string{
			"Lead Scoring",
			"Intent Detection",
			"Enhanced Processing",
			"Session Management",
		},
	})
}
