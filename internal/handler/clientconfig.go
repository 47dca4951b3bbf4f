package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/leadpilot-ai/chatbot-platform/internal/tenant"
)

// ClientConfigHandler serves the redacted per-client configuration view used
// by the embed widget. Contact templates, keyword rules and routing rules
// stay server-side.
type ClientConfigHandler struct {
	registry *tenant.Registry
}

// NewClientConfigHandler creates a new client config handler.
func NewClientConfigHandler(registry *tenant.Registry) *ClientConfigHandler {
	return &ClientConfigHandler{registry: registry}
}

// Get handles GET /clients/{client_id}/config. Unknown ids resolve to the
// default config view, mirroring the chat endpoint's total lookup.
func (h *ClientConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "client_id")
	cfg := h.registry.Get(clientID)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"client_id":          clientID,
		"business_name":      cfg.BusinessName,
		"industry":           cfg.Industry,
		"available_features": enabledFeatures(cfg.Features),
		"has_lead_capture":   cfg.LeadCapture != nil && cfg.LeadCapture.Enabled,
	})
}

func enabledFeatures(f tenant.AIFeatures) []string {
	features := make([]string, 0, 5)
	if f.LeadScoring {
		features = append(features, "lead_scoring")
	}
	if f.CaseAssessment {
		features = append(features, "case_assessment")
	}
	if f.DynamicResponses {
		features = append(features, "dynamic_responses")
	}
	if f.IntentDetection {
		features = append(features, "intent_detection")
	}
	if f.FollowupGeneration {
		features = append(features, "followup_generation")
	}
	return features
}
