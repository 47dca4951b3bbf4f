// Package handler implements the HTTP handlers for the chatbot API.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/leadpilot-ai/chatbot-platform/internal/middleware"
	"github.com/leadpilot-ai/chatbot-platform/internal/model"
	"github.com/leadpilot-ai/chatbot-platform/internal/service"
	"github.com/leadpilot-ai/chatbot-platform/pkg/logger"
)

// defaultClientID is used when a request carries no client identifier.
const defaultClientID = "default"

// ChatHandler handles chat turns.
type ChatHandler struct {
	service *service.ChatService
	logger  *logger.Logger
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(svc *service.ChatService, log *logger.Logger) *ChatHandler {
	return &ChatHandler{service: svc, logger: log}
}

// Chat handles POST /chat.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Missing message")
		return
	}

	if err := middleware.ValidateMessageContent(req.Message); err != nil {
		writeError(w, http.StatusBadRequest, "Missing message")
		return
	}

	clientID := req.ResolveClientID()
	if clientID == "" {
		clientID = defaultClientID
	}
	if err := middleware.ValidateClientID(clientID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sessionID := req.ResolveSessionID()
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	resp := h.service.Process(r.Context(), clientID, sessionID, req.Message)
	if resp == nil {
		h.logger.Error("chat service returned no response",
			zap.String("client_id", clientID),
			zap.String("session_id", sessionID),
		)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
