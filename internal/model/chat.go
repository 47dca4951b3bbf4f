// Package model defines data structures for the chatbot platform.
package model

// ChatRequest is the body of POST /chat. The camelCase aliases are accepted
// for compatibility with older widget embeds.
type ChatRequest struct {
	Message        string `json:"message"`
	ClientID       string `json:"client_id,omitempty"`
	ClientIDAlt    string `json:"clientId,omitempty"`
	SessionID      string `json:"session_id,omitempty"`
	SessionIDAlt   string `json:"sessionId,omitempty"`
	ConversationID string `json:"conversationId,omitempty"`
}

// ResolveClientID returns the client id, preferring the snake_case field.
func (r *ChatRequest) ResolveClientID() string {
	if r.ClientID != "" {
		return r.ClientID
	}
	return r.ClientIDAlt
}

// ResolveSessionID returns the session id across all accepted aliases.
func (r *ChatRequest) ResolveSessionID() string {
	if r.SessionID != "" {
		return r.SessionID
	}
	if r.SessionIDAlt != "" {
		return r.SessionIDAlt
	}
	return r.ConversationID
}

// AIData carries the scoring breakdown returned alongside the reply.
type AIData struct {
	LeadScore  int     `json:"lead_score"`
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// ChatResponse is the envelope returned by POST /chat.
type ChatResponse struct {
	Response   string  `json:"response"`
	SessionID  string  `json:"session_id"`
	LeadScore  int     `json:"lead_score"`
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
	AIData     AIData  `json:"aiData"`
}
