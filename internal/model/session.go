package model

import (
	"time"
)

// Sender identifies who produced a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is one entry in a session's conversation history.
type Message struct {
	Text      string    `json:"text"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// Stage is the coarse lifecycle bucket of a conversation.
type Stage string

const (
	StageInitial       Stage = "initial"
	StageGatheringInfo Stage = "gathering_info"
	StageQualifiedLead Stage = "qualified_lead"
)

// UserProfile holds details volunteered by the user over the conversation.
// All fields are optional and filled opportunistically.
type UserProfile struct {
	Name        string   `json:"name,omitempty"`
	Email       string   `json:"email,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	Budget      string   `json:"budget,omitempty"`
	Preferences []string `json:"preferences,omitempty"`
}

// ConversationState is the per-session state tracked across turns.
// It is owned by the session store; the lead score is re-computed from the
// current message each turn, not accumulated.
type ConversationState struct {
	SessionID       string      `json:"session_id"`
	ClientID        string      `json:"client_id"`
	History         []Message   `json:"conversation_history"`
	LeadScore       int         `json:"lead_score"`
	DetectedIntents []string    `json:"detected_intents"`
	Profile         UserProfile `json:"user_profile"`
	Stage           Stage       `json:"conversation_stage"`
	LastActivity    time.Time   `json:"last_activity"`
	MessageCount    int         `json:"message_count"`
}

// AppendMessage adds a message to the history and bumps last activity.
func (s *ConversationState) AppendMessage(text string, sender Sender, at time.Time) {
	s.History = append(s.History, Message{Text: text, Sender: sender, Timestamp: at})
	s.LastActivity = at
}
