package model

import (
	"time"
)

// Urgency grades how time-sensitive a detected intent is.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// Well-known intents shared across verticals.
const (
	IntentGeneralInquiry = "GENERAL_INQUIRY"
)

// IntentResult is the classification of a single user message. It has no
// persistent identity and is recomputed each turn.
type IntentResult struct {
	Intent     string    `json:"intent"`
	Confidence float64   `json:"confidence"`
	Reasoning  string    `json:"reasoning"`
	Urgency    Urgency   `json:"urgency"`
	Timestamp  time.Time `json:"timestamp"`
}
