// Package events publishes qualified-lead notifications for downstream
// consumers such as CRM sync and routing workers.
package events

import (
	"context"
	"time"
)

// LeadEvent is emitted when a session's lead score first crosses the
// tenant's qualification threshold.
type LeadEvent struct {
	ClientID  string    `json:"client_id"`
	SessionID string    `json:"session_id"`
	Score     int       `json:"score"`
	Intent    string    `json:"intent"`
	Stage     string    `json:"stage"`
	Timestamp time.Time `json:"timestamp"`
}

// Publisher emits lead events. Implementations must be safe for concurrent
// use.
type Publisher interface {
	PublishQualifiedLead(ctx context.Context, event *LeadEvent) error
	Close()
}

// NoopPublisher discards all events. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishQualifiedLead(context.Context, *LeadEvent) error { return nil }
func (NoopPublisher) Close()                                                 {}
