// Package service implements the per-turn chat pipeline: session state,
// intent detection, lead scoring, and response resolution.
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/leadpilot-ai/chatbot-platform/internal/events"
	"github.com/leadpilot-ai/chatbot-platform/internal/intent"
	"github.com/leadpilot-ai/chatbot-platform/internal/middleware"
	"github.com/leadpilot-ai/chatbot-platform/internal/model"
	"github.com/leadpilot-ai/chatbot-platform/internal/respond"
	"github.com/leadpilot-ai/chatbot-platform/internal/scoring"
	"github.com/leadpilot-ai/chatbot-platform/internal/session"
	"github.com/leadpilot-ai/chatbot-platform/internal/tenant"
	"github.com/leadpilot-ai/chatbot-platform/pkg/logger"
	"github.com/leadpilot-ai/chatbot-platform/pkg/metrics"
)

// ChatService runs the turn pipeline for every inbound message.
type ChatService struct {
	registry  *tenant.Registry
	sessions  *session.Store
	detector  *intent.Detector
	scorer    *scoring.Scorer
	generator *respond.Generator
	events    events.Publisher
	logger    *logger.Logger
}

// NewChatService wires the pipeline together.
func NewChatService(
	registry *tenant.Registry,
	sessions *session.Store,
	detector *intent.Detector,
	scorer *scoring.Scorer,
	generator *respond.Generator,
	publisher events.Publisher,
	log *logger.Logger,
) *ChatService {
	return &ChatService{
		registry:  registry,
		sessions:  sessions,
		detector:  detector,
		scorer:    scorer,
		generator: generator,
		events:    publisher,
		logger:    log,
	}
}

// Process runs one chat turn. It is total: any internal panic degrades to
// the tenant's static fallback envelope rather than an error.
func (s *ChatService) Process(ctx context.Context, clientID, sessionID, message string) (resp *model.ChatResponse) {
	cfg := s.registry.Get(clientID)
	log := s.logger.WithChat(middleware.GetCorrelationID(ctx), cfg.ClientID, sessionID)

	defer func() {
		if r := recover(); r != nil {
			log.Error("chat turn panicked, returning fallback", zap.Any("panic", r))
			resp = fallbackResponse(sessionID, cfg)
		}
	}()

	sess, created := s.sessions.GetOrCreate(sessionID, cfg.ClientID)
	if created {
		metrics.SessionsActive.Set(float64(s.sessions.Len()))
	}

	// Same-session turns serialize here; concurrent sessions proceed in
	// parallel.
	sess.Lock()
	defer sess.Unlock()

	state := &sess.State
	now := time.Now()
	state.AppendMessage(message, model.SenderUser, now)

	intentResult := s.detector.Detect(message, state, cfg)
	scoreResult := s.scorer.Score(message, state, cfg)

	prevScore := state.LeadScore
	scoring.Apply(state, scoreResult)
	state.DetectedIntents = append(state.DetectedIntents, intentResult.Intent)
	extractProfile(message, &state.Profile)

	result := s.generator.Generate(ctx, message, intentResult, scoreResult, state, cfg)

	state.MessageCount++
	state.Stage = nextStage(state.MessageCount, state.LeadScore)
	state.AppendMessage(result.Text, model.SenderBot, time.Now())

	metrics.RecordChatTurn(cfg.ClientID, intentResult.Intent, scoreResult.Score)
	metrics.ResponseSourceTotal.WithLabelValues(cfg.ClientID, string(result.Source)).Inc()

	threshold := cfg.QualifiedThreshold()
	if prevScore < threshold && state.LeadScore >= threshold {
		s.publishLead(ctx, log, state, intentResult.Intent)
	}

	log.Info("chat turn processed",
		zap.String("intent", intentResult.Intent),
		zap.Int("lead_score", scoreResult.Score),
		zap.String("source", string(result.Source)),
	)

	return &model.ChatResponse{
		Response:   result.Text,
		SessionID:  sessionID,
		LeadScore:  scoreResult.Score,
		Intent:     intentResult.Intent,
		Confidence: intentResult.Confidence,
		AIData: model.AIData{
			LeadScore:  scoreResult.Score,
			Intent:     intentResult.Intent,
			Confidence: intentResult.Confidence,
			Reasoning:  scoreResult.Reasoning,
		},
	}
}

func (s *ChatService) publishLead(ctx context.Context, log *logger.Logger, state *model.ConversationState, detectedIntent string) {
	event := &events.LeadEvent{
		ClientID:  state.ClientID,
		SessionID: state.SessionID,
		Score:     state.LeadScore,
		Intent:    detectedIntent,
		Stage:     string(state.Stage),
		Timestamp: time.Now(),
	}
	if err := s.events.PublishQualifiedLead(ctx, event); err != nil {
		log.Warn("failed to publish qualified lead", zap.Error(err))
	}
}

func fallbackResponse(sessionID string, cfg *tenant.ClientConfig) *model.ChatResponse {
	text := respond.Fallback(cfg)
	return &model.ChatResponse{
		Response:   text,
		SessionID:  sessionID,
		LeadScore:  0,
		Intent:     model.IntentGeneralInquiry,
		Confidence: 0.3,
		AIData: model.AIData{
			LeadScore:  0,
			Intent:     model.IntentGeneralInquiry,
			Confidence: 0.3,
			Reasoning:  "Fallback response used",
		},
	}
}
