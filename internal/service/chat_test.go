package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadpilot-ai/chatbot-platform/internal/events"
	"github.com/leadpilot-ai/chatbot-platform/internal/intent"
	"github.com/leadpilot-ai/chatbot-platform/internal/model"
	"github.com/leadpilot-ai/chatbot-platform/internal/respond"
	"github.com/leadpilot-ai/chatbot-platform/internal/scoring"
	"github.com/leadpilot-ai/chatbot-platform/internal/session"
	"github.com/leadpilot-ai/chatbot-platform/internal/tenant"
	"github.com/leadpilot-ai/chatbot-platform/pkg/logger"
)

type capturePublisher struct {
	published []*events.LeadEvent
}

func (p *capturePublisher) PublishQualifiedLead(_ context.Context, e *events.LeadEvent) error {
	p.published = append(p.published, e)
	return nil
}

func (p *capturePublisher) Close() {}

type fixedPicker struct{}

func (fixedPicker) Pick(int) int { return 0 }

func newTestService(pub events.Publisher) (*ChatService, *session.Store) {
	log := logger.NewNop()
	store := session.NewStore()
	gen := respond.NewGenerator(nil, 0, fixedPicker{}, log)
	svc := NewChatService(tenant.NewRegistry(), store, intent.NewDetector(), scoring.NewScorer(), gen, pub, log)
	return svc, store
}

func TestFirstTurn(t *testing.T) {
	svc, store := newTestService(&capturePublisher{})

	resp := svc.Process(context.Background(), "real-estate-demo", "sess-1",
		"I'm looking for a 3 bedroom house, my budget is around $400k and I need to move soon")
	require.NotNil(t, resp)

	assert.Equal(t, "sess-1", resp.SessionID)
	assert.Equal(t, 45, resp.LeadScore)
	assert.Equal(t, "PROPERTY_SEARCH", resp.Intent)
	assert.Equal(t, 0.9, resp.Confidence)
	assert.NotEmpty(t, resp.Response)
	assert.Equal(t, resp.LeadScore, resp.AIData.LeadScore)
	assert.NotEmpty(t, resp.AIData.Reasoning)

	sess, ok := store.Get("sess-1")
	require.True(t, ok)
	assert.Equal(t, model.StageInitial, sess.State.Stage)
	assert.Equal(t, 1, sess.State.MessageCount)
	assert.Len(t, sess.State.History, 2)
	assert.Equal(t, []string{"PROPERTY_SEARCH"}, sess.State.DetectedIntents)
}

func TestStageProgressionAndRegression(t *testing.T) {
	svc, store := newTestService(&capturePublisher{})
	ctx := context.Background()

	svc.Process(ctx, "real-estate-demo", "sess-1", "hello")
	sess, _ := store.Get("sess-1")
	assert.Equal(t, model.StageInitial, sess.State.Stage)

	// budget+20, soon+15, house+10, area+10, email+25 = 80
	svc.Process(ctx, "real-estate-demo", "sess-1",
		"I need a house soon in this area, budget is flexible, email me at a@b.com")
	assert.Equal(t, model.StageQualifiedLead, sess.State.Stage)

	// A later low-scoring message drops the stage again.
	svc.Process(ctx, "real-estate-demo", "sess-1", "thanks")
	assert.Equal(t, model.StageGatheringInfo, sess.State.Stage)
	assert.Equal(t, 0, sess.State.LeadScore)
}

func TestQualifiedLeadEventPublishedOnce(t *testing.T) {
	pub := &capturePublisher{}
	svc, _ := newTestService(pub)
	ctx := context.Background()

	high := "I need a house soon in this area, budget is flexible, email me at a@b.com"

	svc.Process(ctx, "real-estate-demo", "sess-1", high)
	require.Len(t, pub.published, 1)
	assert.Equal(t, "real-estate-demo", pub.published[0].ClientID)
	assert.Equal(t, "sess-1", pub.published[0].SessionID)
	assert.Equal(t, 80, pub.published[0].Score)

	// Score stays above threshold; no second event.
	svc.Process(ctx, "real-estate-demo", "sess-1", high)
	assert.Len(t, pub.published, 1)
}

func TestLawFirmThresholdGatesEvents(t *testing.T) {
	pub := &capturePublisher{}
	svc, _ := newTestService(pub)

	// accident +25, urgent +20, soon +10 = 55, below the firm's 75.
	svc.Process(context.Background(), "law-firm-demo", "sess-1",
		"I had an accident, it's urgent, I want to act soon")
	assert.Empty(t, pub.published)
}

func TestUnknownTenantGetsDefaultFallback(t *testing.T) {
	svc, _ := newTestService(&capturePublisher{})

	resp := svc.Process(context.Background(), "ghost-tenant", "sess-1", "unusual question xyz")
	require.NotNil(t, resp)

	assert.Equal(t, 10, resp.LeadScore)
	assert.Equal(t, model.IntentGeneralInquiry, resp.Intent)
	assert.Contains(t, resp.Response, "Thank you for reaching out!")
	assert.NotContains(t, resp.Response, "{phone}")
}

func TestHistoryAccumulatesAcrossTurns(t *testing.T) {
	svc, store := newTestService(&capturePublisher{})
	ctx := context.Background()

	svc.Process(ctx, "ecommerce-demo", "sess-1", "hello")
	svc.Process(ctx, "ecommerce-demo", "sess-1", "I want to buy a laptop")

	sess, ok := store.Get("sess-1")
	require.True(t, ok)
	require.Len(t, sess.State.History, 4)
	assert.Equal(t, model.SenderUser, sess.State.History[0].Sender)
	assert.Equal(t, model.SenderBot, sess.State.History[1].Sender)
	assert.Equal(t, model.SenderUser, sess.State.History[2].Sender)
	assert.Equal(t, "hello", sess.State.History[0].Text)
}

func TestProfileExtraction(t *testing.T) {
	svc, store := newTestService(&capturePublisher{})
	ctx := context.Background()

	svc.Process(ctx, "real-estate-demo", "sess-1",
		"reach me at jane@example.com or (555) 867-5309, budget $400k")
	svc.Process(ctx, "real-estate-demo", "sess-1",
		"actually use other@example.com")

	sess, _ := store.Get("sess-1")
	assert.Equal(t, "jane@example.com", sess.State.Profile.Email)
	assert.Equal(t, "(555) 867-5309", sess.State.Profile.Phone)
	assert.Equal(t, "$400k", sess.State.Profile.Budget)
}

func TestNextStage(t *testing.T) {
	assert.Equal(t, model.StageInitial, nextStage(1, 100))
	assert.Equal(t, model.StageQualifiedLead, nextStage(2, 51))
	assert.Equal(t, model.StageGatheringInfo, nextStage(2, 50))
	assert.Equal(t, model.StageGatheringInfo, nextStage(5, 0))
}
