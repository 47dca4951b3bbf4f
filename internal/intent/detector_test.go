package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leadpilot-ai/chatbot-platform/internal/model"
	"github.com/leadpilot-ai/chatbot-platform/internal/tenant"
)

func detect(t *testing.T, industry tenant.Industry, message string) model.IntentResult {
	t.Helper()
	d := NewDetector()
	cfg := &tenant.ClientConfig{ClientID: "test", Industry: industry}
	return d.Detect(message, &model.ConversationState{}, cfg)
}

func TestRealEstateClassification(t *testing.T) {
	tests := []struct {
		name    string
		message string
		intent  string
	}{
		{"property search", "I'm looking for a 3 bedroom house", IntentPropertySearch},
		{"market info", "what's the current market trend", IntentMarketInfo},
		{"viewing", "can I schedule a tour this weekend", IntentScheduleViewing},
		{"greeting", "hello there", model.IntentGeneralInquiry},
		{"no keywords", "qwerty asdf", model.IntentGeneralInquiry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detect(t, tenant.IndustryRealEstate, tt.message)
			assert.Equal(t, tt.intent, got.Intent)
		})
	}
}

func TestLegalClassification(t *testing.T) {
	tests := []struct {
		name    string
		message string
		intent  string
		urgency model.Urgency
	}{
		{"personal injury", "I was in a car crash last week", IntentPersonalInjury, model.UrgencyMedium},
		{"family law", "I need help with a divorce", IntentFamilyLaw, model.UrgencyMedium},
		{"criminal defense", "my brother was arrested last night", IntentCriminalDefense, model.UrgencyHigh},
		{"consultation", "can we meet to discuss my case", IntentConsultation, model.UrgencyMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detect(t, tenant.IndustryLegal, tt.message)
			assert.Equal(t, tt.intent, got.Intent)
			assert.Equal(t, tt.urgency, got.Urgency)
		})
	}
}

func TestGroupOrderIsPriority(t *testing.T) {
	// "accident" (personal injury) and "court" (criminal defense) both
	// match; the earlier group wins.
	got := detect(t, tenant.IndustryLegal, "my accident case goes to court")
	assert.Equal(t, IntentPersonalInjury, got.Intent)
}

func TestClassificationIsCaseInsensitive(t *testing.T) {
	got := detect(t, tenant.IndustryRealEstate, "LOOKING FOR A HOUSE")
	assert.Equal(t, IntentPropertySearch, got.Intent)
}

func TestConfidenceLevels(t *testing.T) {
	hit := detect(t, tenant.IndustryEcommerce, "I want to track my order")
	assert.Equal(t, IntentOrderStatus, hit.Intent)
	assert.Equal(t, 0.9, hit.Confidence)

	miss := detect(t, tenant.IndustryEcommerce, "zzzz")
	assert.Equal(t, model.IntentGeneralInquiry, miss.Intent)
	assert.Equal(t, 0.7, miss.Confidence)
}

func TestGenericFallbackForUnknownIndustry(t *testing.T) {
	got := detect(t, tenant.IndustryGeneral, "anything at all")
	assert.Equal(t, model.IntentGeneralInquiry, got.Intent)
	assert.Equal(t, 0.8, got.Confidence)
}

func TestRegisterOverridesVertical(t *testing.T) {
	d := NewDetector()
	d.Register(newKeywordClassifier(tenant.IndustryLegal, []group{
		{"CUSTOM", model.UrgencyLow, []string{"custom"}},
	}))

	cfg := &tenant.ClientConfig{Industry: tenant.IndustryLegal}
	got := d.Detect("a custom matter", &model.ConversationState{}, cfg)
	assert.Equal(t, "CUSTOM", got.Intent)
}
