package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadpilot-ai/chatbot-platform/internal/model"
	"github.com/leadpilot-ai/chatbot-platform/internal/tenant"
)

func score(t *testing.T, industry tenant.Industry, message string) model.LeadScoreResult {
	t.Helper()
	s := NewScorer()
	cfg := &tenant.ClientConfig{ClientID: "test", Industry: industry}
	return s.Score(message, &model.ConversationState{}, cfg)
}

func TestRealEstateScoring(t *testing.T) {
	got := score(t, tenant.IndustryRealEstate,
		"I'm looking for a 3 bedroom house, my budget is around $400k and I need to move soon")

	// budget +20, soon +15, house +10
	assert.Equal(t, 45, got.Score)
	assert.ElementsMatch(t, []string{
		"Budget mentioned",
		"Timeline urgency",
		"Specific property type",
	}, got.Factors)
}

func TestRealEstateNoSignal(t *testing.T) {
	got := score(t, tenant.IndustryRealEstate, "hello")
	assert.Equal(t, 0, got.Score)
	assert.Empty(t, got.Factors)
}

func TestLegalScoringIsAdditive(t *testing.T) {
	got := score(t, tenant.IndustryLegal,
		"a drunk driver hit me from behind, I have neck pain and missed two weeks of work")

	// "missed two weeks of work" carries no economic-damages keyword, so
	// only injury, liability, and the complete-profile bonus fire.
	assert.ElementsMatch(t, []string{
		"Moderate injury severity",
		"Clear liability - impaired driving",
		"Complete case profile bonus",
	}, got.Factors)
	assert.Equal(t, 80, got.Score)
}

func TestLegalEconomicDamagesTier(t *testing.T) {
	got := score(t, tenant.IndustryLegal,
		"a drunk driver hit me, I have neck pain and missed work for two weeks")

	assert.Contains(t, got.Factors, "Economic damages - lost income")
	assert.Equal(t, 100, got.Score)
}

func TestLegalHospitalTreatmentCompound(t *testing.T) {
	got := score(t, tenant.IndustryLegal, "I stayed in the hospital overnight")
	assert.Contains(t, got.Factors, "Hospital treatment required")

	// Either signal alone is not enough.
	alone := score(t, tenant.IndustryLegal, "I drove past the hospital")
	assert.NotContains(t, alone.Factors, "Hospital treatment required")
}

func TestScoreIsClamped(t *testing.T) {
	got := score(t, tenant.IndustryLegal,
		"urgent accident with a broken back, paralysis, surgery, missed work, medical bills, "+
			"disability, drunk driver ran a red light while texting, need a settlement, "+
			"call my phone asap")

	assert.Equal(t, 100, got.Score)
	assert.GreaterOrEqual(t, len(got.Factors), 8)
}

func TestEcommerceScoring(t *testing.T) {
	got := score(t, tenant.IndustryEcommerce, "I want to buy a laptop, my budget is $1500")

	// laptop +20, buy +25, budget +15
	assert.Equal(t, 60, got.Score)
}

func TestGeneralPolicyFlatScore(t *testing.T) {
	got := score(t, tenant.IndustryGeneral, "anything")
	assert.Equal(t, 10, got.Score)
	assert.Equal(t, []string{"General inquiry"}, got.Factors)
}

func TestScoringIsHistoryBlind(t *testing.T) {
	s := NewScorer()
	cfg := &tenant.ClientConfig{Industry: tenant.IndustryRealEstate}

	state := &model.ConversationState{LeadScore: 45}
	got := s.Score("hello", state, cfg)
	assert.Equal(t, 0, got.Score)

	// Apply overwrites rather than accumulates.
	Apply(state, got)
	assert.Equal(t, 0, state.LeadScore)
}

func TestReasoningIncludesClampedScore(t *testing.T) {
	got := score(t, tenant.IndustryRealEstate, "my budget is flexible")
	require.Equal(t, 20, got.Score)
	assert.Contains(t, got.Reasoning, "Real estate lead score: 20/100")
}
