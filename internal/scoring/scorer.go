// Package scoring computes a 0-100 lead score from the current user message.
// Scoring is per-turn and history-blind: each message re-qualifies the lead
// on its own.
package scoring

import (
	"fmt"
	"strings"
	"time"

	"github.com/leadpilot-ai/chatbot-platform/internal/model"
	"github.com/leadpilot-ai/chatbot-platform/internal/tenant"
)

// Policy scores one message for a single vertical.
type Policy interface {
	Industry() tenant.Industry
	Score(message string, state *model.ConversationState, cfg *tenant.ClientConfig) model.LeadScoreResult
}

// Scorer routes scoring to the policy registered for the tenant's industry.
type Scorer struct {
	policies map[tenant.Industry]Policy
	generic  Policy
}

// NewScorer builds a scorer with the built-in vertical policies registered.
func NewScorer() *Scorer {
	s := &Scorer{
		policies: make(map[tenant.Industry]Policy),
		generic:  generalPolicy{},
	}
	s.Register(realEstatePolicy{})
	s.Register(legalPolicy{})
	s.Register(ecommercePolicy{})
	return s
}

// Register adds a policy for its vertical.
func (s *Scorer) Register(p Policy) {
	s.policies[p.Industry()] = p
}

// Score evaluates the message under the tenant's vertical policy.
func (s *Scorer) Score(message string, state *model.ConversationState, cfg *tenant.ClientConfig) model.LeadScoreResult {
	if p, ok := s.policies[cfg.Industry]; ok {
		return p.Score(message, state, cfg)
	}
	return s.generic.Score(message, state, cfg)
}

// Apply writes the score back into the session state. The score overwrites
// the previous turn's value; it does not accumulate.
func Apply(state *model.ConversationState, result model.LeadScoreResult) {
	state.LeadScore = result.Score
	state.LastActivity = time.Now()
}

// rule is one weighted signal: any keyword hit adds the full weight.
// Rules are additive; overlapping rules may all fire.
type rule struct {
	name     string
	weight   int
	keywords []string
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func evalRules(lower string, rules []rule) (int, []string) {
	score := 0
	var factors []string
	for _, r := range rules {
		if containsAny(lower, r.keywords) {
			score += r.weight
			factors = append(factors, r.name)
		}
	}
	return score, factors
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func result(label string, score int, factors []string) model.LeadScoreResult {
	clamped := clamp(score)
	return model.LeadScoreResult{
		Score:     clamped,
		Reasoning: fmt.Sprintf("%s lead score: %d/100. %s", label, clamped, strings.Join(factors, ", ")),
		Factors:   factors,
	}
}

// generalPolicy covers tenants without a vertical-specific rule set.
type generalPolicy struct{}

func (generalPolicy) Industry() tenant.Industry {
	return tenant.IndustryGeneral
}

func (generalPolicy) Score(message string, state *model.ConversationState, cfg *tenant.ClientConfig) model.LeadScoreResult {
	return model.LeadScoreResult{
		Score:     10,
		Reasoning: "General inquiry lead score: 10/100",
		Factors:   []string{"General inquiry"},
	}
}
