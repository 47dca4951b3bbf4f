// Package intent classifies user messages against per-vertical keyword
// tables. Classification is pure and deterministic: lower-cased substring
// containment, first matching group wins.
package intent

import (
	"fmt"
	"strings"
	"time"

	"github.com/leadpilot-ai/chatbot-platform/internal/model"
	"github.com/leadpilot-ai/chatbot-platform/internal/tenant"
)

// Classifier detects the intent of one message for a single vertical.
type Classifier interface {
	Industry() tenant.Industry
	Classify(message string, state *model.ConversationState, cfg *tenant.ClientConfig) model.IntentResult
}

// Detector routes classification to the classifier registered for the
// tenant's industry, falling back to the generic classifier.
type Detector struct {
	classifiers map[tenant.Industry]Classifier
	generic     Classifier
}

// NewDetector builds a detector with the built-in vertical classifiers
// registered.
func NewDetector() *Detector {
	d := &Detector{
		classifiers: make(map[tenant.Industry]Classifier),
		generic:     genericClassifier{},
	}
	d.Register(newKeywordClassifier(tenant.IndustryRealEstate, realEstateGroups))
	d.Register(newKeywordClassifier(tenant.IndustryLegal, legalGroups))
	d.Register(newKeywordClassifier(tenant.IndustryEcommerce, ecommerceGroups))
	return d
}

// Register adds a classifier for its vertical. New verticals plug in here
// rather than extending a switch.
func (d *Detector) Register(c Classifier) {
	d.classifiers[c.Industry()] = c
}

// Detect classifies the message using the tenant's vertical.
func (d *Detector) Detect(message string, state *model.ConversationState, cfg *tenant.ClientConfig) model.IntentResult {
	if c, ok := d.classifiers[cfg.Industry]; ok {
		return c.Classify(message, state, cfg)
	}
	return d.generic.Classify(message, state, cfg)
}

// group is one intent with its trigger keywords. Declaration order within a
// table is a priority: the first satisfied group wins even if a later group
// would also match.
type group struct {
	intent   string
	urgency  model.Urgency
	keywords []string
}

type keywordClassifier struct {
	industry tenant.Industry
	groups   []group
}

func newKeywordClassifier(industry tenant.Industry, groups []group) keywordClassifier {
	return keywordClassifier{industry: industry, groups: groups}
}

func (c keywordClassifier) Industry() tenant.Industry {
	return c.industry
}

func (c keywordClassifier) Classify(message string, state *model.ConversationState, cfg *tenant.ClientConfig) model.IntentResult {
	lower := strings.ToLower(message)

	for _, g := range c.groups {
		for _, kw := range g.keywords {
			if strings.Contains(lower, kw) {
				return model.IntentResult{
					Intent:     g.intent,
					Confidence: 0.9,
					Reasoning:  fmt.Sprintf("Detected %s based on keywords: %s", g.intent, strings.Join(g.keywords, ", ")),
					Urgency:    g.urgency,
					Timestamp:  time.Now(),
				}
			}
		}
	}

	return model.IntentResult{
		Intent:     model.IntentGeneralInquiry,
		Confidence: 0.7,
		Reasoning:  fmt.Sprintf("No specific %s intent detected", c.industry),
		Urgency:    model.UrgencyLow,
		Timestamp:  time.Now(),
	}
}

// genericClassifier handles tenants without a vertical-specific table.
type genericClassifier struct{}

func (genericClassifier) Industry() tenant.Industry {
	return tenant.IndustryGeneral
}

func (genericClassifier) Classify(message string, state *model.ConversationState, cfg *tenant.ClientConfig) model.IntentResult {
	return model.IntentResult{
		Intent:     model.IntentGeneralInquiry,
		Confidence: 0.8,
		Reasoning:  "General inquiry detected",
		Urgency:    model.UrgencyLow,
		Timestamp:  time.Now(),
	}
}
