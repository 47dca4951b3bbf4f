// Package tenant holds per-client business configuration and the static
// registry that serves it.
package tenant

// Industry is the vertical a client operates in. It selects the intent
// classifier, scoring policy and prompt flavor used for that client.
type Industry string

const (
	IndustryRealEstate Industry = "real_estate"
	IndustryLegal      Industry = "legal"
	IndustryEcommerce  Industry = "ecommerce"
	IndustryGeneral    Industry = "general"
)

// Contact is the client's public contact record. All fields are optional;
// missing fields substitute to the empty string in response templates.
type Contact struct {
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Website string `json:"website,omitempty"`
	Address string `json:"address,omitempty"`
}

// KeywordRule maps a group of trigger keywords (OR semantics) to a response
// template. Rule order is a priority: the first rule with a hit wins.
type KeywordRule struct {
	Keywords []string
	Response string
}

// AIFeatures flags which pipeline features are enabled for a client.
type AIFeatures struct {
	LeadScoring        bool `json:"lead_scoring"`
	CaseAssessment     bool `json:"case_assessment"`
	DynamicResponses   bool `json:"dynamic_responses"`
	IntentDetection    bool `json:"intent_detection"`
	FollowupGeneration bool `json:"followup_generation"`
}

// LeadCapture describes what the client collects from qualified leads.
type LeadCapture struct {
	Enabled           bool     `json:"enabled"`
	RequiredFields    []string `json:"required_fields,omitempty"`
	OptionalFields    []string `json:"optional_fields,omitempty"`
	CaseTypes         []string `json:"case_types,omitempty"`
	ProductCategories []string `json:"product_categories,omitempty"`
	BudgetRanges      []string `json:"budget_ranges,omitempty"`
}

// PracticeArea is vertical metadata for professional-services clients.
type PracticeArea struct {
	Specializations        []string `json:"specializations,omitempty"`
	QualificationQuestions []string `json:"qualification_questions,omitempty"`
}

// LeadRouting carries the thresholds used to escalate high-value leads.
type LeadRouting struct {
	HighValueThreshold        int                 `json:"high_value_threshold,omitempty"`
	SeniorThreshold           int                 `json:"senior_threshold,omitempty"`
	UrgentEscalationThreshold int                 `json:"urgent_escalation_threshold,omitempty"`
	Specialists               map[string][]string `json:"specialists,omitempty"`
}

// ClientConfig is one tenant's business profile. Configs are loaded once at
// startup and never mutated afterwards.
type ClientConfig struct {
	ClientID      string
	BusinessName  string
	Industry      Industry
	Contact       Contact
	Features      AIFeatures
	LeadCapture   *LeadCapture
	PracticeAreas map[string]PracticeArea
	LeadRouting   *LeadRouting
	Fallback      string
	Rules         []KeywordRule
	QuickReplies  []string
}

// QualifiedThreshold returns the lead score above which a session counts as a
// qualified lead for this client.
func (c *ClientConfig) QualifiedThreshold() int {
	if c.LeadRouting != nil && c.LeadRouting.HighValueThreshold > 0 {
		return c.LeadRouting.HighValueThreshold
	}
	return 50
}
