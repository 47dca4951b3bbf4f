package scoring

import (
	"strings"

	"github.com/leadpilot-ai/chatbot-platform/internal/model"
	"github.com/leadpilot-ai/chatbot-platform/internal/tenant"
)

type realEstatePolicy struct{}

func (realEstatePolicy) Industry() tenant.Industry {
	return tenant.IndustryRealEstate
}

var realEstateRules = []rule{
	{"Budget mentioned", 20, []string{"budget", "price", "cost"}},
	{"Timeline urgency", 15, []string{"soon", "urgent", "quick"}},
	{"Specific property type", 10, []string{"house", "condo", "townhouse"}},
	{"Location preference", 10, []string{"area", "neighborhood", "location"}},
	{"Contact information provided", 25, []string{"email", "phone", "contact"}},
}

func (realEstatePolicy) Score(message string, state *model.ConversationState, cfg *tenant.ClientConfig) model.LeadScoreResult {
	lower := strings.ToLower(message)
	score, factors := evalRules(lower, realEstateRules)
	return result("Real estate", score, factors)
}

type legalPolicy struct{}

func (legalPolicy) Industry() tenant.Industry {
	return tenant.IndustryLegal
}

var legalRules = []rule{
	{"Specific case type", 25, []string{
		"accident", "injury", "divorce", "criminal", "immigration", "visa", "green card",
		"business", "corporate", "employment", "workplace", "real estate", "property",
		"estate", "will", "trust",
	}},

	// Injury severity tiers. Additive, not a single max pick.
	{"Moderate injury severity", 30, []string{"neck pain", "back pain", "whiplash"}},
	{"Severe injury requiring treatment", 40, []string{"broken", "fracture", "surgery"}},
	{"Catastrophic injury", 60, []string{"paralysis", "brain injury", "traumatic"}},

	// Economic impact.
	{"Economic damages - lost income", 20, []string{"missed work", "lost wages", "can't work"}},
	{"Economic damages - medical expenses", 25, []string{"medical bills", "hospital bills", "treatment costs"}},
	{"Economic damages - disability", 30, []string{"disability", "unable to work", "lost income"}},
	{"Economic impact - employment opportunity", 25, []string{"work permit", "employment authorization", "job offer"}},

	// Business law case complexity.
	{"Business case complexity - contract dispute", 35, []string{"contract dispute", "breach of contract"}},
	{"Business case complexity - corporate formation", 25, []string{"corporate formation", "llc", "incorporation"}},
	{"Business case complexity - M&A transaction", 50, []string{"merger", "acquisition", "m&a"}},
	{"Business case complexity - IP protection", 40, []string{"intellectual property", "patent", "trademark"}},

	// Employment law case severity.
	{"Employment case severity - discrimination/harassment", 40, []string{"discrimination", "harassment", "hostile work environment"}},
	{"Employment case severity - wrongful termination", 35, []string{"wrongful termination", "retaliation", "unlawful firing"}},
	{"Employment case severity - wage violations", 30, []string{"wage theft", "overtime", "unpaid wages"}},
	{"Employment case severity - leave/disability", 25, []string{"fmla", "disability", "reasonable accommodation"}},

	// Real estate law case value.
	{"Real estate case value - property dispute", 30, []string{"property dispute", "boundary", "easement"}},
	{"Real estate case value - landlord-tenant", 25, []string{"eviction", "landlord", "tenant"}},
	{"Real estate case value - mortgage issues", 35, []string{"foreclosure", "mortgage", "loan modification"}},
	{"Real estate case value - transaction issues", 40, []string{"title issue", "closing", "purchase agreement"}},

	// Estate planning complexity.
	{"Estate planning complexity - probate", 30, []string{"probate", "inheritance", "estate administration"}},
	{"Estate planning complexity - trust administration", 35, []string{"trust administration", "trustee", "beneficiary"}},
	{"Estate planning complexity - tax planning", 45, []string{"estate tax", "wealth transfer", "tax planning"}},
	{"Estate planning complexity - incapacity planning", 25, []string{"guardianship", "power of attorney", "healthcare directive"}},

	// Liability strength.
	{"Clear liability - impaired driving", 25, []string{"drunk driver", "dui", "intoxicated"}},
	{"Clear liability - rear-end collision", 15, []string{"hit from behind", "rear-ended", "rear end"}},
	{"Clear liability - traffic violation", 20, []string{"red light", "stop sign", "ran red"}},
	{"Clear liability - distracted driving", 20, []string{"texting", "distracted", "phone"}},

	{"High urgency", 20, []string{"urgent", "emergency", "immediately"}},
	{"Financial stakes", 15, []string{"money", "damages", "settlement"}},
	{"Contact information provided", 20, []string{"email", "phone", "contact"}},
	{"Timeline urgency", 10, []string{"soon", "quick", "asap"}},
}

func (legalPolicy) Score(message string, state *model.ConversationState, cfg *tenant.ClientConfig) model.LeadScoreResult {
	lower := strings.ToLower(message)
	score, factors := evalRules(lower, legalRules)

	// Co-occurring hospital treatment signals.
	if containsAny(lower, []string{"hospital", "emergency room", "er visit"}) &&
		containsAny(lower, []string{"treatment", "admitted", "stayed"}) {
		score += 35
		factors = append(factors, "Hospital treatment required")
	}

	// Complete case profiles (injury + economic loss + clear liability) are
	// worth more than the sum of their parts.
	hasInjuries := containsAny(lower, []string{"pain", "injury", "broken"})
	hasEconomicLoss := containsAny(lower, []string{"work", "income", "bills"})
	hasClearLiability := containsAny(lower, []string{"drunk", "fault", "hit"})
	if hasInjuries && hasEconomicLoss && hasClearLiability {
		score += 25
		factors = append(factors, "Complete case profile bonus")
	}

	return result("Legal", score, factors)
}

type ecommercePolicy struct{}

func (ecommercePolicy) Industry() tenant.Industry {
	return tenant.IndustryEcommerce
}

var ecommerceRules = []rule{
	{"Specific product interest", 20, []string{"laptop", "phone", "headphones"}},
	{"Purchase intent", 25, []string{"buy", "purchase", "order"}},
	{"Budget consideration", 15, []string{"budget", "price", "cost"}},
	{"Contact information provided", 20, []string{"email", "phone", "contact"}},
}

func (ecommercePolicy) Score(message string, state *model.ConversationState, cfg *tenant.ClientConfig) model.LeadScoreResult {
	lower := strings.ToLower(message)
	score, factors := evalRules(lower, ecommerceRules)
	return result("Ecommerce", score, factors)
}
