package intent

import (
	"github.com/leadpilot-ai/chatbot-platform/internal/model"
)

// Intents recognized by the real estate vertical.
const (
	IntentPropertySearch  = "PROPERTY_SEARCH"
	IntentMarketInfo      = "MARKET_INFO"
	IntentScheduleViewing = "SCHEDULE_VIEWING"
	IntentSelling         = "SELLING"
)

// Intents recognized by the legal vertical.
const (
	IntentPersonalInjury  = "PERSONAL_INJURY"
	IntentFamilyLaw       = "FAMILY_LAW"
	IntentCriminalDefense = "CRIMINAL_DEFENSE"
	IntentConsultation    = "CONSULTATION"
)

// Intents recognized by the ecommerce vertical.
const (
	IntentProductSearch = "PRODUCT_SEARCH"
	IntentOrderStatus   = "ORDER_STATUS"
	IntentSupport       = "SUPPORT"
)

var realEstateGroups = []group{
	{IntentPropertySearch, model.UrgencyMedium, []string{"buy", "house", "home", "property", "looking for", "find", "search", "available properties"}},
	{IntentMarketInfo, model.UrgencyMedium, []string{"market", "price", "value", "trend", "worth", "appraisal"}},
	{IntentScheduleViewing, model.UrgencyMedium, []string{"view", "tour", "appointment", "schedule", "see", "visit"}},
	{IntentSelling, model.UrgencyMedium, []string{"sell", "list", "market", "listing", "agent"}},
	{model.IntentGeneralInquiry, model.UrgencyMedium, []string{"hello", "hi", "help", "information", "what can you", "how can you", "what do you"}},
}

var legalGroups = []group{
	{IntentPersonalInjury, model.UrgencyMedium, []string{"accident", "injury", "hurt", "pain", "medical", "car crash", "slip"}},
	{IntentFamilyLaw, model.UrgencyMedium, []string{"divorce", "custody", "child", "marriage", "family", "support"}},
	{IntentCriminalDefense, model.UrgencyHigh, []string{"arrest", "charge", "criminal", "police", "court", "defense"}},
	{IntentConsultation, model.UrgencyMedium, []string{"consult", "meet", "appointment", "talk", "discuss"}},
	{model.IntentGeneralInquiry, model.UrgencyMedium, []string{"hello", "hi", "help", "information"}},
}

var ecommerceGroups = []group{
	{IntentProductSearch, model.UrgencyMedium, []string{"product", "item", "buy", "purchase", "looking for", "find"}},
	{IntentOrderStatus, model.UrgencyMedium, []string{"order", "track", "status", "shipping", "delivery"}},
	{IntentSupport, model.UrgencyMedium, []string{"help", "support", "problem", "issue", "return", "refund"}},
	{model.IntentGeneralInquiry, model.UrgencyMedium, []string{"hello", "hi", "help", "information"}},
}
