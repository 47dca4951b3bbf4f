package tenant

import (
	"sort"
)

// Registry resolves client ids to their configuration. Lookups are total:
// unknown ids resolve to the generic default config.
type Registry struct {
	configs  map[string]*ClientConfig
	fallback *ClientConfig
}

// NewRegistry builds a registry seeded with the built-in demo clients.
func NewRegistry() *Registry {
	r := &Registry{
		configs:  make(map[string]*ClientConfig),
		fallback: defaultConfig(),
	}
	for _, cfg := range seedConfigs() {
		r.configs[cfg.ClientID] = cfg
	}
	return r
}

// Get returns the configuration for a client id, or the default config when
// the id is unknown. It never returns nil.
func (r *Registry) Get(clientID string) *ClientConfig {
	if cfg, ok := r.configs[clientID]; ok {
		return cfg
	}
	return r.fallback
}

// Known reports whether a client id has its own configuration.
func (r *Registry) Known(clientID string) bool {
	_, ok := r.configs[clientID]
	return ok
}

// IDs returns the configured client ids in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.configs))
	for id := range r.configs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func defaultConfig() *ClientConfig {
	return &ClientConfig{
		ClientID:     "default",
		BusinessName: "Business",
		Industry:     IndustryGeneral,
		Fallback:     "Thank you for reaching out!{phone}{email} Our team will follow up with you shortly.",
		Rules: []KeywordRule{
			{
				Keywords: []string{"hours", "open", "schedule"},
				Response: "We're available during regular business hours. Leave your contact details and we'll get back to you.",
			},
		},
	}
}

func seedConfigs() []*ClientConfig {
	return []*ClientConfig{realEstateDemo(), lawFirmDemo(), ecommerceDemo()}
}

func realEstateDemo() *ClientConfig {
	return &ClientConfig{
		ClientID:     "real-estate-demo",
		BusinessName: "Dream Homes Realty",
		Industry:     IndustryRealEstate,
		Contact: Contact{
			Phone:   "(555) DREAM-HOME",
			Email:   "info@dreamhomes.com",
			Website: "www.dreamhomes.com",
			Address: "456 Real Estate Ave, Downtown",
		},
		Features: AIFeatures{
			LeadScoring:        true,
			CaseAssessment:     true,
			DynamicResponses:   true,
			IntentDetection:    true,
			FollowupGeneration: true,
		},
		LeadCapture: &LeadCapture{
			Enabled:        true,
			RequiredFields: []string{"name", "email", "phone", "property_type"},
			OptionalFields: []string{"budget_range", "timeline", "location_preference", "property_features"},
			CaseTypes:      []string{"Buying", "Selling", "Renting", "Investment", "Commercial"},
		},
		Fallback: "I don't have specific information about that property, but our agents can help!\n\n📞 Call us: {phone}\n📧 Email: {email}\n🌐 Visit: {website}\n\nOur experienced real estate agents are here to assist you.",
		Rules: []KeywordRule{
			{
				Keywords: []string{"hello", "hi", "hey", "good morning", "good afternoon", "good evening"},
				Response: "Hello! Welcome to Dream Homes Realty. I'm here to help you with all your real estate needs. How can I assist you today?",
			},
			{
				Keywords: []string{"thanks", "thank you", "appreciate it"},
				Response: "You're very welcome! Is there anything else you'd like to know about our properties or services?",
			},
			{
				Keywords: []string{"what can you help", "what do you do", "how can you help", "what services"},
				Response: "I'm your Dream Homes Realty assistant! I can help with:\n\n🏠 Property searches and recommendations\n📊 Market information and trends\n📅 Scheduling viewings\n💰 Property valuations\n\nWhat would you like to know about?",
			},
			{
				Keywords: []string{"property search", "find home", "buy house", "looking for", "available properties"},
				Response: "🏠 Property Search:\n\n• What type of property are you looking for? (house, condo, townhouse)\n• What's your budget range?\n• Preferred neighborhoods or areas?\n• Timeline for purchase?\n\nI can help you find the perfect property!",
			},
			{
				Keywords: []string{"market info", "prices", "trends", "values"},
				Response: "📊 Market Information:\n\n• Average home price: $485,000\n• Market trend: Steady growth\n• Days on market: 28 days\n• Inventory level: Balanced\n\nWould you like specific neighborhood data?",
			},
			{
				Keywords: []string{"schedule viewing", "appointment", "tour"},
				Response: "📅 Schedule a Viewing:\n\n• Available times: Weekdays 9AM-6PM, Saturdays 10AM-4PM\n• Virtual tours available\n\nCall us at {phone} to schedule!",
			},
			{
				Keywords: []string{"selling", "list property", "market value"},
				Response: "💰 Selling Your Property:\n\n• Free market analysis\n• Professional photography included\n• Marketing on multiple platforms\n\nLet's discuss your property details!",
			},
			{
				Keywords: []string{"agent", "realtor", "broker"},
				Response: "👨‍💼 Our Agents:\n\n• Licensed professionals with 5+ years experience\n• Available 7 days a week\n\nWho would you like to work with?",
			},
			{
				Keywords: []string{"hours", "open", "time"},
				Response: "🕒 Office Hours:\n\n• Monday-Friday: 9:00 AM - 6:00 PM\n• Saturday: 10:00 AM - 4:00 PM\n• Sunday: Closed",
			},
			{
				Keywords: []string{"contact", "phone", "call"},
				Response: "📞 Contact Dream Homes Realty:\n\nPhone: {phone}\nEmail: {email}\nWebsite: {website}\nAddress: {address}\n\nWe're here to help with all your real estate needs!",
			},
		},
	}
}

func lawFirmDemo() *ClientConfig {
	return &ClientConfig{
		ClientID:     "law-firm-demo",
		BusinessName: "Justice Partners Law Firm",
		Industry:     IndustryLegal,
		Contact: Contact{
			Phone:   "(555) LAW-FIRM",
			Email:   "info@justicepartners.com",
			Website: "www.justicepartners.com",
			Address: "123 Legal Plaza, Downtown",
		},
		Features: AIFeatures{
			LeadScoring:        true,
			CaseAssessment:     true,
			DynamicResponses:   true,
			IntentDetection:    true,
			FollowupGeneration: true,
		},
		LeadCapture: &LeadCapture{
			Enabled:        true,
			RequiredFields: []string{"name", "email", "phone", "case_type"},
			OptionalFields: []string{"case_description", "urgency", "budget_range"},
			CaseTypes: []string{
				"Personal Injury", "Family Law", "Criminal Defense", "Real Estate",
				"Business Law", "Estate Planning", "Employment Law",
			},
		},
		PracticeAreas: map[string]PracticeArea{
			"personal_injury": {
				Specializations: []string{"auto_accidents", "slip_fall", "medical_malpractice", "product_liability"},
				QualificationQuestions: []string{
					"When did the accident occur?",
					"What type of injuries did you sustain?",
					"Have you received medical treatment?",
					"Do you have any witnesses or evidence?",
				},
			},
			"family_law": {
				Specializations: []string{"divorce", "custody", "support", "adoption"},
				QualificationQuestions: []string{
					"What type of family law matter do you need help with?",
					"Are there children involved?",
					"Is this an uncontested or contested matter?",
				},
			},
			"criminal_defense": {
				Specializations: []string{"dui", "drug_offenses", "assault", "theft", "white_collar"},
				QualificationQuestions: []string{
					"What charges are you facing?",
					"When were you arrested?",
					"Have you spoken to law enforcement?",
				},
			},
		},
		LeadRouting: &LeadRouting{
			HighValueThreshold:        75,
			SeniorThreshold:           85,
			UrgentEscalationThreshold: 80,
			Specialists: map[string][]string{
				"personal_injury":  {"Sarah Johnson", "Michael Chen"},
				"family_law":       {"Jennifer Davis", "Robert Wilson"},
				"criminal_defense": {"David Martinez", "Lisa Thompson"},
			},
		},
		Fallback: "I don't have specific information about that legal matter, but our attorneys can help!\n\n📞 Call us: {phone}\n📧 Email: {email}\n🌐 Visit: {website}\n\nFor legal advice, please schedule a consultation with our experienced attorneys.",
		Rules: []KeywordRule{
			{
				Keywords: []string{"personal injury", "accident", "car crash", "car accident", "drunk driver", "neck pain", "missed work"},
				Response: "🚗 **Personal Injury Case Assessment:**\n\nBased on your description, this appears to be a **strong personal injury case**:\n\n• **Clear Liability**: At-fault driver\n• **Significant Injuries**: Requiring medical attention\n• **Economic Damages**: Lost wages from missed work\n\n**Next Steps:**\n• Schedule a free consultation to discuss your case\n• Document all medical treatments and expenses\n• Don't speak to insurance companies without legal representation\n\n**Our Contingency Fee**: No fees unless we win your case!\n\n📞 Call us at {phone} for immediate assistance.",
			},
			{
				Keywords: []string{"hello", "hi", "hey", "good morning", "good afternoon", "good evening"},
				Response: "Hello! Welcome to Justice Partners Law Firm. I'm here to help you understand our legal services and connect you with the right attorney. How can I assist you today?",
			},
			{
				Keywords: []string{"thanks", "thank you", "appreciate it"},
				Response: "You're very welcome! Is there anything else you'd like to know about our legal services?",
			},
			{
				Keywords: []string{"hours", "open", "time"},
				Response: "🕒 Our office hours are:\n\n• Monday-Friday: 8:00 AM - 6:00 PM\n• Saturday: 9:00 AM - 2:00 PM\n• Sunday: Closed\n\nWe offer emergency consultations for urgent legal matters.",
			},
			{
				Keywords: []string{"consultation", "meet", "appointment"},
				Response: "📋 Free Initial Consultation:\n\n• 30-minute free consultation to discuss your case\n• No obligation to hire our firm\n• Available in-person or via video call\n\nTo schedule: Call {phone} or email {email}",
			},
			{
				Keywords: []string{"fees", "cost", "price", "payment"},
				Response: "💰 Our Fee Structure:\n\n• Free initial consultation\n• Contingency fees for personal injury cases\n• Hourly rates: $250-400/hour\n• Payment plans available\n\nContact us for a detailed quote based on your case.",
			},
			{
				Keywords: []string{"services", "practice", "areas"},
				Response: "⚖️ Our Practice Areas:\n\n• Personal Injury Law\n• Family Law & Divorce\n• Criminal Defense\n• Real Estate Law\n• Business Law\n• Estate Planning\n• Employment Law\n\nWe have over 20 years of combined experience in these areas.",
			},
			{
				Keywords: []string{"family law", "divorce", "custody"},
				Response: "👨‍👩‍👧‍👦 Family Law Services:\n\n• Divorce and separation\n• Child custody and support\n• Property division\n• Adoption\n\nWe handle cases with compassion and expertise.",
			},
			{
				Keywords: []string{"criminal", "arrest", "charges"},
				Response: "🛡️ Criminal Defense:\n\n• DUI/DWI charges\n• Drug offenses\n• Assault and battery\n• White-collar crimes\n\nWe provide aggressive defense and protect your rights.",
			},
			{
				Keywords: []string{"immigration", "visa", "citizenship", "green card", "deportation", "asylum"},
				Response: "🌍 **Immigration Law Services:**\n\n• Visa applications: work, student, family\n• Green card processing\n• Citizenship & naturalization\n• Deportation defense\n• Asylum & refugee status\n\n📞 Call us at {phone} to discuss your immigration case!",
			},
			{
				Keywords: []string{"business", "corporate", "contract", "startup", "llc", "incorporation", "merger", "acquisition"},
				Response: "🏢 **Business Law Services:**\n\n• Corporate formation: LLCs, corporations, partnerships\n• Contract drafting, review and disputes\n• Business litigation\n• Mergers & acquisitions\n• Intellectual property protection\n\n📞 Call us at {phone} for business legal services!",
			},
			{
				Keywords: []string{"employment", "workplace", "discrimination", "harassment", "wrongful termination", "wage", "overtime", "fmla"},
				Response: "💼 **Employment Law Services:**\n\n• Workplace discrimination\n• Sexual harassment\n• Wrongful termination and retaliation\n• Wage & hour violations\n• FMLA & ADA accommodations\n\n📞 Call us at {phone} to discuss your workplace case!",
			},
			{
				Keywords: []string{"real estate", "property", "landlord", "tenant", "eviction", "title", "closing", "mortgage", "foreclosure"},
				Response: "🏠 **Real Estate Law Services:**\n\n• Property disputes and boundary issues\n• Landlord-tenant matters and evictions\n• Closings and title issues\n• Foreclosure defense and loan modifications\n\n📞 Call us at {phone} for real estate legal help!",
			},
			{
				Keywords: []string{"estate", "will", "trust", "probate", "inheritance", "power of attorney", "guardianship"},
				Response: "📜 **Estate Planning Services:**\n\n• Wills & trusts\n• Probate administration\n• Power of attorney and healthcare directives\n• Guardianship and conservatorship\n• Estate tax planning\n\n📞 Call us at {phone} to plan your legacy!",
			},
		},
	}
}

func ecommerceDemo() *ClientConfig {
	return &ClientConfig{
		ClientID:     "ecommerce-demo",
		BusinessName: "TechGear Online Store",
		Industry:     IndustryEcommerce,
		Contact: Contact{
			Phone:   "(555) TECH-GEAR",
			Email:   "support@techgear.com",
			Website: "www.techgear.com",
			Address: "789 Tech Street, Innovation District",
		},
		LeadCapture: &LeadCapture{
			Enabled:        true,
			RequiredFields: []string{"name", "email", "product_interest"},
			OptionalFields: []string{"budget_range", "use_case", "experience_level", "preferred_brand"},
			ProductCategories: []string{
				"Laptops & Computers", "Smartphones & Tablets", "Audio & Headphones",
				"Gaming & Accessories", "Smart Home Devices", "Wearables & Fitness",
			},
			BudgetRanges: []string{"$50 - $100", "$100 - $250", "$250 - $500", "$500 - $1000", "$1000+"},
		},
		Fallback: "I don't have specific information about that product, but our support team can help!\n\n📞 Call us: {phone}\n📧 Email: {email}\n🌐 Visit: {website}\n\nOur customer service team is available to answer all your questions.",
		Rules: []KeywordRule{
			{
				Keywords: []string{"hello", "hi", "hey", "good morning", "good afternoon", "good evening"},
				Response: "Hello! Welcome to TechGear Online Store. I'm here to help you find the perfect tech products. How can I help you today?",
			},
			{
				Keywords: []string{"thanks", "thank you", "appreciate it"},
				Response: "You're very welcome! Is there anything else you'd like to know about our products or services?",
			},
			{
				Keywords: []string{"deals", "promotions", "discounts", "sales"},
				Response: "🔥 **Today's Hot Deals at TechGear:**\n\n• Gaming laptops: up to 30% off, starting at $799\n• Wireless headphones: 25% off premium brands\n• Smart home bundle: save $150\n• Student discount: 15% off with valid ID\n\n💡 Want personalized recommendations? Tell me what you're looking for!",
			},
			{
				Keywords: []string{"best sellers", "top products", "popular items", "trending"},
				Response: "🏆 **TechGear Best Sellers:**\n\n• MacBook Air M2 — $1,199\n• Sony WH-1000XM5 — $349\n• iPad Air — $599\n• Samsung Galaxy S23 — $799\n\n📊 Updated daily based on customer purchases and reviews!",
			},
			{
				Keywords: []string{"shipping", "delivery"},
				Response: "Shipping is free on orders over $50. Standard shipping is $5.99.",
			},
			{
				Keywords: []string{"track order", "order status", "order tracking"},
				Response: "📦 Please provide your order number so I can check the status for you.",
			},
			{
				Keywords: []string{"return policy", "returns", "refund"},
				Response: "Our return policy: 30 days, no questions asked. Contact {email} to start a return.",
			},
		},
		QuickReplies: []string{
			"Show me laptops",
			"What's your return policy?",
			"Track my order",
			"Current promotions",
		},
	}
}
