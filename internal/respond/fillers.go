package respond

import "github.com/leadpilot-ai/chatbot-platform/internal/tenant"

// Hand-written filler replies per industry, used when the generative model
// is unavailable or fails. Industries without an entry fall back to the
// tenant's fallback template.
var fillers = map[tenant.Industry][]string{
	tenant.IndustryRealEstate: {
		"I'm here to help with all your real estate needs! I can assist with property searches, market information, scheduling viewings, and connecting you with our agents. What would you like to know about?",
		"As your Dream Homes Realty assistant, I'm here to make your real estate journey easier. I can help you find properties, understand market trends, and connect with our experienced agents. How can I assist you today?",
		"I'm your personal real estate assistant! I can help you search for properties, get market insights, schedule viewings, and answer any real estate questions you might have. What brings you to Dream Homes Realty today?",
	},
	tenant.IndustryLegal: {
		"I'm here to help you understand our legal services and connect you with the right attorney. I can assist with case assessments, consultation scheduling, and general legal information. How can I help you today?",
		"As your Justice Partners Law Firm assistant, I'm here to guide you through our legal services and help you find the right attorney for your case. What legal matter can I help you with?",
		"I'm your legal assistant! I can help you understand our practice areas, schedule consultations, and provide general information about our services. What brings you to Justice Partners today?",
	},
	tenant.IndustryEcommerce: {
		"I'm here to help you find the perfect tech products and assist with your shopping needs! I can help with product recommendations, order tracking, and customer support. How can I assist you today?",
		"As your TechGear assistant, I'm here to make your shopping experience better. I can help you find products, track orders, and answer any questions about our tech offerings. What can I help you with?",
		"I'm your personal shopping assistant! I can help you discover great tech products, track your orders, and provide excellent customer support. What brings you to TechGear today?",
	},
}
