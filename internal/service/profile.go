package service

import (
	"regexp"

	"github.com/leadpilot-ai/chatbot-platform/internal/model"
)

var (
	emailPattern  = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phonePattern  = regexp.MustCompile(`\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}`)
	budgetPattern = regexp.MustCompile(`\$\s?\d[\d,]*(?:\.\d+)?\s?[kKmM]?`)
)

// extractProfile pulls contact details out of a message. Extraction is
// opportunistic: fields are only ever filled, never overwritten, so the
// first value a user volunteers sticks.
func extractProfile(message string, p *model.UserProfile) {
	if p.Email == "" {
		if m := emailPattern.FindString(message); m != "" {
			p.Email = m
		}
	}
	if p.Phone == "" {
		if m := phonePattern.FindString(message); m != "" {
			p.Phone = m
		}
	}
	if p.Budget == "" {
		if m := budgetPattern.FindString(message); m != "" {
			p.Budget = m
		}
	}
}
