package model

// LeadScoreResult is the outcome of scoring one user message.
// Score is always within [0,100].
type LeadScoreResult struct {
	Score     int      `json:"score"`
	Reasoning string   `json:"reasoning"`
	Factors   []string `json:"factors"`
}
