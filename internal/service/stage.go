package service

import "github.com/leadpilot-ai/chatbot-platform/internal/model"

// nextStage recomputes the conversation stage after a turn. The first turn
// always reports initial, and a later low-scoring message moves a qualified
// session back to gathering_info.
func nextStage(messageCount, leadScore int) model.Stage {
	switch {
	case messageCount == 1:
		return model.StageInitial
	case leadScore > 50:
		return model.StageQualifiedLead
	default:
		return model.StageGatheringInfo
	}
}
