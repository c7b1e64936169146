// Package assistant runs the per-turn conversation pipeline: extract
// requirements from the utterance, merge into session state, detect
// contradictions, pick a strategy, and produce either a clarifying
// question, a contradiction prompt, or ranked recommendations.
package assistant

import (
	"github.com/priyankdesai/smartshop/internal/recommend"
	"github.com/priyankdesai/smartshop/internal/requirements"
)

// Interaction types a turn can produce.
const (
	TypeClarification           = "clarification"
	TypeContradictionResolution = "contradiction_resolution"
	TypeRecommendations         = "recommendations"
	TypeNoResults               = "no_results"
)

// TurnResult is what one processed message returns to the frontend.
type TurnResult struct {
	SessionID         string   `json:"session_id"`
	ResponseText      string   `json:"response"`
	InteractionType   string   `json:"type"`
	Options           []string `json:"options,omitempty"`
	RequiresUserInput bool     `json:"requires_user_input"`

	Recommendations     []recommend.Recommendation `json:"recommendations,omitempty"`
	ConversationSummary *Summary                   `json:"conversation_summary,omitempty"`
}

// Summary recaps the conversation alongside a recommendation turn.
type Summary struct {
	Requirements      requirements.Set `json:"requirements"`
	Priorities        map[string]int   `json:"priorities"`
	DealBreakers      []string         `json:"deal_breakers"`
	ExpertiseLevel    string           `json:"expertise_level"`
	ConversationTurns int              `json:"conversation_turns"`
}
