// Package session owns in-memory conversation state, one entry per
// session id. State is never persisted; a session lives as long as the
// process unless explicitly evicted.
package session

import (
	"time"

	"github.com/priyankdesai/smartshop/internal/contradiction"
	"github.com/priyankdesai/smartshop/internal/requirements"
)

// HistoryEntry is one audit record of what a message contributed.
type HistoryEntry struct {
	Timestamp       time.Time        `json:"timestamp"`
	RawMessage      string           `json:"raw_message"`
	ExtractedFields requirements.Set `json:"extracted_fields"`
}

// Interaction records one assistant-side interaction (a clarification
// question, a contradiction prompt) so question types are not repeated.
type Interaction struct {
	Timestamp time.Time `json:"timestamp"`
	Type      string    `json:"type"`
	Context   string    `json:"context"`
}

// ContradictionRecord logs a contradiction and how it was presented.
type ContradictionRecord struct {
	Timestamp     time.Time                   `json:"timestamp"`
	Contradiction contradiction.Contradiction `json:"contradiction"`
	Status        string                      `json:"status"`
}

// State is the full conversation state for one session.
type State struct {
	SessionID string    `json:"session_id"`
	StartTime time.Time `json:"start_time"`

	// CurrentRequirements is the right-biased fold of every
	// ExtractedFields in RequirementsHistory, in arrival order.
	CurrentRequirements  requirements.Set `json:"current_requirements"`
	RequirementsHistory  []HistoryEntry   `json:"requirements_history"`
	ClarificationHistory []Interaction    `json:"clarification_history"`

	PriorityRankings map[string]int `json:"priority_rankings"`
	DealBreakers     []string       `json:"deal_breakers"`
	NiceToHaves      []string       `json:"nice_to_haves"`
	ExpertiseLevel   string         `json:"expertise_level"`

	ContradictionsResolved []ContradictionRecord `json:"contradictions_resolved"`
}

func newState(id string) *State {
	return &State{
		SessionID:           id,
		StartTime:           time.Now().UTC(),
		CurrentRequirements: requirements.Set{},
		PriorityRankings:    map[string]int{},
	}
}
