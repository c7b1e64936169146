package assistant

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/priyankdesai/smartshop/internal/catalog"
	"github.com/priyankdesai/smartshop/internal/contradiction"
	"github.com/priyankdesai/smartshop/internal/llm"
	"github.com/priyankdesai/smartshop/internal/recommend"
	"github.com/priyankdesai/smartshop/internal/requirements"
	"github.com/priyankdesai/smartshop/internal/session"
	"github.com/priyankdesai/smartshop/internal/strategy"
)

// Assistant wires the extraction, contradiction, strategy, and
// recommendation stages over the session store and the catalog.
type Assistant struct {
	sessions *session.Store
	catalog  catalog.Provider

	// provider is optional; when nil (or failing) the canned response
	// text is used as is.
	provider llm.Provider
	model    string
}

// New creates an assistant. provider may be nil to disable rephrasing.
func New(sessions *session.Store, cat catalog.Provider, provider llm.Provider, model string) *Assistant {
	return &Assistant{
		sessions: sessions,
		catalog:  cat,
		provider: provider,
		model:    model,
	}
}

// Sessions exposes the underlying session store.
func (a *Assistant) Sessions() *session.Store {
	return a.sessions
}

// ProcessMessage runs one full turn. A missing session id starts a new
// session. The whole read-modify-write happens under the session's lock,
// so concurrent messages for one session serialize cleanly.
func (a *Assistant) ProcessMessage(ctx context.Context, sessionID, message string) *TurnResult {
	if sessionID == "" {
		sessionID = session.NewSessionID()
	}

	var result *TurnResult
	a.sessions.Update(sessionID, func(st *session.State) {
		extracted := requirements.Extract(message, st.CurrentRequirements)
		st.RequirementsHistory = append(st.RequirementsHistory, session.HistoryEntry{
			Timestamp:       time.Now().UTC(),
			RawMessage:      message,
			ExtractedFields: extracted,
		})
		st.CurrentRequirements.Merge(extracted)

		if level, ok := st.CurrentRequirements.ExpertiseLevel(); ok {
			st.ExpertiseLevel = level
		}
		for _, feature := range st.CurrentRequirements.Strings(requirements.FieldNiceToHaveFeatures) {
			st.NiceToHaves = appendMissing(st.NiceToHaves, feature)
		}

		conflicts := contradiction.Detect(st.CurrentRequirements)
		switch strategy.Decide(st.CurrentRequirements, conflicts) {
		case strategy.StateContradictionPending:
			result = a.contradictionTurn(st, conflicts[0])
		case strategy.StateNeedsBudget:
			result = a.clarificationTurn(st, "budget")
		case strategy.StateReadyToRecommend:
			result = a.recommendationTurn(ctx, st)
		default:
			result = a.clarificationTurn(st, "category")
		}
	})
	return result
}

// contradictionTurn surfaces one contradiction (only the first detected,
// one at a time) and asks the user to pick a resolution.
func (a *Assistant) contradictionTurn(st *session.State, c contradiction.Contradiction) *TurnResult {
	now := time.Now().UTC()
	st.ContradictionsResolved = append(st.ContradictionsResolved, session.ContradictionRecord{
		Timestamp:     now,
		Contradiction: c,
		Status:        "presented",
	})
	st.ClarificationHistory = append(st.ClarificationHistory, session.Interaction{
		Timestamp: now,
		Type:      TypeContradictionResolution,
		Context:   c.Type,
	})

	var b strings.Builder
	b.WriteString("I notice there might be a conflict in your requirements:\n\n")
	b.WriteString("Issue: " + c.Message + "\n\n")
	b.WriteString("Possible solutions:\n")
	for i, suggestion := range c.Suggestions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, suggestion)
	}
	b.WriteString("\nWhich approach would you prefer? Or would you like me to explain more about these trade-offs?")

	return &TurnResult{
		SessionID:         st.SessionID,
		ResponseText:      b.String(),
		InteractionType:   TypeContradictionResolution,
		Options:           c.Suggestions,
		RequiresUserInput: true,
	}
}

// clarificationTurn asks for the most important missing field.
func (a *Assistant) clarificationTurn(st *session.State, missing string) *TurnResult {
	text := "I'd be happy to help you find the perfect product! What type of product are you looking for? " +
		"(e.g., laptop, smartphone, headphones, smartwatch, etc.)"
	if missing == "budget" {
		category, _ := st.CurrentRequirements.Category()
		text = "Great! You're looking for " + category + ". What's your budget range for this purchase?"
	}

	st.ClarificationHistory = append(st.ClarificationHistory, session.Interaction{
		Timestamp: time.Now().UTC(),
		Type:      TypeClarification,
		Context:   missing,
	})

	return &TurnResult{
		SessionID:         st.SessionID,
		ResponseText:      text,
		InteractionType:   TypeClarification,
		RequiresUserInput: true,
	}
}

// recommendationTurn fetches candidates and ranks them. Catalog failures
// and empty result sets both degrade to a no_results turn.
func (a *Assistant) recommendationTurn(ctx context.Context, st *session.State) *TurnResult {
	noResults := &TurnResult{
		SessionID: st.SessionID,
		ResponseText: "I couldn't find products matching your exact requirements. " +
			"Let me adjust the search criteria.",
		InteractionType:   TypeNoResults,
		RequiresUserInput: true,
	}

	category, _ := st.CurrentRequirements.Category()
	budget, _ := st.CurrentRequirements.Budget()

	candidates, err := a.catalog.GetCandidates(ctx, category, budget)
	if err != nil {
		log.Printf("assistant: catalog lookup: %v", err)
		return noResults
	}
	if len(candidates) == 0 {
		return noResults
	}

	recs := recommend.Recommend(st.CurrentRequirements, st.PriorityRankings, candidates)
	lead := fmt.Sprintf("Perfect! I found %d excellent options that match your needs. "+
		"Here are my top recommendations:", len(recs))

	return &TurnResult{
		SessionID:       st.SessionID,
		ResponseText:    a.rephrase(ctx, lead),
		InteractionType: TypeRecommendations,
		Recommendations: recs,
		ConversationSummary: &Summary{
			Requirements:      st.CurrentRequirements.Clone(),
			Priorities:        st.PriorityRankings,
			DealBreakers:      st.DealBreakers,
			ExpertiseLevel:    st.ExpertiseLevel,
			ConversationTurns: len(st.RequirementsHistory),
		},
	}
}

// rephrase asks the text-generation provider to restate text in a
// friendlier voice. Any failure falls back to the deterministic string.
func (a *Assistant) rephrase(ctx context.Context, text string) string {
	if a.provider == nil {
		return text
	}

	resp, err := a.provider.Complete(ctx, llm.CompletionRequest{
		Model: a.model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: "You are a friendly shopping assistant. Rephrase the given message in a warm, natural tone. Keep the same meaning. Reply with the rephrased message only."},
			{Role: llm.RoleUser, Content: text},
		},
		MaxTokens:   200,
		Temperature: 0.7,
	})
	if err != nil {
		log.Printf("assistant: rephrase via %s failed, using canned text: %v", a.provider.Name(), err)
		return text
	}
	rephrased := strings.TrimSpace(resp.Content)
	if rephrased == "" {
		return text
	}
	return rephrased
}

func appendMissing(list []string, item string) []string {
	for _, existing := range list {
		if existing == item {
			return list
		}
	}
	return append(list, item)
}
