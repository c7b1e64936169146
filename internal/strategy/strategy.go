// Package strategy decides what the assistant should do next in a
// conversation: ask a clarifying question, resolve a contradiction, or
// recommend products.
package strategy

import (
	"github.com/priyankdesai/smartshop/internal/contradiction"
	"github.com/priyankdesai/smartshop/internal/requirements"
)

// State is the conversation strategy for the current turn.
type State int

const (
	// StateClarifying is the catch-all when no more specific state
	// applies.
	StateClarifying State = iota
	// StateNeedsCategory means no product category is known yet.
	StateNeedsCategory
	// StateNeedsBudget means the category is known but the budget is not.
	StateNeedsBudget
	// StateReadyToRecommend means enough is known to rank candidates.
	StateReadyToRecommend
	// StateContradictionPending means a detected conflict must be
	// resolved before anything else.
	StateContradictionPending
)

func (s State) String() string {
	switch s {
	case StateNeedsCategory:
		return "NEEDS_CATEGORY"
	case StateNeedsBudget:
		return "NEEDS_BUDGET"
	case StateReadyToRecommend:
		return "READY_TO_RECOMMEND"
	case StateContradictionPending:
		return "CONTRADICTION_PENDING"
	default:
		return "CLARIFYING"
	}
}

// Decide picks the strategy for a turn from the accumulated requirements
// and the contradictions detected this turn. It is a pure function and
// is recomputed fresh every turn; nothing is memoized, so requirements
// gathered earlier (a budget, say) keep counting after a later category
// change.
//
// Priority: contradictions first, then the missing-field checks in
// order, then ready.
func Decide(reqs requirements.Set, contradictions []contradiction.Contradiction) State {
	if len(contradictions) > 0 {
		return StateContradictionPending
	}
	if _, ok := reqs.Category(); !ok {
		return StateNeedsCategory
	}
	if _, ok := reqs.Budget(); !ok {
		return StateNeedsBudget
	}
	return StateReadyToRecommend
}
