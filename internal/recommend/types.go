// Package recommend ranks catalog candidates against the accumulated
// requirements and explains each pick.
package recommend

import "github.com/priyankdesai/smartshop/internal/catalog"

// Recommendation is one ranked product with its score and the
// explanations shown to the user.
type Recommendation struct {
	Product    catalog.Product   `json:"product"`
	MatchScore float64           `json:"match_score"`
	Reasoning  []string          `json:"reasoning"`
	TradeOffs  map[string]string `json:"trade_offs"`
	Confidence float64           `json:"confidence"`

	DealHighlights []string `json:"deal_highlights"`
	SavingsAmount  int      `json:"savings_amount"`
	UrgencyFactors []string `json:"urgency_factors"`

	WhyBetterThanAlternatives []string `json:"why_better_than_alternatives"`
	WhatYouMightMiss          []string `json:"what_you_might_miss"`
}
