package recommend

import (
	"sort"
	"strings"

	"github.com/priyankdesai/smartshop/internal/catalog"
	"github.com/priyankdesai/smartshop/internal/requirements"
)

// Component weights of the match score. The accumulated score is
// rescaled by the weights actually applied, so a candidate without
// review data is not penalized for the missing component.
const (
	budgetWeight   = 1.5
	reviewsWeight  = 1.25
	priorityWeight = 1.5
	dealWeight     = 0.75

	// perPriorityFactor caps the priority component at priorityWeight
	// for five perfectly rated, top-importance features.
	perPriorityFactor = 0.3

	defaultScore  = 3.0
	maxConfidence = 0.95
)

// maxRecommendations is how many ranked products a turn surfaces.
const maxRecommendations = 3

// Recommend scores and ranks candidates against the requirements and
// priority rankings, returning at most three recommendations in
// descending match-score order. Ties keep candidate input order. An
// empty candidate slice yields an empty result, not an error.
func Recommend(reqs requirements.Set, priorities map[string]int, candidates []catalog.Product) []Recommendation {
	recs := make([]Recommendation, 0, len(candidates))
	for _, p := range candidates {
		score := matchScore(reqs, priorities, p)
		rec := Recommendation{
			Product:    p,
			MatchScore: score,
			Reasoning:  buildReasoning(reqs, priorities, p),
			TradeOffs:  buildTradeOffs(p),
			Confidence: confidence(score),
		}
		if p.Price != nil {
			rec.SavingsAmount = p.Price.OriginalPrice - p.Price.CurrentPrice
			rec.DealHighlights = buildDealHighlights(p)
		}
		rec.UrgencyFactors = buildUrgencyFactors(p)
		recs = append(recs, rec)
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].MatchScore > recs[j].MatchScore
	})
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}

	addComparatives(recs)
	return recs
}

// matchScore blends budget fit, review quality, priority fit, and deal
// quality into a [0, 5] score.
func matchScore(reqs requirements.Set, priorities map[string]int, p catalog.Product) float64 {
	var score, maxScore float64

	budget, hasBudget := reqs.Budget()
	if hasBudget && budget > 0 && p.Price != nil {
		price := float64(p.Price.CurrentPrice)
		b := float64(budget)
		if price <= b {
			score += budgetWeight * (1 - 0.5*price/b)
		} else {
			// Decays linearly from the at-budget value to zero at
			// 100% overage, so staying inside budget always wins on
			// this term.
			over := (price - b) / b
			if term := (budgetWeight / 2) * (1 - over); term > 0 {
				score += term
			}
		}
		maxScore += budgetWeight
	}

	if p.Reviews != nil {
		score += reviewsWeight * (p.Reviews.OverallRating / 5.0)
		maxScore += reviewsWeight
	}

	if len(priorities) > 0 {
		if p.Reviews != nil {
			for feature, importance := range priorities {
				rating, ok := p.Reviews.CategoryRatings[normalizeFeature(feature)]
				if !ok {
					continue
				}
				score += (float64(importance) / 10) * (rating / 5) * perPriorityFactor
			}
		}
		maxScore += priorityWeight
	}

	if p.Price != nil {
		score += dealWeight * (p.Price.DiscountPercentage / 100)
		maxScore += dealWeight
	}

	if maxScore == 0 {
		return defaultScore
	}
	final := score / maxScore * 5.0
	if final < 0 {
		return 0
	}
	if final > 5 {
		return 5
	}
	return final
}

func confidence(score float64) float64 {
	c := score/5 + 0.5
	if c > maxConfidence {
		return maxConfidence
	}
	return c
}

// normalizeFeature maps a user-facing feature name onto the review
// rating key space ("Battery Life" -> "battery_life").
func normalizeFeature(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}
