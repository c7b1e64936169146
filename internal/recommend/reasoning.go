package recommend

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/priyankdesai/smartshop/internal/catalog"
	"github.com/priyankdesai/smartshop/internal/requirements"
)

// buildReasoning lists up to four reasons for recommending p, in a fixed
// priority order: budget fit, performance, deal, then top-priority wins.
func buildReasoning(reqs requirements.Set, priorities map[string]int, p catalog.Product) []string {
	var reasoning []string

	budget, _ := reqs.Budget()
	if budget > 0 && p.Price != nil {
		price := p.Price.CurrentPrice
		if float64(price) <= float64(budget)*0.9 {
			reasoning = append(reasoning,
				fmt.Sprintf("Excellent value - ₹%s under your budget", groupINR(budget-price)))
		} else if price <= budget {
			reasoning = append(reasoning,
				fmt.Sprintf("Fits your ₹%s budget perfectly", groupINR(budget)))
		}
	}

	if p.Reviews != nil {
		if perf := p.Reviews.CategoryRatings["performance"]; perf >= 4.0 {
			reasoning = append(reasoning,
				fmt.Sprintf("Strong performance rating (%.1f/5.0) from users", perf))
		}
	}

	if p.Price != nil && p.Price.DiscountPercentage > 10 {
		reasoning = append(reasoning,
			fmt.Sprintf("Great deal - %.0f%% discount from original price", p.Price.DiscountPercentage))
	}

	for _, feature := range sortedKeys(priorities) {
		if priorities[feature] < 8 || p.Reviews == nil {
			continue
		}
		if p.Reviews.CategoryRatings[normalizeFeature(feature)] >= 4.0 {
			reasoning = append(reasoning, "Excels in your top priority: "+feature)
		}
	}

	if len(reasoning) > 4 {
		reasoning = reasoning[:4]
	}
	return reasoning
}

// buildTradeOffs flags the product's weaker review categories.
func buildTradeOffs(p catalog.Product) map[string]string {
	tradeOffs := map[string]string{}
	if p.Reviews == nil {
		return tradeOffs
	}
	for category, rating := range p.Reviews.CategoryRatings {
		readable := strings.ReplaceAll(category, "_", " ")
		switch {
		case rating < 3.5:
			tradeOffs[category] = fmt.Sprintf("Below average %s (%.1f/5.0)", readable, rating)
		case rating < 4.0:
			tradeOffs[category] = fmt.Sprintf("Average %s (%.1f/5.0)", readable, rating)
		}
	}
	return tradeOffs
}

func buildDealHighlights(p catalog.Product) []string {
	var highlights []string
	if p.Price.DiscountPercentage > 15 {
		highlights = append(highlights,
			fmt.Sprintf("Major discount: %.0f%% off", p.Price.DiscountPercentage))
	}
	if p.Price.IsGoodDeal {
		highlights = append(highlights, "Near historical low price")
	}
	alerts := p.Price.PriceDropAlerts
	if len(alerts) > 2 {
		alerts = alerts[:2]
	}
	return append(highlights, alerts...)
}

func buildUrgencyFactors(p catalog.Product) []string {
	var factors []string
	for _, status := range p.StockStatus {
		if strings.Contains(status, "Limited") {
			factors = append(factors, "Limited stock across platforms")
			break
		}
	}
	if p.Price != nil && p.Price.Trend == "increasing" {
		factors = append(factors, "Price trend is increasing")
	}
	if p.UrgencyScore >= 7 {
		factors = append(factors, "Good time to buy based on market analysis")
	}
	return factors
}

// addComparatives fills the per-batch claims: why each pick beats the
// others (strictly cheaper, strictly higher rated) and what a cheaper
// alternative would give up (this product's standout ratings).
func addComparatives(recs []Recommendation) {
	for i := range recs {
		p := recs[i].Product

		var reasons []string
		for j := range recs {
			if j == i {
				continue
			}
			other := recs[j].Product
			if p.Price != nil && other.Price != nil && p.Price.CurrentPrice < other.Price.CurrentPrice {
				reasons = append(reasons, fmt.Sprintf("₹%s cheaper than %s",
					groupINR(other.Price.CurrentPrice-p.Price.CurrentPrice), other.Name))
			}
			if p.Reviews != nil && other.Reviews != nil && p.Reviews.OverallRating > other.Reviews.OverallRating {
				reasons = append(reasons, fmt.Sprintf("Higher rated than %s (%.1f vs %.1f)",
					other.Name, p.Reviews.OverallRating, other.Reviews.OverallRating))
			}
		}
		if len(reasons) > 3 {
			reasons = reasons[:3]
		}
		recs[i].WhyBetterThanAlternatives = reasons

		if p.Reviews != nil {
			var strong []string
			for category, rating := range p.Reviews.CategoryRatings {
				if rating >= 4.3 {
					strong = append(strong, category)
				}
			}
			sort.Strings(strong)
			if len(strong) > 3 {
				strong = strong[:3]
			}
			for _, category := range strong {
				recs[i].WhatYouMightMiss = append(recs[i].WhatYouMightMiss,
					"Excellent "+strings.ReplaceAll(category, "_", " "))
			}
		}
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// groupINR renders an amount with comma grouping ("60,000").
func groupINR(amount int) string {
	s := strconv.Itoa(amount)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
