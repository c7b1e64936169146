// Package contradiction checks a requirement set for internally
// inconsistent combinations and describes how to resolve them.
package contradiction

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/priyankdesai/smartshop/internal/requirements"
)

// Contradiction describes one detected conflict between requirements,
// with concrete suggestions for resolving it.
type Contradiction struct {
	Type        string   `json:"type"`
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions"`
}

// Detection thresholds in rupees.
const (
	gamingEntryBudget   = 45000
	overkillBudgetFloor = 200000
)

// Detect returns every contradiction present in reqs, in a fixed rule
// order. It is pure and idempotent: the same set always yields the same
// records. Callers surface only the first one per turn.
func Detect(reqs requirements.Set) []Contradiction {
	var found []Contradiction

	category, _ := reqs.Category()
	budget, hasBudget := reqs.Budget()

	if hasBudget && category == "gaming laptops" && budget < gamingEntryBudget {
		found = append(found, Contradiction{
			Type: "budget_performance",
			Message: fmt.Sprintf("Gaming laptops under ₹%s typically have very limited gaming performance. "+
				"Entry-level gaming usually starts around ₹45,000.", formatINR(budget)),
			Suggestions: []string{
				"Increase budget to ₹45,000-50,000 for basic gaming",
				"Consider older/refurbished gaming laptops",
				"Look at regular laptops with integrated graphics for light gaming",
			},
		})
	}

	if hasBudget && budget > overkillBudgetFloor {
		found = append(found, Contradiction{
			Type: "budget_overkill",
			Message: fmt.Sprintf("₹%s budget can get you professional gaming/workstation laptops. "+
				"This might be overkill for casual gaming.", formatINR(budget)),
			Suggestions: []string{
				"Consider what games you actually play",
				"₹60,000-80,000 handles most games excellently",
				"Invest saved money in accessories (monitor, keyboard, mouse)",
			},
		})
	}

	mustHaves := strings.ToLower(strings.Join(reqs.Strings(requirements.FieldMustHaveFeatures), " "))
	useCase, _ := reqs.UseCase()
	if strings.Contains(mustHaves, "long battery life") && strings.Contains(strings.ToLower(useCase), "gaming") {
		found = append(found, Contradiction{
			Type: "feature_conflict",
			Message: "Gaming laptops typically have poor battery life during gaming (2-3 hours). " +
				"Long battery life and gaming performance are conflicting requirements.",
			Suggestions: []string{
				"Prioritize either gaming performance OR battery life",
				"Consider laptops with hybrid graphics for better battery",
				"Plan to use laptop plugged in for gaming",
			},
		})
	}

	return found
}

// formatINR renders an amount with comma grouping ("60,000").
func formatINR(amount int) string {
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
