// Package requirements turns free-text utterances into structured
// requirement fields using fixed, ordered rule tables. Extraction is a
// pure function: no state, no errors, an empty set on a miss.
package requirements

import (
	"strconv"
	"strings"
)

// Extract scans one user utterance and returns the partial requirement
// set it mentions. existing is consulted only to avoid re-deriving
// fields that are already known (a use_case implied by an earlier
// category match is not clobbered by the generic keyword scan).
//
// Rules run in a fixed priority order (category, budget, use case,
// expertise, brand preferences, importance-tagged features) and within
// each table the first match wins.
func Extract(utterance string, existing Set) Set {
	out := Set{}
	lower := strings.ToLower(utterance)

	extractCategory(lower, out)
	extractBudget(lower, out)
	extractUseCase(lower, out, existing)
	extractExpertise(lower, out)
	extractBrands(lower, out)
	extractImportance(lower, out)

	return out
}

func extractCategory(lower string, out Set) {
	for _, rule := range categoryRules {
		if !strings.Contains(lower, rule.phrase) {
			continue
		}
		out[FieldCategory] = String(rule.category)
		if rule.useCase != "" {
			out[FieldUseCase] = String(rule.useCase)
		}
		return
	}
}

func extractBudget(lower string, out Set) {
	for _, re := range budgetPatterns {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		// "60k", "60 thousand" and "60,000" all mean 60000; a bare
		// number under 1000 is read as thousands too ("around 60").
		if m[2] != "" || n < 1000 {
			n *= 1000
		}
		out[FieldBudget] = Number(n)

		switch {
		case strings.Contains(lower, "under") || strings.Contains(lower, "below"):
			out[FieldBudgetFlexibility] = String("strict")
		case strings.Contains(lower, "around") || strings.Contains(lower, "approximately"):
			out[FieldBudgetFlexibility] = String("flexible")
		}
		return
	}
}

func extractUseCase(lower string, out Set, existing Set) {
	if _, ok := out[FieldUseCase]; ok {
		return
	}
	if _, ok := existing[FieldUseCase]; ok {
		return
	}
	for _, rule := range useCaseRules {
		if strings.Contains(lower, rule.keyword) {
			out[FieldUseCase] = String(rule.useCase)
			return
		}
	}
}

func extractExpertise(lower string, out Set) {
	if containsAny(lower, beginnerIndicators) {
		out[FieldExpertiseLevel] = String("beginner")
		return
	}
	if containsAny(lower, expertIndicators) {
		out[FieldExpertiseLevel] = String("expert")
	}
}

func extractBrands(lower string, out Set) {
	avoided := containsAny(lower, avoidKeywords)

	// "don't like" must not double as a "like" preference signal.
	preferScan := lower
	for _, kw := range avoidKeywords {
		preferScan = strings.ReplaceAll(preferScan, kw, " ")
	}
	preferred := containsAny(preferScan, preferKeywords)

	if !avoided && !preferred {
		return
	}
	for _, brand := range knownBrands {
		if !strings.Contains(lower, brand) {
			continue
		}
		if preferred {
			out[FieldPreferBrands] = List(appendUnique(out.Strings(FieldPreferBrands), brand)...)
		}
		if avoided {
			out[FieldAvoidBrands] = List(appendUnique(out.Strings(FieldAvoidBrands), brand)...)
		}
	}
}

func extractImportance(lower string, out Set) {
	for _, rule := range importanceRules {
		for _, re := range rule.patterns {
			m := re.FindStringSubmatch(lower)
			if m == nil {
				continue
			}
			feature := strings.TrimSpace(m[1])
			if feature == "" {
				continue
			}
			out[rule.field] = List(appendUnique(out.Strings(rule.field), feature)...)
		}
	}
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
