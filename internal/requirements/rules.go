package requirements

import "regexp"

// categoryRule maps a phrase to a catalog category and, optionally, the
// use case the phrase implies. Rules are evaluated in order and the
// first substring match wins, so more specific phrases ("gaming laptop")
// must appear before their generic suffixes ("laptop").
type categoryRule struct {
	phrase   string
	category string
	useCase  string // empty when the phrase implies no use case
}

var categoryRules = []categoryRule{
	{"gaming laptop", "gaming laptops", "gaming"},
	{"gaming laptops", "gaming laptops", "gaming"},
	{"business laptop", "laptops", "business"},
	{"work laptop", "laptops", "work"},
	{"ultrabook", "laptops", "ultraportable"},
	{"laptop", "laptops", ""},
	// The headphone phrases all contain "phone", so they must sit above
	// the smartphone entries or the generic "phone" rule shadows them.
	{"wireless headphones", "headphones", "music"},
	{"bluetooth headphones", "headphones", "music"},
	{"headphones", "headphones", "music"},
	{"earphones", "headphones", "music"},
	{"earbuds", "headphones", "music"},
	{"gaming phone", "smartphones", "gaming"},
	{"camera phone", "smartphones", "photography"},
	{"smartphone", "smartphones", ""},
	{"phone", "smartphones", ""},
	{"smartwatch", "smartwatches", "fitness"},
	{"smartwatches", "smartwatches", "fitness"},
	{"fitness watch", "smartwatches", "fitness"},
	{"smart watch", "smartwatches", "fitness"},
}

// budgetPatterns are tried in order; the first that matches decides the
// budget. Group 1 captures the number, group 2 the optional thousands
// marker attached to it.
var budgetPatterns = []*regexp.Regexp{
	regexp.MustCompile(`under[^\d]*₹?\s*(\d+)(k|thousand|,000)?`),
	regexp.MustCompile(`below[^\d]*₹?\s*(\d+)(k|thousand|,000)?`),
	regexp.MustCompile(`₹\s*(\d+)(k|thousand|,000)?`),
	regexp.MustCompile(`budget[^\d]*₹?\s*(\d+)(k|thousand|,000)?`),
	regexp.MustCompile(`around[^\d]*₹?\s*(\d+)(k|thousand|,000)?`),
	regexp.MustCompile(`(\d+)(k|thousand|,000)?\s*budget`),
	regexp.MustCompile(`^(\d+)$`),
	regexp.MustCompile(`^(\d+)k$`),
}

type useCaseRule struct {
	keyword string
	useCase string
}

var useCaseRules = []useCaseRule{
	{"gaming", "gaming"},
	{"games", "gaming"},
	{"work", "work"},
	{"business", "business"},
	{"office", "business"},
	{"study", "study"},
	{"student", "study"},
	{"photography", "photography"},
	{"photos", "photography"},
	{"video editing", "video editing"},
	{"editing", "video editing"},
	{"music", "music"},
	{"audio", "music"},
	{"fitness", "fitness"},
	{"exercise", "fitness"},
}

var beginnerIndicators = []string{"new to", "first time", "don't know much", "beginner", "confused"}

var expertIndicators = []string{"expert", "advanced", "professional", "experienced", "technical"}

var preferKeywords = []string{"prefer", "like", "want", "love"}

var avoidKeywords = []string{"don't like", "avoid", "hate", "bad experience"}

var knownBrands = []string{"asus", "hp", "dell", "lenovo", "acer", "msi", "apple", "samsung", "xiaomi", "oneplus"}

// importanceRule captures the feature text following an importance
// keyword ("must have: long battery life") into the matching list field.
type importanceRule struct {
	field    Field
	keywords []string
	patterns []*regexp.Regexp
}

var importanceRules = buildImportanceRules()

func buildImportanceRules() []importanceRule {
	rules := []importanceRule{
		{field: FieldMustHaveFeatures, keywords: []string{"essential", "must have", "required", "important"}},
		{field: FieldNiceToHaveFeatures, keywords: []string{"would like", "nice to have", "bonus", "if possible"}},
		{field: FieldDontCareFeatures, keywords: []string{"don't care", "doesn't matter", "not important"}},
	}
	for i := range rules {
		for _, kw := range rules[i].keywords {
			rules[i].patterns = append(rules[i].patterns,
				regexp.MustCompile(regexp.QuoteMeta(kw)+`[:\s]+([^.!?]*)`))
		}
	}
	return rules
}
