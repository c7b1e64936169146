package requirements

import (
	"reflect"
	"testing"
)

func TestExtractCategoryAndBudget(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		want      Set
	}{
		{
			name:      "gaming laptop with currency budget",
			utterance: "Gaming Laptops under ₹60,000",
			want: Set{
				FieldCategory:          String("gaming laptops"),
				FieldUseCase:           String("gaming"),
				FieldBudget:            Number(60000),
				FieldBudgetFlexibility: String("strict"),
			},
		},
		{
			name:      "category only",
			utterance: "I need a smartphone",
			want: Set{
				FieldCategory: String("smartphones"),
			},
		},
		{
			name:      "k suffix multiplies",
			utterance: "Gaming laptop under 30k",
			want: Set{
				FieldCategory:          String("gaming laptops"),
				FieldUseCase:           String("gaming"),
				FieldBudget:            Number(30000),
				FieldBudgetFlexibility: String("strict"),
			},
		},
		{
			name:      "around marks flexible budget",
			utterance: "laptop around ₹50000 would be great",
			want: Set{
				FieldCategory:          String("laptops"),
				FieldBudget:            Number(50000),
				FieldBudgetFlexibility: String("flexible"),
			},
		},
		{
			name:      "specific phrase beats generic suffix",
			utterance: "looking for a business laptop",
			want: Set{
				FieldCategory: String("laptops"),
				FieldUseCase:  String("business"),
			},
		},
		{
			name:      "bare small number reads as thousands",
			utterance: "around 60 for headphones",
			want: Set{
				FieldCategory:          String("headphones"),
				FieldUseCase:           String("music"),
				FieldBudget:            Number(60000),
				FieldBudgetFlexibility: String("flexible"),
			},
		},
		{
			name:      "headphone phrases not shadowed by phone",
			utterance: "recommend some earphones",
			want: Set{
				FieldCategory: String("headphones"),
				FieldUseCase:  String("music"),
			},
		},
		{
			name:      "no rule matches",
			utterance: "hello there",
			want:      Set{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.utterance, Set{})
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract(%q) = %v, want %v", tt.utterance, got, tt.want)
			}
		})
	}
}

func TestExtractUseCaseSuppression(t *testing.T) {
	// A category match that implies a use case blocks the keyword scan
	// within the same call.
	got := Extract("gaming laptop for work", Set{})
	if uc, _ := got.UseCase(); uc != "gaming" {
		t.Errorf("use_case = %q, want %q", uc, "gaming")
	}

	// A use case already known from an earlier turn is not re-derived.
	existing := Set{FieldUseCase: String("gaming")}
	got = Extract("mostly for office work", existing)
	if _, ok := got[FieldUseCase]; ok {
		t.Errorf("use_case re-derived over existing value: %v", got)
	}

	// With nothing known, the keyword scan applies in order.
	got = Extract("I need it for video editing", Set{})
	if uc, _ := got.UseCase(); uc != "video editing" {
		t.Errorf("use_case = %q, want %q", uc, "video editing")
	}
}

func TestExtractExpertise(t *testing.T) {
	got := Extract("I'm new to gaming laptops", Set{})
	if level, _ := got.ExpertiseLevel(); level != "beginner" {
		t.Errorf("expertise = %q, want beginner", level)
	}
	got = Extract("I want a professional workstation", Set{})
	if level, _ := got.ExpertiseLevel(); level != "expert" {
		t.Errorf("expertise = %q, want expert", level)
	}
	// Beginner indicators win when both appear.
	got = Extract("I'm a beginner but want something professional", Set{})
	if level, _ := got.ExpertiseLevel(); level != "beginner" {
		t.Errorf("expertise = %q, want beginner", level)
	}
}

func TestExtractBrands(t *testing.T) {
	got := Extract("I prefer Asus or Lenovo", Set{})
	if want := []string{"asus", "lenovo"}; !reflect.DeepEqual(got.Strings(FieldPreferBrands), want) {
		t.Errorf("prefer_brands = %v, want %v", got.Strings(FieldPreferBrands), want)
	}

	got = Extract("I had a bad experience with HP", Set{})
	if want := []string{"hp"}; !reflect.DeepEqual(got.Strings(FieldAvoidBrands), want) {
		t.Errorf("avoid_brands = %v, want %v", got.Strings(FieldAvoidBrands), want)
	}
	if got.Strings(FieldPreferBrands) != nil {
		t.Errorf("prefer_brands = %v, want none", got.Strings(FieldPreferBrands))
	}

	// "don't like" is an avoidance signal, not a preference.
	got = Extract("I don't like Dell", Set{})
	if want := []string{"dell"}; !reflect.DeepEqual(got.Strings(FieldAvoidBrands), want) {
		t.Errorf("avoid_brands = %v, want %v", got.Strings(FieldAvoidBrands), want)
	}
	if got.Strings(FieldPreferBrands) != nil {
		t.Errorf("prefer_brands = %v, want none", got.Strings(FieldPreferBrands))
	}
}

func TestExtractImportanceFeatures(t *testing.T) {
	got := Extract("must have: long battery life", Set{})
	if want := []string{"long battery life"}; !reflect.DeepEqual(got.Strings(FieldMustHaveFeatures), want) {
		t.Errorf("must_have_features = %v, want %v", got.Strings(FieldMustHaveFeatures), want)
	}

	got = Extract("nice to have a backlit keyboard", Set{})
	if list := got.Strings(FieldNiceToHaveFeatures); len(list) == 0 {
		t.Errorf("nice_to_have_features empty, want capture")
	}
}

func TestMergeAccumulatesBrandLists(t *testing.T) {
	current := Set{}
	current.Merge(Extract("I like Asus", Set{}))
	current.Merge(Extract("I also love MSI", Set{}))
	current.Merge(Extract("did I mention I like asus?", Set{}))

	if want := []string{"asus", "msi"}; !reflect.DeepEqual(current.Strings(FieldPreferBrands), want) {
		t.Errorf("prefer_brands = %v, want %v", current.Strings(FieldPreferBrands), want)
	}
}

func TestMergeRightBiasForScalars(t *testing.T) {
	current := Set{}
	current.Merge(Extract("gaming laptop under 60k", Set{}))
	current.Merge(Extract("actually make that around 80k", Set{}))

	if b, _ := current.Budget(); b != 80000 {
		t.Errorf("budget = %d, want 80000", b)
	}
	if f := current[FieldBudgetFlexibility].Str; f != "flexible" {
		t.Errorf("budget_flexibility = %q, want flexible", f)
	}
	if c, _ := current.Category(); c != "gaming laptops" {
		t.Errorf("category = %q, want gaming laptops", c)
	}
}
