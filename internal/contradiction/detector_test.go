package contradiction

import (
	"reflect"
	"testing"

	"github.com/priyankdesai/smartshop/internal/requirements"
)

func TestDetectBudgetPerformance(t *testing.T) {
	reqs := requirements.Set{
		requirements.FieldCategory: requirements.String("gaming laptops"),
		requirements.FieldBudget:   requirements.Number(30000),
	}

	got := Detect(reqs)
	if len(got) != 1 {
		t.Fatalf("Detect() returned %d contradictions, want 1", len(got))
	}
	if got[0].Type != "budget_performance" {
		t.Errorf("type = %q, want budget_performance", got[0].Type)
	}
	if len(got[0].Suggestions) != 3 {
		t.Errorf("suggestions = %d, want 3", len(got[0].Suggestions))
	}
	if want := "Gaming laptops under ₹30,000 typically have very limited gaming performance. " +
		"Entry-level gaming usually starts around ₹45,000."; got[0].Message != want {
		t.Errorf("message = %q, want %q", got[0].Message, want)
	}
}

func TestDetectBudgetAtThreshold(t *testing.T) {
	reqs := requirements.Set{
		requirements.FieldCategory: requirements.String("gaming laptops"),
		requirements.FieldBudget:   requirements.Number(45000),
	}
	if got := Detect(reqs); len(got) != 0 {
		t.Errorf("Detect() at threshold = %v, want none", got)
	}
}

func TestDetectBudgetOverkill(t *testing.T) {
	reqs := requirements.Set{
		requirements.FieldBudget: requirements.Number(250000),
	}
	got := Detect(reqs)
	if len(got) != 1 || got[0].Type != "budget_overkill" {
		t.Fatalf("Detect() = %v, want one budget_overkill", got)
	}

	// Exactly 200000 is allowed.
	reqs[requirements.FieldBudget] = requirements.Number(200000)
	if got := Detect(reqs); len(got) != 0 {
		t.Errorf("Detect() at 200000 = %v, want none", got)
	}
}

func TestDetectFeatureConflict(t *testing.T) {
	reqs := requirements.Set{
		requirements.FieldUseCase:          requirements.String("gaming"),
		requirements.FieldMustHaveFeatures: requirements.List("long battery life"),
	}
	got := Detect(reqs)
	if len(got) != 1 || got[0].Type != "feature_conflict" {
		t.Fatalf("Detect() = %v, want one feature_conflict", got)
	}

	// Battery life as nice-to-have is not a conflict.
	reqs = requirements.Set{
		requirements.FieldUseCase:            requirements.String("gaming"),
		requirements.FieldNiceToHaveFeatures: requirements.List("long battery life"),
	}
	if got := Detect(reqs); len(got) != 0 {
		t.Errorf("Detect() = %v, want none for nice-to-have", got)
	}
}

func TestDetectOrderAndIdempotence(t *testing.T) {
	reqs := requirements.Set{
		requirements.FieldCategory:         requirements.String("gaming laptops"),
		requirements.FieldBudget:           requirements.Number(30000),
		requirements.FieldUseCase:          requirements.String("gaming"),
		requirements.FieldMustHaveFeatures: requirements.List("long battery life"),
	}

	first := Detect(reqs)
	second := Detect(reqs)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Detect() not idempotent: %v vs %v", first, second)
	}
	if len(first) != 2 {
		t.Fatalf("Detect() returned %d contradictions, want 2", len(first))
	}
	if first[0].Type != "budget_performance" || first[1].Type != "feature_conflict" {
		t.Errorf("order = [%s, %s], want [budget_performance, feature_conflict]",
			first[0].Type, first[1].Type)
	}
}

func TestDetectEmptyRequirements(t *testing.T) {
	if got := Detect(requirements.Set{}); len(got) != 0 {
		t.Errorf("Detect(empty) = %v, want none", got)
	}
}

func TestFormatINR(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{30000, "30,000"},
		{250000, "250,000"},
		{1500000, "1,500,000"},
	}
	for _, tt := range tests {
		if got := formatINR(tt.in); got != tt.want {
			t.Errorf("formatINR(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
