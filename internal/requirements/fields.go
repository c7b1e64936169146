package requirements

import "encoding/json"

// Field identifies one key in the evolving user-intent map. The known
// fields are a closed set; anything else travels through the same map as
// an extension field.
type Field string

const (
	FieldCategory           Field = "category"
	FieldBudget             Field = "budget"
	FieldBudgetFlexibility  Field = "budget_flexibility"
	FieldUseCase            Field = "use_case"
	FieldExpertiseLevel     Field = "expertise_level"
	FieldPreferBrands       Field = "prefer_brands"
	FieldAvoidBrands        Field = "avoid_brands"
	FieldMustHaveFeatures   Field = "must_have_features"
	FieldNiceToHaveFeatures Field = "nice_to_have_features"
	FieldDontCareFeatures   Field = "dont_care_features"
)

// Kind discriminates the variants of a requirement Value.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindList
)

// Value is a tagged union over the three value shapes a requirement
// field can hold: a string scalar, an integer, or an ordered string list.
type Value struct {
	Kind Kind
	Str  string
	Num  int
	List []string
}

// String wraps a string scalar.
func String(s string) Value { return Value{Kind: KindString, Str: s} }

// Number wraps an integer scalar.
func Number(n int) Value { return Value{Kind: KindNumber, Num: n} }

// List wraps an ordered list of strings.
func List(items ...string) Value { return Value{Kind: KindList, List: items} }

// MarshalJSON emits the underlying scalar or list so requirement maps
// serialize the way the frontend expects ("budget": 60000, not a tagged
// wrapper).
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindNumber:
		return json.Marshal(v.Num)
	case KindList:
		if v.List == nil {
			return json.Marshal([]string{})
		}
		return json.Marshal(v.List)
	default:
		return json.Marshal(v.Str)
	}
}

// UnmarshalJSON accepts the same natural forms MarshalJSON produces.
func (v *Value) UnmarshalJSON(data []byte) error {
	var num int
	if err := json.Unmarshal(data, &num); err == nil {
		*v = Number(num)
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*v = String(str)
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*v = List(list...)
	return nil
}

// Set is a requirement map. Keys are unique; Merge defines how later
// extractions combine with earlier ones.
type Set map[Field]Value

// appendFields are the keys that accumulate across turns instead of
// being overwritten by a later extraction.
var appendFields = map[Field]bool{
	FieldPreferBrands: true,
	FieldAvoidBrands:  true,
}

// Merge folds a newly extracted partial set into s. The merge is
// right-biased: the incoming value wins for every scalar key, while the
// brand preference lists append (deduplicated, preserving order).
func (s Set) Merge(partial Set) {
	for field, incoming := range partial {
		if appendFields[field] {
			existing := s[field].List
			s[field] = List(appendUnique(existing, incoming.List...)...)
			continue
		}
		s[field] = incoming
	}
}

// Clone returns a deep copy of the set.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for field, v := range s {
		if v.Kind == KindList {
			list := make([]string, len(v.List))
			copy(list, v.List)
			v.List = list
		}
		out[field] = v
	}
	return out
}

// Category returns the category field, if set.
func (s Set) Category() (string, bool) {
	v, ok := s[FieldCategory]
	return v.Str, ok && v.Kind == KindString
}

// Budget returns the budget field, if set.
func (s Set) Budget() (int, bool) {
	v, ok := s[FieldBudget]
	return v.Num, ok && v.Kind == KindNumber
}

// UseCase returns the use_case field, if set.
func (s Set) UseCase() (string, bool) {
	v, ok := s[FieldUseCase]
	return v.Str, ok && v.Kind == KindString
}

// ExpertiseLevel returns the expertise_level field, if set.
func (s Set) ExpertiseLevel() (string, bool) {
	v, ok := s[FieldExpertiseLevel]
	return v.Str, ok && v.Kind == KindString
}

// Strings returns the list stored under field, or nil.
func (s Set) Strings(field Field) []string {
	v, ok := s[field]
	if !ok || v.Kind != KindList {
		return nil
	}
	return v.List
}

func appendUnique(list []string, items ...string) []string {
	seen := make(map[string]bool, len(list))
	for _, it := range list {
		seen[it] = true
	}
	for _, it := range items {
		if it == "" || seen[it] {
			continue
		}
		list = append(list, it)
		seen[it] = true
	}
	return list
}
