package uroman

import "testing"

func TestRuleStoreLookupMiss(t *testing.T) {
	rs := newRuleStore()
	if got := rs.Lookup("x"); got != nil {
		t.Errorf("Lookup on empty store = %v, want nil", got)
	}
}

func TestRuleStoreAddRuleAppendsByDefault(t *testing.T) {
	rs := newRuleStore()
	rs.AddRule(NewSimpleRule("a", "alpha", "man"))
	rs.AddRule(NewSimpleRule("a", "alt-alpha", "man"))

	got := rs.Lookup("a")
	if len(got) != 2 {
		t.Fatalf("Lookup(a) returned %d rules, want 2", len(got))
	}
	if got[0].T != "alpha" || got[1].T != "alt-alpha" {
		t.Errorf("rules out of insertion order: %+v", got)
	}
}

// TestRuleStoreReplacesSingleUnconditionalUdOrOw covers spec.md's
// load-time replacement invariant: a single existing unconditional ud/ow
// rule is replaced in place by a new unconditional rule, rather than
// accumulating.
func TestRuleStoreReplacesSingleUnconditionalUdOrOw(t *testing.T) {
	tests := []struct {
		name string
		prov string
	}{
		{"ud provenance", "ud"},
		{"ow provenance", "ow"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := newRuleStore()
			rs.AddRule(NewSimpleRule("é", "e", tt.prov))
			rs.AddRule(NewSimpleRule("é", "e-acute", "man"))

			got := rs.Lookup("é")
			if len(got) != 1 {
				t.Fatalf("Lookup(é) returned %d rules, want 1 (replaced)", len(got))
			}
			if got[0].T != "e-acute" || got[0].Prov != "man" {
				t.Errorf("replacement rule = %+v, want T=e-acute Prov=man", got[0])
			}
		})
	}
}

// TestRuleStoreDoesNotReplaceWhenMultipleRulesExist covers the "only a
// single existing rule" half of the replacement invariant.
func TestRuleStoreDoesNotReplaceWhenMultipleRulesExist(t *testing.T) {
	rs := newRuleStore()
	cond := &Rule{S: "a", T: "first", Prov: "ud", Lcodes: map[string]bool{"eng": true}}
	rs.AddRule(cond)
	rs.AddRule(NewSimpleRule("a", "second", "ud"))
	rs.AddRule(NewSimpleRule("a", "third", "man"))

	got := rs.Lookup("a")
	if len(got) != 3 {
		t.Fatalf("Lookup(a) returned %d rules, want 3 (no replacement once >1 exists)", len(got))
	}
}

func TestRuleStoreHasPrefix(t *testing.T) {
	rs := newRuleStore()
	rs.AddRule(NewSimpleRule("abc", "xyz", "man"))

	tests := []struct {
		key  string
		want bool
	}{
		{"a", true},
		{"ab", true},
		{"abc", true},
		{"abcd", false},
		{"b", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := rs.HasPrefix(tt.key); got != tt.want {
				t.Errorf("HasPrefix(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestRuleIsUnconditional(t *testing.T) {
	simple := NewSimpleRule("a", "b", "man")
	if !simple.IsUnconditional() {
		t.Errorf("NewSimpleRule result should be unconditional")
	}

	restricted := &Rule{S: "a", T: "b", Prov: "man", Lcodes: map[string]bool{"eng": true}}
	if restricted.IsUnconditional() {
		t.Errorf("rule with an lcode restriction should not be unconditional")
	}
}

func TestContextPredicateStartAndEndOfString(t *testing.T) {
	input := []rune("abc")
	props := newUnicodeProps()

	start := ContextPredicate{Kind: PredStartOfString}
	if !start.Matches(input, 0, 1, props) {
		t.Errorf("PredStartOfString should match at i=0")
	}
	if start.Matches(input, 1, 2, props) {
		t.Errorf("PredStartOfString should not match at i=1")
	}

	end := ContextPredicate{Kind: PredEndOfString}
	if !end.Matches(input, 2, 3, props) {
		t.Errorf("PredEndOfString should match at j=len(input)")
	}
	if end.Matches(input, 0, 1, props) {
		t.Errorf("PredEndOfString should not match at j=1")
	}
}

func TestRuleMatchesRespectsLcodeRestriction(t *testing.T) {
	r := &Rule{S: "a", T: "b", Prov: "man", Lcodes: map[string]bool{"rus": true}}
	input := []rune("a")
	props := newUnicodeProps()

	if r.Matches(input, 0, 1, "eng", props) {
		t.Errorf("rule restricted to rus should not match under lcode eng")
	}
	if !r.Matches(input, 0, 1, "rus", props) {
		t.Errorf("rule restricted to rus should match under lcode rus")
	}
	if r.Matches(input, 0, 1, "", props) {
		t.Errorf("rule restricted to rus should not match with no lcode given")
	}
}
