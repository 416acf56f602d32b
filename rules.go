package uroman

import (
	"regexp"
	"sync"
)

// PredicateKind enumerates the context-predicate vocabulary the bundled
// rule tables use, per spec.md §4.1: "character-class regex, 'is vowel
// sign', 'is virama', 'is start of string', 'is end of string', and
// 'preceded/followed by same script'".
type PredicateKind int

const (
	PredRegexLeft PredicateKind = iota
	PredRegexRight
	PredStartOfString
	PredEndOfString
	PredIsVowelSignLeft
	PredIsVowelSignRight
	PredIsViramaLeft
	PredIsViramaRight
	PredSameScriptLeft
	PredSameScriptRight
)

// ContextPredicate is one applicability condition attached to a Rule.
type ContextPredicate struct {
	Kind    PredicateKind
	Pattern *regexp.Regexp // only set for the Regex* kinds
}

// Matches evaluates the predicate against the occurrence of a rule's key
// at input[i:j]. `input` is the full rune sequence of the romanize call.
func (cp ContextPredicate) Matches(input []rune, i, j int, props *UnicodeProps) bool {
	switch cp.Kind {
	case PredStartOfString:
		return i == 0
	case PredEndOfString:
		return j == len(input)
	case PredRegexLeft:
		return cp.Pattern.MatchString(string(input[:i]))
	case PredRegexRight:
		return cp.Pattern.MatchString(string(input[j:]))
	case PredIsVowelSignLeft:
		return i > 0 && props.IsVowelSign(input[i-1])
	case PredIsVowelSignRight:
		return j < len(input) && props.IsVowelSign(input[j])
	case PredIsViramaLeft:
		return i > 0 && props.IsVirama(input[i-1])
	case PredIsViramaRight:
		return j < len(input) && props.IsVirama(input[j])
	case PredSameScriptLeft:
		if i == 0 || j == i {
			return false
		}
		return props.ScriptOf(input[i-1]) != "" && props.ScriptOf(input[i-1]) == props.ScriptOf(input[i])
	case PredSameScriptRight:
		if j >= len(input) {
			return false
		}
		return props.ScriptOf(input[j]) != "" && props.ScriptOf(input[j]) == props.ScriptOf(input[j-1])
	default:
		return true
	}
}

// Rule is one entry in the RuleStore's ordered list for a given source key.
// Grounded on original_source/src/lib.rs's `RomRule` (referenced but not
// itself kept in the retrieval pack; reconstructed from its call sites in
// `add_rom_rule` / `RomRule::from_line` / `RomRule::new_simple`, and from
// spec.md §3 "RuleStore entry").
type Rule struct {
	S             string
	T             string
	Prov          string
	LeftContexts  []ContextPredicate
	RightContexts []ContextPredicate
	Lcodes        map[string]bool // nil/empty means unrestricted

	IsMinusSign       bool
	IsPlusSign        bool
	FractionConnector bool
	IsLargePower      bool
}

// NewSimpleRule builds an unconditional, unrestricted rule — used by the
// Pinyin loader and the Thai auto-cancellation generator.
func NewSimpleRule(s, t, prov string) *Rule {
	return &Rule{S: s, T: t, Prov: prov}
}

// IsUnconditional reports whether the rule has no context predicates and no
// language restriction, matching the replacement-on-load rule in spec.md
// §3/§9: "a single unconditional ud/ow rule is replaced in place".
func (r *Rule) IsUnconditional() bool {
	return len(r.LeftContexts) == 0 && len(r.RightContexts) == 0 && len(r.Lcodes) == 0
}

// Matches reports whether r applies to the occurrence of its key at
// input[i:j] under the given language code (per spec.md §4.1).
func (r *Rule) Matches(input []rune, i, j int, lcode string, props *UnicodeProps) bool {
	for _, p := range r.LeftContexts {
		if !p.Matches(input, i, j, props) {
			return false
		}
	}
	for _, p := range r.RightContexts {
		if !p.Matches(input, i, j, props) {
			return false
		}
	}
	if len(r.Lcodes) > 0 {
		if lcode == "" || !r.Lcodes[lcode] {
			return false
		}
	}
	return true
}

// RuleStore is the keyed map from source substring to its ordered rule
// list (component C1). It is built once at construction time and treated
// as read-only by every Romanize call; the mutex exists only to guard the
// rare post-construction mutation path (the feedback service replaying a
// user correction as a new "man" rule), not steady-state lookups.
type RuleStore struct {
	mu       sync.RWMutex
	rules    map[string][]*Rule
	prefixes map[string]bool
}

func newRuleStore() *RuleStore {
	return &RuleStore{
		rules:    make(map[string][]*Rule, 4096),
		prefixes: make(map[string]bool, 8192),
	}
}

// Lookup returns the ordered rule list for an exact key, or nil.
func (rs *RuleStore) Lookup(key string) []*Rule {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return rs.rules[key]
}

// HasPrefix reports whether key is a proper or complete prefix of some
// known rule key.
func (rs *RuleStore) HasPrefix(key string) bool {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return rs.prefixes[key]
}

// RegisterPrefix records every prefix of s in the prefix bloom, s itself
// included, so HasPrefix also reports true for a complete key.
func (rs *RuleStore) RegisterPrefix(s string) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.registerPrefixLocked(s)
}

func (rs *RuleStore) registerPrefixLocked(s string) {
	runes := []rune(s)
	prefix := make([]rune, 0, len(runes))
	for _, c := range runes {
		prefix = append(prefix, c)
		rs.prefixes[string(prefix)] = true
	}
}

// AddRule inserts a rule, applying the load-time replacement invariant: a
// single existing unconditional ud/ow rule is replaced in place; otherwise
// the new rule is appended (spec.md §3, §9).
func (rs *RuleStore) AddRule(r *Rule) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	rs.registerPrefixLocked(r.S)

	existing := rs.rules[r.S]
	shouldReplace := len(existing) == 1 &&
		(existing[0].Prov == "ud" || existing[0].Prov == "ow") &&
		existing[0].IsUnconditional() &&
		r.IsUnconditional()

	if shouldReplace {
		rs.rules[r.S] = []*Rule{r}
	} else {
		rs.rules[r.S] = append(existing, r)
	}
}
