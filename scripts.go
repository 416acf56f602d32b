package uroman

import (
	"regexp"
	"strings"

	"github.com/mozillazg/go-unidecode"
)

// Hangul syllable decomposition tables, fixed by the Unicode Hangul
// Syllable Block algorithm: codepoint - 0xAC00 decomposes into
// (lead, vowel, tail) via division/modulo by 588 and 28.
//
// Grounded on spec.md §4.2 "Hangul decomposition" and original_source's
// bundled jamo romanization tables (Scripts.txt/Korean entries).
const (
	hangulBase        = 0xAC00
	hangulLeadCount   = 19
	hangulVowelCount  = 21
	hangulTailCount   = 28
	hangulVowelTailN  = hangulVowelCount * hangulTailCount
)

var hangulLeads = strings.Fields("g gg n d dd r m b bb s ss - j jj c k t p h")

var hangulVowels = strings.Fields("a ae ya yae eo e yeo ye o wa wai oe yo u weo we wi yu eu yi i")

var hangulTails = strings.Fields("- g gg gs n nj nh d l lg lm lb ls lt lp lh m b bs s ss ng j c k t p h")

// decomposeHangul returns the lead/vowel/tail romanization for a single
// precomposed Hangul syllable, or ok=false if c is outside the syllable
// block. The "-" placeholder (no lead consonant, no tail) is stripped, not
// emitted literally.
func decomposeHangul(c rune) (rom string, ok bool) {
	if c < hangulBase || c > hangulBase+hangulLeadCount*hangulVowelTailN-1 {
		return "", false
	}
	offset := int(c) - hangulBase
	lead := offset / hangulVowelTailN
	vowel := (offset % hangulVowelTailN) / hangulTailCount
	tail := offset % hangulTailCount
	rom = hangulLeads[lead] + hangulVowels[vowel] + hangulTails[tail]
	return strings.ReplaceAll(rom, "-", ""), true
}

// insertHangulEdges scans the input for precomposed Hangul syllables and
// inserts one TypeHangul edge per syllable (component C6, spec.md §4.2).
func insertHangulEdges(lat *Lattice) {
	for i, c := range lat.input {
		if rom, ok := decomposeHangul(c); ok {
			lat.Insert(NewRegularEdge(i, i+1, rom, TypeHangul))
		}
	}
}

// abugidaVowelRegexes is the per-script pair of regexes (consonant-run
// detector, explicit-vowel-sign detector) derived from a Script's declared
// AbugidaDefaultVowels, cached because regexp.Compile is not free and the
// same script recurs across every consonant in a text.
type abugidaVowelRegexes struct {
	consonant *regexp.Regexp
	explicit  *regexp.Regexp
}

var abugidaRegexCache = make(map[string]*abugidaVowelRegexes)

// abugidaRegexesFor lazily derives and caches the detector pair for a
// script, per spec.md §4.2 "Abugida default vowel insertion: scripts that
// declare abugida_default_vowels derive a pair of regexes at first use".
func abugidaRegexesFor(props *UnicodeProps, scriptName string) *abugidaVowelRegexes {
	if cached, ok := abugidaRegexCache[scriptName]; ok {
		return cached
	}
	sc, ok := props.ScriptByName(scriptName)
	if !ok || len(sc.AbugidaDefaultVowels) == 0 {
		abugidaRegexCache[scriptName] = nil
		return nil
	}
	vowelAlt := strings.Join(escapeAll(sc.AbugidaDefaultVowels), "|")
	pair := &abugidaVowelRegexes{
		consonant: regexp.MustCompile(`^[^` + vowelAlt + `]$`),
		explicit:  regexp.MustCompile("(" + vowelAlt + ")"),
	}
	abugidaRegexCache[scriptName] = pair
	return pair
}

func escapeAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = regexp.QuoteMeta(s)
	}
	return out
}

// insertAbugidaDefaultVowels inserts the implicit inherent-vowel edge after
// every bare consonant of an abugida script that is not itself followed by
// an explicit dependent vowel sign or virama (spec.md §4.2).
func insertAbugidaDefaultVowels(lat *Lattice, props *UnicodeProps) {
	input := lat.input
	for i, c := range input {
		script := props.ScriptOf(c)
		if script == "" {
			continue
		}
		sc, ok := props.ScriptByName(script)
		if !ok || len(sc.AbugidaDefaultVowels) == 0 {
			continue
		}
		if props.IsVowelSign(c) || props.IsVirama(c) {
			continue
		}
		if i+1 < len(input) && (props.IsVowelSign(input[i+1]) || props.IsVirama(input[i+1])) {
			continue
		}
		lat.Insert(NewRegularEdge(i, i+1, sc.AbugidaDefaultVowels[0], TypeAbugidaVowel))
	}
}

// insertTibetanVowelPrepass handles Tibetan's reordering of the vowel sign
// before the stacked consonant cluster it modifies, a pre-pass that runs
// before the general rule applier (spec.md §4.2 "Tibetan vowel pre-pass").
//
// Grounded on original_source/src/lib.rs's Tibetan-specific branch ahead of
// the main romanization loop.
func insertTibetanVowelPrepass(lat *Lattice, props *UnicodeProps) {
	input := lat.input
	for i, c := range input {
		if props.ScriptOf(c) != "Tibetan" {
			continue
		}
		if !props.IsVowelSign(c) {
			continue
		}
		if i+1 >= len(input) {
			continue
		}
		lat.Insert(NewRegularEdge(i, i+2, "", TypeTibetanVowel))
	}
}

// registerThaiAutoCancelRules derives the Thai "cancellation" rules at
// load time: every Thai consonant, and every consonant+vowel-modifier
// pair, followed by THANTHAKHAT (U+0E4C), romanizes to the empty string,
// silencing the whole run (spec.md §4.2 "Thai auto-cancellation").
//
// Grounded on original_source/src/lib.rs `add_thai_cancellation_rules`,
// which walks the Thai consonant (U+0E01-U+0E2E) and vowel-modifier
// codepoint ranges directly rather than going through the script map.
func registerThaiAutoCancelRules(rs *RuleStore, props *UnicodeProps) {
	const thanthakhat = '์'

	for cp := rune(0x0E01); cp <= 0x0E2E; cp++ {
		key := string([]rune{cp, thanthakhat})
		if rs.Lookup(key) == nil {
			rs.AddRule(NewSimpleRule(key, "", "auto cancel letter"))
		}
	}

	var vowelModifiers []rune
	vowelModifiers = append(vowelModifiers, 'ั', '็')
	for cp := rune(0x0E33); cp <= 0x0E3B; cp++ {
		vowelModifiers = append(vowelModifiers, cp)
	}

	for c1 := rune(0x0E01); c1 < 0x0E2F; c1++ {
		for _, v := range vowelModifiers {
			key := string([]rune{c1, v, thanthakhat})
			if rs.Lookup(key) == nil {
				rs.AddRule(NewSimpleRule(key, "", "auto cancel syllable"))
			}
		}
	}
}

// insertFallbackSingles is the generator of last resort, guaranteeing the
// total-cover invariant (spec.md §3 "every romanize call produces a
// complete cover of [0,N)"): every position that has no edge spanning
// exactly one character gets a one-character edge whose text is the
// character itself.
func insertFallbackSingles(lat *Lattice, props *UnicodeProps) {
	for i, c := range lat.input {
		if len(lat.EdgesStartingAt(i)) > 0 {
			hasUnitSpan := false
			for _, e := range lat.EdgesStartingAt(i) {
				if e.End == i+1 {
					hasUnitSpan = true
					break
				}
			}
			if hasUnitSpan {
				continue
			}
		}
		lat.Insert(NewRegularEdge(i, i+1, string(c), TypeFallbackSingle))
	}
}

// insertUnidecodeFallbacks runs the go-unidecode transliterator over every
// character whose script is not known to UnicodeProps, whether or not other
// edges already start there, giving the PathSelector a mid-tier option
// (above the literal single-character fallback, below every
// rule-table/algorithmic producer) for scripts the bundled tables don't
// cover (SPEC_FULL.md §4.9). Output that is empty or only "?" after
// trimming is dropped.
func insertUnidecodeFallbacks(lat *Lattice, props *UnicodeProps) {
	for i, c := range lat.input {
		if props.ScriptOf(c) != "" {
			// A known script is expected to be covered by the rule tables
			// or a script algorithm; reserve unidecode for the unknown-
			// script remainder.
			continue
		}
		rom := unidecode.Unidecode(string(c))
		rom = strings.TrimSpace(rom)
		if strings.Trim(rom, "?") == "" {
			continue
		}
		lat.Insert(NewRegularEdge(i, i+1, rom, TypeUnidecodeFallback))
	}
}
