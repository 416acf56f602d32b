package uroman

import (
	"strconv"
	"strings"
	"unicode"
)

// NumProps is the per-character numeric metadata decoded from NumProps.jsonl,
// grounded on original_source/src/edge.rs (`Edge::new_numeric` reads exactly
// these fields out of `uroman.num_props`).
type NumProps struct {
	Value        *float64
	FractionNum  *int64
	FractionDen  *int64
	Base         *int64
	Mult         *float64
	Script       string
	Type         string
	IsLargePower bool
}

// Script holds a script's declared properties from Scripts.txt.
type Script struct {
	Name                 string
	Direction             string
	AbugidaDefaultVowels []string
	AltNames             []string
	Languages             []string
}

// UnicodeProps is the immutable, process-wide character/script metadata
// store (component C2). It is built once in New() from embedded resource
// text and never mutated afterward, so it is safe to share across
// concurrent Romanize calls without locking.
type UnicodeProps struct {
	scriptOf       map[rune]string
	isVowelSign    map[rune]bool
	isMedialSign   map[rune]bool
	isVirama       map[rune]bool
	numProps       map[rune]NumProps
	nameOverride   map[rune]string
	scripts        map[string]*Script // keyed by lowercase script name (and alt names)
	percentMarkers map[string]bool
	fractionConn   map[string]bool
	plusSigns      map[string]bool
	minusSigns     map[string]bool
}

func newUnicodeProps() *UnicodeProps {
	return &UnicodeProps{
		scriptOf:       make(map[rune]string),
		isVowelSign:    make(map[rune]bool),
		isMedialSign:   make(map[rune]bool),
		isVirama:       make(map[rune]bool),
		numProps:       make(map[rune]NumProps),
		nameOverride:   make(map[rune]string),
		scripts:        make(map[string]*Script),
		percentMarkers: make(map[string]bool),
		fractionConn:   make(map[string]bool),
		plusSigns:      make(map[string]bool),
		minusSigns:     make(map[string]bool),
	}
}

// ScriptOf returns the script name of a character, or "" if unknown.
func (p *UnicodeProps) ScriptOf(c rune) string {
	return p.scriptOf[c]
}

// IsVowelSign reports whether c is a dependent/combining vowel sign.
func (p *UnicodeProps) IsVowelSign(c rune) bool { return p.isVowelSign[c] }

// IsMedialConsonantSign reports whether c is a medial consonant sign
// (used by several Southeast-Asian abugidas, e.g. Myanmar medial -ya-/-wa-).
func (p *UnicodeProps) IsMedialConsonantSign(c rune) bool { return p.isMedialSign[c] }

// IsVirama reports whether c is a vowel-suppressing virama/pramaan sign.
func (p *UnicodeProps) IsVirama(c rune) bool { return p.isVirama[c] }

// NumericOf returns the numeric properties of c, if any were loaded.
func (p *UnicodeProps) NumericOf(c rune) (NumProps, bool) {
	np, ok := p.numProps[c]
	return np, ok
}

// NameOf returns c's display name: the override map first, then the
// standard Unicode character name database.
func (p *UnicodeProps) NameOf(c rune) string {
	if n, ok := p.nameOverride[c]; ok {
		return n
	}
	return unicodeCharName(c)
}

// IsNonspacingMark reports whether c is a combining mark that does not
// take up its own spacing column (Unicode general category Mn).
func (p *UnicodeProps) IsNonspacingMark(c rune) bool {
	return unicode.Is(unicode.Mn, c)
}

// IsFormatChar reports whether c is a Unicode format control character
// (general category Cf) such as a zero-width joiner.
func (p *UnicodeProps) IsFormatChar(c rune) bool {
	return unicode.Is(unicode.Cf, c)
}

// ScriptByName looks up a declared script by its canonical or alternate
// name, case-insensitively.
func (p *UnicodeProps) ScriptByName(name string) (*Script, bool) {
	s, ok := p.scripts[strings.ToLower(name)]
	return s, ok
}

// numFloatPtr and numIntPtr return pointers to copies of v, for filling the
// optional numeric fields of NumProps and NumData.
func numFloatPtr(v float64) *float64 { return &v }
func numIntPtr(v int64) *int64       { return &v }

// parseFraction decodes a "num/den" string into (numerator, denominator).
func parseFraction(s string) (*int64, *int64, bool) {
	num, den, ok := strings.Cut(s, "/")
	if !ok {
		return nil, nil, false
	}
	n, err1 := strconv.ParseInt(strings.TrimSpace(num), 10, 64)
	d, err2 := strconv.ParseInt(strings.TrimSpace(den), 10, 64)
	if err1 != nil || err2 != nil {
		return nil, nil, false
	}
	return &n, &d, true
}
