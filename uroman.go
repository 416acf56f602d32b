// Package uroman romanizes text from any script into Latin characters,
// producing a lattice of candidate romanizations and selecting the
// lowest-cost cover of the input.
package uroman

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

// RomFormat selects the shape of a Romanize call's output.
type RomFormat int

const (
	// FormatStr yields the plain concatenated romanization string.
	FormatStr RomFormat = iota
	// FormatEdges yields the chosen path as a JSON array of edges.
	FormatEdges
	// FormatAlts yields the chosen path, each edge annotated with its
	// same-span alternatives.
	FormatAlts
	// FormatLattice yields every edge considered for the span, each
	// annotated with its alternatives.
	FormatLattice
)

// String renders a RomFormat back to the lowercase name ParseRomFormat
// accepts, grounded on original_source/src/lib.rs's RomFormat enum
// (SUPPLEMENTED FEATURES item 1).
func (f RomFormat) String() string {
	switch f {
	case FormatEdges:
		return "edges"
	case FormatAlts:
		return "alts"
	case FormatLattice:
		return "lattice"
	default:
		return "str"
	}
}

// ParseRomFormat parses the CLI/service-facing spelling of a RomFormat
// name back into its enum value.
func ParseRomFormat(name string) (RomFormat, error) {
	switch strings.ToLower(name) {
	case "str", "":
		return FormatStr, nil
	case "edges":
		return FormatEdges, nil
	case "alts":
		return FormatAlts, nil
	case "lattice":
		return FormatLattice, nil
	default:
		return 0, fmt.Errorf("unknown rom-format %q", name)
	}
}

// RomanizationResult is the outcome of one Romanize call: a display string
// plus, when requested, the JSON rendering of the edges/alts/lattice view.
type RomanizationResult struct {
	Format RomFormat
	Str    string
	JSON   string
}

// Uroman holds the process-wide resources a romanize call needs: the rule
// table and the Unicode property store, both built once in New and shared
// across concurrent calls. The Unicode property store is never mutated
// afterward; the rule table changes only through LearnCorrection, under
// RuleStore's own lock. The hangulRom and abugidaCache maps (and their
// mutexes) are allocated by New but not read or written by the romanize
// pipeline: Hangul syllables are decomposed afresh on every call.
type Uroman struct {
	rules *RuleStore
	props *UnicodeProps

	hangulMu  sync.RWMutex
	hangulRom map[rune]string

	abugidaMu    sync.RWMutex
	abugidaCache map[string]*abugidaVowelRegexes
}

// New builds a Uroman instance from the embedded resource tables
// (component boundary: RuleStore + UnicodeProps construction, spec.md
// §2). Resource parse failures are a build-time asset contract violation
// and panic rather than returning an error, matching the original's
// `include_str!`-backed eager loading.
func New() *Uroman {
	u := &Uroman{
		hangulRom:    make(map[rune]string),
		abugidaCache: make(map[string]*abugidaVowelRegexes),
	}
	u.rules = newRuleStore()
	u.props = newUnicodeProps()
	loadResources(u.rules, u.props)
	registerThaiAutoCancelRules(u.rules, u.props)
	return u
}

// RomanizeString romanizes s as a standalone document (no streaming state)
// under lcode, returning the plain concatenated string. It is the
// convenience entry point for the common case; Romanize exposes the full
// result shape.
func (u *Uroman) RomanizeString(s, lcode string) string {
	res, _ := u.Romanize(s, lcode, FormatStr)
	return res.Str
}

// Romanize runs the full pipeline on s (spec.md §2's control-flow order):
// build an empty lattice over the scalar-character offsets, run the
// script pre-passes, the rule applier, the numeric assembler, the
// fallback generators, then extract the requested output format from the
// lowest-cost path.
func (u *Uroman) Romanize(s, lcode string, format RomFormat) (RomanizationResult, error) {
	input := []rune(s)
	lat := newLattice(u, input, lcode)

	insertTibetanVowelPrepass(lat, u.props)
	insertHangulEdges(lat)
	insertAbugidaDefaultVowels(lat, u.props)

	u.applyRules(lat, lcode)

	insertNumericPrimitives(lat, u.props)
	composeBrailleNumbers(lat, u.props)
	composeDigitConcatenation(lat, u.props)
	composeGroupedNumbers(lat, u.props)
	composeFractions(lat, u.props)
	applySignsAndPercent(lat, u.props)

	insertUnidecodeFallbacks(lat, u.props)
	insertFallbackSingles(lat, u.props)

	path := lat.BestRomEdgePath(0, lat.Len(), false)
	if path == nil && lat.Len() > 0 {
		return RomanizationResult{}, fmt.Errorf("romanize %q: %w", lcode, ErrInternal)
	}

	result := RomanizationResult{
		Format: format,
		Str:    u.renderPath(path, input),
	}

	var err error
	switch format {
	case FormatEdges:
		result.JSON, err = marshalEdgesPretty(edgesToMarshalers(path))
	case FormatAlts:
		result.JSON, err = marshalEdgesPretty(altsToMarshalers(lat.AddAlternatives(path)))
	case FormatLattice:
		all := lat.AllEdges(0, lat.Len())
		result.JSON, err = marshalEdgesPretty(altsToMarshalers(lat.AddAlternatives(all)))
	}
	if err != nil {
		return result, fmt.Errorf("%w: %v", ErrSerializationFailed, err)
	}

	return result, nil
}

func edgesToMarshalers(path []*Edge) []json.Marshaler {
	out := make([]json.Marshaler, len(path))
	for i, e := range path {
		out[i] = e
	}
	return out
}

func altsToMarshalers(items []edgeWithAlts) []json.Marshaler {
	out := make([]json.Marshaler, len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}

// renderPath concatenates the chosen path's romanized text edge.txt by
// edge.txt with no inserted separator, applying the script-specific second
// rom filter per edge (spec.md §4.8: "concatenate edge.txt of the chosen
// path").
func (u *Uroman) renderPath(path []*Edge, input []rune) string {
	var b strings.Builder
	for _, e := range path {
		b.WriteString(u.secondRomFilter(e.Txt, scriptOfEdge(e, input, u.props)))
	}
	return b.String()
}

// LearnCorrection registers a whole-string manual rule mapping input to
// correctedOutput, so that any future Romanize call on exactly this input
// prefers the correction over whatever the rule tables or generators would
// otherwise produce. Manual rules sit at the top of the cost-bucket
// ordering (spec.md §4.8), so a correction always wins.
func (u *Uroman) LearnCorrection(input, correctedOutput string) {
	u.rules.AddRule(NewSimpleRule(input, correctedOutput, "man"))
}

func scriptOfEdge(e *Edge, input []rune, props *UnicodeProps) string {
	if e.Num != nil {
		return e.Num.Script
	}
	if e.Start < len(input) {
		return props.ScriptOf(input[e.Start])
	}
	return ""
}
