package uroman

import "fmt"

// EdgeType tags an edge's provenance/shape for cost tie-breaking and
// composition. It is an opaque string, not a closed enum, because the
// bundled rule tables mint new provenance tags (e.g. "auto cancel letter").
type EdgeType string

// Provenance tags used by the algorithmic producers. Rule-table provenance
// tags ("ud", "ow", "man", "rom pinyin") come from the tables themselves.
const (
	TypeAutoCancelLetter   EdgeType = "auto cancel letter"
	TypeAutoCancelSyllable EdgeType = "auto cancel syllable"
	TypeHangul             EdgeType = "hangul"
	TypeAbugidaVowel       EdgeType = "abugida default vowel"
	TypeTibetanVowel       EdgeType = "tibetan vowel"
	TypeUnidecodeFallback  EdgeType = "unidecode fallback"
	TypeFallbackSingle     EdgeType = "fallback single"
	TypeDigitConcat        EdgeType = "D1"
	TypeGroupedNumber1     EdgeType = "G1"
	TypeGroupedNumber2     EdgeType = "G2"
	TypeFraction           EdgeType = "fraction"
	TypeBrailleNumber      EdgeType = "braille number"
)

// NumData is the optional numeric payload carried by a Numeric edge.
type NumData struct {
	OrigTxt        string
	Value          *float64
	FractionNum    *int64 // numerator, nil if no fraction
	FractionDen    *int64 // denominator, nil if no fraction
	NumBase        *int64
	BaseMultiplier *float64
	Script         string
	IsLargePower   bool
	Active         bool
	ValueS         *string
	NDecimals      *int

	// Composite marks an edge produced by NumberAssembler composition
	// (D1/G1/G2/fraction/Braille-run) rather than a single-character
	// primitive. It is internal bookkeeping for PathSelector's cost
	// bucket, not part of the serialized payload.
	Composite bool
}

// HasFraction reports whether the payload carries a fraction component.
func (n *NumData) HasFraction() bool {
	return n != nil && n.FractionNum != nil && n.FractionDen != nil
}

// Edge is a candidate romanization of a contiguous character range
// [Start, End) in the input's scalar-character offsets.
type Edge struct {
	Start int
	End   int
	Txt   string
	Type  EdgeType

	// Num is non-nil only for numeric edges. Its presence is what
	// distinguishes a Numeric edge from a Regular one, mirroring the
	// original's Edge::Regular / Edge::Numeric enum.
	Num *NumData
}

// edgeKey is the four-field identity used for equality, hashing, and
// dedup-on-insert, per spec.md §3: "Two edges are equal iff
// (start, end, txt, type) match".
type edgeKey struct {
	start int
	end   int
	txt   string
	typ   EdgeType
}

func (e *Edge) key() edgeKey {
	return edgeKey{e.Start, e.End, e.Txt, e.Type}
}

// Equal implements the spec's tuple-based edge equality (invariant 3):
// two edges with equal (start,end,txt,type) are indistinguishable.
func (e *Edge) Equal(other *Edge) bool {
	return e.key() == other.key()
}

// IsNumeric reports whether this edge carries a numeric payload.
func (e *Edge) IsNumeric() bool {
	return e.Num != nil
}

// IsActive reports whether the edge should still be considered by the path
// selector. Regular edges are always active; numeric edges can be
// deactivated once subsumed by a composite covering the same span.
func (e *Edge) IsActive() bool {
	if e.Num == nil {
		return true
	}
	return e.Num.Active
}

// NewRegularEdge builds a non-numeric candidate romanization.
func NewRegularEdge(start, end int, txt string, typ EdgeType) *Edge {
	return &Edge{Start: start, End: end, Txt: txt, Type: typ}
}

// NewNumericEdge builds a primitive numeric edge from a single character's
// NumProps entry and recomputes its display text immediately.
func NewNumericEdge(start, end int, origTxt string, p NumProps, typ EdgeType) *Edge {
	e := &Edge{
		Start: start,
		End:   end,
		Type:  typ,
		Num: &NumData{
			OrigTxt:        origTxt,
			Value:          p.Value,
			FractionNum:    p.FractionNum,
			FractionDen:    p.FractionDen,
			NumBase:        p.Base,
			BaseMultiplier: p.Mult,
			Script:         p.Script,
			IsLargePower:   p.IsLargePower,
			Active:         true,
			Composite:      false,
		},
	}
	e.RecalculateTxt()
	return e
}

// NewCombinedNumericEdge builds a composite numeric edge from the
// NumberAssembler's composition step (D1/G1/G2/fraction/Braille-run).
func NewCombinedNumericEdge(start, end int, value float64, typ EdgeType, script string, numBase *int64, nDecimals *int, origTxt string) *Edge {
	e := &Edge{
		Start: start,
		End:   end,
		Type:  typ,
		Num: &NumData{
			OrigTxt:   origTxt,
			Value:     &value,
			NumBase:   numBase,
			Script:    script,
			Active:    true,
			NDecimals: nDecimals,
			Composite: true,
		},
	}
	e.RecalculateTxt()
	return e
}

// RecalculateTxt derives Txt from the numeric payload per spec.md §3:
//
//	txt := value_s OR formatted(value[, n_decimals]) [+ " " + "num/den"]
//	empty result falls back to orig_txt
//
// It must be called after any mutation of Num (NumData invariant).
func (e *Edge) RecalculateTxt() {
	if e.Num == nil {
		return
	}
	n := e.Num

	var valueS string
	switch {
	case n.ValueS != nil:
		valueS = *n.ValueS
	case n.Value != nil:
		if n.NDecimals != nil {
			valueS = fmt.Sprintf("%.*f", *n.NDecimals, *n.Value)
		} else if *n.Value == float64(int64(*n.Value)) {
			valueS = fmt.Sprintf("%d", int64(*n.Value))
		} else {
			valueS = formatShortestFloat(*n.Value)
		}
	}

	var fractionS string
	if n.HasFraction() {
		fractionS = fmt.Sprintf("%d/%d", *n.FractionNum, *n.FractionDen)
	}

	var final string
	switch {
	case valueS != "" && fractionS != "":
		final = valueS + " " + fractionS
	case fractionS != "":
		final = fractionS
	default:
		final = valueS
	}

	if final == "" {
		e.Txt = n.OrigTxt
	} else {
		e.Txt = final
	}
}

// formatShortestFloat renders a non-integral float with the shortest
// round-trip decimal representation, per spec.md §4.7 "Formatting".
func formatShortestFloat(v float64) string {
	return fmt.Sprintf("%g", v)
}

// SetActive marks a numeric edge inactive (subsumed by a composite) or
// reactivates it. No-op on Regular edges.
func (e *Edge) SetActive(active bool) {
	if e.Num != nil {
		e.Num.Active = active
	}
}
