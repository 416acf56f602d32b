package uroman

import "testing"

func TestCostBucketOrdering(t *testing.T) {
	tests := []struct {
		name string
		e    *Edge
		want int
	}{
		{"manual rule", NewRegularEdge(0, 1, "a", "man"), 0},
		{"override rule", NewRegularEdge(0, 1, "a", "ow"), 1},
		{"auto rule", NewRegularEdge(0, 1, "a", "ud"), 2},
		{"pinyin rule", NewRegularEdge(0, 1, "a", "rom pinyin"), 3},
		{"hangul algorithm", NewRegularEdge(0, 1, "a", TypeHangul), 4},
		{"auto-cancel", NewRegularEdge(0, 1, "", TypeAutoCancelLetter), 5},
		{"unidecode fallback", NewRegularEdge(0, 1, "a", TypeUnidecodeFallback), 8},
		{"fallback single", NewRegularEdge(0, 1, "a", TypeFallbackSingle), 9},
		{
			"numeric composite",
			NewCombinedNumericEdge(0, 2, 300, TypeGroupedNumber1, "Han", nil, nil, "三百"),
			6,
		},
		{
			"numeric primitive",
			NewNumericEdge(0, 1, "3", NumProps{Value: numFloatPtr(3), Base: numIntPtr(10)}, typeNumberPrimitive),
			7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := costBucket(tt.e); got != tt.want {
				t.Errorf("costBucket(%+v) = %d, want %d", tt.e, got, tt.want)
			}
		})
	}
}

// TestCostOfPrefersLongerSpanWithinSameBucket covers the span-length
// bonus: among same-bucket edges, a longer span costs less.
func TestCostOfPrefersLongerSpanWithinSameBucket(t *testing.T) {
	short := NewRegularEdge(0, 1, "a", "man")
	long := NewRegularEdge(0, 2, "ab", "man")

	if costOf(long, 0) >= costOf(short, 0) {
		t.Errorf("costOf(long span) = %v, want it to be lower than costOf(short span) = %v",
			costOf(long, 0), costOf(short, 0))
	}
}

// TestCostOfBucketDominatesSpanLength ensures the bucket separation is
// wide enough that no realistic span-length difference can let a worse
// bucket win over a better one.
func TestCostOfBucketDominatesSpanLength(t *testing.T) {
	manualShort := NewRegularEdge(0, 1, "a", "man")
	fallbackLong := NewRegularEdge(0, 100, "a", TypeFallbackSingle)

	if costOf(manualShort, 0) >= costOf(fallbackLong, 0) {
		t.Errorf("a 1-char manual edge should always beat a 100-char fallback edge")
	}
}

func TestBestRomEdgePathCoversSimpleSpan(t *testing.T) {
	lat := newLattice(nil, []rune("ab"), "")
	lat.Insert(NewRegularEdge(0, 1, "a", TypeFallbackSingle))
	lat.Insert(NewRegularEdge(1, 2, "b", TypeFallbackSingle))

	path := lat.BestRomEdgePath(0, 2, false)
	if len(path) != 2 {
		t.Fatalf("path length = %d, want 2", len(path))
	}
	if path[0].Txt != "a" || path[1].Txt != "b" {
		t.Errorf("path = %+v, want [a, b]", path)
	}
}

// TestBestRomEdgePathPrefersLowerBucket covers the core selection
// invariant: given competing edges over the same span, the lower-cost
// bucket wins.
func TestBestRomEdgePathPrefersLowerBucket(t *testing.T) {
	lat := newLattice(nil, []rune("a"), "")
	lat.Insert(NewRegularEdge(0, 1, "fallback", TypeFallbackSingle))
	lat.Insert(NewRegularEdge(0, 1, "manual", "man"))

	path := lat.BestRomEdgePath(0, 1, false)
	if len(path) != 1 || path[0].Txt != "manual" {
		t.Fatalf("path = %+v, want the manual-provenance edge to win", path)
	}
}

// TestBestRomEdgePathPrefersCompositeOverPrimitivesItSubsumes validates
// the emergent numeral-composition property: a multi-character composite
// beats the sum of the single-character primitives it spans, because the
// composite's bucket (6) is better than the primitives' bucket (7) and the
// bucket term dominates the span-length bonus; the primitive path also
// pays the bucket-7 cost once per character.
func TestBestRomEdgePathPrefersCompositeOverPrimitivesItSubsumes(t *testing.T) {
	lat := newLattice(nil, []rune("三百"), "")

	three := NewNumericEdge(0, 1, "三", NumProps{Value: numFloatPtr(3), Base: numIntPtr(10), Script: "Han"}, typeNumberPrimitive)
	hundred := NewNumericEdge(1, 2, "百", NumProps{Mult: numFloatPtr(100), Script: "Han"}, typeNumberPrimitive)
	lat.Insert(three)
	lat.Insert(hundred)

	composite := NewCombinedNumericEdge(0, 2, 300, TypeGroupedNumber1, "Han", nil, nil, "三百")
	lat.Insert(composite)
	three.SetActive(false)
	hundred.SetActive(false)

	path := lat.BestRomEdgePath(0, 2, false)
	if len(path) != 1 || path[0].Txt != "300" {
		t.Fatalf("path = %+v, want the single composite edge covering [0,2)", path)
	}
}

func TestBestRomEdgePathReturnsNilWhenCoverIsImpossible(t *testing.T) {
	lat := newLattice(nil, []rune("ab"), "")
	lat.Insert(NewRegularEdge(0, 1, "a", TypeFallbackSingle))
	// No edge covers position 1, so [0,2) cannot be fully tiled.

	path := lat.BestRomEdgePath(0, 2, false)
	if path != nil {
		t.Errorf("path = %+v, want nil when the span cannot be fully covered", path)
	}
}

func TestAddAlternativesOnlyIncludesCoSpanEdges(t *testing.T) {
	lat := newLattice(nil, []rune("ab"), "")
	chosen := NewRegularEdge(0, 2, "ab", "man")
	altSameSpan := NewRegularEdge(0, 2, "alt", "ud")
	crossSpanA := NewRegularEdge(0, 1, "a", TypeFallbackSingle)
	crossSpanB := NewRegularEdge(1, 2, "b", TypeFallbackSingle)

	lat.Insert(chosen)
	lat.Insert(altSameSpan)
	lat.Insert(crossSpanA)
	lat.Insert(crossSpanB)

	alts := lat.AddAlternatives([]*Edge{chosen})
	if len(alts) != 1 {
		t.Fatalf("AddAlternatives returned %d entries, want 1", len(alts))
	}
	if len(alts[0].alts) != 1 || alts[0].alts[0].Txt != "alt" {
		t.Errorf("alts = %+v, want exactly the co-span [0,2) edge, not the [0,1)/[1,2) split", alts[0].alts)
	}
}
