package uroman

import "sort"

// costBucket implements spec.md §4.8's provenance ordering (lower is
// better): "manual rule man < auto override ow < auto ud < pinyin <
// algorithmic script < auto-cancel < numeric composite < numeric
// primitive < fallback single." The unidecode fallback generator added in
// SPEC_FULL.md §4.9 slots in just above the literal fallback single.
func costBucket(e *Edge) int {
	if e.Num != nil {
		if e.Num.Composite {
			return 6
		}
		return 7
	}
	switch e.Type {
	case TypeAutoCancelLetter, TypeAutoCancelSyllable:
		return 5
	case TypeHangul, TypeAbugidaVowel, TypeTibetanVowel:
		return 4
	case TypeUnidecodeFallback:
		return 8
	case TypeFallbackSingle:
		return 9
	}
	switch string(e.Type) {
	case "man":
		return 0
	case "ow":
		return 1
	case "ud":
		return 2
	case "rom pinyin":
		return 3
	default:
		// Any other rule-table provenance tag (locale overrides, script
		// algorithms not covered above) is treated as the "algorithmic
		// script" tier, the open-ended bucket spec.md §9 calls "more
		// specific wins".
		return 4
	}
}

const (
	bucketScale    = 1_000_000.0
	spanAlpha      = 1.0
	tieEpsilon     = 1e-6
	insertionScale = 1e-12
)

// costOf computes a single scalar that reproduces spec.md §4.8's
// lexicographic (bucket, span-penalty, tie-break) ordering by separating
// each component onto a different order of magnitude, so summing costs
// along a path preserves the lexicographic comparison at every prefix.
func costOf(e *Edge, insertionIndex int) float64 {
	cost := float64(costBucket(e)) * bucketScale
	cost -= float64(e.End-e.Start-1) * spanAlpha

	// Tie-break 3: active beats inactive, non-empty txt beats empty,
	// earlier-inserted beats later.
	if !e.IsActive() {
		cost += 4 * tieEpsilon
	}
	if e.Txt == "" {
		cost += 2 * tieEpsilon
	}
	cost += float64(insertionIndex) * insertionScale

	return cost
}

// BestRomEdgePath chooses the minimum-cost edge cover of [lo,hi) via a
// forward DP over positions (component C8, spec.md §4.8). When
// preferOnlyActive is true, inactive numeric edges (subsumed by a
// composite over the same span) are excluded from the candidate set
// entirely; otherwise all edges compete and the cost function's bucket
// ordering naturally prefers composites over the primitives they subsume.
func (l *Lattice) BestRomEdgePath(lo, hi int, preferOnlyActive bool) []*Edge {
	const inf = 1e18

	best := make([]float64, hi+1)
	back := make([]*Edge, hi+1)
	for i := range best {
		best[i] = inf
	}
	best[lo] = 0

	for p := lo; p < hi; p++ {
		if best[p] >= inf {
			continue
		}
		for _, e := range l.EdgesStartingAt(p) {
			if e.End > hi {
				continue
			}
			if preferOnlyActive && !e.IsActive() {
				continue
			}
			c := best[p] + costOf(e, l.insertionIndex(e))
			if c < best[e.End] {
				best[e.End] = c
				back[e.End] = e
			}
		}
	}

	if best[hi] >= inf {
		// Total-cover guarantee (spec.md §3/§4.6.6/§4.8): fallback singles
		// must make this unreachable for any non-degenerate lattice.
		return nil
	}

	var path []*Edge
	pos := hi
	for pos > lo {
		e := back[pos]
		path = append(path, e)
		pos = e.Start
	}
	// reverse
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// AddAlternatives computes the edgeWithAlts wrapper for each edge in path
// (or in the full lattice for the Lattice format): every other edge
// sharing the same (start,end) span, sorted by cost ascending. This
// resolves spec.md §9's second Open Question in favor of strict co-span
// equality — an edge spanning [0,2) is never listed as an alternative to
// two edges spanning [0,1)+[1,2), since "alternative" means "another way
// to cover exactly this span", not "another way to cover this range".
func (l *Lattice) AddAlternatives(path []*Edge) []edgeWithAlts {
	out := make([]edgeWithAlts, len(path))
	for i, e := range path {
		out[i] = edgeWithAlts{edge: e, alts: l.alternativesFor(e)}
	}
	return out
}

func (l *Lattice) alternativesFor(e *Edge) []*Edge {
	candidates := l.EdgesStartingAt(e.Start)
	alts := make([]*Edge, 0, len(candidates))
	for _, c := range candidates {
		if c.End != e.End || c.Equal(e) {
			continue
		}
		alts = append(alts, c)
	}
	sort.SliceStable(alts, func(a, b int) bool {
		return costOf(alts[a], l.insertionIndex(alts[a])) < costOf(alts[b], l.insertionIndex(alts[b]))
	})
	return alts
}
