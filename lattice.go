package uroman

import "sort"

// Lattice is the character-indexed DAG of candidate romanization spans for
// one romanize call (component C4). It is transient: built fresh per call
// and discarded once the result is extracted.
type Lattice struct {
	input []rune
	u     *Uroman
	lcode string

	byStart map[int][]*Edge
	byEnd   map[int][]*Edge
	seen    map[edgeKey]int // key -> insertion order index, for dedup + stable sort
	all     []*Edge
}

func newLattice(u *Uroman, input []rune, lcode string) *Lattice {
	return &Lattice{
		input:   input,
		u:       u,
		lcode:   lcode,
		byStart: make(map[int][]*Edge),
		byEnd:   make(map[int][]*Edge),
		seen:    make(map[edgeKey]int),
	}
}

// Len returns the character length of the lattice's input.
func (l *Lattice) Len() int { return len(l.input) }

// Insert adds e to the lattice unless an equal edge (by the (start,end,
// txt,type) tuple) already exists, per spec.md §4.3/§4.4: "Edge insertion
// never overwrites; duplicates are ignored by identity." Returns whether
// the edge was newly inserted.
func (l *Lattice) Insert(e *Edge) bool {
	k := e.key()
	if _, dup := l.seen[k]; dup {
		return false
	}
	l.seen[k] = len(l.all)
	l.all = append(l.all, e)
	l.byStart[e.Start] = append(l.byStart[e.Start], e)
	l.byEnd[e.End] = append(l.byEnd[e.End], e)
	return true
}

// EdgesStartingAt returns every edge with Start == i.
func (l *Lattice) EdgesStartingAt(i int) []*Edge {
	return l.byStart[i]
}

// EdgesEndingAt returns every edge with End == j.
func (l *Lattice) EdgesEndingAt(j int) []*Edge {
	return l.byEnd[j]
}

// insertionIndex returns the order in which e was inserted, used for the
// "earlier-inserted beats later" cost tie-break (spec.md §4.8) and for the
// stable-sort requirement on AllEdges.
func (l *Lattice) insertionIndex(e *Edge) int {
	return l.seen[e.key()]
}

// AllEdges returns every edge whose span lies within [lo,hi), in the
// stable order spec.md §4.4 requires: "by start asc, then end asc, then
// type".
func (l *Lattice) AllEdges(lo, hi int) []*Edge {
	out := make([]*Edge, 0, len(l.all))
	for _, e := range l.all {
		if e.Start >= lo && e.End <= hi {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		ea, eb := out[a], out[b]
		if ea.Start != eb.Start {
			return ea.Start < eb.Start
		}
		if ea.End != eb.End {
			return ea.End < eb.End
		}
		return ea.Type < eb.Type
	})
	return out
}
