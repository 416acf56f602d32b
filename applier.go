package uroman

import "strings"

// applyRules walks the input left to right (component C5), and at every
// offset i extends the candidate key one character at a time for as long
// as the RuleStore's prefix bloom recognizes it, inserting an edge for
// every rule of each exact key whose context predicates match. It never
// mutates i itself: overlapping matches at the same start are all kept,
// since the Lattice (not the applier) resolves which ones survive into the
// output.
//
// Grounded on original_source/src/lib.rs's main romanization loop (the
// "greedy lookahead with HasPrefix pruning" search described in spec.md
// §4.1).
func (u *Uroman) applyRules(lat *Lattice, lcode string) {
	input := lat.input
	n := len(input)

	for i := 0; i < n; i++ {
		for j := i + 1; j <= n; j++ {
			key := string(input[i:j])
			if !u.rules.HasPrefix(key) {
				// No rule key starts with this text, so no longer key
				// starting at i can match either.
				break
			}

			rules := u.rules.Lookup(key)
			for _, r := range rules {
				if !r.Matches(input, i, j, lcode, u.props) {
					continue
				}
				typ := EdgeType(r.Prov)
				e := NewRegularEdge(i, j, r.T, typ)
				lat.Insert(e)
			}
		}
	}
}

// secondRomFilter rewrites a chosen romanization string for scripts whose
// rule-table output needs a cleanup pass before being user-facing: Kayah Li
// and Mende Kikakui insert tone/placeholder markers that the rule tables
// can't suppress positionally, and are instead stripped afterward. The
// choice is keyed by the script name of the edge's source text, not by
// character name (see DESIGN.md "Known simplifications").
//
// Grounded on original_source/src/lib.rs `second_rom_filter`, which treats
// the same two scripts.
func (u *Uroman) secondRomFilter(txt string, script string) string {
	switch script {
	case "Kayah_Li":
		return collapseRepeatedSpaces(strings.ReplaceAll(txt, "-", ""))
	case "Mende_Kikakui":
		return collapseRepeatedSpaces(txt)
	default:
		return txt
	}
}

func collapseRepeatedSpaces(s string) string {
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	return strings.TrimSpace(s)
}
