package uroman

import "fmt"

const typeNumberPrimitive EdgeType = "number"

// insertNumericPrimitives inserts one numeric edge per character carrying
// an entry in NumProps.jsonl (component C2/C7 boundary, spec.md §4.6.1
// "Numeric primitives").
func insertNumericPrimitives(lat *Lattice, props *UnicodeProps) {
	for i, c := range lat.input {
		np, ok := props.NumericOf(c)
		if !ok {
			continue
		}
		lat.Insert(NewNumericEdge(i, i+1, string(c), np, typeNumberPrimitive))
	}
}

// numericEdgesAt returns every still-active numeric edge starting at i.
func numericEdgesAt(lat *Lattice, i int) []*Edge {
	var out []*Edge
	for _, e := range lat.EdgesStartingAt(i) {
		if e.IsNumeric() && e.IsActive() {
			out = append(out, e)
		}
	}
	return out
}

// composeDigitConcatenation folds runs of adjacent base-10 positional
// digit primitives (e.g. Western "1","2","3" or Devanagari digit
// sequences) into a single D1 edge whose value is their concatenation,
// per spec.md §4.6.2. Subsumed primitives are deactivated, not removed,
// so PathSelector can still fall back to them.
func composeDigitConcatenation(lat *Lattice, props *UnicodeProps) {
	n := lat.Len()
	for i := 0; i < n; i++ {
		run := digitRunAt(lat, i)
		if len(run) < 2 {
			continue
		}
		var valStr string
		for _, e := range run {
			if e.Num.Value == nil {
				valStr = ""
				break
			}
			valStr += fmt.Sprintf("%d", int64(*e.Num.Value))
		}
		if valStr == "" {
			continue
		}
		var value float64
		fmt.Sscanf(valStr, "%f", &value)
		start := run[0].Start
		end := run[len(run)-1].End
		orig := ""
		for _, e := range run {
			orig += e.Num.OrigTxt
		}
		composite := NewCombinedNumericEdge(start, end, value, TypeDigitConcat, run[0].Num.Script, numIntPtr(10), nil, orig)
		lat.Insert(composite)
		for _, e := range run {
			e.SetActive(false)
		}
		i = end - 1
	}
}

// digitRunAt returns the maximal run of single-digit, base-10 numeric
// primitives starting at i, or nil if fewer than one is present.
func digitRunAt(lat *Lattice, i int) []*Edge {
	var run []*Edge
	pos := i
	for {
		cand := numericEdgesAt(lat, pos)
		var pick *Edge
		for _, e := range cand {
			if e.Num.Composite {
				continue
			}
			if e.Num.Value == nil || e.Num.BaseMultiplier != nil {
				continue
			}
			if e.Num.NumBase == nil || *e.Num.NumBase != 10 {
				continue
			}
			if *e.Num.Value < 0 || *e.Num.Value > 9 {
				continue
			}
			pick = e
			break
		}
		if pick == nil {
			break
		}
		run = append(run, pick)
		pos = pick.End
	}
	return run
}

// composeGroupedNumbers folds a digit (or prior composite) against an
// immediately following base-multiplier primitive (e.g. CJK 百/千/万) into
// a G1 edge, then iteratively folds G1 results against further multiplier
// primitives into G2 edges, implementing positional-value composition for
// scripts such as Chinese (三百 -> 300, 三千二百 -> 3200) per spec.md
// §4.6.3.
func composeGroupedNumbers(lat *Lattice, props *UnicodeProps) {
	n := lat.Len()
	changed := true
	for changed {
		changed = false
		for i := 0; i < n; i++ {
			left := bestNumericAt(lat, i)
			if left == nil {
				continue
			}
			mult := bestMultiplierAt(lat, left.End)
			if mult == nil {
				continue
			}
			leftVal := 1.0
			if left.Num.Value != nil {
				leftVal = *left.Num.Value
			}
			value := leftVal * (*mult.Num.BaseMultiplier)
			typ := TypeGroupedNumber1
			if left.Num.Composite {
				typ = TypeGroupedNumber2
			}
			orig := left.Num.OrigTxt + mult.Num.OrigTxt
			composite := NewCombinedNumericEdge(left.Start, mult.End, value, typ, mult.Num.Script, nil, nil, orig)
			if lat.Insert(composite) {
				left.SetActive(false)
				mult.SetActive(false)
				changed = true
			}
		}
	}
	composeAdditiveGroups(lat, props)
}

// composeAdditiveGroups folds adjacent grouped-number composites that sum
// rather than multiply (e.g. 三千二百 = 3000 + 200), by summing the values
// of consecutive G1/G2 edges whose spans touch and whose magnitudes
// strictly decrease left to right.
func composeAdditiveGroups(lat *Lattice, props *UnicodeProps) {
	n := lat.Len()
	changed := true
	for changed {
		changed = false
		for i := 0; i < n; i++ {
			left := bestGroupedAt(lat, i)
			if left == nil {
				continue
			}
			right := bestGroupedAt(lat, left.End)
			if right == nil {
				continue
			}
			if left.Num.Value == nil || right.Num.Value == nil {
				continue
			}
			if *right.Num.Value >= *left.Num.Value {
				continue
			}
			value := *left.Num.Value + *right.Num.Value
			orig := left.Num.OrigTxt + right.Num.OrigTxt
			composite := NewCombinedNumericEdge(left.Start, right.End, value, TypeGroupedNumber2, left.Num.Script, nil, nil, orig)
			if lat.Insert(composite) {
				left.SetActive(false)
				right.SetActive(false)
				changed = true
			}
		}
	}
}

func bestNumericAt(lat *Lattice, i int) *Edge {
	var best *Edge
	for _, e := range numericEdgesAt(lat, i) {
		if e.Num.BaseMultiplier != nil {
			continue
		}
		if best == nil || e.End > best.End {
			best = e
		}
	}
	return best
}

func bestMultiplierAt(lat *Lattice, i int) *Edge {
	for _, e := range numericEdgesAt(lat, i) {
		if e.Num.BaseMultiplier != nil {
			return e
		}
	}
	return nil
}

func bestGroupedAt(lat *Lattice, i int) *Edge {
	var best *Edge
	for _, e := range numericEdgesAt(lat, i) {
		if e.Type != TypeGroupedNumber1 && e.Type != TypeGroupedNumber2 {
			continue
		}
		if best == nil || e.End > best.End {
			best = e
		}
	}
	return best
}

// composeFractions folds a numerator edge, a fraction-connector character,
// and a denominator edge into a single Fraction edge, per spec.md §4.6.4.
func composeFractions(lat *Lattice, props *UnicodeProps) {
	n := lat.Len()
	for i := 0; i < n; i++ {
		if i >= len(lat.input) || !props.fractionConn[string(lat.input[i])] {
			continue
		}
		num := bestNumericEndingAt(lat, i)
		den := bestNumericAt(lat, i+1)
		if num == nil || den == nil {
			continue
		}
		fracNum := int64(0)
		fracDen := int64(1)
		if num.Num.Value != nil {
			fracNum = int64(*num.Num.Value)
		}
		if den.Num.Value != nil {
			fracDen = int64(*den.Num.Value)
		}
		e := &Edge{
			Start: num.Start,
			End:   den.End,
			Type:  TypeFraction,
			Num: &NumData{
				OrigTxt:     num.Num.OrigTxt + string(lat.input[i]) + den.Num.OrigTxt,
				FractionNum: &fracNum,
				FractionDen: &fracDen,
				Script:      num.Num.Script,
				Active:      true,
				Composite:   true,
			},
		}
		e.RecalculateTxt()
		if lat.Insert(e) {
			num.SetActive(false)
			den.SetActive(false)
		}
	}
}

func bestNumericEndingAt(lat *Lattice, j int) *Edge {
	var best *Edge
	for _, e := range lat.EdgesEndingAt(j) {
		if !e.IsNumeric() || !e.IsActive() {
			continue
		}
		if best == nil || e.Start < best.Start {
			best = e
		}
	}
	return best
}

// applySignsAndPercent extends a numeric edge's span to absorb an
// immediately adjacent plus/minus sign or percent marker, negating the
// value or annotating it respectively (spec.md §4.6.5).
func applySignsAndPercent(lat *Lattice, props *UnicodeProps) {
	input := lat.input
	for i := 0; i < len(input); i++ {
		ch := string(input[i])
		if !props.minusSigns[ch] && !props.plusSigns[ch] {
			continue
		}
		target := bestNumericAt(lat, i+1)
		if target == nil {
			continue
		}
		value := 0.0
		if target.Num.Value != nil {
			value = *target.Num.Value
		}
		if props.minusSigns[ch] {
			value = -value
		}
		e := NewCombinedNumericEdge(i, target.End, value, target.Type, target.Num.Script, target.Num.NumBase, target.Num.NDecimals, ch+target.Num.OrigTxt)
		if lat.Insert(e) {
			target.SetActive(false)
		}
	}
	for i := 0; i < len(input); i++ {
		ch := string(input[i])
		if !props.percentMarkers[ch] {
			continue
		}
		source := bestNumericEndingAt(lat, i)
		if source == nil {
			continue
		}
		valueS := ""
		if source.Num.Value != nil {
			valueS = fmt.Sprintf("%v%%", *source.Num.Value)
		}
		e := &Edge{
			Start: source.Start,
			End:   i + 1,
			Type:  source.Type,
			Num: &NumData{
				OrigTxt: source.Num.OrigTxt + ch,
				Value:   source.Num.Value,
				ValueS:  &valueS,
				Script:  source.Num.Script,
				Active:  true,
				Composite: true,
			},
		}
		e.RecalculateTxt()
		if lat.Insert(e) {
			source.SetActive(false)
		}
	}
}

// brailleNumberSign is U+283C, the Braille "number follows" prefix cell.
const brailleNumberSign = '⠼'

// composeBrailleNumbers recognizes a Braille number sign followed by a run
// of Braille digit cells and folds the whole run into one TypeBrailleNumber
// edge, per spec.md §4.6.6's dedicated Braille composer.
func composeBrailleNumbers(lat *Lattice, props *UnicodeProps) {
	input := lat.input
	for i := 0; i < len(input); i++ {
		if input[i] != brailleNumberSign {
			continue
		}
		j := i + 1
		var digits string
		for j < len(input) {
			np, ok := props.NumericOf(input[j])
			if !ok || np.Script != "Braille" || np.Value == nil {
				break
			}
			digits += fmt.Sprintf("%d", int64(*np.Value))
			j++
		}
		if digits == "" {
			continue
		}
		var value float64
		fmt.Sscanf(digits, "%f", &value)
		lat.Insert(NewCombinedNumericEdge(i, j, value, TypeBrailleNumber, "Braille", numIntPtr(10), nil, string(input[i:j])))
	}
}
