package uroman

import "testing"

func propsWithNumericDigits() *UnicodeProps {
	props := newUnicodeProps()
	for i := int64(0); i <= 9; i++ {
		c := rune('0' + i)
		v := float64(i)
		props.numProps[c] = NumProps{Value: &v, Base: numIntPtr(10)}
	}
	return props
}

func TestInsertNumericPrimitivesOneEdgePerDigit(t *testing.T) {
	props := propsWithNumericDigits()
	lat := newLattice(nil, []rune("12"), "")

	insertNumericPrimitives(lat, props)

	if got := len(lat.EdgesStartingAt(0)); got != 1 {
		t.Fatalf("EdgesStartingAt(0) = %d, want 1", got)
	}
	if got := len(lat.EdgesStartingAt(1)); got != 1 {
		t.Fatalf("EdgesStartingAt(1) = %d, want 1", got)
	}
}

func TestComposeDigitConcatenationFoldsRun(t *testing.T) {
	props := propsWithNumericDigits()
	lat := newLattice(nil, []rune("123"), "")
	insertNumericPrimitives(lat, props)
	composeDigitConcatenation(lat, props)

	var composite *Edge
	for _, e := range lat.AllEdges(0, 3) {
		if e.Type == TypeDigitConcat {
			composite = e
		}
	}
	if composite == nil {
		t.Fatalf("no D1 digit-concatenation edge produced")
	}
	if composite.Start != 0 || composite.End != 3 {
		t.Errorf("composite span = [%d,%d), want [0,3)", composite.Start, composite.End)
	}
	if composite.Txt != "123" {
		t.Errorf("composite Txt = %q, want %q", composite.Txt, "123")
	}

	for _, e := range lat.EdgesStartingAt(0) {
		if e.Type == typeNumberPrimitive && e.IsActive() {
			t.Errorf("primitive edge %+v should be deactivated once subsumed", e)
		}
	}
}

func TestComposeDigitConcatenationSkipsSingleDigit(t *testing.T) {
	props := propsWithNumericDigits()
	lat := newLattice(nil, []rune("5"), "")
	insertNumericPrimitives(lat, props)
	composeDigitConcatenation(lat, props)

	for _, e := range lat.AllEdges(0, 1) {
		if e.Type == TypeDigitConcat {
			t.Errorf("a lone digit should not produce a D1 composite: %+v", e)
		}
	}
}

func TestComposeGroupedNumbersMultiplies(t *testing.T) {
	props := newUnicodeProps()
	digit := '三'
	mult := '百'
	dv := 3.0
	props.numProps[digit] = NumProps{Value: &dv, Base: numIntPtr(10), Script: "Han"}
	props.numProps[mult] = NumProps{Mult: numFloatPtr(100), Script: "Han"}

	lat := newLattice(nil, []rune{digit, mult}, "")
	insertNumericPrimitives(lat, props)
	composeGroupedNumbers(lat, props)

	var g1 *Edge
	for _, e := range lat.AllEdges(0, 2) {
		if e.Type == TypeGroupedNumber1 {
			g1 = e
		}
	}
	if g1 == nil {
		t.Fatalf("no G1 grouped-number edge produced")
	}
	if g1.Txt != "300" {
		t.Errorf("G1 Txt = %q, want %q", g1.Txt, "300")
	}
}

func TestComposeAdditiveGroupsSumsDecreasingMagnitudes(t *testing.T) {
	props := newUnicodeProps()
	three, thousand := '三', '千'
	two, hundred := '二', '百'
	threeVal, twoVal := 3.0, 2.0
	props.numProps[three] = NumProps{Value: &threeVal, Base: numIntPtr(10), Script: "Han"}
	props.numProps[thousand] = NumProps{Mult: numFloatPtr(1000), Script: "Han"}
	props.numProps[two] = NumProps{Value: &twoVal, Base: numIntPtr(10), Script: "Han"}
	props.numProps[hundred] = NumProps{Mult: numFloatPtr(100), Script: "Han"}

	lat := newLattice(nil, []rune{three, thousand, two, hundred}, "")
	insertNumericPrimitives(lat, props)
	composeGroupedNumbers(lat, props)

	var g2 *Edge
	for _, e := range lat.AllEdges(0, 4) {
		if e.Type == TypeGroupedNumber2 && e.Start == 0 && e.End == 4 {
			g2 = e
		}
	}
	if g2 == nil {
		t.Fatalf("no G2 additive composite spanning [0,4) produced")
	}
	if g2.Txt != "3200" {
		t.Errorf("G2 Txt = %q, want %q", g2.Txt, "3200")
	}
}

func TestComposeFractions(t *testing.T) {
	props := newUnicodeProps()
	props.fractionConn["/"] = true
	one, two := '1', '2'
	oneVal, twoVal := 1.0, 2.0
	props.numProps[one] = NumProps{Value: &oneVal, Base: numIntPtr(10)}
	props.numProps[two] = NumProps{Value: &twoVal, Base: numIntPtr(10)}

	lat := newLattice(nil, []rune("1/2"), "")
	insertNumericPrimitives(lat, props)
	composeFractions(lat, props)

	var frac *Edge
	for _, e := range lat.AllEdges(0, 3) {
		if e.Type == TypeFraction {
			frac = e
		}
	}
	if frac == nil {
		t.Fatalf("no Fraction edge produced")
	}
	if frac.Txt != "1/2" {
		t.Errorf("Fraction Txt = %q, want %q", frac.Txt, "1/2")
	}
}

func TestApplySignsAndPercentNegatesValue(t *testing.T) {
	props := newUnicodeProps()
	props.minusSigns["-"] = true
	fiveVal := 5.0
	props.numProps['5'] = NumProps{Value: &fiveVal, Base: numIntPtr(10)}

	lat := newLattice(nil, []rune("-5"), "")
	insertNumericPrimitives(lat, props)
	applySignsAndPercent(lat, props)

	var signed *Edge
	for _, e := range lat.AllEdges(0, 2) {
		if e.Start == 0 && e.End == 2 {
			signed = e
		}
	}
	if signed == nil {
		t.Fatalf("no edge spans the full signed numeral [0,2)")
	}
	if signed.Num == nil || signed.Num.Value == nil || *signed.Num.Value != -5 {
		t.Errorf("signed edge value = %+v, want -5", signed.Num)
	}
}

func TestApplySignsAndPercentAnnotatesValue(t *testing.T) {
	props := newUnicodeProps()
	props.percentMarkers["%"] = true
	fiveVal := 5.0
	props.numProps['5'] = NumProps{Value: &fiveVal, Base: numIntPtr(10)}

	lat := newLattice(nil, []rune("5%"), "")
	insertNumericPrimitives(lat, props)
	applySignsAndPercent(lat, props)

	var withPercent *Edge
	for _, e := range lat.AllEdges(0, 2) {
		if e.Start == 0 && e.End == 2 {
			withPercent = e
		}
	}
	if withPercent == nil {
		t.Fatalf("no edge spans the full percent numeral [0,2)")
	}
	if withPercent.Txt != "5%" {
		t.Errorf("percent edge Txt = %q, want %q", withPercent.Txt, "5%")
	}
}

func TestComposeBrailleNumbers(t *testing.T) {
	props := newUnicodeProps()
	one, two := '⠁', '⠃'
	oneVal, twoVal := 1.0, 2.0
	props.numProps[one] = NumProps{Value: &oneVal, Base: numIntPtr(10), Script: "Braille"}
	props.numProps[two] = NumProps{Value: &twoVal, Base: numIntPtr(10), Script: "Braille"}

	input := []rune{brailleNumberSign, one, two}
	lat := newLattice(nil, input, "")
	composeBrailleNumbers(lat, props)

	var braille *Edge
	for _, e := range lat.AllEdges(0, 3) {
		if e.Type == TypeBrailleNumber {
			braille = e
		}
	}
	if braille == nil {
		t.Fatalf("no Braille number edge produced")
	}
	if braille.Txt != "12" {
		t.Errorf("Braille edge Txt = %q, want %q", braille.Txt, "12")
	}
	if braille.Start != 0 || braille.End != 3 {
		t.Errorf("Braille edge span = [%d,%d), want [0,3) (sign + two digit cells)", braille.Start, braille.End)
	}
}
