package uroman

import (
	"strings"
	"testing"
)

func TestRomanizeStreamPlainLines(t *testing.T) {
	u := New()
	in := strings.NewReader("привет\nhello\n")
	var out strings.Builder

	stats, err := u.RomanizeStream(in, &out, "rus", FormatStr, 0)
	if err != nil {
		t.Fatalf("RomanizeStream returned error: %v", err)
	}
	if stats.LineCount != 2 {
		t.Errorf("LineCount = %d, want 2", stats.LineCount)
	}
	if stats.NonUTF8LineCount != 0 {
		t.Errorf("NonUTF8LineCount = %d, want 0 for valid UTF-8 input", stats.NonUTF8LineCount)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("output has %d lines, want 2", len(lines))
	}
	if lines[0] != "privet" {
		t.Errorf("line 0 = %q, want %q", lines[0], "privet")
	}
}

// TestRomanizeStreamLcodeDirective covers the "::lcode " stream directive:
// a per-line language override prefixed back onto the output.
func TestRomanizeStreamLcodeDirective(t *testing.T) {
	u := New()
	in := strings.NewReader("::lcode rus привет\n")
	var out strings.Builder

	_, err := u.RomanizeStream(in, &out, "", FormatStr, 0)
	if err != nil {
		t.Fatalf("RomanizeStream returned error: %v", err)
	}

	got := strings.TrimRight(out.String(), "\n")
	want := "::lcode rus privet"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

// TestRomanizeStreamLcodeDirectiveMetaEdgeSplice covers the non-Str format
// quirk: a raw `[0,0,"","lcode: XXX"]` literal is spliced in front of the
// real edge array rather than folded into the edge object shape.
func TestRomanizeStreamLcodeDirectiveMetaEdgeSplice(t *testing.T) {
	u := New()
	in := strings.NewReader("::lcode rus а\n")
	var out strings.Builder

	_, err := u.RomanizeStream(in, &out, "", FormatEdges, 0)
	if err != nil {
		t.Fatalf("RomanizeStream returned error: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, `[0,0,"","lcode: rus"]`) {
		t.Errorf("output = %q, want it to contain the spliced meta-edge literal", got)
	}
}

func TestRomanizeStreamRespectsMaxLines(t *testing.T) {
	u := New()
	in := strings.NewReader("a\nb\nc\n")
	var out strings.Builder

	stats, err := u.RomanizeStream(in, &out, "", FormatStr, 2)
	if err != nil {
		t.Fatalf("RomanizeStream returned error: %v", err)
	}
	if stats.LineCount != 2 {
		t.Errorf("LineCount = %d, want 2 (stopped at maxLines)", stats.LineCount)
	}
}

// TestRomanizeStreamNonUTF8Replacement covers the invalid-byte replacement
// and capped-error-reporting path.
func TestRomanizeStreamNonUTF8Replacement(t *testing.T) {
	u := New()
	invalid := []byte{'a', 0xff, 'b', '\n'}
	in := strings.NewReader(string(invalid))
	var out strings.Builder

	stats, err := u.RomanizeStream(in, &out, "", FormatStr, 0)
	if err != nil {
		t.Fatalf("RomanizeStream returned error: %v", err)
	}
	if stats.NonUTF8LineCount != 1 {
		t.Errorf("NonUTF8LineCount = %d, want 1", stats.NonUTF8LineCount)
	}
}
