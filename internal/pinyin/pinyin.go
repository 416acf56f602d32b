// Package pinyin strips tone diacritics from accented Hanyu Pinyin
// syllables so the Chinese-to-Pinyin rule table can store plain ASCII
// romanizations.
package pinyin

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks is a reusable NFD-decompose-then-drop-combining-marks
// transformer, the same chain shape as the teacher's
// internal/unicode.StripDiacritics.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// Deaccent removes tone marks from an accented Pinyin syllable (e.g.
// "zhōng" -> "zhong") and normalizes the umlaut-u digraph, per
// original_source/src/lib.rs `load_chinese_pinyin_file`'s NFD-and-filter
// pass.
func Deaccent(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		out = s
	}
	return strings.ReplaceAll(out, "ü", "u")
}
