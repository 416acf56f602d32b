package uroman

import (
	"regexp"
	"strconv"
	"strings"
)

// slotValueInDoubleColonDelList extracts the value of a "::slot" field from
// a line of the form "::s1 value1 ::s2 value2 ...", trimmed of surrounding
// whitespace. Grounded on original_source/src/utils.rs
// `slot_value_in_double_colon_del_list`.
func slotValueInDoubleColonDelList(line, slot string) (string, bool) {
	search := "::" + slot
	idx := strings.Index(line, search)
	if idx < 0 {
		return "", false
	}
	remaining := line[idx+len(search):]
	if end := strings.Index(remaining, "::"); end >= 0 {
		return strings.TrimSpace(remaining[:end]), true
	}
	return strings.TrimSpace(remaining), true
}

var dequoteRe = regexp.MustCompile(`^\s*(['"“])(.*)(['"”])\s*$`)

// Dequote strips a single layer of matching quotes (straight or curly
// double) from s, grounded on original_source/src/utils.rs
// `dequote_string`. Exported for cmd/uroman's direct-input argument
// handling (SUPPLEMENTED FEATURES item 3).
func Dequote(s string) string {
	m := dequoteRe.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	open, content, close := m[1], m[2], m[3]
	if (open == "'" && close == "'") || (open == `"` && close == `"`) || (open == "“" && close == "”") {
		return content
	}
	return s
}

var hasEscapeRe = regexp.MustCompile(`\\(x[0-9a-fA-F]{2}|u[0-9a-fA-F]{4}|U[0-9a-fA-F]{8})`)

// DecodeUnicodeEscapes expands \xNN, \uNNNN and \UNNNNNNNN escapes above
// U+0080 into their literal runes, leaving escapes below U+0080 untouched
// (they usually denote literal backslash sequences a user typed on a CLI,
// not codepoints). Grounded on original_source/src/utils.rs
// `decode_unicode_escapes`.
func DecodeUnicodeEscapes(s string) string {
	if !hasEscapeRe.MatchString(s) {
		return s
	}
	var b strings.Builder
	last := 0
	for _, loc := range hasEscapeRe.FindAllStringIndex(s, -1) {
		b.WriteString(s[last:loc[0]])
		seq := s[loc[0]:loc[1]]
		hex := seq[2:]
		cp, err := strconv.ParseUint(hex, 16, 32)
		if err == nil && cp > 0x80 {
			b.WriteRune(rune(cp))
		} else {
			b.WriteString(seq)
		}
		last = loc[1]
	}
	b.WriteString(s[last:])
	return b.String()
}

// unicodeCharName returns a best-effort display name for a rune. The
// embedded tables ship explicit name overrides for every character the
// second-rom filter (Kayah/Mende detection) needs to recognize; outside of
// those overrides there is no bundled Unicode name database in this corpus,
// so unrecognized characters report "" (see DESIGN.md).
func unicodeCharName(c rune) string {
	return ""
}
