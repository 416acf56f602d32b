// Package langdetect picks a default ISO 639-3-ish language code for
// streaming romanization when the caller did not supply one, using
// whole-text whole-language detection rather than the script-only
// heuristics the rule tables use for context predicates.
package langdetect

import "github.com/abadojack/whatlanggo"

// minConfidence is the lowest whatlanggo confidence DefaultLcode accepts.
// The library already reports ISO 639-3 codes, which are passed through
// unchanged, matching the lcode convention the rule tables expect
// (spec.md §6 "lcode").
var minConfidence = 0.2

// DefaultLcode detects the dominant language of sample text and returns
// its ISO 639-3 code, or "" if detection confidence is too low to trust
// (SPEC_FULL.md §6 "default-lcode auto-detection").
func DefaultLcode(sample string) string {
	info := whatlanggo.Detect(sample)
	if info.Confidence < minConfidence {
		return ""
	}
	return info.Lang.Iso6393()
}
