package uroman

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/dbryar/uroman-go/internal/langdetect"
)

const lcodeDirective = "::lcode "

const maxStreamErrorMessages = 10

// StreamStats accumulates the diagnostics romanize_file's streaming loop
// prints to stderr in the original: a non-UTF-8 replacement count and the
// number of lines processed, so callers embedding the library (rather than
// going through cmd/uroman) can surface the same information themselves.
type StreamStats struct {
	LineCount         int
	NonUTF8LineCount  int
}

// RomanizeStream processes r line by line, writing one output line per
// input line to w, and implements the `::lcode ` stream directive: a line
// starting with that prefix is split into a per-line language override and
// the text to romanize, and (for any non-Str format) its result is
// prefixed with a synthetic meta-edge literal rather than folded into the
// edge object shape, faithfully reproducing the original's
// `[{meta_edge},{rest of edge array}]` splice (spec.md §4.9,
// SUPPLEMENTED FEATURES item 4).
//
// Grounded on original_source/src/lib.rs `romanize_file`.
func (u *Uroman) RomanizeStream(r io.Reader, w io.Writer, defaultLcode string, format RomFormat, maxLines int) (StreamStats, error) {
	var stats StreamStats
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	bw := bufio.NewWriter(w)
	defer bw.Flush()

	nErrorsReported := 0

	for scanner.Scan() {
		stats.LineCount++
		raw := scanner.Bytes()

		line := string(raw)
		if !utf8.Valid(raw) {
			stats.NonUTF8LineCount++
			line = strings.ToValidUTF8(line, "�")
			if nErrorsReported < maxStreamErrorMessages {
				fmt.Fprintf(os.Stderr, "line %d: non-UTF-8 characters were replaced.\n", stats.LineCount)
				nErrorsReported++
			} else if nErrorsReported == maxStreamErrorMessages {
				fmt.Fprintln(os.Stderr, "Too many encoding errors. No further errors reported.")
				nErrorsReported++
			}
		}
		line = strings.TrimRight(line, "\r")

		if rest, ok := strings.CutPrefix(line, lcodeDirective); ok {
			lc, text, _ := strings.Cut(rest, " ")
			result, err := u.Romanize(text, lc, format)
			if err != nil {
				return stats, err
			}
			if format == FormatStr {
				fmt.Fprintf(bw, "%s%s %s\n", lcodeDirective, lc, result.Str)
			} else {
				metaEdge := fmt.Sprintf(`[0,0,"","lcode: %s"]`, lc)
				if after, ok := strings.CutPrefix(result.JSON, "["); ok {
					fmt.Fprintf(bw, "[%s,%s\n", metaEdge, after)
				} else {
					fmt.Fprintln(bw, result.JSON)
				}
			}
			if maxLines > 0 && stats.LineCount >= maxLines {
				break
			}
			continue
		}

		lc := defaultLcode
		if lc == "" {
			lc = langdetect.DefaultLcode(line)
		}

		result, err := u.Romanize(line, lc, format)
		if err != nil {
			return stats, err
		}
		if format == FormatStr {
			fmt.Fprintln(bw, result.Str)
		} else {
			fmt.Fprintln(bw, result.JSON)
		}

		if maxLines > 0 && stats.LineCount >= maxLines {
			break
		}
	}

	return stats, scanner.Err()
}
