// Command uroman romanizes text given on the command line, or streamed
// line-by-line from a file or stdin, to stdout.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	uroman "github.com/dbryar/uroman-go"
)

// No CLI flag library ships in the reference stack this module draws its
// dependencies from, so the flag set below uses the standard library
// directly (see DESIGN.md).
func main() {
	var (
		inputFilename  string
		outputFilename string
		lcode          string
		formatName     string
		maxLines       int
		decodeUnicode  bool
		silent         bool
		verbose        bool
	)

	flag.StringVar(&inputFilename, "input-filename", "", "input file path (default: stdin)")
	flag.StringVar(&inputFilename, "i", "", "shorthand for -input-filename")
	flag.StringVar(&outputFilename, "output-filename", "", "output file path (default: stdout)")
	flag.StringVar(&outputFilename, "o", "", "shorthand for -output-filename")
	flag.StringVar(&lcode, "lcode", "", "ISO 639-3 language code")
	flag.StringVar(&lcode, "l", "", "shorthand for -lcode")
	flag.StringVar(&formatName, "rom-format", "str", "output format: str, edges, alts, lattice")
	flag.StringVar(&formatName, "f", "str", "shorthand for -rom-format")
	flag.IntVar(&maxLines, "max-lines", 0, "limit streaming to the first n lines (0 = unlimited)")
	flag.BoolVar(&decodeUnicode, "decode-unicode", false, "decode \\xNN/\\uNNNN/\\UNNNNNNNN escapes in direct input")
	flag.BoolVar(&decodeUnicode, "d", false, "shorthand for -decode-unicode")
	flag.BoolVar(&silent, "silent", false, "suppress the blank line written to stderr after streaming (no progress indicators are printed)")
	flag.BoolVar(&verbose, "verbose", false, "report the processed line count to stderr when streaming")
	flag.BoolVar(&verbose, "v", false, "shorthand for -verbose")
	flag.Parse()

	format, err := uroman.ParseRomFormat(formatName)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	u := uroman.New()
	direct := flag.Args()
	streamModeActive := inputFilename != "" || len(direct) == 0

	if len(direct) > 0 {
		w := io.Writer(os.Stdout)
		if streamModeActive {
			w = os.Stderr
		}
		if err := processDirectInput(u, direct, lcode, format, decodeUnicode, w); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
	}

	if streamModeActive {
		if err := processStream(u, inputFilename, outputFilename, lcode, format, maxLines, silent, verbose); err != nil {
			if isBrokenPipe(err) {
				return
			}
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
	}
}

func processDirectInput(u *uroman.Uroman, args []string, lcode string, format uroman.RomFormat, decode bool, w io.Writer) error {
	for _, s := range args {
		s = uroman.Dequote(s)
		if decode {
			s = uroman.DecodeUnicodeEscapes(s)
		}
		result, err := u.Romanize(s, lcode, format)
		if err != nil {
			return fmt.Errorf("romanization failed: %w", err)
		}
		out := result.Str
		if format != uroman.FormatStr {
			out = result.JSON
		}
		fmt.Fprintln(w, out)
	}
	return nil
}

func processStream(u *uroman.Uroman, inputFilename, outputFilename, lcode string, format uroman.RomFormat, maxLines int, silent, verbose bool) error {
	reader, closeReader, err := openReader(inputFilename)
	if err != nil {
		return fmt.Errorf("failed to open input file %q: %w", inputFilename, err)
	}
	defer closeReader()

	writer, closeWriter, err := openWriter(outputFilename)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", outputFilename, err)
	}
	defer closeWriter()

	stats, err := u.RomanizeStream(reader, writer, lcode, format, maxLines)
	if err != nil {
		return fmt.Errorf("romanization failed: %w", err)
	}

	if !silent && stats.LineCount > 0 {
		fmt.Fprintln(os.Stderr)
	}
	if stats.NonUTF8LineCount > 0 {
		fmt.Fprintf(os.Stderr, "Total number of lines with non-UTF-8 characters: %d\n", stats.NonUTF8LineCount)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "lcode=%q rom-format=%s lines processed=%d\n", lcode, format, stats.LineCount)
	}
	return nil
}

func openReader(path string) (io.Reader, func(), error) {
	if path == "" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func openWriter(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

// isBrokenPipe swallows the SIGPIPE-equivalent error writers get when
// stdout is closed early (e.g. piped into `head`), matching the original
// CLI's special-cased exit (SUPPLEMENTED FEATURES item 5).
func isBrokenPipe(err error) bool {
	return strings.Contains(err.Error(), "broken pipe") || strings.Contains(err.Error(), "pipe")
}
