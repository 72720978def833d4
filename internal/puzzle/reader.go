package puzzle

import (
	"bufio"
	"io"
	"iter"
)

// Lines scans r one line at a time, yielding each line's text with its
// trailing newline stripped. It is the line-oriented plumbing the CLI front
// end uses to read one 81-character board per input line; parsing a line
// into a Puzzle is ParseLine's job, not this one.
//
// A scanner read error other than io.EOF is fatal, since the stream itself
// (not a single malformed board) is what broke.
func Lines(r io.Reader) iter.Seq[string] {
	return func(yield func(string) bool) {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			if !yield(scanner.Text()) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			fatalError("error reading standard input", err.Error())
		}
	}
}
