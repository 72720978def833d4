package main

import (
	"fmt"
	"os"

	"github.com/kpitt/dlx/internal/puzzle"
	"github.com/kpitt/dlx/internal/sudoku"
	"github.com/mattn/go-isatty"
)

// main reads one 81-character Sudoku line per line of stdin and writes the
// solved 81-character line, or the literal "no solution", to stdout for
// each — a malformed or unsolvable line never aborts the stream.
func main() {
	if isStdinTTY() {
		fmt.Println("Enter one or more 81-character Sudoku boards, one per line.")
		fmt.Println("Use '.' or '0' for empty cells, digits 1-9 for givens.")
		fmt.Println("(Ctrl+D to finish on Unix/Linux, Ctrl+Z then Enter on Windows):")
	}

	for line := range puzzle.Lines(os.Stdin) {
		fmt.Println(solveLine(line))
	}
}

func solveLine(line string) string {
	p, err := puzzle.ParseLine(line)
	if err != nil {
		return "no solution"
	}
	if !sudoku.Solve(p) {
		return "no solution"
	}
	return p.Line()
}

func isStdinTTY() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
