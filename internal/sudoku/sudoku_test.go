package sudoku

import (
	"testing"

	"github.com/kpitt/dlx/internal/puzzle"
)

const easyLine = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"

func mustParse(t *testing.T, line string) *puzzle.Puzzle {
	t.Helper()
	p, err := puzzle.ParseLine(line)
	if err != nil {
		t.Fatalf("ParseLine(%q): %v", line, err)
	}
	return p
}

func TestSolveFillsBoard(t *testing.T) {
	p := mustParse(t, easyLine)

	if !Solve(p) {
		t.Fatal("expected a solution")
	}
	if !p.IsSolved() {
		t.Fatal("puzzle should be fully solved")
	}
	if err := Validate(p); err != nil {
		t.Fatalf("solved puzzle failed validation: %v", err)
	}
}

func TestSolvePreservesGivens(t *testing.T) {
	p := mustParse(t, easyLine)
	if !Solve(p) {
		t.Fatal("expected a solution")
	}

	given := mustParse(t, easyLine)
	for r := range 9 {
		for c := range 9 {
			if given.Grid[r][c].IsSolved() && p.Grid[r][c].Value() != given.Grid[r][c].Value() {
				t.Fatalf("cell (%d,%d): solved value %d disagrees with given %d",
					r, c, p.Grid[r][c].Value(), given.Grid[r][c].Value())
			}
		}
	}
}

func TestSolveUnsolvableBoardReturnsFalse(t *testing.T) {
	// Two givens of the same digit in the same row can never be completed.
	p := puzzle.NewPuzzle()
	p.GivenValue(0, 0, 5)
	p.GivenValue(0, 1, 5)

	if Solve(p) {
		t.Fatal("expected no solution for conflicting givens")
	}
}

func TestSolveEmptyBoardFindsACompletion(t *testing.T) {
	p := puzzle.NewPuzzle()
	if !Solve(p) {
		t.Fatal("an empty board always has a completion")
	}
	if err := Validate(p); err != nil {
		t.Fatalf("solved empty board failed validation: %v", err)
	}
}

func TestCountSolutionsRespectsLimit(t *testing.T) {
	p := puzzle.NewPuzzle()
	if got := CountSolutions(p, 2); got != 2 {
		t.Fatalf("expected CountSolutions to stop at the limit, got %d", got)
	}
}

func TestCountSolutionsUniquePuzzle(t *testing.T) {
	p := mustParse(t, easyLine)
	if got := CountSolutions(p, 2); got != 1 {
		t.Fatalf("expected exactly one solution, got %d", got)
	}
}

func TestNewStatsCountsRowsAndColumns(t *testing.T) {
	p := puzzle.NewPuzzle()
	stats := NewStats(p)

	if stats.Columns != 324 {
		t.Errorf("expected 324 columns, got %d", stats.Columns)
	}
	if stats.Rows != 9*9*9 {
		t.Errorf("expected 729 candidate rows for an empty board, got %d", stats.Rows)
	}
	if stats.TotalNodes != stats.Rows*4 {
		t.Errorf("expected 4 nodes per row, got %d total for %d rows", stats.TotalNodes, stats.Rows)
	}
}

func TestNewStatsCountsFewerRowsWhenGivensPresent(t *testing.T) {
	p := mustParse(t, easyLine)
	stats := NewStats(p)

	if stats.Rows >= 9*9*9 {
		t.Errorf("expected fewer than 729 rows once givens are fixed, got %d", stats.Rows)
	}
}

func TestColumnNameEncodesAllFourFamilies(t *testing.T) {
	cases := []struct {
		col  int
		want string
	}{
		{0, "R0C0"},
		{80, "R8C8"},
		{81, "R0#1"},
		{161, "R8#9"},
		{162, "C0#1"},
		{242, "C8#9"},
		{243, "B0#1"},
		{323, "B8#9"},
	}
	for _, tc := range cases {
		if got := ColumnName(tc.col); got != tc.want {
			t.Errorf("ColumnName(%d) = %q, want %q", tc.col, got, tc.want)
		}
	}
}

func TestValidateRejectsIncompleteBoard(t *testing.T) {
	p := puzzle.NewPuzzle()
	p.GivenValue(0, 0, 5)

	if err := Validate(p); err == nil {
		t.Fatal("expected validation to fail on an incomplete board")
	}
}
