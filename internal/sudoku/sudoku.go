// Package sudoku is the Sudoku front end for the dlx exact-cover solver.
// It translates a 9x9 board into a 324-column exact cover instance and
// reads the result back, but never builds or walks a linked matrix itself
// — all of that lives in package dlx, which this package only calls.
package sudoku

import (
	"fmt"
	"iter"

	"github.com/kpitt/dlx"
	"github.com/kpitt/dlx/internal/puzzle"
)

// Placement is one candidate (row, col, value) assignment. It is the Label
// type fed into dlx.Row; a solution comes back as a list of Placements,
// one per cell, which Solve applies to the Puzzle.
type Placement struct {
	Row, Col, Val int
}

// Column encodings. A 9x9 Sudoku has four families of constraint, 81 each:
// every cell holds exactly one digit, and every digit appears exactly once
// in each row, column, and 3x3 box.
const (
	cellBase = 0   // [0, 81): cell (r,c) is filled
	rowBase  = 81  // [81, 162): digit v appears in row r
	colBase  = 162 // [162, 243): digit v appears in column c
	boxBase  = 243 // [243, 324): digit v appears in box b
)

func cellColumn(r, c int) int { return cellBase + r*9 + c }
func rowColumn(r, v int) int  { return rowBase + r*9 + (v - 1) }
func colColumn(c, v int) int  { return colBase + c*9 + (v - 1) }
func boxColumn(b, v int) int  { return boxBase + b*9 + (v - 1) }
func boxOf(r, c int) int      { return r/3*3 + c/3 }

// ColumnName renders a constraint column's index for diagnostics: R<r>C<c>
// for a cell constraint, and R<r>#<v>, C<c>#<v> or B<b>#<v> for a digit
// constraint on a row, column or box.
func ColumnName(col int) string {
	switch {
	case col < rowBase:
		r, c := col/9, col%9
		return fmt.Sprintf("R%dC%d", r, c)
	case col < colBase:
		idx := col - rowBase
		return fmt.Sprintf("R%d#%d", idx/9, idx%9+1)
	case col < boxBase:
		idx := col - colBase
		return fmt.Sprintf("C%d#%d", idx/9, idx%9+1)
	default:
		idx := col - boxBase
		return fmt.Sprintf("B%d#%d", idx/9, idx%9+1)
	}
}

// rows builds one dlx.Row per candidate placement: a single row for an
// already-solved cell (its given value), or nine rows — one per digit — for
// an empty cell, including digits that a given elsewhere in the same row,
// column or box already rules out. Each row carries the four columns its
// placement would satisfy.
func rows(p *puzzle.Puzzle) []dlx.Row[Placement, int] {
	out := make([]dlx.Row[Placement, int], 0, 9*9*9)
	for r := range 9 {
		for c := range 9 {
			cell := p.Grid[r][c]
			lo, hi := 1, 9
			if cell.IsSolved() {
				lo, hi = cell.Value(), cell.Value()
			}
			for v := lo; v <= hi; v++ {
				out = append(out, dlx.Row[Placement, int]{
					Label: Placement{Row: r, Col: c, Val: v},
					Elems: map[int]struct{}{
						cellColumn(r, c):         {},
						rowColumn(r, v):          {},
						colColumn(c, v):          {},
						boxColumn(boxOf(r, c), v): {},
					},
				})
			}
		}
	}
	return out
}

// Solve finds an exact cover of the 324 Sudoku constraints consistent with
// p's given digits and applies every selected placement back onto p. It
// reports whether a solution was found; p is left unmodified beyond its
// givens if it returns false.
func Solve(p *puzzle.Puzzle) bool {
	placements, ok := dlx.Solve(rows(p))
	if !ok {
		return false
	}
	apply(p, placements)
	return true
}

// Solutions lazily enumerates every exact cover consistent with p's givens,
// each as the list of placements that completes the board. It never
// mutates p; callers that want a filled-in Puzzle per solution should use
// apply on a fresh copy, or simply call Solve once uniqueness is known.
func Solutions(p *puzzle.Puzzle) iter.Seq[[]Placement] {
	return dlx.Solutions(rows(p))
}

// CountSolutions enumerates up to limit solutions and returns how many were
// found, stopping early once limit is reached — the Sudoku analogue of
// dlx's first-solution/all-solutions split, used to confirm a puzzle has a
// unique completion without paying for full enumeration.
func CountSolutions(p *puzzle.Puzzle, limit int) int {
	count := 0
	for range Solutions(p) {
		count++
		if count >= limit {
			break
		}
	}
	return count
}

func apply(p *puzzle.Puzzle, placements []Placement) {
	for _, pl := range placements {
		cell := p.Grid[pl.Row][pl.Col]
		if !cell.IsSolved() {
			p.PlaceValue(pl.Row, pl.Col, pl.Val)
		}
	}
}

// Stats summarizes the exact cover instance built for a puzzle, for
// demonstration and diagnostic output — the structural counts the teacher's
// hand-rolled matrix used to report, recomputed here from the row set this
// package builds rather than from dlx's private node pool.
type Stats struct {
	Columns    int
	Rows       int
	TotalNodes int
	Density    float64
}

func NewStats(p *puzzle.Puzzle) Stats {
	rs := rows(p)
	nodes := 0
	for _, row := range rs {
		nodes += len(row.Elems)
	}
	s := Stats{Columns: 324, Rows: len(rs), TotalNodes: nodes}
	if s.Columns > 0 && s.Rows > 0 {
		s.Density = float64(nodes) / float64(s.Columns*s.Rows) * 100.0
	}
	return s
}

// Validate checks that a fully solved puzzle actually satisfies every row,
// column, and box constraint. An exact cover can't produce a conflict by
// construction, so this is a demonstration safety net rather than something
// the CLI needs on its hot path.
func Validate(p *puzzle.Puzzle) error {
	for r := range 9 {
		for c := range 9 {
			if !p.Grid[r][c].IsSolved() {
				return fmt.Errorf("cell (%d,%d) is not filled", r, c)
			}
		}
	}

	for r := range 9 {
		if err := verifyHouse(func(i int) int { return p.Grid[r][i].Value() }); err != nil {
			return fmt.Errorf("row %d: %w", r, err)
		}
	}
	for c := range 9 {
		if err := verifyHouse(func(i int) int { return p.Grid[i][c].Value() }); err != nil {
			return fmt.Errorf("column %d: %w", c, err)
		}
	}
	for box := range 9 {
		boxRow, boxCol := box/3, box%3
		if err := verifyHouse(func(i int) int {
			return p.Grid[boxRow*3+i/3][boxCol*3+i%3].Value()
		}); err != nil {
			return fmt.Errorf("box %d: %w", box, err)
		}
	}
	return nil
}

func verifyHouse(valueAt func(int) int) error {
	var seen [10]bool
	for i := range 9 {
		v := valueAt(i)
		if v < 1 || v > 9 {
			return fmt.Errorf("invalid value %d", v)
		}
		if seen[v] {
			return fmt.Errorf("duplicate value %d", v)
		}
		seen[v] = true
	}
	return nil
}
