package dlx

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// knuthRows reproduces the canonical 6-row, 7-column exact cover instance
// from Knuth's "Dancing Links" paper: rows A..F over columns 1..7, with the
// unique exact cover {B, D, F}.
func knuthRows() []Row[string, int] {
	set := func(elems ...int) map[int]struct{} {
		m := make(map[int]struct{}, len(elems))
		for _, e := range elems {
			m[e] = struct{}{}
		}
		return m
	}
	return []Row[string, int]{
		{Label: "A", Elems: set(1, 4, 7)},
		{Label: "B", Elems: set(1, 4)},
		{Label: "C", Elems: set(4, 5, 7)},
		{Label: "D", Elems: set(3, 5, 6)},
		{Label: "E", Elems: set(2, 3, 6, 7)},
		{Label: "F", Elems: set(2, 7)},
	}
}

func TestSolveKnuthExample(t *testing.T) {
	labels, ok := Solve(knuthRows())
	require.True(t, ok)

	sort.Strings(labels)
	require.Equal(t, []string{"B", "D", "F"}, labels)
}

func TestSolveInfeasible(t *testing.T) {
	set := func(elems ...int) map[int]struct{} {
		m := make(map[int]struct{}, len(elems))
		for _, e := range elems {
			m[e] = struct{}{}
		}
		return m
	}
	rows := []Row[string, int]{
		{Label: "A", Elems: set(1, 2)},
		{Label: "B", Elems: set(2, 3)},
	}

	labels, ok := Solve(rows)
	require.False(t, ok)
	require.Nil(t, labels)
}

func TestSolveEmptyUniverse(t *testing.T) {
	labels, ok := Solve([]Row[string, int]{})
	require.True(t, ok)
	require.Empty(t, labels)
}

func TestSolveRowWithNoElementsIsUnreachable(t *testing.T) {
	set := func(elems ...int) map[int]struct{} {
		m := make(map[int]struct{}, len(elems))
		for _, e := range elems {
			m[e] = struct{}{}
		}
		return m
	}
	rows := []Row[string, int]{
		{Label: "empty", Elems: set()},
		{Label: "only", Elems: set(1)},
	}

	labels, ok := Solve(rows)
	require.True(t, ok)
	require.Equal(t, []string{"only"}, labels)
}

func TestSolutionsEnumeratesAll(t *testing.T) {
	// Four rows over two columns, each column covered by two single-element
	// rows, giving four distinct exact covers.
	set := func(elems ...int) map[int]struct{} {
		m := make(map[int]struct{}, len(elems))
		for _, e := range elems {
			m[e] = struct{}{}
		}
		return m
	}
	rows := []Row[string, int]{
		{Label: "A", Elems: set(1)},
		{Label: "B", Elems: set(1)},
		{Label: "C", Elems: set(2)},
		{Label: "D", Elems: set(2)},
	}

	var found [][]string
	for sol := range Solutions(rows) {
		dup := make([]string, len(sol))
		copy(dup, sol)
		found = append(found, dup)
	}

	// Column 1's rows (A, B) are tried in insertion order as the outer loop,
	// column 2's rows (C, D) as the inner loop, so the four exact covers are
	// yielded in this exact sequence — not just as an unordered set of four.
	require.Equal(t, [][]string{
		{"A", "C"},
		{"A", "D"},
		{"B", "C"},
		{"B", "D"},
	}, found)
}

func TestSolutionsEarlyStop(t *testing.T) {
	set := func(elems ...int) map[int]struct{} {
		m := make(map[int]struct{}, len(elems))
		for _, e := range elems {
			m[e] = struct{}{}
		}
		return m
	}
	rows := []Row[string, int]{
		{Label: "A", Elems: set(1)},
		{Label: "B", Elems: set(1)},
		{Label: "C", Elems: set(2)},
		{Label: "D", Elems: set(2)},
	}

	count := 0
	for range Solutions(rows) {
		count++
		break
	}
	require.Equal(t, 1, count)
}

func TestSolutionsNoSolutionsYieldsNothing(t *testing.T) {
	set := func(elems ...int) map[int]struct{} {
		m := make(map[int]struct{}, len(elems))
		for _, e := range elems {
			m[e] = struct{}{}
		}
		return m
	}
	rows := []Row[string, int]{
		{Label: "A", Elems: set(1, 2)},
		{Label: "B", Elems: set(2, 3)},
	}

	for sol := range Solutions(rows) {
		t.Fatalf("expected no solutions, got %v", sol)
	}
}
