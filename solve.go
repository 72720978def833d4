package dlx

import (
	"iter"
	"slices"
)

// Solve searches for a set of rows whose Elems partition the universe —
// every element appearing in exactly one selected row — and returns their
// Labels in the order the rows were given. The second return value is
// false if no such set exists, in which case the label slice is nil.
//
// Solve backtracks through the search tree, branching on a minimum-size
// column at each level, and stops at the first solution found; for
// exhaustive or counted search use Solutions instead.
func Solve[L any, T comparable](rows []Row[L, T]) ([]L, bool) {
	m := build(rows)
	rowIxs, ok := search(m.root, make([]int, 0, len(rows)))
	if !ok {
		return nil, false
	}
	return extract(m.labels, rowIxs), true
}

// Solutions returns a lazy iterator over every solution to the exact cover
// problem defined by rows, each as the Labels of its selected rows in the
// order the rows were given. Stopping iteration early (the yield function
// returning false) abandons the remaining search.
func Solutions[L any, T comparable](rows []Row[L, T]) iter.Seq[[]L] {
	m := build(rows)
	return func(yield func([]L) bool) {
		for rowIxs := range allSolutions(m.root) {
			if !yield(extract(m.labels, rowIxs)) {
				return
			}
		}
	}
}

// extract maps a set of row indices back to the labels the caller supplied
// for those rows, in row insertion order.
func extract[L any](labels []L, rowIxs []int) []L {
	ixs := slices.Sorted(slices.Values(rowIxs))
	out := make([]L, len(ixs))
	for i, ix := range ixs {
		out[i] = labels[ix]
	}
	return out
}
