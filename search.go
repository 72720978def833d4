package dlx

import "iter"

// search performs Knuth's Algorithm X, always branching on a minimum-size
// column, and returns the first solution found as a list of row indices.
// partial accumulates the rows chosen on the current path; it is owned by
// the caller and mutated in place via append/truncate; the slice returned on
// success is a fresh copy of it.
func search(root *node, partial []int) ([]int, bool) {
	if isEmpty(root) {
		out := make([]int, len(partial))
		copy(out, partial)
		return out, true
	}

	col := minSizeCol(root)
	if col.size() == 0 {
		return nil, false
	}

	for row := col.down; row != col; row = row.down {
		cover(row)
		partial = append(partial, row.rowIx())

		if sol, ok := search(root, partial); ok {
			return sol, true
		}

		partial = partial[:len(partial)-1]
		uncover(row)
	}

	return nil, false
}

// frame is one level of the explicit search stack allSolutions walks. header
// is the column chosen at this level; next is the row candidate (within
// header) to try when this level is resumed, or header itself once the
// column is exhausted. selected is the row node currently covered at this
// level, so it can be uncovered on the way back up.
type frame struct {
	header   *node
	next     *node
	selected *node
}

// allSolutions returns an iterator over every solution, each as a fresh
// slice of row indices. It walks the same search tree as search but keeps
// its own explicit stack instead of recursing, so that yielding control back
// to the caller between solutions never re-enters Go's call stack mid-search.
//
// The loop alternates between two modes: descending (pick a column, push a
// new frame for it) and backtracking (resume the top frame with its next
// candidate row, popping exhausted frames as it goes). A fresh frame always
// hands off to backtracking mode immediately, since selecting that frame's
// first candidate row is itself "resume with the next row."
func allSolutions(root *node) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		var stack []frame
		var partial []int

		backtracking := false
		for {
			if !backtracking {
				if isEmpty(root) {
					out := make([]int, len(partial))
					copy(out, partial)
					if !yield(out) {
						return
					}
					backtracking = true
					continue
				}

				col := minSizeCol(root)
				if col.size() == 0 {
					backtracking = true
					continue
				}

				stack = append(stack, frame{header: col, next: col.down})
				backtracking = true
				continue
			}

			if len(stack) == 0 {
				return
			}
			top := &stack[len(stack)-1]

			if top.selected != nil {
				partial = partial[:len(partial)-1]
				uncover(top.selected)
				top.selected = nil
			}

			if top.next == top.header {
				stack = stack[:len(stack)-1]
				continue
			}

			row := top.next
			top.next = top.next.down
			top.selected = row
			cover(row)
			partial = append(partial, row.rowIx())
			backtracking = false
		}
	}
}
