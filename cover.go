package dlx

// isEmpty reports whether root has no active columns left, i.e. every
// element of the universe has been covered.
func isEmpty(root *node) bool {
	return root.right == root
}

// minSizeCol returns the active column with the fewest remaining data
// nodes, breaking ties by the order columns appear walking right from
// root. It returns nil if there are no active columns.
func minSizeCol(root *node) *node {
	var best *node
	for h := root.right; h != root; h = h.right {
		if best == nil || h.size() < best.size() {
			best = h
		}
	}
	return best
}

// cover removes every column that selected's row intersects, together with
// every other row that intersects any of those columns — selected's own
// column included, since walking selected's row visits selected itself.
//
// uncover must be called on the same node, in exactly reversed order
// relative to any interleaved covers, to restore the matrix bit-for-bit.
func cover(selected *node) {
	n := selected
	for {
		h := n.colHeader()
		h.unlinkLR()

		for d := n.down; d != n; d = d.down {
			if d == h {
				continue
			}
			for r := d.right; r != d; r = r.right {
				r.unlinkUD()
			}
		}

		n = n.right
		if n == selected {
			break
		}
	}
}

// uncover is the exact inverse of cover. It walks selected's row in the
// opposite direction (starting left of selected, ending at selected) so
// that the last link broken by cover is the first one restored.
func uncover(selected *node) {
	n := selected.left
	for {
		h := n.colHeader()
		h.relinkLR()

		for d := n.up; d != n; d = d.up {
			if d == h {
				continue
			}
			for r := d.left; r != d; r = r.left {
				r.relinkUD()
			}
		}

		if n == selected {
			break
		}
		n = n.left
	}
}
