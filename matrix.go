package dlx

// Row is one labeled subset of the universe: Label identifies the subset
// for solution output, and Elems is the set of universe elements it covers.
// Subsets and labels may repeat; rows are assigned indices in the order
// they're consumed. An empty Elems is permitted — such a row contributes no
// nodes to the matrix and can never appear in a solution.
type Row[L any, T comparable] struct {
	Label L
	Elems map[T]struct{}
}

// matrix is the toroidal linked structure built from a sequence of rows,
// plus the label array the search reads back from at the end.
type matrix[L any, T comparable] struct {
	pool    *pool
	root    *node
	headers map[T]*node
	labels  []L
}

func build[L any, T comparable](rows []Row[L, T]) *matrix[L, T] {
	m := &matrix[L, T]{
		pool:    newPool(),
		headers: make(map[T]*node, len(rows)),
		labels:  make([]L, 0, len(rows)),
	}
	m.root = m.pool.allocHeader()
	for _, row := range rows {
		m.addSubset(row.Label, row.Elems)
	}
	return m
}

// addSubset appends one row to the matrix. Elements are seen in whatever
// order the caller's map iterates them; since rows are unordered sets this
// has no bearing on correctness, only on the tie-broken column order the
// first builder pass assigns to newly discovered elements.
func (m *matrix[L, T]) addSubset(label L, elems map[T]struct{}) {
	rowIx := len(m.labels)
	m.labels = append(m.labels, label)

	var rowHead *node
	for elem := range elems {
		header, ok := m.headers[elem]
		if !ok {
			header = m.pool.allocHeader()
			m.root.insertLeft(header)
			m.headers[elem] = header
		}

		n := m.pool.allocData(header, rowIx)
		header.insertUp(n)
		header.incSize()

		if rowHead == nil {
			rowHead = n
		} else {
			rowHead.insertLeft(n)
		}
	}
}
