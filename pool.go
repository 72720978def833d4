package dlx

// pool owns every node created while building a single matrix. Nodes are
// never freed individually — the pool, and every node it allocated, is
// reclaimed as a unit once the caller is done with the solve.
type pool struct {
	nodes []*node
}

func newPool() *pool {
	return &pool{}
}

// allocHeader returns a new column header: a node whose header field is nil
// and whose five links self-loop.
func (p *pool) allocHeader() *node {
	n := &node{}
	n.up, n.down, n.left, n.right = n, n, n, n
	p.nodes = append(p.nodes, n)
	return n
}

// allocData returns a new data node under the given column header, tagged
// with the row it belongs to.
func (p *pool) allocData(header *node, rowIx int) *node {
	n := &node{header: header, sizeOrIx: rowIx}
	n.up, n.down, n.left, n.right = n, n, n, n
	p.nodes = append(p.nodes, n)
	return n
}
