package hnsw

import "cmp"

// graphNode is an index-internal record wrapping a Point with its assigned
// top level and, for each layer 0..topLevel, an adjacency set of neighbor
// node ids. Edges reference neighbors by the stable integer index into the
// owning Index's node slice rather than by pointer, which keeps edges
// trivially comparable, avoids lifetime hazards, and needs no
// special-casing for cycles, which are expected in an undirected
// adjacency graph.
type graphNode[K cmp.Ordered] struct {
	id        int
	point     Point[K]
	topLevel  int
	neighbors []map[int]struct{} // indexed 0..topLevel
}

func newGraphNode[K cmp.Ordered](id int, p Point[K], topLevel int) *graphNode[K] {
	n := &graphNode[K]{id: id, point: p, topLevel: topLevel}
	n.neighbors = make([]map[int]struct{}, topLevel+1)
	for l := range n.neighbors {
		n.neighbors[l] = make(map[int]struct{})
	}
	return n
}

func (n *graphNode[K]) hasLayer(l int) bool { return l <= n.topLevel }

func (n *graphNode[K]) degree(l int) int { return len(n.neighbors[l]) }
