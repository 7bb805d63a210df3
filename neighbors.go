package hnsw

import (
	"maps"
	"slices"
)

// mMax returns the hard degree cap for layer l: 2*M at the base layer, M
// above it.
func mMax(m, l int) int {
	if l == 0 {
		return 2 * m
	}
	return m
}

// selectNeighbors implements the "simple closest" policy: the m closest
// distinct candidates, or fewer if cands is smaller. cands is
// assumed already distance-sorted ascending, which is how searchLayer
// returns its results.
func selectNeighbors(cands []candidate, m int) []candidate {
	if len(cands) <= m {
		return cands
	}
	return cands[:m]
}

// connect wires newID to its selected neighbors on layer l, installing
// bidirectional edges and pruning any neighbor that goes over its degree
// cap as a result.
func (idx *Index[K]) connect(newID int, cands []candidate, l int) {
	for _, c := range selectNeighbors(cands, idx.m) {
		if c.id == newID {
			continue
		}
		idx.addEdge(newID, c.id, l)
	}
}

// addEdge installs a bidirectional edge between a and b on layer l, then
// prunes either endpoint that now exceeds mMax(l).
func (idx *Index[K]) addEdge(a, b int, l int) {
	na, nb := idx.nodes[a], idx.nodes[b]

	na.neighbors[l][b] = struct{}{}
	nb.neighbors[l][a] = struct{}{}

	capacity := mMax(idx.m, l)
	if na.degree(l) > capacity {
		idx.prune(a, l, capacity)
	}
	if nb.degree(l) > capacity {
		idx.prune(b, l, capacity)
	}
}

// prune keeps a node's layer-l adjacency list down to the capacity closest
// neighbors by distance to the node's own point, removing the reciprocal
// edge on every dropped side so bidirectionality holds.
func (idx *Index[K]) prune(id int, l int, capacity int) {
	n := idx.nodes[id]
	ids := slices.Sorted(maps.Keys(n.neighbors[l]))

	scored := make([]candidate, 0, len(ids))
	for _, nid := range ids {
		d := idx.distance(n.point.coords, idx.nodes[nid].point.coords)
		scored = append(scored, candidate{id: nid, dist: d})
	}
	slices.SortFunc(scored, func(a, b candidate) int {
		if a.Less(b) {
			return -1
		}
		if b.Less(a) {
			return 1
		}
		return 0
	})

	for _, c := range scored[capacity:] {
		delete(n.neighbors[l], c.id)
		delete(idx.nodes[c.id].neighbors[l], id)
	}
	idx.logger.Debug("hnsw: pruned over-degree node", "id", id, "layer", l, "dropped", len(scored)-capacity)
}
