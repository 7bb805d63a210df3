package hnsw

import "cmp"

// Analyzer computes read-only structural statistics over an Index, beyond
// the per-node view IterNodes exposes. It never mutates the index.
type Analyzer[K cmp.Ordered] struct {
	Index *Index[K]
}

// Height returns the number of layers in the graph (L_max + 1), or 0 for an
// empty index.
func (a *Analyzer[K]) Height() int {
	if a.Index.entry == -1 {
		return 0
	}
	return a.Index.lMax + 1
}

// Topography returns, for each layer 0..L_max, the number of nodes present
// on that layer: layer l contains exactly the nodes with top_level >= l.
func (a *Analyzer[K]) Topography() []int {
	h := a.Height()
	if h == 0 {
		return nil
	}
	counts := make([]int, h)
	for _, n := range a.Index.nodes {
		for l := 0; l <= n.topLevel; l++ {
			counts[l]++
		}
	}
	return counts
}

// Connectivity returns, for each layer 0..L_max, the average node degree on
// that layer. It is a build-health signal, not a correctness check — the
// degree cap itself is a per-node maximum, not an average.
func (a *Analyzer[K]) Connectivity() []float64 {
	h := a.Height()
	if h == 0 {
		return nil
	}
	topo := a.Topography()
	sums := make([]float64, h)
	for _, n := range a.Index.nodes {
		for l := 0; l <= n.topLevel; l++ {
			sums[l] += float64(n.degree(l))
		}
	}
	out := make([]float64, h)
	for l := range out {
		if topo[l] > 0 {
			out[l] = sums[l] / float64(topo[l])
		}
	}
	return out
}
