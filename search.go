package hnsw

import (
	"cmp"
	"maps"
	"math"
	"slices"

	"github.com/kestrelvec/hnsw/heap"
)

// searchLayer is a bounded best-first search: starting from a single entry
// node on layer l, expand the closest unexpanded candidate, stopping once
// the closest remaining candidate can no longer improve on the worst of
// the current best ef results.
func (idx *Index[K]) searchLayer(q Vector, entry int, l int, ef int) []candidate {
	entryDist := idx.distance(q, idx.nodes[entry].point.coords)

	visited := map[int]bool{entry: true}

	var frontier heap.Heap[candidate]
	frontier.Init(make([]candidate, 0, ef))
	frontier.Push(candidate{id: entry, dist: entryDist})

	var results heap.Heap[candidate]
	results.Init(make([]candidate, 0, ef))
	results.Push(candidate{id: entry, dist: entryDist})

	bound := entryDist
	if ef > 1 {
		bound = float32(math.Inf(1))
	}

	for frontier.Len() > 0 {
		c := frontier.Pop()
		if c.dist > bound {
			break
		}

		node := idx.nodes[c.id]
		if !node.hasLayer(l) {
			continue
		}

		for _, nid := range sortedKeys(node.neighbors[l]) {
			if visited[nid] {
				continue
			}
			visited[nid] = true

			d := idx.distance(q, idx.nodes[nid].point.coords)
			if results.Len() < ef || d < bound {
				frontier.Push(candidate{id: nid, dist: d})
				results.Push(candidate{id: nid, dist: d})
				if results.Len() > ef {
					results.PopLast()
				}
				if results.Len() < ef {
					bound = float32(math.Inf(1))
				} else {
					bound = results.Max().dist
				}
			}
		}
	}

	return results.Slice()
}

// sortedKeys returns the keys of m in ascending order, giving search a
// deterministic expansion order independent of Go's randomized map
// iteration, so repeated runs over the same graph traverse identically.
func sortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	return slices.Sorted(maps.Keys(m))
}
