package hnsw

import (
	"cmp"
	"iter"
	"log/slog"
	"math/rand"
	"time"
)

// Index is a Hierarchical Navigable Small World graph over points labeled
// by K. The zero value is not usable; construct with New. Insert and
// Search are not safe to call concurrently on the same Index — the host
// must serialize access; a reader-writer discipline is a permissible
// extension this package deliberately does not take, since it would
// undermine the deterministic-replay guarantee a single seeded
// *rand.Rand is meant to provide.
type Index[K cmp.Ordered] struct {
	distance DistanceFunc
	sampler  *levelSampler
	logger   *slog.Logger

	m              int
	efConstruction int
	efSearch       int

	nodes []*graphNode[K]
	entry int
	lMax  int
	dim   int
}

// Option configures an Index at construction time.
type Option[K cmp.Ordered] func(*Index[K])

// WithSeed makes level assignment deterministic: the same seed and the same
// sequence of Insert calls produce a byte-identical graph.
func WithSeed[K cmp.Ordered](seed int64) Option[K] {
	return func(idx *Index[K]) {
		idx.sampler.rng = rand.New(rand.NewSource(seed))
	}
}

// WithEfSearch overrides the default query-time candidate list size, which
// otherwise defaults to ef_construction.
func WithEfSearch[K cmp.Ordered](ef int) Option[K] {
	return func(idx *Index[K]) { idx.efSearch = ef }
}

// WithLogger attaches a structured logger for lifecycle diagnostics (level
// assignment, entry-point changes, degree-cap prunes). Defaults to
// slog.Default() when not supplied.
func WithLogger[K cmp.Ordered](l *slog.Logger) Option[K] {
	return func(idx *Index[K]) { idx.logger = l }
}

// New constructs an empty Index. distance may be nil, in which case
// EuclideanDistance is used. levelMult must be > 0; pass
// defaultLevelMult(m) for the conventional default of 1/ln(M).
func New[K cmp.Ordered](m, efConstruction int, levelMult float64, distance DistanceFunc, opts ...Option[K]) (*Index[K], error) {
	if m < 1 {
		return nil, invalidConfigf("M must be >= 1, got %d", m)
	}
	if efConstruction < 1 {
		return nil, invalidConfigf("ef_construction must be >= 1, got %d", efConstruction)
	}
	if levelMult <= 0 {
		return nil, invalidConfigf("level_mult must be > 0, got %f", levelMult)
	}
	if distance == nil {
		distance = EuclideanDistance
	}

	idx := &Index[K]{
		distance:       distance,
		sampler:        newLevelSampler(rand.New(rand.NewSource(time.Now().UnixNano())), levelMult),
		m:              m,
		efConstruction: efConstruction,
		efSearch:       efConstruction,
		entry:          -1,
		dim:            -1,
	}
	for _, opt := range opts {
		opt(idx)
	}
	if idx.efSearch < 1 {
		return nil, invalidConfigf("ef_search must be >= 1, got %d", idx.efSearch)
	}
	if idx.logger == nil {
		idx.logger = slog.Default()
	}
	return idx, nil
}

func (idx *Index[K]) checkDimension(coords Vector) error {
	if idx.dim == -1 {
		idx.dim = len(coords)
		return nil
	}
	if len(coords) != idx.dim {
		return dimensionMismatchf("expected %d dimensions, got %d", idx.dim, len(coords))
	}
	return nil
}

// Insert adds a point to the index. It fails with ErrDimensionMismatch if
// the point's coordinate length differs from the dimension established by
// the first successful insert; on failure the index is left unmodified.
func (idx *Index[K]) Insert(p Point[K]) error {
	if err := idx.checkDimension(p.coords); err != nil {
		return err
	}

	level := idx.sampler.next()
	newID := len(idx.nodes)
	newNode := newGraphNode(newID, p, level)

	if idx.entry == -1 {
		idx.nodes = append(idx.nodes, newNode)
		idx.entry = newID
		idx.lMax = level
		idx.logger.Debug("hnsw: inserted first node", "id", newID, "level", level)
		return nil
	}

	ep := idx.entry
	for l := idx.lMax; l > level; l-- {
		cands := idx.searchLayer(p.coords, ep, l, 1)
		ep = cands[0].id
	}

	idx.nodes = append(idx.nodes, newNode)

	top := idx.lMax
	if level < top {
		top = level
	}
	for l := top; l >= 0; l-- {
		cands := idx.searchLayer(p.coords, ep, l, idx.efConstruction)
		idx.connect(newID, cands, l)
		ep = cands[0].id
	}

	if level > idx.lMax {
		idx.lMax = level
		idx.entry = newID
		idx.logger.Debug("hnsw: entry point advanced", "id", newID, "l_max", level)
	}

	idx.logger.Debug("hnsw: inserted node", "id", newID, "level", level)
	return nil
}

// InsertBatch inserts points in order, stopping at the first error. It is a
// plain sequential loop — no goroutines — so it preserves the single-
// threaded determinism Insert requires; its only purpose is to save the
// caller a loop.
func (idx *Index[K]) InsertBatch(points []Point[K]) error {
	for _, p := range points {
		if err := idx.Insert(p); err != nil {
			return err
		}
	}
	return nil
}

// Search returns the k points closest to query, ascending by distance. An
// empty index returns (nil, nil), not an error: querying before anything
// has been inserted is a valid, expected state, not a fault.
func (idx *Index[K]) Search(query Vector, k int) ([]Point[K], error) {
	if k < 1 {
		return nil, invalidConfigf("k must be >= 1, got %d", k)
	}
	if idx.entry == -1 {
		return nil, nil
	}
	if err := idx.checkDimension(query); err != nil {
		return nil, err
	}

	ep := idx.entry
	for l := idx.lMax; l >= 1; l-- {
		cands := idx.searchLayer(query, ep, l, 1)
		ep = cands[0].id
	}

	ef := idx.efSearch
	if k > ef {
		ef = k
	}
	cands := idx.searchLayer(query, ep, 0, ef)

	if k > len(cands) {
		k = len(cands)
	}
	out := make([]Point[K], k)
	for i := 0; i < k; i++ {
		out[i] = idx.nodes[cands[i].id].point
	}
	return out, nil
}

// SearchBatch runs Search for each query in order, stopping at the first
// error.
func (idx *Index[K]) SearchBatch(queries []Vector, k int) ([][]Point[K], error) {
	out := make([][]Point[K], len(queries))
	for i, q := range queries {
		res, err := idx.Search(q, k)
		if err != nil {
			return nil, err
		}
		out[i] = res
	}
	return out, nil
}

// Len returns the number of points in the index.
func (idx *Index[K]) Len() int { return len(idx.nodes) }

// NodeView is a read-only snapshot of one node's identity, coordinates, and
// per-layer neighbor labels, for debugging and property tests.
type NodeView[K cmp.Ordered] struct {
	Label     K
	Coords    Vector
	Neighbors [][]K // Neighbors[l] holds the labels of n's neighbors on layer l.
}

// IterNodes lazily yields a NodeView for every node in insertion order. It
// performs no mutation and is safe to call between Insert/Search calls on
// the same goroutine.
func (idx *Index[K]) IterNodes() iter.Seq[NodeView[K]] {
	return func(yield func(NodeView[K]) bool) {
		for _, n := range idx.nodes {
			view := NodeView[K]{Label: n.point.label, Coords: n.point.coords}
			view.Neighbors = make([][]K, len(n.neighbors))
			for l, neighbors := range n.neighbors {
				ids := sortedKeys(neighbors)
				labels := make([]K, len(ids))
				for i, id := range ids {
					labels[i] = idx.nodes[id].point.label
				}
				view.Neighbors[l] = labels
			}
			if !yield(view) {
				return
			}
		}
	}
}
