// Package heap implements a small priority structure used by the layer
// search in the parent hnsw package. Layer search needs both a min-ordered
// frontier (always expand the closest unexpanded candidate) and a
// max-bounded result set (cheaply find and evict the worst of the current
// best ef); Heap exposes both ends of the same ordering so either role can
// be built from it.
//
// It is kept as an ascending sorted slice rather than a classic binary heap:
// the instances are created for each layer-search call and only ever hold
// up to ef elements (tens to low hundreds), so the O(n) insert is cheaper
// in practice than the allocation and comparator overhead of container/heap
// for something this small, and it makes Min/Max/PopLast O(1).
package heap

import "sort"

// Interface constrains the elements a Heap can hold to a strict weak
// ordering against other elements of the same type.
type Interface[T any] interface {
	Less(T) bool
}

// Heap is a bounded, dual-ended priority structure ordered ascending by
// Less. The zero value is an empty, usable heap.
type Heap[T Interface[T]] struct {
	data []T
}

// Init replaces the heap's backing storage. data need not be sorted; Init
// sorts it in place. Passing a zero-length, non-nil slice pre-allocates
// capacity for subsequent pushes.
func (h *Heap[T]) Init(data []T) {
	h.data = data
	sort.Slice(h.data, func(i, j int) bool { return h.data[i].Less(h.data[j]) })
}

// Len returns the number of elements currently held.
func (h *Heap[T]) Len() int { return len(h.data) }

// Push inserts v, keeping the backing slice sorted ascending.
func (h *Heap[T]) Push(v T) {
	i := sort.Search(len(h.data), func(i int) bool { return v.Less(h.data[i]) })
	h.data = append(h.data, v)
	copy(h.data[i+1:], h.data[i:])
	h.data[i] = v
}

// Pop removes and returns the minimum element.
func (h *Heap[T]) Pop() T {
	v := h.data[0]
	h.data = h.data[1:]
	return v
}

// PopLast removes and returns the maximum element.
func (h *Heap[T]) PopLast() T {
	n := len(h.data) - 1
	v := h.data[n]
	h.data = h.data[:n]
	return v
}

// Min returns, without removing, the minimum element.
func (h *Heap[T]) Min() T { return h.data[0] }

// Max returns, without removing, the maximum element.
func (h *Heap[T]) Max() T { return h.data[len(h.data)-1] }

// Slice returns the elements in ascending order. The returned slice aliases
// the heap's internal storage and must not be mutated by the caller.
func (h *Heap[T]) Slice() []T { return h.data }
