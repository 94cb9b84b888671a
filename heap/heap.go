package heap

import (
	"math"
	"sort"
)

// Entry is one candidate neighbor slot: Idx is the neighbor's row index,
// Dist its distance to the query, IsNew flags whether it has not yet been
// used as a "new" candidate in NN-descent's refinement rounds.
type Entry struct {
	Idx   int32
	Dist  float64
	IsNew bool
}

// NNHeap is a fixed-capacity max-heap of Entry values: the slot with the
// largest distance is always the root, so it can be replaced in O(log K)
// when a strictly closer candidate is found. Push rejects a candidate whose
// distance is >= the current maximum, or whose index already occupies a
// slot, in O(K) (see doc.go for why a linear scan beats a side index here).
type NNHeap struct {
	cap     int
	entries []Entry
}

// NewNNHeap allocates an empty heap with capacity k.
func NewNNHeap(k int) *NNHeap {
	return &NNHeap{cap: k, entries: make([]Entry, 0, k)}
}

// Len returns the number of occupied slots (<= capacity).
func (h *NNHeap) Len() int { return len(h.entries) }

// Max returns the current maximum distance in the heap, or +Inf if the heap
// has not yet reached capacity (an under-full heap always accepts).
func (h *NNHeap) Max() float64 {
	if len(h.entries) < h.cap {
		return math.Inf(1)
	}
	if len(h.entries) == 0 {
		return math.Inf(1)
	}

	return h.entries[0].Dist
}

// contains scans the current slots for idx. Complexity: O(K).
func (h *NNHeap) contains(idx int32) bool {
	for i := range h.entries {
		if h.entries[i].Idx == idx {
			return true
		}
	}

	return false
}

// Push attempts to insert (idx, dist, isNew). Returns false (no-op) if
// dist >= the current maximum (once the heap is full) or idx already
// occupies a slot; otherwise inserts (growing the heap while under
// capacity, or replacing the root and sifting down once full) and returns
// true. Complexity: O(K) for the duplicate scan, O(log K) for the sift.
func (h *NNHeap) Push(dist float64, idx int32, isNew bool) bool {
	if h.contains(idx) {
		return false
	}

	if len(h.entries) < h.cap {
		h.entries = append(h.entries, Entry{Idx: idx, Dist: dist, IsNew: isNew})
		h.siftUp(len(h.entries) - 1)

		return true
	}

	if dist >= h.entries[0].Dist {
		return false
	}

	h.entries[0] = Entry{Idx: idx, Dist: dist, IsNew: isNew}
	h.siftDown(0)

	return true
}

func (h *NNHeap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.entries[parent].Dist >= h.entries[i].Dist {
			break
		}
		h.entries[parent], h.entries[i] = h.entries[i], h.entries[parent]
		i = parent
	}
}

func (h *NNHeap) siftDown(i int) {
	n := len(h.entries)
	for {
		left := 2*i + 1
		right := 2*i + 2
		largest := i
		if left < n && h.entries[left].Dist > h.entries[largest].Dist {
			largest = left
		}
		if right < n && h.entries[right].Dist > h.entries[largest].Dist {
			largest = right
		}
		if largest == i {
			return
		}
		h.entries[i], h.entries[largest] = h.entries[largest], h.entries[i]
		i = largest
	}
}

// MarkAllOld clears IsNew on every occupied slot, used by NN-descent between
// rounds once the "new" candidates of this round have been consumed.
func (h *NNHeap) MarkAllOld() {
	for i := range h.entries {
		h.entries[i].IsNew = false
	}
}

// Entries exposes the current (unsorted, heap-order) slots for callers that
// need direct iteration (e.g. NN-descent's candidate-list construction).
func (h *NNHeap) Entries() []Entry { return h.entries }

// DeheapSort extracts the occupied slots in ascending-distance order,
// returning parallel idx/dist/isNew slices of length Len(). The receiver is
// not modified and stays usable as a heap; a fresh sort of slot positions is
// used rather than repeated heap-pop to keep this a non-mutating O(n log n)
// view.
func (h *NNHeap) DeheapSort() (idx []int32, dist []float64, isNew []bool) {
	order := make([]int, len(h.entries))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return h.entries[order[a]].Dist < h.entries[order[b]].Dist })

	idx = make([]int32, len(order))
	dist = make([]float64, len(order))
	isNew = make([]bool, len(order))
	for i, k := range order {
		idx[i] = h.entries[k].Idx
		dist[i] = h.entries[k].Dist
		isNew[i] = h.entries[k].IsNew
	}

	return idx, dist, isNew
}
