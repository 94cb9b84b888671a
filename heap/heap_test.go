package heap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNNHeap_FillsToCapacity(t *testing.T) {
	h := NewNNHeap(3)
	require.True(t, h.Push(5, 1, true))
	require.True(t, h.Push(2, 2, true))
	require.True(t, h.Push(8, 3, true))
	assert.Equal(t, 3, h.Len())
	assert.Equal(t, 8.0, h.Max())
}

func TestNNHeap_RejectsWorseThanRoot(t *testing.T) {
	h := NewNNHeap(2)
	h.Push(1, 10, true)
	h.Push(2, 20, true)
	// heap full, max is 2; a candidate with dist 2 should be rejected (>=)
	accepted := h.Push(2, 30, true)
	assert.False(t, accepted)
	accepted = h.Push(0.5, 40, true)
	assert.True(t, accepted)
}

func TestNNHeap_RejectsDuplicateIndex(t *testing.T) {
	h := NewNNHeap(4)
	h.Push(1, 7, true)
	accepted := h.Push(0.1, 7, true)
	assert.False(t, accepted)
	assert.Equal(t, 1, h.Len())
}

func TestNNHeap_DeheapSortAscending(t *testing.T) {
	h := NewNNHeap(5)
	for _, d := range []float64{4, 1, 3, 2} {
		h.Push(d, int32(d*10), true)
	}
	idx, dist, _ := h.DeheapSort()
	require.Len(t, dist, 4)
	for i := 1; i < len(dist); i++ {
		assert.LessOrEqual(t, dist[i-1], dist[i])
	}
	assert.Equal(t, int32(10), idx[0])
}

func TestNNHeap_BoundInvariant(t *testing.T) {
	h := NewNNHeap(3)
	for i := 0; i < 20; i++ {
		h.Push(float64(20-i), int32(i), true)
	}
	require.Equal(t, 3, h.Len())
	root := h.Max()
	require.False(t, math.IsInf(root, 0))
	for _, e := range h.Entries() {
		assert.LessOrEqual(t, e.Dist, root)
	}
}
