package nndescent

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/umapgo/heap"
	"github.com/katalvlaran/umapgo/metric"
	"github.com/katalvlaran/umapgo/sparse"
)

// Options tunes the refinement loop. Descend replaces a non-positive
// MaxCandidates or Delta with the DefaultOptions value, so a zero Options
// behaves like DefaultOptions.
type Options struct {
	// MaxCandidates bounds how many new and how many old candidates are
	// drawn from a point's current heap each round.
	MaxCandidates int
	// Delta is the early-stop threshold: the round's update count must stay
	// at or above Delta * k * N or the loop stops.
	Delta float64
	// NIters is the round budget. Zero selects max(5, log2(N)).
	NIters int
}

// DefaultOptions returns UMAP's published NN-descent defaults.
func DefaultOptions() Options {
	return Options{MaxCandidates: 60, Delta: 0.001, NIters: 0}
}

// Descend refines leafArray (the pooled leaf buckets of a random-projection
// forest, one row per bucket, -1 padded) into an approximate k-nearest-
// neighbor table for every row of data. It returns row-major indices and
// dists of shape [N*k]; a -1 entry in indices marks a slot that never
// received k distinct neighbors and is tolerated by downstream callers.
func Descend(data *sparse.Dense, k int, metric metric.Func, leafArray [][]int32, rng *rand.Rand, opts Options) (indices []int32, dists []float64, err error) {
	if data == nil || data.Rows() == 0 {
		return nil, nil, ErrEmptyData
	}
	n := data.Rows()
	if opts.MaxCandidates <= 0 {
		opts.MaxCandidates = DefaultOptions().MaxCandidates
	}
	if opts.Delta <= 0 {
		opts.Delta = DefaultOptions().Delta
	}
	nIters := opts.NIters
	if nIters <= 0 {
		nIters = int(math.Log2(float64(n)))
		if nIters < 5 {
			nIters = 5
		}
	}

	heaps := make([]*heap.NNHeap, n)
	for i := range heaps {
		heaps[i] = heap.NewNNHeap(k)
	}

	rowAt := func(i int32) []float64 {
		row, _ := data.RowView(int(i))

		return row
	}

	tryPush := func(p, q int32) bool {
		if p == q {
			return false
		}
		d := metric(rowAt(p), rowAt(q))
		a := heaps[p].Push(d, q, true)
		b := heaps[q].Push(d, p, true)

		return a || b
	}

	// Seed every heap from the leaf buckets: every pair of co-located points
	// is a candidate of each other.
	for _, bucket := range leafArray {
		for i := 0; i < len(bucket); i++ {
			if bucket[i] < 0 {
				continue
			}
			for j := i + 1; j < len(bucket); j++ {
				if bucket[j] < 0 {
					continue
				}
				tryPush(bucket[i], bucket[j])
			}
		}
	}

	for iter := 0; iter < nIters; iter++ {
		newCand := make([][]int32, n)
		oldCand := make([][]int32, n)
		for p := 0; p < n; p++ {
			var fresh, stale []int32
			for _, e := range heaps[p].Entries() {
				if e.IsNew {
					fresh = append(fresh, e.Idx)
				} else {
					stale = append(stale, e.Idx)
				}
			}
			fresh = sampleCap(fresh, opts.MaxCandidates, rng)
			stale = sampleCap(stale, opts.MaxCandidates, rng)
			newCand[p] = fresh
			oldCand[p] = stale
		}
		// Entries sampled as "new" this round have now been examined; they
		// become "old" candidates for subsequent rounds.
		for p := 0; p < n; p++ {
			sampledNew := map[int32]bool{}
			for _, q := range newCand[p] {
				sampledNew[q] = true
			}
			for i, e := range heaps[p].Entries() {
				if sampledNew[e.Idx] {
					heaps[p].Entries()[i].IsNew = false
				}
			}
		}

		updates := 0
		for p := int32(0); p < int32(n); p++ {
			nc := newCand[p]
			oc := oldCand[p]
			all := make([]int32, 0, len(nc)+len(oc))
			all = append(all, nc...)
			all = append(all, oc...)

			for _, q := range nc {
				for _, r := range all {
					if q == r {
						continue
					}
					if tryPush(q, r) {
						updates++
					}
				}
			}
		}

		if float64(updates) < opts.Delta*float64(k)*float64(n) {
			break
		}
	}

	indices = make([]int32, n*k)
	dists = make([]float64, n*k)
	for p := 0; p < n; p++ {
		idx, dist, _ := heaps[p].DeheapSort()
		for j := 0; j < k; j++ {
			if j < len(idx) {
				indices[p*k+j] = idx[j]
				dists[p*k+j] = dist[j]
			} else {
				indices[p*k+j] = -1
				dists[p*k+j] = math.Inf(1)
			}
		}
	}

	return indices, dists, nil
}

// sampleCap returns ids, or a uniformly random subset of size cap when
// len(ids) exceeds cap, via a partial Fisher-Yates shuffle.
func sampleCap(ids []int32, cap int, rng *rand.Rand) []int32 {
	if len(ids) <= cap {
		return ids
	}
	shuffled := append([]int32(nil), ids...)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	return shuffled[:cap]
}
