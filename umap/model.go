package umap

import (
	"math"
	"math/rand"
	"sort"

	"github.com/katalvlaran/umapgo/fuzzyset"
	"github.com/katalvlaran/umapgo/layout"
	"github.com/katalvlaran/umapgo/rptree"
	"github.com/katalvlaran/umapgo/smoothknn"
	"github.com/katalvlaran/umapgo/sparse"
)

// Transform embeds new points Xp into the space learned by Fit, per
// spec.md §4.10: find each new point's approximate neighbors among the
// training rows, build a fuzzy graph against them, seed the new embedding as
// a weighted average of the corresponding training embedding rows, then
// refine with SGD holding the training embedding frozen.
func (model *Model) Transform(Xp *sparse.Dense) (*sparse.Dense, error) {
	if model.singleSample || model.precomputed {
		return nil, ErrUnsupportedTransform
	}
	if Xp == nil || Xp.Cols() != model.X.Cols() {
		return nil, ErrShapeMismatch
	}

	opts := model.Opts
	m := Xp.Rows()
	n := model.X.Rows()

	k := opts.NNeighbors
	if k > n {
		k = n
	}

	knnIdx, knnDist := queryKNN(model, Xp, k, deriveRNG(opts.RandomSeed, streamDescent))

	knnDense, err := toRowMajorDense(knnDist, m, k)
	if err != nil {
		return nil, err
	}

	localConnectivity := opts.LocalConnectivity - 1
	if localConnectivity < 0 {
		localConnectivity = 0
	}
	sigma, rho, err := smoothknn.Calibrate(knnDense, float64(k), float64(localConnectivity), 1.0)
	if err != nil {
		return nil, err
	}

	graph, err := fuzzyset.MembershipStrengths(knnIdx, knnDist, sigma, rho, m, n)
	if err != nil {
		return nil, err
	}
	normalized := rowNormalizeL1(graph)

	embedding, err := seedFromWeightedAverage(normalized, model.Embedding, opts.NComponents)
	if err != nil {
		return nil, err
	}

	nEpochs := 100
	if normalized.Rows > 10000 {
		nEpochs = 30
	}

	a, b := model.A, model.B
	epochsPerSample := layout.MakeEpochsPerSample(normalized.Data, nEpochs)
	frozenTail := model.Embedding.Clone()

	err = layout.Optimize(embedding, frozenTail, normalized.Row, normalized.Col, epochsPerSample,
		a, b, opts.RepulsionStrength, opts.LearningRate, opts.NegativeSampleRate, nEpochs,
		deriveRNG(opts.RandomSeed, streamLayout), false)
	if err != nil {
		return nil, err
	}

	return embedding, nil
}

// queryKNN finds each row of Xp's k nearest rows among the training data,
// either by brute-force pairwise search (small N) or by pooling candidates
// from the fitted forest's leaf buckets and ranking those exactly — a
// simplified stand-in for the reference's initialized_nnd_search over the
// symmetric search graph (see DESIGN.md).
func queryKNN(model *Model, Xp *sparse.Dense, k int, rng *rand.Rand) (idx []int32, dist []float64) {
	m := Xp.Rows()
	n := model.X.Rows()
	idx = make([]int32, m*k)
	dist = make([]float64, m*k)

	for i := 0; i < m; i++ {
		q, _ := Xp.RowView(i)

		var candidateSet map[int32]bool
		if model.Forest != nil {
			candidateSet = map[int32]bool{}
			for _, tree := range model.Forest.Trees {
				flat := tree.Flatten()
				lo, hi := rptree.SearchFlatTree(q, flat, rng)
				for p := lo; p < hi; p++ {
					candidateSet[flat.Indices[p]] = true
				}
			}
		}

		type cand struct {
			j int32
			d float64
		}
		var cands []cand
		if len(candidateSet) >= k {
			for j := range candidateSet {
				row, _ := model.X.RowView(int(j))
				cands = append(cands, cand{j, model.Metric(q, row)})
			}
		} else {
			for j := 0; j < n; j++ {
				row, _ := model.X.RowView(j)
				cands = append(cands, cand{int32(j), model.Metric(q, row)})
			}
		}
		sort.Slice(cands, func(a, b int) bool { return cands[a].d < cands[b].d })

		for p := 0; p < k; p++ {
			if p < len(cands) {
				idx[i*k+p] = cands[p].j
				dist[i*k+p] = cands[p].d
			} else {
				idx[i*k+p] = -1
				dist[i*k+p] = math.Inf(1)
			}
		}
	}

	return idx, dist
}

// rowNormalizeL1 divides each row by the sum of its entries (not the row
// max, which is what sparse.COO.RowNormalize implements for the training
// graph's symmetrization step) — spec.md §4.10 calls for L1 normalization
// specifically at transform time.
func rowNormalizeL1(g *sparse.COO) *sparse.COO {
	rowSums := make([]float64, g.Rows)
	for n := 0; n < g.NNZ(); n++ {
		rowSums[g.Row[n]] += g.Data[n]
	}

	data := make([]float64, g.NNZ())
	for n := 0; n < g.NNZ(); n++ {
		s := rowSums[g.Row[n]]
		if s > 0 {
			data[n] = g.Data[n] / s
		}
	}

	out, err := sparse.NewCOOFromTriplets(g.Rows, g.Cols, append([]int32(nil), g.Row...), append([]int32(nil), g.Col...), data)
	if err != nil {
		return g
	}

	return out
}

// seedFromWeightedAverage initializes each new point's embedding row as the
// weighted sum of its neighbors' training-embedding rows, using the
// row-normalized membership weights computed above.
func seedFromWeightedAverage(normalized *sparse.COO, trainingEmbedding *sparse.Dense, dims int) (*sparse.Dense, error) {
	out, err := sparse.NewDense(normalized.Rows, dims)
	if err != nil {
		return nil, err
	}

	for n := 0; n < normalized.NNZ(); n++ {
		i, j, w := normalized.Row[n], normalized.Col[n], normalized.Data[n]
		trainRow, err := trainingEmbedding.RowView(int(j))
		if err != nil {
			continue
		}
		outRow, _ := out.RowView(int(i))
		for d := 0; d < dims; d++ {
			outRow[d] += w * trainRow[d]
		}
	}

	return out, nil
}
