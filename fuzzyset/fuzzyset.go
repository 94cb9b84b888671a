package fuzzyset

import (
	"math"

	"github.com/katalvlaran/umapgo/sparse"
)

// MembershipStrengths converts a flattened [rows*K] kNN index/distance table
// and per-row (sigma, rho) calibration into the directed fuzzy simplicial
// set's adjacency: weight 1 within rho, exponential decay beyond it, 0 on a
// self-loop, and skipped entirely when the index slot is -1 (spec §4.7).
func MembershipStrengths(knnIdx []int32, knnDist []float64, sigma, rho []float64, rows, cols int) (*sparse.COO, error) {
	if len(knnIdx) != len(knnDist) {
		return nil, ErrLengthMismatch
	}
	if rows <= 0 || len(knnIdx)%rows != 0 {
		return nil, ErrInvalidShape
	}
	k := len(knnIdx) / rows

	rowIdx := make([]int32, 0, len(knnIdx))
	colIdx := make([]int32, 0, len(knnIdx))
	data := make([]float64, 0, len(knnIdx))

	for i := 0; i < rows; i++ {
		for p := 0; p < k; p++ {
			j := knnIdx[i*k+p]
			if j < 0 {
				continue
			}

			var weight float64
			switch {
			case int(j) == i:
				weight = 0
			case knnDist[i*k+p] <= rho[i]:
				weight = 1
			default:
				weight = math.Exp(-(knnDist[i*k+p] - rho[i]) / sigma[i])
			}

			if weight <= 0 {
				continue
			}

			rowIdx = append(rowIdx, int32(i))
			colIdx = append(colIdx, j)
			data = append(data, weight)
		}
	}

	return sparse.NewCOOFromTriplets(rows, cols, rowIdx, colIdx, data)
}

// FuzzyUnion combines a directed fuzzy simplicial set a with its transpose b
// into a symmetric one using the probabilistic t-conorm
// alpha*(A + Aᵀ - A∘Aᵀ) + (1-alpha)*(A∘Aᵀ), then eliminates zero entries.
func FuzzyUnion(a, b *sparse.COO, mixRatio float64) (*sparse.COO, error) {
	sum, err := sparse.Add(a, b)
	if err != nil {
		return nil, err
	}
	had, err := sparse.Hadamard(a, b)
	if err != nil {
		return nil, err
	}
	diff, err := sparse.Sub(sum, had)
	if err != nil {
		return nil, err
	}

	blended, err := sparse.Add(diff.Scale(mixRatio), had.Scale(1-mixRatio))
	if err != nil {
		return nil, err
	}

	return blended.EliminateZeros(), nil
}

// ResetLocalConnectivity symmetrizes g via
// row_normalize(G) + row_normalize(G)ᵀ - row_normalize(G) ∘ row_normalize(G)ᵀ,
// restoring the local-connectivity=1 assumption that a categorical or
// re-derived graph may have lost.
func ResetLocalConnectivity(g *sparse.COO) (*sparse.COO, error) {
	normalized := g.RowNormalize()

	plus, err := normalized.PlusTranspose()
	if err != nil {
		return nil, err
	}
	had, err := normalized.HadamardTranspose()
	if err != nil {
		return nil, err
	}

	result, err := sparse.Sub(plus, had)
	if err != nil {
		return nil, err
	}

	return result.EliminateZeros(), nil
}

// CategoricalIntersect down-weights edges crossing target-label boundaries:
// an edge touching an unknown label (-1) is scaled by exp(-unknownDist), an
// edge between two different known labels by exp(-farDist), and an edge
// within the same label is left unchanged. The result is then passed through
// ResetLocalConnectivity (spec §4.7).
func CategoricalIntersect(g *sparse.COO, target []int32, unknownDist, farDist float64) (*sparse.COO, error) {
	rowIdx := make([]int32, g.NNZ())
	colIdx := make([]int32, g.NNZ())
	data := make([]float64, g.NNZ())

	for n := 0; n < g.NNZ(); n++ {
		i, j, v := g.Row[n], g.Col[n], g.Data[n]
		switch {
		case target[i] == -1 || target[j] == -1:
			v *= math.Exp(-unknownDist)
		case target[i] != target[j]:
			v *= math.Exp(-farDist)
		}
		rowIdx[n] = i
		colIdx[n] = j
		data[n] = v
	}

	scaled, err := sparse.NewCOOFromTriplets(g.Rows, g.Cols, rowIdx, colIdx, data)
	if err != nil {
		return nil, err
	}

	return ResetLocalConnectivity(scaled)
}

// GeneralIntersect blends g with a continuous-valued targetGraph: edges are
// first combined by keeping each position's maximum weight across the two
// inputs, then g is linearly blended toward that max-combined graph by
// targetWeight (0 keeps g unchanged, 1 fully adopts the max combination).
func GeneralIntersect(g, targetGraph *sparse.COO, targetWeight float64) (*sparse.COO, error) {
	merged, err := sparse.Max(g, targetGraph)
	if err != nil {
		return nil, err
	}

	blended, err := sparse.Add(g.Scale(1-targetWeight), merged.Scale(targetWeight))
	if err != nil {
		return nil, err
	}

	return blended.EliminateZeros(), nil
}
