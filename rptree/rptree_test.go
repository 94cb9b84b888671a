package rptree

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/umapgo/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clusteredData(t *testing.T) *sparse.Dense {
	t.Helper()
	rows := make([][]float64, 0, 80)
	centers := [][]float64{{0, 0}, {10, 10}, {0, 10}, {10, 0}}
	rng := rand.New(rand.NewSource(7))
	for _, c := range centers {
		for i := 0; i < 20; i++ {
			rows = append(rows, []float64{
				c[0] + rng.NormFloat64()*0.1,
				c[1] + rng.NormFloat64()*0.1,
			})
		}
	}
	d, err := sparse.NewDenseFromRows(rows)
	require.NoError(t, err)

	return d
}

func TestBuildForest_RejectsEmptyData(t *testing.T) {
	_, err := BuildForest(nil, 5, 3, rand.New(rand.NewSource(1)), false, nil)
	require.ErrorIs(t, err, ErrEmptyData)
}

func TestBuildForest_RejectsNoTrees(t *testing.T) {
	data := clusteredData(t)
	_, err := BuildForest(data, 5, 0, rand.New(rand.NewSource(1)), false, nil)
	require.ErrorIs(t, err, ErrTooFewTrees)
}

func TestBuildForest_RejectsNilRNG(t *testing.T) {
	data := clusteredData(t)
	_, err := BuildForest(data, 5, 3, nil, false, nil)
	require.ErrorIs(t, err, ErrNilRNG)
}

func TestBuildForest_LeavesCoverAllPoints(t *testing.T) {
	data := clusteredData(t)
	forest, err := BuildForest(data, 10, 4, rand.New(rand.NewSource(42)), false, nil)
	require.NoError(t, err)
	require.Len(t, forest.Trees, 4)

	for _, tree := range forest.Trees {
		seen := map[int32]bool{}
		var walk func(n *node)
		walk = func(n *node) {
			if n.indices != nil {
				for _, idx := range n.indices {
					seen[idx] = true
				}

				return
			}
			walk(n.left)
			walk(n.right)
		}
		walk(tree.root)
		assert.Equal(t, data.Rows(), len(seen))
	}
}

func TestFlatten_RoundTripsLeafRanges(t *testing.T) {
	data := clusteredData(t)
	forest, err := BuildForest(data, 10, 1, rand.New(rand.NewSource(3)), false, nil)
	require.NoError(t, err)

	flat := forest.Trees[0].Flatten()
	total := 0
	for _, children := range flat.Children {
		if children[0] < 0 {
			lo := -children[0] - 1
			hi := -children[1] - 1
			total += int(hi - lo)
		}
	}
	assert.Equal(t, data.Rows(), total)
}

func TestSearchFlatTree_ReturnsNonEmptyRange(t *testing.T) {
	data := clusteredData(t)
	rng := rand.New(rand.NewSource(9))
	forest, err := BuildForest(data, 10, 1, rng, false, nil)
	require.NoError(t, err)

	flat := forest.Trees[0].Flatten()
	query, _ := data.RowView(0)
	lo, hi := SearchFlatTree(query, flat, rng)
	assert.Greater(t, hi, lo)
}

func TestLeafArray_PaddedRectangular(t *testing.T) {
	data := clusteredData(t)
	forest, err := BuildForest(data, 10, 2, rand.New(rand.NewSource(11)), true, nil)
	require.NoError(t, err)

	leaves := LeafArray(forest)
	require.NotEmpty(t, leaves)
	width := len(leaves[0])
	for _, row := range leaves {
		assert.Len(t, row, width)
	}
}
