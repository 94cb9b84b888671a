package nndescent

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/umapgo/metric"
	"github.com/katalvlaran/umapgo/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gridPoints(t *testing.T) *sparse.Dense {
	t.Helper()
	rows := make([][]float64, 0, 25)
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			rows = append(rows, []float64{float64(i), float64(j)})
		}
	}
	d, err := sparse.NewDenseFromRows(rows)
	require.NoError(t, err)

	return d
}

func fullLeafArray(n int) [][]int32 {
	row := make([]int32, n)
	for i := range row {
		row[i] = int32(i)
	}

	return [][]int32{row}
}

func TestDescend_RejectsEmptyData(t *testing.T) {
	_, _, err := Descend(nil, 3, metric.Euclidean, nil, rand.New(rand.NewSource(1)), DefaultOptions())
	require.ErrorIs(t, err, ErrEmptyData)
}

func TestDescend_FindsExactNeighborsOnFullLeaf(t *testing.T) {
	data := gridPoints(t)
	k := 4
	leaves := fullLeafArray(data.Rows())
	idx, dist, err := Descend(data, k, metric.Euclidean, leaves, rand.New(rand.NewSource(5)), DefaultOptions())
	require.NoError(t, err)
	require.Len(t, idx, data.Rows()*k)
	require.Len(t, dist, data.Rows()*k)

	// Point 0 is (0,0); its nearest neighbors on the unit grid are at
	// distance 1 (two of them) and sqrt(2) (one), all within the seeded
	// single leaf bucket, so NN-descent should already have them exactly.
	row0 := dist[0:k]
	for i := 1; i < k; i++ {
		assert.LessOrEqual(t, row0[i-1], row0[i])
	}
	assert.InDelta(t, 1.0, row0[0], 1e-9)
}

func TestDescend_PadsWithNegativeOneWhenUnderfilled(t *testing.T) {
	rows := [][]float64{{0, 0}, {1, 0}, {2, 0}}
	data, err := sparse.NewDenseFromRows(rows)
	require.NoError(t, err)

	// k larger than N-1 possible neighbors forces padding.
	idx, _, err := Descend(data, 5, metric.Euclidean, fullLeafArray(3), rand.New(rand.NewSource(2)), DefaultOptions())
	require.NoError(t, err)
	assert.Contains(t, idx, int32(-1))
}
