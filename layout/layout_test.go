package layout

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/umapgo/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClip_BoundsToFour(t *testing.T) {
	assert.Equal(t, 4.0, Clip(10))
	assert.Equal(t, -4.0, Clip(-10))
	assert.Equal(t, 1.5, Clip(1.5))
	assert.Equal(t, Clip(Clip(7)), Clip(7), "idempotent once clipped")
}

func TestMakeEpochsPerSample_KnownVector(t *testing.T) {
	got := MakeEpochsPerSample([]float64{0.5, 1, 4, 42}, 10)
	want := []float64{84.0, 42.0, 10.5, 1.0}
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9)
	}
}

func TestMakeEpochsPerSample_AllZeroWeightsNeverFire(t *testing.T) {
	got := MakeEpochsPerSample([]float64{0, 0, 0}, 5)
	for _, v := range got {
		assert.Equal(t, -1.0, v)
	}
}

func TestOptimize_RejectsNilEmbedding(t *testing.T) {
	err := Optimize(nil, nil, nil, nil, nil, 1, 1, 1, 1, 5, 10, rand.New(rand.NewSource(1)), true)
	require.ErrorIs(t, err, ErrNilEmbedding)
}

func TestOptimize_RejectsLengthMismatch(t *testing.T) {
	head, _ := sparse.NewDense(3, 2)
	err := Optimize(head, head, []int32{0, 1}, []int32{1}, []float64{1, 1}, 1, 1, 1, 1, 5, 10, rand.New(rand.NewSource(1)), true)
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestOptimize_AttractsConnectedPointsCloser(t *testing.T) {
	rows := [][]float64{{0, 0}, {10, 10}, {5, -5}}
	emb, err := sparse.NewDenseFromRows(rows)
	require.NoError(t, err)

	headIdx := []int32{0}
	tailIdx := []int32{1}
	eps := MakeEpochsPerSample([]float64{1}, 50)

	before0, _ := emb.RowView(0)
	before1, _ := emb.RowView(1)
	d0 := sqDist(before0, before1)

	err = Optimize(emb, emb, headIdx, tailIdx, eps, 1.577, 0.895, 1.0, 1.0, 5, 50, rand.New(rand.NewSource(3)), true)
	require.NoError(t, err)

	after0, _ := emb.RowView(0)
	after1, _ := emb.RowView(1)
	d1 := sqDist(after0, after1)

	assert.Less(t, d1, d0, "connected points should move closer under attraction")
}
