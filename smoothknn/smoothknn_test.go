package smoothknn

import (
	"math"
	"testing"

	"github.com/katalvlaran/umapgo/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalibrate_RejectsNil(t *testing.T) {
	_, _, err := Calibrate(nil, 5, 1, 1)
	require.ErrorIs(t, err, ErrNilInput)
}

func TestCalibrate_SigmaMatchesTargetSum(t *testing.T) {
	rows := [][]float64{
		{1, 2, 3, 4},
		{0.5, 1, 1.5, 2},
		{2, 3, 3, 3},
	}
	dists, err := sparse.NewDenseFromRows(rows)
	require.NoError(t, err)

	k := 4.0
	sigma, rho, err := Calibrate(dists, k, 1, 1)
	require.NoError(t, err)
	require.Len(t, sigma, 3)
	require.Len(t, rho, 3)

	target := math.Log2(k)
	for i, row := range rows {
		sum := kernelSum(row, rho[i], sigma[i])
		assert.InDelta(t, target, sum, 1e-3, "row %d", i)
		assert.Greater(t, sigma[i], 0.0)
	}
}

func TestCalibrate_RhoIsFirstNonZeroDistanceAtDefaultConnectivity(t *testing.T) {
	rows := [][]float64{{0.3, 0.7, 1.1}}
	dists, _ := sparse.NewDenseFromRows(rows)
	_, rho, err := Calibrate(dists, 3, 1, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, rho[0], 1e-9)
}

func TestInterpolateRho_FractionalConnectivity(t *testing.T) {
	// localConnectivity = 1.5 interpolates halfway between the 1st and 2nd
	// non-zero distances.
	rho := interpolateRho([]float64{1, 2, 3}, 1.5)
	assert.InDelta(t, 1.5, rho, 1e-9)
}

func TestInterpolateRho_EmptyYieldsZero(t *testing.T) {
	assert.Equal(t, 0.0, interpolateRho(nil, 1))
}
