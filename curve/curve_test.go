package curve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindAB_RejectsInvalidSpread(t *testing.T) {
	_, _, err := FindAB(0.2, 0.1)
	require.ErrorIs(t, err, ErrInvalidSpread)

	_, _, err = FindAB(2, 0.1)
	require.ErrorIs(t, err, ErrInvalidSpread)
}

func TestFindAB_RejectsInvalidMinDist(t *testing.T) {
	_, _, err := FindAB(1, 1)
	require.ErrorIs(t, err, ErrInvalidMinDist)

	_, _, err = FindAB(1, 0)
	require.ErrorIs(t, err, ErrInvalidMinDist)

	_, _, err = FindAB(1, -0.1)
	require.ErrorIs(t, err, ErrInvalidMinDist)
}

func TestFindAB_DefaultParamsCloseToReference(t *testing.T) {
	// UMAP's published defaults (spread=1, min_dist=0.1) converge to
	// a ~= 1.577, b ~= 0.895 under scipy's curve_fit; our gradient fit
	// should land in the same neighborhood.
	a, b, err := FindAB(1.0, 0.1)
	require.NoError(t, err)
	assert.InDelta(t, 1.5769, a, 1e-3)
	assert.InDelta(t, 0.8950, b, 1e-3)
}

func TestFindAB_KernelMatchesTargetShape(t *testing.T) {
	spread, minDist := 1.0, 0.1
	a, b, err := FindAB(spread, minDist)
	require.NoError(t, err)

	// At x=0 the kernel must be 1, matching the target's plateau.
	assert.InDelta(t, 1.0, Kernel(0, a, b), 1e-9)

	// The kernel must be monotonically non-increasing in x.
	prev := Kernel(0, a, b)
	for x := 0.05; x <= 3; x += 0.05 {
		cur := Kernel(x, a, b)
		assert.LessOrEqual(t, cur, prev+1e-9)
		prev = cur
	}
}

func TestFindAB_Deterministic(t *testing.T) {
	a1, b1, _ := FindAB(1.2, 0.3)
	a2, b2, _ := FindAB(1.2, 0.3)
	assert.Equal(t, a1, a2)
	assert.Equal(t, b1, b2)
	assert.False(t, math.IsNaN(a1) || math.IsNaN(b1))
}
