package metric

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allMetrics = map[string]Func{
	"euclidean":   Euclidean,
	"manhattan":   Manhattan,
	"chebyshev":   Chebyshev,
	"cosine":      Cosine,
	"correlation": Correlation,
	"hamming":     Hamming,
	"jaccard":     Jaccard,
	"yule":        Yule,
	"canberra":    Canberra,
	"braycurtis":  BrayCurtis,
}

func TestMetrics_SymmetryNonNegativityZeroSelf(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for name, fn := range allMetrics {
		t.Run(name, func(t *testing.T) {
			for trial := 0; trial < 50; trial++ {
				n := 1 + rng.Intn(8)
				x := make([]float64, n)
				y := make([]float64, n)
				for i := 0; i < n; i++ {
					x[i] = rng.Float64()*2 - 1
					y[i] = rng.Float64()*2 - 1
				}

				dxy := fn(x, y)
				dyx := fn(y, x)
				assert.InDelta(t, dxy, dyx, 1e-9, "symmetry")
				assert.GreaterOrEqual(t, dxy, 0.0, "non-negative")
				assert.InDelta(t, 0.0, fn(x, x), 1e-9, "zero on self")
			}
		})
	}
}

func TestNamed_Registry(t *testing.T) {
	fn, props, err := Named("euclidean")
	require.NoError(t, err)
	require.NotNil(t, fn)
	assert.False(t, props.Angular)

	_, _, err = Named("cosine")
	require.NoError(t, err)

	_, _, err = Named("no-such-metric")
	require.ErrorIs(t, err, ErrUnknownMetric)
}

func TestNewMahalanobis(t *testing.T) {
	identity := [][]float64{{1, 0}, {0, 1}}
	fn := NewMahalanobis(identity)
	d := fn([]float64{0, 0}, []float64{3, 4})
	assert.InDelta(t, 5.0, d, 1e-9)
}
