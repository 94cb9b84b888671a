package umap

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/umapgo/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blobData(t *testing.T, n int) *sparse.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(1))
	rows := make([][]float64, n)
	centers := [][]float64{{0, 0}, {20, 20}, {0, 20}}
	for i := range rows {
		c := centers[i%len(centers)]
		rows[i] = []float64{c[0] + rng.NormFloat64(), c[1] + rng.NormFloat64()}
	}
	d, err := sparse.NewDenseFromRows(rows)
	require.NoError(t, err)

	return d
}

func TestNew_DefaultsAreValid(t *testing.T) {
	u, err := New()
	require.NoError(t, err)
	require.NotNil(t, u)
}

func TestNew_RejectsInvalidParameters(t *testing.T) {
	assertConfigError := func(opt Option) {
		_, err := New(opt)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrConfig)
	}

	assertConfigError(WithSpread(-1))
	assertConfigError(WithSpread(0))
	assertConfigError(WithSpread(2))
	assertConfigError(WithNNeighbors(0))
	assertConfigError(WithNegativeSampleRate(-1))
	assertConfigError(WithLearningRate(0))
	assertConfigError(WithSetOpMixRatio(-1))
	assertConfigError(WithSetOpMixRatio(1.5))
}

func TestNew_RejectsUnknownMetric(t *testing.T) {
	_, err := New(WithMetric("no-such-metric"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfig)
}

func TestNew_RejectsMinDistAboveSpread(t *testing.T) {
	_, err := New(WithSpread(1.0), WithMinDist(1.0))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfig)
}

func TestNew_RejectsSpectralInit(t *testing.T) {
	_, err := New(WithInit(InitSpectral))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfig)
}

func TestFitTransform_ProducesExpectedShape(t *testing.T) {
	data := blobData(t, 60)
	u, err := New(WithNNeighbors(10), WithNEpochs(50), WithRandomSeed(7))
	require.NoError(t, err)

	emb, err := u.FitTransform(data, nil)
	require.NoError(t, err)
	assert.Equal(t, 60, emb.Rows())
	assert.Equal(t, 2, emb.Cols())
}

func TestFit_SingleSampleYieldsZeroEmbedding(t *testing.T) {
	data, err := sparse.NewDenseFromRows([][]float64{{1, 2, 3}})
	require.NoError(t, err)
	u, err := New()
	require.NoError(t, err)

	model, err := u.Fit(data, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, model.Embedding.Rows())

	_, err = model.Transform(data)
	require.ErrorIs(t, err, ErrUnsupportedTransform)
}

func TestTransform_RejectsWrongFeatureCount(t *testing.T) {
	data := blobData(t, 30)
	u, err := New(WithNNeighbors(5), WithNEpochs(50))
	require.NoError(t, err)
	model, err := u.Fit(data, nil)
	require.NoError(t, err)

	bad, _ := sparse.NewDense(2, 5)
	_, err = model.Transform(bad)
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestFit_RejectsYLengthMismatch(t *testing.T) {
	data := blobData(t, 10)
	u, err := New()
	require.NoError(t, err)
	_, err = u.Fit(data, []float64{1, 2, 3})
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func precomputedDistances(t *testing.T, n int) *sparse.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(11))
	centers := [][]float64{{0, 0}, {20, 20}, {0, 20}}
	points := make([][]float64, n)
	for i := range points {
		c := centers[i%len(centers)]
		points[i] = []float64{c[0] + rng.NormFloat64(), c[1] + rng.NormFloat64()}
	}

	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			dx := points[i][0] - points[j][0]
			dy := points[i][1] - points[j][1]
			rows[i][j] = math.Sqrt(dx*dx + dy*dy)
		}
	}
	d, err := sparse.NewDenseFromRows(rows)
	require.NoError(t, err)

	return d
}

// TestFit_PrecomputedMetricFitsFuzzyGraph covers spec §4.1/§8 scenario 6: a
// fuzzy graph fit directly on a precomputed pairwise-distance matrix (here,
// a 10x10 distance matrix over two-dimensional blob data), with no distance
// function called at all.
func TestFit_PrecomputedMetricFitsFuzzyGraph(t *testing.T) {
	dist := precomputedDistances(t, 10)
	u, err := New(WithMetric("precomputed"), WithNNeighbors(4), WithNEpochs(50))
	require.NoError(t, err)

	model, err := u.Fit(dist, nil)
	require.NoError(t, err)
	assert.Equal(t, 10, model.Embedding.Rows())
	assert.Equal(t, 2, model.Embedding.Cols())

	_, err = model.Transform(dist)
	require.ErrorIs(t, err, ErrUnsupportedTransform)
}

func TestTransform_ProducesExpectedShape(t *testing.T) {
	train := blobData(t, 60)
	u, err := New(WithNNeighbors(10), WithNEpochs(50), WithRandomSeed(3))
	require.NoError(t, err)
	model, err := u.Fit(train, nil)
	require.NoError(t, err)

	query := blobData(t, 5)
	out, err := model.Transform(query)
	require.NoError(t, err)
	assert.Equal(t, 5, out.Rows())
	assert.Equal(t, 2, out.Cols())
}
