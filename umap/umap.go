package umap

import (
	"math"
	"math/rand"
	"sort"

	"github.com/katalvlaran/umapgo/curve"
	"github.com/katalvlaran/umapgo/fuzzyset"
	"github.com/katalvlaran/umapgo/layout"
	"github.com/katalvlaran/umapgo/metric"
	"github.com/katalvlaran/umapgo/nndescent"
	"github.com/katalvlaran/umapgo/rptree"
	"github.com/katalvlaran/umapgo/smoothknn"
	"github.com/katalvlaran/umapgo/sparse"
)

// smallNThreshold below which Fit and Transform compute full pairwise
// distances instead of building a random-projection forest.
const smallNThreshold = 4096

// UMAP is a configured, not-yet-fitted pipeline. Call Fit or FitTransform to
// produce an embedding.
type UMAP struct {
	opts Options
}

// New validates opts against DefaultOptions and returns a ready-to-fit UMAP,
// or a configuration error.
func New(opts ...Option) (u *UMAP, err error) {
	o := DefaultOptions()

	// WithX constructors panic on a malformed single-field literal (per this
	// module's functional-options idiom); recover and surface it as the same
	// ErrConfig sentinel every other validation path returns.
	defer func() {
		if r := recover(); r != nil {
			u = nil
			err = &configPanic{msg: r}
		}
	}()

	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}

	return &UMAP{opts: o}, nil
}

type configPanic struct{ msg interface{} }

func (c *configPanic) Error() string { return ErrConfig.Error() + ": " + errString(c.msg) }
func (c *configPanic) Unwrap() error { return ErrConfig }

func errString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	if e, ok := v.(error); ok {
		return e.Error()
	}

	return "invalid option"
}

// Model is the fitted state produced by Fit: the training data and metric,
// the calibrated (a, b) kernel, the approximate kNN table, the optional
// random-projection forest that produced it, the fuzzy graph and its search
// form, and the resulting embedding.
type Model struct {
	X           *sparse.Dense
	MetricName  string
	Metric      metric.Func
	A, B        float64
	KNNIndices  []int32
	KNNDists    []float64
	Forest      *rptree.Forest
	Graph       *sparse.COO
	SearchGraph *sparse.CSR
	Embedding   *sparse.Dense
	Opts        Options

	singleSample bool
	precomputed  bool
}

// FitTransform fits u on X (with optional supervision y) and returns the
// resulting embedding in one call.
func (u *UMAP) FitTransform(X *sparse.Dense, y []float64) (*sparse.Dense, error) {
	m, err := u.Fit(X, y)
	if err != nil {
		return nil, err
	}

	return m.Embedding, nil
}

// Fit builds the fuzzy simplicial set over X (optionally intersected with a
// target graph derived from y) and lays it out via negative-sampling SGD,
// per spec.md §4.10.
func (u *UMAP) Fit(X *sparse.Dense, y []float64) (*Model, error) {
	if X == nil || X.Rows() == 0 {
		return nil, ErrEmptyInput
	}
	if y != nil && len(y) != X.Rows() {
		return nil, ErrShapeMismatch
	}

	opts := u.opts
	n := X.Rows()

	metricFn, metricProps, err := metric.Named(opts.MetricName)
	if err != nil {
		return nil, err
	}

	if metricProps.Precomputed && X.Cols() != n {
		return nil, ErrShapeMismatch
	}

	model := &Model{
		X:           X,
		MetricName:  opts.MetricName,
		Opts:        opts,
		Metric:      metricFn,
		precomputed: metricProps.Precomputed,
	}

	if n == 1 {
		model.singleSample = true
		model.Embedding, _ = sparse.NewDense(1, opts.NComponents)

		return model, nil
	}

	nNeighbors := opts.NNeighbors
	if n <= nNeighbors {
		nNeighbors = n - 1
		opts.Logger.Printf("umap: n_neighbors truncated to %d for %d samples", nNeighbors, n)
	}

	var knnIdx []int32
	var knnDist []float64
	var forest *rptree.Forest
	if metricProps.Precomputed {
		// X is itself the n x n pairwise-distance matrix: read each row's
		// distances directly rather than calling model.Metric (nil for this
		// metric, since there is nothing left to compute).
		knnIdx, knnDist = precomputedKNN(X, nNeighbors)
	} else {
		knnIdx, knnDist, forest, err = computeKNN(X, nNeighbors, metricFn, opts, deriveRNG(opts.RandomSeed, streamForest))
		if err != nil {
			return nil, err
		}
	}
	model.KNNIndices = knnIdx
	model.KNNDists = knnDist
	model.Forest = forest

	knnDense, err := toRowMajorDense(knnDist, n, nNeighbors)
	if err != nil {
		return nil, err
	}

	sigma, rho, err := smoothknn.Calibrate(knnDense, float64(nNeighbors), float64(opts.LocalConnectivity), 1.0)
	if err != nil {
		return nil, err
	}

	directed, err := fuzzyset.MembershipStrengths(knnIdx, knnDist, sigma, rho, n, n)
	if err != nil {
		return nil, err
	}
	transposed, err := directed.Transpose()
	if err != nil {
		return nil, err
	}
	graph, err := fuzzyset.FuzzyUnion(directed, transposed, opts.SetOpMixRatio)
	if err != nil {
		return nil, err
	}

	if y != nil {
		graph, err = intersectTarget(graph, y, opts, deriveRNG(opts.RandomSeed, streamTarget))
		if err != nil {
			return nil, err
		}
	}
	model.Graph = graph
	model.SearchGraph = buildSearchGraph(graph)

	nEpochs := opts.NEpochs
	if nEpochs <= 0 {
		if n <= 10000 {
			nEpochs = 500
		} else {
			nEpochs = 200
		}
	}

	thresholded := thresholdGraph(graph, nEpochs)

	a, b, err := curve.FindAB(opts.Spread, opts.MinDist)
	if err != nil {
		return nil, err
	}
	model.A, model.B = a, b

	embedding, err := initEmbedding(opts, n, deriveRNG(opts.RandomSeed, streamInit))
	if err != nil {
		return nil, err
	}

	epochsPerSample := layout.MakeEpochsPerSample(thresholded.Data, nEpochs)
	err = layout.Optimize(embedding, embedding, thresholded.Row, thresholded.Col, epochsPerSample,
		a, b, opts.RepulsionStrength, opts.LearningRate, opts.NegativeSampleRate, nEpochs,
		deriveRNG(opts.RandomSeed, streamLayout), true)
	if err != nil {
		return nil, err
	}
	model.Embedding = embedding

	return model, nil
}

// computeKNN resolves the approximate kNN table either by brute-force
// pairwise search (small N) or a random-projection forest plus NN-descent
// (large N), per spec.md's size-dependent path split.
func computeKNN(X *sparse.Dense, k int, fn metric.Func, opts Options, rng *rand.Rand) (idx []int32, dist []float64, forest *rptree.Forest, err error) {
	n := X.Rows()
	if n < smallNThreshold {
		idx, dist = bruteForceKNN(X, k, fn)

		return idx, dist, nil, nil
	}

	nTrees := 1 + n/5000
	forest, err = rptree.BuildForest(X, k, nTrees, rng, opts.AngularRPForest, fn)
	if err != nil {
		return nil, nil, nil, err
	}
	leaves := rptree.LeafArray(forest)
	idx, dist, err = nndescent.Descend(X, k, fn, leaves, rng, nndescent.DefaultOptions())
	if err != nil {
		return nil, nil, nil, err
	}
	for _, j := range idx {
		if j < 0 {
			opts.Logger.Printf("umap: nn-descent left some of the %d neighbor slots per row unfilled", k)

			break
		}
	}

	return idx, dist, forest, nil
}

// bruteForceKNN computes, for every row, its k nearest other rows by full
// pairwise distance and partial sort.
func bruteForceKNN(X *sparse.Dense, k int, fn metric.Func) (idx []int32, dist []float64) {
	n := X.Rows()
	idx = make([]int32, n*k)
	dist = make([]float64, n*k)

	for i := 0; i < n; i++ {
		ri, _ := X.RowView(i)
		type cand struct {
			j int32
			d float64
		}
		cands := make([]cand, 0, n-1)
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			rj, _ := X.RowView(j)
			cands = append(cands, cand{int32(j), fn(ri, rj)})
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

// precomputedKNN treats X as an n x n matrix of pairwise distances (metric
// "precomputed", spec.md §4.1/§8 scenario 6) and, for every row, picks its k
// smallest off-diagonal entries directly — no distance function is called
// because none exists for this metric (metric.Named returns a nil Func).
func precomputedKNN(X *sparse.Dense, k int) (idx []int32, dist []float64) {
	n := X.Rows()
	idx = make([]int32, n*k)
	dist = make([]float64, n*k)

	for i := 0; i < n; i++ {
		row, _ := X.RowView(i)
		type cand struct {
			j int32
			d float64
		}
		cands := make([]cand, 0, n-1)
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			cands = append(cands, cand{int32(j), row[j]})
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

// toRowMajorDense reshapes a flat [n*k] distance slice into an n x k Dense,
// the row-major reshape spec.md flags as left unfinished in the reference
// (§9's third Open Question) — implemented directly here using the
// constant-row-degree property (every row has exactly k columns).
func toRowMajorDense(flat []float64, n, k int) (*sparse.Dense, error) {
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, k)
		for p := 0; p < k; p++ {
			d := flat[i*k+p]
			if math.IsInf(d, 1) {
				d = 0
			}
			row[p] = d
		}
		rows[i] = row
	}

	return sparse.NewDenseFromRows(rows)
}

func buildSearchGraph(graph *sparse.COO) *sparse.CSR {
	rowIdx := make([]int32, 0, graph.NNZ()*2)
	colIdx := make([]int32, 0, graph.NNZ()*2)
	data := make([]float64, 0, graph.NNZ()*2)
	for n := 0; n < graph.NNZ(); n++ {
		i, j := graph.Row[n], graph.Col[n]
		rowIdx = append(rowIdx, i, j)
		colIdx = append(colIdx, j, i)
		data = append(data, 1, 1)
	}
	coo, err := sparse.NewCOOFromTriplets(graph.Rows, graph.Cols, rowIdx, colIdx, data)
	if err != nil {
		return nil
	}

	return coo.ToCSR()
}

// thresholdGraph zeroes graph entries below max(data)/nEpochs, bounding the
// total number of SGD samples per spec.md §4.9.
func thresholdGraph(graph *sparse.COO, nEpochs int) *sparse.COO {
	maxVal := 0.0
	for _, v := range graph.Data {
		if v > maxVal {
			maxVal = v
		}
	}
	cutoff := maxVal / float64(nEpochs)

	rowIdx := make([]int32, 0, graph.NNZ())
	colIdx := make([]int32, 0, graph.NNZ())
	data := make([]float64, 0, graph.NNZ())
	for n := 0; n < graph.NNZ(); n++ {
		if graph.Data[n] < cutoff {
			continue
		}
		rowIdx = append(rowIdx, graph.Row[n])
		colIdx = append(colIdx, graph.Col[n])
		data = append(data, graph.Data[n])
	}
	out, err := sparse.NewCOOFromTriplets(graph.Rows, graph.Cols, rowIdx, colIdx, data)
	if err != nil {
		return graph
	}

	return out
}

func initEmbedding(opts Options, n int, rng *rand.Rand) (*sparse.Dense, error) {
	if opts.Init == InitMatrix {
		if opts.InitEmbedding.Rows() != n || opts.InitEmbedding.Cols() != opts.NComponents {
			return nil, ErrShapeMismatch
		}

		return opts.InitEmbedding.Clone(), nil
	}

	d, err := sparse.NewDense(n, opts.NComponents)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < opts.NComponents; j++ {
			d.Set(i, j, rng.Float64()*20-10)
		}
	}

	return d, nil
}

// intersectTarget folds supervision y into graph: a categorical-intersect
// down-weighting of cross-label edges by default, or a general continuous
// intersection when target_metric names something else.
func intersectTarget(graph *sparse.COO, y []float64, opts Options, rng *rand.Rand) (*sparse.COO, error) {
	n := len(y)

	if opts.TargetMetric == "categorical" {
		target := make([]int32, n)
		for i, v := range y {
			target[i] = int32(v)
		}
		farDist := 2.5 / (1 - opts.TargetWeight)
		if opts.TargetWeight >= 1 {
			farDist = 1e12
		}

		return fuzzyset.CategoricalIntersect(graph, target, 1.0, farDist)
	}

	targetK := opts.TargetNNeighbors
	if targetK == -1 {
		targetK = opts.NNeighbors
	}
	if targetK >= n {
		targetK = n - 1
	}

	yMatrix, err := sparse.NewDenseFromRows(toColumnRows(y))
	if err != nil {
		return nil, err
	}
	yIdx, yDist, _, err := computeKNN(yMatrix, targetK, metric.Euclidean, opts, rng)
	if err != nil {
		return nil, err
	}
	yDense, err := toRowMajorDense(yDist, n, targetK)
	if err != nil {
		return nil, err
	}
	sigma, rho, err := smoothknn.Calibrate(yDense, float64(targetK), float64(opts.LocalConnectivity), 1.0)
	if err != nil {
		return nil, err
	}
	yDirected, err := fuzzyset.MembershipStrengths(yIdx, yDist, sigma, rho, n, n)
	if err != nil {
		return nil, err
	}
	yTranspose, err := yDirected.Transpose()
	if err != nil {
		return nil, err
	}
	yGraph, err := fuzzyset.FuzzyUnion(yDirected, yTranspose, opts.SetOpMixRatio)
	if err != nil {
		return nil, err
	}

	return fuzzyset.GeneralIntersect(graph, yGraph, opts.TargetWeight)
}

func toColumnRows(y []float64) [][]float64 {
	rows := make([][]float64, len(y))
	for i, v := range y {
		rows[i] = []float64{v}
	}

	return rows
}
