package umap

import (
	"fmt"

	"github.com/katalvlaran/umapgo/metric"
	"github.com/katalvlaran/umapgo/sparse"
)

// InitMode selects how Fit seeds the initial embedding.
type InitMode int

const (
	// InitRandom draws each coordinate uniformly from [-10, 10].
	InitRandom InitMode = iota
	// InitMatrix uses a caller-supplied embedding (see WithInitMatrix).
	InitMatrix
	// InitSpectral requests a Laplacian-eigenmap warm start. No eigensolver
	// is in scope (see DESIGN.md's Open Question decision); Validate always
	// rejects it with a configuration error.
	InitSpectral
)

// Options mirrors §6 of the external interface: every tunable of the
// pipeline, defaulted by DefaultOptions and overridden via With* functions.
type Options struct {
	NNeighbors         int
	NComponents        int
	NEpochs            int // 0 selects the size-dependent default schedule
	MetricName         string
	LearningRate       float64
	RepulsionStrength  float64
	MinDist            float64
	Spread             float64
	SetOpMixRatio      float64
	LocalConnectivity  int
	NegativeSampleRate int
	TransformQueueSize float64
	TargetMetric       string
	TargetNNeighbors   int
	TargetWeight       float64
	Init               InitMode
	InitEmbedding      *sparse.Dense
	AngularRPForest    bool
	RandomSeed         int64
	Logger             Logger
}

// Option is a functional option over Options, following this module's
// established configuration idiom: a single malformed literal (e.g. a
// negative rate) panics immediately inside the constructor, while checks
// that depend on more than one field (min_dist vs. spread, init vs.
// InitEmbedding, an unresolvable metric name) are deferred to Validate.
type Option func(*Options)

// DefaultOptions returns UMAP's published defaults, with one deliberate
// deviation: upstream defaults init to "spectral", but this module has no
// eigensolver in scope (DESIGN.md), so the usable default here is "random".
// Callers that need the upstream default literally may still request
// InitSpectral and will receive a configuration error explaining why.
func DefaultOptions() Options {
	return Options{
		NNeighbors:         15,
		NComponents:        2,
		NEpochs:            0,
		MetricName:         "euclidean",
		LearningRate:       1.0,
		RepulsionStrength:  1.0,
		MinDist:            0.1,
		Spread:             1.0,
		SetOpMixRatio:      1.0,
		LocalConnectivity:  1,
		NegativeSampleRate: 5,
		TransformQueueSize: 4.0,
		TargetMetric:       "categorical",
		TargetNNeighbors:   -1,
		TargetWeight:       0.5,
		Init:               InitRandom,
		AngularRPForest:    false,
		RandomSeed:         42,
		Logger:             noopLogger{},
	}
}

func WithNNeighbors(n int) Option {
	return func(o *Options) {
		if n < 2 {
			panic(fmt.Errorf("n_neighbors must be >= 2: %w", ErrConfig).Error())
		}
		o.NNeighbors = n
	}
}

func WithNComponents(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(fmt.Errorf("n_components must be >= 1: %w", ErrConfig).Error())
		}
		o.NComponents = n
	}
}

// WithNEpochs overrides the size-dependent default epoch schedule.
func WithNEpochs(n int) Option {
	return func(o *Options) {
		if n <= 10 {
			panic(fmt.Errorf("n_epochs must be > 10: %w", ErrConfig).Error())
		}
		o.NEpochs = n
	}
}

func WithMetric(name string) Option {
	return func(o *Options) { o.MetricName = name }
}

func WithLearningRate(lr float64) Option {
	return func(o *Options) {
		if lr <= 0 {
			panic(fmt.Errorf("learning_rate must be > 0: %w", ErrConfig).Error())
		}
		o.LearningRate = lr
	}
}

func WithRepulsionStrength(gamma float64) Option {
	return func(o *Options) {
		if gamma < 0 {
			panic(fmt.Errorf("repulsion_strength must be >= 0: %w", ErrConfig).Error())
		}
		o.RepulsionStrength = gamma
	}
}

func WithMinDist(d float64) Option {
	return func(o *Options) {
		if d <= 0 {
			panic(fmt.Errorf("min_dist must be > 0: %w", ErrConfig).Error())
		}
		o.MinDist = d
	}
}

func WithSpread(s float64) Option {
	return func(o *Options) {
		if !(s >= 0.5 && s <= 1.5) {
			panic(fmt.Errorf("spread must be in [0.5, 1.5]: %w", ErrConfig).Error())
		}
		o.Spread = s
	}
}

func WithSetOpMixRatio(r float64) Option {
	return func(o *Options) {
		if r < 0 || r > 1 {
			panic(fmt.Errorf("set_op_mix_ratio must be in [0, 1]: %w", ErrConfig).Error())
		}
		o.SetOpMixRatio = r
	}
}

func WithLocalConnectivity(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(fmt.Errorf("local_connectivity must be >= 1: %w", ErrConfig).Error())
		}
		o.LocalConnectivity = n
	}
}

func WithNegativeSampleRate(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(fmt.Errorf("negative_sample_rate must be >= 1: %w", ErrConfig).Error())
		}
		o.NegativeSampleRate = n
	}
}

func WithTransformQueueSize(q float64) Option {
	return func(o *Options) {
		if q <= 0 {
			panic(fmt.Errorf("transform_queue_size must be > 0: %w", ErrConfig).Error())
		}
		o.TransformQueueSize = q
	}
}

func WithTargetMetric(name string) Option {
	return func(o *Options) { o.TargetMetric = name }
}

func WithTargetNNeighbors(n int) Option {
	return func(o *Options) {
		if n != -1 && n < 2 {
			panic(fmt.Errorf("target_n_neighbors must be >= 2 or -1: %w", ErrConfig).Error())
		}
		o.TargetNNeighbors = n
	}
}

func WithTargetWeight(w float64) Option {
	return func(o *Options) {
		if w < 0 || w > 1 {
			panic(fmt.Errorf("target_weight must be in [0, 1]: %w", ErrConfig).Error())
		}
		o.TargetWeight = w
	}
}

// WithInit selects InitRandom or InitSpectral. Use WithInitMatrix for a
// user-supplied embedding.
func WithInit(mode InitMode) Option {
	return func(o *Options) { o.Init = mode }
}

// WithInitMatrix supplies a user-provided initial embedding and implies
// InitMatrix; its row count is checked against X's row count in Validate's
// caller (Fit), since Options alone does not know N.
func WithInitMatrix(m *sparse.Dense) Option {
	return func(o *Options) {
		o.Init = InitMatrix
		o.InitEmbedding = m
	}
}

func WithAngularRPForest(b bool) Option {
	return func(o *Options) { o.AngularRPForest = b }
}

func WithRandomSeed(seed int64) Option {
	return func(o *Options) { o.RandomSeed = seed }
}

func WithLogger(l Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Validate checks cross-field invariants that a single Option cannot see in
// isolation: min_dist against spread, init mode against the embedding it
// requires, and that the metric name resolves.
func (o *Options) Validate() error {
	if o.MinDist >= o.Spread {
		return fmt.Errorf("min_dist must be < spread: %w", ErrConfig)
	}
	if o.Init == InitSpectral {
		return fmt.Errorf("spectral initialization is not implemented in this build: %w", ErrConfig)
	}
	if o.Init == InitMatrix && o.InitEmbedding == nil {
		return fmt.Errorf("init=matrix requires WithInitMatrix: %w", ErrConfig)
	}
	if _, _, err := metric.Named(o.MetricName); err != nil {
		return fmt.Errorf("%v: %w", err, ErrConfig)
	}

	return nil
}
