package metric

import "sort"

// Named resolves a metric by its canonical lowercase name, returning its
// Func and declared Properties, or ErrUnknownMetric.
func Named(name string) (Func, Properties, error) {
	entry, ok := registry[name]
	if !ok {
		return nil, Properties{}, ErrUnknownMetric
	}

	return entry.fn, entry.props, nil
}

// Names returns the sorted list of registered metric names, primarily for
// error messages and configuration validation.
func Names() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

type entry struct {
	fn    Func
	props Properties
}

var registry = map[string]entry{
	"euclidean":   {Euclidean, Properties{}},
	"manhattan":   {Manhattan, Properties{}},
	"chebyshev":   {Chebyshev, Properties{}},
	"cosine":      {Cosine, Properties{Angular: true}},
	"correlation": {Correlation, Properties{Angular: true}},
	"hamming":     {Hamming, Properties{}},
	"jaccard":     {Jaccard, Properties{}},
	"yule":        {Yule, Properties{}},
	"canberra":    {Canberra, Properties{}},
	"braycurtis":  {BrayCurtis, Properties{}},
	"precomputed": {nil, Properties{Precomputed: true}},
	"categorical": {nil, Properties{Categorical: true}},
}
