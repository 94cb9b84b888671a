package metric

import "errors"

var (
	// ErrUnknownMetric indicates a Named() lookup for a metric name not in the registry.
	ErrUnknownMetric = errors.New("metric: unknown metric name")

	// ErrDimensionMismatch indicates x and y have different lengths.
	ErrDimensionMismatch = errors.New("metric: vector length mismatch")
)
