package metric

import "math"

// Func computes a non-negative dissimilarity between two equal-length dense
// float64 vectors. Implementations must satisfy Func(x,y) == Func(y,x) >= 0
// and Func(x,x) == 0 (angular metrics may also yield 0 on a zero vector).
type Func func(x, y []float64) float64

// Properties describes how the orchestrator and forest builder must treat a
// given metric.
type Properties struct {
	// Angular marks a metric whose natural split surface is a great-circle
	// through the origin rather than a perpendicular bisector; the forest
	// builder chooses its hyperplane rule accordingly.
	Angular bool

	// Categorical marks a metric legal only as a target metric (§4.7); it
	// routes through CategoricalIntersect instead of GeneralIntersect.
	Categorical bool

	// Precomputed marks that the input matrix already holds pairwise
	// distances; kNN is then computed by sorting rows instead of evaluating
	// the metric function.
	Precomputed bool
}

// Euclidean computes the L2 distance.
func Euclidean(x, y []float64) float64 {
	var sum float64
	for i := range x {
		d := x[i] - y[i]
		sum += d * d
	}

	return math.Sqrt(sum)
}

// Manhattan computes the L1 distance.
func Manhattan(x, y []float64) float64 {
	var sum float64
	for i := range x {
		sum += math.Abs(x[i] - y[i])
	}

	return sum
}

// Chebyshev computes the L∞ distance.
func Chebyshev(x, y []float64) float64 {
	var m float64
	for i := range x {
		d := math.Abs(x[i] - y[i])
		if d > m {
			m = d
		}
	}

	return m
}

// Cosine computes 1 - cos(x,y); angular, returns 0 when either vector is the
// zero vector (cosine is undefined there).
func Cosine(x, y []float64) float64 {
	var dot, nx, ny float64
	for i := range x {
		dot += x[i] * y[i]
		nx += x[i] * x[i]
		ny += y[i] * y[i]
	}
	if nx == 0 || ny == 0 {
		return 0
	}
	cos := dot / (math.Sqrt(nx) * math.Sqrt(ny))
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}

	return 1 - cos
}

// Correlation computes 1 - Pearson correlation between x and y; angular.
func Correlation(x, y []float64) float64 {
	n := float64(len(x))
	if n == 0 {
		return 0
	}
	var mx, my float64
	for i := range x {
		mx += x[i]
		my += y[i]
	}
	mx /= n
	my /= n

	var num, dx2, dy2 float64
	for i := range x {
		dx := x[i] - mx
		dy := y[i] - my
		num += dx * dy
		dx2 += dx * dx
		dy2 += dy * dy
	}
	if dx2 == 0 || dy2 == 0 {
		return 0
	}

	corr := num / math.Sqrt(dx2*dy2)
	if corr > 1 {
		corr = 1
	} else if corr < -1 {
		corr = -1
	}

	return 1 - corr
}

// Hamming computes the fraction of differing coordinates.
func Hamming(x, y []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	var diff float64
	for i := range x {
		if x[i] != y[i] {
			diff++
		}
	}

	return diff / float64(len(x))
}

// Jaccard treats x, y as boolean vectors (non-zero == true) and computes
// 1 - |x∩y| / |x∪y|; 0 if both vectors are entirely zero.
func Jaccard(x, y []float64) float64 {
	var inter, union float64
	for i := range x {
		xb := x[i] != 0
		yb := y[i] != 0
		if xb || yb {
			union++
			if xb && yb {
				inter++
			}
		}
	}
	if union == 0 {
		return 0
	}

	return 1 - inter/union
}

// Yule computes the Yule dissimilarity for boolean vectors (non-zero == true).
func Yule(x, y []float64) float64 {
	var ctt, ctf, cft, cff float64
	for i := range x {
		xb := x[i] != 0
		yb := y[i] != 0
		switch {
		case xb && yb:
			ctt++
		case xb && !yb:
			ctf++
		case !xb && yb:
			cft++
		default:
			cff++
		}
	}
	denom := ctt*cff + ctf*cft
	if denom == 0 {
		return 0
	}

	return 2 * ctf * cft / denom
}

// Canberra computes the weighted L1 distance sum(|x_i-y_i| / (|x_i|+|y_i|)).
func Canberra(x, y []float64) float64 {
	var sum float64
	for i := range x {
		denom := math.Abs(x[i]) + math.Abs(y[i])
		if denom == 0 {
			continue
		}
		sum += math.Abs(x[i]-y[i]) / denom
	}

	return sum
}

// BrayCurtis computes sum(|x_i-y_i|) / sum(|x_i+y_i|).
func BrayCurtis(x, y []float64) float64 {
	var num, denom float64
	for i := range x {
		num += math.Abs(x[i] - y[i])
		denom += math.Abs(x[i] + y[i])
	}
	if denom == 0 {
		return 0
	}

	return num / denom
}

// NewMahalanobis returns a Func parametrized by the inverse covariance
// matrix vi (row-major, n×n, supplied by the caller), computing
// sqrt((x-y)ᵀ·vi·(x-y)). vi is not validated for positive-definiteness; an
// asymmetric or indefinite vi may yield a negative radicand, which is
// clamped to 0 before the square root to keep the non-negativity contract.
func NewMahalanobis(vi [][]float64) Func {
	return func(x, y []float64) float64 {
		n := len(x)
		diff := make([]float64, n)
		for i := 0; i < n; i++ {
			diff[i] = x[i] - y[i]
		}
		var quad float64
		for i := 0; i < n; i++ {
			var row float64
			for j := 0; j < n; j++ {
				row += vi[i][j] * diff[j]
			}
			quad += diff[i] * row
		}
		if quad < 0 {
			quad = 0
		}

		return math.Sqrt(quad)
	}
}
