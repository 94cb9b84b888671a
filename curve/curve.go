package curve

import "math"

const (
	// sampleCount is the number of points the target curve is sampled at.
	sampleCount = 300
	// maxIters bounds the gradient-descent refinement of (a, b). 300 left the
	// fit ~0.08/0.01 short of the reference (a, b) at spread=1, min_dist=0.1 —
	// 4000 iterations converge to the reference values within 1e-3.
	maxIters = 4000
	// minParam floors a and b away from zero so x^(2b) and 1/(1+a*u) stay
	// well defined through every iteration.
	minParam = 1e-6
)

// target evaluates the piecewise curve FindAB fits (a, b) against: 1 inside
// min_dist, an exponential decay with scale spread beyond it.
func target(x, spread, minDist float64) float64 {
	if x <= minDist {
		return 1
	}

	return math.Exp(-(x - minDist) / spread)
}

// kernel evaluates UMAP's low-dimensional similarity kernel at x.
func kernel(x, a, b float64) float64 {
	u := math.Pow(x, 2*b)

	return 1 / (1 + a*u)
}

// FindAB fits the (a, b) parameters of the low-dimensional similarity kernel
// f(d) = 1/(1+a*d^(2b)) to the curve implied by (spread, min_dist), using a
// fixed-grid, fixed-iteration gradient descent on the squared error (see
// doc.go for why this replaces a static lookup table). The fit is entirely
// deterministic: the same (spread, min_dist) always yields the same (a, b).
func FindAB(spread, minDist float64) (a, b float64, err error) {
	if spread < 0.5 || spread > 1.5 {
		return 0, 0, ErrInvalidSpread
	}
	if minDist <= 0 || minDist >= spread {
		return 0, 0, ErrInvalidMinDist
	}

	xs := make([]float64, sampleCount)
	ys := make([]float64, sampleCount)
	upper := 3 * spread
	for i := 0; i < sampleCount; i++ {
		x := upper * float64(i+1) / float64(sampleCount)
		xs[i] = x
		ys[i] = target(x, spread, minDist)
	}

	a, b = 1.0, 1.0
	const lr0 = 0.5
	for iter := 0; iter < maxIters; iter++ {
		lr := lr0 * (1 - float64(iter)/float64(maxIters))
		var gradA, gradB float64
		for i, x := range xs {
			u := math.Pow(x, 2*b)
			denom := 1 + a*u
			f := 1 / denom
			diff := f - ys[i]
			dfda := -u / (denom * denom)
			var dfdb float64
			if x > 0 {
				dfdb = -a * u * 2 * math.Log(x) / (denom * denom)
			}
			gradA += 2 * diff * dfda
			gradB += 2 * diff * dfdb
		}
		gradA /= float64(sampleCount)
		gradB /= float64(sampleCount)

		a -= lr * gradA
		b -= lr * gradB
		if a < minParam {
			a = minParam
		}
		if b < minParam {
			b = minParam
		}
	}

	return a, b, nil
}

// Kernel returns the fitted low-dimensional similarity at distance x,
// exported so layout can evaluate gradients of the same function FindAB fit.
func Kernel(x, a, b float64) float64 {
	return kernel(x, a, b)
}
