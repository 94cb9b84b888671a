package smoothknn

import (
	"math"

	"github.com/katalvlaran/umapgo/sparse"
)

// MinKDistScale floors sigma at MinKDistScale times a point's mean kNN
// distance (or the matrix-wide mean when rho is zero), preventing a
// degenerate all-duplicate neighborhood from collapsing sigma to zero.
const MinKDistScale = 1e-3

const (
	tolerance = 1e-5
	nIter     = 64
)

// Calibrate computes, for every row of dists (an N x K matrix of each
// point's neighbor distances in ascending order), the bandwidth sigma and
// connectivity offset rho of spec.md §4.6. targetK is usually the integer
// neighbor count k expressed as a float; localConnectivity and bandwidth
// default to 1.
func Calibrate(dists *sparse.Dense, targetK, localConnectivity, bandwidth float64) (sigma, rho []float64, err error) {
	if dists == nil {
		return nil, nil, ErrNilInput
	}

	n := dists.Rows()
	target := math.Log2(targetK) * bandwidth

	globalMean := meanAll(dists)

	sigma = make([]float64, n)
	rho = make([]float64, n)

	for i := 0; i < n; i++ {
		row, _ := dists.RowView(i)

		nonZero := make([]float64, 0, len(row))
		for _, d := range row {
			if d > 0 {
				nonZero = append(nonZero, d)
			}
		}
		rho[i] = interpolateRho(nonZero, localConnectivity)

		lowerBound := MinKDistScale * mean(row)
		if rho[i] == 0 {
			lowerBound = MinKDistScale * globalMean
		}

		sigma[i] = searchSigma(row, rho[i], target, lowerBound)
	}

	return sigma, rho, nil
}

// interpolateRho linearly interpolates between the floor(localConnectivity)-th
// and next strictly-positive distance in nonZero (already ascending). If
// nonZero has fewer entries than localConnectivity calls for, it returns the
// largest available distance; an empty nonZero yields 0.
func interpolateRho(nonZero []float64, localConnectivity float64) float64 {
	if len(nonZero) == 0 {
		return 0
	}

	floorLC := int(math.Floor(localConnectivity))
	if floorLC < 1 {
		floorLC = 1
	}
	frac := localConnectivity - math.Floor(localConnectivity)

	lowerIdx := floorLC - 1
	if lowerIdx >= len(nonZero) {
		return nonZero[len(nonZero)-1]
	}

	lower := nonZero[lowerIdx]
	if frac <= 0 || lowerIdx+1 >= len(nonZero) {
		return lower
	}
	upper := nonZero[lowerIdx+1]

	return lower + frac*(upper-lower)
}

// searchSigma binary-searches sigma in (0, inf) so that
// sum_j exp(-max(0, d_j - rho) / sigma) equals target, within tolerance,
// flooring the result at lowerBound.
func searchSigma(row []float64, rho, target, lowerBound float64) float64 {
	lo, hi := 0.0, math.Inf(1)
	mid := 1.0

	for iter := 0; iter < nIter; iter++ {
		sum := kernelSum(row, rho, mid)
		diff := sum - target
		if math.Abs(diff) < tolerance {
			break
		}

		if diff > 0 {
			// Sum too high: sigma needs to shrink.
			hi = mid
			mid = (lo + hi) / 2
		} else {
			// Sum too low: sigma needs to grow.
			lo = mid
			if math.IsInf(hi, 1) {
				mid *= 2
			} else {
				mid = (lo + hi) / 2
			}
		}
	}

	if mid < lowerBound {
		mid = lowerBound
	}

	return mid
}

func kernelSum(row []float64, rho, sigma float64) float64 {
	var sum float64
	for _, d := range row {
		diff := d - rho
		if diff < 0 {
			diff = 0
		}
		sum += math.Exp(-diff / sigma)
	}

	return sum
}

func mean(row []float64) float64 {
	if len(row) == 0 {
		return 0
	}
	var sum float64
	for _, v := range row {
		sum += v
	}

	return sum / float64(len(row))
}

func meanAll(d *sparse.Dense) float64 {
	var sum float64
	n := d.Rows()
	for i := 0; i < n; i++ {
		row, _ := d.RowView(i)
		for _, v := range row {
			sum += v
		}
	}
	total := n * d.Cols()
	if total == 0 {
		return 0
	}

	return sum / float64(total)
}
