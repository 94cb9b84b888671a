package layout

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/umapgo/sparse"
)

// Clip bounds x to [-4, 4], the step-size cap spec.md's optimizer applies to
// every per-dimension gradient update before scaling by the learning rate.
func Clip(x float64) float64 {
	if x > 4 {
		return 4
	}
	if x < -4 {
		return -4
	}

	return x
}

// MakeEpochsPerSample converts edge weights into a per-edge "fire every N
// epochs" schedule: the heaviest edge fires every epoch, lighter edges fire
// proportionally less often. An edge with zero weight never fires (-1).
func MakeEpochsPerSample(weights []float64, nEpochs int) []float64 {
	result := make([]float64, len(weights))

	maxW := 0.0
	for _, w := range weights {
		if w > maxW {
			maxW = w
		}
	}
	if maxW == 0 {
		for i := range result {
			result[i] = -1
		}

		return result
	}

	for i, w := range weights {
		nSamples := w * float64(nEpochs) / maxW
		if nSamples > 0 {
			result[i] = float64(nEpochs) / nSamples
		} else {
			result[i] = -1
		}
	}

	return result
}

// Optimize runs nEpochs rounds of negative-sampling SGD over the edges
// (headIdx[i], tailIdx[i]), moving head in place (and tail too when
// moveOther is set, i.e. head and tail are the same embedding). epochsPerSample
// schedules how often each edge fires an attractive update; each firing also
// draws negativeSampleRate-ish repulsive samples against random vertices of
// tail, scaled down as the epoch budget runs out. Edges are processed
// sequentially within each epoch; Optimize starts no goroutines.
func Optimize(head, tail *sparse.Dense, headIdx, tailIdx []int32, epochsPerSample []float64, a, b, gamma, initialAlpha float64, negativeSampleRate int, nEpochs int, rng *rand.Rand, moveOther bool) error {
	if head == nil || tail == nil {
		return ErrNilEmbedding
	}
	m := len(epochsPerSample)
	if len(headIdx) != m || len(tailIdx) != m {
		return ErrLengthMismatch
	}
	if m == 0 || nEpochs <= 0 {
		return nil
	}

	dims := head.Cols()
	nVertices := tail.Rows()

	epochsPerNeg := make([]float64, m)
	nextSample := make([]float64, m)
	nextNegSample := make([]float64, m)
	for i, e := range epochsPerSample {
		if e <= 0 {
			epochsPerNeg[i] = math.Inf(1)
		} else {
			epochsPerNeg[i] = e / float64(negativeSampleRate)
		}
		nextSample[i] = e
		nextNegSample[i] = epochsPerNeg[i]
	}

	for n := 0; n < nEpochs; n++ {
		alpha := initialAlpha * (1 - float64(n)/float64(nEpochs))

		for i := 0; i < m; i++ {
			if epochsPerSample[i] <= 0 || nextSample[i] > float64(n) {
				continue
			}

			j := headIdx[i]
			k := tailIdx[i]
			c, _ := head.RowView(int(j))
			o, _ := tail.RowView(int(k))

			dist2 := sqDist(c, o)

			var g float64
			if dist2 > 0 {
				g = -2 * a * b * math.Pow(dist2, b-1) / (a*math.Pow(dist2, b) + 1)
			}

			for t := 0; t < dims; t++ {
				delta := Clip(g * (c[t] - o[t]))
				c[t] += alpha * delta
				if moveOther {
					o[t] -= alpha * delta
				}
			}

			nextSample[i] += epochsPerSample[i]

			nNeg := 0
			if nVertices > 0 {
				nNeg = int((float64(n) - nextNegSample[i]) / epochsPerNeg[i])
			}
			for neg := 0; neg < nNeg; neg++ {
				kk := int32(rng.Intn(nVertices))
				o2, _ := tail.RowView(int(kk))
				d2 := sqDist(c, o2)

				switch {
				case d2 > 0:
					gn := 2 * gamma * b / ((0.001 + d2) * (a*math.Pow(d2, b) + 1))
					for t := 0; t < dims; t++ {
						c[t] += alpha * Clip(gn*(c[t]-o2[t]))
					}
				case j != kk:
					for t := 0; t < dims; t++ {
						c[t] += 4 * alpha
					}
				}
			}
			nextNegSample[i] += float64(nNeg) * epochsPerNeg[i]
		}
	}

	return nil
}

func sqDist(a, b []float64) float64 {
	var s float64
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}

	return s
}
