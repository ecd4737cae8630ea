package metric

import (
	"math"

	"github.com/scoutbase/scout/internal/contract"
)

// Correlation returns the Pearson correlation coefficient between two
// equal-length samples. Mismatched lengths or fewer than two points are a
// ValueError. When either sample has zero variance the coefficient is
// reported as 0 rather than NaN.
func Correlation(xs, ys []float64) (float64, error) {
	if len(xs) != len(ys) {
		return 0, &contract.ValueError{Op: "correlation", Detail: "sample lengths differ"}
	}
	if len(xs) < 2 {
		return 0, &contract.ValueError{Op: "correlation", Detail: "need at least two points"}
	}

	n := float64(len(xs))
	var meanX, meanY float64
	for i := range xs {
		meanX += xs[i]
		meanY += ys[i]
	}
	meanX /= n
	meanY /= n

	var cov, varX, varY float64
	for i := range xs {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0, nil
	}
	return cov / math.Sqrt(varX*varY), nil
}
