package util

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Median returns the median of values. The input is not modified.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	work := make([]float64, len(values))
	copy(work, values)
	sort.Float64s(work)
	mid := len(work) / 2
	if len(work)%2 == 1 {
		return work[mid]
	}
	return (work[mid-1] + work[mid]) / 2
}

// Mean returns the arithmetic mean or 0 for empty input.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}

// StdDev returns the sample standard deviation or 0 when fewer than
// two values exist.
func StdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	return stat.StdDev(values, nil)
}

// LinearFit runs an ordinary least squares fit y = alpha + beta*x and
// reports the coefficient of determination along with it.
func LinearFit(xs, ys []float64) (alpha, beta, rSquared float64) {
	alpha, beta = stat.LinearRegression(xs, ys, nil, false)
	rSquared = stat.RSquared(xs, ys, nil, alpha, beta)
	return alpha, beta, rSquared
}

// Pearson returns the Pearson correlation coefficient. A zero-variance
// input yields 0 rather than NaN.
func Pearson(xs, ys []float64) float64 {
	if len(xs) < 2 || len(xs) != len(ys) {
		return 0
	}
	if StdDev(xs) == 0 || StdDev(ys) == 0 {
		return 0
	}
	return stat.Correlation(xs, ys, nil)
}

// Interpolate returns the linear interpolation of (x0,y0)-(x1,y1) at x.
// Coincident x values return y0.
func Interpolate(x0, y0, x1, y1, x float64) float64 {
	if x1 == x0 {
		return y0
	}
	return y0 + (y1-y0)*(x-x0)/(x1-x0)
}
