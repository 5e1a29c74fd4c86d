package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMedian(t *testing.T) {
	assert.InDelta(t, 2, Median([]float64{3, 1, 2}), 1e-9)
	assert.InDelta(t, 1.5, Median([]float64{1, 2}), 1e-9)
	assert.InDelta(t, 0, Median(nil), 1e-9)
}

func TestStdDev(t *testing.T) {
	assert.InDelta(t, 0, StdDev([]float64{42}), 1e-9)
	assert.InDelta(t, 1, StdDev([]float64{1, 2, 3}), 1e-9)
}

func TestLinearFit(t *testing.T) {
	xs := []float64{1, 2, 3, 4}
	ys := []float64{2.5, 3.0, 3.5, 4.0}
	alpha, beta, rSquared := LinearFit(xs, ys)
	assert.InDelta(t, 2.0, alpha, 1e-9)
	assert.InDelta(t, 0.5, beta, 1e-9)
	assert.InDelta(t, 1.0, rSquared, 1e-9)
}

func TestPearson_ZeroVariance(t *testing.T) {
	assert.InDelta(t, 0, Pearson([]float64{1, 1, 1}, []float64{1, 2, 3}), 1e-9)
	assert.InDelta(t, 0, Pearson([]float64{1}, []float64{1}), 1e-9)
}

func TestInterpolate(t *testing.T) {
	assert.InDelta(t, 15, Interpolate(0, 10, 10, 20, 5), 1e-9)
	assert.InDelta(t, 10, Interpolate(5, 10, 5, 20, 5), 1e-9)
}
