//nolint:funlen // ok for tests
package telemetry

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/hamzanaeem10/ApexAnalyst/pkg/model"
	"github.com/hamzanaeem10/ApexAnalyst/pkg/processing/util"
	"github.com/hamzanaeem10/ApexAnalyst/testsupport/basedata"
)

func TestResample_GridStrictlyIncreasing(t *testing.T) {
	samples := basedata.TelemetryLap(200, basedata.TrackLength)
	got, err := Resample("VER", 1, samples, 10)
	assert.NoError(t, err)
	for i := 1; i < len(got.Distance); i++ {
		assert.Greater(t, got.Distance[i], got.Distance[i-1])
	}
	for i := 1; i < len(got.Time); i++ {
		assert.Greater(t, got.Time[i], got.Time[i-1])
	}
}

func TestResample_LinearInterpolation(t *testing.T) {
	samples := []model.TelemetrySample{
		{TimeOffset: 0, Distance: 0, Speed: 100, Throttle: 0, Gear: 3},
		{TimeOffset: 2, Distance: 100, Speed: 200, Throttle: 100, Gear: 4},
	}
	got, err := Resample("VER", 1, samples, 50)
	assert.NoError(t, err)
	assert.Equal(t, []float64{0, 50, 100}, got.Distance)
	assert.InDelta(t, 150, got.Speed[1], 1e-9)
	assert.InDelta(t, 50, got.Throttle[1], 1e-9)
	assert.InDelta(t, 1, got.Time[1], 1e-9)
	// gear holds the previous sample until the next one is reached
	assert.Equal(t, []int{3, 3, 4}, got.Gear)
}

func TestResample_DuplicateDistanceKeepsLater(t *testing.T) {
	samples := []model.TelemetrySample{
		{TimeOffset: 0, Distance: 0, Speed: 100},
		{TimeOffset: 1, Distance: 50, Speed: 120},
		{TimeOffset: 1.1, Distance: 50, Speed: 140},
		{TimeOffset: 2, Distance: 100, Speed: 160},
	}
	got, err := Resample("VER", 1, samples, 50)
	assert.NoError(t, err)
	assert.InDelta(t, 140, got.Speed[1], 1e-9)
}

func TestResample_DropsRegressingDistance(t *testing.T) {
	samples := []model.TelemetrySample{
		{TimeOffset: 0, Distance: 0, Speed: 100},
		{TimeOffset: 1, Distance: 50, Speed: 120},
		{TimeOffset: 1.5, Distance: 40, Speed: 500}, // glitch
		{TimeOffset: 2, Distance: 100, Speed: 160},
	}
	got, err := Resample("VER", 1, samples, 50)
	assert.NoError(t, err)
	assert.InDelta(t, 120, got.Speed[1], 1e-9)
}

func TestResample_TooFewSamples(t *testing.T) {
	_, err := Resample("VER", 1, []model.TelemetrySample{{Distance: 0}}, 10)
	assert.True(t, errors.Is(err, util.ErrInsufficientData))
}

func TestResample_Idempotent(t *testing.T) {
	samples := basedata.TelemetryLap(200, basedata.TrackLength)
	first, err := Resample("VER", 1, samples, 10)
	assert.NoError(t, err)
	second, err := Resample("VER", 1, samples, 10)
	assert.NoError(t, err)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("resample not deterministic (-first +second):\n%s", diff)
	}
}
