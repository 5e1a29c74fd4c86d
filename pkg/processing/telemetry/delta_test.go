//nolint:funlen // ok for tests
package telemetry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hamzanaeem10/ApexAnalyst/pkg/model"
	"github.com/hamzanaeem10/ApexAnalyst/pkg/processing/util"
	"github.com/hamzanaeem10/ApexAnalyst/testsupport/basedata"
)

func TestDelta_SlowerDriverFallsBehind(t *testing.T) {
	ref, err := Resample("LEC", 1, basedata.TelemetryLap(210, basedata.TrackLength), 10)
	assert.NoError(t, err)
	cmpLap, err := Resample("VER", 1, basedata.TelemetryLap(220, basedata.TrackLength), 10)
	assert.NoError(t, err)

	trace, err := Delta(ref, cmpLap)
	assert.NoError(t, err)
	assert.False(t, trace.PartialCoverage)
	assert.InDelta(t, 0, trace.Points[0].Delta, 1e-9)
	last := trace.Points[len(trace.Points)-1]
	assert.Positive(t, last.Delta)
	// constant speeds: gap grows monotonically
	for i := 1; i < len(trace.Points); i++ {
		assert.GreaterOrEqual(t, trace.Points[i].Delta, trace.Points[i-1].Delta)
	}
}

func TestDelta_EqualLapsStayLevel(t *testing.T) {
	ref, _ := Resample("VER", 1, basedata.TelemetryLap(220, basedata.TrackLength), 10)
	cmpLap, _ := Resample("VER", 2, basedata.TelemetryLap(220, basedata.TrackLength), 10)
	trace, err := Delta(ref, cmpLap)
	assert.NoError(t, err)
	for _, p := range trace.Points {
		assert.InDelta(t, 0, p.Delta, 1e-9)
	}
}

func TestDelta_PartialCoverage(t *testing.T) {
	ref, _ := Resample("VER", 1, basedata.TelemetryLap(220, basedata.TrackLength), 10)
	cmpLap, _ := Resample("LEC", 1, basedata.TelemetryLap(215, 2500), 10)
	trace, err := Delta(ref, cmpLap)
	assert.NoError(t, err)
	assert.True(t, trace.PartialCoverage)
	last := trace.Points[len(trace.Points)-1]
	assert.LessOrEqual(t, last.Distance, 2500.0)
}

func TestAlign_NoOverlap(t *testing.T) {
	a, _ := Resample("VER", 1, basedata.TelemetryLap(220, 500), 10)
	b := &model.ResampledChannels{
		Driver:   "LEC",
		Distance: []float64{600, 610, 620},
		Time:     []float64{10, 10.2, 10.4},
		Speed:    []float64{200, 200, 200},
		Throttle: []float64{100, 100, 100},
		Brake:    []float64{0, 0, 0},
		Gear:     []int{7, 7, 7},
	}
	_, _, err := Align(a, b)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, util.ErrNoOverlap))
	var alignErr *util.AlignmentError
	assert.True(t, errors.As(err, &alignErr))
}
