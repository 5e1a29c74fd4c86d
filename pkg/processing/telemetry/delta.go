package telemetry

import (
	"math"

	"github.com/hamzanaeem10/ApexAnalyst/pkg/model"
	"github.com/hamzanaeem10/ApexAnalyst/pkg/processing/util"
)

// Align intersects two resampled laps onto their common distance range.
// Both inputs must use the same grid step. The returned slices are views
// into the inputs.
func Align(ref, cmp *model.ResampledChannels) (*model.ResampledChannels, *model.ResampledChannels, error) {
	if len(ref.Distance) == 0 || len(cmp.Distance) == 0 {
		return nil, nil, &util.AlignmentError{
			DriverRef: ref.Driver, DriverCmp: cmp.Driver,
			Reason: "empty channels",
		}
	}
	lo := math.Max(ref.Distance[0], cmp.Distance[0])
	hi := math.Min(ref.Distance[len(ref.Distance)-1], cmp.Distance[len(cmp.Distance)-1])
	if hi < lo {
		return nil, nil, &util.AlignmentError{
			DriverRef: ref.Driver, DriverCmp: cmp.Driver,
			Reason: "distance ranges do not overlap",
		}
	}
	a := slice(ref, lo, hi)
	b := slice(cmp, lo, hi)
	if len(a.Distance) != len(b.Distance) || len(a.Distance) < 2 {
		return nil, nil, &util.AlignmentError{
			DriverRef: ref.Driver, DriverCmp: cmp.Driver,
			Reason: "grids do not line up",
		}
	}
	return a, b, nil
}

func slice(c *model.ResampledChannels, lo, hi float64) *model.ResampledChannels {
	i := 0
	for i < len(c.Distance) && c.Distance[i] < lo {
		i++
	}
	j := len(c.Distance)
	for j > i && c.Distance[j-1] > hi {
		j--
	}
	return &model.ResampledChannels{
		Driver:    c.Driver,
		LapNumber: c.LapNumber,
		Distance:  c.Distance[i:j],
		Time:      c.Time[i:j],
		Speed:     c.Speed[i:j],
		Throttle:  c.Throttle[i:j],
		Brake:     c.Brake[i:j],
		Gear:      c.Gear[i:j],
	}
}

// Delta computes the distance-aligned time gap between two laps.
// The trace is normalized to zero at the first common checkpoint, positive
// values mean the reference driver is behind at that point.
func Delta(ref, cmp *model.ResampledChannels) (*model.DeltaTrace, error) {
	fullRef := ref.Distance[len(ref.Distance)-1]
	fullCmp := cmp.Distance[len(cmp.Distance)-1]
	a, b, err := Align(ref, cmp)
	if err != nil {
		return nil, err
	}
	n := len(a.Distance)
	offset := a.Time[0] - b.Time[0]
	points := make([]model.DeltaPoint, n)
	for i := 0; i < n; i++ {
		points[i] = model.DeltaPoint{
			Distance: a.Distance[i],
			Delta:    (a.Time[i] - b.Time[i]) - offset,
			SpeedRef: a.Speed[i],
			SpeedCmp: b.Speed[i],
		}
	}
	partial := a.Distance[n-1] < fullRef || a.Distance[n-1] < fullCmp ||
		a.Distance[0] > ref.Distance[0] || a.Distance[0] > cmp.Distance[0]
	return &model.DeltaTrace{
		DriverRef:       ref.Driver,
		DriverCmp:       cmp.Driver,
		LapRef:          ref.LapNumber,
		LapCmp:          cmp.LapNumber,
		Points:          points,
		PartialCoverage: partial,
	}, nil
}
