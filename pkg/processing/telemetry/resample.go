package telemetry

import (
	"math"

	"github.com/hamzanaeem10/ApexAnalyst/pkg/model"
	"github.com/hamzanaeem10/ApexAnalyst/pkg/processing/util"
)

const DefaultStep = 10.0 // meters

// Resample projects raw lap telemetry onto a uniform distance grid.
// Samples with non-increasing distance are dropped, keeping the later
// reading on duplicates. Continuous channels are interpolated linearly,
// gear is carried forward from the preceding sample.
func Resample(
	driver string,
	lapNumber int,
	samples []model.TelemetrySample,
	step float64,
) (*model.ResampledChannels, error) {
	if step <= 0 {
		step = DefaultStep
	}
	clean := cleanSamples(samples)
	if len(clean) < 2 {
		return nil, &util.DataError{
			Op:     "resample",
			Detail: "need at least 2 monotonic samples",
		}
	}

	first := clean[0].Distance
	last := clean[len(clean)-1].Distance
	start := math.Ceil(first/step) * step
	n := int(math.Floor((last-start)/step)) + 1
	if n < 2 {
		return nil, &util.DataError{
			Op:     "resample",
			Detail: "lap too short for requested step",
		}
	}

	ret := &model.ResampledChannels{
		Driver:    driver,
		LapNumber: lapNumber,
		Distance:  make([]float64, n),
		Time:      make([]float64, n),
		Speed:     make([]float64, n),
		Throttle:  make([]float64, n),
		Brake:     make([]float64, n),
		Gear:      make([]int, n),
	}

	j := 0 // index of the segment [clean[j], clean[j+1]] covering d
	for i := 0; i < n; i++ {
		d := start + float64(i)*step
		for j < len(clean)-2 && clean[j+1].Distance < d {
			j++
		}
		lo, hi := clean[j], clean[j+1]
		ret.Distance[i] = d
		ret.Time[i] = util.Interpolate(lo.Distance, lo.TimeOffset, hi.Distance, hi.TimeOffset, d)
		ret.Speed[i] = util.Interpolate(lo.Distance, lo.Speed, hi.Distance, hi.Speed, d)
		ret.Throttle[i] = util.Interpolate(lo.Distance, lo.Throttle, hi.Distance, hi.Throttle, d)
		ret.Brake[i] = util.Interpolate(lo.Distance, lo.Brake, hi.Distance, hi.Brake, d)
		if d >= hi.Distance {
			ret.Gear[i] = hi.Gear
		} else {
			ret.Gear[i] = lo.Gear
		}
	}
	return ret, nil
}

// cleanSamples returns samples with strictly increasing distance.
// On duplicate distances the later sample wins, samples with a distance
// below the running maximum are dropped.
func cleanSamples(samples []model.TelemetrySample) []model.TelemetrySample {
	ret := make([]model.TelemetrySample, 0, len(samples))
	for _, s := range samples {
		switch {
		case len(ret) == 0 || s.Distance > ret[len(ret)-1].Distance:
			ret = append(ret, s)
		case s.Distance == ret[len(ret)-1].Distance:
			ret[len(ret)-1] = s
		}
	}
	return ret
}
