package weather

import (
	"math"
	"sort"

	"github.com/samber/lo"

	"github.com/hamzanaeem10/ApexAnalyst/pkg/model"
	"github.com/hamzanaeem10/ApexAnalyst/pkg/processing/util"
)

// Timeline annotates every weather sample with the lap in progress when it
// was recorded. The lap in progress is taken from the leader, i.e. the
// earliest start offset recorded for each lap number.
func Timeline(sess *model.Session) ([]model.WeatherTimelinePoint, error) {
	if len(sess.Weather) == 0 {
		return nil, &util.DataError{Op: "weather", Detail: "no weather samples"}
	}
	lapStarts := make(map[int]float64)
	for _, l := range sess.Laps {
		if start, ok := lapStarts[l.LapNumber]; !ok || l.StartOffset < start {
			lapStarts[l.LapNumber] = l.StartOffset
		}
	}
	lapNumbers := lo.Keys(lapStarts)
	sort.Ints(lapNumbers)

	ret := make([]model.WeatherTimelinePoint, 0, len(sess.Weather))
	for _, sample := range sess.Weather {
		lap := 0
		for _, n := range lapNumbers {
			if lapStarts[n] <= sample.TimeOffset {
				lap = n
			} else {
				break
			}
		}
		ret = append(ret, model.WeatherTimelinePoint{Lap: lap, Sample: sample})
	}
	return ret, nil
}

// WindRose aggregates wind observations into direction sectors.
// sectors must divide the full circle, 8 is used when out of range.
func WindRose(samples []model.WeatherSample, sectors int) []model.WindRoseBin {
	if sectors < 4 || sectors > 36 {
		sectors = 8
	}
	width := 360.0 / float64(sectors)
	bins := make([]model.WindRoseBin, sectors)
	sums := make([]float64, sectors)
	for i := range bins {
		bins[i].DirectionFrom = float64(i) * width
		bins[i].DirectionTo = float64(i+1) * width
	}
	for _, s := range samples {
		dir := math.Mod(s.WindDirection, 360)
		if dir < 0 {
			dir += 360
		}
		idx := int(dir / width)
		if idx >= sectors {
			idx = sectors - 1
		}
		bins[idx].Count++
		sums[idx] += s.WindSpeed
	}
	for i := range bins {
		if bins[i].Count > 0 {
			bins[i].MeanSpeed = sums[i] / float64(bins[i].Count)
		}
	}
	return bins
}
