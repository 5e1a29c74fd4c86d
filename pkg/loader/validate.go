package loader

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/hamzanaeem10/ApexAnalyst/pkg/model"
)

// lapSumTolerance is the allowed difference between a lap time and the sum
// of its sector times before the lap is demoted to inaccurate.
const lapSumTolerance = 0.5

// buildLaps validates and normalizes the raw lap table. Laps are ordered
// by driver and lap number, compounds are normalized, and laps whose
// sector times do not add up to the lap time are demoted to inaccurate.
func buildLaps(raw rawSession) ([]model.Lap, error) {
	ret := make([]model.Lap, 0, len(raw.Laps))
	for i, rl := range raw.Laps {
		if rl.Driver == "" {
			return nil, fmt.Errorf("lap %d: driver missing", i)
		}
		if rl.LapNumber <= 0 {
			return nil, fmt.Errorf("lap %d: invalid lap number %d", i, rl.LapNumber)
		}
		l := model.Lap{
			Driver:      rl.Driver,
			Team:        rl.Team,
			LapNumber:   rl.LapNumber,
			LapTime:     rl.LapTime,
			SectorTimes: rl.SectorTimes,
			Compound:    model.ParseCompound(rl.Compound),
			TyreAge:     rl.TyreAge,
			Stint:       rl.Stint,
			Position:    rl.Position,
			GapAhead:    rl.GapAhead,
			IsAccurate:  rl.IsAccurate,
			TrackStatus: rl.TrackStatus,
			StartOffset: rl.StartOffset,
		}
		if l.IsAccurate && !sectorsMatch(l) {
			l.IsAccurate = false
		}
		ret = append(ret, l)
	}
	sort.SliceStable(ret, func(i, j int) bool {
		if ret[i].Driver != ret[j].Driver {
			return ret[i].Driver < ret[j].Driver
		}
		return ret[i].LapNumber < ret[j].LapNumber
	})
	return ret, nil
}

// sectorsMatch checks lap time against the sector sum. Laps without sector
// times pass unchecked.
func sectorsMatch(l model.Lap) bool {
	sum := l.SectorTimes[0] + l.SectorTimes[1] + l.SectorTimes[2]
	if sum == 0 || l.LapTime == 0 {
		return true
	}
	return math.Abs(l.LapTime-sum) <= lapSumTolerance
}

// buildWeather orders weather samples by time offset.
func buildWeather(samples []model.WeatherSample) []model.WeatherSample {
	ret := make([]model.WeatherSample, len(samples))
	copy(ret, samples)
	sort.SliceStable(ret, func(i, j int) bool {
		return ret[i].TimeOffset < ret[j].TimeOffset
	})
	return ret
}

// buildTelemetry converts the raw string-keyed lap map and orders samples
// by time. Duplicate or regressing distances are left in place, the
// resampler handles them when a lap is analyzed.
func buildTelemetry(raw map[string]map[string][]model.TelemetrySample) (model.TelemetrySet, error) {
	ret := make(model.TelemetrySet, len(raw))
	for driver, byLap := range raw {
		ret[driver] = make(map[int][]model.TelemetrySample, len(byLap))
		for lapKey, samples := range byLap {
			lapNumber, err := strconv.Atoi(lapKey)
			if err != nil {
				return nil, fmt.Errorf("telemetry of %s: invalid lap key %q", driver, lapKey)
			}
			ordered := make([]model.TelemetrySample, len(samples))
			copy(ordered, samples)
			sort.SliceStable(ordered, func(i, j int) bool {
				return ordered[i].TimeOffset < ordered[j].TimeOffset
			})
			ret[driver][lapNumber] = ordered
		}
	}
	return ret, nil
}
