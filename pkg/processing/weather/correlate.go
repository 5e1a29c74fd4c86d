package weather

import (
	"math"
	"sort"

	"github.com/samber/lo"

	"github.com/hamzanaeem10/ApexAnalyst/pkg/model"
	"github.com/hamzanaeem10/ApexAnalyst/pkg/processing/util"
)

const (
	// DefaultWindowSize is the lap window length used for correlation.
	DefaultWindowSize = 5
	// DefaultMinWindowLaps is the minimum count of clean laps a window
	// needs to contribute a correlation point.
	DefaultMinWindowLaps = 3
	// significanceThreshold on |pearson| above which a correlation is
	// reported as significant.
	significanceThreshold = 0.3
)

// Channel names accepted by Correlate.
const (
	ChannelTrackTemp = "track_temp"
	ChannelAirTemp   = "air_temp"
	ChannelHumidity  = "humidity"
	ChannelPressure  = "pressure"
	ChannelWindSpeed = "wind_speed"
)

func channelValue(s model.WeatherSample, channel string) (float64, bool) {
	switch channel {
	case ChannelTrackTemp:
		return s.TrackTemp, true
	case ChannelAirTemp:
		return s.AirTemp, true
	case ChannelHumidity:
		return s.Humidity, true
	case ChannelPressure:
		return s.Pressure, true
	case ChannelWindSpeed:
		return s.WindSpeed, true
	default:
		return 0, false
	}
}

// Correlate relates a weather channel to lap times. Laps are grouped into
// non-overlapping windows, each window's mean clean lap time is paired with
// the weather sample nearest to the window midpoint, and the pairs are
// tested for linear correlation. Windows holding fewer than minLaps clean
// laps are dropped before the fit. A constant weather channel reports zero
// correlation rather than NaN.
func Correlate(sess *model.Session, channel string, windowSize, minLaps int) (*model.CorrelationResult, error) {
	if _, ok := channelValue(model.WeatherSample{}, channel); !ok {
		return nil, &util.DataError{Op: "weather", Detail: "unknown channel " + channel}
	}
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}
	if minLaps <= 0 {
		minLaps = DefaultMinWindowLaps
	}
	if len(sess.Weather) == 0 {
		return nil, &util.DataError{Op: "weather", Detail: "no weather samples"}
	}
	clean := sess.AccurateLaps()
	if len(clean) == 0 {
		return nil, &util.DataError{Op: "weather", Detail: "no clean laps"}
	}

	maxLap := lo.MaxBy(clean, func(a, b model.Lap) bool { return a.LapNumber > b.LapNumber }).LapNumber
	points := make([]model.CorrelationPoint, 0)
	for start := 1; start <= maxLap; start += windowSize {
		end := start + windowSize - 1
		if end > maxLap {
			end = maxLap
		}
		window := lo.Filter(clean, func(l model.Lap, _ int) bool {
			return l.LapNumber >= start && l.LapNumber <= end
		})
		if len(window) < minLaps {
			continue
		}
		times := lo.Map(window, func(l model.Lap, _ int) float64 { return l.LapTime })
		offsets := lo.Map(window, func(l model.Lap, _ int) float64 { return l.StartOffset })
		sample := nearestSample(sess.Weather, util.Mean(offsets))
		value, _ := channelValue(sample, channel)
		points = append(points, model.CorrelationPoint{
			WindowStart:  start,
			WindowEnd:    end,
			MeanLapTime:  util.Mean(times),
			WeatherValue: value,
		})
	}
	if len(points) < 2 {
		return nil, &util.DataError{Op: "weather", Detail: "not enough lap windows"}
	}

	xs := lo.Map(points, func(p model.CorrelationPoint, _ int) float64 { return p.WeatherValue })
	ys := lo.Map(points, func(p model.CorrelationPoint, _ int) float64 { return p.MeanLapTime })
	pearson := util.Pearson(xs, ys)
	ret := &model.CorrelationResult{
		Channel:     channel,
		Points:      points,
		Pearson:     pearson,
		RSquared:    pearson * pearson,
		Significant: math.Abs(pearson) > significanceThreshold,
		Direction:   "none",
	}
	if ret.Significant {
		if pearson > 0 {
			ret.Direction = "slower"
		} else {
			ret.Direction = "faster"
		}
	}
	return ret, nil
}

// nearestSample returns the weather sample closest in time to offset,
// whether it precedes or follows it. Samples are ordered by time offset.
func nearestSample(samples []model.WeatherSample, offset float64) model.WeatherSample {
	idx := sort.Search(len(samples), func(i int) bool {
		return samples[i].TimeOffset >= offset
	})
	if idx == 0 {
		return samples[0]
	}
	if idx == len(samples) {
		return samples[len(samples)-1]
	}
	if samples[idx].TimeOffset-offset < offset-samples[idx-1].TimeOffset {
		return samples[idx]
	}
	return samples[idx-1]
}
