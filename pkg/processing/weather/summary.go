package weather

import (
	"github.com/samber/lo"

	"github.com/hamzanaeem10/ApexAnalyst/pkg/model"
	"github.com/hamzanaeem10/ApexAnalyst/pkg/processing/util"
)

// Summary computes min/max/mean for every weather channel and collects the
// lap ranges driven in rain.
func Summary(sess *model.Session) (*model.WeatherSummary, error) {
	if len(sess.Weather) == 0 {
		return nil, &util.DataError{Op: "weather", Detail: "no weather samples"}
	}
	channels := []string{
		ChannelTrackTemp, ChannelAirTemp, ChannelHumidity,
		ChannelPressure, ChannelWindSpeed,
	}
	ret := &model.WeatherSummary{}
	for _, channel := range channels {
		values := lo.Map(sess.Weather, func(s model.WeatherSample, _ int) float64 {
			v, _ := channelValue(s, channel)
			return v
		})
		ret.Channels = append(ret.Channels, model.WeatherChannelStats{
			Channel: channel,
			Min:     lo.Min(values),
			Max:     lo.Max(values),
			Mean:    util.Mean(values),
		})
	}

	timeline, err := Timeline(sess)
	if err != nil {
		return nil, err
	}
	for i := 0; i < len(timeline); {
		if !timeline[i].Sample.Rainfall {
			i++
			continue
		}
		j := i
		for j+1 < len(timeline) && timeline[j+1].Sample.Rainfall {
			j++
		}
		ret.RainPeriods = append(ret.RainPeriods, model.LapRange{
			From: timeline[i].Lap,
			To:   timeline[j].Lap,
		})
		i = j + 1
	}
	return ret, nil
}
