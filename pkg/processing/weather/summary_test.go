package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hamzanaeem10/ApexAnalyst/pkg/model"
	"github.com/hamzanaeem10/ApexAnalyst/testsupport/basedata"
)

func TestSummary_ChannelStats(t *testing.T) {
	sess := basedata.SampleSession()
	summary, err := Summary(sess)
	assert.NoError(t, err)
	assert.Len(t, summary.Channels, 5)
	assert.Equal(t, ChannelTrackTemp, summary.Channels[0].Channel)
	assert.InDelta(t, 35, summary.Channels[0].Min, 1e-9)
	assert.InDelta(t, 35, summary.Channels[0].Max, 1e-9)
	assert.InDelta(t, 35, summary.Channels[0].Mean, 1e-9)
	assert.Empty(t, summary.RainPeriods)
}

func TestSummary_RainPeriods(t *testing.T) {
	sess := basedata.SampleSession()
	// a shower between the 10th and 14th weather samples
	for i := 10; i <= 14; i++ {
		sess.Weather[i].Rainfall = true
	}
	summary, err := Summary(sess)
	assert.NoError(t, err)
	assert.Len(t, summary.RainPeriods, 1)
	period := summary.RainPeriods[0]
	assert.LessOrEqual(t, period.From, period.To)
	assert.Positive(t, period.From)
}

func TestSummary_NoWeather(t *testing.T) {
	sess := basedata.SampleSession()
	sess.Weather = []model.WeatherSample{}
	_, err := Summary(sess)
	assert.Error(t, err)
}
