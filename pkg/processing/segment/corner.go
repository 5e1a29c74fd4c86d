package segment

import (
	"fmt"

	"github.com/hamzanaeem10/ApexAnalyst/pkg/model"
	"github.com/hamzanaeem10/ApexAnalyst/pkg/processing/telemetry"
	"github.com/hamzanaeem10/ApexAnalyst/pkg/processing/util"
)

const (
	brakeThreshold    = 10.0 // percent, above which the driver is braking
	fullThrottleLevel = 98.0 // percent, at which throttle counts as full
)

// Corner analyzes one driver's fastest pass through a corner described by
// a distance range: apex speed and location, the braking point into the
// corner and the point full throttle is reached after the apex.
func Corner(sess *model.Session, driver string, start, end float64) (*model.CornerMetrics, error) {
	if start < 0 || end <= start {
		return nil, fmt.Errorf("%w: corner [%.0f,%.0f]", util.ErrInvalidRange, start, end)
	}
	fastest, ok := sess.FastestLap(driver, true)
	if !ok {
		return nil, util.ErrUnknownDriver
	}
	samples := sess.LapTelemetry(driver, fastest.LapNumber)
	channels, err := telemetry.Resample(driver, fastest.LapNumber, samples, telemetry.DefaultStep)
	if err != nil {
		return nil, err
	}
	tStart, okStart := timeAt(channels, start)
	tEnd, okEnd := timeAt(channels, end)
	if !okStart || !okEnd {
		return nil, &util.DataError{
			Op:     "corner",
			Detail: fmt.Sprintf("telemetry of %s does not cover [%.0f,%.0f]", driver, start, end),
		}
	}

	ret := &model.CornerMetrics{
		Driver:        driver,
		LapNumber:     fastest.LapNumber,
		BrakePoint:    -1,
		ThrottlePoint: -1,
		ElapsedTime:   tEnd - tStart,
	}
	minSpeed := -1.0
	first := true
	for i, d := range channels.Distance {
		if d < start || d > end {
			continue
		}
		if first {
			ret.EntrySpeed = channels.Speed[i]
			first = false
		}
		ret.ExitSpeed = channels.Speed[i]
		if minSpeed < 0 || channels.Speed[i] < minSpeed {
			minSpeed = channels.Speed[i]
			ret.MinSpeedAt = d
		}
		if ret.BrakePoint < 0 && channels.Brake[i] > brakeThreshold {
			ret.BrakePoint = d
		}
	}
	ret.MinSpeed = minSpeed
	for i, d := range channels.Distance {
		if d < ret.MinSpeedAt || d > end {
			continue
		}
		if channels.Throttle[i] >= fullThrottleLevel {
			ret.ThrottlePoint = d
			break
		}
	}
	return ret, nil
}
