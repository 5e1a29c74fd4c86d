// Package basedata provides synthetic session data for tests.
package basedata

import (
	"fmt"

	"github.com/hamzanaeem10/ApexAnalyst/pkg/model"
)

const (
	TrackLength = 3000.0 // meters
	SampleEvery = 50.0   // meters between raw telemetry samples
)

// TelemetryLap generates raw samples for a lap driven at constant speed.
// speed is in km/h, maxDistance allows truncating the lap early.
func TelemetryLap(speed, maxDistance float64) []model.TelemetrySample {
	mps := speed / 3.6
	ret := make([]model.TelemetrySample, 0)
	for d := 0.0; d <= maxDistance; d += SampleEvery {
		ret = append(ret, model.TelemetrySample{
			TimeOffset: d / mps,
			Distance:   d,
			Speed:      speed,
			Throttle:   100,
			Gear:       7,
		})
	}
	return ret
}

// Lap builds a clean lap with evenly split sectors.
func Lap(driver string, lapNumber int, lapTime float64) model.Lap {
	third := lapTime / 3
	return model.Lap{
		Driver:      driver,
		LapNumber:   lapNumber,
		LapTime:     lapTime,
		SectorTimes: [3]float64{third, third, third},
		Compound:    model.CompoundMedium,
		TyreAge:     lapNumber,
		Stint:       1,
		IsAccurate:  true,
		StartOffset: float64(lapNumber-1) * lapTime,
	}
}

// DegradationLaps builds laps whose time grows linearly with tyre age:
// base + rate*age. Two drivers produce the same times so every age bucket
// holds enough laps for a fit.
func DegradationLaps(compound model.Compound, base, rate float64, count int) []model.Lap {
	ret := make([]model.Lap, 0, 2*count)
	for _, driver := range []string{"VER", "LEC"} {
		for lap := 1; lap <= count; lap++ {
			l := Lap(driver, lap, base+rate*float64(lap))
			l.Compound = compound
			l.TyreAge = lap
			ret = append(ret, l)
		}
	}
	return ret
}

// SampleSession builds a ready-to-analyze session with two drivers,
// telemetry on their fastest laps and a stable weather history.
func SampleSession() *model.Session {
	sess := &model.Session{
		Name:      "testrace",
		Circuit:   "testcircuit",
		TotalLaps: 20,
		Track:     model.TrackGeometry{TrackLength: TrackLength},
		Telemetry: make(model.TelemetrySet),
	}
	for lap := 1; lap <= 20; lap++ {
		fast := Lap("VER", lap, 90+0.05*float64(lap))
		slow := Lap("LEC", lap, 90.5+0.05*float64(lap))
		fast.Position = 1
		slow.Position = 2
		slow.GapAhead = 2.5
		sess.Laps = append(sess.Laps, fast, slow)
	}
	sess.Telemetry["VER"] = map[int][]model.TelemetrySample{
		1: TelemetryLap(220, TrackLength),
	}
	sess.Telemetry["LEC"] = map[int][]model.TelemetrySample{
		1: TelemetryLap(215, TrackLength),
	}
	for i := 0; i < 30; i++ {
		sess.Weather = append(sess.Weather, model.WeatherSample{
			TimeOffset: float64(i) * 60,
			TrackTemp:  35,
			AirTemp:    24,
			Humidity:   55,
			Pressure:   1013,
			WindSpeed:  3,
		})
	}
	return sess
}

// ReadyProvider wraps a session as an always-ready dataset.
type ReadyProvider struct {
	Sess *model.Session
}

func (p *ReadyProvider) Status() model.LoadStatus { return model.StatusReady }
func (p *ReadyProvider) Session() *model.Session  { return p.Sess }

// PendingProvider reports a dataset that never becomes ready.
type PendingProvider struct{}

func (p *PendingProvider) Status() model.LoadStatus { return model.StatusPending }
func (p *PendingProvider) Session() *model.Session  { return nil }

// SessionJSON renders a session in the on-disk export format.
func SessionJSON(sess *model.Session) string {
	laps := ""
	for i, l := range sess.Laps {
		if i > 0 {
			laps += ","
		}
		laps += fmt.Sprintf(`{"driver":%q,"lapNumber":%d,"lapTime":%f,`+
			`"sectorTimes":[%f,%f,%f],"compound":%q,"tyreAge":%d,"stint":%d,`+
			`"isAccurate":%t,"startOffset":%f}`,
			l.Driver, l.LapNumber, l.LapTime,
			l.SectorTimes[0], l.SectorTimes[1], l.SectorTimes[2],
			string(l.Compound), l.TyreAge, l.Stint, l.IsAccurate, l.StartOffset)
	}
	return fmt.Sprintf(`{"name":%q,"circuit":%q,"totalLaps":%d,`+
		`"track":{"trackLength":%f},"laps":[%s],"weather":[],"telemetry":{}}`,
		sess.Name, sess.Circuit, sess.TotalLaps, sess.Track.TrackLength, laps)
}
