//nolint:funlen // ok for tests
package segment

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/hamzanaeem10/ApexAnalyst/pkg/model"
	"github.com/hamzanaeem10/ApexAnalyst/pkg/processing/util"
	"github.com/hamzanaeem10/ApexAnalyst/testsupport/basedata"
)

func TestLeaderboard_RanksByElapsedTime(t *testing.T) {
	sess := basedata.SampleSession()
	board, err := Leaderboard(sess, 500, 1500)
	assert.NoError(t, err)
	assert.Len(t, board.Entries, 2)
	// VER runs 220 km/h vs 215, so leads the segment
	assert.Equal(t, "VER", board.Entries[0].Driver)
	assert.Equal(t, "LEC", board.Entries[1].Driver)
	assert.Less(t, board.Entries[0].ElapsedTime, board.Entries[1].ElapsedTime)
	assert.InDelta(t, 0, board.Entries[0].DeltaToLeader, 1e-9)
	assert.InDelta(t, board.Entries[1].ElapsedTime-board.Entries[0].ElapsedTime,
		board.Entries[1].DeltaToLeader, 1e-9)
	assert.Empty(t, board.Excluded)
}

func TestLeaderboard_ExcludesTruncatedTelemetry(t *testing.T) {
	sess := basedata.SampleSession()
	// LEC's recording stops at 2500m of the 3000m lap
	sess.Telemetry["LEC"] = map[int][]model.TelemetrySample{
		1: basedata.TelemetryLap(215, 2500),
	}
	board, err := Leaderboard(sess, 2600, 2900)
	assert.NoError(t, err)
	assert.Len(t, board.Entries, 1)
	assert.Equal(t, "VER", board.Entries[0].Driver)
	assert.Equal(t, []string{"LEC"}, board.Excluded)
}

func TestLeaderboard_InvalidRange(t *testing.T) {
	sess := basedata.SampleSession()
	for _, arg := range [][2]float64{{-10, 100}, {500, 500}, {900, 200}, {0, 9999}} {
		_, err := Leaderboard(sess, arg[0], arg[1])
		assert.Error(t, err)
		assert.True(t, errors.Is(err, util.ErrInvalidRange), "range %v", arg)
	}
}

func TestLeaderboard_SpeedStats(t *testing.T) {
	sess := basedata.SampleSession()
	board, err := Leaderboard(sess, 1000, 2000)
	assert.NoError(t, err)
	assert.InDelta(t, 220, board.Entries[0].MeanSpeed, 1e-6)
	assert.InDelta(t, 220, board.Entries[0].TopSpeed, 1e-6)
}

func TestLeaderboard_TeamShares(t *testing.T) {
	sess := basedata.SampleSession()
	for i := range sess.Laps {
		switch sess.Laps[i].Driver {
		case "VER":
			sess.Laps[i].Team = "Red Bull"
		case "LEC":
			sess.Laps[i].Team = "Ferrari"
		}
	}
	board, err := Leaderboard(sess, 500, 1500)
	assert.NoError(t, err)
	assert.Len(t, board.Teams, 2)
	assert.Equal(t, "Red Bull", board.Teams[0].Team)
	assert.Equal(t, 1, board.Teams[0].Drivers)
	assert.InDelta(t, board.Entries[0].ElapsedTime, board.Teams[0].BestTime, 1e-9)
	assert.InDelta(t, board.Teams[0].BestTime, board.Teams[0].WorstTime, 1e-9)
	assert.InDelta(t, board.Teams[0].BestTime, board.Teams[0].MeanTime, 1e-9)
	assert.InDelta(t, 0, board.Teams[0].StdDev, 1e-9)
}

func TestLeaderboard_TeamSpread(t *testing.T) {
	sess := basedata.SampleSession()
	for i := range sess.Laps {
		sess.Laps[i].Team = "Ferrari"
	}
	board, err := Leaderboard(sess, 500, 1500)
	assert.NoError(t, err)
	assert.Len(t, board.Teams, 1)
	team := board.Teams[0]
	assert.Equal(t, 2, team.Drivers)
	assert.InDelta(t, board.Entries[0].ElapsedTime, team.BestTime, 1e-9)
	assert.InDelta(t, board.Entries[1].ElapsedTime, team.WorstTime, 1e-9)
	assert.Greater(t, team.MeanTime, team.BestTime)
	assert.Less(t, team.MeanTime, team.WorstTime)
	assert.Greater(t, team.StdDev, 0.0)
}

func TestMiniSectors_DominanceAddsUp(t *testing.T) {
	sess := basedata.SampleSession()
	report, err := MiniSectors(sess, 25)
	assert.NoError(t, err)
	assert.Len(t, report.Sectors, 25)
	total := 0
	for _, n := range report.Dominance {
		total += n
	}
	assert.Equal(t, 25, total)
	// constant speeds: the faster car wins every slice it covers
	assert.Equal(t, 25, report.Dominance["VER"])
}

func TestMiniSectors_TieGoesToFirstDriverByName(t *testing.T) {
	sess := &model.Session{
		Name: "tie",
		Laps: []model.Lap{
			basedata.Lap("BBB", 1, 90),
			basedata.Lap("AAA", 1, 90),
		},
		Telemetry: model.TelemetrySet{
			"AAA": {1: basedata.TelemetryLap(220, basedata.TrackLength)},
			"BBB": {1: basedata.TelemetryLap(220, basedata.TrackLength)},
		},
		Track: model.TrackGeometry{TrackLength: basedata.TrackLength},
	}
	first, err := MiniSectors(sess, 10)
	assert.NoError(t, err)
	for _, s := range first.Sectors {
		assert.Equal(t, "AAA", s.FastestDriver)
	}
	second, err := MiniSectors(sess, 10)
	assert.NoError(t, err)
	assert.Empty(t, cmp.Diff(first, second))
}

func TestMiniSectors_CountClamped(t *testing.T) {
	sess := basedata.SampleSession()
	report, err := MiniSectors(sess, 5)
	assert.NoError(t, err)
	assert.Len(t, report.Sectors, 10)

	report, err = MiniSectors(sess, 100)
	assert.NoError(t, err)
	assert.Len(t, report.Sectors, 50)
}

func TestCorner_Metrics(t *testing.T) {
	sess := basedata.SampleSession()
	// braking zone into a slow corner between 1000m and 1200m
	samples := make([]model.TelemetrySample, 0)
	speed := func(d float64) float64 {
		switch {
		case d >= 1000 && d < 1100:
			return 220 - (d-1000)*1.4 // braking
		case d >= 1100 && d < 1200:
			return 80 + (d-1100)*1.4 // accelerating out
		default:
			return 220
		}
	}
	tOffset := 0.0
	for d := 0.0; d <= basedata.TrackLength; d += 10 {
		v := speed(d)
		brake, throttle := 0.0, 100.0
		if d >= 1000 && d < 1100 {
			brake, throttle = 80, 0
		}
		samples = append(samples, model.TelemetrySample{
			TimeOffset: tOffset, Distance: d, Speed: v, Brake: brake, Throttle: throttle, Gear: 5,
		})
		tOffset += 10 / (v / 3.6)
	}
	sess.Telemetry["VER"] = map[int][]model.TelemetrySample{1: samples}

	metrics, err := Corner(sess, "VER", 900, 1300)
	assert.NoError(t, err)
	assert.InDelta(t, 1100, metrics.MinSpeedAt, 20)
	assert.InDelta(t, 80, metrics.MinSpeed, 10)
	assert.InDelta(t, 1000, metrics.BrakePoint, 20)
	assert.GreaterOrEqual(t, metrics.ThrottlePoint, metrics.MinSpeedAt)
	assert.Positive(t, metrics.ElapsedTime)
}

func TestCorner_InvalidRange(t *testing.T) {
	sess := basedata.SampleSession()
	_, err := Corner(sess, "VER", 500, 400)
	assert.True(t, errors.Is(err, util.ErrInvalidRange))
}
