package segment

import (
	"fmt"
	"sort"

	"github.com/hamzanaeem10/ApexAnalyst/pkg/model"
	"github.com/hamzanaeem10/ApexAnalyst/pkg/processing/telemetry"
	"github.com/hamzanaeem10/ApexAnalyst/pkg/processing/util"
)

// timeAt interpolates the cumulative lap time at distance d.
// Returns false when d lies outside the covered range.
func timeAt(c *model.ResampledChannels, d float64) (float64, bool) {
	n := len(c.Distance)
	if n == 0 || d < c.Distance[0] || d > c.Distance[n-1] {
		return 0, false
	}
	idx := sort.SearchFloat64s(c.Distance, d)
	if idx < n && c.Distance[idx] == d {
		return c.Time[idx], true
	}
	lo, hi := idx-1, idx
	return util.Interpolate(c.Distance[lo], c.Time[lo], c.Distance[hi], c.Time[hi], d), true
}

// speedStats returns mean and top speed over [start,end].
func speedStats(c *model.ResampledChannels, start, end float64) (mean, top float64) {
	var sum float64
	count := 0
	for i, d := range c.Distance {
		if d < start || d > end {
			continue
		}
		sum += c.Speed[i]
		if c.Speed[i] > top {
			top = c.Speed[i]
		}
		count++
	}
	if count > 0 {
		mean = sum / float64(count)
	}
	return mean, top
}

// Leaderboard ranks all drivers over the distance range [start,end] using
// their fastest lap with full telemetry coverage of the range. Drivers
// without a covering lap are listed as excluded rather than ranked on
// partial data.
func Leaderboard(sess *model.Session, start, end float64) (*model.SegmentLeaderboard, error) {
	if start < 0 || end <= start || (sess.Track.TrackLength > 0 && end > sess.Track.TrackLength) {
		return nil, fmt.Errorf("%w: segment [%.0f,%.0f]", util.ErrInvalidRange, start, end)
	}
	teams := make(map[string]string)
	for _, l := range sess.Laps {
		if l.Team != "" {
			teams[l.Driver] = l.Team
		}
	}

	ret := &model.SegmentLeaderboard{StartDistance: start, EndDistance: end}
	for _, driver := range sess.Drivers() {
		entry, ok := bestEffort(sess, driver, start, end)
		if !ok {
			ret.Excluded = append(ret.Excluded, driver)
			continue
		}
		entry.Team = teams[driver]
		ret.Entries = append(ret.Entries, entry)
	}
	if len(ret.Entries) == 0 {
		return nil, &util.DataError{Op: "segment", Detail: "no driver covers the segment"}
	}
	sort.SliceStable(ret.Entries, func(i, j int) bool {
		return ret.Entries[i].ElapsedTime < ret.Entries[j].ElapsedTime
	})
	for i := range ret.Entries {
		ret.Entries[i].DeltaToLeader = ret.Entries[i].ElapsedTime - ret.Entries[0].ElapsedTime
	}
	ret.Teams = teamShares(ret.Entries)
	return ret, nil
}

// teamShares aggregates the ranked entries per team. Entries without a team
// are skipped.
func teamShares(entries []model.SegmentEntry) []model.TeamShare {
	times := make(map[string][]float64)
	order := make([]string, 0)
	for _, e := range entries {
		if e.Team == "" {
			continue
		}
		if _, ok := times[e.Team]; !ok {
			order = append(order, e.Team)
		}
		times[e.Team] = append(times[e.Team], e.ElapsedTime)
	}
	ret := make([]model.TeamShare, 0, len(order))
	for _, team := range order {
		ts := times[team] // ascending, entries arrive sorted
		ret = append(ret, model.TeamShare{
			Team:      team,
			Drivers:   len(ts),
			BestTime:  ts[0],
			WorstTime: ts[len(ts)-1],
			MeanTime:  util.Mean(ts),
			StdDev:    util.StdDev(ts),
		})
	}
	return ret
}

// bestEffort finds the driver's fastest pass through [start,end] over all
// laps with covering telemetry. An exact tie goes to the earliest lap.
func bestEffort(sess *model.Session, driver string, start, end float64) (model.SegmentEntry, bool) {
	var best model.SegmentEntry
	found := false
	lapNumbers := make([]int, 0, len(sess.Telemetry[driver]))
	for n := range sess.Telemetry[driver] {
		lapNumbers = append(lapNumbers, n)
	}
	sort.Ints(lapNumbers)
	for _, lapNumber := range lapNumbers {
		samples := sess.Telemetry[driver][lapNumber]
		channels, err := telemetry.Resample(driver, lapNumber, samples, telemetry.DefaultStep)
		if err != nil {
			continue
		}
		tStart, okStart := timeAt(channels, start)
		tEnd, okEnd := timeAt(channels, end)
		if !okStart || !okEnd {
			continue
		}
		elapsed := tEnd - tStart
		if !found || elapsed < best.ElapsedTime {
			mean, top := speedStats(channels, start, end)
			best = model.SegmentEntry{
				Driver:      driver,
				LapNumber:   lapNumber,
				ElapsedTime: elapsed,
				MeanSpeed:   mean,
				TopSpeed:    top,
			}
			found = true
		}
	}
	return best, found
}
