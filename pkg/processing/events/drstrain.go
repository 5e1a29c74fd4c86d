package events

import (
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/hamzanaeem10/ApexAnalyst/pkg/model"
	"github.com/hamzanaeem10/ApexAnalyst/pkg/processing/util"
)

const (
	// DefaultDRSGap is the gap to the car ahead at which DRS is available.
	DefaultDRSGap = 1.0
	// DefaultDRSMinCars is the minimum group size counting as a train.
	DefaultDRSMinCars = 3
	// DefaultDRSMinLaps is how many consecutive laps a group must persist.
	DefaultDRSMinLaps = 3
)

type lapTrain struct {
	drivers []string // running order, leader first
}

func (t lapTrain) key() string {
	sorted := make([]string, len(t.drivers))
	copy(sorted, t.drivers)
	sort.Strings(sorted)
	return strings.Join(sorted, "|")
}

// DRSTrains detects groups of cars circulating within DRS range of each
// other over consecutive laps. A train is a run of minCars or more cars
// each within gapThreshold of the car ahead, and the same set of cars has
// to persist for minLaps consecutive laps to be reported.
func DRSTrains(sess *model.Session, gapThreshold float64, minCars, minLaps int) (*model.DRSTrainReport, error) {
	if gapThreshold <= 0 {
		gapThreshold = DefaultDRSGap
	}
	if minCars < 2 {
		minCars = DefaultDRSMinCars
	}
	if minLaps < 1 {
		minLaps = DefaultDRSMinLaps
	}
	if len(sess.Laps) == 0 {
		return nil, &util.DataError{Op: "drstrains", Detail: "no laps"}
	}

	byLap := lo.GroupBy(sess.Laps, func(l model.Lap) int { return l.LapNumber })
	lapNumbers := lo.Keys(byLap)
	sort.Ints(lapNumbers)

	trainsPerLap := make(map[int][]lapTrain, len(lapNumbers))
	for _, n := range lapNumbers {
		trainsPerLap[n] = findLapTrains(byLap[n], gapThreshold, minCars)
	}

	ret := &model.DRSTrainReport{
		GapThreshold: gapThreshold,
		MinCars:      minCars,
		MinLaps:      minLaps,
		Trains:       make([]model.DRSTrain, 0),
	}
	// Track per driver-set how many consecutive laps the group persisted.
	type run struct {
		train lapTrain
		from  int
		to    int
	}
	active := make(map[string]*run)
	flush := func(r *run) {
		if count := r.to - r.from + 1; count >= minLaps {
			ret.Trains = append(ret.Trains, model.DRSTrain{
				Drivers:  r.train.drivers,
				Laps:     model.LapRange{From: r.from, To: r.to},
				LapCount: count,
			})
		}
	}
	for _, n := range lapNumbers {
		seen := make(map[string]struct{})
		for _, t := range trainsPerLap[n] {
			k := t.key()
			seen[k] = struct{}{}
			if r, ok := active[k]; ok && r.to == n-1 {
				r.to = n
			} else {
				if ok {
					flush(r)
				}
				active[k] = &run{train: t, from: n, to: n}
			}
		}
		for k, r := range active {
			if _, ok := seen[k]; !ok && r.to < n {
				flush(r)
				delete(active, k)
			}
		}
	}
	for _, r := range active {
		flush(r)
	}
	sort.Slice(ret.Trains, func(i, j int) bool {
		if ret.Trains[i].Laps.From != ret.Trains[j].Laps.From {
			return ret.Trains[i].Laps.From < ret.Trains[j].Laps.From
		}
		return ret.Trains[i].Drivers[0] < ret.Trains[j].Drivers[0]
	})
	ret.AffectedDrivers = affectedDrivers(ret.Trains, sess.TotalLaps, lapNumbers)
	return ret, nil
}

// affectedDrivers sums each driver's laps spent in a reported train and
// relates them to the race length. Most laps in a train first, name order
// on ties.
func affectedDrivers(trains []model.DRSTrain, totalLaps int, lapNumbers []int) []model.DriverTrainShare {
	if totalLaps <= 0 {
		totalLaps = lapNumbers[len(lapNumbers)-1]
	}
	counts := make(map[string]int)
	for _, train := range trains {
		for _, driver := range train.Drivers {
			counts[driver] += train.LapCount
		}
	}
	drivers := lo.Keys(counts)
	sort.Strings(drivers)
	ret := make([]model.DriverTrainShare, 0, len(drivers))
	for _, driver := range drivers {
		ret = append(ret, model.DriverTrainShare{
			Driver:      driver,
			LapsInTrain: counts[driver],
			Percentage:  float64(counts[driver]) / float64(totalLaps) * 100,
		})
	}
	sort.SliceStable(ret, func(i, j int) bool {
		return ret[i].LapsInTrain > ret[j].LapsInTrain
	})
	return ret
}

// findLapTrains groups the cars of one lap by running position and cuts
// the field wherever the gap ahead exceeds the threshold.
func findLapTrains(laps []model.Lap, gapThreshold float64, minCars int) []lapTrain {
	ordered := lo.Filter(laps, func(l model.Lap, _ int) bool { return l.Position > 0 })
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Position < ordered[j].Position })

	ret := make([]lapTrain, 0)
	current := make([]string, 0)
	for i, l := range ordered {
		// The leader of the field or of a new group starts a fresh train.
		if i == 0 || l.GapAhead <= 0 || l.GapAhead > gapThreshold {
			if len(current) >= minCars {
				ret = append(ret, lapTrain{drivers: current})
			}
			current = []string{l.Driver}
			continue
		}
		current = append(current, l.Driver)
	}
	if len(current) >= minCars {
		ret = append(ret, lapTrain{drivers: current})
	}
	return ret
}
