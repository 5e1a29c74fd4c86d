package laptime

import (
	"sort"

	"github.com/samber/lo"

	"github.com/hamzanaeem10/ApexAnalyst/pkg/model"
	"github.com/hamzanaeem10/ApexAnalyst/pkg/processing/util"
)

// TheoreticalBest combines a driver's best individual sectors into an
// ideal lap. Only laps with all three sectors timed contribute, so the
// result can never beat a sector the driver actually drove.
func TheoreticalBest(laps []model.Lap, driver string) (*model.TheoreticalBest, error) {
	own := lo.Filter(laps, func(l model.Lap, _ int) bool {
		return l.Driver == driver && l.IsAccurate && sectorsComplete(l)
	})
	if len(own) == 0 {
		return nil, &util.DataError{
			Op:     "theoretical",
			Detail: "no lap with complete sector times for " + driver,
		}
	}

	ret := &model.TheoreticalBest{Driver: driver}
	for s := 0; s < 3; s++ {
		for _, l := range own {
			if ret.BestSectors[s] == 0 || l.SectorTimes[s] < ret.BestSectors[s] {
				ret.BestSectors[s] = l.SectorTimes[s]
				ret.SectorLaps[s] = l.LapNumber
			}
		}
		ret.Theoretical += ret.BestSectors[s]
	}
	best := lo.MinBy(own, func(a, b model.Lap) bool { return a.LapTime < b.LapTime })
	ret.ActualBest = best.LapTime
	ret.Gap = ret.ActualBest - ret.Theoretical
	return ret, nil
}

// Grid builds the composite lap from the field-wide best sectors,
// crediting each sector to the driver who set it, and ranks every
// driver's personal theoretical best against that composite. A lap with
// only some sectors timed still contends in the sectors it has.
func Grid(laps []model.Lap) (*model.TheoreticalGrid, error) {
	ret := &model.TheoreticalGrid{}
	for s := 0; s < 3; s++ {
		sec := &ret.Sectors[s]
		for _, l := range laps {
			if !l.IsAccurate || l.SectorTimes[s] <= 0 {
				continue
			}
			if sec.Driver == "" || l.SectorTimes[s] < sec.Time {
				*sec = model.CompositeSector{
					Time:   l.SectorTimes[s],
					Driver: l.Driver,
					Lap:    l.LapNumber,
				}
			}
		}
		if sec.Driver == "" {
			return nil, &util.DataError{Op: "theoretical", Detail: "no timed sectors"}
		}
		ret.Composite += sec.Time
	}

	drivers := lo.Uniq(lo.Map(laps, func(l model.Lap, _ int) string { return l.Driver }))
	for _, driver := range drivers {
		best, err := TheoreticalBest(laps, driver)
		if err != nil {
			continue
		}
		best.DeltaToOverall = best.Theoretical - ret.Composite
		ret.Entries = append(ret.Entries, *best)
	}
	if len(ret.Entries) == 0 {
		return nil, &util.DataError{Op: "theoretical", Detail: "no driver with complete laps"}
	}
	sort.SliceStable(ret.Entries, func(i, j int) bool {
		return ret.Entries[i].Theoretical < ret.Entries[j].Theoretical
	})
	for i := range ret.Entries {
		ret.Entries[i].GapToBest = ret.Entries[i].Theoretical - ret.Entries[0].Theoretical
	}
	return ret, nil
}

// SectorConsistency reports the per-sector spread over a driver's clean laps.
func SectorConsistency(laps []model.Lap, driver string) (*model.SectorConsistency, error) {
	own := lo.Filter(laps, func(l model.Lap, _ int) bool {
		return l.Driver == driver && l.IsAccurate && sectorsComplete(l)
	})
	if len(own) < 2 {
		return nil, &util.DataError{
			Op:     "consistency",
			Detail: "need at least 2 complete laps for " + driver,
		}
	}
	ret := &model.SectorConsistency{Driver: driver, LapCount: len(own)}
	for s := 0; s < 3; s++ {
		times := lo.Map(own, func(l model.Lap, _ int) float64 { return l.SectorTimes[s] })
		ret.Mean[s] = util.Mean(times)
		ret.StdDev[s] = util.StdDev(times)
	}
	return ret, nil
}

func sectorsComplete(l model.Lap) bool {
	return l.SectorTimes[0] > 0 && l.SectorTimes[1] > 0 && l.SectorTimes[2] > 0
}
