package segment

import (
	"sort"

	"github.com/hamzanaeem10/ApexAnalyst/pkg/model"
	"github.com/hamzanaeem10/ApexAnalyst/pkg/processing/telemetry"
	"github.com/hamzanaeem10/ApexAnalyst/pkg/processing/util"
)

const (
	DefaultMiniSectors = 25
	minMiniSectors     = 10
	maxMiniSectors     = 50
)

// MiniSectors splits the lap into count equal-length slices and finds the
// fastest driver through each, using every driver's fastest lap. A slice
// only some drivers cover still ranks the ones that do. An exact tie goes
// to the first driver in name order.
func MiniSectors(sess *model.Session, count int) (*model.MiniSectorReport, error) {
	if count <= 0 {
		count = DefaultMiniSectors
	}
	if count < minMiniSectors {
		count = minMiniSectors
	}
	if count > maxMiniSectors {
		count = maxMiniSectors
	}
	if sess.Track.TrackLength <= 0 {
		return nil, &util.DataError{Op: "minisectors", Detail: "track length unknown"}
	}

	laps := make(map[string]*model.ResampledChannels)
	for _, driver := range sess.Drivers() {
		fastest, ok := sess.FastestLap(driver, true)
		if !ok {
			continue
		}
		samples := sess.LapTelemetry(driver, fastest.LapNumber)
		channels, err := telemetry.Resample(driver, fastest.LapNumber, samples, telemetry.DefaultStep)
		if err != nil {
			continue
		}
		laps[driver] = channels
	}
	if len(laps) == 0 {
		return nil, &util.DataError{Op: "minisectors", Detail: "no lap with telemetry"}
	}
	drivers := make([]string, 0, len(laps))
	for driver := range laps {
		drivers = append(drivers, driver)
	}
	sort.Strings(drivers)

	width := sess.Track.TrackLength / float64(count)
	ret := &model.MiniSectorReport{
		Sectors:   make([]model.MiniSector, 0, count),
		Dominance: make(map[string]int),
	}
	for i := 0; i < count; i++ {
		sector := model.MiniSector{
			Index:         i,
			StartDistance: float64(i) * width,
			EndDistance:   float64(i+1) * width,
		}
		bestTime := 0.0
		for _, driver := range drivers {
			channels := laps[driver]
			tStart, okStart := timeAt(channels, sector.StartDistance)
			tEnd, okEnd := timeAt(channels, sector.EndDistance)
			if !okStart || !okEnd {
				continue
			}
			elapsed := tEnd - tStart
			if sector.FastestDriver == "" || elapsed < bestTime {
				sector.FastestDriver = driver
				bestTime = elapsed
			}
		}
		if sector.FastestDriver != "" {
			sector.FastestTime = bestTime
			ret.Dominance[sector.FastestDriver]++
		}
		ret.Sectors = append(ret.Sectors, sector)
	}
	return ret, nil
}
