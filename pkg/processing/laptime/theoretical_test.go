//nolint:funlen // ok for tests
package laptime

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hamzanaeem10/ApexAnalyst/pkg/model"
)

func lapWithSectors(driver string, lapNumber int, s1, s2, s3 float64) model.Lap {
	return model.Lap{
		Driver:      driver,
		LapNumber:   lapNumber,
		LapTime:     s1 + s2 + s3,
		SectorTimes: [3]float64{s1, s2, s3},
		IsAccurate:  true,
	}
}

func TestTheoreticalBest_CombinesBestSectors(t *testing.T) {
	laps := []model.Lap{
		lapWithSectors("VER", 1, 30.0, 31.0, 29.5),
		lapWithSectors("VER", 2, 29.8, 31.5, 29.0),
		lapWithSectors("VER", 3, 30.2, 30.8, 29.8),
	}
	best, err := TheoreticalBest(laps, "VER")
	assert.NoError(t, err)
	assert.InDelta(t, 29.8, best.BestSectors[0], 1e-9)
	assert.InDelta(t, 30.8, best.BestSectors[1], 1e-9)
	assert.InDelta(t, 29.0, best.BestSectors[2], 1e-9)
	assert.Equal(t, [3]int{2, 3, 2}, best.SectorLaps)
	assert.InDelta(t, 89.6, best.Theoretical, 1e-9)
	assert.InDelta(t, 90.3, best.ActualBest, 1e-9)
	assert.InDelta(t, 0.7, best.Gap, 1e-9)
}

func TestTheoreticalBest_NeverBeatsActual(t *testing.T) {
	laps := []model.Lap{
		lapWithSectors("VER", 1, 30.0, 31.0, 29.5),
		lapWithSectors("VER", 2, 29.8, 31.5, 29.0),
		lapWithSectors("VER", 3, 30.2, 30.8, 29.8),
		lapWithSectors("VER", 4, 29.9, 30.9, 29.2),
	}
	best, err := TheoreticalBest(laps, "VER")
	assert.NoError(t, err)
	assert.LessOrEqual(t, best.Theoretical, best.ActualBest)
	assert.GreaterOrEqual(t, best.Gap, 0.0)
}

func TestTheoreticalBest_SingleLapIsItsOwnIdeal(t *testing.T) {
	laps := []model.Lap{lapWithSectors("VER", 1, 30.0, 31.0, 29.5)}
	best, err := TheoreticalBest(laps, "VER")
	assert.NoError(t, err)
	assert.InDelta(t, best.ActualBest, best.Theoretical, 1e-9)
	assert.InDelta(t, 0, best.Gap, 1e-9)
}

func TestTheoreticalBest_IgnoresIncompleteLaps(t *testing.T) {
	incomplete := model.Lap{
		Driver: "VER", LapNumber: 2, LapTime: 80,
		SectorTimes: [3]float64{30, 0, 29}, IsAccurate: true,
	}
	laps := []model.Lap{lapWithSectors("VER", 1, 30.0, 31.0, 29.5), incomplete}
	best, err := TheoreticalBest(laps, "VER")
	assert.NoError(t, err)
	assert.InDelta(t, 90.5, best.Theoretical, 1e-9)
}

func TestTheoreticalBest_UnknownDriver(t *testing.T) {
	_, err := TheoreticalBest([]model.Lap{lapWithSectors("VER", 1, 30, 31, 29)}, "HAM")
	assert.Error(t, err)
}

func TestGrid_RanksByTheoretical(t *testing.T) {
	laps := []model.Lap{
		lapWithSectors("VER", 1, 29.0, 30.0, 29.0),
		lapWithSectors("VER", 2, 29.5, 29.5, 29.5),
		lapWithSectors("LEC", 1, 30.0, 30.0, 30.0),
	}
	grid, err := Grid(laps)
	assert.NoError(t, err)
	assert.Len(t, grid.Entries, 2)
	assert.Equal(t, "VER", grid.Entries[0].Driver)
	assert.InDelta(t, 0, grid.Entries[0].GapToBest, 1e-9)
	assert.Equal(t, "LEC", grid.Entries[1].Driver)
	assert.Greater(t, grid.Entries[1].GapToBest, 0.0)
}

func TestGrid_CompositeCreditsSectorOwners(t *testing.T) {
	laps := []model.Lap{
		lapWithSectors("VER", 1, 28.5, 30.5, 30.0),
		lapWithSectors("LEC", 3, 29.0, 29.5, 29.0),
	}
	grid, err := Grid(laps)
	assert.NoError(t, err)
	assert.Equal(t, "VER", grid.Sectors[0].Driver)
	assert.Equal(t, 1, grid.Sectors[0].Lap)
	assert.Equal(t, "LEC", grid.Sectors[1].Driver)
	assert.Equal(t, "LEC", grid.Sectors[2].Driver)
	assert.InDelta(t, 87.0, grid.Composite, 1e-9)
	// LEC's own ideal lap is 87.5, half a second off the composite
	assert.Equal(t, "LEC", grid.Entries[0].Driver)
	assert.InDelta(t, 0.5, grid.Entries[0].DeltaToOverall, 1e-9)
	assert.InDelta(t, 2.0, grid.Entries[1].DeltaToOverall, 1e-9)
}

func TestGrid_PartialLapContendsInTimedSectors(t *testing.T) {
	partial := model.Lap{
		Driver: "HAM", LapNumber: 1,
		SectorTimes: [3]float64{27.0, 0, 0}, IsAccurate: true,
	}
	laps := []model.Lap{lapWithSectors("VER", 1, 28.0, 30.0, 29.0), partial}
	grid, err := Grid(laps)
	assert.NoError(t, err)
	assert.Equal(t, "HAM", grid.Sectors[0].Driver)
	assert.InDelta(t, 27.0, grid.Sectors[0].Time, 1e-9)
	// HAM has no complete lap, so only VER is ranked
	assert.Len(t, grid.Entries, 1)
	assert.Equal(t, "VER", grid.Entries[0].Driver)
}

func TestSectorConsistency_ReportsSpread(t *testing.T) {
	laps := []model.Lap{
		lapWithSectors("VER", 1, 30.0, 31.0, 29.0),
		lapWithSectors("VER", 2, 30.2, 31.0, 29.4),
		lapWithSectors("VER", 3, 30.4, 31.0, 29.8),
	}
	consistency, err := SectorConsistency(laps, "VER")
	assert.NoError(t, err)
	assert.Equal(t, 3, consistency.LapCount)
	assert.InDelta(t, 30.2, consistency.Mean[0], 1e-9)
	assert.InDelta(t, 0, consistency.StdDev[1], 1e-9)
	assert.Greater(t, consistency.StdDev[2], consistency.StdDev[0])
}
