package weather

import (
	"sort"

	"github.com/samber/lo"

	"github.com/hamzanaeem10/ApexAnalyst/pkg/model"
	"github.com/hamzanaeem10/ApexAnalyst/pkg/processing/util"
)

// trend slope thresholds in seconds per lap.
const evolutionSlopeEps = 0.01

// TrackEvolution fits the development of the per-lap benchmark time over
// the session. The benchmark of a lap is the fastest clean time anyone set
// on it, so traffic and individual tire state mostly cancel out.
func TrackEvolution(sess *model.Session) (*model.TrackEvolution, error) {
	clean := sess.AccurateLaps()
	bestByLap := make(map[int]float64)
	for _, l := range clean {
		if best, ok := bestByLap[l.LapNumber]; !ok || l.LapTime < best {
			bestByLap[l.LapNumber] = l.LapTime
		}
	}
	if len(bestByLap) < 3 {
		return nil, &util.DataError{Op: "evolution", Detail: "not enough timed laps"}
	}
	lapNumbers := lo.Keys(bestByLap)
	sort.Ints(lapNumbers)
	xs := lo.Map(lapNumbers, func(n int, _ int) float64 { return float64(n) })
	ys := lo.Map(lapNumbers, func(n int, _ int) float64 { return bestByLap[n] })
	_, slope, _ := util.LinearFit(xs, ys)

	ret := &model.TrackEvolution{Slope: slope}
	switch {
	case slope < -evolutionSlopeEps:
		ret.Trend = "improving"
	case slope > evolutionSlopeEps:
		ret.Trend = "degrading"
	default:
		ret.Trend = "stable"
	}
	// Grip score centered at 50, saturating at half a second per lap of drift.
	grip := 50 - slope*100
	if grip < 0 {
		grip = 0
	}
	if grip > 100 {
		grip = 100
	}
	ret.GripLevel = grip
	return ret, nil
}
