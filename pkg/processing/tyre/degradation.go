package tyre

import (
	"sort"

	"github.com/samber/lo"

	"github.com/hamzanaeem10/ApexAnalyst/pkg/model"
	"github.com/hamzanaeem10/ApexAnalyst/pkg/processing/util"
)

const (
	// minBucketLaps is the minimum number of laps a tyre-age bucket needs
	// to contribute to a fit.
	minBucketLaps = 2
	// minFitBuckets is the minimum number of buckets for a regression.
	minFitBuckets = 3
	// minRSquared below which a fitted curve is flagged low confidence.
	minRSquared = 0.5
)

// CleanLaps filters the laps usable for degradation modeling: accurate,
// timed, not an out-lap (fresh tire warming up) and not the final lap of
// a stint (in-lap with a slow pit entry).
func CleanLaps(laps []model.Lap) []model.Lap {
	lastOfStint := make(map[string]map[int]int) // driver -> stint -> max lap number
	for _, l := range laps {
		if lastOfStint[l.Driver] == nil {
			lastOfStint[l.Driver] = make(map[int]int)
		}
		if l.LapNumber > lastOfStint[l.Driver][l.Stint] {
			lastOfStint[l.Driver][l.Stint] = l.LapNumber
		}
	}
	ret := make([]model.Lap, 0, len(laps))
	for _, l := range laps {
		if !l.IsAccurate || l.LapTime <= 0 {
			continue
		}
		if l.TyreAge <= 1 {
			continue
		}
		if l.LapNumber == lastOfStint[l.Driver][l.Stint] && l.Stint < maxStint(lastOfStint[l.Driver]) {
			continue
		}
		ret = append(ret, l)
	}
	return ret
}

func maxStint(stints map[int]int) int {
	ret := 0
	for s := range stints {
		if s > ret {
			ret = s
		}
	}
	return ret
}

// Curves fits one degradation curve per compound found in laps.
// The input should already be filtered through CleanLaps.
func Curves(laps []model.Lap) []model.DegradationCurve {
	byCompound := lo.GroupBy(laps, func(l model.Lap) model.Compound { return l.Compound })
	ret := make([]model.DegradationCurve, 0, len(byCompound))
	for _, c := range model.KnownCompounds {
		if group, ok := byCompound[c]; ok {
			ret = append(ret, *fitCurve(c, group))
		}
	}
	return ret
}

// CurveFor fits the degradation curve of a single compound.
func CurveFor(laps []model.Lap, compound model.Compound) (*model.DegradationCurve, error) {
	matching := lo.Filter(laps, func(l model.Lap, _ int) bool { return l.Compound == compound })
	if len(matching) == 0 {
		return nil, &util.DataError{
			Op:     "degradation",
			Detail: "no clean laps on compound " + string(compound),
		}
	}
	return fitCurve(compound, matching), nil
}

func fitCurve(compound model.Compound, laps []model.Lap) *model.DegradationCurve {
	byAge := lo.GroupBy(laps, func(l model.Lap) int { return l.TyreAge })
	points := make([]model.DegradationPoint, 0, len(byAge))
	for age, group := range byAge {
		if len(group) < minBucketLaps {
			continue
		}
		times := lo.Map(group, func(l model.Lap, _ int) float64 { return l.LapTime })
		points = append(points, model.DegradationPoint{
			TyreAge:    age,
			MedianTime: util.Median(times),
			StdDev:     util.StdDev(times),
			LapCount:   len(group),
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].TyreAge < points[j].TyreAge })

	ret := &model.DegradationCurve{Compound: compound, Points: points}
	if len(points) < minFitBuckets {
		ret.LowConfidence = true
		return ret
	}
	xs := lo.Map(points, func(p model.DegradationPoint, _ int) float64 { return float64(p.TyreAge) })
	ys := lo.Map(points, func(p model.DegradationPoint, _ int) float64 { return p.MedianTime })
	alpha, beta, rSquared := util.LinearFit(xs, ys)
	ret.Rate = &beta
	ret.Intercept = alpha
	ret.RSquared = rSquared
	ret.LowConfidence = rSquared < minRSquared
	return ret
}
