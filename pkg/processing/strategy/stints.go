package strategy

import (
	"sort"

	"github.com/samber/lo"

	"github.com/hamzanaeem10/ApexAnalyst/pkg/model"
	"github.com/hamzanaeem10/ApexAnalyst/pkg/processing/util"
)

// Stints breaks a driver's race into continuous runs on one tire set and
// summarizes each. Within-stint degradation is fitted over the timed laps
// when at least three exist.
func Stints(laps []model.Lap, driver string) ([]model.StintSummary, error) {
	own := lo.Filter(laps, func(l model.Lap, _ int) bool { return l.Driver == driver })
	if len(own) == 0 {
		return nil, util.ErrUnknownDriver
	}
	byStint := lo.GroupBy(own, func(l model.Lap) int { return l.Stint })
	stints := lo.Keys(byStint)
	sort.Ints(stints)

	ret := make([]model.StintSummary, 0, len(stints))
	for _, stint := range stints {
		group := byStint[stint]
		sort.Slice(group, func(i, j int) bool { return group[i].LapNumber < group[j].LapNumber })
		summary := model.StintSummary{
			Driver:   driver,
			Stint:    stint,
			Compound: group[0].Compound,
			Laps: model.LapRange{
				From: group[0].LapNumber,
				To:   group[len(group)-1].LapNumber,
			},
			LapCount: len(group),
		}
		timed := lo.Filter(group, func(l model.Lap, _ int) bool {
			return l.IsAccurate && l.LapTime > 0
		})
		if len(timed) > 0 {
			times := lo.Map(timed, func(l model.Lap, _ int) float64 { return l.LapTime })
			summary.BestTime = lo.Min(times)
			summary.MeanTime = util.Mean(times)
		}
		if len(timed) >= 3 {
			xs := lo.Map(timed, func(l model.Lap, _ int) float64 { return float64(l.TyreAge) })
			times := lo.Map(timed, func(l model.Lap, _ int) float64 { return l.LapTime })
			_, beta, _ := util.LinearFit(xs, times)
			summary.Degradation = &beta
		}
		ret = append(ret, summary)
	}
	return ret, nil
}
