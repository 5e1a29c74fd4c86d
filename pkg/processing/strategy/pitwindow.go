package strategy

import (
	"github.com/hamzanaeem10/ApexAnalyst/pkg/model"
	"github.com/hamzanaeem10/ApexAnalyst/pkg/processing/util"
)

// DefaultPitTimeLoss is the total time lost by a pit stop (pit lane
// transit plus the standstill) when the caller provides none.
const DefaultPitTimeLoss = 22.0

// fallbackRates are used when no fitted degradation curve is available
// for a compound.
var fallbackRates = map[model.Compound]float64{
	model.CompoundSoft:         0.08,
	model.CompoundMedium:       0.05,
	model.CompoundHard:         0.03,
	model.CompoundIntermediate: 0.10,
	model.CompoundWet:          0.10,
}

type (
	// Request describes one pit window computation.
	Request struct {
		Driver       string
		CurrentLap   int
		CurrentAge   int
		TotalLaps    int
		Compound     model.Compound
		NextCompound model.Compound
		PitTimeLoss  float64
		// Curves supplies fitted degradation models keyed by compound.
		// Missing entries fall back to historical per-compound rates.
		Curves map[model.Compound]*model.DegradationCurve
	}
)

func ratePerLap(curves map[model.Compound]*model.DegradationCurve, c model.Compound) float64 {
	if curve, ok := curves[c]; ok && curve.Rate != nil {
		// A negative fitted rate (track evolution outpacing wear) is
		// floored to zero here; the planner prices tyre wear only. The
		// degradation report keeps the signed rate.
		if *curve.Rate > 0 {
			return *curve.Rate
		}
		return 0
	}
	if rate, ok := fallbackRates[c]; ok {
		return rate
	}
	return fallbackRates[model.CompoundMedium]
}

// Compute finds the pit lap minimizing total time lost over the remaining
// race: degradation accumulated on the current set until the stop, the
// stop itself, and degradation on the new set afterwards. Staying out to
// the end is modeled as the candidate without a stop.
func Compute(req Request) (*model.PitWindow, error) {
	if req.CurrentLap >= req.TotalLaps {
		return nil, &util.DataError{
			Op:     "pitwindow",
			Detail: "no laps remaining",
		}
	}
	pitLoss := req.PitTimeLoss
	if pitLoss <= 0 {
		pitLoss = DefaultPitTimeLoss
	}
	rateCur := ratePerLap(req.Curves, req.Compound)
	rateNext := ratePerLap(req.Curves, req.NextCompound)

	// cost[L] for candidate pit laps currentLap+1 .. totalLaps, where
	// L == totalLaps means no stop at all.
	cost := make(map[int]float64)
	for pitLap := req.CurrentLap + 1; pitLap <= req.TotalLaps; pitLap++ {
		var c float64
		for k := req.CurrentLap + 1; k <= pitLap; k++ {
			age := req.CurrentAge + (k - req.CurrentLap)
			c += rateCur * float64(age)
		}
		if pitLap < req.TotalLaps {
			c += pitLoss
			for k := pitLap + 1; k <= req.TotalLaps; k++ {
				c += rateNext * float64(k-pitLap)
			}
		}
		cost[pitLap] = c
	}

	optimal := req.CurrentLap + 1
	for pitLap := req.CurrentLap + 1; pitLap <= req.TotalLaps; pitLap++ {
		if cost[pitLap] < cost[optimal] {
			optimal = pitLap
		}
	}

	ret := &model.PitWindow{
		Driver:       req.Driver,
		CurrentLap:   req.CurrentLap,
		OptimalLap:   optimal,
		PitTimeLoss:  pitLoss,
		NextCompound: req.NextCompound,
		StayOut:      optimal == req.TotalLaps,
	}
	if ret.StayOut {
		return ret, nil
	}

	// The undercut/overcut windows collect the contiguous laps around the
	// optimum whose extra cost stays within half a pit stop.
	margin := pitLoss / 2
	lo := optimal
	for lo-1 > req.CurrentLap && cost[lo-1]-cost[optimal] <= margin {
		lo--
	}
	hi := optimal
	for hi+1 < req.TotalLaps && cost[hi+1]-cost[optimal] <= margin {
		hi++
	}
	if lo < optimal {
		ret.Undercut = &model.LapRange{From: lo, To: optimal - 1}
	}
	if hi > optimal {
		ret.Overcut = &model.LapRange{From: optimal + 1, To: hi}
	}
	return ret, nil
}
