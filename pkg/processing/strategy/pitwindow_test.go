//nolint:funlen // ok for tests
package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hamzanaeem10/ApexAnalyst/pkg/model"
)

func curveWithRate(compound model.Compound, rate float64) *model.DegradationCurve {
	return &model.DegradationCurve{Compound: compound, Rate: &rate}
}

func sampleRequest() Request {
	return Request{
		Driver:       "VER",
		CurrentLap:   10,
		CurrentAge:   10,
		TotalLaps:    50,
		Compound:     model.CompoundSoft,
		NextCompound: model.CompoundHard,
		PitTimeLoss:  22.0,
		Curves: map[model.Compound]*model.DegradationCurve{
			model.CompoundSoft: curveWithRate(model.CompoundSoft, 0.08),
			model.CompoundHard: curveWithRate(model.CompoundHard, 0.02),
		},
	}
}

func TestCompute_FindsWindow(t *testing.T) {
	window, err := Compute(sampleRequest())
	assert.NoError(t, err)
	assert.False(t, window.StayOut)
	assert.Greater(t, window.OptimalLap, window.CurrentLap)
	assert.Less(t, window.OptimalLap, 50)
	if window.Undercut != nil {
		assert.Less(t, window.Undercut.To, window.OptimalLap)
		assert.Greater(t, window.Undercut.From, window.CurrentLap)
	}
	if window.Overcut != nil {
		assert.Greater(t, window.Overcut.From, window.OptimalLap)
	}
}

func TestCompute_MonotonicInPitLoss(t *testing.T) {
	prev := 0
	for _, pitLoss := range []float64{5, 10, 20, 40, 80, 160} {
		req := sampleRequest()
		req.PitTimeLoss = pitLoss
		window, err := Compute(req)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, window.OptimalLap, prev,
			"optimal lap moved earlier when pitting got more expensive (loss=%v)", pitLoss)
		prev = window.OptimalLap
	}
}

func TestCompute_HugePitLossMeansStayOut(t *testing.T) {
	req := sampleRequest()
	req.PitTimeLoss = 10000
	window, err := Compute(req)
	assert.NoError(t, err)
	assert.True(t, window.StayOut)
	assert.Equal(t, 50, window.OptimalLap)
	assert.Nil(t, window.Undercut)
	assert.Nil(t, window.Overcut)
}

func TestCompute_NoLapsRemaining(t *testing.T) {
	req := sampleRequest()
	req.CurrentLap = 50
	_, err := Compute(req)
	assert.Error(t, err)
}

func TestCompute_FallbackRates(t *testing.T) {
	req := sampleRequest()
	req.Curves = nil
	window, err := Compute(req)
	assert.NoError(t, err)
	assert.Greater(t, window.OptimalLap, window.CurrentLap)
}

func TestStints_SplitsByTireSet(t *testing.T) {
	laps := []model.Lap{
		{Driver: "VER", LapNumber: 1, LapTime: 92, TyreAge: 1, Stint: 1, Compound: model.CompoundSoft, IsAccurate: true},
		{Driver: "VER", LapNumber: 2, LapTime: 91, TyreAge: 2, Stint: 1, Compound: model.CompoundSoft, IsAccurate: true},
		{Driver: "VER", LapNumber: 3, LapTime: 91.5, TyreAge: 3, Stint: 1, Compound: model.CompoundSoft, IsAccurate: true},
		{Driver: "VER", LapNumber: 4, LapTime: 93, TyreAge: 1, Stint: 2, Compound: model.CompoundHard, IsAccurate: true},
		{Driver: "VER", LapNumber: 5, LapTime: 92.5, TyreAge: 2, Stint: 2, Compound: model.CompoundHard, IsAccurate: true},
	}
	stints, err := Stints(laps, "VER")
	assert.NoError(t, err)
	assert.Len(t, stints, 2)
	assert.Equal(t, model.CompoundSoft, stints[0].Compound)
	assert.Equal(t, model.LapRange{From: 1, To: 3}, stints[0].Laps)
	assert.Equal(t, 3, stints[0].LapCount)
	assert.InDelta(t, 91, stints[0].BestTime, 1e-9)
	assert.NotNil(t, stints[0].Degradation)
	assert.Nil(t, stints[1].Degradation)
	assert.Equal(t, model.CompoundHard, stints[1].Compound)
}

func TestStints_UnknownDriver(t *testing.T) {
	_, err := Stints([]model.Lap{{Driver: "VER", LapNumber: 1}}, "HAM")
	assert.Error(t, err)
}
