//nolint:funlen // ok for tests
package tyre

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/hamzanaeem10/ApexAnalyst/pkg/model"
	"github.com/hamzanaeem10/ApexAnalyst/testsupport/basedata"
)

func TestCurveFor_RecoversLinearModel(t *testing.T) {
	laps := basedata.DegradationLaps(model.CompoundMedium, 90, 0.05, 15)
	curve, err := CurveFor(CleanLaps(laps), model.CompoundMedium)
	assert.NoError(t, err)
	assert.NotNil(t, curve.Rate)
	assert.InDelta(t, 0.05, *curve.Rate, 1e-6)
	assert.InDelta(t, 90, curve.Intercept, 1e-6)
	assert.InDelta(t, 1.0, curve.RSquared, 1e-6)
	assert.False(t, curve.LowConfidence)
}

func TestCurveFor_NoisyDataStillFits(t *testing.T) {
	laps := basedata.DegradationLaps(model.CompoundSoft, 88, 0.08, 15)
	// deterministic noise per tyre-age bucket
	for i := range laps {
		if laps[i].TyreAge%2 == 0 {
			laps[i].LapTime += 0.01
		} else {
			laps[i].LapTime -= 0.01
		}
	}
	curve, err := CurveFor(CleanLaps(laps), model.CompoundSoft)
	assert.NoError(t, err)
	assert.NotNil(t, curve.Rate)
	assert.InDelta(t, 0.08, *curve.Rate, 0.01)
	assert.Greater(t, curve.RSquared, 0.95)
}

func TestCurveFor_TooFewBuckets(t *testing.T) {
	laps := basedata.DegradationLaps(model.CompoundHard, 91, 0.03, 4)
	// ages 1 is filtered as out-lap, leaving ages 2..4, trim to 2 buckets
	laps = CleanLaps(laps)
	short := make([]model.Lap, 0)
	for _, l := range laps {
		if l.TyreAge <= 3 {
			short = append(short, l)
		}
	}
	curve, err := CurveFor(short, model.CompoundHard)
	assert.NoError(t, err)
	assert.Nil(t, curve.Rate)
	assert.True(t, curve.LowConfidence)
}

func TestCleanLaps_FiltersOutAndInLaps(t *testing.T) {
	laps := []model.Lap{
		{Driver: "VER", LapNumber: 1, LapTime: 95, TyreAge: 1, Stint: 1, IsAccurate: true},
		{Driver: "VER", LapNumber: 2, LapTime: 90, TyreAge: 2, Stint: 1, IsAccurate: true},
		{Driver: "VER", LapNumber: 3, LapTime: 96, TyreAge: 3, Stint: 1, IsAccurate: true}, // in-lap
		{Driver: "VER", LapNumber: 4, LapTime: 94, TyreAge: 1, Stint: 2, IsAccurate: true},
		{Driver: "VER", LapNumber: 5, LapTime: 91, TyreAge: 2, Stint: 2, IsAccurate: true},
		{Driver: "VER", LapNumber: 6, LapTime: 0, TyreAge: 3, Stint: 2, IsAccurate: true},
		{Driver: "VER", LapNumber: 7, LapTime: 92, TyreAge: 4, Stint: 2, IsAccurate: false},
	}
	got := CleanLaps(laps)
	lapNumbers := make([]int, 0, len(got))
	for _, l := range got {
		lapNumbers = append(lapNumbers, l.LapNumber)
	}
	assert.Equal(t, []int{2, 5}, lapNumbers)
}

func TestCurves_OnePerCompound(t *testing.T) {
	laps := basedata.DegradationLaps(model.CompoundMedium, 90, 0.05, 10)
	laps = append(laps, basedata.DegradationLaps(model.CompoundSoft, 88, 0.08, 10)...)
	curves := Curves(CleanLaps(laps))
	assert.Len(t, curves, 2)
	// soft before medium, in display order
	assert.Equal(t, model.CompoundSoft, curves[0].Compound)
	assert.Equal(t, model.CompoundMedium, curves[1].Compound)
}

func TestCurves_Deterministic(t *testing.T) {
	laps := basedata.DegradationLaps(model.CompoundMedium, 90, 0.05, 12)
	first := Curves(CleanLaps(laps))
	second := Curves(CleanLaps(laps))
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("curves not deterministic (-first +second):\n%s", diff)
	}
}
