package events

import (
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hamzanaeem10/ApexAnalyst/pkg/model"
	"github.com/hamzanaeem10/ApexAnalyst/pkg/processing/util"
)

// defaultBaseRate applies to circuits without a historical entry.
const defaultBaseRate = 0.45

// baseRates holds historical per-race safety car probabilities keyed by
// lowercased circuit name.
var baseRates = map[string]float64{
	"monaco":    0.75,
	"singapore": 0.70,
	"baku":      0.65,
	"jeddah":    0.60,
	"melbourne": 0.55,
}

// LoadBaseRates replaces the built-in base rate table from a yaml file
// mapping circuit name to probability.
func LoadBaseRates(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	loaded := make(map[string]float64)
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return err
	}
	normalized := make(map[string]float64, len(loaded))
	for circuit, rate := range loaded {
		normalized[strings.ToLower(circuit)] = rate
	}
	baseRates = normalized
	return nil
}

// BaseRate returns the historical safety car probability for a circuit.
func BaseRate(circuit string) float64 {
	if rate, ok := baseRates[strings.ToLower(circuit)]; ok {
		return rate
	}
	return defaultBaseRate
}

// SafetyCar detects safety car and virtual safety car phases from the
// per-lap track status and combines them with the circuit base rate.
// Status codes follow the timing feed convention: '4' marks a safety car,
// '6' a virtual safety car. A full safety car outranks a VSC on the same lap.
func SafetyCar(sess *model.Session) (*model.SafetyCarReport, error) {
	if len(sess.Laps) == 0 {
		return nil, &util.DataError{Op: "safetycar", Detail: "no laps"}
	}
	kindByLap := make(map[int]string)
	for _, l := range sess.Laps {
		switch {
		case strings.Contains(l.TrackStatus, "4"):
			kindByLap[l.LapNumber] = "SC"
		case strings.Contains(l.TrackStatus, "6"):
			if kindByLap[l.LapNumber] != "SC" {
				kindByLap[l.LapNumber] = "VSC"
			}
		}
	}

	lapNumbers := make([]int, 0, len(kindByLap))
	for n := range kindByLap {
		lapNumbers = append(lapNumbers, n)
	}
	sort.Ints(lapNumbers)

	ret := &model.SafetyCarReport{
		Circuit:   sess.Circuit,
		TotalLaps: sess.TotalLaps,
		BaseRate:  BaseRate(sess.Circuit),
		Phases:    make([]model.SafetyCarPhase, 0),
	}
	for i := 0; i < len(lapNumbers); {
		j := i
		for j+1 < len(lapNumbers) &&
			lapNumbers[j+1] == lapNumbers[j]+1 &&
			kindByLap[lapNumbers[j+1]] == kindByLap[lapNumbers[i]] {
			j++
		}
		ret.Phases = append(ret.Phases, model.SafetyCarPhase{
			Kind:     kindByLap[lapNumbers[i]],
			Laps:     model.LapRange{From: lapNumbers[i], To: lapNumbers[j]},
			LapCount: lapNumbers[j] - lapNumbers[i] + 1,
		})
		i = j + 1
	}
	return ret, nil
}
