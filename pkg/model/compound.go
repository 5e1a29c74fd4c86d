package model

import "strings"

// Compound is the normalized tire compound name.
type Compound string

const (
	CompoundSoft         Compound = "SOFT"
	CompoundMedium       Compound = "MEDIUM"
	CompoundHard         Compound = "HARD"
	CompoundIntermediate Compound = "INTERMEDIATE"
	CompoundWet          Compound = "WET"
	CompoundUnknown      Compound = "UNKNOWN"
)

// KnownCompounds in display order (slick first, then rain tires).
var KnownCompounds = []Compound{
	CompoundSoft, CompoundMedium, CompoundHard,
	CompoundIntermediate, CompoundWet,
}

// ParseCompound normalizes upstream compound names.
// Anything not in the enumerated set maps to UNKNOWN.
func ParseCompound(arg string) Compound {
	switch strings.ToUpper(strings.TrimSpace(arg)) {
	case "SOFT", "S":
		return CompoundSoft
	case "MEDIUM", "M":
		return CompoundMedium
	case "HARD", "H":
		return CompoundHard
	case "INTERMEDIATE", "INTER", "I":
		return CompoundIntermediate
	case "WET", "W":
		return CompoundWet
	default:
		return CompoundUnknown
	}
}
