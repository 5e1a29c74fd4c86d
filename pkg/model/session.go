package model

// Session holds all normalized data of one loaded session.
// It is built once by the loader and read-only afterwards.
type Session struct {
	Name      string          `json:"name"`
	Circuit   string          `json:"circuit"`
	TotalLaps int             `json:"totalLaps"`
	Laps      []Lap           `json:"laps"`
	Telemetry TelemetrySet    `json:"telemetry"`
	Weather   []WeatherSample `json:"weather"`
	Track     TrackGeometry   `json:"track"`
}

// TelemetrySet maps driver -> lap number -> ordered samples
type TelemetrySet map[string]map[int][]TelemetrySample

type Lap struct {
	Driver      string     `json:"driver"`
	Team        string     `json:"team,omitempty"`
	LapNumber   int        `json:"lapNumber"`
	LapTime     float64    `json:"lapTime"` // seconds
	SectorTimes [3]float64 `json:"sectorTimes"`
	Compound    Compound   `json:"compound"`
	TyreAge     int        `json:"tyreAge"` // laps since the tire was fitted
	Stint       int        `json:"stint"`
	Position    int        `json:"position,omitempty"`
	GapAhead    float64    `json:"gapAhead,omitempty"` // seconds to car ahead at lap end
	IsAccurate  bool       `json:"isAccurate"`
	TrackStatus string     `json:"trackStatus,omitempty"`
	StartOffset float64    `json:"startOffset"` // session time offset of lap start
}

type TelemetrySample struct {
	TimeOffset float64 `json:"timeOffset"` // seconds from lap start
	Distance   float64 `json:"distance"`   // meters from lap start
	Speed      float64 `json:"speed"`      // km/h
	Throttle   float64 `json:"throttle"`   // 0..100
	Brake      float64 `json:"brake"`      // 0..100
	Gear       int     `json:"gear"`
	X          float64 `json:"x,omitempty"`
	Y          float64 `json:"y,omitempty"`
}

type WeatherSample struct {
	TimeOffset    float64 `json:"timeOffset"` // seconds from session start
	TrackTemp     float64 `json:"trackTemp"`
	AirTemp       float64 `json:"airTemp"`
	Humidity      float64 `json:"humidity"`
	Pressure      float64 `json:"pressure"`
	WindSpeed     float64 `json:"windSpeed"`
	WindDirection float64 `json:"windDirection"` // degrees, 0 = north
	Rainfall      bool    `json:"rainfall"`
}

type TrackGeometry struct {
	TrackLength   float64     `json:"trackLength"` // meters
	ReferencePath []PathPoint `json:"referencePath,omitempty"`
}

type PathPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Drivers returns the distinct drivers in lap order of first appearance.
func (s *Session) Drivers() []string {
	seen := make(map[string]struct{})
	ret := make([]string, 0)
	for i := range s.Laps {
		d := s.Laps[i].Driver
		if _, ok := seen[d]; !ok {
			seen[d] = struct{}{}
			ret = append(ret, d)
		}
	}
	return ret
}

// DriverLaps returns all laps of a driver ordered by lap number.
// The underlying session data is already ordered.
func (s *Session) DriverLaps(driver string) []Lap {
	ret := make([]Lap, 0)
	for i := range s.Laps {
		if s.Laps[i].Driver == driver {
			ret = append(ret, s.Laps[i])
		}
	}
	return ret
}

// AccurateLaps returns all laps flagged accurate with a valid lap time.
func (s *Session) AccurateLaps() []Lap {
	ret := make([]Lap, 0)
	for i := range s.Laps {
		if s.Laps[i].IsAccurate && s.Laps[i].LapTime > 0 {
			ret = append(ret, s.Laps[i])
		}
	}
	return ret
}

// LapTelemetry returns the samples of one lap or nil when not recorded.
func (s *Session) LapTelemetry(driver string, lapNumber int) []TelemetrySample {
	byLap, ok := s.Telemetry[driver]
	if !ok {
		return nil
	}
	return byLap[lapNumber]
}

// FastestLap returns the fastest timed lap of a driver and true on success.
// When accurateOnly is set, laps flagged inaccurate are skipped.
func (s *Session) FastestLap(driver string, accurateOnly bool) (Lap, bool) {
	var best Lap
	found := false
	for i := range s.Laps {
		l := s.Laps[i]
		if l.Driver != driver || l.LapTime <= 0 {
			continue
		}
		if accurateOnly && !l.IsAccurate {
			continue
		}
		if !found || l.LapTime < best.LapTime {
			best = l
			found = true
		}
	}
	return best, found
}
