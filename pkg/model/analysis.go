package model

// Types in this file describe derived analysis artifacts. They carry enough
// provenance (drivers, laps, parameters) that a result can be interpreted
// without access to the inputs that produced it.

type (
	// ResampledChannels holds telemetry channels resampled onto a common
	// distance grid.
	ResampledChannels struct {
		Driver    string    `json:"driver"`
		LapNumber int       `json:"lapNumber"`
		Distance  []float64 `json:"distance"` // strictly increasing grid
		Time      []float64 `json:"time"`     // cumulative time at each checkpoint
		Speed     []float64 `json:"speed"`
		Throttle  []float64 `json:"throttle"`
		Brake     []float64 `json:"brake"`
		Gear      []int     `json:"gear"`
	}

	// DeltaPoint is one checkpoint of a delta trace.
	DeltaPoint struct {
		Distance float64 `json:"distance"`
		Delta    float64 `json:"delta"` // positive: reference driver is behind
		SpeedRef float64 `json:"speedRef"`
		SpeedCmp float64 `json:"speedCmp"`
	}

	// DeltaTrace is the distance-aligned time gap between two laps.
	DeltaTrace struct {
		DriverRef       string       `json:"driverRef"`
		DriverCmp       string       `json:"driverCmp"`
		LapRef          int          `json:"lapRef"`
		LapCmp          int          `json:"lapCmp"`
		Points          []DeltaPoint `json:"points"`
		PartialCoverage bool         `json:"partialCoverage"` // one lap ended before full distance
	}

	// DegradationPoint is one tyre-age bucket of a degradation curve.
	DegradationPoint struct {
		TyreAge    int     `json:"tyreAge"`
		MedianTime float64 `json:"medianTime"`
		StdDev     float64 `json:"stdDev"`
		LapCount   int     `json:"lapCount"`
	}

	// DegradationCurve is the per-compound lap time vs tyre age model.
	// Rate is nil when too few age buckets exist for a fit.
	DegradationCurve struct {
		Driver        string             `json:"driver,omitempty"`
		Compound      Compound           `json:"compound"`
		Points        []DegradationPoint `json:"points"`
		Rate          *float64           `json:"rate,omitempty"` // seconds lost per lap of age
		Intercept     float64            `json:"intercept"`
		RSquared      float64            `json:"rSquared"`
		LowConfidence bool               `json:"lowConfidence"`
	}

	// LapRange is an inclusive window of lap numbers.
	LapRange struct {
		From int `json:"from"`
		To   int `json:"to"`
	}

	// PitWindow is the recommended pit stop timing for one driver.
	PitWindow struct {
		Driver       string    `json:"driver"`
		CurrentLap   int       `json:"currentLap"`
		OptimalLap   int       `json:"optimalLap"`
		Undercut     *LapRange `json:"undercut,omitempty"`
		Overcut      *LapRange `json:"overcut,omitempty"`
		PitTimeLoss  float64   `json:"pitTimeLoss"`
		NextCompound Compound  `json:"nextCompound"`
		StayOut      bool      `json:"stayOut"` // no stop beats any candidate lap
	}

	// CorrelationPoint pairs a lap time window with the weather sample
	// nearest to its midpoint.
	CorrelationPoint struct {
		WindowStart  int     `json:"windowStart"`
		WindowEnd    int     `json:"windowEnd"`
		MeanLapTime  float64 `json:"meanLapTime"`
		WeatherValue float64 `json:"weatherValue"`
	}

	// CorrelationResult reports the relationship between a weather channel
	// and lap times.
	CorrelationResult struct {
		Channel     string             `json:"channel"`
		Points      []CorrelationPoint `json:"points"`
		Pearson     float64            `json:"pearson"`
		RSquared    float64            `json:"rSquared"`
		Significant bool               `json:"significant"`
		Direction   string             `json:"direction"` // "slower", "faster" or "none"
	}

	// TrackEvolution summarizes session-long grip development.
	TrackEvolution struct {
		Slope     float64 `json:"slope"`     // seconds per lap over session best trend
		Trend     string  `json:"trend"`     // "improving", "stable", "degrading"
		GripLevel float64 `json:"gripLevel"` // 0..100
	}

	// SegmentEntry is one driver's best effort through a segment.
	SegmentEntry struct {
		Driver        string  `json:"driver"`
		Team          string  `json:"team,omitempty"`
		LapNumber     int     `json:"lapNumber"`
		ElapsedTime   float64 `json:"elapsedTime"`
		DeltaToLeader float64 `json:"deltaToLeader"` // elapsed - fastest elapsed
		MeanSpeed     float64 `json:"meanSpeed"`
		TopSpeed      float64 `json:"topSpeed"`
	}

	// TeamShare aggregates the segment times of a team's drivers.
	TeamShare struct {
		Team      string  `json:"team"`
		Drivers   int     `json:"drivers"`
		BestTime  float64 `json:"bestTime"`
		WorstTime float64 `json:"worstTime"`
		MeanTime  float64 `json:"meanTime"`
		StdDev    float64 `json:"stdDev"`
	}

	// SegmentLeaderboard ranks drivers over one distance range.
	SegmentLeaderboard struct {
		StartDistance float64        `json:"startDistance"`
		EndDistance   float64        `json:"endDistance"`
		Entries       []SegmentEntry `json:"entries"`            // sorted by elapsed time
		Teams         []TeamShare    `json:"teams,omitempty"`    // per-team aggregates
		Excluded      []string       `json:"excluded,omitempty"` // drivers lacking coverage
	}

	// MiniSector is one equal-length slice of the lap with its fastest driver.
	MiniSector struct {
		Index         int     `json:"index"`
		StartDistance float64 `json:"startDistance"`
		EndDistance   float64 `json:"endDistance"`
		FastestDriver string  `json:"fastestDriver"`
		FastestTime   float64 `json:"fastestTime"`
	}

	// MiniSectorReport holds the full mini-sector dominance picture.
	MiniSectorReport struct {
		Sectors   []MiniSector   `json:"sectors"`
		Dominance map[string]int `json:"dominance"` // driver -> sectors won
	}

	// CornerMetrics summarizes driver behavior through one distance range
	// around a corner.
	CornerMetrics struct {
		Driver        string  `json:"driver"`
		LapNumber     int     `json:"lapNumber"`
		EntrySpeed    float64 `json:"entrySpeed"`
		ExitSpeed     float64 `json:"exitSpeed"`
		MinSpeed      float64 `json:"minSpeed"`
		MinSpeedAt    float64 `json:"minSpeedAt"`    // distance of apex
		BrakePoint    float64 `json:"brakePoint"`    // distance of first braking, -1 if none
		ThrottlePoint float64 `json:"throttlePoint"` // distance of full throttle after apex, -1 if none
		ElapsedTime   float64 `json:"elapsedTime"`
	}

	// TheoreticalBest combines the best sectors of a driver.
	TheoreticalBest struct {
		Driver         string     `json:"driver"`
		BestSectors    [3]float64 `json:"bestSectors"`
		SectorLaps     [3]int     `json:"sectorLaps"` // lap number each best sector came from
		Theoretical    float64    `json:"theoretical"`
		ActualBest     float64    `json:"actualBest"`
		Gap            float64    `json:"gap"`                      // actual - theoretical, >= 0
		GapToBest      float64    `json:"gapToBest,omitempty"`      // to the best personal theoretical
		DeltaToOverall float64    `json:"deltaToOverall,omitempty"` // to the cross-driver composite
	}

	// CompositeSector is one sector of the cross-driver ideal lap, credited
	// to the driver who set it.
	CompositeSector struct {
		Time   float64 `json:"time"`
		Driver string  `json:"driver"`
		Lap    int     `json:"lap"`
	}

	// TheoreticalGrid ranks every driver's ideal lap against the composite
	// lap built from the field-wide best sectors.
	TheoreticalGrid struct {
		Sectors   [3]CompositeSector `json:"sectors"`
		Composite float64            `json:"composite"` // sum of the field-wide best sectors
		Entries   []TheoreticalBest  `json:"entries"`   // sorted by personal theoretical
	}

	// SectorConsistency reports per-sector spread over a driver's clean laps.
	SectorConsistency struct {
		Driver   string     `json:"driver"`
		Mean     [3]float64 `json:"mean"`
		StdDev   [3]float64 `json:"stdDev"`
		LapCount int        `json:"lapCount"`
	}

	// StintSummary describes one continuous run on a tire set.
	StintSummary struct {
		Driver      string   `json:"driver"`
		Stint       int      `json:"stint"`
		Compound    Compound `json:"compound"`
		Laps        LapRange `json:"laps"`
		LapCount    int      `json:"lapCount"`
		BestTime    float64  `json:"bestTime"`
		MeanTime    float64  `json:"meanTime"`
		Degradation *float64 `json:"degradation,omitempty"` // fitted seconds/lap within the stint
	}

	// SafetyCarPhase is one contiguous interruption.
	SafetyCarPhase struct {
		Kind     string   `json:"kind"` // "SC" or "VSC"
		Laps     LapRange `json:"laps"`
		LapCount int      `json:"lapCount"`
	}

	// SafetyCarReport combines observed phases with the circuit base rate.
	SafetyCarReport struct {
		Circuit   string           `json:"circuit"`
		Phases    []SafetyCarPhase `json:"phases"`
		TotalLaps int              `json:"totalLaps"`
		BaseRate  float64          `json:"baseRate"` // historical probability for the circuit
	}

	// DRSTrain is a group of cars running within DRS range of each other
	// over consecutive laps.
	DRSTrain struct {
		Drivers  []string `json:"drivers"` // in running order, leader first
		Laps     LapRange `json:"laps"`
		LapCount int      `json:"lapCount"`
	}

	// DriverTrainShare aggregates one driver's running in DRS trains.
	DriverTrainShare struct {
		Driver      string  `json:"driver"`
		LapsInTrain int     `json:"lapsInTrain"`
		Percentage  float64 `json:"percentage"` // share of the race laps, 0..100
	}

	// DRSTrainReport lists detected trains for a session.
	DRSTrainReport struct {
		GapThreshold    float64            `json:"gapThreshold"` // seconds
		MinCars         int                `json:"minCars"`
		MinLaps         int                `json:"minLaps"`
		Trains          []DRSTrain         `json:"trains"`
		AffectedDrivers []DriverTrainShare `json:"affectedDrivers,omitempty"`
	}

	// WeatherTimelinePoint is one weather sample annotated with the lap in
	// progress at that time.
	WeatherTimelinePoint struct {
		Lap    int           `json:"lap"`
		Sample WeatherSample `json:"sample"`
	}

	// WindRoseBin aggregates wind observations into a direction sector.
	WindRoseBin struct {
		DirectionFrom float64 `json:"directionFrom"`
		DirectionTo   float64 `json:"directionTo"`
		Count         int     `json:"count"`
		MeanSpeed     float64 `json:"meanSpeed"`
	}

	// WeatherChannelStats summarizes one weather channel over the session.
	WeatherChannelStats struct {
		Channel string  `json:"channel"`
		Min     float64 `json:"min"`
		Max     float64 `json:"max"`
		Mean    float64 `json:"mean"`
	}

	// WeatherSummary holds per-channel statistics and rain periods.
	WeatherSummary struct {
		Channels    []WeatherChannelStats `json:"channels"`
		RainPeriods []LapRange            `json:"rainPeriods,omitempty"`
	}
)
