package processing

import (
	"github.com/hamzanaeem10/ApexAnalyst/log"
	"github.com/hamzanaeem10/ApexAnalyst/pkg/model"
	"github.com/hamzanaeem10/ApexAnalyst/pkg/processing/events"
	"github.com/hamzanaeem10/ApexAnalyst/pkg/processing/laptime"
	"github.com/hamzanaeem10/ApexAnalyst/pkg/processing/segment"
	"github.com/hamzanaeem10/ApexAnalyst/pkg/processing/strategy"
	"github.com/hamzanaeem10/ApexAnalyst/pkg/processing/telemetry"
	"github.com/hamzanaeem10/ApexAnalyst/pkg/processing/tyre"
	"github.com/hamzanaeem10/ApexAnalyst/pkg/processing/util"
	"github.com/hamzanaeem10/ApexAnalyst/pkg/processing/weather"
)

type (
	// DatasetProvider supplies the session data the processor works on.
	DatasetProvider interface {
		Status() model.LoadStatus
		Session() *model.Session
	}

	Option func(proc *Processor)

	// Processor is the analytics facade over a loaded session. All methods
	// refuse to run until the underlying dataset is ready.
	Processor struct {
		provider     DatasetProvider
		log          *log.Logger
		resampleStep float64
		pitTimeLoss  float64
		drsGap       float64
		drsMinCars   int
		drsMinLaps   int
	}
)

func WithResampleStep(step float64) Option {
	return func(proc *Processor) { proc.resampleStep = step }
}

func WithPitTimeLoss(loss float64) Option {
	return func(proc *Processor) { proc.pitTimeLoss = loss }
}

func WithDRSGap(gap float64) Option {
	return func(proc *Processor) { proc.drsGap = gap }
}

func WithDRSTrainShape(minCars, minLaps int) Option {
	return func(proc *Processor) {
		proc.drsMinCars = minCars
		proc.drsMinLaps = minLaps
	}
}

func NewProcessor(provider DatasetProvider, opts ...Option) *Processor {
	ret := &Processor{
		provider:     provider,
		log:          log.Default().Named("processing"),
		resampleStep: telemetry.DefaultStep,
		pitTimeLoss:  strategy.DefaultPitTimeLoss,
		drsGap:       events.DefaultDRSGap,
		drsMinCars:   events.DefaultDRSMinCars,
		drsMinLaps:   events.DefaultDRSMinLaps,
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// session returns the underlying data or ErrNotReady while loading.
func (p *Processor) session() (*model.Session, error) {
	if p.provider.Status() != model.StatusReady {
		p.log.Debug("analysis requested before dataset ready",
			log.Stringer("status", p.provider.Status()))
		return nil, util.ErrNotReady
	}
	return p.provider.Session(), nil
}

// ResampleLap projects one lap's telemetry onto the uniform distance grid.
// A lap number of 0 or less selects the driver's fastest clean lap.
func (p *Processor) ResampleLap(driver string, lapNumber int) (*model.ResampledChannels, error) {
	sess, err := p.session()
	if err != nil {
		return nil, err
	}
	if lapNumber <= 0 {
		fastest, ok := sess.FastestLap(driver, true)
		if !ok {
			return nil, util.ErrUnknownDriver
		}
		lapNumber = fastest.LapNumber
	}
	return telemetry.Resample(driver, lapNumber, sess.LapTelemetry(driver, lapNumber), p.resampleStep)
}

// DeltaTrace computes the distance-aligned gap between two laps.
func (p *Processor) DeltaTrace(driverRef string, lapRef int, driverCmp string, lapCmp int) (*model.DeltaTrace, error) {
	ref, err := p.ResampleLap(driverRef, lapRef)
	if err != nil {
		return nil, err
	}
	cmp, err := p.ResampleLap(driverCmp, lapCmp)
	if err != nil {
		return nil, err
	}
	return telemetry.Delta(ref, cmp)
}

// Degradation fits session-wide tire degradation curves per compound.
func (p *Processor) Degradation() ([]model.DegradationCurve, error) {
	sess, err := p.session()
	if err != nil {
		return nil, err
	}
	return tyre.Curves(tyre.CleanLaps(sess.Laps)), nil
}

// DegradationFor fits the degradation curve of one compound.
func (p *Processor) DegradationFor(compound model.Compound) (*model.DegradationCurve, error) {
	sess, err := p.session()
	if err != nil {
		return nil, err
	}
	return tyre.CurveFor(tyre.CleanLaps(sess.Laps), compound)
}

// PitWindow recommends the pit timing for a driver from the given lap on.
func (p *Processor) PitWindow(driver string, currentLap int, nextCompound model.Compound) (*model.PitWindow, error) {
	sess, err := p.session()
	if err != nil {
		return nil, err
	}
	current, ok := lastLapUpTo(sess, driver, currentLap)
	if !ok {
		return nil, util.ErrUnknownDriver
	}
	curves := make(map[model.Compound]*model.DegradationCurve)
	for _, curve := range tyre.Curves(tyre.CleanLaps(sess.Laps)) {
		c := curve
		curves[curve.Compound] = &c
	}
	return strategy.Compute(strategy.Request{
		Driver:       driver,
		CurrentLap:   currentLap,
		CurrentAge:   current.TyreAge,
		TotalLaps:    sess.TotalLaps,
		Compound:     current.Compound,
		NextCompound: nextCompound,
		PitTimeLoss:  p.pitTimeLoss,
		Curves:       curves,
	})
}

func lastLapUpTo(sess *model.Session, driver string, lapNumber int) (model.Lap, bool) {
	var ret model.Lap
	found := false
	for _, l := range sess.DriverLaps(driver) {
		if l.LapNumber <= lapNumber && (!found || l.LapNumber > ret.LapNumber) {
			ret = l
			found = true
		}
	}
	return ret, found
}

// Stints summarizes a driver's tire stints.
func (p *Processor) Stints(driver string) ([]model.StintSummary, error) {
	sess, err := p.session()
	if err != nil {
		return nil, err
	}
	return strategy.Stints(sess.Laps, driver)
}

// WeatherCorrelation relates a weather channel to lap times.
func (p *Processor) WeatherCorrelation(channel string, windowSize, minLaps int) (*model.CorrelationResult, error) {
	sess, err := p.session()
	if err != nil {
		return nil, err
	}
	return weather.Correlate(sess, channel, windowSize, minLaps)
}

// WeatherTimeline annotates the weather samples with the lap in progress.
func (p *Processor) WeatherTimeline() ([]model.WeatherTimelinePoint, error) {
	sess, err := p.session()
	if err != nil {
		return nil, err
	}
	return weather.Timeline(sess)
}

// WeatherSummary reports per-channel statistics and rain periods.
func (p *Processor) WeatherSummary() (*model.WeatherSummary, error) {
	sess, err := p.session()
	if err != nil {
		return nil, err
	}
	return weather.Summary(sess)
}

// WindRose aggregates the session's wind observations.
func (p *Processor) WindRose(sectors int) ([]model.WindRoseBin, error) {
	sess, err := p.session()
	if err != nil {
		return nil, err
	}
	return weather.WindRose(sess.Weather, sectors), nil
}

// TrackEvolution reports the grip development over the session.
func (p *Processor) TrackEvolution() (*model.TrackEvolution, error) {
	sess, err := p.session()
	if err != nil {
		return nil, err
	}
	return weather.TrackEvolution(sess)
}

// MiniSectors computes the mini-sector dominance picture.
func (p *Processor) MiniSectors(count int) (*model.MiniSectorReport, error) {
	sess, err := p.session()
	if err != nil {
		return nil, err
	}
	return segment.MiniSectors(sess, count)
}

// SegmentLeaderboard ranks all drivers over a custom distance range.
func (p *Processor) SegmentLeaderboard(start, end float64) (*model.SegmentLeaderboard, error) {
	sess, err := p.session()
	if err != nil {
		return nil, err
	}
	return segment.Leaderboard(sess, start, end)
}

// Corner analyzes one driver's behavior through a corner.
func (p *Processor) Corner(driver string, start, end float64) (*model.CornerMetrics, error) {
	sess, err := p.session()
	if err != nil {
		return nil, err
	}
	return segment.Corner(sess, driver, start, end)
}

// TheoreticalBest combines a driver's best sectors into an ideal lap.
func (p *Processor) TheoreticalBest(driver string) (*model.TheoreticalBest, error) {
	sess, err := p.session()
	if err != nil {
		return nil, err
	}
	return laptime.TheoreticalBest(sess.Laps, driver)
}

// TheoreticalGrid ranks all drivers against the composite ideal lap.
func (p *Processor) TheoreticalGrid() (*model.TheoreticalGrid, error) {
	sess, err := p.session()
	if err != nil {
		return nil, err
	}
	return laptime.Grid(sess.Laps)
}

// SectorConsistency reports a driver's per-sector spread.
func (p *Processor) SectorConsistency(driver string) (*model.SectorConsistency, error) {
	sess, err := p.session()
	if err != nil {
		return nil, err
	}
	return laptime.SectorConsistency(sess.Laps, driver)
}

// SafetyCar reports interruptions and the circuit base rate.
func (p *Processor) SafetyCar() (*model.SafetyCarReport, error) {
	sess, err := p.session()
	if err != nil {
		return nil, err
	}
	return events.SafetyCar(sess)
}

// DRSTrains detects persistent groups of cars within DRS range.
func (p *Processor) DRSTrains() (*model.DRSTrainReport, error) {
	sess, err := p.session()
	if err != nil {
		return nil, err
	}
	return events.DRSTrains(sess, p.drsGap, p.drsMinCars, p.drsMinLaps)
}
