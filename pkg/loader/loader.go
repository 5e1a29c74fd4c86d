package loader

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/ohler55/ojg/oj"

	"github.com/hamzanaeem10/ApexAnalyst/log"
	"github.com/hamzanaeem10/ApexAnalyst/pkg/model"
)

type (
	Option func(l *Loader)

	// Loader reads a session export and takes it through the staged load
	// states up to ready. It is safe for concurrent use: analytics may
	// poll the status from other goroutines while a load is in progress.
	Loader struct {
		mu     sync.RWMutex
		status model.LoadStatus
		sess   *model.Session
		err    error
		log    *log.Logger
	}

	// rawSession mirrors the on-disk export before validation.
	rawSession struct {
		Name      string `json:"name"`
		Circuit   string `json:"circuit"`
		TotalLaps int    `json:"totalLaps"`
		Track     struct {
			TrackLength   float64           `json:"trackLength"`
			ReferencePath []model.PathPoint `json:"referencePath"`
		} `json:"track"`
		Laps []struct {
			Driver      string     `json:"driver"`
			Team        string     `json:"team"`
			LapNumber   int        `json:"lapNumber"`
			LapTime     float64    `json:"lapTime"`
			SectorTimes [3]float64 `json:"sectorTimes"`
			Compound    string     `json:"compound"`
			TyreAge     int        `json:"tyreAge"`
			Stint       int        `json:"stint"`
			Position    int        `json:"position"`
			GapAhead    float64    `json:"gapAhead"`
			IsAccurate  bool       `json:"isAccurate"`
			TrackStatus string     `json:"trackStatus"`
			StartOffset float64    `json:"startOffset"`
		} `json:"laps"`
		Weather   []model.WeatherSample                         `json:"weather"`
		Telemetry map[string]map[string][]model.TelemetrySample `json:"telemetry"`
	}
)

func WithLogger(arg *log.Logger) Option {
	return func(l *Loader) { l.log = arg }
}

func NewLoader(opts ...Option) *Loader {
	ret := &Loader{
		status: model.StatusPending,
		log:    log.Default().Named("loader"),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Status implements processing.DatasetProvider.
func (l *Loader) Status() model.LoadStatus {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.status
}

// Session implements processing.DatasetProvider. It returns nil until the
// loader reached the ready state.
func (l *Loader) Session() *model.Session {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.status != model.StatusReady {
		return nil
	}
	return l.sess
}

// Err returns the error of a failed load.
func (l *Loader) Err() error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.err
}

func (l *Loader) setStatus(s model.LoadStatus) {
	l.mu.Lock()
	l.status = s
	l.mu.Unlock()
	l.log.Debug("load state changed", log.Stringer("status", s))
}

func (l *Loader) fail(err error) error {
	l.mu.Lock()
	l.status = model.StatusError
	l.err = err
	l.mu.Unlock()
	l.log.Error("load failed", log.ErrorField(err))
	return err
}

// LoadFile reads, validates and publishes a session export. The load walks
// through the intermediate states so observers can report progress.
func (l *Loader) LoadFile(ctx context.Context, path string) error {
	l.setStatus(model.StatusLoadingBasic)
	data, err := os.ReadFile(path)
	if err != nil {
		return l.fail(err)
	}
	var raw rawSession
	if err := oj.Unmarshal(data, &raw); err != nil {
		return l.fail(fmt.Errorf("parse %s: %w", path, err))
	}
	if raw.Name == "" {
		return l.fail(fmt.Errorf("parse %s: session name missing", path))
	}
	sess := &model.Session{
		Name:      raw.Name,
		Circuit:   raw.Circuit,
		TotalLaps: raw.TotalLaps,
		Track: model.TrackGeometry{
			TrackLength:   raw.Track.TrackLength,
			ReferencePath: raw.Track.ReferencePath,
		},
	}

	if err := ctx.Err(); err != nil {
		return l.fail(err)
	}
	l.setStatus(model.StatusLoadingLaps)
	sess.Laps, err = buildLaps(raw)
	if err != nil {
		return l.fail(err)
	}
	sess.Weather = buildWeather(raw.Weather)

	if err := ctx.Err(); err != nil {
		return l.fail(err)
	}
	l.setStatus(model.StatusLoadingTelemetry)
	sess.Telemetry, err = buildTelemetry(raw.Telemetry)
	if err != nil {
		return l.fail(err)
	}

	l.mu.Lock()
	l.sess = sess
	l.status = model.StatusReady
	l.mu.Unlock()
	l.log.Info("session loaded",
		log.String("name", sess.Name),
		log.String("circuit", sess.Circuit),
		log.Int("laps", len(sess.Laps)),
		log.Int("weatherSamples", len(sess.Weather)))
	return nil
}
