package model

// LoadStatus is the readiness state of a session dataset.
// Analytics must only run against StatusReady datasets.
type LoadStatus int

const (
	StatusPending LoadStatus = iota
	StatusLoadingBasic
	StatusLoadingLaps
	StatusLoadingTelemetry
	StatusReady
	StatusError
)

func (s LoadStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusLoadingBasic:
		return "loading_basic"
	case StatusLoadingLaps:
		return "loading_laps"
	case StatusLoadingTelemetry:
		return "loading_telemetry"
	case StatusReady:
		return "ready"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}
