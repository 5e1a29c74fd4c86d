package config

// this holds the resolved configuration values from CLI
var (
	SessionFile  string  // path to the session export to analyze
	LogLevel     string  // sets the log level (zap log level values)
	LogFormat    string  // text vs json
	LogConfig    string  // path to log config file
	BaseRateFile string  // path to a safety car base rate override file
	ResampleStep float64 // distance grid step in meters
	PitTimeLoss  float64 // total time lost by a pit stop in seconds
	DRSGap       float64 // gap in seconds counting as DRS range
	OutputIndent int     // indentation for JSON output
)

// Config holds the configuration values which are used by the application
type Config struct {
	ResampleStep float64 // distance grid step in meters
	PitTimeLoss  float64 // total time lost by a pit stop in seconds
	DRSGap       float64 // gap in seconds counting as DRS range
}

// DefaultCliArgs returns a Config populated from the CLI values.
func DefaultCliArgs() *Config {
	return &Config{
		ResampleStep: ResampleStep,
		PitTimeLoss:  PitTimeLoss,
		DRSGap:       DRSGap,
	}
}
