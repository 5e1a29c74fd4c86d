package log

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
	"moul.io/zapfilter"
)

// Config describes per-namespace log filtering.
// Filters use the zapfilter rule syntax, e.g. "debug:loader* info:*".
type Config struct {
	DefaultLevel string   `yaml:"defaultLevel"`
	Filters      []string `yaml:"filters"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ret := &Config{DefaultLevel: "info"}
	if err := yaml.Unmarshal(data, ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// NewWithConfig creates a Logger whose core is wrapped by a zapfilter core
// built from the config rules. Messages not matched by any rule fall back to
// the default level.
func NewWithConfig(out io.Writer, cfg *Config, opts ...Option) (*Logger, error) {
	level, err := ParseLevel(cfg.DefaultLevel)
	if err != nil {
		level = InfoLevel
	}
	if out == nil {
		out = os.Stderr
	}
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.RFC3339TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.AddSync(out),
		zap.NewAtomicLevelAt(DebugLevel),
	)
	rules := strings.Join(cfg.Filters, " ")
	filterFunc, err := zapfilter.ParseRules(rules)
	if err != nil {
		return nil, err
	}
	fallback := zapfilter.MinimumLevel(level)
	combined := zapfilter.NewFilteringCore(core, zapfilter.Any(filterFunc, fallback))
	return &Logger{l: zap.New(combined, opts...), level: level}, nil
}
