package analyze

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"

	"github.com/hamzanaeem10/ApexAnalyst/log"
	"github.com/hamzanaeem10/ApexAnalyst/pkg/config"
	"github.com/hamzanaeem10/ApexAnalyst/pkg/loader"
	"github.com/hamzanaeem10/ApexAnalyst/pkg/processing"
	"github.com/hamzanaeem10/ApexAnalyst/pkg/processing/events"
)

func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "commands to analyze a session export",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger()
		},
	}

	cmd.PersistentFlags().Float64Var(&config.ResampleStep,
		"resample-step",
		10.0,
		"distance grid step in meters")
	cmd.PersistentFlags().Float64Var(&config.PitTimeLoss,
		"pit-time-loss",
		22.0,
		"total time lost by a pit stop in seconds")
	cmd.PersistentFlags().Float64Var(&config.DRSGap,
		"drs-gap",
		1.0,
		"gap in seconds counting as DRS range")
	cmd.PersistentFlags().StringVar(&config.BaseRateFile,
		"base-rates",
		"",
		"safety car base rate override file")
	cmd.PersistentFlags().IntVar(&config.OutputIndent,
		"indent",
		2,
		"indentation for JSON output")

	cmd.AddCommand(NewDeltaCmd())
	cmd.AddCommand(NewDegradationCmd())
	cmd.AddCommand(NewPitWindowCmd())
	cmd.AddCommand(NewStintsCmd())
	cmd.AddCommand(NewWeatherCmd())
	cmd.AddCommand(NewEvolutionCmd())
	cmd.AddCommand(NewSegmentsCmd())
	cmd.AddCommand(NewCornerCmd())
	cmd.AddCommand(NewTheoreticalCmd())
	cmd.AddCommand(NewSafetyCarCmd())
	cmd.AddCommand(NewDRSTrainsCmd())

	return cmd
}

func parseLogLevel(l string, defaultVal log.Level) log.Level {
	level, err := log.ParseLevel(l)
	if err != nil {
		return defaultVal
	}
	return level
}

func setupLogger() error {
	var logger *log.Logger
	switch {
	case config.LogConfig != "":
		cfg, err := log.LoadConfig(config.LogConfig)
		if err != nil {
			return err
		}
		logger, err = log.NewWithConfig(os.Stderr, cfg,
			log.WithCaller(true),
			log.AddCallerSkip(1))
		if err != nil {
			return err
		}
	case config.LogFormat == "json":
		logger = log.New(
			os.Stderr,
			parseLogLevel(config.LogLevel, log.InfoLevel),
			log.WithCaller(true),
			log.AddCallerSkip(1))
	default:
		logger = log.DevLogger(
			os.Stderr,
			parseLogLevel(config.LogLevel, log.InfoLevel),
			log.WithCaller(true),
			log.AddCallerSkip(1))
	}
	log.ResetDefault(logger)
	return nil
}

// setupProcessor loads the configured session export and returns the
// analytics facade over it.
func setupProcessor(ctx context.Context) (*processing.Processor, error) {
	if config.SessionFile == "" {
		return nil, errors.New("no session file given (use --session)")
	}
	if config.BaseRateFile != "" {
		if err := events.LoadBaseRates(config.BaseRateFile); err != nil {
			return nil, err
		}
	}
	l := loader.NewLoader()
	if err := l.LoadFile(ctx, config.SessionFile); err != nil {
		return nil, err
	}
	cfg := config.DefaultCliArgs()
	return processing.NewProcessor(l,
		processing.WithResampleStep(cfg.ResampleStep),
		processing.WithPitTimeLoss(cfg.PitTimeLoss),
		processing.WithDRSGap(cfg.DRSGap),
	), nil
}

// printResult writes the analysis result as JSON to stdout.
func printResult(v any) {
	fmt.Println(oj.JSON(v, config.OutputIndent))
}
