package analyze

import (
	"github.com/spf13/cobra"
)

var (
	weatherChannel    string
	weatherWindowSize int
	weatherMinLaps    int
	windRoseSectors   int
)

func NewWeatherCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weather",
		Short: "commands relating weather to session pace",
	}
	cmd.AddCommand(newWeatherCorrelateCmd())
	cmd.AddCommand(newWeatherTimelineCmd())
	cmd.AddCommand(newWeatherSummaryCmd())
	cmd.AddCommand(newWindRoseCmd())
	return cmd
}

func newWeatherSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "reports per-channel statistics and rain periods",
		RunE: func(cmd *cobra.Command, args []string) error {
			proc, err := setupProcessor(cmd.Context())
			if err != nil {
				return err
			}
			summary, err := proc.WeatherSummary()
			if err != nil {
				return err
			}
			printResult(summary)
			return nil
		},
	}
}

func newWeatherCorrelateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "correlate",
		Short: "correlates a weather channel with lap times",
		RunE: func(cmd *cobra.Command, args []string) error {
			proc, err := setupProcessor(cmd.Context())
			if err != nil {
				return err
			}
			result, err := proc.WeatherCorrelation(weatherChannel, weatherWindowSize, weatherMinLaps)
			if err != nil {
				return err
			}
			printResult(result)
			return nil
		},
	}
	cmd.Flags().StringVar(&weatherChannel, "channel", "track_temp",
		"weather channel (track_temp, air_temp, humidity, pressure, wind_speed)")
	cmd.Flags().IntVar(&weatherWindowSize, "window", 5,
		"lap window size for averaging")
	cmd.Flags().IntVar(&weatherMinLaps, "min-laps", 3,
		"minimum clean laps a window needs to count")
	return cmd
}

func newWeatherTimelineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "timeline",
		Short: "annotates weather samples with the lap in progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			proc, err := setupProcessor(cmd.Context())
			if err != nil {
				return err
			}
			timeline, err := proc.WeatherTimeline()
			if err != nil {
				return err
			}
			printResult(timeline)
			return nil
		},
	}
}

func newWindRoseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "windrose",
		Short: "aggregates wind observations into direction sectors",
		RunE: func(cmd *cobra.Command, args []string) error {
			proc, err := setupProcessor(cmd.Context())
			if err != nil {
				return err
			}
			bins, err := proc.WindRose(windRoseSectors)
			if err != nil {
				return err
			}
			printResult(bins)
			return nil
		},
	}
	cmd.Flags().IntVar(&windRoseSectors, "sectors", 8,
		"number of direction sectors")
	return cmd
}
