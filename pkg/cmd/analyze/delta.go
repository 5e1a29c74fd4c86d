package analyze

import (
	"github.com/spf13/cobra"

	"github.com/hamzanaeem10/ApexAnalyst/log"
)

var (
	deltaLapRef int
	deltaLapCmp int
)

func NewDeltaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delta driverRef driverCmp",
		Short: "computes the distance-aligned time delta between two drivers",
		Long: `Resamples both laps onto a common distance grid and reports the
cumulative time gap at each checkpoint. Positive values mean the reference
driver is behind at that point. Without explicit laps the fastest lap of
each driver is used.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelta(cmd, args[0], args[1])
		},
	}
	cmd.Flags().IntVar(&deltaLapRef, "lap-ref", 0,
		"lap of the reference driver (0: fastest)")
	cmd.Flags().IntVar(&deltaLapCmp, "lap-cmp", 0,
		"lap of the compared driver (0: fastest)")
	return cmd
}

func runDelta(cmd *cobra.Command, driverRef, driverCmp string) error {
	proc, err := setupProcessor(cmd.Context())
	if err != nil {
		return err
	}
	trace, err := proc.DeltaTrace(driverRef, deltaLapRef, driverCmp, deltaLapCmp)
	if err != nil {
		return err
	}
	if trace.PartialCoverage {
		log.Warn("delta covers only part of the lap",
			log.String("driverRef", driverRef),
			log.String("driverCmp", driverCmp))
	}
	printResult(trace)
	return nil
}
