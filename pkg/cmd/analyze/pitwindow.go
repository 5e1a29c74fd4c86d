package analyze

import (
	"github.com/spf13/cobra"

	"github.com/hamzanaeem10/ApexAnalyst/pkg/model"
)

var (
	pitCurrentLap   int
	pitNextCompound string
)

func NewPitWindowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pitwindow driver",
		Short: "recommends the pit stop timing for a driver",
		Long: `Models the remaining race as degradation on the current tires until
the stop, the stop itself, and degradation on the new set afterwards. The lap
minimizing the total loss is the recommendation, laps within half a pit stop
of it form the undercut and overcut windows.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPitWindow(cmd, args[0])
		},
	}
	cmd.Flags().IntVar(&pitCurrentLap, "current-lap", 1,
		"lap the recommendation starts from")
	cmd.Flags().StringVar(&pitNextCompound, "next-compound", "medium",
		"compound fitted at the stop")
	return cmd
}

func runPitWindow(cmd *cobra.Command, driver string) error {
	proc, err := setupProcessor(cmd.Context())
	if err != nil {
		return err
	}
	window, err := proc.PitWindow(driver, pitCurrentLap, model.ParseCompound(pitNextCompound))
	if err != nil {
		return err
	}
	printResult(window)
	return nil
}
