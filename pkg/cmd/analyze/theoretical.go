package analyze

import (
	"github.com/spf13/cobra"
)

var showConsistency bool

func NewTheoreticalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theoretical [driver]",
		Short: "combines best sectors into ideal laps",
		Long: `Without a driver the full field is ranked by theoretical best.
With a driver only that driver's ideal lap is reported.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runTheoreticalGrid(cmd)
			}
			return runTheoretical(cmd, args[0])
		},
	}
	cmd.Flags().BoolVar(&showConsistency, "consistency", false,
		"also report the per-sector spread")
	return cmd
}

func runTheoreticalGrid(cmd *cobra.Command) error {
	proc, err := setupProcessor(cmd.Context())
	if err != nil {
		return err
	}
	grid, err := proc.TheoreticalGrid()
	if err != nil {
		return err
	}
	printResult(grid)
	return nil
}

func runTheoretical(cmd *cobra.Command, driver string) error {
	proc, err := setupProcessor(cmd.Context())
	if err != nil {
		return err
	}
	best, err := proc.TheoreticalBest(driver)
	if err != nil {
		return err
	}
	if !showConsistency {
		printResult(best)
		return nil
	}
	consistency, err := proc.SectorConsistency(driver)
	if err != nil {
		return err
	}
	printResult(map[string]any{
		"theoretical": best,
		"consistency": consistency,
	})
	return nil
}
