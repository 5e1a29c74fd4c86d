package analyze

import (
	"github.com/spf13/cobra"
)

var (
	cornerStart float64
	cornerEnd   float64
)

func NewCornerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "corner driver",
		Short: "analyzes braking, apex and exit through a corner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			proc, err := setupProcessor(cmd.Context())
			if err != nil {
				return err
			}
			metrics, err := proc.Corner(args[0], cornerStart, cornerEnd)
			if err != nil {
				return err
			}
			printResult(metrics)
			return nil
		},
	}
	cmd.Flags().Float64Var(&cornerStart, "from", 0,
		"corner start distance in meters")
	cmd.Flags().Float64Var(&cornerEnd, "to", 0,
		"corner end distance in meters")
	return cmd
}
