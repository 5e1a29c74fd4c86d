package analyze

import (
	"github.com/spf13/cobra"
)

func NewStintsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stints driver",
		Short: "summarizes a driver's tire stints",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStints(cmd, args[0])
		},
	}
	return cmd
}

func runStints(cmd *cobra.Command, driver string) error {
	proc, err := setupProcessor(cmd.Context())
	if err != nil {
		return err
	}
	stints, err := proc.Stints(driver)
	if err != nil {
		return err
	}
	printResult(stints)
	return nil
}
