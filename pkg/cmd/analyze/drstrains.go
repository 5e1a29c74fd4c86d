package analyze

import (
	"github.com/spf13/cobra"
)

func NewDRSTrainsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "drstrains",
		Short: "detects groups of cars stuck within DRS range of each other",
		RunE: func(cmd *cobra.Command, args []string) error {
			proc, err := setupProcessor(cmd.Context())
			if err != nil {
				return err
			}
			report, err := proc.DRSTrains()
			if err != nil {
				return err
			}
			printResult(report)
			return nil
		},
	}
}
