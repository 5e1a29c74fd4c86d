package analyze

import (
	"github.com/spf13/cobra"
)

func NewSafetyCarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "safetycar",
		Short: "detects safety car phases and reports the circuit base rate",
		RunE: func(cmd *cobra.Command, args []string) error {
			proc, err := setupProcessor(cmd.Context())
			if err != nil {
				return err
			}
			report, err := proc.SafetyCar()
			if err != nil {
				return err
			}
			printResult(report)
			return nil
		},
	}
}
