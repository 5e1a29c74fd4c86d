package analyze

import (
	"github.com/spf13/cobra"
)

func NewEvolutionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "evolution",
		Short: "reports the track grip development over the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			proc, err := setupProcessor(cmd.Context())
			if err != nil {
				return err
			}
			evolution, err := proc.TrackEvolution()
			if err != nil {
				return err
			}
			printResult(evolution)
			return nil
		},
	}
}
