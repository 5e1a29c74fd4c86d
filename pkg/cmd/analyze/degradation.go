package analyze

import (
	"github.com/spf13/cobra"

	"github.com/hamzanaeem10/ApexAnalyst/pkg/model"
)

var degradationCompound string

func NewDegradationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "degradation",
		Short: "fits tire degradation curves from clean laps",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDegradation(cmd)
		},
	}
	cmd.Flags().StringVar(&degradationCompound, "compound", "",
		"restrict to one compound (soft, medium, hard, intermediate, wet)")
	return cmd
}

func runDegradation(cmd *cobra.Command) error {
	proc, err := setupProcessor(cmd.Context())
	if err != nil {
		return err
	}
	if degradationCompound != "" {
		curve, err := proc.DegradationFor(model.ParseCompound(degradationCompound))
		if err != nil {
			return err
		}
		printResult(curve)
		return nil
	}
	curves, err := proc.Degradation()
	if err != nil {
		return err
	}
	printResult(curves)
	return nil
}
