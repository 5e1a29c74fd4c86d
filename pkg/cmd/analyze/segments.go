package analyze

import (
	"github.com/spf13/cobra"
)

var (
	miniSectorCount int
	segmentStart    float64
	segmentEnd      float64
)

func NewSegmentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "segments",
		Short: "commands ranking drivers over track segments",
	}
	cmd.AddCommand(newMiniSectorsCmd())
	cmd.AddCommand(newLeaderboardCmd())
	return cmd
}

func newMiniSectorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mini",
		Short: "splits the lap into mini-sectors and finds the fastest driver in each",
		RunE: func(cmd *cobra.Command, args []string) error {
			proc, err := setupProcessor(cmd.Context())
			if err != nil {
				return err
			}
			report, err := proc.MiniSectors(miniSectorCount)
			if err != nil {
				return err
			}
			printResult(report)
			return nil
		},
	}
	cmd.Flags().IntVar(&miniSectorCount, "count", 25,
		"number of mini-sectors (10-50)")
	return cmd
}

func newLeaderboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "ranks all drivers over a custom distance range",
		RunE: func(cmd *cobra.Command, args []string) error {
			proc, err := setupProcessor(cmd.Context())
			if err != nil {
				return err
			}
			board, err := proc.SegmentLeaderboard(segmentStart, segmentEnd)
			if err != nil {
				return err
			}
			printResult(board)
			return nil
		},
	}
	cmd.Flags().Float64Var(&segmentStart, "from", 0,
		"segment start distance in meters")
	cmd.Flags().Float64Var(&segmentEnd, "to", 0,
		"segment end distance in meters")
	return cmd
}
