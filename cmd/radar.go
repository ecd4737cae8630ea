package cmd

import (
	"github.com/scoutbase/scout/core"
	"github.com/scoutbase/scout/internal/contract"
	"github.com/spf13/cobra"
)

// radarCmd shapes player profiles into radar chart series.
var radarCmd = &cobra.Command{
	Use:   "radar <player> [player...]",
	Short: "Shape one or more players into radar chart series.",
	Long: `Project players onto the fixed ten-axis radar used for chart rendering.

The axis order never changes between runs, so series from different
invocations can be overlaid. An attribute the player lacks reads as 0
rather than dropping the axis.

Examples:
  # One player
  scout radar "Lionel Messi"

  # Overlay two players, JSON for a chart renderer
  scout radar 5503 5207 --output json`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteScoutRadar(rootCtx, cfg, args); err != nil {
			contract.LogFatal("Cannot run radar query", err)
		}
	},
}
