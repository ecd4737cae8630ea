package cmd

import (
	"github.com/scoutbase/scout/core"
	"github.com/scoutbase/scout/internal/contract"
	"github.com/spf13/cobra"
)

// overviewCmd summarizes the stats store contents.
var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Summarize the stats store contents.",
	Long: `Print row counts for every required table plus the average current
ability grouped by position.

Useful as a first command against an unfamiliar database file to confirm
the schema loaded and see how the player pool is shaped.

Examples:
  scout overview
  scout overview --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteScoutOverview(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot run overview query", err)
		}
	},
}
