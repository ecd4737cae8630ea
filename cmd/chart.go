package cmd

import (
	"github.com/scoutbase/scout/core"
	"github.com/scoutbase/scout/internal/contract"
	"github.com/spf13/cobra"
)

// distCmd shows the distribution of one attribute across all players.
var distCmd = &cobra.Command{
	Use:   "dist <attribute>",
	Short: "Show the binned distribution of one attribute.",
	Long: `Bin one attribute across every player and print the histogram.

Skill ratings bin over the nominal 1-20 scale; aggregates like CA widen
the range to cover the observed values.

Examples:
  # How pace is spread across the player pool
  scout dist pace

  # Bin counts for a chart renderer
  scout dist CA --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteScoutDist(rootCtx, cfg, args[0]); err != nil {
			contract.LogFatal("Cannot run dist query", err)
		}
	},
}

// corrCmd shows pairwise attribute correlations.
var corrCmd = &cobra.Command{
	Use:   "corr [attribute...]",
	Short: "Show the pairwise Pearson correlation grid for attributes.",
	Long: `Compute Pearson correlations between attributes across all players.

With no arguments the radar axis set is used. The grid is symmetric with
a unit diagonal; an attribute with no variance correlates as 0.

Examples:
  # Correlations over the radar axes
  scout corr

  # A focused grid
  scout corr passing vision composure`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteScoutCorr(rootCtx, cfg, args); err != nil {
			contract.LogFatal("Cannot run corr query", err)
		}
	},
}
