package cmd

import (
	"github.com/scoutbase/scout/core"
	"github.com/scoutbase/scout/internal/contract"
	"github.com/spf13/cobra"
)

// topCmd ranks players by one attribute.
var topCmd = &cobra.Command{
	Use:   "top <attribute|metric>",
	Short: "Show the top players ranked by one attribute or rate metric.",
	Long: `Rank players by a single attribute or derived rate metric, highest first.

Any canonical attribute works: skill ratings like passing or tackling,
physical ratings like pace, and aggregates like CA or PA. Ties keep the
stored player order so repeated runs print identical results.

Rate metrics (goals_per90, assists_per90, shots_per90, pass_accuracy) are
derived from aggregated counting stats. Only players past the minutes-played
threshold are ranked; tune it with --min-minutes.

Examples:
  # Best passers, default limit
  scout top passing

  # Top 25 by current ability with position and nationality
  scout top CA --limit 25 --detail

  # Goal scoring rate among players with at least 1000 minutes
  scout top goals_per90 --min-minutes 1000

  # Export a ranking for tracking
  scout top pace --output csv --output-file pace.csv`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		cfg.Attribute = args[0]
		if err := core.ExecuteScoutTop(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot run top query", err)
		}
	},
}
