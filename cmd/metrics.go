package cmd

import (
	"github.com/scoutbase/scout/core"
	"github.com/scoutbase/scout/internal/contract"
	"github.com/spf13/cobra"
)

// metricsCmd displays the formal definitions of all derived metrics.
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Display formulas and definitions for all derived metrics",
	Long: `Show the formal definitions for every derived metric scout computes.

Covers the per-90 rates, pass accuracy, category averages and the
correlation coefficient, including how undefined values are handled.
No database query is performed - this is purely informational.

Examples:
  scout metrics
  scout metrics --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteScoutMetrics(cfg); err != nil {
			contract.LogFatal("Cannot display metrics", err)
		}
	},
}
