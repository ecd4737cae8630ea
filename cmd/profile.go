package cmd

import (
	"github.com/scoutbase/scout/core"
	"github.com/scoutbase/scout/internal/contract"
	"github.com/spf13/cobra"
)

// profileCmd shows the full profile for one player.
var profileCmd = &cobra.Command{
	Use:   "profile <player-id|name>",
	Short: "Show the full attribute and stats profile for one player.",
	Long: `Print everything the store knows about one player.

Shows attribute ratings grouped by category with per-category averages,
raw match counters, and the derived rates (goals per 90, assists per 90,
pass accuracy). A player without recorded match stats still has a full
attribute profile.

The player is resolved by numeric id, or by exact name when the name is
unambiguous.

Examples:
  # By id
  scout profile 5503

  # By exact name, JSON output
  scout profile "Lionel Messi" --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteScoutProfile(rootCtx, cfg, args[0]); err != nil {
			contract.LogFatal("Cannot run profile query", err)
		}
	},
}
