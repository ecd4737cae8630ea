package cmd

import (
	"github.com/scoutbase/scout/core"
	"github.com/scoutbase/scout/internal/contract"
	"github.com/spf13/cobra"
)

// compareCmd compares two players side by side.
var compareCmd = &cobra.Command{
	Use:   "compare <player-a> <player-b>",
	Short: "Compare two players attribute by attribute.",
	Long: `Print a side-by-side comparison of two players.

Every attribute either player has is listed with both values and the
name of the player holding the edge. Derived rates are included when
match stats exist; a rate that is undefined for one player shows as n/a
and never decides an edge.

Players are resolved by numeric id or exact name, in any mix.

Examples:
  # Compare by name
  scout compare "Lionel Messi" "Cristiano Ronaldo"

  # Compare by id, CSV output
  scout compare 5503 5207 --output csv`,
	Args:    cobra.ExactArgs(2),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteScoutCompare(rootCtx, cfg, args[0], args[1]); err != nil {
			contract.LogFatal("Cannot run compare query", err)
		}
	},
}
