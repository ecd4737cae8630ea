package cmd

import (
	"github.com/scoutbase/scout/core"
	"github.com/scoutbase/scout/internal/contract"
	"github.com/spf13/cobra"
)

// searchCmd finds players by partial name.
var searchCmd = &cobra.Command{
	Use:   "search <name>",
	Short: "Find players by partial name, case-insensitive.",
	Long: `Search the players table for names containing the given substring.

Matches are ordered by current ability so the strongest players appear
first. A query with no matches prints an empty result, not an error.

Examples:
  # All players with "silva" in their name
  scout search silva

  # Export matches as JSON
  scout search martin --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteScoutSearch(rootCtx, cfg, cacheManager, args[0]); err != nil {
			contract.LogFatal("Cannot run search query", err)
		}
	},
}
