// main is the command-line entrypoint for the scout CLI.
package main

import (
	"github.com/scoutbase/scout/cmd"
	"github.com/scoutbase/scout/internal/contract"
	"github.com/scoutbase/scout/internal/iocache"
)

func main() {
	cmd.SetCacheManager(iocache.Manager)

	err := cmd.Execute()
	iocache.CloseCaching()
	if err != nil {
		contract.LogFatal("command failed", err)
	}
}
