package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/spechtlabs/nba/internal/cli/cmd"
	"github.com/spechtlabs/nba/internal/cli/pretty_print"
	"github.com/spechtlabs/nba/internal/utils"
)

func main() {
	cmdRoot := cmd.NewRootCmd()
	cmdRoot.AddCommand(newSynthCmd())
	cmdRoot.AddCommand(newApplyCmd(newClusterApplier))

	// Runs after the config file and flags are loaded, so --debug and otel.* apply.
	shutdown := func() {}
	cobra.OnInitialize(func() { shutdown = utils.InitObservability() })

	err := cmdRoot.Execute()
	shutdown()

	if err != nil {
		pretty_print.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
