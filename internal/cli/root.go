// Package cli holds the warehouse command tree.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "warehouse",
		Short:         "Warehouse import order (01-VT) API",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	serve := newServeCmd()
	root.RunE = serve.RunE

	root.AddCommand(
		serve,
		newMigrateCmd(),
		newSeedCmd(),
		newOrderNumberCmd(),
		newJobCmd(),
	)
	return root
}

// Execute runs the command named on the command line; "serve" when none is given
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
