// Package cli wires the srither subcommands together with cobra.
package cli

import (
	"github.com/spf13/cobra"

	"srither/internal/config"
)

// NewRootCommand builds the srither command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "srither",
		Short:         "A Slither Link puzzle solver",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cfg, cfgErr := config.Load()

	root.AddCommand(newSolveCommand(cfg))
	root.AddCommand(newTestCommand(cfg))
	root.AddCommand(newBenchCommand(cfg))

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return cfgErr
	}

	return root
}
