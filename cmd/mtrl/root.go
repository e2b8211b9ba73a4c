package main

import (
	"github.com/spf13/cobra"

	"github.com/go-mtrl/mtrl/pkg/logging"
)

type rootFlags struct {
	verbose int
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "mtrl",
		Short:         "mtrl renders Material widgets declared in mtrl.yaml or mtrl.toml",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logging.SetupVerbosity(flags.verbose, cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().CountVarP(&flags.verbose, "verbose", "v", "Increase log verbosity (-v info, -vv debug)")

	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newComponentsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
