package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-mtrl/mtrl/cmd/mtrl/internal/page"
)

func newComponentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "components",
		Short: "List the widget types accepted in page files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range page.Types() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	return cmd
}
