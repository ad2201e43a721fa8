package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCommand(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the configured checks in the order they run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := global.buildRegistry(cmd)
			if err != nil {
				return err
			}

			for _, name := range reg.Names() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
