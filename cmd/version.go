package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	Version string
	Commit  string
	BuiltAt string
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of hwcheck",
		Long:  `All software has versions. This is hwcheck's`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "hwcheck, version %s (commit %s), built at %s\n", Version, Commit, BuiltAt)
			return err
		},
	}
}
