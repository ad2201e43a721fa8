package cmd

import (
	"time"

	"github.com/mittwald/hwcheck/pkg/cli"
	"github.com/spf13/cobra"
)

const DefaultAPIAddress = "http://localhost:9102"

type remoteOptions struct {
	address string
	timeout time.Duration
	noColor bool
	strict  bool
}

func newRemoteCommand() *cobra.Command {
	opts := &remoteOptions{}
	cmd := &cobra.Command{
		Use:   "remote [probe]",
		Short: "Query a running 'hwcheck serve' instance",
		Long:  "This sub-command fetches the full report, or the result of a single check, from a remote hwcheck server",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := cli.NewAPIClient(opts.address, opts.timeout)

			var res cli.APIResponse
			if len(args) == 1 {
				res = client.Probe(cmd.Context(), args[0])
			} else {
				res = client.Status(cmd.Context())
			}

			out := cmd.OutOrStdout()
			if err := res.Print(out, !opts.noColor && isTerminal(out)); err != nil {
				return err
			}

			if opts.strict && !res.OK() {
				return &exitCodeError{code: codeFailedProbes}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.address, "address", DefaultAPIAddress, "server address (http://host:port or unix:///path/to/socket)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", time.Minute, "request timeout")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "exit with code 2 if any check failed")
	return cmd
}
