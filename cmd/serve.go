package cmd

import (
	"time"

	"github.com/mittwald/hwcheck/pkg/pidfile"
	"github.com/mittwald/hwcheck/pkg/probe"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const DefaultListenPort = 9102

type serveOptions struct {
	listenPort int
	timeout    time.Duration
	pidFile    string
}

func newServeCommand(global *globalOptions) *cobra.Command {
	opts := &serveOptions{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve check results over HTTP",
		Long:  "This sub-command starts an HTTP server that runs the checks on every request to /status or /probes/{name}",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := global.buildRegistry(cmd)
			if err != nil {
				return err
			}

			pidFileHandle := pidfile.New(opts.pidFile)
			if err := pidFileHandle.Acquire(); err != nil {
				return errors.Wrapf(err, "failed to write pid file to %q", opts.pidFile)
			}
			defer func() {
				if err := pidFileHandle.Release(); err != nil {
					log.Errorf("error while cleaning up the pid file: %s", err)
				}
			}()

			log.WithFields(log.Fields{"port": opts.listenPort, "probes": reg.Len()}).Info("probe server listening")
			return probe.RunProbeServer(cmd.Context(), probe.NewProbeHandler(reg, opts.timeout), opts.listenPort)
		},
	}

	cmd.Flags().IntVarP(&opts.listenPort, "listen-port", "p", DefaultListenPort, "set the port to listen for probe requests")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "upper bound for a single probe run")
	cmd.Flags().StringVar(&opts.pidFile, "pidfile", "", "write the server's process id to this file")
	return cmd
}
