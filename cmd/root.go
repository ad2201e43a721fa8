package cmd

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"github.com/mittwald/hwcheck/internal/config"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	codeOK           = 0
	codeError        = 1
	codeFailedProbes = 2
	codeInterrupted  = 130
)

// exitCodeError ends the command with a specific exit code. err may be nil
// when there is nothing left to report.
type exitCodeError struct {
	code int
	err  error
}

func (e *exitCodeError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit %d", e.code)
	}
	return e.err.Error()
}

func (e *exitCodeError) Unwrap() error {
	return e.err
}

type globalOptions struct {
	configDir     string
	logLevel      string
	verbose       bool
	enableProfile bool
}

func newRootCommand() *cobra.Command {
	global := &globalOptions{}
	check := &checkOptions{}

	rootCmd := &cobra.Command{
		Use:           "hwcheck",
		Short:         "hwcheck - Raspberry Pi 5 hardware compatibility checker",
		Long:          "hwcheck inspects the machine it runs on and reports whether it is a Raspberry Pi 5 prepared for camera and GPIO work",
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := global.configureLogging(cmd.ErrOrStderr()); err != nil {
				return err
			}
			if global.enableProfile {
				go runProfileServer()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Debug("running 'hwcheck' without a sub-command, defaulting to 'check'")
			return runCheck(cmd, global, check)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&global.configDir, "config-dir", "c", config.DefaultConfigDir, "set directory to where your .hcl-configs are located")
	rootCmd.PersistentFlags().StringVar(&global.logLevel, "log-level", log.WarnLevel.String(), "log level (panic, fatal, error, warning, info, debug, trace)")
	rootCmd.PersistentFlags().BoolVarP(&global.verbose, "verbose", "v", false, "shorthand for --log-level=debug")
	rootCmd.PersistentFlags().BoolVar(&global.enableProfile, "profile", false, "enable pprof http server")
	check.bindFlags(rootCmd)

	rootCmd.AddCommand(
		newCheckCommand(global),
		newListCommand(global),
		newServeCommand(global),
		newRemoteCommand(),
		newVersionCommand(),
	)

	return rootCmd
}

func (g *globalOptions) configureLogging(out io.Writer) error {
	level, err := log.ParseLevel(g.logLevel)
	if err != nil {
		return errors.Wrapf(err, "invalid --log-level %q", g.logLevel)
	}
	if g.verbose {
		level = log.DebugLevel
	}

	log.SetOutput(out)
	log.SetLevel(level)
	return nil
}

func runProfileServer() {
	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		log.Errorf("pprof server failed to listen: %v", err)
		return
	}
	log.Infof("Starting pprof server on http://%s/debug/pprof/", listener.Addr().String())
	if err := http.Serve(listener, mux); err != nil {
		log.Errorf("pprof server error: %v", err)
	}
}

// Run executes the command line args and returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return codeOK
	}

	var exit *exitCodeError
	if errors.As(err, &exit) {
		if exit.err != nil {
			fmt.Fprintln(stderr, renderError(exit.err))
		}
		return exit.code
	}

	fmt.Fprintln(stderr, renderError(err))
	return codeError
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
