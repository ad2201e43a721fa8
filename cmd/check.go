package cmd

import (
	"context"

	"github.com/mittwald/hwcheck/pkg/probe"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	checkTitle = "Raspberry Pi 5 Hardware Compatibility Check"
	jsonTitle  = "JSON Output"
)

type checkOptions struct {
	jsonOnly bool
	noColor  bool
	template string
	strict   bool
}

func (o *checkOptions) bindFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.jsonOnly, "json", false, "only print the JSON report")
	cmd.Flags().BoolVar(&o.noColor, "no-color", false, "disable colored output")
	cmd.Flags().StringVar(&o.template, "template", "", "render the report through this Go template file instead")
	cmd.Flags().BoolVar(&o.strict, "strict", false, "exit with code 2 if any check failed")
}

func newCheckCommand(global *globalOptions) *cobra.Command {
	opts := &checkOptions{}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run all hardware checks and print the report",
		Long:  "This sub-command runs every configured check, prints each result as soon as it is known and finishes with a JSON report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, global, opts)
		},
	}
	opts.bindFlags(cmd)
	return cmd
}

func runCheck(cmd *cobra.Command, global *globalOptions, opts *checkOptions) error {
	reg, err := global.buildRegistry(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	color := !opts.noColor && isTerminal(out)
	console := probe.NewConsole(out, color)
	streaming := !opts.jsonOnly && opts.template == ""

	if streaming {
		if err := console.Header(checkTitle); err != nil {
			return err
		}
	}

	runner := probe.NewRunner(reg)
	for name, res := range runner.Results(cmd.Context()) {
		if !streaming {
			continue
		}
		if err := console.Print(name, res); err != nil {
			return errors.Wrap(err, "failed to write result")
		}
	}

	if err := runner.Err(); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			log.WithField("completed", runner.Report().Len()).Warn("check interrupted")
			return &exitCodeError{code: codeInterrupted}
		}
		return err
	}

	report := runner.Report()
	log.WithFields(log.Fields{"passed": report.Passed(), "total": report.Len()}).Info("check finished")

	switch {
	case opts.template != "":
		err = probe.RenderTemplateFile(out, opts.template, report)
	case opts.jsonOnly:
		err = probe.WriteJSON(out, report, color)
	default:
		err = writeSummaryAndJSON(console, report, color)
	}
	if err != nil {
		return err
	}

	if opts.strict && report.Passed() < report.Len() {
		return &exitCodeError{code: codeFailedProbes}
	}
	return nil
}

func writeSummaryAndJSON(console *probe.Console, report *probe.Report, color bool) error {
	if err := console.Summary(report); err != nil {
		return err
	}
	if err := console.Header(jsonTitle); err != nil {
		return err
	}
	return probe.WriteJSON(console.Out, report, color)
}
