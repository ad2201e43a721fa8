package probe

import (
	"context"
	"strings"
	"time"

	"github.com/mittwald/hwcheck/internal/config"
	"github.com/mittwald/hwcheck/pkg/command"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type gpuProbe struct {
	tool     string
	args     []string
	keyword  string
	hint     string
	timeout  time.Duration
	lookPath func(string) bool
	runner   command.Runner
}

func NewGPUProbe(cfg *config.GPU, lookPath func(string) bool, runner command.Runner) *gpuProbe {
	return &gpuProbe{
		tool:     cfg.Command,
		args:     cfg.Args,
		keyword:  strings.ToLower(cfg.Keyword),
		hint:     cfg.Hint,
		timeout:  cfg.TimeoutDuration(),
		lookPath: lookPath,
		runner:   runner,
	}
}

func (g *gpuProbe) Name() string {
	return NameGPUMemory
}

func (g *gpuProbe) Check(ctx context.Context) Result {
	if !g.lookPath(g.tool) {
		return Result{OK: false, Details: Text(g.hint)}
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	res, err := g.runner.Run(ctx, append([]string{g.tool}, g.args...)...)
	switch {
	case errors.Is(err, command.ErrNotFound):
		return Result{OK: false, Details: Text(g.hint)}
	case errors.Is(err, command.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return Result{OK: false, Details: Text("command timed out")}
	case err != nil:
		return Result{OK: false, Details: Textf("failed to run %s: %s", g.tool, err)}
	}

	log.WithFields(log.Fields{"kind": "probe", "name": NameGPUMemory, "exitCode": res.ExitCode}).Debug("gpu query finished")

	details := strings.TrimSpace(res.Stdout)
	if res.Stdout == "" {
		details = strings.TrimSpace(res.Stderr)
	}

	return Result{
		OK:      res.ExitCode == 0 && strings.Contains(strings.ToLower(res.Stdout), g.keyword),
		Details: Text(details),
	}
}
