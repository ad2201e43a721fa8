package command

import (
	"bytes"
	"context"
	"os/exec"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	ErrNotFound     = errors.New("executable not found")
	ErrTimeout      = errors.New("command timed out")
	ErrEmptyCommand = errors.New("empty command")
)

// Result holds the textual outcome of a finished command.
type Result struct {
	ExitCode int    `json:"exitCode"`
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
}

// Runner executes external programs. A non-zero exit status is reported
// through Result.ExitCode, never as an error.
type Runner interface {
	Run(ctx context.Context, argv ...string) (Result, error)
}

var _ Runner = &Exec{}

// Exec runs commands on the local host.
type Exec struct {
	// Timeout bounds every invocation; zero means no limit besides ctx.
	Timeout time.Duration
}

func New(timeout time.Duration) *Exec {
	return &Exec{Timeout: timeout}
}

func (e *Exec) Run(ctx context.Context, argv ...string) (Result, error) {
	if len(argv) == 0 {
		return Result{}, ErrEmptyCommand
	}

	path, err := exec.LookPath(argv[0])
	if err != nil {
		return Result{}, errors.Wrapf(ErrNotFound, "%s", argv[0])
	}

	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, path, argv[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = time.Second

	start := time.Now()
	err = cmd.Run()

	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	log.WithFields(log.Fields{"kind": "command", "argv": argv, "took": time.Since(start)}).Debug("command finished")

	if ctxErr := ctx.Err(); ctxErr != nil {
		result.ExitCode = -1
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return result, errors.Wrapf(ErrTimeout, "%s", argv[0])
		}
		return result, ctxErr
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}

	if err != nil {
		return result, errors.Wrapf(err, "failed to run %s", argv[0])
	}

	return result, nil
}

// LookPath reports whether name resolves to an executable on $PATH.
func LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
