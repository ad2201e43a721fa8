// Package module resolves optional software modules installed on the host.
package module

import (
	"context"
	"strings"

	"github.com/mittwald/hwcheck/pkg/command"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const UnknownVersion = "unknown"

var ErrNotFound = errors.New("module not found")

type Module struct {
	Name    string
	Version string
}

// Resolver looks up a named module. Implementations return an error
// wrapping ErrNotFound when the module is not installed.
type Resolver interface {
	Resolve(ctx context.Context, name string) (Module, error)
}

// Available reports whether r can resolve name.
func Available(ctx context.Context, r Resolver, name string) bool {
	_, err := r.Resolve(ctx, name)
	return err == nil
}

const importScript = `import importlib, sys
m = importlib.import_module(sys.argv[1])
print(getattr(m, "__version__", "unknown"))`

var _ Resolver = &Python{}

// Python resolves modules by importing them in a Python interpreter.
type Python struct {
	Interpreter string
	Runner      command.Runner
}

func (p *Python) Resolve(ctx context.Context, name string) (Module, error) {
	res, err := p.Runner.Run(ctx, p.Interpreter, "-c", importScript, name)
	if errors.Is(err, command.ErrNotFound) {
		return Module{}, errors.Wrapf(ErrNotFound, "%s (interpreter %s is not installed)", name, p.Interpreter)
	}
	if err != nil {
		return Module{}, errors.Wrapf(err, "failed to resolve module %s", name)
	}

	if res.ExitCode != 0 {
		log.WithFields(log.Fields{"kind": "module", "name": name, "stderr": strings.TrimSpace(res.Stderr)}).Debug("import failed")
		return Module{}, errors.Wrapf(ErrNotFound, "%s", name)
	}

	return Module{Name: name, Version: lastLine(res.Stdout)}, nil
}

func lastLine(out string) string {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	version := strings.TrimSpace(lines[len(lines)-1])
	if version == "" {
		return UnknownVersion
	}
	return version
}
