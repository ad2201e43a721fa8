// Package host bundles the accessors probes use to inspect the local machine.
package host

import (
	"time"

	"github.com/mittwald/hwcheck/pkg/command"
	"github.com/mittwald/hwcheck/pkg/module"
	"github.com/pkg/errors"
)

var ErrUnsupported = errors.New("not available on this platform")

// DiskUsage holds filesystem block statistics as returned by statfs(2).
type DiskUsage struct {
	FragmentSize uint64
	Blocks       uint64
	Available    uint64
}

// AvailableBytes is the space available to unprivileged users.
func (u DiskUsage) AvailableBytes() uint64 {
	return u.Available * u.FragmentSize
}

type Host struct {
	LookPath      func(name string) bool
	KernelRelease func() (string, error)
	Statfs        func(path string) (DiskUsage, error)
	Commands      command.Runner
	Modules       module.Resolver
}

// Local returns accessors for the machine hwcheck runs on. Commands are
// bounded by timeout; modules are resolved through the python interpreter.
func Local(python string, timeout time.Duration) *Host {
	runner := command.New(timeout)

	return &Host{
		LookPath:      command.LookPath,
		KernelRelease: kernelRelease,
		Statfs:        statfs,
		Commands:      runner,
		Modules:       &module.Python{Interpreter: python, Runner: runner},
	}
}
