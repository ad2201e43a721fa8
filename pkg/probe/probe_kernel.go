package probe

import (
	"context"
	"strings"

	"github.com/mittwald/hwcheck/internal/config"
)

type kernelProbe struct {
	prefix  string
	release func() (string, error)
}

func NewKernelProbe(cfg *config.Kernel, release func() (string, error)) *kernelProbe {
	return &kernelProbe{prefix: cfg.Prefix, release: release}
}

func (k *kernelProbe) Name() string {
	return NameKernelVersion
}

func (k *kernelProbe) Check(context.Context) Result {
	release, err := k.release()
	if err != nil {
		return Result{OK: false, Details: Textf("unable to determine kernel release: %s", err)}
	}

	return Result{
		OK:      strings.HasPrefix(release, k.prefix),
		Details: Text(release),
	}
}
